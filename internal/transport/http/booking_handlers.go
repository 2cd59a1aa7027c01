package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/briandean03/interview-form/internal/service/booking"
)

// GET /api/booking?candidate_id=&timezone=
func (s *Server) handleResolveBooking(c *gin.Context) {
	log := s.log.With(slog.String("handler", "ResolveBooking"))

	candidateID := c.Query("candidate_id")
	if candidateID == "" {
		// distinct error state for a booking link without an identity;
		// nothing is fetched
		c.JSON(http.StatusBadRequest, gin.H{"error": "candidate id is required"})
		return
	}

	res, err := s.booking.Resolve(c.Request.Context(), candidateID, c.Query("timezone"))
	if err != nil {
		s.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type scheduleRequest struct {
	CandidateID string `json:"candidate_id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Timezone    string `json:"timezone"`
}

// POST /api/booking
func (s *Server) handleSchedule(c *gin.Context) {
	log := s.log.With(slog.String("handler", "Schedule"))

	var req scheduleRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	appt, err := s.booking.Schedule(c.Request.Context(), booking.ScheduleInput{
		CandidateID: req.CandidateID,
		Date:        req.Date,
		Time:        req.Time,
		Timezone:    req.Timezone,
	})
	if err != nil {
		s.writeError(c, log, err)
		return
	}

	log.Info("appointment scheduled",
		slog.Int64("appointment_id", appt.ID),
		slog.String("candidate_id", appt.CandidateID),
	)
	c.JSON(http.StatusOK, appt)
}

// DELETE /api/booking?candidate_id=
func (s *Server) handleCancel(c *gin.Context) {
	log := s.log.With(slog.String("handler", "Cancel"))

	candidateID := c.Query("candidate_id")
	if candidateID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "candidate id is required"})
		return
	}

	if err := s.booking.Cancel(c.Request.Context(), candidateID); err != nil {
		s.writeError(c, log, err)
		return
	}

	log.Info("appointment cancelled", slog.String("candidate_id", candidateID))
	c.Status(http.StatusNoContent)
}

// GET /api/booking/days?month=2006-01&timezone=
func (s *Server) handleMonthDays(c *gin.Context) {
	log := s.log.With(slog.String("handler", "MonthDays"))

	days, err := s.booking.MonthDays(c.Query("month"), c.Query("timezone"))
	if err != nil {
		s.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

// GET /api/booking/slots?date=2006-01-02&timezone=
func (s *Server) handleSlots(c *gin.Context) {
	log := s.log.With(slog.String("handler", "Slots"))

	slots, err := s.booking.Slots(c.Query("date"), c.Query("timezone"))
	if err != nil {
		s.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}
