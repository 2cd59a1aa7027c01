package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/briandean03/interview-form/internal/service/questions"
)

// GET /api/questions?candidate_id=
func (s *Server) handleQuestions(c *gin.Context) {
	log := s.log.With(slog.String("handler", "Questions"))

	candidateID := c.Query("candidate_id")
	if candidateID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "candidate id is required"})
		return
	}

	list, err := s.questions.Fetch(c.Request.Context(), candidateID)
	if err != nil {
		switch {
		case errors.Is(err, questions.ErrNotScheduled),
			errors.Is(err, questions.ErrTooEarly),
			errors.Is(err, questions.ErrExpired):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			s.writeError(c, log, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": list})
}
