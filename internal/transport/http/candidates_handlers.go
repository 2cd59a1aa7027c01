package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/briandean03/interview-form/internal/service/candidates"
	"github.com/briandean03/interview-form/internal/store"
)

// GET /api/candidates?status=&order=
func (s *Server) handleListCandidates(c *gin.Context) {
	log := s.log.With(slog.String("handler", "ListCandidates"))

	list, err := s.candidates.List(c.Request.Context(), c.Query("status"), store.CandidateOrder(c.Query("order")))
	if err != nil {
		s.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"candidates": list})
}

// GET /api/candidates/:id
func (s *Server) handleGetCandidate(c *gin.Context) {
	log := s.log.With(slog.String("handler", "GetCandidate"))

	cand, err := s.candidates.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, cand)
}

type candidateRequest struct {
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Phone     *string  `json:"phone"`
	Position  string   `json:"position"`
	Status    string   `json:"status"`
	Score     *float64 `json:"score"`
}

func (r candidateRequest) input() candidates.Input {
	return candidates.Input{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Position:  r.Position,
		Status:    r.Status,
		Score:     r.Score,
	}
}

// POST /api/candidates
func (s *Server) handleCreateCandidate(c *gin.Context) {
	log := s.log.With(slog.String("handler", "CreateCandidate"))

	var req candidateRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	cand, err := s.candidates.Create(c.Request.Context(), req.input())
	if err != nil {
		s.writeError(c, log, err)
		return
	}

	log.Info("candidate created", slog.String("candidate_id", cand.ID))
	c.JSON(http.StatusCreated, cand)
}

// PATCH /api/candidates/:id
func (s *Server) handleUpdateCandidate(c *gin.Context) {
	log := s.log.With(slog.String("handler", "UpdateCandidate"))

	var req candidateRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	cand, err := s.candidates.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		s.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, cand)
}

// DELETE /api/candidates/:id
func (s *Server) handleDeleteCandidate(c *gin.Context) {
	log := s.log.With(slog.String("handler", "DeleteCandidate"))

	if err := s.candidates.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.writeError(c, log, err)
		return
	}

	log.Info("candidate deleted", slog.String("candidate_id", c.Param("id")))
	c.Status(http.StatusNoContent)
}
