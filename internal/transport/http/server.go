package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/briandean03/interview-form/internal/domain"
	"github.com/briandean03/interview-form/internal/service/booking"
	"github.com/briandean03/interview-form/internal/service/candidates"
	"github.com/briandean03/interview-form/internal/store"
)

type bookingService interface {
	Resolve(ctx context.Context, candidateID, displayTZ string) (booking.Resolution, error)
	Schedule(ctx context.Context, in booking.ScheduleInput) (domain.Appointment, error)
	Cancel(ctx context.Context, candidateID string) error
	MonthDays(month, displayTZ string) ([]booking.Day, error)
	Slots(date, displayTZ string) ([]domain.Slot, error)
}

type candidatesService interface {
	List(ctx context.Context, status string, order store.CandidateOrder) ([]domain.Candidate, error)
	Get(ctx context.Context, id string) (domain.Candidate, error)
	Create(ctx context.Context, in candidates.Input) (domain.Candidate, error)
	Update(ctx context.Context, id string, in candidates.Input) (domain.Candidate, error)
	Delete(ctx context.Context, id string) error
}

type questionsService interface {
	Fetch(ctx context.Context, candidateID string) ([]domain.Question, error)
}

type connection interface {
	Ping(ctx context.Context) error
	Reset() error
}

type Server struct {
	booking    bookingService
	candidates candidatesService
	questions  questionsService
	conn       connection
	log        *slog.Logger
}

func NewServer(b bookingService, c candidatesService, q questionsService, conn connection, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		booking:    b,
		candidates: c,
		questions:  q,
		conn:       conn,
		log:        log.With(slog.String("component", "http")),
	}
}

func (s *Server) Router(requestTimeout time.Duration) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), withTimeout(requestTimeout))

	r.GET("/healthz", s.handleHealth)
	r.POST("/api/connection/reset", s.handleConnectionReset)

	api := r.Group("/api")
	{
		api.GET("/booking", s.handleResolveBooking)
		api.POST("/booking", s.handleSchedule)
		api.DELETE("/booking", s.handleCancel)
		api.GET("/booking/days", s.handleMonthDays)
		api.GET("/booking/slots", s.handleSlots)

		api.GET("/questions", s.handleQuestions)

		api.GET("/candidates", s.handleListCandidates)
		api.POST("/candidates", s.handleCreateCandidate)
		api.GET("/candidates/:id", s.handleGetCandidate)
		api.PATCH("/candidates/:id", s.handleUpdateCandidate)
		api.DELETE("/candidates/:id", s.handleDeleteCandidate)
	}

	return r
}

// withTimeout bounds each request with an explicit deadline. A zero timeout
// disables the bound entirely; there is no other implicit per-call deadline.
func withTimeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	if err := s.conn.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleConnectionReset(c *gin.Context) {
	log := s.log.With(slog.String("handler", "ConnectionReset"))
	if err := s.conn.Reset(); err != nil {
		log.Error("connection reset failed", slog.Any("err", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not reset connection"})
		return
	}
	log.Info("connection reset")
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// writeError maps service errors onto the response taxonomy: validation
// failures surface inline, absent rows are 404, constraint conflicts are
// 409, and everything else is a generic message with the detail logged.
func (s *Server) writeError(c *gin.Context, log *slog.Logger, err error) {
	var bookingErr *booking.ValidationError
	var candidateErr *candidates.ValidationError
	switch {
	case errors.As(err, &bookingErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": bookingErr.Error()})
	case errors.As(err, &candidateErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": candidateErr.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	default:
		log.Error("request failed", slog.Any("err", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
	}
}
