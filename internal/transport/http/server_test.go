package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briandean03/interview-form/internal/domain"
	"github.com/briandean03/interview-form/internal/service/booking"
	"github.com/briandean03/interview-form/internal/service/candidates"
	qsvc "github.com/briandean03/interview-form/internal/service/questions"
	"github.com/briandean03/interview-form/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeBooking struct {
	resolveFn  func(ctx context.Context, candidateID, displayTZ string) (booking.Resolution, error)
	scheduleFn func(ctx context.Context, in booking.ScheduleInput) (domain.Appointment, error)
	cancelFn   func(ctx context.Context, candidateID string) error
	calls      int
}

func (f *fakeBooking) Resolve(ctx context.Context, candidateID, displayTZ string) (booking.Resolution, error) {
	f.calls++
	return f.resolveFn(ctx, candidateID, displayTZ)
}

func (f *fakeBooking) Schedule(ctx context.Context, in booking.ScheduleInput) (domain.Appointment, error) {
	f.calls++
	return f.scheduleFn(ctx, in)
}

func (f *fakeBooking) Cancel(ctx context.Context, candidateID string) error {
	f.calls++
	return f.cancelFn(ctx, candidateID)
}

func (f *fakeBooking) MonthDays(month, displayTZ string) ([]booking.Day, error) {
	f.calls++
	return []booking.Day{{Date: "2026-09-01", InMonth: true}}, nil
}

func (f *fakeBooking) Slots(date, displayTZ string) ([]domain.Slot, error) {
	f.calls++
	return []domain.Slot{{Time: "09:00"}}, nil
}

type fakeCandidates struct {
	listFn func(ctx context.Context, status string, order store.CandidateOrder) ([]domain.Candidate, error)
	getFn  func(ctx context.Context, id string) (domain.Candidate, error)
}

func (f *fakeCandidates) List(ctx context.Context, status string, order store.CandidateOrder) ([]domain.Candidate, error) {
	return f.listFn(ctx, status, order)
}

func (f *fakeCandidates) Get(ctx context.Context, id string) (domain.Candidate, error) {
	return f.getFn(ctx, id)
}

func (f *fakeCandidates) Create(ctx context.Context, in candidates.Input) (domain.Candidate, error) {
	panic("not used")
}

func (f *fakeCandidates) Update(ctx context.Context, id string, in candidates.Input) (domain.Candidate, error) {
	panic("not used")
}

func (f *fakeCandidates) Delete(ctx context.Context, id string) error {
	panic("not used")
}

type fakeQuestions struct {
	fetchFn func(ctx context.Context, candidateID string) ([]domain.Question, error)
}

func (f *fakeQuestions) Fetch(ctx context.Context, candidateID string) ([]domain.Question, error) {
	return f.fetchFn(ctx, candidateID)
}

type fakeConn struct {
	pingErr  error
	resetErr error
	resets   int
}

func (f *fakeConn) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeConn) Reset() error {
	f.resets++
	return f.resetErr
}

func newTestRouter(b *fakeBooking, c *fakeCandidates, q *fakeQuestions, conn *fakeConn) *gin.Engine {
	if b == nil {
		b = &fakeBooking{}
	}
	if c == nil {
		c = &fakeCandidates{}
	}
	if q == nil {
		q = &fakeQuestions{}
	}
	if conn == nil {
		conn = &fakeConn{}
	}
	return NewServer(b, c, q, conn, nil).Router(0)
}

func TestResolveBooking_MissingCandidateID(t *testing.T) {
	b := &fakeBooking{}
	router := newTestRouter(b, nil, nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/booking", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "candidate id is required")
	assert.Zero(t, b.calls, "no service call may happen without a candidate id")
}

func TestResolveBooking_OK(t *testing.T) {
	at := time.Date(2026, 9, 10, 6, 0, 0, 0, time.UTC)
	b := &fakeBooking{
		resolveFn: func(ctx context.Context, candidateID, displayTZ string) (booking.Resolution, error) {
			require.Equal(t, "c1", candidateID)
			require.Equal(t, "Asia/Dubai", displayTZ)
			local := at.In(time.FixedZone("GST", 4*3600))
			return booking.Resolution{
				State:       domain.BookingStateScheduled,
				Appointment: &domain.Appointment{ID: 7, CandidateID: candidateID, ScheduledAt: &at},
				LocalTime:   &local,
				Timezone:    displayTZ,
			}, nil
		},
	}
	router := newTestRouter(b, nil, nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/booking?candidate_id=c1&timezone=Asia/Dubai", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"state":"scheduled"`)
}

func TestSchedule_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"validation", booking.NewValidationError("date is not selectable"), http.StatusBadRequest, "date is not selectable"},
		{"not found", store.ErrNotFound, http.StatusNotFound, "not found"},
		{"conflict", store.ErrConflict, http.StatusConflict, "already exists"},
		{"internal", errors.New("pg down"), http.StatusInternalServerError, "something went wrong"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &fakeBooking{
				scheduleFn: func(ctx context.Context, in booking.ScheduleInput) (domain.Appointment, error) {
					return domain.Appointment{}, tt.err
				},
			}
			router := newTestRouter(b, nil, nil, nil)

			body := `{"candidate_id":"c1","date":"2026-09-10","time":"10:00","timezone":"UTC"}`
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/booking", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			// internal detail must never leak
			assert.NotContains(t, w.Body.String(), "pg down")
		})
	}
}

func TestSchedule_OK(t *testing.T) {
	at := time.Date(2026, 9, 10, 6, 0, 0, 0, time.UTC)
	b := &fakeBooking{
		scheduleFn: func(ctx context.Context, in booking.ScheduleInput) (domain.Appointment, error) {
			require.Equal(t, "c1", in.CandidateID)
			require.Equal(t, "2026-09-10", in.Date)
			require.Equal(t, "10:00", in.Time)
			require.Equal(t, "Asia/Dubai", in.Timezone)
			return domain.Appointment{ID: 1, CandidateID: in.CandidateID, ScheduledAt: &at}, nil
		},
	}
	router := newTestRouter(b, nil, nil, nil)

	body := `{"candidate_id":"c1","date":"2026-09-10","time":"10:00","timezone":"Asia/Dubai"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"candidate_id":"c1"`)
}

func TestCancel(t *testing.T) {
	var cancelled string
	b := &fakeBooking{
		cancelFn: func(ctx context.Context, candidateID string) error {
			cancelled = candidateID
			return nil
		},
	}
	router := newTestRouter(b, nil, nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/booking?candidate_id=c1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "c1", cancelled)
}

func TestQuestions_DisclosureDenied(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"not scheduled", qsvc.ErrNotScheduled},
		{"too early", qsvc.ErrTooEarly},
		{"expired", qsvc.ErrExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &fakeQuestions{
				fetchFn: func(ctx context.Context, candidateID string) ([]domain.Question, error) {
					return nil, tt.err
				},
			}
			router := newTestRouter(nil, nil, q, nil)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/questions?candidate_id=c1", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusForbidden, w.Code)
		})
	}
}

func TestQuestions_OK(t *testing.T) {
	q := &fakeQuestions{
		fetchFn: func(ctx context.Context, candidateID string) ([]domain.Question, error) {
			return []domain.Question{{ID: 1, Position: "backend-eng", Idx: 1, Text: "Why Go?"}}, nil
		},
	}
	router := newTestRouter(nil, nil, q, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/questions?candidate_id=c1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Why Go?")
}

func TestListCandidates(t *testing.T) {
	c := &fakeCandidates{
		listFn: func(ctx context.Context, status string, order store.CandidateOrder) ([]domain.Candidate, error) {
			require.Equal(t, "For Interview", status)
			require.Equal(t, store.OrderByRecent, order)
			return []domain.Candidate{{ID: "c1", FirstName: "Maria", LastName: "Santos"}}, nil
		},
	}
	router := newTestRouter(nil, c, nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/candidates?status=For+Interview&order=recent", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"c1"`)
}

func TestGetCandidate_NotFound(t *testing.T) {
	c := &fakeCandidates{
		getFn: func(ctx context.Context, id string) (domain.Candidate, error) {
			return domain.Candidate{}, store.ErrNotFound
		},
	}
	router := newTestRouter(nil, c, nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/candidates/ghost", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthAndReset(t *testing.T) {
	conn := &fakeConn{}
	router := newTestRouter(nil, nil, nil, conn)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/connection/reset", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, conn.resets)

	conn.pingErr = errors.New("down")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
