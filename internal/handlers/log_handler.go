package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tracklight/wellbeing/internal/errs"
	"github.com/tracklight/wellbeing/internal/httpx"
	"github.com/tracklight/wellbeing/internal/middleware"
	"github.com/tracklight/wellbeing/internal/models"
	"github.com/tracklight/wellbeing/internal/services"
	"github.com/tracklight/wellbeing/internal/utils"
	"github.com/tracklight/wellbeing/internal/validation"
)

type LogHandler struct {
	logs *services.LogService
}

func NewLogHandler(logs *services.LogService) *LogHandler {
	return &LogHandler{logs: logs}
}

func (h *LogHandler) Routes(r chi.Router, guard func(http.Handler) http.Handler) {
	r.Use(guard)
	r.Post("/", h.Upsert)
	r.Get("/", h.ListByDate)
	r.Get("/count", h.Count)
	r.Delete("/{id}", h.Delete)
}

type upsertLogRequest struct {
	WellBeingID string `json:"wellBeingId" validate:"required,uuid"`
	Date        string `json:"date" validate:"required"`
	State       string `json:"state" validate:"required"`
	Note        string `json:"note"`
}

// Upsert answers 201 when a new entry was created for the day and 200
// when the existing one was overwritten in place.
func (h *LogHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountID(r.Context())
	if !ok {
		httpx.Error(w, errs.New(errs.KindUnauthenticated, "Invalid or missing token"))
		return
	}

	var req upsertLogRequest
	if err := decode(r, &req); err != nil {
		httpx.Error(w, err)
		return
	}
	if err := validation.Check(req); err != nil {
		httpx.Error(w, err)
		return
	}

	wellBeingID, err := uuid.Parse(req.WellBeingID)
	if err != nil {
		httpx.Error(w, errs.New(errs.KindNotFound, "Well-being not found"))
		return
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		httpx.Error(w, errs.Validation([]errs.FieldError{
			{Field: "date", Message: "Valid date is required"},
		}))
		return
	}

	log, created, err := h.logs.Upsert(r.Context(), accountID, wellBeingID, date, models.State(req.State), req.Note)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	httpx.JSON(w, status, log)
}

func (h *LogHandler) ListByDate(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountID(r.Context())
	if !ok {
		httpx.Error(w, errs.New(errs.KindUnauthenticated, "Invalid or missing token"))
		return
	}

	date, err := utils.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		httpx.Error(w, errs.Validation([]errs.FieldError{
			{Field: "date", Message: "Valid date is required"},
		}))
		return
	}

	entries, err := h.logs.ListByDate(r.Context(), accountID, date)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	if entries == nil {
		entries = []*models.LogEntry{}
	}

	httpx.JSON(w, http.StatusOK, entries)
}

func (h *LogHandler) Count(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountID(r.Context())
	if !ok {
		httpx.Error(w, errs.New(errs.KindUnauthenticated, "Invalid or missing token"))
		return
	}

	count, err := h.logs.CountDistinctDays(r.Context(), accountID)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]int64{"count": count})
}

func (h *LogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountID(r.Context())
	if !ok {
		httpx.Error(w, errs.New(errs.KindUnauthenticated, "Invalid or missing token"))
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, errs.New(errs.KindNotFound, "Log not found"))
		return
	}

	if err := h.logs.Remove(r.Context(), accountID, id); err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, messageResponse{Message: "Log removed successfully"})
}
