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
	"github.com/tracklight/wellbeing/internal/validation"
)

type WellBeingHandler struct {
	wellBeings *services.WellBeingService
}

func NewWellBeingHandler(wellBeings *services.WellBeingService) *WellBeingHandler {
	return &WellBeingHandler{wellBeings: wellBeings}
}

func (h *WellBeingHandler) Routes(r chi.Router, guard func(http.Handler) http.Handler) {
	r.Use(guard)
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Delete("/{id}", h.Delete)
}

func (h *WellBeingHandler) List(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountID(r.Context())
	if !ok {
		httpx.Error(w, errs.New(errs.KindUnauthenticated, "Invalid or missing token"))
		return
	}

	wellBeings, err := h.wellBeings.List(r.Context(), accountID)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	if wellBeings == nil {
		wellBeings = []*models.WellBeing{}
	}

	httpx.JSON(w, http.StatusOK, wellBeings)
}

type createWellBeingRequest struct {
	Name string `json:"name" validate:"required,notblank"`
}

func (h *WellBeingHandler) Create(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountID(r.Context())
	if !ok {
		httpx.Error(w, errs.New(errs.KindUnauthenticated, "Invalid or missing token"))
		return
	}

	var req createWellBeingRequest
	if err := decode(r, &req); err != nil {
		httpx.Error(w, err)
		return
	}
	if err := validation.Check(req); err != nil {
		httpx.Error(w, err)
		return
	}

	wellBeing, err := h.wellBeings.Create(r.Context(), accountID, req.Name)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, wellBeing)
}

func (h *WellBeingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountID(r.Context())
	if !ok {
		httpx.Error(w, errs.New(errs.KindUnauthenticated, "Invalid or missing token"))
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, errs.New(errs.KindNotFound, "Well-being not found"))
		return
	}

	if err := h.wellBeings.Remove(r.Context(), accountID, id); err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, messageResponse{Message: "Well-being removed successfully"})
}
