package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tracklight/wellbeing/internal/errs"
	"github.com/tracklight/wellbeing/internal/httpx"
	"github.com/tracklight/wellbeing/internal/middleware"
	"github.com/tracklight/wellbeing/internal/services"
	"github.com/tracklight/wellbeing/internal/validation"
)

type UserHandler struct {
	provisioning *services.ProvisioningService
	auth         *services.AuthService
}

func NewUserHandler(provisioning *services.ProvisioningService, auth *services.AuthService) *UserHandler {
	return &UserHandler{provisioning: provisioning, auth: auth}
}

// Routes mounts the user endpoints; guard protects the profile pair.
func (h *UserHandler) Routes(r chi.Router, guard func(http.Handler) http.Handler) {
	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)
	r.Post("/forgot-password", h.ForgotPassword)
	r.Group(func(r chi.Router) {
		r.Use(guard)
		r.Get("/profile", h.Profile)
		r.Put("/profile", h.UpdateProfile)
	})
}

type signupRequest struct {
	FullName string `json:"fullName" validate:"required,notblank"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decode(r, &req); err != nil {
		httpx.Error(w, err)
		return
	}
	if err := validation.Check(req); err != nil {
		httpx.Error(w, err)
		return
	}

	resp, err := h.provisioning.Signup(r.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, map[string]any{
		"account": resp.Account,
		"token":   resp.Token,
	})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		httpx.Error(w, err)
		return
	}
	if err := validation.Check(req); err != nil {
		httpx.Error(w, err)
		return
	}

	resp, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"account": resp.Account,
		"token":   resp.Token,
	})
}

type forgotPasswordRequest struct {
	Email           string `json:"email" validate:"required,email"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

func (h *UserHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := decode(r, &req); err != nil {
		httpx.Error(w, err)
		return
	}
	if err := validation.Check(req); err != nil {
		httpx.Error(w, err)
		return
	}

	if err := h.auth.ResetPassword(r.Context(), req.Email, req.NewPassword); err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, messageResponse{Message: "Password updated successfully"})
}

func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountID(r.Context())
	if !ok {
		httpx.Error(w, errs.New(errs.KindUnauthenticated, "Invalid or missing token"))
		return
	}

	account, err := h.auth.Profile(r.Context(), accountID)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, account)
}

type updateProfileRequest struct {
	FullName        *string `json:"fullName" validate:"omitempty,notblank"`
	OldPassword     *string `json:"oldPassword"`
	NewPassword     *string `json:"newPassword" validate:"omitempty,min=6"`
	ConfirmPassword *string `json:"confirmPassword"`
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountID(r.Context())
	if !ok {
		httpx.Error(w, errs.New(errs.KindUnauthenticated, "Invalid or missing token"))
		return
	}

	var req updateProfileRequest
	if err := decode(r, &req); err != nil {
		httpx.Error(w, err)
		return
	}
	if err := validation.Check(req); err != nil {
		httpx.Error(w, err)
		return
	}
	if err := checkPasswordChange(req); err != nil {
		httpx.Error(w, err)
		return
	}

	account, err := h.auth.UpdateProfile(r.Context(), accountID, services.ProfileUpdate{
		FullName:    req.FullName,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, account)
}

// checkPasswordChange enforces the conditional rules validator tags
// cannot express: changing the password requires the old one and a
// matching confirmation.
func checkPasswordChange(req updateProfileRequest) error {
	if req.NewPassword == nil {
		return nil
	}

	var details []errs.FieldError
	if req.OldPassword == nil || *req.OldPassword == "" {
		details = append(details, errs.FieldError{Field: "oldPassword", Message: "Old password is required"})
	}
	if req.ConfirmPassword == nil || *req.ConfirmPassword != *req.NewPassword {
		details = append(details, errs.FieldError{Field: "confirmPassword", Message: "Passwords must match"})
	}
	if len(details) > 0 {
		return errs.Validation(details)
	}
	return nil
}

type messageResponse struct {
	Message string `json:"message"`
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errs.Wrap(errs.KindValidationFailed, "Invalid JSON body", err)
	}
	return nil
}
