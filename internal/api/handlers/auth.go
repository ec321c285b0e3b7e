package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/inotebook/server/internal/api/middleware"
	"github.com/inotebook/server/internal/config"
	"github.com/inotebook/server/internal/domain"
	"github.com/inotebook/server/internal/service"
	"github.com/inotebook/server/internal/validation"
)

type AuthHandler struct {
	authService *service.AuthService
	validate    *validation.Validator
	cfg         *config.Config
}

func NewAuthHandler(authService *service.AuthService, validate *validation.Validator, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validate,
		cfg:         cfg,
	}
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=5"`
}

func (h *AuthHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "error": "Invalid request body"})
		return
	}

	if fieldErrors := h.validate.Validate(req); fieldErrors != nil {
		writeValidationErrors(w, fieldErrors)
		return
	}

	_, err := h.authService.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"success": false,
				"error":   "Sorry a user with this email already exists",
			})
			return
		}
		log.Printf("ERROR [AuthHandler.CreateUser] %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "User created successfully",
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "error": "Invalid request body"})
		return
	}

	if fieldErrors := h.validate.Validate(req); fieldErrors != nil {
		writeValidationErrors(w, fieldErrors)
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// Same body for unknown email and wrong password
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"success": false,
				"error":   "Please try to login with correct credentials",
			})
			return
		}
		log.Printf("ERROR [AuthHandler.Login] %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
		return
	}

	// The token travels only in the cookie, never in the body
	http.SetCookie(w, h.sessionCookie(result.SessionToken, int(h.cfg.SessionTokenTTL.Seconds())))

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Logged in successfully",
	})
}

func (h *AuthHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Please authenticate using a valid token"})
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "User not found"})
			return
		}
		log.Printf("ERROR [AuthHandler.GetUser] %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(middleware.SessionCookieName)
	if err != nil || cookie.Value == "" || cookie.Value == "undefined" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "User is not logged in"})
		return
	}

	expired := h.sessionCookie("", -1)
	http.SetCookie(w, expired)

	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "error": "Invalid request body"})
		return
	}

	if fieldErrors := h.validate.Validate(req); fieldErrors != nil {
		writeValidationErrors(w, fieldErrors)
		return
	}

	if err := h.authService.ForgotPassword(r.Context(), req.Email); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"success": false,
				"message": "User not found",
			})
			return
		}
		log.Printf("ERROR [AuthHandler.ForgotPassword] %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Reset link sent to your email.",
	})
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "error": "Invalid request body"})
		return
	}

	if fieldErrors := h.validate.Validate(req); fieldErrors != nil {
		writeValidationErrors(w, fieldErrors)
		return
	}

	err := h.authService.ResetPassword(r.Context(), token, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidToken):
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"success": false,
				"message": "Invalid or expired token",
			})
		case errors.Is(err, domain.ErrSamePassword):
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"success": false,
				"message": "New password cannot be same as old password",
			})
		default:
			log.Printf("ERROR [AuthHandler.ResetPassword] %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Password reset successful",
	})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: h.cfg.CookieSameSite,
	}
}
