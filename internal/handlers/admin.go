// Package handlers contains the HTTP request handlers.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ItsCoreyE/creatorsite/internal/auth"
	"github.com/ItsCoreyE/creatorsite/internal/models"
	pkghttp "github.com/ItsCoreyE/creatorsite/pkg/http"
)

// AdminAuthService defines the interface for admin login business logic
type AdminAuthService interface {
	Login(ip, password string) (token string, retryAfter int, err error)
	SessionMaxAge() int
}

// AdminHandler handles admin session endpoints
type AdminHandler struct {
	service  AdminAuthService
	ipConfig *pkghttp.IPConfig
	cookies  auth.CookieConfig
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(service AdminAuthService, ipConfig *pkghttp.IPConfig, cookies auth.CookieConfig) *AdminHandler {
	return &AdminHandler{
		service:  service,
		ipConfig: ipConfig,
		cookies:  cookies,
	}
}

// VerifyRequest represents the request body for admin login
type VerifyRequest struct {
	Password string `json:"password" validate:"required"`
}

// VerifyResponse represents a successful admin login
type VerifyResponse struct {
	Success bool `json:"success"`
}

// Verify handles the admin password check and issues the session cookie
func (h *AdminHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	ipAddress := pkghttp.ExtractClientIP(r, h.ipConfig)

	token, retryAfter, err := h.service.Login(ipAddress, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRateLimited):
			pkghttp.WriteTooManyRequests(w, "Too many failed attempts. Please try again later.", retryAfter)
		case errors.Is(err, models.ErrUnauthorized):
			pkghttp.WriteUnauthorized(w, "Invalid password")
		default:
			pkghttp.WriteInternalError(w, "Internal server error")
		}
		return
	}

	auth.SetSessionCookie(w, token, h.service.SessionMaxAge(), h.cookies)
	pkghttp.WriteJSON(w, http.StatusOK, VerifyResponse{Success: true})
}

// Logout clears the session cookie. Always succeeds: there is no server-side
// session state to revoke.
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w, h.cookies)
	pkghttp.WriteJSON(w, http.StatusOK, VerifyResponse{Success: true})
}
