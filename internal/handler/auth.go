package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/wordpass/wordpass-go/internal/model"
	"github.com/wordpass/wordpass-go/internal/service"
)

// AuthHandler handles HTTP requests for operator tokens.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleToken handles POST /api/v1/auth/token requests.
func (h *AuthHandler) HandleToken(w http.ResponseWriter, r *http.Request) {
	var req model.TokenRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.IssueToken(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrKeyRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrInvalidKey):
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
		default:
			slog.Error("issue token failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
