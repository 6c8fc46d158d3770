package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/wordpass/wordpass-go/internal/crypto"
	"github.com/wordpass/wordpass-go/internal/model"
	"github.com/wordpass/wordpass-go/internal/service"
)

// PreferencesHandler handles HTTP requests for stored preferences.
type PreferencesHandler struct {
	service *service.PreferencesService
}

// NewPreferencesHandler creates a new PreferencesHandler.
func NewPreferencesHandler(svc *service.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{service: svc}
}

// HandleGet handles GET /api/v1/preferences requests.
func (h *PreferencesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.service.Get(r.Context())
	if err != nil {
		slog.Error("get preferences failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, prefs)
}

// HandleUpdate handles PUT /api/v1/preferences requests.
func (h *PreferencesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req model.PreferencesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	prefs, err := h.service.Update(r.Context(), req)
	if err != nil {
		if errors.Is(err, crypto.ErrConfigOutOfRange) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		slog.Error("update preferences failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, prefs)
}

// HandleReset handles POST /api/v1/preferences/reset requests.
func (h *PreferencesHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.service.Reset(r.Context())
	if err != nil {
		slog.Error("reset preferences failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, prefs)
}
