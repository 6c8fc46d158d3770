package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/wordpass/wordpass-go/internal/crypto"
	"github.com/wordpass/wordpass-go/internal/model"
	"github.com/wordpass/wordpass-go/internal/service"
)

// GeneratorHandler handles HTTP requests for passphrase generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Generate(r.Context(), req)
	if err != nil {
		writeGenerationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleEstimate handles POST /api/v1/entropy requests.
func (h *GeneratorHandler) HandleEstimate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Estimate(r.Context(), req)
	if err != nil {
		writeGenerationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleWordList handles GET /api/v1/wordlist requests.
func (h *GeneratorHandler) HandleWordList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.WordList())
}

func writeGenerationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, crypto.ErrConfigOutOfRange):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, crypto.ErrWordListUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse(err.Error()))
	default:
		slog.Error("generation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}
