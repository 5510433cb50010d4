package handler

import (
	"net/http"

	"github.com/mutepass/mutepass-go/internal/model"
	"github.com/mutepass/mutepass-go/internal/service"
)

// AnalyzerHandler handles HTTP requests for password strength analysis.
type AnalyzerHandler struct {
	service *service.AnalyzerService
}

// NewAnalyzerHandler creates a new AnalyzerHandler.
func NewAnalyzerHandler(svc *service.AnalyzerService) *AnalyzerHandler {
	return &AnalyzerHandler{service: svc}
}

// HandleAnalyze handles POST /api/v1/analyze requests.
func (h *AnalyzerHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req model.AnalyzeRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	writeJSON(w, http.StatusOK, h.service.Analyze(req))
}
