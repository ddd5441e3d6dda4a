// internal/api/handlers.go
package api

import (
	"encoding/json"
	"io"
	"net/http"

	"layout-engine/internal/common/logger"
	"layout-engine/internal/engine"
	"layout-engine/internal/models"
)

const maxBodyBytes = 1 << 20

type handler struct {
	engine *engine.Engine
	logger logger.Logger
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (h *handler) recommend(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	if err := validateJSON(recommendValidator, body); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.RecommendRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	resp := h.engine.Recommend(r.Context(), &req)
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) feedback(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	if err := validateJSON(feedbackValidator, body); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.FeedbackRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	if err := h.engine.RecordFeedback(r.Context(), req.UserID, req.CandidateID, req.Score); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *handler) templates(w http.ResponseWriter, r *http.Request) {
	templates := h.engine.Templates()
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"templates": templates,
		"count":     len(templates),
	})
}

func (h *handler) clearCache(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.ClearCache(r.Context()); err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to clear cache")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("response encoding failed", map[string]interface{}{"error": err.Error()})
	}
}

func (h *handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, errorResponse{Success: false, Error: message})
}
