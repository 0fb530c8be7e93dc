package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-optimizer/internal/pipeline"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// OptimizeRequest is the request body for POST /api/optimize.
type OptimizeRequest struct {
	Document    *types.Document              `json:"document" validate:"required"`
	JobText     string                       `json:"job_text" validate:"required,min=10"`
	Library     []types.ProjectEntry         `json:"library,omitempty"`
	Overrides   map[types.SectionName]string `json:"overrides,omitempty"`
	TopProjects int                          `json:"top_projects,omitempty" validate:"gte=0"`
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error string `json:"error"`
}

// handleOptimize runs one optimization over the posted document.
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	var req OptimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	if err := s.validate.Struct(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			writeError(w, http.StatusBadRequest, "invalid request: field "+verrs[0].Field()+" failed "+verrs[0].Tag())
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := pipeline.Run(r.Context(), &types.OptimizationRequest{
		Document:    req.Document,
		JobText:     req.JobText,
		Library:     req.Library,
		Overrides:   req.Overrides,
		TopProjects: req.TopProjects,
	}, pipeline.Options{Generator: s.generator})
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
