package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dgallion1/docsplit/internal/analyze"
)

type analyzeRequest struct {
	Question     string `json:"question"`
	Preset       string `json:"preset,omitempty"`
	CustomPrompt string `json:"custom_prompt,omitempty"`
	// Sections lists 1-based section positions to include verbatim in
	// the prompt, beyond the always-included structure summary.
	Sections []int `json:"sections,omitempty"`
}

// handleAnalyze asks Claude a question about a segmented document.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if s.claude == nil || !s.claude.Enabled() {
		jsonError(w, "analysis unavailable: anthropic api key not configured", http.StatusServiceUnavailable)
		return
	}

	docID := chi.URLParam(r, "docID")

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Question == "" {
		jsonError(w, "question is required", http.StatusBadRequest)
		return
	}

	preset := analyze.Preset(req.Preset)
	if preset == "" {
		preset = analyze.PresetGeneric
	}
	if req.CustomPrompt != "" {
		preset = analyze.PresetCustom
	}
	persona, err := analyze.SystemPrompt(preset, req.CustomPrompt)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	docContext, err := s.orchestrator.Store().ReadContext(docID)
	if err != nil {
		jsonError(w, "document context not found", http.StatusNotFound)
		return
	}

	// Pull requested section texts; missing ones are skipped, matching
	// the engine's degrade-gracefully posture.
	sectionTexts := make(map[string]string)
	var order []string
	for _, idx := range req.Sections {
		if idx < 1 {
			continue
		}
		text, err := s.orchestrator.Store().ReadSectionFile(docID, idx)
		if err != nil {
			s.log.Warn("requested section not found", "doc_id", docID, "section", idx)
			continue
		}
		name := fmt.Sprintf("section %d", idx)
		sectionTexts[name] = text
		order = append(order, name)
	}

	system := analyze.ContextSystemPrompt(persona, docContext)
	prompt := analyze.BuildQuestionPrompt(req.Question, sectionTexts, order)

	answer, err := s.claude.Ask(r.Context(), system, prompt)
	if err != nil {
		s.log.Error("analysis failed", "doc_id", docID, "error", err)
		jsonError(w, "analysis failed: "+err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"doc_id": docID,
		"preset": string(preset),
		"answer": answer,
	})
}
