package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// handleListDocuments lists documents with stored artifacts.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	ids, err := s.orchestrator.Store().ListDocuments()
	if err != nil {
		jsonError(w, "failed to list documents: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"documents": ids})
}

// handleGetSummary returns the rendered structure summary.
func (s *Server) handleGetSummary(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	summaryText, err := s.orchestrator.Store().ReadSummary(docID)
	if err != nil {
		jsonError(w, "summary not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(summaryText))
}

// handleListSections returns the ordered section records.
func (s *Server) handleListSections(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	sections, err := s.orchestrator.Store().ReadSections(docID)
	if err != nil {
		jsonError(w, "sections not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"sections": sections})
}

// handleGetSection returns one section's stored text file.
func (s *Server) handleGetSection(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || idx < 1 {
		jsonError(w, "index must be a positive integer", http.StatusBadRequest)
		return
	}
	text, err := s.orchestrator.Store().ReadSectionFile(docID, idx)
	if err != nil {
		jsonError(w, "section not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(text))
}

// handleDeleteDocument removes a document's artifacts.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	if err := s.orchestrator.Store().Delete(docID); err != nil {
		jsonError(w, "failed to delete document: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"deleted": docID})
}
