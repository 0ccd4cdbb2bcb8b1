package api

import (
	"encoding/json"
	"net/http"
)

// handleLLMStats reports analysis-call latencies plus current pipeline
// queue depth.
func (s *Server) handleLLMStats(w http.ResponseWriter, r *http.Request) {
	if s.claude == nil || s.claude.Stats == nil {
		jsonError(w, "llm stats unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"model":       s.claude.Model(),
		"enabled":     s.claude.Enabled(),
		"queue_depth": s.orchestrator.QueueDepth(),
		"latency":     s.claude.Stats.Snapshot(),
	})
}
