package handlers

import (
	"encoding/json"
	"net/http"

	"jamesfarrell.me/youtube-summarizer/internal/pipeline"
	"jamesfarrell.me/youtube-summarizer/internal/transcript"
)

type SummaryRequest struct {
	VideoID string `json:"video_id"`
}

type SummaryResponse struct {
	VideoID string `json:"video_id"`
	Summary string `json:"summary"`
}

type SummaryHandler struct {
	fetcher    pipeline.Fetcher
	summarizer pipeline.Summarizer
}

func NewSummaryHandler(fetcher pipeline.Fetcher, summarizer pipeline.Summarizer) *SummaryHandler {
	return &SummaryHandler{fetcher: fetcher, summarizer: summarizer}
}

// CreateSummary runs the fetch, assemble, summarize sequence for one video.
// Nothing is persisted between requests.
func (h *SummaryHandler) CreateSummary(w http.ResponseWriter, r *http.Request) {
	var req SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.VideoID == "" {
		http.Error(w, "video_id is required", http.StatusBadRequest)
		return
	}

	resp, err := h.fetcher.Fetch(r.Context(), req.VideoID)
	if err != nil {
		http.Error(w, "failed to retrieve transcript: "+err.Error(), http.StatusBadGateway)
		return
	}

	summaryText, err := h.summarizer.Summarize(r.Context(), transcript.Assemble(resp))
	if err != nil {
		summaryText = pipeline.FailedSummary
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SummaryResponse{VideoID: req.VideoID, Summary: summaryText})
}
