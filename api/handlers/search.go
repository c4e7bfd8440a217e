package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bioseq/alignkit/pkg/alignkit"
)

// SearchRequest represents a pattern search request.
type SearchRequest struct {
	Sequence string `json:"sequence"`
	Pattern  string `json:"pattern"`
	Alphabet string `json:"alphabet,omitempty"`
	Mode     string `json:"mode,omitempty"` // scan (default) or index
	Wildcard string `json:"wildcard,omitempty"`
	CaseFold bool   `json:"case_fold,omitempty"`
}

// SearchResponse represents the response for a pattern search.
type SearchResponse struct {
	Offsets []int `json:"offsets"`
	Count   int   `json:"count"`
}

// SearchHandler handles pattern search requests in both access modes.
func SearchHandler(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var seq *alignkit.Sequence
	var err error
	if req.Alphabet != "" {
		seq, err = alignkit.NewSequenceOver(req.Alphabet, req.Sequence)
	} else {
		seq, err = alignkit.NewSequence(req.Sequence)
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	opts := &alignkit.SearchOptions{CaseFold: req.CaseFold}
	if req.Wildcard != "" {
		opts.Wildcard = req.Wildcard[0]
	}

	var hits *alignkit.Hits
	switch req.Mode {
	case "", "scan":
		hits, err = alignkit.Scan(seq, req.Pattern, opts)
	case "index":
		hits, err = alignkit.Lookup(seq, req.Pattern, opts)
	default:
		writeError(w, http.StatusBadRequest, "mode must be scan or index")
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	offsets := hits.Collect()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SearchResponse{Offsets: offsets, Count: len(offsets)})
}
