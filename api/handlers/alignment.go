package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bioseq/alignkit/pkg/alignkit"
)

// AlignmentRequest represents an alignment request.
type AlignmentRequest struct {
	SequenceA     string `json:"sequence_a"`
	SequenceB     string `json:"sequence_b"`
	Alphabet      string `json:"alphabet,omitempty"`
	Matrix        string `json:"matrix,omitempty"`
	GapOpen       *int   `json:"gap_open,omitempty"`
	GapExtend     *int   `json:"gap_extend,omitempty"`
	MaxAlignments int    `json:"max_alignments,omitempty"`
}

// AlignedResult is one alignment in a response.
type AlignedResult struct {
	AlignedA   string  `json:"aligned_a"`
	AlignedB   string  `json:"aligned_b"`
	Score      int     `json:"score"`
	StartA     int     `json:"start_a"`
	EndA       int     `json:"end_a"`
	StartB     int     `json:"start_b"`
	EndB       int     `json:"end_b"`
	Identity   float64 `json:"identity"`
	CIGAR      string  `json:"cigar"`
	Matches    int     `json:"matches"`
	Mismatches int     `json:"mismatches"`
	Gaps       int     `json:"gaps"`
}

// AlignmentResponse represents the response for alignment.
type AlignmentResponse struct {
	Mode       string          `json:"mode"`
	Alignments []AlignedResult `json:"alignments"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func (req *AlignmentRequest) sequences() (*alignkit.Sequence, *alignkit.Sequence, error) {
	build := func(data string) (*alignkit.Sequence, error) {
		if req.Alphabet != "" {
			return alignkit.NewSequenceOver(req.Alphabet, data)
		}
		return alignkit.NewSequence(data)
	}
	a, err := build(req.SequenceA)
	if err != nil {
		return nil, nil, err
	}
	b, err := build(req.SequenceB)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func (req *AlignmentRequest) params(mode alignkit.Mode) (*alignkit.Params, error) {
	p := alignkit.DefaultParams()
	p.Mode = mode
	if req.Matrix != "" {
		m, err := alignkit.MatrixByName(req.Matrix)
		if err != nil {
			return nil, err
		}
		p.Matrix = m
	}
	if req.GapOpen != nil {
		p.GapOpen = *req.GapOpen
	}
	if req.GapExtend != nil {
		p.GapExtend = *req.GapExtend
	}
	if req.MaxAlignments > 0 {
		p.MaxAlignments = req.MaxAlignments
	}
	return p, nil
}

func handleAlign(w http.ResponseWriter, r *http.Request, mode alignkit.Mode) {
	var req AlignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, b, err := req.sequences()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	p, err := req.params(mode)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	results, err := alignkit.AlignContext(r.Context(), a, b, p)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := AlignmentResponse{Mode: mode.String()}
	for _, res := range results {
		resp.Alignments = append(resp.Alignments, AlignedResult{
			AlignedA:   res.AlignedA,
			AlignedB:   res.AlignedB,
			Score:      res.Score,
			StartA:     res.StartA,
			EndA:       res.EndA,
			StartB:     res.StartB,
			EndB:       res.EndB,
			Identity:   res.Identity,
			CIGAR:      res.ToCIGAR(),
			Matches:    res.MatchCount(),
			Mismatches: res.MismatchCount(),
			Gaps:       res.TotalGaps(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// GlobalAlignHandler handles global alignment requests.
func GlobalAlignHandler(w http.ResponseWriter, r *http.Request) {
	handleAlign(w, r, alignkit.Global)
}

// LocalAlignHandler handles local alignment requests.
func LocalAlignHandler(w http.ResponseWriter, r *http.Request) {
	handleAlign(w, r, alignkit.Local)
}

// ScoreResponse represents the response for alignment score.
type ScoreResponse struct {
	Score int `json:"score"`
}

// AlignmentScoreHandler handles score-only alignment requests.
func AlignmentScoreHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, b, err := req.sequences()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	p, err := req.params(alignkit.Global)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	score, err := alignkit.Score(a, b, p)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ScoreResponse{Score: score})
}
