package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bioseq/alignkit/pkg/alignkit"
)

// SequenceRequest represents a request carrying one sequence.
type SequenceRequest struct {
	Sequence string `json:"sequence"`
	Alphabet string `json:"alphabet,omitempty"`
}

func (req *SequenceRequest) build() (*alignkit.Sequence, error) {
	if req.Alphabet != "" {
		return alignkit.NewSequenceOver(req.Alphabet, req.Sequence)
	}
	return alignkit.NewSequence(req.Sequence)
}

// ValidateResponse reports the outcome of sequence validation.
type ValidateResponse struct {
	Valid    bool   `json:"valid"`
	Alphabet string `json:"alphabet,omitempty"`
	Error    string `json:"error,omitempty"`
}

// ValidateHandler validates sequence data against an alphabet, inferring
// one when none is named.
func ValidateHandler(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	seq, err := req.build()
	if err != nil {
		json.NewEncoder(w).Encode(ValidateResponse{Valid: false, Error: err.Error()})
		return
	}
	json.NewEncoder(w).Encode(ValidateResponse{Valid: true, Alphabet: seq.Alphabet().Name()})
}

// InfoResponse summarizes a sequence.
type InfoResponse struct {
	Length    int            `json:"length"`
	Alphabet  string         `json:"alphabet"`
	GCContent float64        `json:"gc_content"`
	Counts    map[string]int `json:"counts"`
	Ambiguous int            `json:"ambiguous"`
}

// SequenceInfoHandler returns sequence statistics.
func SequenceInfoHandler(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	seq, err := req.build()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	st := alignkit.Stats(seq)
	counts := make(map[string]int, len(st.SymbolCounts))
	for sym, n := range st.SymbolCounts {
		counts[string(sym)] = n
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(InfoResponse{
		Length:    st.Length,
		Alphabet:  st.Alphabet,
		GCContent: st.GCContent,
		Counts:    counts,
		Ambiguous: st.Ambiguous,
	})
}

// TransformResponse carries a derived sequence.
type TransformResponse struct {
	Sequence string `json:"sequence"`
	Alphabet string `json:"alphabet"`
}

func handleTransform(w http.ResponseWriter, r *http.Request,
	transform func(*alignkit.Sequence) (*alignkit.Sequence, error)) {
	var req SequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	seq, err := req.build()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	out, err := transform(seq)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(TransformResponse{
		Sequence: out.Symbols(),
		Alphabet: out.Alphabet().Name(),
	})
}

// ComplementHandler returns the complement of a nucleotide sequence.
func ComplementHandler(w http.ResponseWriter, r *http.Request) {
	handleTransform(w, r, func(s *alignkit.Sequence) (*alignkit.Sequence, error) {
		return s.Complement()
	})
}

// ReverseComplementHandler returns the reverse complement of a nucleotide
// sequence.
func ReverseComplementHandler(w http.ResponseWriter, r *http.Request) {
	handleTransform(w, r, func(s *alignkit.Sequence) (*alignkit.Sequence, error) {
		return s.ReverseComplement()
	})
}

// TranscribeHandler converts DNA to RNA.
func TranscribeHandler(w http.ResponseWriter, r *http.Request) {
	handleTransform(w, r, func(s *alignkit.Sequence) (*alignkit.Sequence, error) {
		return s.Transcribe()
	})
}
