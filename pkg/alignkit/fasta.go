package alignkit

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bioseq/alignkit/internal/alphabet"
	"github.com/bioseq/alignkit/internal/sequence"
)

// ParseFASTA parses FASTA records from a reader. When alpha is nil the
// alphabet is inferred per record.
func ParseFASTA(r io.Reader, alpha *Alphabet) ([]*Sequence, error) {
	sequences := make([]*Sequence, 0)
	scanner := bufio.NewScanner(r)

	var currentID, currentDesc string
	var currentData strings.Builder

	flush := func() error {
		if currentData.Len() == 0 {
			return nil
		}
		a := alpha
		if a == nil {
			inferred, err := alphabet.Infer(strings.ToUpper(currentData.String()))
			if err != nil {
				return fmt.Errorf("record %q: %w", currentID, err)
			}
			a = inferred
		}
		seq, err := sequence.WithID(a, currentData.String(), currentID)
		if err != nil {
			return fmt.Errorf("record %q: %w", currentID, err)
		}
		seq.Description = currentDesc
		sequences = append(sequences, seq)
		currentData.Reset()
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return nil, err
			}
			header := line[1:]
			parts := strings.SplitN(header, " ", 2)
			currentID = parts[0]
			if len(parts) > 1 {
				currentDesc = parts[1]
			} else {
				currentDesc = ""
			}
		} else {
			currentData.WriteString(line)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return sequences, nil
}

// ReadFASTA reads sequences from a FASTA file.
func ReadFASTA(filename string, alpha *Alphabet) ([]*Sequence, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()
	return ParseFASTA(file, alpha)
}

// WriteFASTA writes sequences to a FASTA file.
func WriteFASTA(filename string, sequences []*Sequence) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()
	for _, seq := range sequences {
		if _, err := file.WriteString(seq.ToFASTA()); err != nil {
			return fmt.Errorf("writing sequence: %w", err)
		}
	}
	return nil
}
