package cmd

import (
	"fmt"
	"sort"

	"github.com/bioseq/alignkit/config"
	"github.com/bioseq/alignkit/pkg/alignkit"
	"github.com/spf13/cobra"
)

// infoCmd prints statistics for one or more sequences.
var infoCmd = &cobra.Command{
	Use:   "info [SEQUENCE...]",
	Short: "Summarize sequences",
	Long: `Info reports length, alphabet, GC content and symbol counts for
each input sequence, and set-level statistics (total length, N50)
when more than one sequence is given.`,
	Example: "  alignkit info ACTGAAGGATATTA\n" +
		"  alignkit info --file contigs.fa",
	RunE: runInfo,
}

func init() {
	infoCmd.Flags().StringP("file", "f", "", "FASTA file with sequences to summarize")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg := config.New()

	file, _ := cmd.Flags().GetString("file")
	if file == "" && len(args) == 0 {
		return fmt.Errorf("expected sequence arguments (or pass --file)")
	}
	seqs, err := inputSequences(cfg, file, args, 1)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, seq := range seqs {
		if i > 0 {
			fmt.Fprintln(out)
		}
		label := seq.ID
		if label == "" {
			label = fmt.Sprintf("seq%d", i+1)
		}
		st := alignkit.Stats(seq)
		fmt.Fprintf(out, "%s\n", label)
		fmt.Fprintf(out, "  length:     %d\n", st.Length)
		fmt.Fprintf(out, "  alphabet:   %s\n", st.Alphabet)
		fmt.Fprintf(out, "  gc-content: %.2f%%\n", st.GCContent*100)
		fmt.Fprintf(out, "  ambiguous:  %d\n", st.Ambiguous)

		symbols := make([]byte, 0, len(st.SymbolCounts))
		for sym := range st.SymbolCounts {
			symbols = append(symbols, sym)
		}
		sort.Slice(symbols, func(a, b int) bool { return symbols[a] < symbols[b] })
		for _, sym := range symbols {
			fmt.Fprintf(out, "  %c: %d\n", sym, st.SymbolCounts[sym])
		}
	}

	if len(seqs) > 1 {
		set, err := alignkit.SetStats(seqs)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "set (%d sequences)\n", set.Count)
		fmt.Fprintf(out, "  total:   %d\n", set.TotalSymbols)
		fmt.Fprintf(out, "  min:     %d\n", set.MinLength)
		fmt.Fprintf(out, "  max:     %d\n", set.MaxLength)
		fmt.Fprintf(out, "  mean:    %.1f\n", set.MeanLength)
		fmt.Fprintf(out, "  median:  %d\n", set.MedianLength)
		fmt.Fprintf(out, "  mean-gc: %.2f%%\n", set.MeanGCContent*100)
		fmt.Fprintf(out, "  n50:     %d\n", set.N50)
	}
	return nil
}
