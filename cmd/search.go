package cmd

import (
	"fmt"

	"github.com/bioseq/alignkit/config"
	"github.com/bioseq/alignkit/pkg/alignkit"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// searchCmd finds pattern occurrences in a sequence.
var searchCmd = &cobra.Command{
	Use:   "search PATTERN [SEQUENCE]",
	Short: "Find a pattern in a sequence",
	Long: `Search reports every offset where the pattern occurs in the
sequence, overlaps included. The pattern may use the configured
wildcard symbol to match any alphabet symbol, and ambiguity codes
in the sequence match their base expansions. Index mode builds a
reusable substring index on first use; scan mode streams through
the sequence once.`,
	Example: "  alignkit search GCTCANGGG AGCTAGGTAGCTCAAAAAAGGG\n" +
		"  alignkit search --file genome.fa --search-mode index TATA",
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringP("file", "f", "", "FASTA file with sequences to search")
	searchCmd.Flags().String("search-mode", "scan", "access mode: scan or index")
	searchCmd.Flags().StringP("wildcard", "w", "N", "pattern symbol matching any alphabet symbol; empty disables")
	searchCmd.Flags().Bool("case-fold", true, "fold pattern case before matching")
	searchCmd.Flags().BoolP("count", "c", false, "print only the number of occurrences")

	must(viper.BindPFlag("search.mode", searchCmd.Flags().Lookup("search-mode")))
	must(viper.BindPFlag("search.wildcard", searchCmd.Flags().Lookup("wildcard")))
	must(viper.BindPFlag("search.case-fold", searchCmd.Flags().Lookup("case-fold")))

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := config.New()

	if len(args) < 1 {
		return fmt.Errorf("expected a pattern argument")
	}
	pattern := args[0]

	file, _ := cmd.Flags().GetString("file")
	if file == "" && len(args) != 2 {
		return fmt.Errorf("expected a sequence argument (or pass --file)")
	}
	seqs, err := inputSequences(cfg, file, args[1:], 1)
	if err != nil {
		return err
	}

	opts := &alignkit.SearchOptions{CaseFold: cfg.Search.CaseFold}
	if cfg.Search.Wildcard != "" {
		opts.Wildcard = cfg.Search.Wildcard[0]
	}

	find := alignkit.Scan
	switch cfg.Search.Mode {
	case "", "scan":
	case "index":
		find = alignkit.Lookup
	default:
		return fmt.Errorf("unknown search mode %q", cfg.Search.Mode)
	}

	countOnly, _ := cmd.Flags().GetBool("count")
	for _, seq := range seqs {
		hits, err := find(seq, pattern, opts)
		if err != nil {
			return err
		}
		offsets := hits.Collect()

		label := seq.ID
		if label == "" {
			label = "seq"
		}
		if countOnly {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", label, len(offsets))
			continue
		}
		for _, off := range offsets {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", label, off)
		}
	}
	return nil
}
