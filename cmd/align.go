package cmd

import (
	"fmt"

	"github.com/bioseq/alignkit/config"
	"github.com/bioseq/alignkit/pkg/alignkit"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// alignCmd aligns two sequences from the command line or a FASTA file.
var alignCmd = &cobra.Command{
	Use:   "align [SEQ_A] [SEQ_B]",
	Short: "Align two sequences",
	Long: `Align computes the optimal pairwise alignment of two sequences
with affine gap penalties. Sequences come from the two positional
arguments or, with --file, from the first two records of a FASTA file.`,
	Example: "  alignkit align ACTGAAGGATATTA ACTGTCCTAGATATTA\n" +
		"  alignkit align --file pair.fa --mode local --matrix blosum62",
	RunE: runAlign,
}

func init() {
	alignCmd.Flags().StringP("file", "f", "", "FASTA file with the two sequences to align")
	alignCmd.Flags().StringP("mode", "m", "global", "alignment mode: global or local")
	alignCmd.Flags().String("matrix", "nucleotide", "similarity matrix: nucleotide, rna or blosum62")
	alignCmd.Flags().Int("gap-open", -6, "score for opening a gap (<= 0)")
	alignCmd.Flags().Int("gap-extend", -1, "score for each gap position (<= 0, >= gap-open)")
	alignCmd.Flags().IntP("max-alignments", "n", 1, "number of tied optimal alignments to report")
	alignCmd.Flags().Bool("score-only", false, "print only the score, computed in linear space")

	must(viper.BindPFlag("align.mode", alignCmd.Flags().Lookup("mode")))
	must(viper.BindPFlag("align.matrix", alignCmd.Flags().Lookup("matrix")))
	must(viper.BindPFlag("align.gap-open", alignCmd.Flags().Lookup("gap-open")))
	must(viper.BindPFlag("align.gap-extend", alignCmd.Flags().Lookup("gap-extend")))
	must(viper.BindPFlag("align.max-alignments", alignCmd.Flags().Lookup("max-alignments")))

	rootCmd.AddCommand(alignCmd)
}

func alignParams(cfg config.Config) (*alignkit.Params, error) {
	p := alignkit.DefaultParams()
	switch cfg.Align.Mode {
	case "", "global":
		p.Mode = alignkit.Global
	case "local":
		p.Mode = alignkit.Local
	default:
		return nil, fmt.Errorf("unknown alignment mode %q", cfg.Align.Mode)
	}
	if cfg.Align.Matrix != "" {
		m, err := alignkit.MatrixByName(cfg.Align.Matrix)
		if err != nil {
			return nil, err
		}
		p.Matrix = m
	}
	p.GapOpen = cfg.Align.GapOpen
	p.GapExtend = cfg.Align.GapExtend
	if cfg.Align.MaxAlignments > 0 {
		p.MaxAlignments = cfg.Align.MaxAlignments
	}
	return p, nil
}

func runAlign(cmd *cobra.Command, args []string) error {
	cfg := config.New()

	file, _ := cmd.Flags().GetString("file")
	if file == "" && len(args) != 2 {
		return fmt.Errorf("expected two sequences, have %d (or pass --file)", len(args))
	}
	seqs, err := inputSequences(cfg, file, args, 2)
	if err != nil {
		return err
	}

	p, err := alignParams(cfg)
	if err != nil {
		return err
	}

	if scoreOnly, _ := cmd.Flags().GetBool("score-only"); scoreOnly {
		score, err := alignkit.Score(seqs[0], seqs[1], p)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), score)
		return nil
	}

	results, err := alignkit.AlignContext(cmd.Context(), seqs[0], seqs[1], p)
	if err != nil {
		return err
	}
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Format())
	}
	return nil
}
