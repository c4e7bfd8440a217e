// Package cmd is for command line interactions with the alignkit
// application.
package cmd

import (
	"fmt"
	"log"

	"github.com/bioseq/alignkit/config"
	"github.com/bioseq/alignkit/pkg/alignkit"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "alignkit",
	Short: `Align and search biological sequences.
Pairwise global/local alignment with affine gaps, plus exact and
wildcard pattern search in scan or index mode`,
	Version: alignkit.Version,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main() and only happens once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	config.SetDefaults()
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("alphabet", "", "alphabet name (dna, ambiguous-dna, rna, ambiguous-rna, protein, ambiguous-protein); inferred when empty")
	must(viper.BindPFlag("alphabet", rootCmd.PersistentFlags().Lookup("alphabet")))
}

// initConfig reads in an alignkit.yaml settings file if one is present.
func initConfig() {
	viper.SetConfigName("alignkit")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("reading settings: %v", err)
		}
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// buildSequence resolves one sequence from raw data under the configured
// alphabet.
func buildSequence(cfg config.Config, data string) (*alignkit.Sequence, error) {
	if cfg.Alphabet != "" {
		return alignkit.NewSequenceOver(cfg.Alphabet, data)
	}
	return alignkit.NewSequence(data)
}

// inputSequences resolves sequences from positional args or a FASTA file.
func inputSequences(cfg config.Config, file string, args []string, want int) ([]*alignkit.Sequence, error) {
	var seqs []*alignkit.Sequence
	if file != "" {
		var alpha *alignkit.Alphabet
		if cfg.Alphabet != "" {
			a, err := alignkit.AlphabetByName(cfg.Alphabet)
			if err != nil {
				return nil, err
			}
			alpha = a
		}
		parsed, err := alignkit.ReadFASTA(file, alpha)
		if err != nil {
			return nil, err
		}
		seqs = parsed
	} else {
		for _, arg := range args {
			seq, err := buildSequence(cfg, arg)
			if err != nil {
				return nil, err
			}
			seqs = append(seqs, seq)
		}
	}
	if want > 0 && len(seqs) < want {
		return nil, fmt.Errorf("need %d sequences, have %d", want, len(seqs))
	}
	return seqs, nil
}
