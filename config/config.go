// Package config holds app wide settings unmarshalled from Viper
// (see: /cmd).
package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// AlignConfig selects aligner behavior.
type AlignConfig struct {
	// named similarity matrix: nucleotide, rna or blosum62
	Matrix string `mapstructure:"matrix"`

	// cost of opening a gap, <= 0
	GapOpen int `mapstructure:"gap-open"`

	// cost of extending a gap, <= 0
	GapExtend int `mapstructure:"gap-extend"`

	// global or local
	Mode string `mapstructure:"mode"`

	// how many tied optimal alignments to report
	MaxAlignments int `mapstructure:"max-alignments"`
}

// SearchConfig selects pattern search behavior.
type SearchConfig struct {
	// scan or index
	Mode string `mapstructure:"mode"`

	// pattern symbol matching any alphabet symbol; empty disables
	Wildcard string `mapstructure:"wildcard"`

	// fold pattern case before matching
	CaseFold bool `mapstructure:"case-fold"`
}

// ServerConfig is for the REST surface.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// Config is the root-level settings struct, a mix of settings available in
// alignkit.yaml and those from the command line.
type Config struct {
	// alphabet name, or empty to infer per input
	Alphabet string `mapstructure:"alphabet"`

	Align  AlignConfig  `mapstructure:"align"`
	Search SearchConfig `mapstructure:"search"`
	Server ServerConfig `mapstructure:"server"`
}

// SetDefaults installs the built-in settings into Viper. Called before any
// config file or flag binding so explicit values win.
func SetDefaults() {
	viper.SetDefault("alphabet", "")
	viper.SetDefault("align.matrix", "nucleotide")
	viper.SetDefault("align.gap-open", -6)
	viper.SetDefault("align.gap-extend", -1)
	viper.SetDefault("align.mode", "global")
	viper.SetDefault("align.max-alignments", 1)
	viper.SetDefault("search.mode", "scan")
	viper.SetDefault("search.wildcard", "N")
	viper.SetDefault("search.case-fold", true)
	viper.SetDefault("server.addr", "localhost:8080")
	viper.SetEnvPrefix("alignkit")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
}

// New returns a Config populated by Viper settings (either from a local
// alignkit.yaml or command line arguments).
func New() Config {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings: %v", err)
	}
	return c
}
