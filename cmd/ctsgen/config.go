package main

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func init() {
	// Bind command-line flags
	pflag.String("input", "", "Path to the JSON query descriptor; '-' or empty reads stdin")
	pflag.Bool("prefixed", false, "Emit the cts:/fn: prefixed dialect")
	pflag.String("collection", "", "Override the target collection")
	pflag.Int64("limit", 0, "Override the result limit")
	pflag.Int64("skip", 0, "Override the skip offset")
}

func loadConfig() {
	viper.SetDefault("prefixed", false)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	pflag.Parse()

	// Bind command-line flags to Viper
	viper.BindPFlags(pflag.CommandLine)

	// Bind environment variables (CTSGEN_INPUT, CTSGEN_PREFIXED, ...)
	viper.SetEnvPrefix("CTSGEN")
	viper.AutomaticEnv()
}
