package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "configster",
	Short: "Line-oriented config file inspector",
	Long:  "Configster parses line-oriented configuration files into option records and prints or looks up their values.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("delimiter", "d", ",", "Attribute list delimiter (single character)")

	_ = viper.BindPFlag("delimiter", rootCmd.PersistentFlags().Lookup("delimiter"))
}

func initConfig() {
	viper.SetEnvPrefix("CONFIGSTER")
	viper.AutomaticEnv()
}

// delimiterRune resolves the configured delimiter and validates that it is
// exactly one character.
func delimiterRune() (rune, error) {
	s := viper.GetString("delimiter")
	if s == "" {
		return 0, fmt.Errorf("delimiter must not be empty")
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	return r, nil
}
