package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/theimpossibleastronaut/configster"
)

var showCmd = &cobra.Command{
	Use:   "show <config-file>",
	Short: "Parse a config file and print every option record",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().Bool("lines", false, "Prefix each record with its line number")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	delim, err := delimiterRune()
	if err != nil {
		return err
	}

	config, err := configster.ParseFile(args[0], delim)
	if err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	showLines, _ := cmd.Flags().GetBool("lines")
	for _, rec := range config {
		if showLines {
			fmt.Fprintf(os.Stdout, "%d. ", rec.Line)
		}
		fmt.Fprintf(os.Stdout, "Option:'%s' | value '%s'\n", rec.Option, rec.Value.Primary)
		for _, attr := range rec.Value.Attributes {
			fmt.Fprintf(os.Stdout, "attr:'%s'\n", attr)
		}
		fmt.Fprintln(os.Stdout)
	}

	fmt.Fprintf(os.Stderr, "%d option(s)\n", len(config))
	return nil
}
