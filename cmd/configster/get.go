package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/theimpossibleastronaut/configster"
)

var getCmd = &cobra.Command{
	Use:   "get <config-file> <option>",
	Short: "Print the value of a single option",
	Long:  "Look up an option by name and print its primary value and attributes. With duplicates, the last occurrence wins unless --all is given.",
	Args:  cobra.ExactArgs(2),
	RunE:  runGet,
}

func init() {
	getCmd.Flags().Bool("all", false, "Print every occurrence of the option")

	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	delim, err := delimiterRune()
	if err != nil {
		return err
	}

	config, err := configster.ParseFile(args[0], delim)
	if err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	option := args[1]
	all, _ := cmd.Flags().GetBool("all")

	if all {
		values := config.LookupAll(option)
		if len(values) == 0 {
			return fmt.Errorf("option %q not found", option)
		}
		for _, v := range values {
			printValue(v)
		}
		return nil
	}

	v, ok := config.Lookup(option)
	if !ok {
		return fmt.Errorf("option %q not found", option)
	}
	printValue(v)
	return nil
}

func printValue(v configster.Value) {
	if len(v.Attributes) == 0 {
		fmt.Fprintln(os.Stdout, v.Primary)
		return
	}
	fmt.Fprintf(os.Stdout, "%s (%s)\n", v.Primary, strings.Join(v.Attributes, ", "))
}
