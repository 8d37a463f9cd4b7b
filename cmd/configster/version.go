package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/theimpossibleastronaut/configster"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the configster version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(os.Stdout, configster.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
