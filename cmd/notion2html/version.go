package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/guillermoap/notion-to-html/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(version.GetFull())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
