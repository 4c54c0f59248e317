package main

import (
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: chunk then embed",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runChunk(); err != nil {
			return err
		}
		return runEmbed(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
