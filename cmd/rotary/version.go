package main

import (
	"fmt"

	"github.com/aretw0/rotary"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of rotary",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rotary version %s\n", rotary.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
