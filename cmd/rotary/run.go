package main

import (
	"fmt"
	"os"

	"github.com/aretw0/rotary/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an interactive conversion session",
	Long: `Reads lines from stdin. A line starting with "*" is a settings line that
configures the machine (rotor names, wheel positions, optional rings and
plugboard); every other line is converted and printed in five-letter groups.`,
	Run: func(cmd *cobra.Command, args []string) {
		catalogPath, _ := cmd.Flags().GetString("catalog")
		textbook, _ := cmd.Flags().GetBool("textbook-stepping")
		debug, _ := cmd.Flags().GetBool("debug")

		err := cli.RunSession(cli.RunOptions{
			CatalogPath: catalogPath,
			Textbook:    textbook,
			Debug:       debug,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Make 'run' the default if no command is provided.
	rootCmd.Run = runCmd.Run
}
