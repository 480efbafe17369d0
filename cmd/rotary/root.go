package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rotary",
	Short: "Rotary is a rotor cipher machine simulator",
	Long:  `Rotary simulates electromechanical rotor cipher machines: wired wheels, a reflector, and a plugboard, configured from a rotor catalog.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("catalog", "", "Path to a YAML rotor catalog (default: built-in historical set)")
	rootCmd.PersistentFlags().Bool("textbook-stepping", false, "Use the textbook double-stepping rule instead of the reference one")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}
