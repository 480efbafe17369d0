package main

import (
	"fmt"
	"os"

	"github.com/aretw0/rotary/internal/validator"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a rotor catalog for consistency",
	Long:  `Loads the catalog and reports duplicate names, non-derangement reflectors, and geometry problems.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Catalog is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command) error {
	engine, err := newEngineFromFlags(cmd)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	return validator.ValidateCatalog(engine.Catalog())
}
