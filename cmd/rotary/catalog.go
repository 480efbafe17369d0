package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the rotors available to the machine",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngineFromFlags(cmd)
		if err != nil {
			return err
		}
		cat := engine.Catalog()

		fmt.Printf("Alphabet: %s\n", cat.Alphabet)
		fmt.Printf("Geometry: %d slots, %d pawls\n\n", cat.Slots, cat.Pawls)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tROLE")
		for _, r := range cat.Rotors {
			role := "fixed"
			switch {
			case r.Reflects():
				role = "reflector"
			case r.Rotates():
				role = "moving"
			}
			fmt.Fprintf(w, "%s\t%s\n", r.Name(), role)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
