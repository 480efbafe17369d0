package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/rotary"
	"github.com/spf13/cobra"
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt or decrypt a single message",
	Long: `Converts one message with one settings line. Rotor machines are
self-inverse, so the same command decrypts ciphertext produced with the
same settings.

Examples:
  rotary encrypt --settings "* B Beta III IV I AXLE" --text "HELLO WORLD"
  rotary encrypt --settings "* B Beta III IV I AXLE (HQ) (EX)" --file message.txt`,
	RunE: runEncrypt,
}

func init() {
	rootCmd.AddCommand(encryptCmd)

	encryptCmd.Flags().StringP("settings", "s", "", "Settings line, e.g. \"* B Beta III IV I AXLE (HQ)\"")
	encryptCmd.Flags().StringP("text", "t", "", "Text to convert")
	encryptCmd.Flags().StringP("file", "f", "", "File to convert, one message per line")
	_ = encryptCmd.MarkFlagRequired("settings")
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	settings, _ := cmd.Flags().GetString("settings")
	text, _ := cmd.Flags().GetString("text")
	path, _ := cmd.Flags().GetString("file")

	if text == "" && path == "" {
		return fmt.Errorf("no input provided; use --text or --file")
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		text = string(raw)
	}

	engine, err := newEngineFromFlags(cmd)
	if err != nil {
		return err
	}
	if err := engine.Configure(settings); err != nil {
		return err
	}

	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		out, err := engine.ConvertLine(line)
		if err != nil {
			return err
		}
		fmt.Println(out)
	}
	return nil
}

// newEngineFromFlags builds an engine from the persistent flags shared by
// every one-shot command.
func newEngineFromFlags(cmd *cobra.Command) (*rotary.Engine, error) {
	catalogPath, _ := cmd.Flags().GetString("catalog")
	textbook, _ := cmd.Flags().GetBool("textbook-stepping")

	opts := []rotary.Option{}
	if catalogPath != "" {
		opts = append(opts, rotary.WithCatalogFile(catalogPath))
	}
	if textbook {
		opts = append(opts, rotary.WithTextbookStepping())
	}
	return rotary.New(opts...)
}
