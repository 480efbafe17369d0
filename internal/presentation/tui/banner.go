package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for interactive sessions.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Brass-to-copper scheme, in keeping with the hardware being simulated
	s1 := termenv.String("            _                    ").Foreground(p.Color("#fbbf24"))
	s2 := termenv.String("  _ __ ___ | |_ __ _ _ __ _   _ ").Foreground(p.Color("#f59e0b"))
	s3 := termenv.String(" | '__/ _ \\| __/ _` | '__| | | |").Foreground(p.Color("#d97706"))
	s4 := termenv.String(" | | | (_) | || (_| | |  | |_| |").Foreground(p.Color("#b45309"))
	s5 := termenv.String(" |_|  \\___/ \\__\\__,_|_|   \\__, |").Foreground(p.Color("#92400e"))
	s6 := termenv.String("                          |___/ ").Foreground(p.Color("#78350f"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	if version != "" {
		fmt.Println(termenv.String("  v" + version).Foreground(p.Color("#a8a29e")))
	}
	fmt.Println()
}
