package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for Arbor.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Green-to-amber gradient (forest theme)
	s1 := termenv.String("     _         _               ").Foreground(p.Color("#34d399"))
	s2 := termenv.String("    / \\   _ __| |__   ___  _ __").Foreground(p.Color("#4ade80"))
	s3 := termenv.String("   / _ \\ | '__| '_ \\ / _ \\| '__|").Foreground(p.Color("#a3e635"))
	s4 := termenv.String("  / ___ \\| |  | |_) | (_) | |  ").Foreground(p.Color("#facc15"))
	s5 := termenv.String(" /_/   \\_\\_|  |_.__/ \\___/|_|  ").Foreground(p.Color("#fbbf24"))
	ver := termenv.String(fmt.Sprintf("  v%s", version)).Foreground(p.Color("#9ca3af"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(ver)
	fmt.Println()
}
