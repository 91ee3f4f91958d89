package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/shrine-bgremove/internal/background"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("bgremove %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("bgremove - cut the gray stone background out of the shrine screenshot")
			fmt.Println()
			fmt.Println("Usage: bgremove [project-root]")
			fmt.Println()
			fmt.Println("Reads:  <project-root>/" + inputRel)
			fmt.Println("Writes: <project-root>/" + outputRel)
			fmt.Println()
			fmt.Println("The project root defaults to the current directory.")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  BGREMOVE_LOG_LEVEL=debug    Enable debug logging")
			return
		}
	}

	// Diagnostics go to stderr; stdout carries only the completion message.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := os.Getenv("BGREMOVE_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("bgremove v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	paths, err := resolvePaths(os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	report, err := background.Process(paths.Input, paths.Output)
	if err != nil {
		log.Fatalf("Background removal failed: %v", err)
	}

	if debug {
		logReport(report)
	}

	fmt.Printf("Saved transparent image to: %s\n", paths.Output)
	fmt.Printf("Done! The shrine sprite is now at %s\n", outputRel)
}

func logReport(r *background.Report) {
	log.Printf("Source %s: %dx%d %s, %s, alpha=%v, %d bytes",
		r.Input, r.Source.Width, r.Source.Height, r.Source.Format,
		r.Source.ColorDepth, r.Source.HasAlpha, r.Source.FileSizeBytes)
	for _, c := range r.Corners {
		log.Printf("Corner %s (%d,%d): %s hsl(%d,%d%%,%d%%)",
			c.Label, c.X, c.Y, c.Color.Hex, c.Color.HSL.H, c.Color.HSL.S, c.Color.HSL.L)
	}
	log.Printf("Seeds %d, fills %d, removed %d, kept %d, background %s",
		r.Seeds, r.Fills, r.Removed, r.Kept, r.BackgroundHex)
}
