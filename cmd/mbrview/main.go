package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	mbr "github.com/bgrewell/mbr-kit"
	"github.com/bgrewell/mbr-kit/pkg/logging"
	"github.com/bgrewell/mbr-kit/pkg/options"
	"github.com/bgrewell/usage"
	"github.com/theckman/yacspin"
	"golang.org/x/term"
)

// InitializeSpinner sets up and starts the yacspin spinner.
func InitializeSpinner() (*yacspin.Spinner, error) {
	settings := yacspin.Config{
		Frequency:         100 * time.Millisecond,
		ShowCursor:        false,
		Message:           " analyzing boot sector",
		CharSet:           yacspin.CharSets[14],
		Colors:            []string{"fgHiCyan"},
		StopColors:        []string{"fgHiGreen"},
		StopFailColors:    []string{"fgHiRed"},
		StopFailCharacter: "✗",
		StopCharacter:     "✓",
	}

	spinner, err := yacspin.New(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create spinner: %w", err)
	}

	if err := spinner.Start(); err != nil {
		return nil, fmt.Errorf("failed to start spinner: %w", err)
	}

	return spinner, nil
}

// promptForImagePath asks for an image path on stdin. Only used when no
// positional argument was given and stdin is attached to a terminal.
func promptForImagePath() (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("no image path provided and stdin is not a terminal")
	}
	fmt.Print("Enter path to disk image: ")
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return "", fmt.Errorf("no image path entered")
	}
	return strings.TrimSpace(scanner.Text()), nil
}

func main() {

	u := usage.NewUsage()
	help := u.AddBooleanOption("h", "help", false, "Show this help message", "optional", nil)
	verbose := u.AddBooleanOption("v", "verbose", false, "Print verbose output", "", nil)
	quiet := u.AddBooleanOption("q", "quiet", false, "Disable the progress spinner", "", nil)
	path := u.AddArgument(1, "image-path", "Path to the raw disk image", "")
	parsed := u.Parse()

	if !parsed {
		u.PrintError(fmt.Errorf("failed to parse arguments"))
		os.Exit(1)
	}

	if *help {
		u.PrintUsage()
		os.Exit(0)
	}

	imagePath := ""
	if path != nil {
		imagePath = *path
	}
	if imagePath == "" {
		var err error
		imagePath, err = promptForImagePath()
		if err != nil {
			u.PrintError(err)
			os.Exit(1)
		}
	}

	opts := []options.Option{}
	if *verbose {
		opts = append(opts, options.WithLogger(
			logging.NewSimpleLogger(os.Stderr, logging.LEVEL_TRACE, true)))
	}

	var spinner *yacspin.Spinner
	if !*quiet && !*verbose {
		spinner, _ = InitializeSpinner()
	}

	analysis, err := mbr.Analyze(imagePath, opts...)
	if err != nil {
		if spinner != nil {
			spinner.StopFailMessage(fmt.Sprintf(" %v", err))
			spinner.StopFail()
		} else {
			fmt.Fprintf(os.Stderr, "Failed to analyze image: %v\n", err)
		}
		os.Exit(1)
	}

	if spinner != nil {
		spinner.StopMessage(" boot sector decoded")
		spinner.Stop()
	}

	fmt.Print(analysis.String())
}
