// cmd/pyre/main.go
//
// This is the entry point for pyre.
//
// Flow:
// 1. Load the ambient config and open the journal if one is configured
// 2. Pick the frontend: an interactive prompt when stdin and stdout are
//    terminals, a plain line loop otherwise
// 3. Feed statements into one session until quit or end of input

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/dscorbett/pyre/internal/config"
	"github.com/dscorbett/pyre/internal/journal"
	"github.com/dscorbett/pyre/internal/session"
	"github.com/dscorbett/pyre/internal/tui"
)

const usage = `pyre reads phoneme feature statements, one per line:

  PHONEMES = FEATURES    i y = +high -back +syll
  FEATURES : PHONEMES    +coronal -sonorant -voice : t
  /x/ copies phoneme x   d = /t/ +voice

quit, exit, or end of input leaves the session. pyre takes no flags.`

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "-h", "-help", "--help", "help":
			fmt.Println(usage)
			os.Exit(0)
		default:
			fmt.Fprintf(os.Stderr, "pyre: unknown argument %q\n%s\n", os.Args[1], usage)
			os.Exit(2)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pyre: %v\n", err)
		os.Exit(1)
	}

	var j *journal.Journal
	if cfg.Journal != "" {
		j, err = journal.New(cfg.Journal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "pyre: %v\n", err)
			os.Exit(1)
		}
	}

	switch cfg.Color {
	case config.ColorAlways:
		lipgloss.SetColorProfile(termenv.TrueColor)
	case config.ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	sess := session.New(session.WithJournal(j))

	interactive := isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
	if interactive {
		_, err = tea.NewProgram(tui.NewApp(sess, cfg.Prompt)).Run()
	} else {
		err = session.Run(sess, os.Stdin, os.Stdout, os.Stderr)
	}
	sess.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pyre: %v\n", err)
		os.Exit(1)
	}
}
