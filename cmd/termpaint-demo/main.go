// ABOUTME: Demo binary exercising the painter, refresh loop, menus, and rich items
// ABOUTME: Dispatches counter/table/menu/markdown/image demos from the command line

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mauromedda/termpaint/internal/log"
	"github.com/mauromedda/termpaint/pkg/style"
)

func main() {
	args := parseFlags()

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run applies global settings and dispatches to the selected demo.
func run(args cliArgs) error {
	if args.verbose {
		log.SetLevel(log.LevelDebug)
	}

	if err := applyTheme(args); err != nil {
		return err
	}

	switch args.mode() {
	case "counter":
		return runCounter(args)
	case "table":
		return runTable(args)
	case "menu":
		return runMenu(args)
	case "markdown":
		return runMarkdown(args)
	case "image":
		return runImage(args)
	default:
		return fmt.Errorf("unknown demo %q (want counter, table, menu, markdown, or image)", args.mode())
	}
}

// applyTheme installs the theme the flags ask for.
func applyTheme(args cliArgs) error {
	if args.themeFile != "" {
		th, err := style.LoadFile(args.themeFile)
		if err != nil {
			return fmt.Errorf("loading theme: %w", err)
		}
		style.Set(th)
		return nil
	}

	th := style.Builtin(args.theme)
	if th == nil {
		return fmt.Errorf("unknown theme %q (built-ins: %s)",
			args.theme, strings.Join(style.BuiltinNames(), ", "))
	}
	style.Set(th)
	return nil
}
