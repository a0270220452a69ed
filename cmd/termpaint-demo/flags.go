// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --hz, --duration, --theme, --keymap, --options, --image, --verbose

package main

import (
	"flag"
	"time"
)

type cliArgs struct {
	hz        float64
	duration  time.Duration
	theme     string
	themeFile string
	keymap    string
	options   string
	image     string
	numbered  bool
	cancel    bool
	verbose   bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.Float64Var(&args.hz, "hz", 25, "Refresh rate for the loop demos")
	flag.DurationVar(&args.duration, "duration", 5*time.Second, "How long the loop demos run")
	flag.StringVar(&args.theme, "theme", "default", "Built-in theme name")
	flag.StringVar(&args.themeFile, "theme-file", "", "JSON theme file (overrides -theme)")
	flag.StringVar(&args.keymap, "keymap", "", "JSON keymap file for the menu demo")
	flag.StringVar(&args.options, "options", "", "YAML menu definition for the menu demo")
	flag.StringVar(&args.image, "image", "", "Image file for the image demo")
	flag.BoolVar(&args.numbered, "numbered", false, "Use the numbered menu variant")
	flag.BoolVar(&args.cancel, "cancel", false, "Let Esc dismiss the menu")
	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")

	flag.Parse()
	return args
}

// mode returns the selected demo, defaulting to the menu.
func (a cliArgs) mode() string {
	if flag.NArg() == 0 {
		return "menu"
	}
	return flag.Arg(0)
}

// arg returns the i-th non-flag argument, or "" when absent.
func (a cliArgs) arg(i int) string {
	return flag.Arg(i)
}
