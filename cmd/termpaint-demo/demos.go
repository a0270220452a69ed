// ABOUTME: The individual demo modes: counter, live table, menu, markdown, image
// ABOUTME: Loop demos mutate painter items from worker goroutines while the loop paints

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/termpaint/pkg/display"
	"github.com/mauromedda/termpaint/pkg/input"
	"github.com/mauromedda/termpaint/pkg/rich"
	"github.com/mauromedda/termpaint/pkg/selection"
	"github.com/mauromedda/termpaint/pkg/style"
	"github.com/mauromedda/termpaint/pkg/terminal"
)

// counter is a painter item backed by an atomic, safe to increment
// while the refresh loop paints it.
type counter struct {
	n atomic.Int64
}

func (c *counter) String() string {
	return fmt.Sprintf("events processed: %d", c.n.Load())
}

// runCounter appends a fixed frame once and lets two workers mutate its
// items in place while the refresh loop repaints.
func runCounter(args cliArgs) error {
	term := terminal.NewProcessTerminal()
	defer terminal.RestoreOnPanic(term)

	p := display.New(term, display.WithHiddenCursor())
	defer p.Close()

	pal := style.Current().Palette
	spin := rich.NewSpinner("generating events")
	var count counter

	p.Append(rich.NewStyled("termpaint counter demo", pal.Title))
	p.Append(spin)
	p.Append(&count)
	p.Append(rich.NewStyled("Ctrl+C to stop early", pal.Muted))

	if err := p.StartLoop(args.hz); err != nil {
		return fmt.Errorf("starting refresh loop: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, args.duration)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ticker := time.NewTicker(5 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				count.n.Add(1)
			}
		}
	})
	g.Go(func() error {
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				spin.Tick()
			}
		}
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("counter workers: %w", err)
	}

	p.StopLoop()
	fmt.Println()
	return nil
}

// runTable rebuilds a metrics table every tick while the refresh loop
// paints whatever frame is current.
func runTable(args cliArgs) error {
	term := terminal.NewProcessTerminal()
	defer terminal.RestoreOnPanic(term)

	p := display.New(term, display.WithHiddenCursor())
	defer p.Close()

	if err := p.StartLoop(args.hz); err != nil {
		return fmt.Errorf("starting refresh loop: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, args.duration)
	defer cancel()

	pal := style.Current().Palette
	spin := rich.NewSpinner("sampling")
	services := []string{"gateway", "billing", "search", "notifications"}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for tick := 0; ; tick++ {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
			}

			spin.Tick()
			tbl := rich.NewTable("Service", "Requests", "P99", "Status").
				Title(pal.Title.Render("live service metrics"))
			statuses := make([]string, len(services))
			for i, svc := range services {
				requests := (tick + 1) * (137 + i*61)
				p99 := 20 + (tick*7+i*13)%45
				statuses[i] = "ok"
				if p99 > 55 {
					statuses[i] = "degraded"
				}
				tbl.Row(svc, fmt.Sprintf("%d", requests), fmt.Sprintf("%dms", p99), statuses[i])
			}
			tbl.StyleFunc(func(row, col int) lipgloss.Style {
				st := lipgloss.NewStyle()
				if row >= 0 && col == 3 && statuses[row] != "ok" {
					st = pal.Error
				}
				return st.Padding(0, 1)
			})

			p.ClearBuffer()
			p.Append(spin)
			p.Append(tbl)
			p.Append(rich.NewStyled("Ctrl+C to stop early", pal.Muted))
		}
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("table worker: %w", err)
	}

	p.StopLoop()
	fmt.Println()
	return nil
}

// runMenu drives a selection menu over a YAML-defined or built-in
// option list and prints the chosen value.
func runMenu(args cliArgs) error {
	def := sampleMenu()
	if args.options != "" {
		loaded, err := loadMenuFile(args.options)
		if err != nil {
			return err
		}
		def = loaded
	}

	var opts []selection.MenuOption
	if args.cancel || def.Cancellable {
		opts = append(opts, selection.WithCancel())
	}
	if args.keymap != "" {
		km, err := selection.LoadKeymap(args.keymap)
		if err != nil {
			return err
		}
		opts = append(opts, selection.WithKeymap(km))
	}

	var m *selection.Menu
	if args.numbered || def.Numbered {
		m = selection.NewNumbered(def.Title, def.Options, opts...)
	} else {
		m = selection.NewTable(def.Title, def.Options, opts...)
	}

	term := terminal.NewProcessTerminal()
	defer terminal.RestoreOnPanic(term)
	if err := term.EnterRawMode(); err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer func() { _ = term.ExitRawMode() }()

	p := display.New(term)
	defer p.Close()

	keys := input.NewReader(os.Stdin)
	defer keys.Close()

	got, err := m.Run(p, keys)
	if err != nil {
		return fmt.Errorf("menu: %w", err)
	}

	_ = term.ExitRawMode()
	if got == nil {
		fmt.Println("no selection")
		return nil
	}
	fmt.Printf("selected: %v\n", got)
	return nil
}

const sampleMarkdown = "# termpaint\n\n" +
	"A flicker-free terminal painter.\n\n" +
	"- append items to the buffer\n" +
	"- paint once, or start a refresh loop\n" +
	"- the painter erases only stale lines\n\n" +
	"```go\np := display.New(terminal.NewProcessTerminal())\np.Append(\"hello\")\np.DisplayNow(true)\n```\n"

// runMarkdown paints a markdown document once. An optional second
// argument names a file to render instead of the built-in sample.
func runMarkdown(args cliArgs) error {
	content := sampleMarkdown
	if path := args.arg(1); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading markdown: %w", err)
		}
		content = string(data)
	}

	term := terminal.NewProcessTerminal()
	defer terminal.RestoreOnPanic(term)

	p := display.New(term)
	defer p.Close()

	p.Append(rich.NewMarkdown(content))
	p.DisplayNow(true)
	fmt.Println()
	return nil
}

// runImage paints one image as half-block ANSI art.
func runImage(args cliArgs) error {
	if args.image == "" {
		return errors.New("image demo needs -image <path>")
	}

	img, err := rich.LoadImage(args.image)
	if err != nil {
		return fmt.Errorf("loading image: %w", err)
	}

	term := terminal.NewProcessTerminal()
	defer terminal.RestoreOnPanic(term)

	p := display.New(term)
	defer p.Close()

	p.Append(img)
	p.DisplayNow(true)
	fmt.Println()
	return nil
}
