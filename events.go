package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"urlbar/addressbar"
	"urlbar/config"
	"urlbar/contextmenu"
)

// scriptHost stands in for the UI around the field when replaying events.
type scriptHost struct {
	out      io.Writer
	selected string
	log      *slog.Logger
}

func (h *scriptHost) Navigate(url string) {
	fmt.Fprintln(h.out, url)
}

func (h *scriptHost) SelectedText() string {
	return h.selected
}

func (h *scriptHost) Select(start, end int) {
	h.log.Debug("select range", "start", start, "end", end)
}

func (h *scriptHost) SetCaret(pos int) {
	h.log.Debug("caret", "pos", pos)
}

func (h *scriptHost) Update(s contextmenu.State) {
	h.log.Debug("menu", "visible", s.Visible, "x", s.Request.Position.X, "y", s.Request.Position.Y)
}

// runEvents replays an event script from r against a fresh field and
// writes every navigation to w, one URL per line.
func runEvents(ctx context.Context, r io.Reader, w io.Writer, cfg *config.Config, clip contextmenu.Clipboard, log *slog.Logger, prompt bool) error {
	host := &scriptHost{out: w, log: log}
	field := addressbar.New("", cfg, addressbar.Host{
		Navigator: host,
		Selection: host,
		Input:     host,
		Menu:      host,
		Clipboard: clip,
	}, log)

	sc := bufio.NewScanner(r)
	for n := 1; ; n++ {
		if prompt {
			fmt.Fprint(w, "> ")
		}
		if !sc.Scan() {
			break
		}
		if err := applyEvent(ctx, field, host, sc.Text()); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading events: %w", err)
	}
	return nil
}

// applyEvent parses one script line and delivers it to the field.
func applyEvent(ctx context.Context, f *addressbar.Field, host *scriptHost, line string) error {
	line = strings.TrimRight(strings.TrimLeftFunc(line, unicode.IsSpace), "\r")
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	name, arg, _ := strings.Cut(line, " ")
	switch name {
	case "focus":
		f.Focus()
	case "blur":
		f.Blur()
	case "type":
		f.Change(arg)
	case "key":
		if arg == "" {
			return fmt.Errorf("key: missing key name")
		}
		f.KeyDown(arg)
	case "select":
		host.selected = arg
	case "menu":
		start, end, x, y, err := parseMenu(arg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		f.ContextMenu(start, end, x, y)
	case "action":
		action, ok := contextmenu.ParseAction(arg)
		if !ok {
			return fmt.Errorf("action: %w: %q", contextmenu.ErrUnknownAction, arg)
		}
		if err := f.Menu().Invoke(ctx, action); err != nil {
			return fmt.Errorf("action %s: %w", action, err)
		}
	case "push":
		f.SetSource(arg)
	default:
		return fmt.Errorf("unknown event %q", name)
	}
	return nil
}

// parseMenu parses "<start|-> <end|-> [x y]".
func parseMenu(arg string) (start, end *int, x, y int, err error) {
	fields := strings.Fields(arg)
	if len(fields) != 2 && len(fields) != 4 {
		return nil, nil, 0, 0, fmt.Errorf("want <start> <end> [x y], got %q", arg)
	}

	offset := func(s string) (*int, error) {
		if s == "-" {
			return nil, nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("bad offset %q", s)
		}
		return &v, nil
	}

	if start, err = offset(fields[0]); err != nil {
		return nil, nil, 0, 0, err
	}
	if end, err = offset(fields[1]); err != nil {
		return nil, nil, 0, 0, err
	}
	if len(fields) == 4 {
		if x, err = strconv.Atoi(fields[2]); err != nil {
			return nil, nil, 0, 0, fmt.Errorf("bad x %q", fields[2])
		}
		if y, err = strconv.Atoi(fields[3]); err != nil {
			return nil, nil, 0, 0, fmt.Errorf("bad y %q", fields[3])
		}
	}
	return start, end, x, y, nil
}
