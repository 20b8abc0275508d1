// Urlbar resolves address bar input into navigable URLs.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"urlbar/addressbar"
	"urlbar/clipboard"
	"urlbar/config"
	"urlbar/contextmenu"
	"urlbar/logging"
	"urlbar/term"
)

func main() {
	var (
		input       []string
		configPath  string
		eventsMode  bool
		initConfig  bool
		memoryClip  bool
		expectValue bool
	)

	for _, arg := range os.Args[1:] {
		if expectValue {
			configPath = arg
			expectValue = false
			continue
		}
		switch arg {
		case "-c", "--config":
			expectValue = true
		case "-e", "--events":
			eventsMode = true
		case "--memory-clipboard":
			memoryClip = true
		case "--init-config":
			initConfig = true
		case "-h", "--help":
			printUsage()
			return
		default:
			input = append(input, arg)
		}
	}

	if expectValue {
		fmt.Fprintln(os.Stderr, "error: --config needs a path")
		os.Exit(2)
	}

	// Generate default config and exit
	if initConfig {
		fmt.Print(config.DefaultTOML())
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.Logging, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	slog.SetDefault(log)

	if eventsMode {
		var clip contextmenu.Clipboard = clipboard.NewMemory("")
		if sys := clipboard.NewSystem(); !memoryClip && sys.Available() {
			clip = sys
		}
		prompt := term.IsTerminal(int(os.Stdin.Fd()))
		if err := runEvents(context.Background(), os.Stdin, os.Stdout, cfg, clip, log, prompt); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if len(input) == 0 {
		printUsage()
		os.Exit(2)
	}

	fmt.Println(resolve(strings.Join(input, " "), cfg))
}

// resolve runs text through a field exactly as if it had been typed and
// confirmed.
func resolve(text string, cfg *config.Config) string {
	var url string
	f := addressbar.New("", cfg, addressbar.Host{
		Navigator: contextmenu.NavigatorFunc(func(u string) { url = u }),
	}, slog.Default())
	f.Change(text)
	f.Confirm()
	return url
}

func printUsage() {
	os.Stdout.WriteString(`urlbar - resolve address bar input

Usage: urlbar [options] <text...>
       urlbar [options] --events < script

Options:
  -c, --config PATH     Config file (.toml, .yaml or .yml)
  -e, --events          Replay host events from stdin, print navigations
  --memory-clipboard    Use an in-process clipboard in --events mode
  --init-config         Output default config (redirect to ~/.config/urlbar/config.toml)
  -h, --help            Show this help

Examples:
  urlbar hello world              https://www.google.com/search?q=hello%20world
  urlbar example.com/path         http://example.com/path
  urlbar --init-config > ~/.config/urlbar/config.toml

Event script (one event per line, # starts a comment):
  focus | blur                    Field gains or loses focus
  type <text>                     User typed; text is the full new content
  key <name>                      Key down, e.g. "key Enter"
  select <text>                   Text the host reports as selected
  menu <start|-> <end|-> [x y]    Context menu opens with these offsets
  action <cut|copy|paste|selectall|go>
  push <url>                      Page navigated; ignored while edited
`)
}
