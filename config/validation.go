package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks that the configuration can be used.
func (c *Config) Validate() error {
	var errs []error

	if c.Search.URL == "" {
		errs = append(errs, errors.New("search.url is empty"))
	} else if !strings.Contains(c.Search.URL, "%s") {
		errs = append(errs, fmt.Errorf("search.url %q has no %%s placeholder", c.Search.URL))
	}

	for _, s := range c.Search.Schemes {
		if strings.TrimSpace(s) == "" || strings.ContainsAny(s, " /") {
			errs = append(errs, fmt.Errorf("search.schemes: invalid scheme %q", s))
		}
	}

	if len(c.Editor.ConfirmKeys) == 0 {
		errs = append(errs, errors.New("editor.confirmKeys is empty"))
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level))
	}

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q is not one of text, json", c.Logging.Format))
	}

	return errors.Join(errs...)
}

// DefaultTOML returns the default configuration as a TOML string.
// Used for --init-config to generate a user config file.
func DefaultTOML() string {
	return `# urlbar configuration
# Save to ~/.config/urlbar/config.toml and customize
# Only include settings you want to change from defaults

# Search settings
[search]
url = "https://www.google.com/search?q=%s"   # %s is replaced by the encoded query
schemes = []                                  # Extra schemes to pass through, e.g. ["vscode", "mailto"]

# Editor settings
[editor]
selectOnFocus = true          # Select the whole address when the field gains focus
confirmKeys = ["Enter"]       # Keys that navigate to the typed address
cancelKeys = ["Escape"]       # Keys that close the context menu

# Display settings
[display]
unicodeHosts = false          # Show punycode hosts (xn--) in Unicode when a page loads

# Logging settings
[logging]
level = "warn"                # debug, info, warn, error
format = "text"               # text or json
`
}
