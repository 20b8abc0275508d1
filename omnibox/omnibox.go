// Package omnibox decides whether address bar input is a URL or a search
// query and turns it into something the browser can navigate to.
package omnibox

import (
	"regexp"
	"strings"
	"unicode"
)

// DefaultSearchURL is the search template used when none is configured.
const DefaultSearchURL = "https://www.google.com/search?q=%s"

// Result represents classified omnibox input.
type Result struct {
	URL       string // The resolved, navigable URL (always has a scheme)
	Query     string // Search query, when IsSearch
	IsSearch  bool   // Whether the input was treated as a search
	HasScheme bool   // Whether the input already carried a recognized scheme
}

var (
	// localhost or a dotted quad, optional port and path.
	hostPattern = regexp.MustCompile(`^(localhost|(\d{1,3}\.){3}\d{1,3})(:\d+)?(/.*)?$`)
	// Two or more dot-separated labels, optional port and path.
	domainPattern = regexp.MustCompile(`^[a-zA-Z0-9-]+(\.[a-zA-Z0-9-]+)+(:\d+)?(/.*)?$`)
)

// Resolver turns raw address bar input into a URL.
type Resolver struct {
	schemes   []string
	searchURL string // URL format for searches, %s is the encoded query
	schemeRe  *regexp.Regexp
}

// NewResolver creates a resolver recognising http, https, about, chrome and
// file schemes and searching with Google.
func NewResolver() *Resolver {
	r := &Resolver{
		schemes:   []string{"https?", "about", "chrome", "file"},
		searchURL: DefaultSearchURL,
	}
	r.compile()
	return r
}

// SetSearchURL sets the search URL format. The first %s is replaced with
// the encoded query.
func (r *Resolver) SetSearchURL(urlFmt string) {
	r.searchURL = urlFmt
}

// SearchURL returns the search URL format in use.
func (r *Resolver) SearchURL() string {
	return r.searchURL
}

// AddScheme adds a scheme (without the colon) that passes through unchanged.
func (r *Resolver) AddScheme(name string) {
	name = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), ":")
	if name == "" {
		return
	}
	r.schemes = append(r.schemes, regexp.QuoteMeta(name))
	r.compile()
}

func (r *Resolver) compile() {
	r.schemeRe = regexp.MustCompile(`^(` + strings.Join(r.schemes, "|") + `):`)
}

// HasScheme reports whether input starts with a recognized scheme.
func (r *Resolver) HasScheme(input string) bool {
	return r.schemeRe.MatchString(input)
}

// IsURLLike reports whether input looks like an address rather than search
// terms. The checks run in a fixed order: an explicit scheme wins, then any
// space makes it a search, then localhost/IPv4 and domain shapes.
func (r *Resolver) IsURLLike(input string) bool {
	trimmed := strings.TrimSpace(input)

	if r.schemeRe.MatchString(trimmed) {
		return true
	}
	if strings.Contains(trimmed, " ") {
		return false
	}
	if hostPattern.MatchString(trimmed) {
		return true
	}
	return domainPattern.MatchString(trimmed)
}

// Classify resolves input and reports how it was interpreted.
func (r *Resolver) Classify(input string) Result {
	input = strings.TrimLeftFunc(input, unicode.IsSpace)

	if !r.IsURLLike(input) {
		return Result{
			URL:      strings.Replace(r.searchURL, "%s", QueryEscape(input), 1),
			Query:    input,
			IsSearch: true,
		}
	}

	if r.schemeRe.MatchString(input) {
		return Result{URL: input, HasScheme: true}
	}
	return Result{URL: "http://" + input}
}

// Resolve returns the URL to navigate to for input. Every input resolves to
// something; anything that does not look like an address becomes a search.
func (r *Resolver) Resolve(input string) string {
	return r.Classify(input).URL
}
