package omnibox

import (
	"net/url"
	"strings"
)

// url.QueryEscape leaves only A-Z a-z 0-9 - _ . ~ alone and writes spaces
// as '+'. Search engines expect the component form, which also keeps
// ! * ' ( ) and writes spaces as %20. A literal '+' is already %2B by then.
var componentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// QueryEscape percent-encodes s for use as a single query parameter value.
func QueryEscape(s string) string {
	return componentReplacer.Replace(url.QueryEscape(s))
}
