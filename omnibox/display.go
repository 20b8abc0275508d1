package omnibox

import (
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

// DisplayURL returns rawURL with a punycode host shown in Unicode, the way
// the address bar presents a page that has loaded. Anything that does not
// parse, or whose host is not valid IDNA, comes back unchanged.
func DisplayURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}

	host := u.Hostname()
	if !strings.Contains(strings.ToLower(host), "xn--") {
		return rawURL
	}

	unicodeHost, err := idna.Display.ToUnicode(host)
	if err != nil || unicodeHost == host {
		return rawURL
	}

	// Splice the host back in so the rest of the URL keeps its exact bytes.
	idx := strings.Index(rawURL, host)
	if idx < 0 {
		return rawURL
	}
	return rawURL[:idx] + unicodeHost + rawURL[idx+len(host):]
}
