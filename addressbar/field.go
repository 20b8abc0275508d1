// Package addressbar drives one address field: it takes the host UI's
// events and routes them into the edit buffer, the context menu bridge and
// the resolver.
package addressbar

import (
	"log/slog"

	"github.com/google/uuid"

	"urlbar/config"
	"urlbar/contextmenu"
	"urlbar/lineedit"
	"urlbar/omnibox"
)

// Host bundles the collaborators a Field talks to. Navigator is required,
// the rest may be nil.
type Host struct {
	Navigator contextmenu.Navigator
	Selection contextmenu.SelectionProvider
	Input     contextmenu.Input
	Menu      contextmenu.View
	Clipboard contextmenu.Clipboard
}

// Field is the controller behind one address field instance. Events must
// be delivered in the order the host sees them; a Field is not safe for
// concurrent use.
type Field struct {
	id       string
	buf      *lineedit.Buffer
	resolver *omnibox.Resolver
	keys     *lineedit.Keymap
	menu     *contextmenu.Bridge
	cfg      *config.Config
	log      *slog.Logger
}

// New creates a field showing url, configured by cfg. A nil cfg uses
// config.Default and a nil log uses slog.Default.
func New(url string, cfg *config.Config, host Host, log *slog.Logger) *Field {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = slog.Default()
	}

	id := uuid.NewString()
	log = log.With(slog.String("field", id))

	resolver := NewResolver(cfg)
	buf := lineedit.NewBuffer(url)

	return &Field{
		id:       id,
		buf:      buf,
		resolver: resolver,
		keys:     lineedit.NewKeymap(cfg.Editor.ConfirmKeys, cfg.Editor.CancelKeys),
		menu: contextmenu.NewBridge(buf, resolver, contextmenu.Options{
			Navigator: host.Navigator,
			Selection: host.Selection,
			Input:     host.Input,
			View:      host.Menu,
			Clipboard: host.Clipboard,
			Logger:    log,
		}),
		cfg: cfg,
		log: log,
	}
}

// NewResolver builds a resolver from the search settings in cfg.
func NewResolver(cfg *config.Config) *omnibox.Resolver {
	r := omnibox.NewResolver()
	if cfg.Search.URL != "" {
		r.SetSearchURL(cfg.Search.URL)
	}
	for _, s := range cfg.Search.Schemes {
		r.AddScheme(s)
	}
	return r
}

// ID identifies the field in logs.
func (f *Field) ID() string {
	return f.id
}

// Text returns what the field currently shows.
func (f *Field) Text() string {
	return f.buf.Text()
}

// Buffer exposes the field's edit state.
func (f *Field) Buffer() *lineedit.Buffer {
	return f.buf
}

// Menu returns the context menu bridge, for the menu UI to call into.
func (f *Field) Menu() *contextmenu.Bridge {
	return f.menu
}

// Focus handles the field gaining focus. With selectOnFocus set the whole
// address is selected, as browsers do.
func (f *Field) Focus() {
	f.log.Debug("focus")
	f.buf.SetFocus(true)
	if f.cfg.Editor.SelectOnFocus {
		f.menu.SelectURL()
	}
}

// Blur handles the field losing focus.
func (f *Field) Blur() {
	f.log.Debug("blur")
	f.buf.SetFocus(false)
}

// Change handles the user typing; text is the field's full new content.
func (f *Field) Change(text string) {
	f.log.Debug("change", "text", text)
	f.buf.OnTextChanged(text)
}

// KeyDown handles a key press. It returns true when the key was one the
// field acts on (confirm or cancel) and the host should not process it
// further.
func (f *Field) KeyDown(key string) bool {
	ev := f.keys.HandleKey(key)
	switch {
	case ev.Submit:
		f.menu.SetVisibility(false)
		f.menu.Confirm()
	case ev.Cancel:
		f.menu.SetVisibility(false)
	}
	return ev.Consumed
}

// Confirm navigates to the resolved field text and returns the URL.
func (f *Field) Confirm() string {
	return f.menu.Confirm()
}

// ContextMenu handles the context menu opening over the field. start and
// end are the widget's selection offsets, nil if it cannot report them.
func (f *Field) ContextMenu(start, end *int, x, y int) contextmenu.Request {
	req := f.menu.OnContextMenuOpen(start, end, x, y)
	f.log.Debug("context menu", "x", x, "y", y, "selected", req.SelectedText)
	return req
}

// SetSource applies the URL of the page that actually loaded. It is ignored
// while the user has unconfirmed edits. It reports whether the field text
// changed.
func (f *Field) SetSource(url string) bool {
	if f.cfg.Display.UnicodeHosts {
		url = omnibox.DisplayURL(url)
	}
	applied := f.buf.Sync(url)
	if !applied && f.buf.Dirty() {
		f.log.Debug("source ignored, field has edits", "url", url)
	}
	return applied
}
