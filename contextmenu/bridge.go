package contextmenu

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"urlbar/lineedit"
	"urlbar/omnibox"
)

var (
	// ErrNoClipboard is returned by Invoke for clipboard entries when the
	// bridge was built without a clipboard.
	ErrNoClipboard = errors.New("contextmenu: no clipboard")

	// ErrUnknownAction is returned by Invoke for an action it does not know.
	ErrUnknownAction = errors.New("contextmenu: unknown action")
)

// Options holds the bridge's collaborators. Only Navigator is required.
type Options struct {
	Navigator Navigator
	Selection SelectionProvider
	Input     Input
	View      View
	Clipboard Clipboard
	Logger    *slog.Logger
}

// Bridge is the action surface the context menu UI calls into. Text
// insertions go through the edit buffer and confirmation goes through the
// resolver.
type Bridge struct {
	buf      *lineedit.Buffer
	resolver *omnibox.Resolver
	opts     Options
	log      *slog.Logger

	visible bool
	request Request
}

// NewBridge creates a bridge over buf that resolves with resolver.
func NewBridge(buf *lineedit.Buffer, resolver *omnibox.Resolver, opts Options) *Bridge {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Bridge{
		buf:      buf,
		resolver: resolver,
		opts:     opts,
		log:      log,
	}
}

// State returns the current menu state.
func (b *Bridge) State() State {
	return State{
		Visible: b.visible,
		Request: b.request,
		Items:   b.Items(),
	}
}

// Visible reports whether the menu is shown.
func (b *Bridge) Visible() bool {
	return b.visible
}

// Items lists the menu entries for the current request.
func (b *Bridge) Items() []Item {
	return items(b.request, b.opts.Clipboard != nil)
}

// SetVisibility shows or hides the menu.
func (b *Bridge) SetVisibility(visible bool) {
	if b.visible == visible {
		return
	}
	b.visible = visible
	b.notify()
}

// SetURL writes value over the selection captured when the menu opened.
// When the text changes the input is asked to put its caret after the
// inserted value. It reports whether the text changed.
func (b *Bridge) SetURL(value string) bool {
	ins, ok := b.buf.InsertAtSelection(value)
	if !ok {
		b.log.Debug("menu insert skipped", "value", value)
		return false
	}
	b.log.Debug("menu insert", "text", ins.Text, "caret", ins.Caret)
	if b.opts.Input != nil {
		b.opts.Input.SetCaret(ins.Caret)
	}
	return true
}

// SelectURL selects the whole field.
func (b *Bridge) SelectURL() {
	start, end := b.buf.SelectAll()
	if b.opts.Input != nil {
		b.opts.Input.Select(start, end)
	}
}

// Confirm resolves the field text, marks it clean, and navigates to the
// result. It returns the URL it navigated to.
func (b *Bridge) Confirm() string {
	url := b.resolver.Resolve(b.buf.Text())
	b.buf.ClearDirty()
	b.log.Info("navigate", "input", b.buf.Text(), "url", url)
	if b.opts.Navigator != nil {
		b.opts.Navigator.Navigate(url)
	}
	return url
}

// OnContextMenuOpen captures the selection offsets, snapshots the selected
// text if the field has focus, and shows the menu at (x, y). Offsets may be
// nil when the host cannot report them.
func (b *Bridge) OnContextMenuOpen(start, end *int, x, y int) Request {
	b.buf.CaptureSelection(start, end)

	req := Request{Position: Point{X: x, Y: y}}
	if b.buf.Focused() && b.opts.Selection != nil {
		req.SelectedText = b.opts.Selection.SelectedText()
	}
	b.request = req
	b.visible = true
	b.notify()
	return req
}

// Invoke runs a menu entry and hides the menu. Clipboard entries need a
// clipboard; disabled entries are still run so a host can bind them to keys.
func (b *Bridge) Invoke(ctx context.Context, action Action) error {
	defer b.SetVisibility(false)

	b.log.Debug("menu action", "action", string(action))

	switch action {
	case ActionCopy:
		return b.copySelection(ctx)
	case ActionCut:
		if err := b.copySelection(ctx); err != nil {
			return err
		}
		b.SetURL("")
		return nil
	case ActionPaste:
		if b.opts.Clipboard == nil {
			return ErrNoClipboard
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		text, err := b.opts.Clipboard.ReadText(ctx)
		if err != nil {
			return fmt.Errorf("reading clipboard: %w", err)
		}
		b.SetURL(text)
		return nil
	case ActionSelectAll:
		b.SelectURL()
		return nil
	case ActionGo:
		b.Confirm()
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownAction, action)
}

// copySelection puts the selected text on the clipboard. Nothing selected
// is not an error.
func (b *Bridge) copySelection(ctx context.Context) error {
	if b.opts.Clipboard == nil {
		return ErrNoClipboard
	}
	text := b.request.SelectedText
	if text == "" {
		text = b.buf.SelectedText()
	}
	if text == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := b.opts.Clipboard.WriteText(ctx, text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}

func (b *Bridge) notify() {
	if b.opts.View != nil {
		b.opts.View.Update(b.State())
	}
}
