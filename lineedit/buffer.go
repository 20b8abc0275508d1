// Package lineedit holds the editing state of a single-line address field.
package lineedit

// Insertion is the outcome of inserting text at a captured selection.
type Insertion struct {
	Text  string // Field text after the insertion
	Caret int    // Where the host should place the caret, in runes
}

// Buffer is the editing state behind one address field: its text, whether
// the user has edited it since the last sync, focus, and the selection that
// was captured when the context menu opened.
//
// All offsets are rune offsets. A Buffer is owned by exactly one field and is
// not safe for concurrent use.
type Buffer struct {
	text      []rune
	dirty     bool
	focused   bool
	selection *Selection
}

// NewBuffer creates a buffer showing text. The buffer starts clean.
func NewBuffer(text string) *Buffer {
	return &Buffer{text: []rune(text)}
}

// Text returns the current text.
func (b *Buffer) Text() string {
	return string(b.text)
}

// Len returns the length of the text in runes.
func (b *Buffer) Len() int {
	return len(b.text)
}

// Dirty reports whether the user has edited the text since the last sync
// or confirm.
func (b *Buffer) Dirty() bool {
	return b.dirty
}

// Focused reports whether the field has input focus.
func (b *Buffer) Focused() bool {
	return b.focused
}

// Selection returns the captured selection, clamped to the current text.
// ok is false when no selection context exists.
func (b *Buffer) Selection() (sel Selection, ok bool) {
	if b.selection == nil {
		return Selection{}, false
	}
	return b.selection.clamp(len(b.text)), true
}

// SelectedText returns the text covered by the captured selection, or ""
// when there is no selection context or only a caret.
func (b *Buffer) SelectedText() string {
	sel, ok := b.Selection()
	if !ok {
		return ""
	}
	return string(b.text[sel.Start:sel.End])
}

// SetFocus records whether the field has focus.
func (b *Buffer) SetFocus(focused bool) {
	b.focused = focused
}

// OnTextChanged replaces the text with what the user typed. Free typing
// invalidates any captured selection.
func (b *Buffer) OnTextChanged(text string) {
	b.text = []rune(text)
	b.dirty = true
	b.selection = nil
}

// CaptureSelection records the selection at the moment the context menu
// opened. A nil start means the host could not report a selection, which
// leaves no selection context. A nil end with a known start is a caret.
func (b *Buffer) CaptureSelection(start, end *int) {
	if start == nil {
		b.selection = nil
		return
	}
	sel := Selection{Start: *start, End: *start}
	if end != nil {
		sel.End = *end
	}
	b.selection = &sel
}

// InsertAtSelection writes value over the captured selection, or at the
// captured caret when nothing is selected. Without a selection context it
// does nothing.
//
// The buffer only changes when the resulting text differs from the current
// text; ok reports whether it did. On change the field becomes dirty and
// focused, and the captured selection collapses to the returned caret.
func (b *Buffer) InsertAtSelection(value string) (ins Insertion, ok bool) {
	sel, has := b.Selection()
	if !has {
		return Insertion{Text: b.Text(), Caret: len(b.text)}, false
	}

	v := []rune(value)
	next := make([]rune, 0, len(b.text)-(sel.End-sel.Start)+len(v))
	next = append(next, b.text[:sel.Start]...)
	next = append(next, v...)
	next = append(next, b.text[sel.End:]...)
	caret := sel.Start + len(v)

	if string(next) == string(b.text) {
		return Insertion{Text: b.Text(), Caret: caret}, false
	}

	b.text = next
	b.dirty = true
	b.focused = true
	b.selection = &Selection{Start: caret, End: caret}
	return Insertion{Text: string(next), Caret: caret}, true
}

// SelectAll focuses the field and returns the range the host should select.
// The buffer keeps no "all selected" state of its own; the host reports the
// real selection back through CaptureSelection.
func (b *Buffer) SelectAll() (start, end int) {
	b.focused = true
	return 0, len(b.text)
}

// Sync applies a URL pushed from outside, such as the page that actually
// loaded. Pending user edits win: when the buffer is dirty the push is
// ignored. It reports whether the text was replaced.
func (b *Buffer) Sync(url string) bool {
	if b.dirty {
		return false
	}
	if url == string(b.text) {
		return false
	}
	b.text = []rune(url)
	b.selection = nil
	return true
}

// ClearDirty marks the text as confirmed, so the next Sync applies again.
func (b *Buffer) ClearDirty() {
	b.dirty = false
}
