package contextmenu

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urlbar/lineedit"
	"urlbar/omnibox"
)

type recorder struct {
	navigated []string
	selected  string
	caret     []int
	selects   [][2]int
	states    []State
}

func (r *recorder) Navigate(url string) { r.navigated = append(r.navigated, url) }
func (r *recorder) SelectedText() string { return r.selected }
func (r *recorder) SetCaret(pos int) { r.caret = append(r.caret, pos) }
func (r *recorder) Select(start, end int) { r.selects = append(r.selects, [2]int{start, end}) }
func (r *recorder) Update(s State) { r.states = append(r.states, s) }

type memClipboard struct {
	text     string
	readErr  error
	writeErr error
}

func (c *memClipboard) ReadText(context.Context) (string, error) {
	return c.text, c.readErr
}

func (c *memClipboard) WriteText(_ context.Context, text string) error {
	if c.writeErr != nil {
		return c.writeErr
	}
	c.text = text
	return nil
}

func newTestBridge(text string, clip Clipboard) (*Bridge, *lineedit.Buffer, *recorder) {
	buf := lineedit.NewBuffer(text)
	rec := &recorder{}
	b := NewBridge(buf, omnibox.NewResolver(), Options{
		Navigator: rec,
		Selection: rec,
		Input:     rec,
		View:      rec,
		Clipboard: clip,
	})
	return b, buf, rec
}

func intp(v int) *int { return &v }

func TestOnContextMenuOpen(t *testing.T) {
	b, buf, rec := newTestBridge("https://example.com", nil)
	buf.SetFocus(true)
	rec.selected = "example"

	req := b.OnContextMenuOpen(intp(8), intp(15), 120, 40)

	assert.Equal(t, Request{Position: Point{X: 120, Y: 40}, SelectedText: "example"}, req)
	assert.True(t, b.Visible())
	sel, ok := buf.Selection()
	require.True(t, ok)
	assert.Equal(t, lineedit.Selection{Start: 8, End: 15}, sel)

	require.Len(t, rec.states, 1)
	assert.True(t, rec.states[0].Visible)
	assert.Equal(t, req, rec.states[0].Request)
}

func TestOnContextMenuOpenUnfocused(t *testing.T) {
	b, _, rec := newTestBridge("https://example.com", nil)
	rec.selected = "example"

	req := b.OnContextMenuOpen(intp(8), intp(15), 0, 0)

	assert.Empty(t, req.SelectedText, "unfocused field reports no selected text")
	assert.True(t, b.Visible())
}

func TestSetURLReplacesSelection(t *testing.T) {
	b, buf, rec := newTestBridge("abcdef", nil)
	b.OnContextMenuOpen(intp(2), intp(4), 0, 0)

	assert.True(t, b.SetURL("XY"))
	assert.Equal(t, "abXYef", buf.Text())
	assert.True(t, buf.Dirty())
	assert.True(t, buf.Focused())
	assert.Equal(t, []int{4}, rec.caret)
}

func TestSetURLWithoutSelection(t *testing.T) {
	b, buf, rec := newTestBridge("abcdef", nil)
	b.OnContextMenuOpen(nil, nil, 0, 0)

	assert.False(t, b.SetURL("Z"))
	assert.Equal(t, "abcdef", buf.Text())
	assert.Empty(t, rec.caret)
}

func TestSelectURL(t *testing.T) {
	b, buf, rec := newTestBridge("héllo", nil)

	b.SelectURL()

	assert.Equal(t, [][2]int{{0, 5}}, rec.selects)
	assert.True(t, buf.Focused())
}

func TestConfirm(t *testing.T) {
	b, buf, rec := newTestBridge("", nil)
	buf.OnTextChanged("hello world")

	url := b.Confirm()

	assert.Equal(t, "https://www.google.com/search?q=hello%20world", url)
	assert.Equal(t, []string{url}, rec.navigated)
	assert.False(t, buf.Dirty())
}

func TestSetVisibility(t *testing.T) {
	b, _, rec := newTestBridge("", nil)

	b.SetVisibility(true)
	b.SetVisibility(true)
	b.SetVisibility(false)

	require.Len(t, rec.states, 2, "repeated visibility should not notify")
	assert.True(t, rec.states[0].Visible)
	assert.False(t, rec.states[1].Visible)
}

func TestItems(t *testing.T) {
	tests := []struct {
		name     string
		clip     Clipboard
		selected string
		want     map[Action]bool
	}{
		{
			name: "no clipboard",
			want: map[Action]bool{ActionCut: false, ActionCopy: false, ActionPaste: false, ActionSelectAll: true, ActionGo: true},
		},
		{
			name: "clipboard no selection",
			clip: &memClipboard{},
			want: map[Action]bool{ActionCut: false, ActionCopy: false, ActionPaste: true, ActionSelectAll: true, ActionGo: true},
		},
		{
			name:     "clipboard with selection",
			clip:     &memClipboard{},
			selected: "abc",
			want:     map[Action]bool{ActionCut: true, ActionCopy: true, ActionPaste: true, ActionSelectAll: true, ActionGo: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, buf, rec := newTestBridge("abcdef", tt.clip)
			buf.SetFocus(true)
			rec.selected = tt.selected
			b.OnContextMenuOpen(intp(0), intp(3), 0, 0)

			got := map[Action]bool{}
			for _, it := range b.Items() {
				got[it.Action] = it.Enabled
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInvokeCopy(t *testing.T) {
	clip := &memClipboard{}
	b, buf, rec := newTestBridge("https://example.com", clip)
	buf.SetFocus(true)
	rec.selected = "example"
	b.OnContextMenuOpen(intp(8), intp(15), 0, 0)

	require.NoError(t, b.Invoke(context.Background(), ActionCopy))

	assert.Equal(t, "example", clip.text)
	assert.Equal(t, "https://example.com", buf.Text())
	assert.False(t, b.Visible())
}

func TestInvokeCopyFallsBackToCapturedRange(t *testing.T) {
	clip := &memClipboard{}
	b, _, _ := newTestBridge("https://example.com", clip)
	b.OnContextMenuOpen(intp(0), intp(5), 0, 0)

	require.NoError(t, b.Invoke(context.Background(), ActionCopy))
	assert.Equal(t, "https", clip.text)
}

func TestInvokeCut(t *testing.T) {
	clip := &memClipboard{}
	b, buf, rec := newTestBridge("https://example.com/path", clip)
	buf.SetFocus(true)
	rec.selected = "/path"
	b.OnContextMenuOpen(intp(19), intp(24), 0, 0)

	require.NoError(t, b.Invoke(context.Background(), ActionCut))

	assert.Equal(t, "/path", clip.text)
	assert.Equal(t, "https://example.com", buf.Text())
	assert.Equal(t, []int{19}, rec.caret)
}

func TestInvokePaste(t *testing.T) {
	clip := &memClipboard{text: "go.dev"}
	b, buf, _ := newTestBridge("https://example.com", clip)
	b.OnContextMenuOpen(intp(8), intp(19), 0, 0)

	require.NoError(t, b.Invoke(context.Background(), ActionPaste))
	assert.Equal(t, "https://go.dev", buf.Text())
}

func TestInvokeSelectAllAndGo(t *testing.T) {
	b, _, rec := newTestBridge("localhost:8080", nil)

	require.NoError(t, b.Invoke(context.Background(), ActionSelectAll))
	require.NoError(t, b.Invoke(context.Background(), ActionGo))

	assert.Equal(t, [][2]int{{0, 14}}, rec.selects)
	assert.Equal(t, []string{"http://localhost:8080"}, rec.navigated)
}

func TestInvokeErrors(t *testing.T) {
	ctx := context.Background()

	b, _, _ := newTestBridge("abc", nil)
	b.OnContextMenuOpen(intp(0), intp(3), 0, 0)
	assert.ErrorIs(t, b.Invoke(ctx, ActionPaste), ErrNoClipboard)
	assert.ErrorIs(t, b.Invoke(ctx, ActionCopy), ErrNoClipboard)
	assert.ErrorIs(t, b.Invoke(ctx, Action("undo")), ErrUnknownAction)
	assert.False(t, b.Visible())

	boom := errors.New("boom")
	b, buf, _ := newTestBridge("abc", &memClipboard{readErr: boom, writeErr: boom})
	b.OnContextMenuOpen(intp(0), intp(3), 0, 0)
	assert.ErrorIs(t, b.Invoke(ctx, ActionPaste), boom)
	assert.ErrorIs(t, b.Invoke(ctx, ActionCut), boom)
	assert.Equal(t, "abc", buf.Text(), "failed cut must not delete the selection")

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	b, _, _ = newTestBridge("abc", &memClipboard{text: "x"})
	b.OnContextMenuOpen(intp(0), intp(3), 0, 0)
	assert.ErrorIs(t, b.Invoke(cancelled, ActionPaste), context.Canceled)
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		in   string
		want Action
		ok   bool
	}{
		{"copy", ActionCopy, true},
		{"Cut", ActionCut, true},
		{"Select All", ActionSelectAll, true},
		{"select-all", ActionSelectAll, true},
		{"GO", ActionGo, true},
		{"paste", ActionPaste, true},
		{"undo", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseAction(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}
