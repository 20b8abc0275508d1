// Package contextmenu connects the address field's context menu UI to the
// edit buffer and the URL resolver.
//
// The menu itself is drawn by the host. The Bridge is the only surface the
// menu calls into, and it talks back to the host through small interfaces
// rather than reaching into widgets.
package contextmenu

import "context"

// Navigator receives the resolved URL when the user confirms.
type Navigator interface {
	Navigate(url string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(url string)

// Navigate calls f(url).
func (f NavigatorFunc) Navigate(url string) { f(url) }

// SelectionProvider reports the text the host currently shows as selected.
type SelectionProvider interface {
	SelectedText() string
}

// Input is the concrete text widget. The bridge asks it to move the caret
// after an insertion and to select text on "select all".
type Input interface {
	Select(start, end int)
	SetCaret(pos int)
}

// View receives the menu state whenever it changes.
type View interface {
	Update(State)
}

// Clipboard backs the cut, copy and paste entries.
type Clipboard interface {
	ReadText(ctx context.Context) (string, error)
	WriteText(ctx context.Context, text string) error
}

// Point is a menu anchor in host coordinates.
type Point struct {
	X int
	Y int
}

// Request is produced each time the context menu opens.
type Request struct {
	Position     Point
	SelectedText string
}

// State is what the menu UI needs to draw itself.
type State struct {
	Visible bool
	Request Request
	Items   []Item
}
