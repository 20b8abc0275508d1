package lineedit

import "strings"

// Event represents the result of handling a key press.
type Event struct {
	Consumed bool // true if the keymap handled the key
	Submit   bool // true if the user wants to confirm the input
	Cancel   bool // true if the user wants to dismiss the menu
}

// Keymap maps host key names to field actions. Only confirm and cancel
// matter to the address bar; every other key is left to the host widget.
type Keymap struct {
	confirm []string
	cancel  []string
}

// DefaultKeymap confirms on Enter and cancels on Escape.
func DefaultKeymap() *Keymap {
	return NewKeymap([]string{"Enter"}, []string{"Escape"})
}

// NewKeymap creates a keymap from key names, as reported by the host
// (for example "Enter", "NumpadEnter", "Escape").
func NewKeymap(confirm, cancel []string) *Keymap {
	return &Keymap{confirm: confirm, cancel: cancel}
}

// HandleKey classifies a key-down event. Names compare case-insensitively.
func (k *Keymap) HandleKey(name string) Event {
	switch {
	case matchKey(name, k.confirm):
		return Event{Consumed: true, Submit: true}
	case matchKey(name, k.cancel):
		return Event{Consumed: true, Cancel: true}
	}
	return Event{}
}

func matchKey(name string, keys []string) bool {
	for _, k := range keys {
		if strings.EqualFold(name, k) {
			return true
		}
	}
	return false
}
