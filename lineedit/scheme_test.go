package lineedit

import "testing"

func TestKeymapHandleKey(t *testing.T) {
	k := NewKeymap([]string{"Enter", "NumpadEnter"}, []string{"Escape"})

	tests := []struct {
		key  string
		want Event
	}{
		{"Enter", Event{Consumed: true, Submit: true}},
		{"enter", Event{Consumed: true, Submit: true}},
		{"NumpadEnter", Event{Consumed: true, Submit: true}},
		{"Escape", Event{Consumed: true, Cancel: true}},
		{"a", Event{}},
		{"Tab", Event{}},
		{"", Event{}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := k.HandleKey(tt.key); got != tt.want {
				t.Errorf("HandleKey(%q) = %+v, want %+v", tt.key, got, tt.want)
			}
		})
	}
}

func TestDefaultKeymap(t *testing.T) {
	k := DefaultKeymap()
	if !k.HandleKey("Enter").Submit {
		t.Error("default keymap should submit on Enter")
	}
	if !k.HandleKey("Escape").Cancel {
		t.Error("default keymap should cancel on Escape")
	}
}
