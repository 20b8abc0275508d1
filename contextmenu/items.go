package contextmenu

import "strings"

// Action identifies a menu entry.
type Action string

const (
	ActionCut       Action = "cut"
	ActionCopy      Action = "copy"
	ActionPaste     Action = "paste"
	ActionSelectAll Action = "selectall"
	ActionGo        Action = "go"
)

// Item is one entry of the context menu.
type Item struct {
	Action  Action
	Label   string
	Enabled bool
}

// ParseAction maps a name such as "Select All" or "selectall" to an Action.
func ParseAction(name string) (Action, bool) {
	key := strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(name))
	switch Action(key) {
	case ActionCut, ActionCopy, ActionPaste, ActionSelectAll, ActionGo:
		return Action(key), true
	}
	return "", false
}

// items builds the menu entries for the current request. Cut and copy need
// selected text, paste needs a clipboard.
func items(req Request, hasClipboard bool) []Item {
	hasSelection := req.SelectedText != ""
	return []Item{
		{Action: ActionCut, Label: "Cut", Enabled: hasSelection && hasClipboard},
		{Action: ActionCopy, Label: "Copy", Enabled: hasSelection && hasClipboard},
		{Action: ActionPaste, Label: "Paste", Enabled: hasClipboard},
		{Action: ActionSelectAll, Label: "Select All", Enabled: true},
		{Action: ActionGo, Label: "Go", Enabled: true},
	}
}
