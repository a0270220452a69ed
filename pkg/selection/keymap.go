// ABOUTME: Keymap binds key tokens to menu actions, with a JSON override loader
// ABOUTME: Defaults follow the classic arrows/space/enter/esc menu bindings

package selection

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/mauromedda/termpaint/pkg/key"
)

// Action identifies a menu operation a key can trigger.
type Action string

const (
	ActionUp     Action = "cursorUp"
	ActionDown   Action = "cursorDown"
	ActionSelect Action = "accept"
	ActionCancel Action = "cancel"
	ActionNone   Action = ""
)

// actionOrder fixes lookup precedence when a token is bound to more
// than one action.
var actionOrder = []Action{ActionUp, ActionDown, ActionSelect, ActionCancel}

// Keymap maps binding tokens (the form key.Key.String returns, like
// "up", "space", "ctrl+n", "j") to menu actions.
type Keymap struct {
	bindings map[Action][]string
}

// DefaultKeymap returns the stock bindings: arrows navigate, space or
// enter accepts, escape cancels.
func DefaultKeymap() *Keymap {
	km := &Keymap{bindings: make(map[Action][]string)}
	km.bindings[ActionUp] = []string{"up"}
	km.bindings[ActionDown] = []string{"down"}
	km.bindings[ActionSelect] = []string{"space", "enter"}
	km.bindings[ActionCancel] = []string{"esc"}
	return km
}

// Bind adds tokens to an action's bindings, keeping the existing ones.
// Unknown actions are ignored.
func (km *Keymap) Bind(action Action, tokens ...string) *Keymap {
	if _, ok := km.bindings[action]; !ok {
		return km
	}
	for _, tok := range tokens {
		km.bindings[action] = append(km.bindings[action], normalizeToken(tok))
	}
	return km
}

// actionFor resolves a key to its bound action, or ActionNone.
func (km *Keymap) actionFor(k key.Key) Action {
	tok := k.String()
	if tok == "" {
		return ActionNone
	}
	for _, action := range actionOrder {
		if slices.Contains(km.bindings[action], tok) {
			return action
		}
	}
	return ActionNone
}

// LoadKeymap reads a JSON binding file and merges it over the defaults.
// The file maps action names to token lists:
//
//	{"cursorUp": ["up", "k"], "accept": ["enter"]}
//
// An action named in the file replaces that action's default bindings;
// unknown actions are ignored so one file can serve several tools.
func LoadKeymap(path string) (*Keymap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keymap: %w", err)
	}

	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing keymap %s: %w", path, err)
	}

	km := DefaultKeymap()
	for name, tokens := range raw {
		action := Action(name)
		if _, ok := km.bindings[action]; !ok {
			continue
		}
		normalized := make([]string, len(tokens))
		for i, tok := range tokens {
			normalized[i] = normalizeToken(tok)
		}
		km.bindings[action] = normalized
	}
	return km, nil
}

// normalizeToken folds common aliases onto the tokens key.Key.String
// emits. Rune tokens stay case-sensitive.
func normalizeToken(tok string) string {
	switch strings.ToLower(tok) {
	case "escape":
		return "esc"
	case "return":
		return "enter"
	}
	return tok
}
