package action

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Action represents a betting action a player can take
type Action string

// action constants
const (
	Fold  Action = "fold"
	Check Action = "check"
	Call  Action = "call"
	Bet   Action = "bet"
	Raise Action = "raise"
)

var allowedActions = map[Action]bool{
	Fold:  true,
	Check: true,
	Call:  true,
	Bet:   true,
	Raise: true,
}

// aliases maps alternate spellings players use to an action
var aliases = map[string]Action{
	"pass": Fold,
}

// FromString returns an action for the given string
// Matching is case-insensitive and ignores surrounding whitespace
func FromString(s string) (Action, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if a, ok := aliases[s]; ok {
		return a, nil
	}

	if _, ok := allowedActions[Action(s)]; ok {
		return Action(s), nil
	}

	return "", fmt.Errorf("unknown action for identifier: %s", s)
}

func (a Action) String() string {
	switch a {
	case Fold:
		return "Fold"
	case Check:
		return "Check"
	case Call:
		return "Call"
	case Bet:
		return "Bet"
	case Raise:
		return "Raise"
	}

	panic("unknown action")
}

// MarshalJSON encodes the action into JSON
func (a Action) MarshalJSON() ([]byte, error) {
	if !a.IsValid() {
		return nil, fmt.Errorf("unknown action: %q", string(a))
	}

	return json.Marshal(struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{
		ID:   string(a),
		Name: a.String(),
	})
}

// IsValid returns true if the action is permitted
func (a Action) IsValid() bool {
	_, ok := allowedActions[a]
	return ok
}

// MovesChips returns true if the action takes money from the player's stack
func (a Action) MovesChips() bool {
	return a == Call || a == Bet || a == Raise
}

// Contains returns true if the action is in the list
func Contains(actions []Action, a Action) bool {
	for _, candidate := range actions {
		if candidate == a {
			return true
		}
	}

	return false
}

// Join renders the actions for a prompt, i.e., 'call', 'raise', or 'fold'
func Join(actions []Action) string {
	quoted := make([]string, len(actions))
	for i, a := range actions {
		quoted[i] = "'" + string(a) + "'"
	}

	switch len(quoted) {
	case 0:
		return ""
	case 1:
		return quoted[0]
	case 2:
		return quoted[0] + " or " + quoted[1]
	}

	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}

// LogMessage returns a message formatted for the log
// paid is what the action moved into the pot, increment is how much a bet or raise lifted the highest bet
func (a Action) LogMessage(paid, increment int) string {
	switch a {
	case Fold:
		return "folded"
	case Check:
		return "checked"
	case Call:
		return fmt.Sprintf("called $%d", paid)
	case Bet:
		return fmt.Sprintf("bet $%d", paid)
	case Raise:
		if paid > increment {
			return fmt.Sprintf("raised $%d (paid $%d)", increment, paid)
		}

		return fmt.Sprintf("raised $%d", increment)
	}

	return ""
}
