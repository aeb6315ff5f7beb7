package game

import (
	"encoding/json"
	"fmt"
)

// Phase represents where a hand is in its lifecycle. Phases only move
// forward; the whole-state reset at the start of a new hand is the only way
// back to Preflop.
type Phase int

const (
	Waiting Phase = iota
	Preflop
	Flop
	Turn
	River
	Showdown
	Ended
)

func (p Phase) String() string {
	return [...]string{"waiting", "preflop", "flop", "turn", "river", "showdown", "ended"}[p]
}

// Betting reports whether actions are accepted in this phase
func (p Phase) Betting() bool {
	return p >= Preflop && p <= River
}

// MarshalJSON encodes the phase as its wire name
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes a wire phase name
func (p *Phase) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for candidate := Waiting; candidate <= Ended; candidate++ {
		if candidate.String() == s {
			*p = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", s)
}

// Action represents a player action. ActionNone is the unset value used for
// a seat that has not acted this round.
type Action int

const (
	ActionNone Action = iota
	Fold
	Check
	Call
	Raise
	AllIn
)

func (a Action) String() string {
	return [...]string{"", "fold", "check", "call", "raise", "all-in"}[a]
}

// MarshalJSON encodes the action as its wire name ("" when unset)
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON decodes a wire action name
func (a *Action) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseAction(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAction parses a wire action name
func ParseAction(s string) (Action, error) {
	for candidate := ActionNone; candidate <= AllIn; candidate++ {
		if candidate.String() == s {
			return candidate, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", s)
}
