package minefield

import (
	"errors"
	"fmt"
)

var ErrUnknownState = errors.New("unknown game state")

// State is the outcome of an attempt. GameOver and Win are terminal.
type State int

const (
	Continue State = iota
	GameOver
	Win
)

func (that State) String() string {
	switch that {
	case Continue:
		return "continue"
	case GameOver:
		return "game_over"
	case Win:
		return "win"
	default:
		return fmt.Sprintf("State(%d)", int(that))
	}
}

func (that State) IsFinished() bool {
	return that == GameOver || that == Win
}

func (that State) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *State) UnmarshalText(text []byte) error {
	for _, s := range []State{Continue, GameOver, Win} {
		if s.String() == string(text) {
			*that = s
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownState, text)
}

// Cell is one grid position.
type Cell struct {
	Mine      bool `json:"mine"`
	Revealed  bool `json:"revealed"`
	Neighbors int  `json:"neighbors"`
}
