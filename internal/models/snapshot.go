package models

import (
	"errors"
	"fmt"

	"github.com/tatianab/monopoly-council/internal/monopoly"
	"gopkg.in/yaml.v3"
)

// ErrIncompleteState is returned when a snapshot is requested from a game
// that is missing a structural piece (bank, board, or players).
var ErrIncompleteState = errors.New("game state is incomplete")

// PlayerState is the frozen view of one player.
type PlayerState struct {
	Name       string   `yaml:"name"`
	Position   int      `yaml:"position"`
	Cash       int      `yaml:"cash"`
	Roads      []string `yaml:"roads"`
	Properties []string `yaml:"properties"`
	Lost       bool     `yaml:"lost"`
}

// Snapshot is an immutable, point-in-time copy of the game used as decision
// context. It holds values only; nothing points back into the live game.
type Snapshot struct {
	Round      int                 `yaml:"round"`
	Bank       monopoly.Bank       `yaml:"bank"`
	Board      []monopoly.Cell     `yaml:"board"`
	Roads      []monopoly.Road     `yaml:"roads"`
	Properties []monopoly.Property `yaml:"properties"`
	Players    []PlayerState       `yaml:"players"`
}

// BuildSnapshot deep-copies the game into a Snapshot. Two calls on the same
// underlying state produce value-equal snapshots.
func BuildSnapshot(g *monopoly.Game) (*Snapshot, error) {
	if g == nil {
		return nil, fmt.Errorf("build snapshot: nil game: %w", ErrIncompleteState)
	}
	if g.Bank == nil {
		return nil, fmt.Errorf("build snapshot: missing bank: %w", ErrIncompleteState)
	}
	if len(g.Cells) == 0 {
		return nil, fmt.Errorf("build snapshot: missing board: %w", ErrIncompleteState)
	}
	if len(g.Players) == 0 {
		return nil, fmt.Errorf("build snapshot: no players: %w", ErrIncompleteState)
	}

	snap := &Snapshot{
		Round:      g.Round,
		Bank:       *g.Bank,
		Board:      append([]monopoly.Cell(nil), g.Cells...),
		Roads:      append([]monopoly.Road(nil), g.Roads...),
		Properties: append([]monopoly.Property(nil), g.Properties...),
	}
	for _, p := range g.Players {
		snap.Players = append(snap.Players, PlayerState{
			Name:       p.Name,
			Position:   p.Position,
			Cash:       p.Cash,
			Roads:      append([]string(nil), p.Roads...),
			Properties: append([]string(nil), p.Properties...),
			Lost:       p.Lost,
		})
	}
	return snap, nil
}

// RenderYAML is the canonical textual form of the snapshot used in prompts.
func (s *Snapshot) RenderYAML() (string, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("render snapshot: %v", err)
	}
	return string(data), nil
}
