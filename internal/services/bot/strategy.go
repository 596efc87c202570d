package bot

import "github.com/mcoot/wege-go/internal/model"

// MoveKind is the kind of move a bot makes
type MoveKind string

const (
	MovePlace MoveKind = "place"
	MoveSwap  MoveKind = "swap"
)

// Move is a legal move for the waiting tile. Rotations is the number of
// clockwise turns applied to the tile before it is played.
type Move struct {
	Kind      MoveKind       `json:"kind"`
	Position  model.Position `json:"position"`
	Rotations int            `json:"rotations"`
}

// Strategy defines how a bot chooses its move
type Strategy interface {
	// ChooseMove selects a move for the game's waiting tile. It reports false
	// when no legal move exists.
	ChooseMove(game *model.Game) (Move, bool)
}
