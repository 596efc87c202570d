package bot

import (
	"github.com/mcoot/wege-go/internal/dependencies/random"
	"github.com/mcoot/wege-go/internal/model"
	"github.com/mcoot/wege-go/internal/services/rules"
)

// Strategy names
const (
	StrategyRandom = "random"
	StrategyFirst  = "first"
)

// RandomStrategy picks uniformly among every legal move
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChooseMove returns a random legal move
func (s *RandomStrategy) ChooseMove(game *model.Game) (Move, bool) {
	moves := LegalMoves(game)
	if len(moves) == 0 {
		return Move{}, false
	}
	return moves[s.random.Intn(len(moves))], true
}

// FirstStrategy plays the first legal move in row-major order
type FirstStrategy struct{}

// NewFirstStrategy creates a new FirstStrategy
func NewFirstStrategy() *FirstStrategy {
	return &FirstStrategy{}
}

// ChooseMove returns the first legal move
func (s *FirstStrategy) ChooseMove(game *model.Game) (Move, bool) {
	moves := LegalMoves(game)
	if len(moves) == 0 {
		return Move{}, false
	}
	return moves[0], true
}

// LegalMoves lists every legal placement and swap for the waiting tile in
// row-major order, placements before swaps at each cell. Swaps onto a bridge
// are left out.
func LegalMoves(game *model.Game) []Move {
	if game.NextTile == nil || game.IsFinished() {
		return nil
	}

	engine := rules.New(game.Board)
	var moves []Move
	for row := 0; row < game.Board.Rows(); row++ {
		for col := 0; col < game.Board.Cols(); col++ {
			pos := model.Position{Row: row, Col: col}
			candidate := *game.NextTile
			for turns := range model.Corners {
				if engine.CanPlace(candidate, pos) {
					moves = append(moves, Move{Kind: MovePlace, Position: pos, Rotations: turns})
				}
				candidate = candidate.Rotated()
			}
			if game.NextTile.Kind != model.KindBridge {
				continue
			}
			// Trading a bridge for a bridge leaves the game where it was
			if occupant, ok := game.Board.TileAt(pos); ok && occupant.Kind == model.KindBridge {
				continue
			}
			for turns := range model.Corners {
				if engine.CanSwap(candidate, pos) {
					moves = append(moves, Move{Kind: MoveSwap, Position: pos, Rotations: turns})
				}
				candidate = candidate.Rotated()
			}
		}
	}
	return moves
}
