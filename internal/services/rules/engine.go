package rules

import (
	"fmt"

	"github.com/mcoot/wege-go/internal/model"
)

// State is the phase of play as seen by the rule engine
type State string

const (
	StateNotStarted State = "not_started"
	StateInProgress State = "in_progress"
)

// Engine checks move legality against a single board and applies legal moves.
// It holds no state of its own beyond the board.
type Engine struct {
	board *model.Board
}

// New creates an Engine for the given board
func New(board *model.Board) *Engine {
	return &Engine{board: board}
}

// State returns NotStarted until the board holds a tile
func (e *Engine) State() State {
	if e.board.TilesPlaced() == 0 {
		return StateNotStarted
	}
	return StateInProgress
}

// CanPlace reports whether the tile may be placed at pos
func (e *Engine) CanPlace(tile model.Tile, pos model.Position) bool {
	return e.checkPlace(tile, pos) == nil
}

// CanSwap reports whether the bridge tile may replace the tile at pos
func (e *Engine) CanSwap(tile model.Tile, pos model.Position) bool {
	return e.checkSwap(tile, pos) == nil
}

// TryPlace places the tile if legal and reports whether it did
func (e *Engine) TryPlace(tile model.Tile, pos model.Position) bool {
	return e.Place(tile, pos) == nil
}

// TrySwap swaps the tile in if legal and reports whether it did
func (e *Engine) TrySwap(tile model.Tile, pos model.Position) bool {
	_, err := e.Swap(tile, pos)
	return err == nil
}

// Place places the tile or returns ErrIllegalMove without touching the board
func (e *Engine) Place(tile model.Tile, pos model.Position) error {
	if err := e.checkPlace(tile, pos); err != nil {
		return err
	}
	return e.board.Place(tile, pos)
}

// Swap replaces the tile at pos and returns the displaced tile, or returns
// ErrIllegalMove without touching the board
func (e *Engine) Swap(tile model.Tile, pos model.Position) (model.Tile, error) {
	if err := e.checkSwap(tile, pos); err != nil {
		return model.Tile{}, err
	}
	return e.board.Swap(tile, pos)
}

func (e *Engine) checkPlace(tile model.Tile, pos model.Position) error {
	if !e.board.IsValidPosition(pos) {
		return illegal("position (%d,%d) is outside the board", pos.Row, pos.Col)
	}
	if !e.board.IsEmpty(pos) {
		return illegal("cell (%d,%d) is occupied", pos.Row, pos.Col)
	}
	if e.State() == StateNotStarted {
		return nil
	}
	return e.checkContact(tile, pos)
}

func (e *Engine) checkSwap(tile model.Tile, pos model.Position) error {
	if tile.Kind != model.KindBridge {
		return illegal("only a bridge can be swapped in, got %s", tile.Kind)
	}

	occupant, ok := e.board.TileAt(pos)
	if !ok {
		return illegal("no tile to swap at (%d,%d)", pos.Row, pos.Col)
	}
	if occupant.Kind == model.KindCossack {
		return illegal("a cossack at (%d,%d) cannot be swapped", pos.Row, pos.Col)
	}

	if occupant.HasMarker {
		for _, ix := range e.board.SurroundingIntersections(pos) {
			if ix.FacingMarkerCount > 1 {
				return illegal("tile at (%d,%d) is part of a marker group", pos.Row, pos.Col)
			}
		}
	}

	return e.checkContact(tile, pos)
}

// checkContact requires the tile to touch the board and match the terrain
// of the intersection it touches
func (e *Engine) checkContact(tile model.Tile, pos model.Position) error {
	contact, corner, ok := e.board.FirstContact(pos)
	if !ok {
		return illegal("(%d,%d) does not touch any placed tile", pos.Row, pos.Col)
	}
	if contact.ConnectsLand != tile.IsLand(corner) {
		return illegal("%s corner of %s does not match %s at (%d,%d)",
			corner, tile, contact.Side(), contact.X, contact.Y)
	}
	return nil
}

func illegal(format string, args ...any) error {
	return fmt.Errorf("%w: %s", model.ErrIllegalMove, fmt.Sprintf(format, args...))
}
