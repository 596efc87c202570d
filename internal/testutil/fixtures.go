package testutil

import (
	"time"

	"github.com/mcoot/wege-go/internal/model"
)

// FixedTime is the creation time used by test fixtures
var FixedTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// NewTestGame returns a 2x2 game with two tiles played, a marker on the
// board and a tile waiting to be placed
func NewTestGame(id model.GameID) *model.Game {
	supply := model.NewSupply([]model.Tile{
		model.NewTile(4, model.KindLand, false, false),
		model.NewTile(5, model.KindBridge, false, false),
	})
	game := model.NewGame(id, model.Settings{Rows: 2, Cols: 2}, supply, FixedTime)

	first := model.NewTile(1, model.KindLand, true, true)
	first.Orientation = model.TopRight
	second := model.NewTile(2, model.KindWater, false, false)
	second.Orientation = model.TopRight

	// Placement errors cannot happen on an empty 2x2 board
	_ = game.Board.Place(first, model.Position{Row: 0, Col: 0})
	_ = game.Board.Place(second, model.Position{Row: 0, Col: 1})

	next := model.NewTile(3, model.KindCossack, false, false)
	game.NextTile = &next
	game.State = model.GameStateInProgress
	game.MoveCount = 2
	game.Players[model.SideWater].CossackPlayed = 1
	return game
}
