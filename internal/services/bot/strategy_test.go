package bot_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wege-go/internal/dependencies/mocks"
	"github.com/mcoot/wege-go/internal/model"
	"github.com/mcoot/wege-go/internal/services/bot"
	"github.com/mcoot/wege-go/internal/testutil"
)

type StrategySuite struct {
	suite.Suite
	mockRandom *mocks.MockRandom
	strategy   *bot.RandomStrategy
}

func TestStrategySuite(t *testing.T) {
	suite.Run(t, new(StrategySuite))
}

func (s *StrategySuite) SetupTest() {
	s.mockRandom = mocks.NewMockRandom()
	s.strategy = bot.NewRandomStrategy(s.mockRandom)
}

// newGame returns a 2x2 game with a land tile at the top left and next waiting
func (s *StrategySuite) newGame(next model.Tile) *model.Game {
	g := model.NewGame("game1", model.Settings{Rows: 2, Cols: 2}, model.NewSupply(nil), testutil.FixedTime)
	s.Require().NoError(g.Board.Place(model.NewTile(1, model.KindLand, false, false), model.Position{Row: 0, Col: 0}))
	g.NextTile = &next
	return g
}

func (s *StrategySuite) TestLegalMoves_EmptyBoard() {
	g := model.NewGame("game1", model.Settings{Rows: 2, Cols: 2}, model.NewSupply(nil), testutil.FixedTime)
	next := model.NewTile(1, model.KindBridge, false, false)
	g.NextTile = &next

	moves := bot.LegalMoves(g)
	s.Len(moves, 16)
	for _, m := range moves {
		s.Equal(bot.MovePlace, m.Kind)
	}
}

func (s *StrategySuite) TestLegalMoves_MatchesTerrain() {
	g := s.newGame(model.NewTile(2, model.KindLand, false, false))

	moves := bot.LegalMoves(g)
	s.Equal([]bot.Move{
		{Kind: bot.MovePlace, Position: model.Position{Row: 0, Col: 1}, Rotations: 1},
		{Kind: bot.MovePlace, Position: model.Position{Row: 0, Col: 1}, Rotations: 3},
		{Kind: bot.MovePlace, Position: model.Position{Row: 1, Col: 0}, Rotations: 1},
		{Kind: bot.MovePlace, Position: model.Position{Row: 1, Col: 0}, Rotations: 3},
	}, moves)
}

func (s *StrategySuite) TestLegalMoves_BridgeCanSwap() {
	g := s.newGame(model.NewTile(2, model.KindBridge, false, false))

	moves := bot.LegalMoves(g)
	s.Require().Len(moves, 6)
	s.Equal(bot.Move{Kind: bot.MoveSwap, Position: model.Position{Row: 0, Col: 0}, Rotations: 0}, moves[0])
	s.Equal(bot.Move{Kind: bot.MoveSwap, Position: model.Position{Row: 0, Col: 0}, Rotations: 2}, moves[1])
}

func (s *StrategySuite) TestLegalMoves_NoTileWaiting() {
	g := s.newGame(model.NewTile(2, model.KindLand, false, false))
	g.NextTile = nil

	s.Empty(bot.LegalMoves(g))
}

func (s *StrategySuite) TestRandomStrategy_PicksQueuedIndex() {
	g := s.newGame(model.NewTile(2, model.KindLand, false, false))
	s.mockRandom.QueueIntn(2)

	move, ok := s.strategy.ChooseMove(g)
	s.Require().True(ok)
	s.Equal(bot.Move{Kind: bot.MovePlace, Position: model.Position{Row: 1, Col: 0}, Rotations: 1}, move)
}

func (s *StrategySuite) TestFirstStrategy() {
	g := s.newGame(model.NewTile(2, model.KindLand, false, false))

	move, ok := bot.NewFirstStrategy().ChooseMove(g)
	s.Require().True(ok)
	s.Equal(model.Position{Row: 0, Col: 1}, move.Position)
	s.Equal(1, move.Rotations)
}

func (s *StrategySuite) TestChooseMove_NoLegalMove() {
	g := s.newGame(model.NewTile(2, model.KindLand, false, false))
	g.State = model.GameStateFinished

	_, ok := s.strategy.ChooseMove(g)
	s.False(ok)
}
