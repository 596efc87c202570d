package bot_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wege-go/internal/dependencies/mocks"
	"github.com/mcoot/wege-go/internal/model"
	"github.com/mcoot/wege-go/internal/services/bot"
	"github.com/mcoot/wege-go/internal/services/deck"
	"github.com/mcoot/wege-go/internal/services/game"
	"github.com/mcoot/wege-go/internal/services/scoring"
	"github.com/mcoot/wege-go/internal/storage/memory"
	"github.com/mcoot/wege-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	store      *memory.Storage
	mockClock  *mocks.MockClock
	mockRandom *mocks.MockRandom

	gameController *game.Controller
	botService     *bot.Service

	ctx context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.store = memory.New()
	s.mockClock = mocks.NewMockClock(testutil.FixedTime)
	s.mockRandom = mocks.NewMockRandom()
	logger := testutil.NopLogger()
	s.ctx = context.Background()

	s.gameController = game.NewController(s.store, deck.New(s.mockRandom), scoring.New(logger), s.mockClock, s.mockRandom, logger)
	s.botService = bot.NewService(s.gameController, bot.DefaultStrategies(s.mockRandom), logger)
}

// seedGame stores a 2x2 game of plain land tiles with the first one waiting
func (s *ServiceSuite) seedGame(id model.GameID) {
	tiles := []model.Tile{
		model.NewTile(1, model.KindLand, false, false),
		model.NewTile(2, model.KindLand, false, false),
		model.NewTile(3, model.KindLand, false, false),
		model.NewTile(4, model.KindLand, false, false),
	}
	g := model.NewGame(id, model.Settings{Rows: 2, Cols: 2}, model.NewSupply(tiles[1:]), s.mockClock.Now())
	g.NextTile = &tiles[0]
	s.Require().NoError(s.store.SaveGame(s.ctx, g))
}

func (s *ServiceSuite) TestHasStrategy() {
	s.True(s.botService.HasStrategy(bot.StrategyRandom))
	s.True(s.botService.HasStrategy(bot.StrategyFirst))
	s.False(s.botService.HasStrategy("clever"))
}

func (s *ServiceSuite) TestPlayTurn_RotatesThenPlaces() {
	s.seedGame("g1")
	_, err := s.gameController.Place(s.ctx, "g1", model.Position{Row: 0, Col: 0})
	s.Require().NoError(err)

	action, err := s.botService.PlayTurn(s.ctx, "g1", bot.StrategyFirst)
	s.Require().NoError(err)

	s.Equal(model.SideWater, action.Side)
	s.Equal(model.Position{Row: 0, Col: 1}, action.Move.Position)
	s.Equal(model.TopRight, action.Tile.Orientation)

	g, _ := s.gameController.GetGame(s.ctx, "g1")
	placed, ok := g.Board.TileAt(model.Position{Row: 0, Col: 1})
	s.Require().True(ok)
	s.Equal(model.TopRight, placed.Orientation)
	s.Equal(model.SideLand, g.Turn)
}

func (s *ServiceSuite) TestPlayTurn_UnknownStrategy() {
	s.seedGame("g1")

	_, err := s.botService.PlayTurn(s.ctx, "g1", "clever")
	s.Error(err)
}

func (s *ServiceSuite) TestPlayTurn_GameNotFound() {
	_, err := s.botService.PlayTurn(s.ctx, "nonexistent", bot.StrategyFirst)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ServiceSuite) TestPlayOut_FinishesGame() {
	s.seedGame("g1")

	actions, err := s.botService.PlayOut(s.ctx, "g1", bot.StrategyRandom, 0)
	s.Require().NoError(err)
	s.Len(actions, 4)
	s.Equal(model.SideLand, actions[0].Side)
	s.Equal(model.SideWater, actions[1].Side)

	g, _ := s.gameController.GetGame(s.ctx, "g1")
	s.True(g.IsFinished())

	_, err = s.botService.PlayTurn(s.ctx, "g1", bot.StrategyFirst)
	s.ErrorIs(err, model.ErrGameFinished)
}

func (s *ServiceSuite) TestPlayOut_StopsAfterMaxTurns() {
	s.seedGame("g1")

	actions, err := s.botService.PlayOut(s.ctx, "g1", bot.StrategyFirst, 2)
	s.Require().NoError(err)
	s.Len(actions, 2)

	g, _ := s.gameController.GetGame(s.ctx, "g1")
	s.Equal(2, g.Board.TilesPlaced())
	s.False(g.IsFinished())
}
