package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/wege-go/internal/dependencies/random"
	"github.com/mcoot/wege-go/internal/model"
	"github.com/mcoot/wege-go/internal/services/game"
)

// MaxBotIterations is a safety limit for the PlayOut loop
const MaxBotIterations = 1000

// Action records a move a bot made
type Action struct {
	Side model.Side `json:"side"`
	Tile model.Tile `json:"tile"`
	Move Move       `json:"move"`
}

// Service plays moves on behalf of either side
type Service struct {
	gameController game.ControllerInterface
	strategies     map[string]Strategy
	logger         *slog.Logger
}

// NewService creates a new bot Service
func NewService(gameController game.ControllerInterface, strategies map[string]Strategy, logger *slog.Logger) *Service {
	return &Service{
		gameController: gameController,
		strategies:     strategies,
		logger:         logger.With(slog.String("component", "bot-service")),
	}
}

// HasStrategy reports whether a strategy is registered under name
func (s *Service) HasStrategy(name string) bool {
	_, ok := s.strategies[name]
	return ok
}

// PlayTurn makes one move for the side to move. It returns
// model.ErrIllegalMove when the waiting tile fits nowhere.
func (s *Service) PlayTurn(ctx context.Context, gameID model.GameID, strategy string) (*Action, error) {
	st, ok := s.strategies[strategy]
	if !ok {
		return nil, fmt.Errorf("unknown bot strategy: %s", strategy)
	}

	g, err := s.gameController.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if g.IsFinished() {
		return nil, model.ErrGameFinished
	}

	move, ok := st.ChooseMove(g)
	if !ok {
		return nil, fmt.Errorf("%w: no legal move for %s", model.ErrIllegalMove, g.NextTile)
	}

	for i := 0; i < move.Rotations; i++ {
		g, err = s.gameController.RotateNextTile(ctx, gameID)
		if err != nil {
			return nil, err
		}
	}

	action := &Action{Side: g.Turn, Tile: *g.NextTile, Move: move}

	switch move.Kind {
	case MoveSwap:
		_, err = s.gameController.Swap(ctx, gameID, move.Position)
	default:
		_, err = s.gameController.Place(ctx, gameID, move.Position)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Debug("bot moved",
		slog.String("game_id", string(gameID)),
		slog.String("side", string(action.Side)),
		slog.String("move", string(move.Kind)),
		slog.Int("row", move.Position.Row),
		slog.Int("col", move.Position.Col),
	)

	return action, nil
}

// PlayOut plays up to maxTurns moves, or until the game finishes when
// maxTurns is zero. The actions taken so far are returned with any error.
func (s *Service) PlayOut(ctx context.Context, gameID model.GameID, strategy string, maxTurns int) ([]Action, error) {
	limit := MaxBotIterations
	if maxTurns > 0 && maxTurns < limit {
		limit = maxTurns
	}

	var actions []Action
	for i := 0; i < limit; i++ {
		g, err := s.gameController.GetGame(ctx, gameID)
		if err != nil {
			return actions, err
		}
		if g.IsFinished() {
			break
		}

		action, err := s.PlayTurn(ctx, gameID, strategy)
		if err != nil {
			return actions, err
		}
		actions = append(actions, *action)
	}

	s.logger.Info("bot play finished",
		slog.String("game_id", string(gameID)),
		slog.String("strategy", strategy),
		slog.Int("moves", len(actions)),
	)

	return actions, nil
}

// DefaultStrategies returns the built-in strategies keyed by name
func DefaultStrategies(rnd random.Random) map[string]Strategy {
	return map[string]Strategy{
		StrategyRandom: NewRandomStrategy(rnd),
		StrategyFirst:  NewFirstStrategy(),
	}
}
