package game

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/wege-go/internal/dependencies/clock"
	"github.com/mcoot/wege-go/internal/dependencies/random"
	"github.com/mcoot/wege-go/internal/model"
	"github.com/mcoot/wege-go/internal/services/deck"
	"github.com/mcoot/wege-go/internal/services/rules"
	"github.com/mcoot/wege-go/internal/services/scoring"
	"github.com/mcoot/wege-go/internal/storage"
)

const (
	gameIDLength   = 12
	gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Controller manages turn flow and the lifecycle of games
type Controller struct {
	storage        storage.Storage
	deckService    *deck.Service
	scoringService *scoring.Service
	clock          clock.Clock
	random         random.Random
	logger         *slog.Logger
	locks          *gameLocks
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	deckService *deck.Service,
	scoringService *scoring.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:        storage,
		deckService:    deckService,
		scoringService: scoringService,
		clock:          clock,
		random:         random,
		logger:         logger,
		locks:          newGameLocks(),
	}
}

// CreateGame builds the supply, draws the first tile and stores the new game
func (c *Controller) CreateGame(ctx context.Context, settings model.Settings) (*model.Game, error) {
	supply, err := c.deckService.FromSettings(settings)
	if err != nil {
		return nil, err
	}

	gameID := model.GameID(c.random.String(gameIDLength, gameIDAlphabet))
	game := model.NewGame(gameID, settings, supply, c.clock.Now())

	first, err := supply.DrawFromFront()
	if err != nil {
		return nil, err
	}
	game.NextTile = &first

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(gameID)),
		slog.Int("rows", settings.Rows),
		slog.Int("cols", settings.Cols),
		slog.Int("special_count", settings.SpecialCount),
		slog.Int("supply_size", supply.Size()),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// ListGames returns the IDs of all live games
func (c *Controller) ListGames(ctx context.Context) ([]model.GameID, error) {
	return c.storage.ListGames(ctx)
}

// DeleteGame removes a game and its result
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID) error {
	unlock := c.locks.lock(gameID)
	defer unlock()

	if _, err := c.storage.GetGame(ctx, gameID); err != nil {
		return err
	}
	if err := c.storage.DeleteGame(ctx, gameID); err != nil {
		return err
	}

	c.logger.Info("game deleted", slog.String("game_id", string(gameID)))
	return nil
}

// RotateNextTile turns the waiting tile 90 degrees clockwise
func (c *Controller) RotateNextTile(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	unlock := c.locks.lock(gameID)
	defer unlock()

	game, err := c.loadPlayable(ctx, gameID)
	if err != nil {
		return nil, err
	}

	rotated := game.NextTile.Rotated()
	game.NextTile = &rotated
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// Place puts the waiting tile at pos for the side to move
func (c *Controller) Place(ctx context.Context, gameID model.GameID, pos model.Position) (*model.Game, error) {
	unlock := c.locks.lock(gameID)
	defer unlock()

	game, err := c.loadPlayable(ctx, gameID)
	if err != nil {
		return nil, err
	}

	tile := *game.NextTile
	mover := game.CurrentPlayer()

	if err := rules.New(game.Board).Place(tile, pos); err != nil {
		return nil, c.rejectMove(game, "place", pos, err)
	}

	if tile.Kind == model.KindCossack {
		mover.CossackPlayed++
	}

	if game.Board.IsFull() {
		game.NextTile = nil
		game.State = model.GameStateFinished
	} else {
		next, err := game.Supply.DrawFromFront()
		if err != nil {
			// FromSettings only builds supplies that can fill the board
			c.logger.Error("supply exhausted before board is full",
				slog.String("game_id", string(gameID)),
				slog.Int("tiles_placed", game.Board.TilesPlaced()),
				slog.Int("capacity", game.Board.Capacity()),
			)
			return nil, err
		}
		game.NextTile = &next
		game.State = model.GameStateInProgress
	}

	if err := c.completeMove(ctx, game, "tile placed", tile, pos); err != nil {
		return nil, err
	}
	return game, nil
}

// Swap replaces the tile at pos with the waiting bridge. The displaced tile
// becomes the next tile to play.
func (c *Controller) Swap(ctx context.Context, gameID model.GameID, pos model.Position) (*model.Game, error) {
	unlock := c.locks.lock(gameID)
	defer unlock()

	game, err := c.loadPlayable(ctx, gameID)
	if err != nil {
		return nil, err
	}

	tile := *game.NextTile

	displaced, err := rules.New(game.Board).Swap(tile, pos)
	if err != nil {
		return nil, c.rejectMove(game, "swap", pos, err)
	}

	game.NextTile = &displaced
	game.State = model.GameStateInProgress

	if err := c.completeMove(ctx, game, "tile swapped", tile, pos); err != nil {
		return nil, err
	}
	return game, nil
}

// TryPlace is Place reporting illegal moves as false instead of an error
func (c *Controller) TryPlace(ctx context.Context, gameID model.GameID, pos model.Position) (bool, error) {
	_, err := c.Place(ctx, gameID, pos)
	return accepted(err)
}

// TrySwap is Swap reporting illegal moves as false instead of an error
func (c *Controller) TrySwap(ctx context.Context, gameID model.GameID, pos model.Position) (bool, error) {
	_, err := c.Swap(ctx, gameID, pos)
	return accepted(err)
}

// IsFull reports whether every cell of the game's board holds a tile
func (c *Controller) IsFull(ctx context.Context, gameID model.GameID) (bool, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return false, err
	}
	return game.Board.IsFull(), nil
}

// CollectStatistics scores a finished game and returns both players' statistics
func (c *Controller) CollectStatistics(ctx context.Context, gameID model.GameID) ([]model.PlayerStatistics, error) {
	result, err := c.GetResult(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return result.Statistics, nil
}

// GetResult returns the scored result of a finished game, scoring it on
// first request
func (c *Controller) GetResult(ctx context.Context, gameID model.GameID) (*model.GameResult, error) {
	unlock := c.locks.lock(gameID)
	defer unlock()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !game.Board.IsFull() {
		return nil, model.ErrGameNotFinished
	}

	existing, err := c.storage.GetResult(ctx, gameID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, model.ErrResultNotFound) {
		return nil, err
	}

	stats, err := c.scoringService.Score(game.Board, game.Players)
	if err != nil {
		return nil, err
	}

	result := &model.GameResult{
		GameID:      gameID,
		Statistics:  stats,
		CompletedAt: c.clock.Now(),
	}
	if winner, ok := scoring.DetermineWinner(stats); ok {
		result.Winner = winner
	}

	if err := c.storage.SaveResult(ctx, result); err != nil {
		return nil, err
	}

	attrs := []any{
		slog.String("game_id", string(gameID)),
		slog.String("winner", string(result.Winner)),
	}
	for _, st := range stats {
		attrs = append(attrs, slog.Int(string(st.Side)+"_score", st.Score.Total()))
	}
	c.logger.Info("game scored", attrs...)

	return result, nil
}

// loadPlayable fetches a game that still has a tile waiting to be played
func (c *Controller) loadPlayable(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.IsFinished() {
		return nil, model.ErrGameFinished
	}
	if game.NextTile == nil {
		return nil, model.ErrNoTileToPlay
	}
	return game, nil
}

// rejectMove logs a failed move. Illegal moves are expected; anything else
// means the board and rule engine disagree.
func (c *Controller) rejectMove(game *model.Game, move string, pos model.Position, err error) error {
	attrs := []any{
		slog.String("game_id", string(game.ID)),
		slog.String("move", move),
		slog.String("side", string(game.Turn)),
		slog.Int("row", pos.Row),
		slog.Int("col", pos.Col),
		slog.String("error", err.Error()),
	}

	if errors.Is(err, model.ErrIllegalMove) {
		c.logger.Debug("move rejected", attrs...)
	} else {
		c.logger.Error("board rejected a checked move", attrs...)
	}
	return err
}

// completeMove passes the turn and stores the game
func (c *Controller) completeMove(ctx context.Context, game *model.Game, msg string, tile model.Tile, pos model.Position) error {
	side := game.Turn
	game.PassTurn()
	game.MoveCount++
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return err
	}

	c.logger.Info(msg,
		slog.String("game_id", string(game.ID)),
		slog.String("side", string(side)),
		slog.String("tile", tile.String()),
		slog.Int("row", pos.Row),
		slog.Int("col", pos.Col),
		slog.Int("move", game.MoveCount),
	)

	if game.IsFinished() {
		c.logger.Info("game finished",
			slog.String("game_id", string(game.ID)),
			slog.Int("moves", game.MoveCount),
		)
	}
	return nil
}

func accepted(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if errors.Is(err, model.ErrIllegalMove) {
		return false, nil
	}
	return false, err
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, settings model.Settings) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	ListGames(ctx context.Context) ([]model.GameID, error)
	DeleteGame(ctx context.Context, gameID model.GameID) error
	RotateNextTile(ctx context.Context, gameID model.GameID) (*model.Game, error)
	Place(ctx context.Context, gameID model.GameID, pos model.Position) (*model.Game, error)
	Swap(ctx context.Context, gameID model.GameID, pos model.Position) (*model.Game, error)
	TryPlace(ctx context.Context, gameID model.GameID, pos model.Position) (bool, error)
	TrySwap(ctx context.Context, gameID model.GameID, pos model.Position) (bool, error)
	IsFull(ctx context.Context, gameID model.GameID) (bool, error)
	CollectStatistics(ctx context.Context, gameID model.GameID) ([]model.PlayerStatistics, error)
	GetResult(ctx context.Context, gameID model.GameID) (*model.GameResult, error)
}

var _ ControllerInterface = (*Controller)(nil)
