package storage

import (
	"context"

	"github.com/mcoot/wege-go/internal/model"
)

// Storage defines the interface for live game data
type Storage interface {
	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
	ListGames(ctx context.Context) ([]model.GameID, error)

	// Result operations
	SaveResult(ctx context.Context, result *model.GameResult) error
	GetResult(ctx context.Context, id model.GameID) (*model.GameResult, error)
}
