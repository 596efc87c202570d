package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/wege-go/internal/dependencies/clock"
	"github.com/mcoot/wege-go/internal/dependencies/random"
	"github.com/mcoot/wege-go/internal/services/bot"
	"github.com/mcoot/wege-go/internal/services/deck"
	"github.com/mcoot/wege-go/internal/services/game"
	"github.com/mcoot/wege-go/internal/services/scoring"
	"github.com/mcoot/wege-go/internal/storage"
	"github.com/mcoot/wege-go/internal/storage/memory"
	redisstorage "github.com/mcoot/wege-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage     storage.Storage
	StorageType string

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	DeckService    *deck.Service
	ScoringService *scoring.Service
	GameController *game.Controller
	BotService     *bot.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	app := newWithDependencies(store, clock.New(), random.New(), logger)
	app.StorageType = storageType
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	deckService := deck.New(rnd)
	scoringService := scoring.New(logger)
	gameController := game.NewController(store, deckService, scoringService, clk, rnd, logger)
	botService := bot.NewService(gameController, bot.DefaultStrategies(rnd), logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		DeckService:    deckService,
		ScoringService: scoringService,
		GameController: gameController,
		BotService:     botService,
	}
}
