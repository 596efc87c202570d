package redis

import (
	"fmt"

	"github.com/mcoot/wege-go/internal/model"
)

// Key prefix for all wege data
const keyPrefix = "wege"

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// gamesIndexKey returns the Redis key for the SET of live game IDs
func gamesIndexKey() string {
	return fmt.Sprintf("%s:idx:games", keyPrefix)
}

// resultKey returns the Redis key for a GameResult
func resultKey(id model.GameID) string {
	return fmt.Sprintf("%s:result:%s", keyPrefix, id)
}
