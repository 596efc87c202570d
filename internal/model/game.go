package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateNotStarted GameState = "not_started" // No tile placed yet
	GameStateInProgress GameState = "in_progress" // At least one tile placed
	GameStateFinished   GameState = "finished"    // Board is full, ready for scoring
)

// Board size limits accepted when creating a game
const (
	StandardBoardSize = 6
	MinBoardSize      = 1
	MaxBoardSize      = 9
	MaxSpecialCount   = 9
)

// Settings configures the board and supply of a new game
type Settings struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`

	// SpecialCount > 0 builds a supply of that many of each special tile
	// instead of the board-sized standard supply
	SpecialCount int `json:"special_count"`
}

// DefaultSettings returns the standard 6x6 game
func DefaultSettings() Settings {
	return Settings{Rows: StandardBoardSize, Cols: StandardBoardSize}
}

// Game represents a single match between the land and water players
type Game struct {
	ID       GameID    `json:"id"`
	Settings Settings  `json:"settings"`
	State    GameState `json:"state"`

	Board  *Board  `json:"board"`
	Supply *Supply `json:"supply"`

	// Players keyed by side
	Players map[Side]*Player `json:"players"`

	// Turn management
	Turn      Side  `json:"turn"`
	NextTile  *Tile `json:"next_tile,omitempty"`
	MoveCount int   `json:"move_count"`

	// Timing
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewGame creates a game with an empty board and both players.
// Land moves first.
func NewGame(id GameID, settings Settings, supply *Supply, now time.Time) *Game {
	players := make(map[Side]*Player, len(Sides))
	for _, side := range Sides {
		players[side] = NewPlayer(side)
	}
	return &Game{
		ID:        id,
		Settings:  settings,
		State:     GameStateNotStarted,
		Board:     NewBoard(settings.Rows, settings.Cols),
		Supply:    supply,
		Players:   players,
		Turn:      SideLand,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CurrentPlayer returns the player whose turn it is
func (g *Game) CurrentPlayer() *Player {
	return g.Players[g.Turn]
}

// PassTurn hands the move to the other side
func (g *Game) PassTurn() {
	g.Turn = g.Turn.Opponent()
}

// IsFinished returns true once the board is full
func (g *Game) IsFinished() bool {
	return g.State == GameStateFinished
}

// OrderedPlayers returns the players in turn order
func (g *Game) OrderedPlayers() []*Player {
	result := make([]*Player, 0, len(Sides))
	for _, side := range Sides {
		if p, ok := g.Players[side]; ok {
			result = append(result, p)
		}
	}
	return result
}

// GameResult is the scored outcome of a finished game
type GameResult struct {
	GameID      GameID             `json:"game_id"`
	Statistics  []PlayerStatistics `json:"statistics"`
	Winner      Side               `json:"winner,omitempty"` // Empty on a tie
	CompletedAt time.Time          `json:"completed_at"`
}
