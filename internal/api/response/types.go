package response

import (
	"time"

	"github.com/mcoot/wege-go/internal/model"
	"github.com/mcoot/wege-go/internal/services/bot"
)

// Marker placements on a tile
const (
	MarkerNone   = ""
	MarkerPath   = "path"
	MarkerCorner = "corner"
)

// Tile represents a tile in API responses
type Tile struct {
	ID          int    `json:"id"`
	Kind        string `json:"kind"`
	Orientation string `json:"orientation"`
	Marker      string `json:"marker,omitempty"`
	// Terrain is the side shown at each corner, clockwise from top left
	Terrain []string `json:"terrain"`
}

// TileFromModel converts a model.Tile to a response Tile
func TileFromModel(t model.Tile) Tile {
	marker := MarkerNone
	if t.HasMarker {
		marker = MarkerCorner
		if t.MarkerOnPath {
			marker = MarkerPath
		}
	}

	terrain := make([]string, len(model.Corners))
	for i, c := range model.Corners {
		terrain[i] = string(t.SideAt(c))
	}

	return Tile{
		ID:          int(t.ID),
		Kind:        string(t.Kind),
		Orientation: t.Orientation.String(),
		Marker:      marker,
		Terrain:     terrain,
	}
}

// Board represents a game board. Empty cells are null.
type Board struct {
	Rows  int       `json:"rows"`
	Cols  int       `json:"cols"`
	Cells [][]*Tile `json:"cells"`
}

// BoardFromModel converts model.Board to response Board
func BoardFromModel(b *model.Board) Board {
	cells := make([][]*Tile, b.Rows())
	for row := 0; row < b.Rows(); row++ {
		cells[row] = make([]*Tile, b.Cols())
		for col := 0; col < b.Cols(); col++ {
			if t, ok := b.TileAt(model.Position{Row: row, Col: col}); ok {
				rt := TileFromModel(t)
				cells[row][col] = &rt
			}
		}
	}
	return Board{Rows: b.Rows(), Cols: b.Cols(), Cells: cells}
}

// Player represents one side's in-game counters
type Player struct {
	Side          string `json:"side"`
	CossackPlayed int    `json:"cossack_played"`
}

// Settings represents the game's configuration
type Settings struct {
	Rows    int `json:"rows"`
	Cols    int `json:"cols"`
	Special int `json:"special,omitempty"`
}

// Game represents the current game state
type Game struct {
	ID         string    `json:"id"`
	State      string    `json:"state"`
	Settings   Settings  `json:"settings"`
	Turn       string    `json:"turn"`
	NextTile   *Tile     `json:"next_tile"`
	SupplySize int       `json:"supply_size"`
	MoveCount  int       `json:"move_count"`
	Board      Board     `json:"board"`
	Players    []Player  `json:"players"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// GameFromModel converts model.Game to response Game
func GameFromModel(g *model.Game) Game {
	var next *Tile
	if g.NextTile != nil {
		t := TileFromModel(*g.NextTile)
		next = &t
	}

	players := make([]Player, 0, len(g.Players))
	for _, p := range g.OrderedPlayers() {
		players = append(players, Player{Side: string(p.Side), CossackPlayed: p.CossackPlayed})
	}

	return Game{
		ID:    string(g.ID),
		State: string(g.State),
		Settings: Settings{
			Rows:    g.Settings.Rows,
			Cols:    g.Settings.Cols,
			Special: g.Settings.SpecialCount,
		},
		Turn:       string(g.Turn),
		NextTile:   next,
		SupplySize: g.Supply.Size(),
		MoveCount:  g.MoveCount,
		Board:      BoardFromModel(g.Board),
		Players:    players,
		CreatedAt:  g.CreatedAt,
		UpdatedAt:  g.UpdatedAt,
	}
}

// GameList is the response for listing games
type GameList struct {
	Games []string `json:"games"`
}

// GameListFromModel converts game IDs to a GameList
func GameListFromModel(ids []model.GameID) GameList {
	games := make([]string, len(ids))
	for i, id := range ids {
		games[i] = string(id)
	}
	return GameList{Games: games}
}

// Score is a player's points by category
type Score struct {
	SideConnected int `json:"side_connected"`
	Enclosed      int `json:"enclosed"`
	MarkerGroups  int `json:"marker_groups"`
	Cossacks      int `json:"cossacks"`
	Total         int `json:"total"`
}

// PlayerStatistics is one side's end-of-game report
type PlayerStatistics struct {
	Side            string      `json:"side"`
	CossackPlayed   int         `json:"cossack_played"`
	EnclosedRegions int         `json:"enclosed_regions"`
	MaxEdgesTouched int         `json:"max_edges_touched"`
	MarkerGroups    map[int]int `json:"marker_groups"`
	Score           Score       `json:"score"`
}

// PlayerStatisticsFromModel converts model.PlayerStatistics
func PlayerStatisticsFromModel(s model.PlayerStatistics) PlayerStatistics {
	return PlayerStatistics{
		Side:            string(s.Side),
		CossackPlayed:   s.CossackPlayed,
		EnclosedRegions: s.EnclosedRegions,
		MaxEdgesTouched: s.MaxEdgesTouched,
		MarkerGroups:    s.MarkerGroupHistogram,
		Score: Score{
			SideConnected: s.Score.SideConnected,
			Enclosed:      s.Score.Enclosed,
			MarkerGroups:  s.Score.MarkerGroups,
			Cossacks:      s.Score.Cossacks,
			Total:         s.Score.Total(),
		},
	}
}

// Result is the scored outcome of a finished game
type Result struct {
	GameID      string             `json:"game_id"`
	Players     []PlayerStatistics `json:"players"`
	Winner      *string            `json:"winner"`
	CompletedAt time.Time          `json:"completed_at"`
}

// ResultFromModel converts model.GameResult. A tie has a null winner.
func ResultFromModel(r *model.GameResult) Result {
	players := make([]PlayerStatistics, len(r.Statistics))
	for i, s := range r.Statistics {
		players[i] = PlayerStatisticsFromModel(s)
	}

	var winner *string
	if r.Winner != "" {
		w := string(r.Winner)
		winner = &w
	}

	return Result{
		GameID:      string(r.GameID),
		Players:     players,
		Winner:      winner,
		CompletedAt: r.CompletedAt,
	}
}

// BotMove is a move made by a bot
type BotMove struct {
	Side      string `json:"side"`
	Kind      string `json:"kind"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Rotations int    `json:"rotations"`
	Tile      Tile   `json:"tile"`
}

// AutoplayResponse is the response after a bot has played
type AutoplayResponse struct {
	Moves []BotMove `json:"moves"`
	Game  Game      `json:"game"`
}

// AutoplayResponseFromModel converts bot actions and the resulting game
func AutoplayResponseFromModel(actions []bot.Action, g *model.Game) AutoplayResponse {
	moves := make([]BotMove, len(actions))
	for i, a := range actions {
		moves[i] = BotMove{
			Side:      string(a.Side),
			Kind:      string(a.Move.Kind),
			Row:       a.Move.Position.Row,
			Col:       a.Move.Position.Col,
			Rotations: a.Move.Rotations,
			Tile:      TileFromModel(a.Tile),
		}
	}
	return AutoplayResponse{Moves: moves, Game: GameFromModel(g)}
}
