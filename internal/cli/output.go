package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format  string
	w       io.Writer
	verbose bool
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// WithVerbose enables extra detail in text output
func (o *Output) WithVerbose(verbose bool) *Output {
	o.verbose = verbose
	return o
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == OutputJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == OutputJSON {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == OutputJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Game:
		o.printGame(v)
	case GameList:
		o.printGameList(v)
	case Result:
		o.printResult(v)
	case AutoplayResult:
		o.printAutoplayResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Tile response type (matches API)
type Tile struct {
	ID          int      `json:"id"`
	Kind        string   `json:"kind"`
	Orientation string   `json:"orientation"`
	Marker      string   `json:"marker,omitempty"`
	Terrain     []string `json:"terrain"`
}

// String renders a short description such as "land@top_left (marker: path)"
func (t Tile) String() string {
	s := fmt.Sprintf("%s@%s", t.Kind, t.Orientation)
	if t.Marker != "" {
		s += fmt.Sprintf(" (marker: %s)", t.Marker)
	}
	return s
}

// Board response type
type Board struct {
	Rows  int       `json:"rows"`
	Cols  int       `json:"cols"`
	Cells [][]*Tile `json:"cells"`
}

// Player response type
type Player struct {
	Side          string `json:"side"`
	CossackPlayed int    `json:"cossack_played"`
}

// Settings response type
type Settings struct {
	Rows    int `json:"rows"`
	Cols    int `json:"cols"`
	Special int `json:"special,omitempty"`
}

// Game response type
type Game struct {
	ID         string   `json:"id"`
	State      string   `json:"state"`
	Settings   Settings `json:"settings"`
	Turn       string   `json:"turn"`
	NextTile   *Tile    `json:"next_tile"`
	SupplySize int      `json:"supply_size"`
	MoveCount  int      `json:"move_count"`
	Board      Board    `json:"board"`
	Players    []Player `json:"players"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

// GameList response type
type GameList struct {
	Games []string `json:"games"`
}

// Score response type
type Score struct {
	SideConnected int `json:"side_connected"`
	Enclosed      int `json:"enclosed"`
	MarkerGroups  int `json:"marker_groups"`
	Cossacks      int `json:"cossacks"`
	Total         int `json:"total"`
}

// PlayerStatistics response type
type PlayerStatistics struct {
	Side            string      `json:"side"`
	CossackPlayed   int         `json:"cossack_played"`
	EnclosedRegions int         `json:"enclosed_regions"`
	MaxEdgesTouched int         `json:"max_edges_touched"`
	MarkerGroups    map[int]int `json:"marker_groups"`
	Score           Score       `json:"score"`
}

// Result response type
type Result struct {
	GameID      string             `json:"game_id"`
	Players     []PlayerStatistics `json:"players"`
	Winner      *string            `json:"winner"`
	CompletedAt string             `json:"completed_at"`
}

// BotMove response type
type BotMove struct {
	Side      string `json:"side"`
	Kind      string `json:"kind"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Rotations int    `json:"rotations"`
	Tile      Tile   `json:"tile"`
}

// AutoplayResult response type
type AutoplayResult struct {
	Moves []BotMove `json:"moves"`
	Game  Game      `json:"game"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printGame(g Game) {
	fmt.Fprintf(o.w, "Game: %s\n", g.ID)
	fmt.Fprintf(o.w, "State: %s\n", g.State)
	if g.Settings.Special > 0 {
		fmt.Fprintf(o.w, "Board: %dx%d (special supply %d)\n", g.Settings.Rows, g.Settings.Cols, g.Settings.Special)
	} else {
		fmt.Fprintf(o.w, "Board: %dx%d\n", g.Settings.Rows, g.Settings.Cols)
	}
	fmt.Fprintf(o.w, "Moves: %d\n", g.MoveCount)
	fmt.Fprintf(o.w, "Supply: %d tiles\n", g.SupplySize)

	if g.NextTile != nil {
		fmt.Fprintf(o.w, "Turn: %s\n", g.Turn)
		fmt.Fprintf(o.w, "Next tile: %s\n", g.NextTile)
		if o.verbose {
			fmt.Fprintf(o.w, "  %s\n", tileBlock(g.NextTile)[0])
			fmt.Fprintf(o.w, "  %s\n", tileBlock(g.NextTile)[1])
		}
	}

	cossacks := make([]string, len(g.Players))
	for i, p := range g.Players {
		cossacks[i] = fmt.Sprintf("%s %d", p.Side, p.CossackPlayed)
	}
	fmt.Fprintf(o.w, "Cossacks played: %s\n", strings.Join(cossacks, ", "))

	if o.verbose {
		fmt.Fprintf(o.w, "Created: %s\n", g.CreatedAt)
		fmt.Fprintf(o.w, "Updated: %s\n", g.UpdatedAt)
	}

	fmt.Fprintln(o.w)
	fmt.Fprint(o.w, renderBoard(g.Board))
}

func (o *Output) printGameList(l GameList) {
	if len(l.Games) == 0 {
		fmt.Fprintln(o.w, "No games")
		return
	}
	fmt.Fprintf(o.w, "Games (%d):\n", len(l.Games))
	for _, id := range l.Games {
		fmt.Fprintf(o.w, "  - %s\n", id)
	}
}

func (o *Output) printResult(r Result) {
	fmt.Fprintf(o.w, "Game: %s\n", r.GameID)
	for _, p := range r.Players {
		s := p.Score
		fmt.Fprintf(o.w, "  %s: %d points (side %d, enclosed %d, markers %d, cossacks %d)\n",
			p.Side, s.Total, s.SideConnected, s.Enclosed, s.MarkerGroups, s.Cossacks)
		fmt.Fprintf(o.w, "    edges touched %d, enclosed regions %d, marker groups %s\n",
			p.MaxEdgesTouched, p.EnclosedRegions, formatHistogram(p.MarkerGroups))
	}

	if r.Winner != nil {
		fmt.Fprintf(o.w, "Winner: %s\n", *r.Winner)
	} else {
		fmt.Fprintln(o.w, "Result: tie")
	}
}

func (o *Output) printAutoplayResult(a AutoplayResult) {
	for _, m := range a.Moves {
		verb := "placed"
		if m.Kind == "swap" {
			verb = "swapped"
		}
		fmt.Fprintf(o.w, "%s %s %s at (%d,%d)\n", m.Side, verb, m.Tile, m.Row, m.Col)
	}
	fmt.Fprintln(o.w)
	o.printGame(a.Game)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
}

// formatHistogram renders marker group counts as "none" or "2x1, 3x2"
// (size x count) in ascending size order
func formatHistogram(h map[int]int) string {
	if len(h) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(h))
	sizes := make([]int, 0, len(h))
	for size := range h {
		sizes = append(sizes, size)
	}
	slices.Sort(sizes)
	for _, size := range sizes {
		parts = append(parts, fmt.Sprintf("%dx%d", size, h[size]))
	}
	return strings.Join(parts, ", ")
}

var terrainChars = map[string]byte{"land": '#', "water": '~'}

var kindChars = map[string]byte{"land": 'L', "water": 'W', "bridge": 'B', "cossack": 'C'}

var markerChars = map[string]byte{"path": '*', "corner": '+'}

func charOr(m map[string]byte, key string, fallback byte) byte {
	if c, ok := m[key]; ok {
		return c
	}
	return fallback
}

// tileBlock draws a tile as two 3-character lines: the top corners either
// side of the kind, then the bottom corners either side of the marker
func tileBlock(t *Tile) [2]string {
	if t == nil {
		return [2]string{"   ", " . "}
	}
	corner := func(i int) byte {
		if i < len(t.Terrain) {
			return charOr(terrainChars, t.Terrain[i], '?')
		}
		return '?'
	}
	// Terrain runs clockwise from the top left
	top := []byte{corner(0), charOr(kindChars, t.Kind, '?'), corner(1)}
	bottom := []byte{corner(3), charOr(markerChars, t.Marker, ' '), corner(2)}
	return [2]string{string(top), string(bottom)}
}

func renderBoard(b Board) string {
	if len(b.Cells) == 0 {
		return ""
	}

	var sb strings.Builder
	cols := len(b.Cells[0])
	border := "   +" + strings.Repeat("-", 4*cols+1) + "+\n"

	header := "     "
	for col := 0; col < cols; col++ {
		header += fmt.Sprintf(" %d  ", col)
	}
	sb.WriteString(strings.TrimRight(header, " ") + "\n")
	sb.WriteString(border)

	for row, cells := range b.Cells {
		var top, bottom []string
		for _, cell := range cells {
			block := tileBlock(cell)
			top = append(top, block[0])
			bottom = append(bottom, block[1])
		}
		fmt.Fprintf(&sb, " %d | %s |\n", row, strings.Join(top, " "))
		fmt.Fprintf(&sb, "   | %s |\n", strings.Join(bottom, " "))
	}

	sb.WriteString(border)
	return sb.String()
}
