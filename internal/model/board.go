package model

import (
	"encoding/json"
	"fmt"
)

// Intersection is a lattice point where up to four tile corners meet.
// X runs over rows (0..rows) and Y over columns (0..cols).
type Intersection struct {
	X                 int  `json:"x"`
	Y                 int  `json:"y"`
	ConnectsLand      bool `json:"connects_land"`
	FacingMarkerCount int  `json:"facing_marker_count"`

	// Traversal flags, scoped to a single scoring pass
	Visited   bool `json:"-"`
	Completed bool `json:"-"`
}

// Side returns the side this intersection belongs to
func (i *Intersection) Side() Side {
	return SideOf(i.ConnectsLand)
}

// Direction names a neighbouring cell
type Direction string

const (
	DirectionTop    Direction = "top"
	DirectionRight  Direction = "right"
	DirectionBottom Direction = "bottom"
	DirectionLeft   Direction = "left"
)

// Edge names a side of the board
type Edge string

const (
	EdgeTop    Edge = "top"
	EdgeRight  Edge = "right"
	EdgeBottom Edge = "bottom"
	EdgeLeft   Edge = "left"
)

// CornerTile is a placed tile together with its corner at some intersection
type CornerTile struct {
	Tile   Tile
	Corner Corner
}

// cornerOffset returns the lattice offset of a tile corner from the tile's cell
func cornerOffset(c Corner) (dx, dy int) {
	switch c {
	case TopRight:
		return 0, 1
	case BottomRight:
		return 1, 1
	case BottomLeft:
		return 1, 0
	default:
		return 0, 0
	}
}

// cornerFromOffset is the inverse of cornerOffset
func cornerFromOffset(dx, dy int) Corner {
	switch {
	case dx == 0 && dy == 1:
		return TopRight
	case dx == 1 && dy == 1:
		return BottomRight
	case dx == 1 && dy == 0:
		return BottomLeft
	default:
		return TopLeft
	}
}

// Board holds placed tiles and the intersection grid derived from them
type Board struct {
	rows          int
	cols          int
	cells         [][]*Tile
	intersections [][]*Intersection
	tilesPlaced   int
}

// NewBoard creates an empty board with the given dimensions
func NewBoard(rows, cols int) *Board {
	cells := make([][]*Tile, rows)
	for i := range cells {
		cells[i] = make([]*Tile, cols)
	}
	intersections := make([][]*Intersection, rows+1)
	for i := range intersections {
		intersections[i] = make([]*Intersection, cols+1)
	}
	return &Board{
		rows:          rows,
		cols:          cols,
		cells:         cells,
		intersections: intersections,
	}
}

// Rows returns the number of rows
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns
func (b *Board) Cols() int { return b.cols }

// MaxX returns the largest intersection row coordinate
func (b *Board) MaxX() int { return b.rows }

// MaxY returns the largest intersection column coordinate
func (b *Board) MaxY() int { return b.cols }

// Capacity returns the number of cells on the board
func (b *Board) Capacity() int { return b.rows * b.cols }

// TilesPlaced returns how many cells hold a tile
func (b *Board) TilesPlaced() int { return b.tilesPlaced }

// IsFull returns true if every cell holds a tile
func (b *Board) IsFull() bool {
	return b.tilesPlaced == b.Capacity()
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.rows && pos.Col >= 0 && pos.Col < b.cols
}

// TileAt returns the tile at the given position, if any
func (b *Board) TileAt(pos Position) (Tile, bool) {
	if !b.IsValidPosition(pos) {
		return Tile{}, false
	}
	t := b.cells[pos.Row][pos.Col]
	if t == nil {
		return Tile{}, false
	}
	return *t, true
}

// IsEmpty returns true if the position is in bounds and holds no tile
func (b *Board) IsEmpty(pos Position) bool {
	return b.IsValidPosition(pos) && b.cells[pos.Row][pos.Col] == nil
}

// Place puts a tile on an empty cell and updates the surrounding intersections
func (b *Board) Place(tile Tile, pos Position) error {
	if !b.IsValidPosition(pos) {
		return fmt.Errorf("place at (%d,%d): %w", pos.Row, pos.Col, ErrOutOfBounds)
	}
	if b.cells[pos.Row][pos.Col] != nil {
		return fmt.Errorf("place at (%d,%d): %w", pos.Row, pos.Col, ErrCellOccupied)
	}

	b.write(tile, pos)
	b.tilesPlaced++
	return nil
}

// Swap replaces the tile at an occupied cell and returns the displaced tile.
// Intersections are overwritten by the new tile's corners.
func (b *Board) Swap(tile Tile, pos Position) (Tile, error) {
	if !b.IsValidPosition(pos) {
		return Tile{}, fmt.Errorf("swap at (%d,%d): %w", pos.Row, pos.Col, ErrOutOfBounds)
	}
	old := b.cells[pos.Row][pos.Col]
	if old == nil {
		return Tile{}, fmt.Errorf("swap at (%d,%d): %w", pos.Row, pos.Col, ErrCellEmpty)
	}

	if marker, err := old.MarkerPosition(); err == nil {
		if ix, ok := b.cornerIntersection(pos, marker); ok && ix.FacingMarkerCount > 0 {
			ix.FacingMarkerCount--
		}
	}

	b.write(tile, pos)
	return old.Detached(), nil
}

// write stores the tile and refreshes its four intersections
func (b *Board) write(tile Tile, pos Position) {
	p := pos
	tile.Position = &p
	b.cells[pos.Row][pos.Col] = &tile

	for _, corner := range Corners {
		dx, dy := cornerOffset(corner)
		x, y := pos.Row+dx, pos.Col+dy
		ix := b.intersections[x][y]
		if ix == nil {
			ix = &Intersection{X: x, Y: y}
			b.intersections[x][y] = ix
		}
		ix.ConnectsLand = tile.IsLand(corner)
		if tile.MarkerAt(corner) {
			ix.FacingMarkerCount++
		}
	}
}

// FindAdjacent returns the tiles orthogonally next to a position.
// Directions without a tile are absent from the map.
func (b *Board) FindAdjacent(pos Position) map[Direction]Tile {
	neighbours := map[Direction]Position{
		DirectionTop:    {Row: pos.Row - 1, Col: pos.Col},
		DirectionRight:  {Row: pos.Row, Col: pos.Col + 1},
		DirectionBottom: {Row: pos.Row + 1, Col: pos.Col},
		DirectionLeft:   {Row: pos.Row, Col: pos.Col - 1},
	}

	adjacent := make(map[Direction]Tile, len(neighbours))
	for dir, p := range neighbours {
		if t, ok := b.TileAt(p); ok {
			adjacent[dir] = t
		}
	}
	return adjacent
}

// FirstContact finds where a tile at pos would touch the existing board.
// It returns the first existing intersection of the 2x2 block around the
// cell, and the candidate tile's corner there, but only when at least two
// of the four intersections already exist.
func (b *Board) FirstContact(pos Position) (*Intersection, Corner, bool) {
	if !b.IsValidPosition(pos) {
		return nil, TopLeft, false
	}

	var first *Intersection
	var firstCorner Corner
	contacts := 0
	for dx := 0; dx <= 1; dx++ {
		for dy := 0; dy <= 1; dy++ {
			ix := b.intersections[pos.Row+dx][pos.Col+dy]
			if ix == nil {
				continue
			}
			if first == nil {
				first = ix
				firstCorner = cornerFromOffset(dx, dy)
			}
			contacts++
		}
	}

	if contacts < 2 {
		return nil, TopLeft, false
	}
	return first, firstCorner, true
}

// IntersectionAt returns the intersection at lattice point (x, y), if created
func (b *Board) IntersectionAt(x, y int) (*Intersection, bool) {
	if x < 0 || x > b.rows || y < 0 || y > b.cols {
		return nil, false
	}
	ix := b.intersections[x][y]
	return ix, ix != nil
}

// SurroundingIntersections returns the existing intersections at the four
// corners of a cell, in corner order
func (b *Board) SurroundingIntersections(pos Position) []*Intersection {
	if !b.IsValidPosition(pos) {
		return nil
	}
	result := make([]*Intersection, 0, 4)
	for _, corner := range Corners {
		if ix, ok := b.cornerIntersection(pos, corner); ok {
			result = append(result, ix)
		}
	}
	return result
}

// OppositeIntersection returns the intersection diagonally across the tile
// at pos from the given corner
func (b *Board) OppositeIntersection(pos Position, corner Corner) (*Intersection, bool) {
	return b.cornerIntersection(pos, corner.Opposite())
}

func (b *Board) cornerIntersection(pos Position, corner Corner) (*Intersection, bool) {
	dx, dy := cornerOffset(corner)
	return b.IntersectionAt(pos.Row+dx, pos.Col+dy)
}

// TilesAround returns each placed tile touching the intersection together
// with the tile's corner at that point
func (b *Board) TilesAround(ix *Intersection) []CornerTile {
	result := make([]CornerTile, 0, 4)
	for _, corner := range Corners {
		dx, dy := cornerOffset(corner)
		pos := Position{Row: ix.X - dx, Col: ix.Y - dy}
		if t, ok := b.TileAt(pos); ok {
			result = append(result, CornerTile{Tile: t, Corner: corner})
		}
	}
	return result
}

// EdgeOf returns the board edge an intersection lies on. A board corner
// reports a single edge, checked in the order top, bottom, left, right.
func (b *Board) EdgeOf(ix *Intersection) (Edge, bool) {
	switch {
	case ix.X == 0:
		return EdgeTop, true
	case ix.X == b.MaxX():
		return EdgeBottom, true
	case ix.Y == 0:
		return EdgeLeft, true
	case ix.Y == b.MaxY():
		return EdgeRight, true
	default:
		return "", false
	}
}

// Intersections returns every created intersection in row-major order
func (b *Board) Intersections() []*Intersection {
	var result []*Intersection
	for x := range b.intersections {
		for _, ix := range b.intersections[x] {
			if ix != nil {
				result = append(result, ix)
			}
		}
	}
	return result
}

// ResetTraversal clears the visited and completed flags of every intersection
func (b *Board) ResetTraversal() {
	for _, ix := range b.Intersections() {
		ix.Visited = false
		ix.Completed = false
	}
}

// boardJSON is the serialized form of a Board
type boardJSON struct {
	Rows          int               `json:"rows"`
	Cols          int               `json:"cols"`
	Cells         [][]*Tile         `json:"cells"`
	Intersections [][]*Intersection `json:"intersections"`
	TilesPlaced   int               `json:"tiles_placed"`
}

// MarshalJSON encodes the board including its intersection grid
func (b *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(boardJSON{
		Rows:          b.rows,
		Cols:          b.cols,
		Cells:         b.cells,
		Intersections: b.intersections,
		TilesPlaced:   b.tilesPlaced,
	})
}

// UnmarshalJSON decodes a board produced by MarshalJSON
func (b *Board) UnmarshalJSON(data []byte) error {
	var raw boardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Cells) != raw.Rows || len(raw.Intersections) != raw.Rows+1 {
		return fmt.Errorf("board dimensions do not match %dx%d", raw.Rows, raw.Cols)
	}
	for _, row := range raw.Cells {
		if len(row) != raw.Cols {
			return fmt.Errorf("board row width does not match %d", raw.Cols)
		}
	}
	for _, row := range raw.Intersections {
		if len(row) != raw.Cols+1 {
			return fmt.Errorf("intersection row width does not match %d", raw.Cols+1)
		}
	}

	b.rows = raw.Rows
	b.cols = raw.Cols
	b.cells = raw.Cells
	b.intersections = raw.Intersections
	b.tilesPlaced = raw.TilesPlaced
	return nil
}
