package model

import "fmt"

// Corner identifies one of the four corners of a tile
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
)

// Corners lists every corner in clockwise order starting at TopLeft
var Corners = [4]Corner{TopLeft, TopRight, BottomRight, BottomLeft}

var cornerNames = map[Corner]string{
	TopLeft:     "top_left",
	TopRight:    "top_right",
	BottomRight: "bottom_right",
	BottomLeft:  "bottom_left",
}

// Rotate returns the corner 90 degrees clockwise
func (c Corner) Rotate() Corner {
	return (c + 1) % 4
}

// Opposite returns the diagonally opposite corner
func (c Corner) Opposite() Corner {
	return (c + 2) % 4
}

// String returns the wire name of the corner
func (c Corner) String() string {
	if name, ok := cornerNames[c]; ok {
		return name
	}
	return fmt.Sprintf("corner(%d)", int(c))
}

// MarshalText encodes the corner by name
func (c Corner) MarshalText() ([]byte, error) {
	name, ok := cornerNames[c]
	if !ok {
		return nil, fmt.Errorf("unknown corner %d", int(c))
	}
	return []byte(name), nil
}

// UnmarshalText decodes a corner name
func (c *Corner) UnmarshalText(text []byte) error {
	for corner, name := range cornerNames {
		if name == string(text) {
			*c = corner
			return nil
		}
	}
	return fmt.Errorf("unknown corner %q", string(text))
}

// TileKind is the kind of terrain printed on a tile
type TileKind string

const (
	KindLand    TileKind = "land"
	KindWater   TileKind = "water"
	KindBridge  TileKind = "bridge"
	KindCossack TileKind = "cossack"
)

// TileID identifies a tile within its supply
type TileID int

// Position identifies a cell on the board
type Position struct {
	Row int `json:"row"` // 0-indexed from top
	Col int `json:"col"` // 0-indexed from left
}

// Tile is a single playing card. Position is nil until the board places it.
type Tile struct {
	ID           TileID    `json:"id"`
	Kind         TileKind  `json:"kind"`
	Orientation  Corner    `json:"orientation"`
	HasMarker    bool      `json:"has_marker"`
	MarkerOnPath bool      `json:"marker_on_path"`
	Position     *Position `json:"position,omitempty"`
}

// NewTile creates a detached tile oriented at the top left corner
func NewTile(id TileID, kind TileKind, hasMarker, markerOnPath bool) Tile {
	return Tile{
		ID:           id,
		Kind:         kind,
		Orientation:  TopLeft,
		HasMarker:    hasMarker,
		MarkerOnPath: hasMarker && markerOnPath,
	}
}

// IsWater reports whether the given corner of the tile shows water.
// The orientation corner and its opposite share one terrain and the other
// diagonal carries the other: water for Water tiles, land for every other kind.
func (t Tile) IsWater(c Corner) bool {
	orientedOnMain := t.Orientation == TopLeft || t.Orientation == BottomRight
	waterOnMain := orientedOnMain == (t.Kind == KindWater)

	if c == TopLeft || c == BottomRight {
		return waterOnMain
	}
	return !waterOnMain
}

// IsLand reports whether the given corner of the tile shows land
func (t Tile) IsLand(c Corner) bool {
	return !t.IsWater(c)
}

// SideAt returns the side the given corner belongs to
func (t Tile) SideAt(c Corner) Side {
	return SideOf(t.IsLand(c))
}

// MarkerPosition returns the corner the marker points at
func (t Tile) MarkerPosition() (Corner, error) {
	if !t.HasMarker {
		return 0, ErrNoMarker
	}
	if t.MarkerOnPath {
		return t.Orientation, nil
	}
	return t.Orientation.Rotate(), nil
}

// MarkerAt reports whether the tile's marker points at the given corner
func (t Tile) MarkerAt(c Corner) bool {
	pos, err := t.MarkerPosition()
	return err == nil && pos == c
}

// Rotated returns a copy of the tile turned 90 degrees clockwise
func (t Tile) Rotated() Tile {
	t.Orientation = t.Orientation.Rotate()
	return t
}

// CarriesTrail reports whether a trail of the given side crosses the tile.
// Bridges carry both trails, cossacks block both.
func (t Tile) CarriesTrail(side Side) bool {
	switch t.Kind {
	case KindBridge:
		return true
	case KindLand:
		return side == SideLand
	case KindWater:
		return side == SideWater
	default:
		return false
	}
}

// Detached returns a copy of the tile with no board position
func (t Tile) Detached() Tile {
	t.Position = nil
	return t
}

// String renders a short description such as "land@top_left*"
func (t Tile) String() string {
	s := fmt.Sprintf("%s@%s", t.Kind, t.Orientation)
	if t.HasMarker {
		if t.MarkerOnPath {
			s += "*"
		} else {
			s += "+"
		}
	}
	return s
}

// Side is one of the two players' terrains
type Side string

const (
	SideLand  Side = "land"
	SideWater Side = "water"
)

// Sides lists both sides in turn order
var Sides = [2]Side{SideLand, SideWater}

// SideOf maps a land/water flag to a side
func SideOf(isLand bool) Side {
	if isLand {
		return SideLand
	}
	return SideWater
}

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SideLand {
		return SideWater
	}
	return SideLand
}
