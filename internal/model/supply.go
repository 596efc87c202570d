package model

// Supply is the ordered stack of tiles still to be played
type Supply struct {
	Tiles []Tile `json:"tiles"`
}

// NewSupply wraps an already ordered tile sequence
func NewSupply(tiles []Tile) *Supply {
	return &Supply{Tiles: tiles}
}

// DrawFromFront removes and returns the first tile
func (s *Supply) DrawFromFront() (Tile, error) {
	if len(s.Tiles) == 0 {
		return Tile{}, ErrEmptySupply
	}
	t := s.Tiles[0]
	s.Tiles = s.Tiles[1:]
	return t, nil
}

// Peek returns the first tile without removing it
func (s *Supply) Peek() (Tile, bool) {
	if len(s.Tiles) == 0 {
		return Tile{}, false
	}
	return s.Tiles[0], true
}

// Size returns the number of tiles left
func (s *Supply) Size() int {
	return len(s.Tiles)
}
