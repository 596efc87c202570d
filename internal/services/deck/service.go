package deck

import (
	"fmt"

	"github.com/mcoot/wege-go/internal/dependencies/random"
	"github.com/mcoot/wege-go/internal/model"
)

// StandardBoardTiles is the cell count the standard supply is sized for
const StandardBoardTiles = model.StandardBoardSize * model.StandardBoardSize

// markerPlacement describes where a tile's marker sits, if it has one
type markerPlacement int

const (
	noMarker markerPlacement = iota
	markerOnPath
	markerOnCorner
)

// entry is a run of identical tiles in a composition
type entry struct {
	kind   model.TileKind
	marker markerPlacement
	count  int
}

// standardComposition lists the 40 tiles of a standard supply.
// Marker tiles come first so trimming plain tiles never touches them.
var standardComposition = []entry{
	{model.KindLand, markerOnPath, 3},
	{model.KindLand, markerOnCorner, 2},
	{model.KindWater, markerOnPath, 3},
	{model.KindWater, markerOnCorner, 2},
	{model.KindWater, noMarker, 12},
	{model.KindLand, noMarker, 12},
	{model.KindCossack, noMarker, 3},
	{model.KindBridge, noMarker, 3},
}

// specialKinds are the tiles that make up a special supply
var specialKinds = []entry{
	{model.KindLand, markerOnPath, 0},
	{model.KindLand, markerOnCorner, 0},
	{model.KindWater, markerOnPath, 0},
	{model.KindWater, markerOnCorner, 0},
	{model.KindCossack, noMarker, 0},
	{model.KindBridge, noMarker, 0},
}

// Service builds shuffled supplies
type Service struct {
	random random.Random
}

// New creates a new deck Service
func New(random random.Random) *Service {
	return &Service{random: random}
}

// Standard returns the 40 tile supply for a 6x6 board
func (s *Service) Standard() *model.Supply {
	return s.build(standardComposition)
}

// Special returns a supply with n of each marker, cossack and bridge tile
func (s *Service) Special(n int) *model.Supply {
	composition := make([]entry, len(specialKinds))
	for i, e := range specialKinds {
		e.count = n
		composition[i] = e
	}
	return s.build(composition)
}

// ForBoard returns the standard supply adjusted to the board size. Half the
// cell difference from a 6x6 board is added or removed in plain land and
// plain water tiles each.
func (s *Service) ForBoard(rows, cols int) *model.Supply {
	difference := rows*cols - StandardBoardTiles
	n := difference / 2
	if n < 0 {
		n = -n
	}

	composition := make([]entry, len(standardComposition))
	copy(composition, standardComposition)

	for i, e := range composition {
		if e.marker != noMarker || (e.kind != model.KindLand && e.kind != model.KindWater) {
			continue
		}
		switch {
		case difference < 0:
			composition[i].count = max(e.count-n, 0)
		case difference > 0:
			composition[i].count = e.count + n
		}
	}

	return s.build(composition)
}

// FromSettings validates the settings and builds the matching supply
func (s *Service) FromSettings(settings model.Settings) (*model.Supply, error) {
	if err := ValidateSettings(settings); err != nil {
		return nil, err
	}

	var supply *model.Supply
	if settings.SpecialCount > 0 {
		supply = s.Special(settings.SpecialCount)
	} else {
		supply = s.ForBoard(settings.Rows, settings.Cols)
	}

	if supply.Size() < settings.Rows*settings.Cols {
		return nil, fmt.Errorf("%w: supply of %d tiles cannot fill a %dx%d board",
			model.ErrInvalidSettings, supply.Size(), settings.Rows, settings.Cols)
	}
	return supply, nil
}

// ValidateSettings checks board dimensions and special tile count
func ValidateSettings(settings model.Settings) error {
	if settings.Rows < model.MinBoardSize || settings.Rows > model.MaxBoardSize {
		return fmt.Errorf("%w: rows must be between %d and %d",
			model.ErrInvalidSettings, model.MinBoardSize, model.MaxBoardSize)
	}
	if settings.Cols < model.MinBoardSize || settings.Cols > model.MaxBoardSize {
		return fmt.Errorf("%w: cols must be between %d and %d",
			model.ErrInvalidSettings, model.MinBoardSize, model.MaxBoardSize)
	}
	if settings.SpecialCount < 0 || settings.SpecialCount > model.MaxSpecialCount {
		return fmt.Errorf("%w: special count must be between 0 and %d",
			model.ErrInvalidSettings, model.MaxSpecialCount)
	}
	return nil
}

// build creates tiles with sequential IDs and shuffles them once
func (s *Service) build(composition []entry) *model.Supply {
	var tiles []model.Tile
	id := model.TileID(1)
	for _, e := range composition {
		for i := 0; i < e.count; i++ {
			tiles = append(tiles, model.NewTile(id, e.kind, e.marker != noMarker, e.marker == markerOnPath))
			id++
		}
	}

	s.shuffle(tiles)
	return model.NewSupply(tiles)
}

// shuffle is a Fisher-Yates shuffle driven by the injected random source
func (s *Service) shuffle(tiles []model.Tile) {
	for i := len(tiles) - 1; i > 0; i-- {
		j := s.random.Intn(i + 1)
		tiles[i], tiles[j] = tiles[j], tiles[i]
	}
}
