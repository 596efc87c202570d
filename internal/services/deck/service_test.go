package deck

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wege-go/internal/dependencies/mocks"
	"github.com/mcoot/wege-go/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	random  *mocks.MockRandom
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.service = New(s.random)
}

type tileShape struct {
	kind   model.TileKind
	marker bool
	onPath bool
}

func countShapes(supply *model.Supply) map[tileShape]int {
	counts := make(map[tileShape]int)
	for _, t := range supply.Tiles {
		counts[tileShape{t.Kind, t.HasMarker, t.MarkerOnPath}]++
	}
	return counts
}

// Standard tests

func (s *ServiceSuite) TestStandardComposition() {
	supply := s.service.Standard()
	s.Equal(40, supply.Size())

	counts := countShapes(supply)
	s.Equal(3, counts[tileShape{model.KindLand, true, true}])
	s.Equal(2, counts[tileShape{model.KindLand, true, false}])
	s.Equal(3, counts[tileShape{model.KindWater, true, true}])
	s.Equal(2, counts[tileShape{model.KindWater, true, false}])
	s.Equal(12, counts[tileShape{model.KindWater, false, false}])
	s.Equal(12, counts[tileShape{model.KindLand, false, false}])
	s.Equal(3, counts[tileShape{model.KindCossack, false, false}])
	s.Equal(3, counts[tileShape{model.KindBridge, false, false}])
}

func (s *ServiceSuite) TestIDsAreUnique() {
	supply := s.service.Standard()

	seen := make(map[model.TileID]bool)
	for _, t := range supply.Tiles {
		s.False(seen[t.ID], "duplicate id %d", t.ID)
		seen[t.ID] = true
		s.Equal(model.TopLeft, t.Orientation)
		s.Nil(t.Position)
	}
}

func (s *ServiceSuite) TestShuffleUsesRandom() {
	// Intn(i+1) returning i at every step leaves the order untouched
	for i := 39; i > 0; i-- {
		s.random.QueueIntn(i)
	}
	unshuffled := s.service.Standard()
	for i, t := range unshuffled.Tiles {
		s.Equal(model.TileID(i+1), t.ID)
	}

	// Swap the last tile to the front, then keep the rest in place
	s.random.Reset()
	s.random.QueueIntn(0)
	for i := 38; i > 0; i-- {
		s.random.QueueIntn(i)
	}
	shuffled := s.service.Standard()
	s.Equal(model.TileID(40), shuffled.Tiles[0].ID)
	s.Equal(model.TileID(1), shuffled.Tiles[39].ID)
}

// Special tests

func (s *ServiceSuite) TestSpecialComposition() {
	supply := s.service.Special(3)
	s.Equal(18, supply.Size())

	counts := countShapes(supply)
	s.Equal(3, counts[tileShape{model.KindLand, true, true}])
	s.Equal(3, counts[tileShape{model.KindLand, true, false}])
	s.Equal(3, counts[tileShape{model.KindWater, true, true}])
	s.Equal(3, counts[tileShape{model.KindWater, true, false}])
	s.Equal(3, counts[tileShape{model.KindCossack, false, false}])
	s.Equal(3, counts[tileShape{model.KindBridge, false, false}])
	s.Zero(counts[tileShape{model.KindLand, false, false}])
}

// ForBoard tests

func (s *ServiceSuite) TestForBoardStandardSize() {
	s.Equal(40, s.service.ForBoard(6, 6).Size())
	s.Equal(40, s.service.ForBoard(4, 9).Size())
}

func (s *ServiceSuite) TestForBoardLargerAddsPlainTiles() {
	supply := s.service.ForBoard(8, 9)
	s.Equal(76, supply.Size())

	counts := countShapes(supply)
	s.Equal(30, counts[tileShape{model.KindLand, false, false}])
	s.Equal(30, counts[tileShape{model.KindWater, false, false}])
	s.Equal(3, counts[tileShape{model.KindLand, true, true}])
}

func (s *ServiceSuite) TestForBoardSmallDifferenceIgnored() {
	// 35 cells is one short of standard; half of one rounds to nothing
	s.Equal(40, s.service.ForBoard(7, 5).Size())
}

func (s *ServiceSuite) TestForBoardSmallerKeepsMarkerTiles() {
	supply := s.service.ForBoard(5, 5)
	s.Equal(30, supply.Size())

	counts := countShapes(supply)
	s.Equal(7, counts[tileShape{model.KindLand, false, false}])
	s.Equal(7, counts[tileShape{model.KindWater, false, false}])
	s.Equal(2, counts[tileShape{model.KindWater, true, false}])
}

func (s *ServiceSuite) TestForBoardTinyRemovesAllPlainTiles() {
	supply := s.service.ForBoard(1, 1)

	counts := countShapes(supply)
	s.Zero(counts[tileShape{model.KindLand, false, false}])
	s.Zero(counts[tileShape{model.KindWater, false, false}])
	s.Equal(16, supply.Size())
}

// FromSettings tests

func (s *ServiceSuite) TestFromSettingsUsesBoardSize() {
	supply, err := s.service.FromSettings(model.Settings{Rows: 8, Cols: 9})
	s.Require().NoError(err)
	s.Equal(76, supply.Size())
}

func (s *ServiceSuite) TestFromSettingsUsesSpecialCount() {
	supply, err := s.service.FromSettings(model.Settings{Rows: 3, Cols: 3, SpecialCount: 2})
	s.Require().NoError(err)
	s.Equal(12, supply.Size())
}

func (s *ServiceSuite) TestFromSettingsRejectsSpecialSupplyTooSmall() {
	_, err := s.service.FromSettings(model.Settings{Rows: 6, Cols: 6, SpecialCount: 1})
	s.ErrorIs(err, model.ErrInvalidSettings)
}

func (s *ServiceSuite) TestValidateSettings() {
	valid := []model.Settings{
		{Rows: 1, Cols: 1},
		{Rows: 9, Cols: 9, SpecialCount: 9},
		model.DefaultSettings(),
	}
	for _, settings := range valid {
		s.NoError(ValidateSettings(settings), "%+v", settings)
	}

	invalid := []model.Settings{
		{Rows: 0, Cols: 6},
		{Rows: 6, Cols: 10},
		{Rows: -1, Cols: 6},
		{Rows: 6, Cols: 6, SpecialCount: 10},
		{Rows: 6, Cols: 6, SpecialCount: -1},
	}
	for _, settings := range invalid {
		s.ErrorIs(ValidateSettings(settings), model.ErrInvalidSettings, "%+v", settings)
	}
}
