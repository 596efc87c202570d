package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSideConnectedScore(t *testing.T) {
	expected := map[int]int{0: 0, 1: 0, 2: 4, 3: 7, 4: 12}
	for edges, points := range expected {
		assert.Equal(t, points, SideConnectedScore(edges), "edges=%d", edges)
	}
}

func TestMarkerGroupScore(t *testing.T) {
	assert.Equal(t, 0, MarkerGroupScore(1))
	assert.Equal(t, 2, MarkerGroupScore(2))
	assert.Equal(t, 5, MarkerGroupScore(3))
	assert.Equal(t, 8, MarkerGroupScore(4))

	assert.Equal(t, 2*2+5, MarkerGroupsScore(map[int]int{1: 3, 2: 2, 3: 1}))
}

func TestPlayerScoreTotal(t *testing.T) {
	p := NewPlayer(SideWater)
	p.MaxEdgesTouched = 3
	p.EnclosedRegions = 2
	p.CossackPlayed = 1
	p.MarkerGroupHistogram[4] = 1

	score := p.Score()
	assert.Equal(t, ScoreBreakdown{SideConnected: 7, Enclosed: 8, MarkerGroups: 8, Cossacks: 1}, score)
	assert.Equal(t, 24, score.Total())
}

func TestPlayerResetKeepsCossacks(t *testing.T) {
	p := NewPlayer(SideLand)
	p.CossackPlayed = 2
	p.EnclosedRegions = 1
	p.MaxEdgesTouched = 4
	p.MarkerGroupHistogram[2] = 3

	p.Reset()

	assert.Equal(t, 2, p.CossackPlayed)
	assert.Zero(t, p.EnclosedRegions)
	assert.Zero(t, p.MaxEdgesTouched)
	assert.Empty(t, p.MarkerGroupHistogram)
}

func TestStatisticsIsACopy(t *testing.T) {
	p := NewPlayer(SideLand)
	p.MarkerGroupHistogram[2] = 1

	stats := p.Statistics()
	p.MarkerGroupHistogram[2] = 5

	assert.Equal(t, 1, stats.MarkerGroupHistogram[2])
	assert.Equal(t, 2, stats.Score.MarkerGroups)
}

func TestSupplyDrawsFromFront(t *testing.T) {
	supply := NewSupply([]Tile{
		NewTile(1, KindLand, false, false),
		NewTile(2, KindWater, false, false),
	})
	require.Equal(t, 2, supply.Size())

	peeked, ok := supply.Peek()
	require.True(t, ok)
	assert.Equal(t, TileID(1), peeked.ID)

	first, err := supply.DrawFromFront()
	require.NoError(t, err)
	assert.Equal(t, TileID(1), first.ID)

	second, err := supply.DrawFromFront()
	require.NoError(t, err)
	assert.Equal(t, TileID(2), second.ID)

	_, err = supply.DrawFromFront()
	assert.ErrorIs(t, err, ErrEmptySupply)

	_, ok = supply.Peek()
	assert.False(t, ok)
}

func TestNewGameStartsWithLand(t *testing.T) {
	g := NewGame("g1", DefaultSettings(), NewSupply(nil), time.Time{})

	assert.Equal(t, GameStateNotStarted, g.State)
	assert.Equal(t, SideLand, g.Turn)
	assert.Equal(t, 36, g.Board.Capacity())
	require.Len(t, g.OrderedPlayers(), 2)
	assert.Equal(t, SideLand, g.OrderedPlayers()[0].Side)

	g.PassTurn()
	assert.Equal(t, SideWater, g.CurrentPlayer().Side)
}
