package scoring

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/wege-go/internal/model"
)

// Point is an intersection coordinate
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Region is one maximal connected trail found by the traversal
type Region struct {
	Side     model.Side   `json:"side"`
	Points   []Point      `json:"points"`
	Edges    []model.Edge `json:"edges"`
	Enclosed bool         `json:"enclosed"`

	// Marker group sizes, one entry per point with at least one marker facing it
	MarkerGroups []int `json:"marker_groups,omitempty"`
}

// edgeOrder fixes the order edges are reported in
var edgeOrder = []model.Edge{model.EdgeTop, model.EdgeRight, model.EdgeBottom, model.EdgeLeft}

// Service runs the end-of-game traversal over a full board
type Service struct {
	logger *slog.Logger
}

// New creates a new scoring Service
func New(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// Traverse partitions the full board into regions and accumulates each
// player's counters. Traversal flags and player counters are reset first so
// repeated passes over the same board give the same result.
func (s *Service) Traverse(board *model.Board, players map[model.Side]*model.Player) ([]Region, error) {
	if !board.IsFull() {
		return nil, model.ErrGameNotFinished
	}
	for _, side := range model.Sides {
		if _, ok := players[side]; !ok {
			return nil, fmt.Errorf("missing %s player", side)
		}
	}

	board.ResetTraversal()
	for _, p := range players {
		p.Reset()
	}

	var regions []Region
	for _, start := range board.Intersections() {
		if start.Completed {
			continue
		}

		region := s.walk(board, start, players)
		regions = append(regions, region)
	}

	s.logger.Debug("board traversed",
		slog.Int("regions", len(regions)),
		slog.Int("intersections", len(board.Intersections())),
	)

	return regions, nil
}

// walk flood-fills one region from start with an explicit stack
func (s *Service) walk(board *model.Board, start *model.Intersection, players map[model.Side]*model.Player) Region {
	side := start.Side()
	owner := players[side]
	region := Region{Side: side}

	var members []*model.Intersection
	start.Visited = true
	stack := []*model.Intersection{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		members = append(members, current)
		region.Points = append(region.Points, Point{X: current.X, Y: current.Y})

		facing := 0
		for _, ct := range board.TilesAround(current) {
			if ct.Tile.MarkerAt(ct.Corner) {
				facing++
			}
			if ct.Tile.SideAt(ct.Corner) != side || !ct.Tile.CarriesTrail(side) {
				continue
			}

			next, ok := board.OppositeIntersection(*ct.Tile.Position, ct.Corner)
			if !ok || next.Visited {
				continue
			}
			next.Visited = true
			stack = append(stack, next)
		}

		if facing > 0 {
			owner.MarkerGroupHistogram[facing]++
			region.MarkerGroups = append(region.MarkerGroups, facing)
		}
	}

	touched := make(map[model.Edge]bool)
	for _, ix := range members {
		if edge, ok := board.EdgeOf(ix); ok {
			touched[edge] = true
		}
		ix.Completed = true
	}
	for _, edge := range edgeOrder {
		if touched[edge] {
			region.Edges = append(region.Edges, edge)
		}
	}

	if len(region.Edges) == 0 {
		region.Enclosed = true
		players[side.Opponent()].EnclosedRegions++
	} else if len(region.Edges) > owner.MaxEdgesTouched {
		owner.MaxEdgesTouched = len(region.Edges)
	}

	return region
}

// Score runs the traversal and returns both players' statistics in turn order
func (s *Service) Score(board *model.Board, players map[model.Side]*model.Player) ([]model.PlayerStatistics, error) {
	if _, err := s.Traverse(board, players); err != nil {
		return nil, err
	}

	stats := make([]model.PlayerStatistics, 0, len(model.Sides))
	for _, side := range model.Sides {
		stats = append(stats, players[side].Statistics())
	}
	return stats, nil
}

// DetermineWinner returns the side with the higher total, or false on a tie
func DetermineWinner(stats []model.PlayerStatistics) (model.Side, bool) {
	var best model.Side
	bestScore := -1
	tie := false

	for _, st := range stats {
		total := st.Score.Total()
		switch {
		case total > bestScore:
			best = st.Side
			bestScore = total
			tie = false
		case total == bestScore:
			tie = true
		}
	}

	if tie || bestScore < 0 {
		return "", false
	}
	return best, true
}
