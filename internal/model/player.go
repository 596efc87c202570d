package model

// Player holds the per-side counters accumulated during a game
type Player struct {
	Side          Side `json:"side"`
	CossackPlayed int  `json:"cossack_played"`

	// Filled in by the scoring traversal
	EnclosedRegions      int         `json:"enclosed_regions"`
	MaxEdgesTouched      int         `json:"max_edges_touched"`
	MarkerGroupHistogram map[int]int `json:"marker_group_histogram"`
}

// NewPlayer creates a player for the given side
func NewPlayer(side Side) *Player {
	return &Player{
		Side:                 side,
		MarkerGroupHistogram: make(map[int]int),
	}
}

// Reset clears the counters derived from scoring so a traversal can be rerun.
// CossackPlayed is kept because it is counted during play.
func (p *Player) Reset() {
	p.EnclosedRegions = 0
	p.MaxEdgesTouched = 0
	p.MarkerGroupHistogram = make(map[int]int)
}

// Clone returns a deep copy of the player
func (p *Player) Clone() *Player {
	c := *p
	c.MarkerGroupHistogram = make(map[int]int, len(p.MarkerGroupHistogram))
	for size, count := range p.MarkerGroupHistogram {
		c.MarkerGroupHistogram[size] = count
	}
	return &c
}

// Score computes the player's points from its counters
func (p *Player) Score() ScoreBreakdown {
	return ScoreBreakdown{
		SideConnected: SideConnectedScore(p.MaxEdgesTouched),
		Enclosed:      EnclosedScore(p.EnclosedRegions),
		MarkerGroups:  MarkerGroupsScore(p.MarkerGroupHistogram),
		Cossacks:      CossackScore(p.CossackPlayed),
	}
}

// PlayerStatistics is the end-of-game report for one side
type PlayerStatistics struct {
	Side                 Side           `json:"side"`
	CossackPlayed        int            `json:"cossack_played"`
	EnclosedRegions      int            `json:"enclosed_regions"`
	MaxEdgesTouched      int            `json:"max_edges_touched"`
	MarkerGroupHistogram map[int]int    `json:"marker_group_histogram"`
	Score                ScoreBreakdown `json:"score"`
}

// Statistics snapshots the player's counters together with its score
func (p *Player) Statistics() PlayerStatistics {
	c := p.Clone()
	return PlayerStatistics{
		Side:                 c.Side,
		CossackPlayed:        c.CossackPlayed,
		EnclosedRegions:      c.EnclosedRegions,
		MaxEdgesTouched:      c.MaxEdgesTouched,
		MarkerGroupHistogram: c.MarkerGroupHistogram,
		Score:                c.Score(),
	}
}
