package model

// PointsPerEnclosedRegion is awarded for each region the opponent failed to connect to an edge
const PointsPerEnclosedRegion = 4

// PointsPerCossack is awarded for each cossack tile a player placed
const PointsPerCossack = 1

var sideConnectedPoints = map[int]int{2: 4, 3: 7, 4: 12}

var markerGroupPoints = map[int]int{2: 2, 3: 5, 4: 8}

// ScoreBreakdown itemises a player's points
type ScoreBreakdown struct {
	SideConnected int `json:"side_connected"`
	Enclosed      int `json:"enclosed"`
	MarkerGroups  int `json:"marker_groups"`
	Cossacks      int `json:"cossacks"`
}

// Total sums every component
func (s ScoreBreakdown) Total() int {
	return s.SideConnected + s.Enclosed + s.MarkerGroups + s.Cossacks
}

// SideConnectedScore scores the number of distinct board edges one region touches
func SideConnectedScore(edges int) int {
	return sideConnectedPoints[edges]
}

// EnclosedScore scores enclosed regions credited to a player
func EnclosedScore(regions int) int {
	return regions * PointsPerEnclosedRegion
}

// MarkerGroupScore scores a single group of markers facing one intersection.
// A lone marker scores nothing.
func MarkerGroupScore(size int) int {
	return markerGroupPoints[size]
}

// MarkerGroupsScore scores a histogram of group size to number of groups
func MarkerGroupsScore(histogram map[int]int) int {
	total := 0
	for size, count := range histogram {
		total += MarkerGroupScore(size) * count
	}
	return total
}

// CossackScore scores the cossack tiles a player placed
func CossackScore(played int) int {
	return played * PointsPerCossack
}
