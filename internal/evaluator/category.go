package evaluator

//go:generate go tool enumer -type=PositionCategory -trimprefix=Category -text -json category.go

// PositionCategory classifies a state from one player's point of view, and
// selects which weightSet Score uses.
type PositionCategory uint8

const (
	// CategorySignificantAdvantage: ahead on both territory and troops by
	// more than 1.5x. Weights lean almost entirely on attackPotential: the
	// position calls for pressing the advantage, not consolidating.
	CategorySignificantAdvantage PositionCategory = iota
	// CategoryBehindInTroops: troop ratio under 0.8. Weights lean on
	// territory/troop/continent scores: the position calls for
	// consolidating rather than picking new fights.
	CategoryBehindInTroops
	// CategoryBalanced is neither of the above.
	CategoryBalanced
)

// classify implements the position-detection rule from the evaluator: given
// territory and troop ratios (me / max(other, epsilon)), returns the
// mutually-exclusive category they fall into.
func classify(territoryRatio, troopRatio float64) PositionCategory {
	significantAdvantage := territoryRatio > 1.5 && troopRatio > 1.5
	behindInTroops := troopRatio < 0.8
	switch {
	case significantAdvantage:
		return CategorySignificantAdvantage
	case behindInTroops:
		return CategoryBehindInTroops
	default:
		return CategoryBalanced
	}
}
