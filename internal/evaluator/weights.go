package evaluator

// weightSet holds the convex-combination weights for the four sub-metrics.
// A zero weight drops that sub-metric's term out of the score entirely.
type weightSet struct {
	Territory float64
	Troop     float64
	Continent float64
	Attack    float64
}

// canonicalWeights is the position-adaptive weight table used by default:
// an aggressive, attack-potential-heavy profile when significantly ahead, a
// consolidating, territory/troop-heavy profile when behind, and a blended
// profile otherwise.
var canonicalWeights = [...]weightSet{
	CategorySignificantAdvantage: {Territory: 0.05, Troop: 0.10, Continent: 0.05, Attack: 0.80},
	CategoryBehindInTroops:       {Territory: 0.30, Troop: 0.40, Continent: 0.20, Attack: 0.10},
	CategoryBalanced:             {Territory: 0.20, Troop: 0.30, Continent: 0.10, Attack: 0.40},
}

// WeightsPreset names an alternate, non-default weighting scheme an
// Evaluator can be configured to use instead of canonicalWeights.
type WeightsPreset int

const (
	// WeightsCanonical is the default table above.
	WeightsCanonical WeightsPreset = iota
	// WeightsBalancedV1 is an earlier, flatter scheme kept for
	// experimentation: it weighs all four sub-metrics close to evenly
	// (0.3/0.3/0.2/0.2) regardless of position category.
	WeightsBalancedV1
	// WeightsMaterialOnly ignores continent and attack potential entirely
	// and scores purely on territory/troop share (0.4/0.6), regardless of
	// position category. Useful as a cheap baseline opponent.
	WeightsMaterialOnly
)

var presetTables = map[WeightsPreset][3]weightSet{
	WeightsBalancedV1: {
		{Territory: 0.3, Troop: 0.3, Continent: 0.2, Attack: 0.2},
		{Territory: 0.3, Troop: 0.3, Continent: 0.2, Attack: 0.2},
		{Territory: 0.3, Troop: 0.3, Continent: 0.2, Attack: 0.2},
	},
	WeightsMaterialOnly: {
		{Territory: 0.4, Troop: 0.6},
		{Territory: 0.4, Troop: 0.6},
		{Territory: 0.4, Troop: 0.6},
	},
}

// weightsFor returns the weightSet for cat under preset.
func weightsFor(preset WeightsPreset, cat PositionCategory) weightSet {
	if preset == WeightsCanonical {
		return canonicalWeights[cat]
	}
	return presetTables[preset][cat]
}
