package evaluator

import "github.com/corvidlabs/riskmcts/internal/risk"

const epsilon = 1e-6

// territoryAndTroopRatios partitions the board into the player's
// territories/troops vs. everyone else's, returning the raw counts plus the
// two position-detection ratios (me / max(other, epsilon)).
func territoryAndTroopRatios(board risk.RiskBoard, player risk.PlayerID) (tMe, tOther, sMe, sOther, territoryRatio, troopRatio float64) {
	for _, t := range board.Territories() {
		if t.Owner == player {
			tMe++
			sMe += float64(t.Troops)
		} else {
			tOther++
			sOther += float64(t.Troops)
		}
	}
	territoryRatio = tMe / max(tOther, epsilon)
	troopRatio = sMe / max(sOther, epsilon)
	return
}

func territoryScore(board risk.RiskBoard, player risk.PlayerID) float64 {
	territories := board.Territories()
	if len(territories) == 0 {
		return 0
	}
	owned := 0
	for _, t := range territories {
		if t.Owner == player {
			owned++
		}
	}
	return float64(owned) / float64(len(territories))
}

func troopScore(board risk.RiskBoard, player risk.PlayerID) float64 {
	total := board.TotalTroops()
	if total == 0 {
		return 0
	}
	return float64(board.PlayerTroops(player)) / float64(total)
}

func continentScore(board risk.RiskBoard, player risk.PlayerID) float64 {
	continents := board.Continents()
	if len(continents) == 0 {
		return 0
	}
	var sum float64
	counted := 0
	for _, c := range continents {
		if len(c.Members) == 0 {
			continue
		}
		owned := 0
		for member := range c.Members {
			if board.Territory(member).Owner == player {
				owned++
			}
		}
		share := float64(owned) / float64(len(c.Members))
		sum += share * (float64(c.Bonus) / 10.0)
		counted++
	}
	if counted == 0 {
		return 0
	}
	score := sum / float64(counted)
	return clip01(score)
}

// rawAttack scores one attacker/defender pair under the given category.
func rawAttack(attackerTroops, defenderTroops int, cat PositionCategory) float64 {
	ratio := float64(attackerTroops) / float64(defenderTroops)
	if cat == CategorySignificantAdvantage {
		switch {
		case ratio >= 1.5:
			return 1.0
		case ratio >= 1.0:
			if attackerTroops >= 4 {
				return 0.9
			}
			return 0.5
		default:
			return 0.3
		}
	}
	switch {
	case ratio >= 2.0:
		return 1.0
	case ratio >= 1.0:
		if attackerTroops >= 5 {
			return 0.8
		}
		return 0.3
	default:
		return 0.1
	}
}

func attackPotential(board risk.RiskBoard, player risk.PlayerID, cat PositionCategory) float64 {
	var total float64
	qualifying := 0
	for _, t := range board.Territories() {
		if t.Owner != player || t.Troops <= 1 {
			continue
		}
		enemies := board.EnemyNeighbors(t.ID, player)
		if len(enemies) == 0 {
			continue
		}
		var sum float64
		for _, n := range enemies {
			sum += rawAttack(t.Troops, board.Territory(n).Troops, cat)
		}
		total += sum / float64(len(enemies))
		qualifying++
	}
	if qualifying == 0 {
		return 0
	}
	return total / float64(qualifying)
}

func clip01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
