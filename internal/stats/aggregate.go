package stats

import (
	"math"

	"league-tracker/internal/domain"
)

// Window is a half-open frame-index range restricting an aggregation to a
// game phase. The zero value covers the whole series; End == 0 means
// open-ended.
type Window struct {
	Start int
	End   int
}

var (
	WindowAll   = Window{}
	WindowEarly = Window{Start: 0, End: 14}
	WindowMid   = Window{Start: 14, End: 28}
	WindowLate  = Window{Start: 28}
)

// AverageTotal computes, per match, the resource gained between the window
// start and the window end (clamped to the last frame), then the mean across
// matches. A match whose series ends before the window starts is skipped
// entirely; the mean of an empty set is 0.
func AverageTotal(matrix [][]int, w Window) float64 {
	var totals []float64

	for _, series := range matrix {
		last := len(series) - 1
		if last < 0 || w.Start > last {
			continue
		}
		end := last
		if w.End > 0 && w.End < last {
			end = w.End
		}
		totals = append(totals, float64(series[end]-series[w.Start]))
	}

	return round2(mean(totals))
}

// AverageGrowthRate averages per-step percentage growth. Steps whose
// preceding value is zero are skipped rather than treated as infinite. The
// window indexes the growth-rate list, which is one entry shorter than the
// source series.
func AverageGrowthRate(matrix [][]int, w Window) float64 {
	return averageDerived(matrix, w, growthRates)
}

// AveragePerMinute averages per-step raw deltas, under the convention of one
// frame per minute. Windowing matches AverageGrowthRate.
func AveragePerMinute(matrix [][]int, w Window) float64 {
	return averageDerived(matrix, w, stepDeltas)
}

func averageDerived(matrix [][]int, w Window, derive func([]int) []float64) float64 {
	var perMatch []float64

	for _, series := range matrix {
		derived := derive(series)
		last := len(derived) - 1
		if last < 0 || w.Start > last {
			continue
		}
		end := len(derived)
		if w.End > 0 && w.End < end {
			end = w.End
		}
		perMatch = append(perMatch, mean(derived[w.Start:end]))
	}

	return round2(mean(perMatch))
}

func growthRates(series []int) []float64 {
	var rates []float64
	for i := 1; i < len(series); i++ {
		if series[i-1] != 0 {
			rates = append(rates, float64(series[i]-series[i-1])/float64(series[i-1])*100)
		}
	}
	return rates
}

func stepDeltas(series []int) []float64 {
	var deltas []float64
	for i := 1; i < len(series); i++ {
		if series[i-1] != 0 {
			deltas = append(deltas, float64(series[i]-series[i-1]))
		}
	}
	return deltas
}

// AverageShare computes, per matching match, the final-frame share of the
// given side's pooled resource held by the tracked player (or by the
// role-matched enemy when side is enemy), then the mean across matches.
// Unwindowed. Matches with a zero side total are skipped.
func AverageShare(matches []*domain.MatchRecord, playerID string, role domain.Role, resource domain.Resource, side domain.Team) float64 {
	var shares []float64

	for _, match := range matches {
		player, enemy, matchRole := playerAndEnemy(match, playerID)
		if player == nil || matchRole != role {
			continue
		}

		activeID := playerID
		if side == domain.TeamEnemy {
			if enemy == nil {
				continue
			}
			activeID = enemy.ID
		}

		total := 0
		active := 0
		for i := range match.Data {
			part := match.ParticipantByID(match.Data[i].ID)
			if part == nil || part.Team != side {
				continue
			}
			values := match.Data[i].Values(resource)
			if len(values) == 0 {
				continue
			}
			final := values[len(values)-1]
			if match.Data[i].ID == activeID {
				active = final
			}
			total += final
		}

		if total == 0 {
			continue
		}
		shares = append(shares, float64(active)/float64(total)*100)
	}

	return round2(mean(shares))
}

// AverageTotalAdvantage is the ally average minus the enemy average, rounded
// after subtraction. The same holds for the other advantage variants.
func AverageTotalAdvantage(m Matrix, w Window) float64 {
	return round2(AverageTotal(m.Ally, w) - AverageTotal(m.Enemy, w))
}

func AverageGrowthRateAdvantage(m Matrix, w Window) float64 {
	return round2(AverageGrowthRate(m.Ally, w) - AverageGrowthRate(m.Enemy, w))
}

func AveragePerMinuteAdvantage(m Matrix, w Window) float64 {
	return round2(AveragePerMinute(m.Ally, w) - AveragePerMinute(m.Enemy, w))
}

func AverageShareAdvantage(matches []*domain.MatchRecord, playerID string, role domain.Role, resource domain.Resource) float64 {
	ally := AverageShare(matches, playerID, role, resource, domain.TeamAlly)
	enemy := AverageShare(matches, playerID, role, resource, domain.TeamEnemy)
	return round2(ally - enemy)
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// round2 rounds half away from zero to two decimal places. Applied once per
// public aggregation result.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
