package stats

import (
	"strings"

	"league-tracker/internal/domain"
)

// namedWindow pairs a report window with its id token. The overall window
// contributes no token.
type namedWindow struct {
	token  string
	window Window
}

var reportWindows = []namedWindow{
	{"", WindowAll},
	{"EARLY", WindowEarly},
	{"MID", WindowMid},
	{"LATE", WindowLate},
}

// BuildStatGroups generates the full trend report for one role: for each of
// gold/xp/cs, a TOTAL, GROWTH_RATE, PER_MINUTE and SHARE group. Windowed
// groups carry twelve stats (player, enemy and advantage across the four
// windows); SHARE groups carry three.
func BuildStatGroups(matches []*domain.MatchRecord, playerID string, role domain.Role) []domain.StatGroup {
	var groups []domain.StatGroup

	for _, resource := range domain.TrendResources {
		title := strings.ToUpper(string(resource))
		matrix := BuildMatrix(matches, playerID, role, resource)

		groups = append(groups,
			windowedGroup(title+"_TOTAL", matrix, AverageTotal, AverageTotalAdvantage),
			windowedGroup(title+"_GROWTH_RATE", matrix, AverageGrowthRate, AverageGrowthRateAdvantage),
			windowedGroup(title+"_PER_MINUTE", matrix, AveragePerMinute, AveragePerMinuteAdvantage),
			shareGroup(title+"_SHARE", matches, playerID, role, resource),
		)
	}

	return groups
}

func windowedGroup(id string, m Matrix, side func([][]int, Window) float64, adv func(Matrix, Window) float64) domain.StatGroup {
	group := domain.StatGroup{ID: id, Stats: make([]domain.Stat, 0, 12)}

	for _, nw := range reportWindows {
		group.Stats = append(group.Stats, domain.Stat{
			ID:    statID(id, nw.token, "PLAYER"),
			Value: side(m.Ally, nw.window),
		})
	}
	for _, nw := range reportWindows {
		group.Stats = append(group.Stats, domain.Stat{
			ID:    statID(id, nw.token, "ENEMY"),
			Value: side(m.Enemy, nw.window),
		})
	}
	for _, nw := range reportWindows {
		group.Stats = append(group.Stats, domain.Stat{
			ID:    statID(id, nw.token, "ADV"),
			Value: adv(m, nw.window),
		})
	}

	return group
}

func shareGroup(id string, matches []*domain.MatchRecord, playerID string, role domain.Role, resource domain.Resource) domain.StatGroup {
	return domain.StatGroup{
		ID: id,
		Stats: []domain.Stat{
			{ID: id + "_PLAYER", Value: AverageShare(matches, playerID, role, resource, domain.TeamAlly)},
			{ID: id + "_ENEMY", Value: AverageShare(matches, playerID, role, resource, domain.TeamEnemy)},
			{ID: id + "_ADV", Value: AverageShareAdvantage(matches, playerID, role, resource)},
		},
	}
}

func statID(group, window, side string) string {
	if window == "" {
		return group + "_" + side
	}
	return group + "_" + window + "_" + side
}
