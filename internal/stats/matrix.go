// Package stats holds the pure numeric core: the resource matrix builder,
// the windowed aggregation functions and the trend stat-group generator.
package stats

import "league-tracker/internal/domain"

// Matrix pairs the tracked player's and the role-matched enemy's series for
// one resource, one row per contributing match.
type Matrix struct {
	Ally  [][]int
	Enemy [][]int
}

// BuildMatrix extracts the ally/enemy series pairs for a resource across a
// sample of matches. A match contributes only when the tracked player played
// the requested role and both sides' series are present; anything else is
// skipped silently.
func BuildMatrix(matches []*domain.MatchRecord, playerID string, role domain.Role, resource domain.Resource) Matrix {
	var m Matrix

	for _, match := range matches {
		player, enemy, matchRole := playerAndEnemy(match, playerID)
		if player == nil || enemy == nil || matchRole != role {
			continue
		}

		m.Ally = append(m.Ally, player.Values(resource))
		m.Enemy = append(m.Enemy, enemy.Values(resource))
	}

	return m
}

// playerAndEnemy locates the tracked player's series, the series of the
// single enemy sharing the player's role, and that role. Missing pieces come
// back nil.
func playerAndEnemy(match *domain.MatchRecord, playerID string) (player, enemy *domain.ResourceSeries, role domain.Role) {
	var playerPart *domain.Participant
	for i := range match.Participants {
		p := &match.Participants[i]
		if p.ID == playerID && p.Team == domain.TeamAlly {
			playerPart = p
			break
		}
	}
	if playerPart == nil {
		return nil, nil, ""
	}
	role = playerPart.Role

	var enemyPart *domain.Participant
	for i := range match.Participants {
		p := &match.Participants[i]
		if p.Role == role && p.Team == domain.TeamEnemy {
			enemyPart = p
			break
		}
	}
	if enemyPart == nil {
		return match.SeriesByID(playerID), nil, role
	}

	return match.SeriesByID(playerID), match.SeriesByID(enemyPart.ID), role
}

// TotalMatchesInRole counts sample matches where the tracked player held the
// given role.
func TotalMatchesInRole(matches []*domain.MatchRecord, playerID string, role domain.Role) int {
	total := 0
	for _, match := range matches {
		_, _, matchRole := playerAndEnemy(match, playerID)
		if matchRole == role {
			total++
		}
	}
	return total
}
