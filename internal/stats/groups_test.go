package stats

import (
	"testing"

	"league-tracker/internal/domain"
)

func TestBuildStatGroupsShape(t *testing.T) {
	match := testMatch(t, uniformSeries([]int{0, 100, 200}))
	groups := BuildStatGroups([]*domain.MatchRecord{match}, "p3", domain.RoleMid)

	wantGroups := []struct {
		id    string
		stats int
	}{
		{"GOLD_TOTAL", 12},
		{"GOLD_GROWTH_RATE", 12},
		{"GOLD_PER_MINUTE", 12},
		{"GOLD_SHARE", 3},
		{"XP_TOTAL", 12},
		{"XP_GROWTH_RATE", 12},
		{"XP_PER_MINUTE", 12},
		{"XP_SHARE", 3},
		{"CS_TOTAL", 12},
		{"CS_GROWTH_RATE", 12},
		{"CS_PER_MINUTE", 12},
		{"CS_SHARE", 3},
	}

	if len(groups) != len(wantGroups) {
		t.Fatalf("got %d stat groups, want %d", len(groups), len(wantGroups))
	}

	leafCount := 0
	seen := make(map[string]bool)
	for i, group := range groups {
		if group.ID != wantGroups[i].id {
			t.Errorf("group %d id = %s, want %s", i, group.ID, wantGroups[i].id)
		}
		if len(group.Stats) != wantGroups[i].stats {
			t.Errorf("group %s has %d stats, want %d", group.ID, len(group.Stats), wantGroups[i].stats)
		}
		for _, stat := range group.Stats {
			if seen[stat.ID] {
				t.Errorf("duplicate stat id %s", stat.ID)
			}
			seen[stat.ID] = true
			leafCount++
		}
	}

	if leafCount != 117 {
		t.Errorf("got %d leaf stats, want 117", leafCount)
	}
}

func TestBuildStatGroupsStatIDs(t *testing.T) {
	match := testMatch(t, uniformSeries([]int{0, 100, 200}))
	groups := BuildStatGroups([]*domain.MatchRecord{match}, "p3", domain.RoleMid)

	total := groups[0]
	wantIDs := []string{
		"GOLD_TOTAL_PLAYER", "GOLD_TOTAL_EARLY_PLAYER", "GOLD_TOTAL_MID_PLAYER", "GOLD_TOTAL_LATE_PLAYER",
		"GOLD_TOTAL_ENEMY", "GOLD_TOTAL_EARLY_ENEMY", "GOLD_TOTAL_MID_ENEMY", "GOLD_TOTAL_LATE_ENEMY",
		"GOLD_TOTAL_ADV", "GOLD_TOTAL_EARLY_ADV", "GOLD_TOTAL_MID_ADV", "GOLD_TOTAL_LATE_ADV",
	}
	for i, want := range wantIDs {
		if total.Stats[i].ID != want {
			t.Errorf("stat %d id = %s, want %s", i, total.Stats[i].ID, want)
		}
	}
}

func TestBuildStatGroupsValues(t *testing.T) {
	// Ally and enemy series are identical, so every advantage is zero and
	// every total is the full series delta.
	match := testMatch(t, uniformSeries([]int{0, 100, 200}))
	groups := BuildStatGroups([]*domain.MatchRecord{match}, "p3", domain.RoleMid)

	byID := make(map[string]float64)
	for _, group := range groups {
		for _, stat := range group.Stats {
			byID[stat.ID] = stat.Value
		}
	}

	if got := byID["GOLD_TOTAL_PLAYER"]; got != 200 {
		t.Errorf("GOLD_TOTAL_PLAYER = %v, want 200", got)
	}
	if got := byID["GOLD_TOTAL_ADV"]; got != 0 {
		t.Errorf("GOLD_TOTAL_ADV = %v, want 0", got)
	}
	// Start frame 28 is beyond the 3-frame series, so late-window stats
	// fall back to the empty-set average.
	if got := byID["GOLD_TOTAL_LATE_PLAYER"]; got != 0 {
		t.Errorf("GOLD_TOTAL_LATE_PLAYER = %v, want 0", got)
	}
	// Equal final-frame resources: every participant holds 20% of its side.
	if got := byID["GOLD_SHARE_PLAYER"]; got != 20 {
		t.Errorf("GOLD_SHARE_PLAYER = %v, want 20", got)
	}
	if got := byID["GOLD_SHARE_ADV"]; got != 0 {
		t.Errorf("GOLD_SHARE_ADV = %v, want 0", got)
	}
}
