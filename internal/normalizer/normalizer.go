// Package normalizer converts raw upstream match and timeline documents into
// the canonical MatchRecord. It performs no I/O.
package normalizer

import (
	"fmt"
	"strconv"

	"league-tracker/internal/api"
	"league-tracker/internal/domain"
)

const rosterSize = 10

// Timeline event types the pipeline keeps.
const (
	eventChampionKill     = "CHAMPION_KILL"
	eventBuildingKill     = "BUILDING_KILL"
	eventEliteMonsterKill = "ELITE_MONSTER_KILL"
)

// Normalize builds a MatchRecord for the tracked player. Team tags are
// assigned relative to the player's team id; roles come from the fixed
// teamPosition table. Fails with ErrMalformedUpstream when the roster is
// short, the player is absent, or a frame is missing participant entries.
func Normalize(match *api.Match, timeline *api.Timeline, playerID string) (*domain.MatchRecord, error) {
	raw := match.Info.Participants
	if len(raw) < rosterSize {
		return nil, fmt.Errorf("%w: expected %d participants, got %d",
			domain.ErrMalformedUpstream, rosterSize, len(raw))
	}

	playerTeam := -1
	for _, p := range raw {
		if p.PUUID == playerID {
			playerTeam = p.TeamID
			break
		}
	}
	if playerTeam == -1 {
		return nil, fmt.Errorf("%w: player %s not in match", domain.ErrMalformedUpstream, playerID)
	}

	record := &domain.MatchRecord{
		Participants: make([]domain.Participant, 0, rosterSize),
		Data:         make([]domain.ResourceSeries, rosterSize),
	}

	for _, p := range raw {
		team := domain.TeamEnemy
		if p.TeamID == playerTeam {
			team = domain.TeamAlly
		}
		record.Participants = append(record.Participants, domain.Participant{
			ID:       p.PUUID,
			Champion: p.ChampionName,
			Role:     domain.RoleByPosition[p.TeamPosition],
			Team:     team,
		})
	}

	for i := 0; i < rosterSize; i++ {
		record.Data[i].ID = record.Participants[i].ID
	}

	// Cumulative series, one entry per frame. Participant frames are keyed
	// "1".."10" in the raw document.
	for fi, frame := range timeline.Info.Frames {
		for i := 1; i <= rosterSize; i++ {
			pf, ok := frame.ParticipantFrames[strconv.Itoa(i)]
			if !ok {
				return nil, fmt.Errorf("%w: frame %d missing participant %d",
					domain.ErrMalformedUpstream, fi, i)
			}

			series := &record.Data[i-1]
			series.Gold = append(series.Gold, pf.TotalGold)
			series.XP = append(series.XP, pf.XP)
			series.Level = append(series.Level, pf.Level)
			series.CS = append(series.CS, pf.JungleMinionsKilled+pf.MinionsKilled)
			series.Damage = append(series.Damage, pf.DamageStats.TotalDamageDoneToChampions)
		}
	}

	record.Events = collectEvents(record.Participants, timeline)

	return record, nil
}

// collectEvents flattens the per-frame event lists into typed events. Kill
// events resolve killer and victim by participant index minus one; building
// and monster kills use the raw killer id as the index, matching upstream
// observed behavior. Events whose killer cannot be resolved are dropped.
func collectEvents(participants []domain.Participant, timeline *api.Timeline) []domain.Event {
	var events []domain.Event
	numOfEvents := 0

	for frameNumber, frame := range timeline.Info.Frames {
		for _, ev := range frame.Events {
			switch ev.Type {
			case eventChampionKill:
				numOfEvents++

				killer, ok := participantAt(participants, ev.KillerID-1)
				if !ok {
					continue
				}
				victim, ok := participantAt(participants, ev.VictimID-1)
				if !ok {
					continue
				}

				events = append(events, domain.Event{
					ID:        strconv.Itoa(numOfEvents),
					Type:      domain.EventKill,
					Subtype:   victim.ID,
					Timestamp: ev.Timestamp,
					Frame:     frameNumber,
					Team:      killer.Team,
					Killer:    killer.ID,
				})

			case eventBuildingKill:
				numOfEvents++

				killer, ok := participantAt(participants, ev.KillerID)
				if !ok {
					continue
				}

				events = append(events, domain.Event{
					ID:        strconv.Itoa(numOfEvents),
					Type:      domain.EventTurret,
					Subtype:   ev.TowerType,
					Timestamp: ev.Timestamp,
					Frame:     frameNumber,
					Team:      killer.Team,
					Killer:    killer.ID,
				})

			case eventEliteMonsterKill:
				numOfEvents++

				killer, ok := participantAt(participants, ev.KillerID)
				if !ok {
					continue
				}

				events = append(events, domain.Event{
					ID:        strconv.Itoa(numOfEvents),
					Type:      domain.EventObjective,
					Subtype:   ev.MonsterType,
					Timestamp: ev.Timestamp,
					Frame:     frameNumber,
					Team:      killer.Team,
					Killer:    killer.ID,
				})
			}
		}
	}

	return events
}

func participantAt(participants []domain.Participant, idx int) (*domain.Participant, bool) {
	if idx < 0 || idx >= len(participants) {
		return nil, false
	}
	return &participants[idx], true
}
