// Package breakdown derives per-frame-interval snapshots, rankings and
// bonus-star leaders for a single match. It performs no I/O.
package breakdown

import (
	"fmt"
	"sort"

	"league-tracker/internal/api"
	"league-tracker/internal/domain"
	"league-tracker/internal/stats"
)

// Tower type codes carried by BUILDING_KILL events.
const (
	towerOuter = "OUTER_TURRET"
	towerInner = "INNER_TURRET"
	towerInhib = "BASE_TURRET"
	towerNexus = "NEXUS_TURRET"
)

const (
	monsterDragon = "DRAGON"
	monsterBaron  = "BARON_NASHOR"
)

// Build produces one snapshot per frame interval plus the cross-frame
// bonus-star aggregates. The raw timeline is needed alongside the normalized
// record because interval tallies read event fields (assists, tower and
// monster types) the normalized event list does not carry.
func Build(record *domain.MatchRecord, timeline *api.Timeline) (*domain.Breakdown, error) {
	frameCount := record.FrameCount()
	if frameCount != len(timeline.Info.Frames) {
		return nil, fmt.Errorf("%w: record has %d frames, timeline has %d",
			domain.ErrMalformedUpstream, frameCount, len(timeline.Info.Frames))
	}

	snapshots := make([]domain.Snapshot, 0, max(frameCount-1, 0))

	for i := 0; i < frameCount-1; i++ {
		// Events reported in frame i+1 occurred between frames i and i+1.
		snapshot := domain.Snapshot{
			Frame:        i,
			Participants: buildInterval(record, timeline.Info.Frames[i+1].Events, i),
		}

		// Stable, so ties keep roster order.
		sort.SliceStable(snapshot.Participants, func(a, b int) bool {
			pa, pb := snapshot.Participants[a], snapshot.Participants[b]
			return pa.Gold+pa.XP > pb.Gold+pb.XP
		})
		for r := range snapshot.Participants {
			snapshot.Participants[r].Rank = r + 1
		}

		snapshots = append(snapshots, snapshot)
	}

	return &domain.Breakdown{
		Snapshots: snapshots,
		BonusStars: domain.BonusStars{
			OverallLeader: leaders(record, snapshots, stats.WindowAll),
			EarlyLeader:   leaders(record, snapshots, stats.WindowEarly),
			MidLeader:     leaders(record, snapshots, stats.WindowMid),
			LateLeader:    leaders(record, snapshots, stats.WindowLate),
		},
	}, nil
}

func buildInterval(record *domain.MatchRecord, events []api.TimelineEvent, frame int) []domain.ParticipantSnapshot {
	participants := make([]domain.ParticipantSnapshot, 0, len(record.Participants))

	for idx := range record.Participants {
		part := &record.Participants[idx]
		series := &record.Data[idx]

		ps := domain.ParticipantSnapshot{
			ID: part.ID,
			Metadata: domain.SnapshotMetadata{
				Role:     part.Role,
				Champion: part.Champion,
				Team:     part.Team,
			},
			Gold:   series.Gold[frame+1] - series.Gold[frame],
			XP:     series.XP[frame+1] - series.XP[frame],
			CS:     series.CS[frame+1] - series.CS[frame],
			Damage: series.Damage[frame+1] - series.Damage[frame],
		}

		tallyEvents(&ps, record.Participants, idx, events)
		participants = append(participants, ps)
	}

	return participants
}

// tallyEvents counts the interval's events attributable to participant idx.
// Champion kills resolve ids by index minus one; building and monster kills
// use the raw killer id as the index. Neutral objectives credit every member
// of the killer's team, not just the killer.
func tallyEvents(ps *domain.ParticipantSnapshot, roster []domain.Participant, idx int, events []api.TimelineEvent) {
	for _, ev := range events {
		switch ev.Type {
		case "CHAMPION_KILL":
			if ev.KillerID-1 == idx {
				ps.Kills++
			}
			if ev.VictimID-1 == idx {
				ps.Deaths++
			}
			for _, assist := range ev.AssistingParticipantIDs {
				if assist-1 == idx {
					ps.Assists++
				}
			}

		case "BUILDING_KILL":
			if ev.KillerID != idx {
				continue
			}
			switch ev.TowerType {
			case towerOuter:
				ps.OuterTurrets++
			case towerInner:
				ps.InnerTurrets++
			case towerInhib:
				ps.InhibTurrets++
			case towerNexus:
				ps.NexusTurrets++
			}

		case "ELITE_MONSTER_KILL":
			if ev.KillerID < 0 || ev.KillerID >= len(roster) {
				continue
			}
			if roster[ev.KillerID].Team != roster[idx].Team {
				continue
			}
			switch ev.MonsterType {
			case monsterDragon:
				ps.Dragons++
			case monsterBaron:
				ps.Barons++
			}
		}
	}
}

// leaders orders champion names by summed rank across the window's
// snapshots, best (lowest sum) first, ties keeping roster order. A window
// starting beyond the last snapshot yields nil.
func leaders(record *domain.MatchRecord, snapshots []domain.Snapshot, w stats.Window) []string {
	last := len(snapshots) - 1
	if last < 0 || w.Start > last {
		return nil
	}
	end := len(snapshots)
	if w.End > 0 && w.End < end {
		end = w.End
	}

	rankSums := make(map[string]int, len(record.Participants))
	for _, snapshot := range snapshots[w.Start:end] {
		for _, ps := range snapshot.Participants {
			rankSums[ps.ID] += ps.Rank
		}
	}

	order := make([]int, len(record.Participants))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return rankSums[record.Participants[order[a]].ID] < rankSums[record.Participants[order[b]].ID]
	})

	names := make([]string, len(order))
	for i, idx := range order {
		names[i] = record.Participants[idx].Champion
	}
	return names
}
