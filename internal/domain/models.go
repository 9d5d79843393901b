package domain

// Team is a side designation relative to the tracked player for one match.
type Team string

const (
	TeamAlly  Team = "ally"
	TeamEnemy Team = "enemy"
)

// Role is one of the five lane assignments. Exactly one participant per team
// holds each role in a standard match.
type Role string

const (
	RoleTop     Role = "Top"
	RoleJungle  Role = "Jungle"
	RoleMid     Role = "Mid"
	RoleADC     Role = "ADC"
	RoleSupport Role = "Support"
)

// RoleByPosition maps the raw teamPosition codes from the upstream match
// document onto roles.
var RoleByPosition = map[string]Role{
	"TOP":     RoleTop,
	"JUNGLE":  RoleJungle,
	"MIDDLE":  RoleMid,
	"BOTTOM":  RoleADC,
	"UTILITY": RoleSupport,
}

// Roles lists every role in report order.
var Roles = []Role{RoleTop, RoleJungle, RoleMid, RoleADC, RoleSupport}

type EventType string

const (
	EventKill      EventType = "kill"
	EventTurret    EventType = "turret"
	EventObjective EventType = "objective"
)

// Resource names one of the tracked cumulative telemetry series.
type Resource string

const (
	ResourceGold   Resource = "gold"
	ResourceXP     Resource = "xp"
	ResourceCS     Resource = "cs"
	ResourceDamage Resource = "damage"
)

// TrendResources are the resources the trend report covers.
var TrendResources = []Resource{ResourceGold, ResourceXP, ResourceCS}

type Participant struct {
	ID       string `json:"id"`
	Champion string `json:"champion"`
	Role     Role   `json:"role"`
	Team     Team   `json:"team"`
}

// Event is a discrete game event attributed to a killer. Events with no
// resolvable killer are dropped during normalization.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Subtype   string    `json:"subtype,omitempty"`
	Timestamp int64     `json:"timestamp"`
	Frame     int       `json:"frame"`
	Team      Team      `json:"team"`
	Killer    string    `json:"killer"`
}

// ResourceSeries holds one participant's cumulative per-frame telemetry.
// All slices share the same length, one entry per timeline frame.
type ResourceSeries struct {
	ID     string `json:"id"`
	Gold   []int  `json:"gold"`
	XP     []int  `json:"xp"`
	Level  []int  `json:"level"`
	CS     []int  `json:"cs"`
	Damage []int  `json:"damage"`
}

// Values returns the series for the named resource.
func (s *ResourceSeries) Values(r Resource) []int {
	switch r {
	case ResourceGold:
		return s.Gold
	case ResourceXP:
		return s.XP
	case ResourceCS:
		return s.CS
	case ResourceDamage:
		return s.Damage
	}
	return nil
}

// MatchRecord is the canonical normalized match: a 10-participant roster,
// the typed event list and one cumulative series per participant. Built once
// per raw match fetch and never mutated afterwards.
type MatchRecord struct {
	Participants []Participant    `json:"participants"`
	Events       []Event          `json:"events"`
	Data         []ResourceSeries `json:"data"`
}

// ParticipantByID returns the roster entry for id, or nil.
func (m *MatchRecord) ParticipantByID(id string) *Participant {
	for i := range m.Participants {
		if m.Participants[i].ID == id {
			return &m.Participants[i]
		}
	}
	return nil
}

// SeriesByID returns the resource series for id, or nil.
func (m *MatchRecord) SeriesByID(id string) *ResourceSeries {
	for i := range m.Data {
		if m.Data[i].ID == id {
			return &m.Data[i]
		}
	}
	return nil
}

// FrameCount is the number of timeline frames backing the record.
func (m *MatchRecord) FrameCount() int {
	if len(m.Data) == 0 {
		return 0
	}
	return len(m.Data[0].Gold)
}

// MatchPreview summarizes one match from the tracked player's point of view.
type MatchPreview struct {
	AccountID         string `json:"accountId"`
	MatchID           string `json:"matchId"`
	PlayerChampion    string `json:"playerChampion"`
	EnemyChampion     string `json:"enemyChampion"`
	Role              Role   `json:"role"`
	Win               bool   `json:"win"`
	PlayerParticipant string `json:"playerParticipantId"`
	EnemyParticipant  string `json:"enemyParticipantId"`
}

// Stat is one leaf statistic of a trend report. The id encodes
// resource+metric+window+side and is stable across requests.
type Stat struct {
	ID    string  `json:"id"`
	Value float64 `json:"value"`
}

type StatGroup struct {
	ID    string `json:"id"`
	Stats []Stat `json:"stats"`
}

// RoleTrend is the per-role slice of a trend report.
type RoleTrend struct {
	TotalMatches int         `json:"totalMatches"`
	Stats        []StatGroup `json:"stats"`
}

type TrendReport struct {
	Top     RoleTrend `json:"top"`
	Jungle  RoleTrend `json:"jungle"`
	Mid     RoleTrend `json:"mid"`
	ADC     RoleTrend `json:"adc"`
	Support RoleTrend `json:"support"`
}

// SnapshotMetadata carries the static roster attributes alongside a
// participant's per-interval numbers.
type SnapshotMetadata struct {
	Role     Role   `json:"role"`
	Champion string `json:"champion"`
	Team     Team   `json:"team"`
}

// ParticipantSnapshot is one participant's derived record for a single frame
// interval: resources gained since the previous frame plus event tallies
// attributable to the participant within the interval.
type ParticipantSnapshot struct {
	ID       string           `json:"id"`
	Rank     int              `json:"rank"`
	Metadata SnapshotMetadata `json:"metadata"`

	Gold   int `json:"gold"`
	XP     int `json:"xp"`
	CS     int `json:"cs"`
	Damage int `json:"damage"`

	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`

	OuterTurrets int `json:"outerTurrets"`
	InnerTurrets int `json:"innerTurrets"`
	InhibTurrets int `json:"inhibTurrets"`
	NexusTurrets int `json:"nexusTurrets"`

	Dragons int `json:"dragons"`
	Barons  int `json:"barons"`
}

// Snapshot covers the interval between frame Frame and Frame+1. Participants
// are sorted descending by gold+xp gained, rank assigned after the sort.
type Snapshot struct {
	Frame        int                   `json:"frame"`
	Participants []ParticipantSnapshot `json:"participants"`
}

// BonusStars lists champion names ordered by cumulative rank-sum (best first)
// for each game window. A window that starts beyond the available snapshots
// has a nil list.
type BonusStars struct {
	OverallLeader []string `json:"overallLeader"`
	EarlyLeader   []string `json:"earlyLeader"`
	MidLeader     []string `json:"midLeader"`
	LateLeader    []string `json:"lateLeader"`
}

type Breakdown struct {
	Snapshots  []Snapshot `json:"snapshots"`
	BonusStars BonusStars `json:"bonusStars"`
}
