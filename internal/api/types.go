package api

// Riot match-v5 and account-v1 documents, trimmed to the fields the
// pipeline reads.

type Account struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

type Match struct {
	Info MatchInfo `json:"info"`
}

type MatchInfo struct {
	GameMode     string             `json:"gameMode"`
	Participants []MatchParticipant `json:"participants"`
	Teams        []TeamInfo         `json:"teams"`
}

type MatchParticipant struct {
	PUUID        string `json:"puuid"`
	ChampionName string `json:"championName"`
	TeamPosition string `json:"teamPosition"`
	TeamID       int    `json:"teamId"`
	Win          bool   `json:"win"`
}

type TeamInfo struct {
	TeamID int  `json:"teamId"`
	Win    bool `json:"win"`
}

type Timeline struct {
	Info TimelineInfo `json:"info"`
}

type TimelineInfo struct {
	FrameInterval int64           `json:"frameInterval"`
	Frames        []TimelineFrame `json:"frames"`
}

// TimelineFrame is one fixed-interval snapshot: the cumulative stats of all
// ten participants keyed "1".."10", plus every event that occurred since the
// previous frame.
type TimelineFrame struct {
	Events            []TimelineEvent             `json:"events"`
	ParticipantFrames map[string]ParticipantFrame `json:"participantFrames"`
	Timestamp         int64                       `json:"timestamp"`
}

type TimelineEvent struct {
	Type                    string `json:"type"`
	Timestamp               int64  `json:"timestamp"`
	KillerID                int    `json:"killerId"`
	VictimID                int    `json:"victimId"`
	AssistingParticipantIDs []int  `json:"assistingParticipantIds"`
	TowerType               string `json:"towerType"`
	MonsterType             string `json:"monsterType"`
}

type ParticipantFrame struct {
	ParticipantID       int         `json:"participantId"`
	TotalGold           int         `json:"totalGold"`
	XP                  int         `json:"xp"`
	Level               int         `json:"level"`
	MinionsKilled       int         `json:"minionsKilled"`
	JungleMinionsKilled int         `json:"jungleMinionsKilled"`
	DamageStats         DamageStats `json:"damageStats"`
}

type DamageStats struct {
	TotalDamageDoneToChampions int `json:"totalDamageDoneToChampions"`
}
