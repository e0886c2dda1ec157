package domain

import (
	"time"
)

type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    string
	LolUsername  *string
	LastSyncedAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Match is keyed by the upstream game id, not a local surrogate.
type Match struct {
	MatchID      int64
	GameCreation int64 // epoch millis
	GameDuration int64 // seconds
	GameMode     string
	CreatedAt    time.Time
}

// PlayerMatchStats holds one participant's line from a match. Every
// participant returned by the upstream is stored, not just tracked users.
type PlayerMatchStats struct {
	ID                   string // nanoid
	MatchID              int64
	SummonerName         string
	Win                  bool
	TeamID               int
	TeamPosition         string
	Role                 string
	Kills                int
	Deaths               int
	Assists              int
	GoldEarned           int
	TotalDamageDealt     int
	TotalDamageTaken     int
	VisionScore          int
	WardsPlaced          int
	WardsKilled          int
	TotalMinionsKilled   int
	TurretKills          int
	TotalTimeSpentDead   int
	Puuid                string
	ChampLevel           int
	ChampionName         string
	Lane                 string
	TotalHealsOnTeammate int
	BaitPings            int
	CreatedAt            time.Time
}

// MatchSummary is the read projection of a user's history: match header
// plus participant summoner names only.
type MatchSummary struct {
	MatchID      int64
	GameCreation int64
	GameDuration int64
	GameMode     string
	Players      []string
}
