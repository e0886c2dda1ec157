package riot

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse marks a 2xx upstream response whose shape does not
// match the documented contract.
var ErrMalformedResponse = errors.New("malformed upstream response")

// UpstreamError is a non-2xx status from the Riot API.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("riot API request failed: status %d", e.StatusCode)
}

type Summoner struct {
	ID    string `json:"id"`
	Puuid string `json:"puuid"`
	Name  string `json:"name"`
}

type MatchDetail struct {
	Metadata *MatchMetadata `json:"metadata"`
	Info     *MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	MatchID string `json:"matchId"`
	// participant puuids only; the detailed lines live under info
	Participants []string `json:"participants"`
}

type MatchInfo struct {
	GameID       int64         `json:"gameId"`
	GameCreation int64         `json:"gameCreation"`
	GameDuration int64         `json:"gameDuration"`
	GameMode     string        `json:"gameMode"`
	Participants []Participant `json:"participants"`
}

// Participant mirrors the stat fields ingestion persists. Fields absent
// from the payload decode to zero values, never an error.
type Participant struct {
	SummonerName         string `json:"summonerName"`
	Win                  bool   `json:"win"`
	TeamID               int    `json:"teamId"`
	TeamPosition         string `json:"teamPosition"`
	Role                 string `json:"role"`
	Kills                int    `json:"kills"`
	Deaths               int    `json:"deaths"`
	Assists              int    `json:"assists"`
	GoldEarned           int    `json:"goldEarned"`
	TotalDamageDealt     int    `json:"totalDamageDealt"`
	TotalDamageTaken     int    `json:"totalDamageTaken"`
	VisionScore          int    `json:"visionScore"`
	WardsPlaced          int    `json:"wardsPlaced"`
	WardsKilled          int    `json:"wardsKilled"`
	TotalMinionsKilled   int    `json:"totalMinionsKilled"`
	TurretKills          int    `json:"turretKills"`
	TotalTimeSpentDead   int    `json:"totalTimeSpentDead"`
	Puuid                string `json:"puuid"`
	ChampLevel           int    `json:"champLevel"`
	ChampionName         string `json:"championName"`
	Lane                 string `json:"lane"`
	TotalHealsOnTeammate int    `json:"totalHealsOnTeammate"`
	BaitPings            int    `json:"baitPings"`
}

// CombinedMatch is the flattened record ingestion consumes: the info fields
// hoisted to the top with one participants list alongside them.
type CombinedMatch struct {
	GameID       int64
	GameCreation int64
	GameDuration int64
	GameMode     string
	Participants []Participant
}

// Combined flattens a match detail. The detailed info participants win over
// the metadata puuid list: ingestion needs the stat lines, and the puuids
// are repeated inside them anyway.
func (d *MatchDetail) Combined() CombinedMatch {
	return CombinedMatch{
		GameID:       d.Info.GameID,
		GameCreation: d.Info.GameCreation,
		GameDuration: d.Info.GameDuration,
		GameMode:     d.Info.GameMode,
		Participants: d.Info.Participants,
	}
}
