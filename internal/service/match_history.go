package service

import (
	"context"
	"fmt"
	"time"

	"lol-tracker/internal/constants"
	"lol-tracker/internal/domain"
	"lol-tracker/internal/repository"
	"lol-tracker/internal/riot"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type MatchHistoryService struct {
	riot    *riot.Client
	users   *repository.UserRepository
	matches *repository.MatchRepository
	logger  zerolog.Logger
}

func NewMatchHistoryService(riotClient *riot.Client, users *repository.UserRepository, matches *repository.MatchRepository, logger zerolog.Logger) *MatchHistoryService {
	return &MatchHistoryService{riot: riotClient, users: users, matches: matches, logger: logger}
}

// GetHistory fetches the user's recent matches upstream, merges the new ones
// into the store and returns the full persisted history. Upstream failures
// abort before anything is staged, commit failures leave nothing behind.
func (s *MatchHistoryService) GetHistory(ctx context.Context, userID int64) ([]domain.MatchSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.LolUsername == nil || *user.LolUsername == "" {
		return nil, fmt.Errorf("%w: user %d", domain.ErrNoSummoner, userID)
	}

	s.logger.Info().Int64("user_id", userID).Str("lol_username", *user.LolUsername).Msg("syncing match history")

	fetched, err := s.riot.FetchAllRecent(ctx, *user.LolUsername)
	if err != nil {
		return nil, err
	}

	matches, statsByMatch, err := buildBatch(fetched)
	if err != nil {
		return nil, err
	}

	if err := s.matches.InsertBatch(ctx, userID, matches, statsByMatch); err != nil {
		return nil, err
	}

	g := new(errgroup.Group)
	g.Go(func() error {
		time.Sleep(constants.LastSyncDelay)
		return s.users.SetLastSyncedAt(userID, time.Now().UTC())
	})
	go func() {
		if err := g.Wait(); err != nil {
			s.logger.Warn().Err(err).Int64("user_id", userID).Msg("failed to stamp last sync")
		}
	}()

	s.logger.Info().Int64("user_id", userID).Int("fetched", len(fetched)).Msg("match history synced")
	return s.matches.HistoryForUser(ctx, userID)
}

func buildBatch(fetched []riot.CombinedMatch) ([]domain.Match, map[int64][]domain.PlayerMatchStats, error) {
	matches := make([]domain.Match, 0, len(fetched))
	statsByMatch := make(map[int64][]domain.PlayerMatchStats, len(fetched))

	for _, m := range fetched {
		matches = append(matches, domain.Match{
			MatchID:      m.GameID,
			GameCreation: m.GameCreation,
			GameDuration: m.GameDuration,
			GameMode:     m.GameMode,
		})

		stats := make([]domain.PlayerMatchStats, 0, len(m.Participants))
		for _, p := range m.Participants {
			id, err := gonanoid.New()
			if err != nil {
				return nil, nil, fmt.Errorf("failed to generate stats id: %w", err)
			}
			stats = append(stats, domain.PlayerMatchStats{
				ID:                   id,
				MatchID:              m.GameID,
				SummonerName:         p.SummonerName,
				Win:                  p.Win,
				TeamID:               p.TeamID,
				TeamPosition:         p.TeamPosition,
				Role:                 p.Role,
				Kills:                p.Kills,
				Deaths:               p.Deaths,
				Assists:              p.Assists,
				GoldEarned:           p.GoldEarned,
				TotalDamageDealt:     p.TotalDamageDealt,
				TotalDamageTaken:     p.TotalDamageTaken,
				VisionScore:          p.VisionScore,
				WardsPlaced:          p.WardsPlaced,
				WardsKilled:          p.WardsKilled,
				TotalMinionsKilled:   p.TotalMinionsKilled,
				TurretKills:          p.TurretKills,
				TotalTimeSpentDead:   p.TotalTimeSpentDead,
				Puuid:                p.Puuid,
				ChampLevel:           p.ChampLevel,
				ChampionName:         p.ChampionName,
				Lane:                 p.Lane,
				TotalHealsOnTeammate: p.TotalHealsOnTeammate,
				BaitPings:            p.BaitPings,
			})
		}
		statsByMatch[m.GameID] = stats
	}

	return matches, statsByMatch, nil
}
