package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"lol-tracker/internal/db"
	"lol-tracker/internal/domain"

	"github.com/rs/zerolog"
)

type MatchRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewMatchRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *MatchRepository {
	return &MatchRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// InsertBatch persists one ingestion batch for a user atomically. Each match
// is inserted conflict-free on its upstream id; stat rows are written only
// when the insert actually created the match, so re-ingestion never
// duplicates them. The user link is written unconditionally: a match first
// seen through another user still lands in this user's history.
func (r *MatchRepository) InsertBatch(ctx context.Context, userID int64, matches []domain.Match, statsByMatch map[int64][]domain.PlayerMatchStats) error {
	if len(matches) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	now := time.Now().UTC()

	for _, match := range matches {
		inserted, err := qtx.InsertMatch(ctx, db.InsertMatchParams{
			MatchID:      match.MatchID,
			GameCreation: match.GameCreation,
			GameDuration: match.GameDuration,
			GameMode:     match.GameMode,
			CreatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("failed to insert match %d: %w", match.MatchID, err)
		}

		if inserted == 1 {
			for _, stats := range statsByMatch[match.MatchID] {
				if err := qtx.InsertPlayerMatchStats(ctx, toStatsParams(stats, now)); err != nil {
					return fmt.Errorf("failed to insert stats for match %d: %w", match.MatchID, err)
				}
			}
		}

		if err := qtx.LinkUserMatch(ctx, db.LinkUserMatchParams{
			UserID:    userID,
			MatchID:   match.MatchID,
			CreatedAt: now,
		}); err != nil {
			return fmt.Errorf("failed to link match %d to user %d: %w", match.MatchID, userID, err)
		}
	}

	return tx.Commit()
}

// HistoryForUser builds the read projection: match headers most-recent-first
// with participant summoner names only.
func (r *MatchRepository) HistoryForUser(ctx context.Context, userID int64) ([]domain.MatchSummary, error) {
	rows, err := r.queries.GetUserMatchHistory(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.MatchSummary, 0, len(rows))
	index := make(map[int64]int)
	for _, row := range rows {
		i, seen := index[row.MatchID]
		if !seen {
			summaries = append(summaries, domain.MatchSummary{
				MatchID:      row.MatchID,
				GameCreation: row.GameCreation,
				GameDuration: row.GameDuration,
				GameMode:     row.GameMode,
				Players:      make([]string, 0, 10),
			})
			i = len(summaries) - 1
			index[row.MatchID] = i
		}
		if row.SummonerName.Valid {
			summaries[i].Players = append(summaries[i].Players, row.SummonerName.String)
		}
	}
	return summaries, nil
}

func (r *MatchRepository) Exists(ctx context.Context, matchID int64) (bool, error) {
	exists, err := r.queries.MatchExists(ctx, matchID)
	if err != nil {
		return false, err
	}
	return exists == 1, nil
}

func (r *MatchRepository) StatsCount(ctx context.Context, matchID int64) (int64, error) {
	return r.queries.CountPlayerMatchStats(ctx, matchID)
}

func (r *MatchRepository) LinkCount(ctx context.Context, userID int64) (int64, error) {
	return r.queries.CountUserMatches(ctx, userID)
}

func toStatsParams(s domain.PlayerMatchStats, createdAt time.Time) db.InsertPlayerMatchStatsParams {
	return db.InsertPlayerMatchStatsParams{
		ID:                   s.ID,
		MatchID:              s.MatchID,
		SummonerName:         sql.NullString{String: s.SummonerName, Valid: true},
		Win:                  sql.NullBool{Bool: s.Win, Valid: true},
		TeamID:               sql.NullInt64{Int64: int64(s.TeamID), Valid: true},
		TeamPosition:         sql.NullString{String: s.TeamPosition, Valid: true},
		Role:                 sql.NullString{String: s.Role, Valid: true},
		Kills:                sql.NullInt64{Int64: int64(s.Kills), Valid: true},
		Deaths:               sql.NullInt64{Int64: int64(s.Deaths), Valid: true},
		Assists:              sql.NullInt64{Int64: int64(s.Assists), Valid: true},
		GoldEarned:           sql.NullInt64{Int64: int64(s.GoldEarned), Valid: true},
		TotalDamageDealt:     sql.NullInt64{Int64: int64(s.TotalDamageDealt), Valid: true},
		TotalDamageTaken:     sql.NullInt64{Int64: int64(s.TotalDamageTaken), Valid: true},
		VisionScore:          sql.NullInt64{Int64: int64(s.VisionScore), Valid: true},
		WardsPlaced:          sql.NullInt64{Int64: int64(s.WardsPlaced), Valid: true},
		WardsKilled:          sql.NullInt64{Int64: int64(s.WardsKilled), Valid: true},
		TotalMinionsKilled:   sql.NullInt64{Int64: int64(s.TotalMinionsKilled), Valid: true},
		TurretKills:          sql.NullInt64{Int64: int64(s.TurretKills), Valid: true},
		TotalTimeSpentDead:   sql.NullInt64{Int64: int64(s.TotalTimeSpentDead), Valid: true},
		Puuid:                sql.NullString{String: s.Puuid, Valid: true},
		ChampLevel:           sql.NullInt64{Int64: int64(s.ChampLevel), Valid: true},
		ChampionName:         sql.NullString{String: s.ChampionName, Valid: true},
		Lane:                 sql.NullString{String: s.Lane, Valid: true},
		TotalHealsOnTeammate: sql.NullInt64{Int64: int64(s.TotalHealsOnTeammate), Valid: true},
		BaitPings:            sql.NullInt64{Int64: int64(s.BaitPings), Valid: true},
		CreatedAt:            createdAt,
	}
}
