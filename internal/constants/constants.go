package constants

import "time"

const (
	// MatchHistoryCount is the upstream fetch window, most-recent-first.
	MatchHistoryCount = 20
)

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	DBMaxOpenConns    = 25
	DBMaxIdleConns    = 5
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
	LastSyncDelay   = 2 * time.Second
)

const (
	MaxRequestBodyBytes = 1 << 20
)
