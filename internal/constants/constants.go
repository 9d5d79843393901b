package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	RequestTimeout     = 30 * time.Second

	// Trend computation walks the whole sample sequentially with a pause
	// between fetches, so it gets a much larger budget.
	TrendRequestTimeout = 60 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)

// Game-phase windows, expressed as half-open frame-index ranges.
const (
	EarlyWindowStart = 0
	EarlyWindowEnd   = 14
	MidWindowStart   = 14
	MidWindowEnd     = 28
	LateWindowStart  = 28
)

const (
	DefaultMatchListLimit = 20

	FullReportBatchCount = 10
	FullReportBatchSize  = 100
)

// StandardGameMode is the only mode match previews consider.
const StandardGameMode = "CLASSIC"
