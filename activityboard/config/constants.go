package config

import "time"

// Application-wide constants organized by domain

// UI and Display Constants
const (
	// Colors
	ErrorColor   = 0xFF0000
	SuccessColor = 0x00FF00
	InfoColor    = 0x0099FF
	WarningColor = 0xFFAA00

	EmbedDefaultColor = 0x2B2D31

	// Discord allows five action rows of five buttons per message
	MaxButtonsPerRow  = 5
	MaxButtonRows     = 5
	MaxSelectionItems = MaxButtonsPerRow*MaxButtonRows - 1 // one slot is kept for cancel

	// Log view
	LogEntriesPerPage = 10
	LogEntriesLimit   = 50

	// Cancel flow lists this many of the user's latest executions
	RecentPerformedLimit = 10

	// Scoreboard image shows at most this many rows
	ScoreImageRows = 10

	// Autocomplete choice names are capped by Discord
	MaxChoiceNameLength = 100
)

// Database and Performance Constants
const (
	DefaultQueryTimeout     = 30 * time.Second
	CommandExecutionTimeout = 10 * time.Second
	SlowCommandThreshold    = 2 * time.Second
	ImageRenderTimeout      = 8 * time.Second
	NetworkDialTimeout      = 5 * time.Second
	MaxRetries              = 3
	RetryInterval           = time.Second
)

// Dialogue session defaults
const (
	DefaultSessionTimeout  = 30 * time.Minute
	DefaultSessionCapacity = 4096
)

// Callback payload reserved for the cancel button of selection lists
const CancelPayload = "-1"
