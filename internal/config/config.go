// Package config provides YAML-based rule configuration for the pairs game.
package config

// PairsConfig contains all tunable rules for the pairs game.
type PairsConfig struct {
	Scoring ScoringConfig `yaml:"scoring"`
	Delays  DelayConfig   `yaml:"delays"`
	Timer   TimerConfig   `yaml:"timer"`
}

// ScoringConfig defines the reward and penalty rules.
type ScoringConfig struct {
	MatchReward     int  `yaml:"match_reward"`     // Points per matched pair
	MismatchPenalty int  `yaml:"mismatch_penalty"` // Points lost per mismatch
	PenaltyInTimed  bool `yaml:"penalty_in_timed"` // Whether the timed mode also applies the penalty
}

// DelayConfig defines presentation delays in seconds.
type DelayConfig struct {
	MismatchRevertSecs float64 `yaml:"mismatch_revert_secs"` // How long a mismatched pair stays visible
	CompletionSecs     float64 `yaml:"completion_secs"`      // Pause before the finished signal fires
}

// TimerConfig defines per-level countdowns for the timed mode.
type TimerConfig struct {
	// TimeLimits maps level IDs (easy/medium/hard) to seconds on the clock.
	// Levels not listed keep their built-in defaults.
	TimeLimits map[string]int `yaml:"time_limits"`
}
