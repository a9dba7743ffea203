package config

import (
	_ "embed"
)

//go:embed defaults/pairs.yaml
var defaultPairsYAML []byte

// DefaultPairsConfig returns the built-in pairs rules.
func DefaultPairsConfig() PairsConfig {
	return PairsConfig{
		Scoring: ScoringConfig{
			MatchReward:     10,
			MismatchPenalty: 2,
			PenaltyInTimed:  false,
		},
		Delays: DelayConfig{
			MismatchRevertSecs: 0.7,
			CompletionSecs:     0.5,
		},
		Timer: TimerConfig{
			TimeLimits: map[string]int{
				"easy":   60,
				"medium": 90,
				"hard":   120,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultPairsYAML
}
