package config

import (
	_ "embed"
)

//go:embed defaults/match.yaml
var defaultMatchYAML []byte

// DefaultMatchConfig returns the default match-three configuration.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		Board: BoardConfig{
			Rows:     8,
			Cols:     8,
			Elements: 5,
		},
		Duel: DuelConfig{
			PlayerHealth:     1000,
			EnemyHealth:      1000,
			AttackIntervalMs: 5000,
			AttackDamage:     10,
			DamagePerThree:   5,
			LifestealRatio:   0.5,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
