// Package config provides YAML-based configuration loading for the board
// engine, the duel mode and logging.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/matchduel/internal/core"
	"github.com/vovakirdan/matchduel/internal/games/match3/core"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid value")

// MatchConfig contains all configuration for a match-three session.
type MatchConfig struct {
	Board BoardConfig `yaml:"board"`
	Duel  DuelConfig  `yaml:"duel"`
	Log   LogConfig   `yaml:"log"`
}

// BoardConfig defines the board the engine starts from.
type BoardConfig struct {
	Rows     int    `yaml:"rows"`
	Cols     int    `yaml:"cols"`
	Elements int    `yaml:"elements"` // Distinct tile bases, at least 3
	Layout   string `yaml:"layout"`   // Optional fixed board; overrides rows and cols
}

// DuelConfig defines the timed fight of the duel mode.
type DuelConfig struct {
	PlayerHealth     int     `yaml:"player_health"`
	EnemyHealth      int     `yaml:"enemy_health"`
	AttackIntervalMs int     `yaml:"attack_interval_ms"`
	AttackDamage     int     `yaml:"attack_damage"`
	DamagePerThree   int     `yaml:"damage_per_three"` // Move damage per three cleared cells
	LifestealRatio   float64 `yaml:"lifesteal_ratio"`
}

// LogConfig defines logging behaviour.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Validate checks that the config can start a game.
func (c MatchConfig) Validate() error {
	b := c.Board
	if b.Layout != "" {
		if _, err := core.ParseBoard(b.Layout); err != nil {
			return fmt.Errorf("%w: board.layout: %v", ErrInvalidConfig, err)
		}
	} else if b.Rows < 1 || b.Cols < 1 {
		return fmt.Errorf("%w: board size %dx%d", ErrInvalidConfig, b.Rows, b.Cols)
	}
	if b.Elements < core.MinElements {
		return fmt.Errorf("%w: board.elements must be at least %d, got %d",
			ErrInvalidConfig, core.MinElements, b.Elements)
	}

	d := c.Duel
	if d.PlayerHealth < 1 || d.EnemyHealth < 1 {
		return fmt.Errorf("%w: duel health must be positive", ErrInvalidConfig)
	}
	if d.AttackIntervalMs < 0 || d.AttackDamage < 0 || d.DamagePerThree < 0 {
		return fmt.Errorf("%w: duel timings and damage must not be negative", ErrInvalidConfig)
	}
	if d.LifestealRatio < 0 || d.LifestealRatio > 1 {
		return fmt.Errorf("%w: duel.lifesteal_ratio %v outside [0, 1]", ErrInvalidConfig, d.LifestealRatio)
	}

	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}

// Runtime converts the config into the platform's runtime config. With a
// layout the board size is taken from the layout.
func (c MatchConfig) Runtime(seed int64, logger *log.Logger) platformcore.RuntimeConfig {
	rows, cols := c.Board.Rows, c.Board.Cols
	if c.Board.Layout != "" {
		rows, cols = 0, 0
	}
	return platformcore.RuntimeConfig{
		Rows:     rows,
		Cols:     cols,
		Elements: c.Board.Elements,
		Seed:     seed,
		Layout:   c.Board.Layout,
		Duel: platformcore.DuelSettings{
			PlayerHealth:   c.Duel.PlayerHealth,
			EnemyHealth:    c.Duel.EnemyHealth,
			AttackInterval: time.Duration(c.Duel.AttackIntervalMs) * time.Millisecond,
			AttackDamage:   c.Duel.AttackDamage,
			DamagePerThree: c.Duel.DamagePerThree,
			LifestealRatio: c.Duel.LifestealRatio,
		},
		Logger: logger,
	}
}
