package core

import (
	"time"

	"github.com/charmbracelet/log"
)

// DuelSettings tunes the timed fight of the duel mode.
type DuelSettings struct {
	PlayerHealth   int
	EnemyHealth    int
	AttackInterval time.Duration // Time between enemy attacks
	AttackDamage   int           // Damage per enemy attack
	DamagePerThree int           // Move damage per three cleared cells
	LifestealRatio float64       // Share of move damage healed while lifesteal is on
}

// RuntimeConfig contains configuration passed to games at Reset.
type RuntimeConfig struct {
	Rows     int
	Cols     int
	Elements int    // Number of distinct tile bases
	Seed     int64  // RNG seed; 0 means use current time in platform layer
	Layout   string // Optional starting board in ASCII form
	Duel     DuelSettings

	Logger *log.Logger // Optional; nil discards engine tracing
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Rows:     8,
		Cols:     8,
		Elements: 5,
		Duel: DuelSettings{
			PlayerHealth:   1000,
			EnemyHealth:    1000,
			AttackInterval: 5 * time.Second,
			AttackDamage:   10,
			DamagePerThree: 5,
			LifestealRatio: 0.5,
		},
	}
}

// Outcome describes how a game ended.
type Outcome string

const (
	OutcomeNone     Outcome = ""
	OutcomeDeadlock Outcome = "deadlock" // No swap on the board produces a match
	OutcomeVictory  Outcome = "victory"  // Enemy health reached zero
	OutcomeDefeat   Outcome = "defeat"   // Player health reached zero
)

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Cells cleared so far
	Moves    int     // Accepted swaps
	GameOver bool    // Whether the game has ended
	Outcome  Outcome // Why the game ended
}

// StepResult is returned by Game.Step() for every input frame.
type StepResult struct {
	State    GameState
	Accepted bool     // The frame contained a swap that produced a match
	Steps    int      // Cascade steps resolved by the swap
	Cleared  int      // Cells emptied by the swap across all steps
	Events   []string // Human-readable effects in emission order
}
