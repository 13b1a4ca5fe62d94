package match3

import "github.com/vovakirdan/matchduel/internal/games/match3/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StateNotStarted GameStateType = "not_started"
	StatePlaying    GameStateType = "playing"
	StateGameOver   GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing and
// the simulate report.
type Snapshot struct {
	Mode    string        `yaml:"mode"`
	State   GameStateType `yaml:"state"`
	Outcome string        `yaml:"outcome,omitempty"`
	Score   int           `yaml:"score"`
	Moves   int           `yaml:"moves"`
	Board   string        `yaml:"board"`

	Duel *DuelSnapshot `yaml:"duel,omitempty"` // nil outside duel mode
}

// DuelSnapshot captures the fight of a duel mode game.
type DuelSnapshot struct {
	PlayerHealth int    `yaml:"player_health"`
	EnemyHealth  int    `yaml:"enemy_health"`
	EnemyAttacks int    `yaml:"enemy_attacks"`
	Clock        string `yaml:"clock"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:  string(g.mode),
		State: StateNotStarted,
	}
	if g.engine == nil {
		return snap
	}

	snap.State = StatePlaying
	if g.gameOver {
		snap.State = StateGameOver
	}
	snap.Outcome = string(g.outcome)
	snap.Score = g.engine.Score()
	snap.Moves = g.engine.Moves()
	snap.Board = core.RenderASCII(g.engine.Board())

	if g.duel != nil {
		snap.Duel = &DuelSnapshot{
			PlayerHealth: g.duel.PlayerHealth(),
			EnemyHealth:  g.duel.EnemyHealth(),
			EnemyAttacks: g.duel.Attacks(),
			Clock:        g.duel.Now().String(),
		}
	}
	return snap
}
