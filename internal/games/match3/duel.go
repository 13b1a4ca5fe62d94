package match3

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/matchduel/internal/core"
	"github.com/vovakirdan/matchduel/internal/games/match3/core"
)

// Side names a duel participant.
type Side string

const (
	SideNone   Side = ""
	SidePlayer Side = "player"
	SideEnemy  Side = "enemy"
)

// Duel is the timed fight driven by board effects. The enemy attacks the
// player on a fixed interval; moves and specials damage the enemy.
// Time only moves through Advance, which keeps the fight deterministic.
type Duel struct {
	cfg    platformcore.DuelSettings
	logger *log.Logger

	playerHP int
	enemyHP  int

	now        time.Duration
	interval   time.Duration
	nextAttack time.Duration

	slowUntil      time.Duration // Zero when not slowed
	stunUntil      time.Duration
	lifestealUntil time.Duration
	attacks        int
}

// NewDuel starts a fight at time zero with both sides at full health.
// A nil logger discards duel tracing.
func NewDuel(cfg platformcore.DuelSettings, logger *log.Logger) *Duel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Duel{
		cfg:        cfg,
		logger:     logger,
		playerHP:   cfg.PlayerHealth,
		enemyHP:    cfg.EnemyHealth,
		interval:   cfg.AttackInterval,
		nextAttack: cfg.AttackInterval,
	}
}

// PlayerHealth returns the player's current health.
func (d *Duel) PlayerHealth() int { return d.playerHP }

// EnemyHealth returns the enemy's current health.
func (d *Duel) EnemyHealth() int { return d.enemyHP }

// Now returns the fight clock.
func (d *Duel) Now() time.Duration { return d.now }

// Attacks returns the number of enemy attacks that hit the player.
func (d *Duel) Attacks() int { return d.attacks }

// AttackInterval returns the current time between enemy attacks.
func (d *Duel) AttackInterval() time.Duration { return d.interval }

// NextAttackIn returns the time left until the next enemy attack.
func (d *Duel) NextAttackIn() time.Duration { return d.nextAttack - d.now }

// Stunned reports whether enemy attacks are currently skipped.
func (d *Duel) Stunned() bool { return d.now < d.stunUntil }

// Slowed reports whether the enemy attack interval is stretched.
func (d *Duel) Slowed() bool { return d.slowUntil > 0 }

// LifestealActive reports whether move damage currently heals the player.
func (d *Duel) LifestealActive() bool { return d.now < d.lifestealUntil }

// Over reports whether either side has run out of health.
func (d *Duel) Over() bool {
	return d.playerHP == 0 || d.enemyHP == 0
}

// Winner returns the side still standing, or SideNone while the fight runs.
func (d *Duel) Winner() Side {
	switch {
	case d.enemyHP == 0:
		return SidePlayer
	case d.playerHP == 0:
		return SideEnemy
	default:
		return SideNone
	}
}

// Advance moves the fight clock forward by dt, resolving every enemy attack
// and slow expiry on the way in time order. It stops early once the fight
// is over.
func (d *Duel) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	target := d.now + dt
	if d.cfg.AttackInterval <= 0 {
		d.now = target
		return
	}
	for !d.Over() {
		if d.slowUntil > 0 && d.slowUntil <= d.nextAttack {
			if d.slowUntil > target {
				break
			}
			d.now = d.slowUntil
			d.slowUntil = 0
			d.interval = d.cfg.AttackInterval
			d.nextAttack = d.now + d.interval
			d.logger.Debug("enemy slow expired", "at", d.now)
			continue
		}
		if d.nextAttack > target {
			break
		}
		d.now = d.nextAttack
		d.enemyAttack()
		d.nextAttack = d.now + d.interval
	}
	if !d.Over() {
		d.now = target
	}
}

func (d *Duel) enemyAttack() {
	if d.Stunned() {
		d.logger.Debug("enemy attack skipped", "at", d.now, "reason", "stunned")
		return
	}
	d.attacks++
	d.damagePlayer(d.cfg.AttackDamage)
	d.logger.Debug("enemy attack", "at", d.now, "damage", d.cfg.AttackDamage, "player_hp", d.playerHP)
}

// MoveDamage converts the cells cleared by a move into enemy damage.
func (d *Duel) MoveDamage(cleared int) int {
	return cleared * d.cfg.DamagePerThree / 3
}

// ApplyMove deals the damage of a resolved move to the enemy. While
// lifesteal is active the player first heals a share of it. It returns the
// damage dealt and the health healed; both are zero once the fight is over.
func (d *Duel) ApplyMove(snaps []core.Snapshot) (damage, healed int) {
	damage = d.MoveDamage(core.ClearedCells(snaps))
	if damage <= 0 || d.Over() {
		return 0, 0
	}
	if d.LifestealActive() {
		healed = int(math.Floor(float64(damage) * d.cfg.LifestealRatio))
		d.healPlayer(healed)
	}
	d.damageEnemy(damage)
	return damage, healed
}

// The health setters do nothing once either side is down.
func (d *Duel) damagePlayer(amount int) {
	if d.Over() {
		return
	}
	d.playerHP = platformcore.Clamp(d.playerHP-amount, 0, d.cfg.PlayerHealth)
}

func (d *Duel) healPlayer(amount int) {
	if d.Over() {
		return
	}
	d.playerHP = platformcore.Clamp(d.playerHP+amount, 0, d.cfg.PlayerHealth)
}

func (d *Duel) damageEnemy(amount int) {
	if d.Over() {
		return
	}
	d.enemyHP = platformcore.Clamp(d.enemyHP-amount, 0, d.cfg.EnemyHealth)
}

// OnEnemyDamage implements core.EffectSink.
func (d *Duel) OnEnemyDamage(amount int) {
	d.damageEnemy(amount)
}

// OnPlayerHeal implements core.EffectSink.
func (d *Duel) OnPlayerHeal(amount int) {
	d.healPlayer(amount)
}

// OnEnemySlow stretches the attack interval to base/factor and restarts the
// attack timer. The base interval comes back when the slow expires.
func (d *Duel) OnEnemySlow(factor float64, dur time.Duration) {
	if factor <= 0 || dur <= 0 {
		return
	}
	ms := math.Max(1, math.Floor(float64(d.cfg.AttackInterval.Milliseconds())/factor))
	d.interval = time.Duration(ms) * time.Millisecond
	d.nextAttack = d.now + d.interval
	d.slowUntil = d.now + dur
}

// OnEnemyStun skips enemy attacks until dur from now.
func (d *Duel) OnEnemyStun(dur time.Duration) {
	d.stunUntil = d.now + dur
}

// OnEnableLifesteal turns lifesteal on until dur from now. A later call
// replaces the deadline.
func (d *Duel) OnEnableLifesteal(dur time.Duration) {
	d.lifestealUntil = d.now + dur
}

var _ core.EffectSink = (*Duel)(nil)
