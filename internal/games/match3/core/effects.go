package core

import (
	"fmt"
	"time"
)

// EffectSink receives the gameplay side effects of consumed specials.
// Calls are synchronous notifications; implementations must not touch the
// board and should return quickly.
type EffectSink interface {
	OnEnemyDamage(amount int)
	OnPlayerHeal(amount int)
	OnEnemySlow(factor float64, d time.Duration)
	OnEnemyStun(d time.Duration)
	OnEnableLifesteal(d time.Duration)
}

// NopSink ignores every effect.
type NopSink struct{}

func (NopSink) OnEnemyDamage(int) {}
func (NopSink) OnPlayerHeal(int) {}
func (NopSink) OnEnemySlow(float64, time.Duration) {}
func (NopSink) OnEnemyStun(time.Duration) {}
func (NopSink) OnEnableLifesteal(time.Duration) {}

var _ EffectSink = NopSink{}

// Effect is a single emitted side effect.
type Effect interface {
	effect()
	// Apply delivers the effect to a sink.
	Apply(s EffectSink)
}

// EnemyDamage hits the enemy.
type EnemyDamage struct {
	Amount int
}

func (EnemyDamage) effect() {}
func (e EnemyDamage) Apply(s EffectSink) { s.OnEnemyDamage(e.Amount) }
func (e EnemyDamage) String() string { return fmt.Sprintf("damage(%d)", e.Amount) }

// PlayerHeal restores player health.
type PlayerHeal struct {
	Amount int
}

func (PlayerHeal) effect() {}
func (e PlayerHeal) Apply(s EffectSink) { s.OnPlayerHeal(e.Amount) }
func (e PlayerHeal) String() string { return fmt.Sprintf("heal(%d)", e.Amount) }

// EnemySlow stretches the enemy attack interval by 1/Factor.
type EnemySlow struct {
	Factor   float64
	Duration time.Duration
}

func (EnemySlow) effect() {}
func (e EnemySlow) Apply(s EffectSink) { s.OnEnemySlow(e.Factor, e.Duration) }
func (e EnemySlow) String() string {
	return fmt.Sprintf("slow(%.2f, %s)", e.Factor, e.Duration)
}

// EnemyStun suppresses enemy attacks.
type EnemyStun struct {
	Duration time.Duration
}

func (EnemyStun) effect() {}
func (e EnemyStun) Apply(s EffectSink) { s.OnEnemyStun(e.Duration) }
func (e EnemyStun) String() string { return fmt.Sprintf("stun(%s)", e.Duration) }

// Lifesteal turns part of the player's move damage into healing.
type Lifesteal struct {
	Duration time.Duration
}

func (Lifesteal) effect() {}
func (e Lifesteal) Apply(s EffectSink) { s.OnEnableLifesteal(e.Duration) }
func (e Lifesteal) String() string { return fmt.Sprintf("lifesteal(%s)", e.Duration) }

// Recorder is a sink that keeps every effect in emission order.
// An optional Next sink receives each effect after it is recorded.
type Recorder struct {
	Effects []Effect
	Next    EffectSink
}

func (r *Recorder) record(e Effect) {
	r.Effects = append(r.Effects, e)
	if r.Next != nil {
		e.Apply(r.Next)
	}
}

func (r *Recorder) OnEnemyDamage(amount int) { r.record(EnemyDamage{Amount: amount}) }
func (r *Recorder) OnPlayerHeal(amount int) { r.record(PlayerHeal{Amount: amount}) }
func (r *Recorder) OnEnemySlow(factor float64, d time.Duration) {
	r.record(EnemySlow{Factor: factor, Duration: d})
}
func (r *Recorder) OnEnemyStun(d time.Duration) { r.record(EnemyStun{Duration: d}) }
func (r *Recorder) OnEnableLifesteal(d time.Duration) { r.record(Lifesteal{Duration: d}) }

// Reset drops the recorded effects.
func (r *Recorder) Reset() {
	r.Effects = nil
}

var _ EffectSink = (*Recorder)(nil)
