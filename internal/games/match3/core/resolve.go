package core

// specialRunLength is the run length from which a special is spawned.
const specialRunLength = 4

// Trigger is a special tile consumed by a run during one pass.
type Trigger struct {
	Base int
	Pos  Pos
}

// Resolution summarises one detect/resolve pass.
type Resolution struct {
	Removed  int       // Cells that went from occupied to empty
	Triggers []Trigger // Consumed specials in discovery order
	Spawned  []Pos     // Cells that received a new special
}

type spawn struct {
	pos  Pos
	base int
}

// resolve turns the runs of one pass into removals, spawned specials and
// fired special effects.
func (e *Engine) resolve(runs []Run) Resolution {
	var res Resolution
	if len(runs) == 0 {
		return res
	}

	removal := NewMask(e.board.rows, e.board.cols)
	var spawns []spawn

	for _, run := range runs {
		for _, p := range run.Cells {
			if e.board.At(p).IsSpecial() {
				res.Triggers = append(res.Triggers, Trigger{Base: run.Base, Pos: p})
				break
			}
		}

		if run.Len() >= specialRunLength {
			at := e.chooseSpecialPosition(run.Cells)
			spawns = append(spawns, spawn{pos: at, base: run.Base})
			for _, p := range run.Cells {
				if p != at {
					removal.Add(p)
				}
			}
			continue
		}
		for _, p := range run.Cells {
			removal.Add(p)
		}
	}

	for _, t := range res.Triggers {
		e.fire(t, removal)
	}

	for _, p := range removal.Positions() {
		if !e.board.At(p).IsEmpty() {
			e.board.Set(p, Empty())
			res.Removed++
		}
	}

	// Specials that cannot fall stay put through the next drop.
	e.locked.Clear()
	for _, s := range spawns {
		e.board.Set(s.pos, Special(e.nextUID, s.base))
		e.nextUID++
		res.Spawned = append(res.Spawned, s.pos)
		if !e.board.emptyBelow(s.pos) {
			e.locked.Add(s.pos)
		}
	}

	return res
}

// chooseSpecialPosition picks where a run's special appears: the first swap
// endpoint if the run contains it, else the second, else the middle cell.
func (e *Engine) chooseSpecialPosition(cells []Pos) Pos {
	if e.hasLastSwap {
		for _, end := range e.lastSwap {
			for _, c := range cells {
				if c == end {
					return c
				}
			}
		}
	}
	return cells[len(cells)/2]
}

// fire applies the rule of a consumed special: it grows the removal set and
// emits the rule's effects.
func (e *Engine) fire(t Trigger, removal *Mask) {
	rule := RuleFor(t.Base)
	for _, p := range areaCells(e.board, t.Pos, rule.Area) {
		removal.Add(p)
	}
	for _, eff := range rule.Effects {
		e.emit(eff)
	}
	if rule.RandomClears > 0 {
		e.addRandomCells(rule.RandomClears, removal)
	}
	e.logger.Debug("special fired", "rule", rule.Name, "at", t.Pos, "area", rule.Area)
}

// addRandomCells adds up to count distinct occupied cells to the removal set.
func (e *Engine) addRandomCells(count int, removal *Mask) {
	candidates := e.board.OccupiedPositions()
	for i := 0; i < count && len(candidates) > 0; i++ {
		idx := e.rng.IntN(len(candidates))
		removal.Add(candidates[idx])
		candidates = append(candidates[:idx], candidates[idx+1:]...)
	}
}

// emit delivers an effect to the sink. A panicking sink is logged and
// ignored so the board stays consistent.
func (e *Engine) emit(eff Effect) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("effect sink failed", "effect", eff, "panic", r)
		}
	}()
	eff.Apply(e.sink)
}
