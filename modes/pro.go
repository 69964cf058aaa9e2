package modes

import (
	"fmt"
	"time"

	"github.com/lixenwraith/invoker/buffer"
	"github.com/lixenwraith/invoker/combo"
	"github.com/lixenwraith/invoker/constants"
	"github.com/lixenwraith/invoker/engine"
	"github.com/lixenwraith/invoker/spell"
)

// proMode is a hard run: only the front spell can be cast, every cast must
// use exactly the minimum number of keypresses, and all spells share one
// accelerating speed
type proMode struct {
	env      *env
	wave     *engine.Wave
	buf      *buffer.Counted
	required int
	score    int
	elapsed  time.Duration
	runID    string
}

func newPro(e *env) (*proMode, error) {
	w, err := engine.NewWave(engine.ProWave, e.settings.Field, e.rng)
	if err != nil {
		return nil, fmt.Errorf("pro: %w", err)
	}
	p := &proMode{
		env:      e,
		wave:     w,
		buf:      buffer.NewCounted(),
		required: constants.ProInitialPresses,
		runID:    newRunID(),
	}
	// The opening target exists before the first frame
	first := w.Spawn()
	e.feedback.Spawn(first.ID)
	return p, nil
}

func (p *proMode) Kind() Kind { return KindProMode }

func (p *proMode) over(diag string) Transition {
	p.env.feedback.Fault()
	return GoTo(KindGameOverPro, Payload{
		Score:      p.score,
		Diagnostic: diag,
		Elapsed:    p.elapsed,
		RunID:      p.runID,
	})
}

func (p *proMode) update(dt time.Duration) Transition {
	p.elapsed += dt
	res := p.wave.Tick(dt)
	if res.Spawned {
		p.env.feedback.Spawn(res.New.ID)
	}
	if res.Breached {
		return p.over(breachMessage(res.Breach))
	}
	return None()
}

func (p *proMode) key(k Key) Transition {
	if sym, ok := orbOf(k); ok {
		p.buf.PushCounted(sym)
		return None()
	}

	switch k {
	case KeyEscape:
		return GoTo(KindMenu, Payload{})
	case KeyInvoke:
		return p.commit()
	}
	return None()
}

// commit checks the keypress budget, then the symbols against the front spell
func (p *proMode) commit() Transition {
	out := p.buf.CommitChecked(p.required)
	if out.Fault() {
		return p.over(out.String())
	}
	if !out.Full {
		return p.over(shortCast(p.buf.Len()))
	}

	front, ok := p.wave.Front()
	if !ok {
		front = p.wave.Spawn()
		p.env.feedback.Spawn(front.ID)
	}
	if out.Key != front.Key {
		cast, _ := spell.Lookup(out.Key)
		return p.over(fmt.Sprintf("cast %s, needed %s", cast, front.ID))
	}

	p.wave.Remove(0)
	p.score++
	p.env.feedback.Cast(front.ID)

	if p.wave.Len() == 0 {
		s := p.wave.Spawn()
		p.env.feedback.Spawn(s.ID)
	}
	next, _ := p.wave.Front()
	window, _ := p.buf.Ordered()
	p.required = combo.RequiredPresses(window, next.Key)
	return None()
}

func (p *proMode) click(float64, float64) Transition { return None() }

func (p *proMode) fill(s *Snapshot) {
	s.Score = p.score
	s.Buffer = p.buf.Symbols()
	s.Spells = p.wave.Spells()
	s.Speed = p.wave.Speed()
	s.Elapsed = p.elapsed
	s.RunID = p.runID
	s.Required = p.required
	s.Pressed = p.buf.Presses()
	s.FirstCast = p.buf.FirstCastPending()
	if len(s.Spells) > 1 {
		s.Next = s.Spells[1].ID
		s.HasNext = true
	}
}
