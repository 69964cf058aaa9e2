package modes

import (
	"fmt"
	"time"

	"github.com/lixenwraith/invoker/buffer"
	"github.com/lixenwraith/invoker/engine"
	"github.com/lixenwraith/invoker/spell"
)

// playMode is a normal run: clear any falling spell whose combo matches
type playMode struct {
	env     *env
	wave    *engine.Wave
	buf     buffer.Input
	score   int
	elapsed time.Duration
	runID   string
}

func newPlay(e *env) (*playMode, error) {
	w, err := engine.NewWave(engine.PlayWave, e.settings.Field, e.rng)
	if err != nil {
		return nil, fmt.Errorf("play: %w", err)
	}
	return &playMode{env: e, wave: w, runID: newRunID()}, nil
}

func (p *playMode) Kind() Kind { return KindPlay }

func (p *playMode) over(diag string) Transition {
	p.env.feedback.Fault()
	return GoTo(KindGameOver, Payload{
		Score:      p.score,
		Diagnostic: diag,
		Elapsed:    p.elapsed,
		RunID:      p.runID,
	})
}

func (p *playMode) update(dt time.Duration) Transition {
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

func (p *playMode) key(k Key) Transition {
	if sym, ok := orbOf(k); ok {
		p.buf.Push(sym)
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

// commit clears the oldest live spell matching the window, or ends the run
func (p *playMode) commit() Transition {
	key, ok := p.buf.Commit()
	if !ok {
		return p.over(shortCast(p.buf.Len()))
	}

	i := p.wave.IndexOf(key)
	if i < 0 {
		cast, _ := spell.Lookup(key)
		return p.over(fmt.Sprintf("cast %s, nothing falling needs it", cast))
	}

	hit := p.wave.Remove(i)
	p.score++
	p.env.feedback.Cast(hit.ID)
	return None()
}

func (p *playMode) click(float64, float64) Transition { return None() }

func (p *playMode) fill(s *Snapshot) {
	s.Score = p.score
	s.Buffer = p.buf.Symbols()
	s.Spells = p.wave.Spells()
	s.Speed = p.wave.Speed()
	s.Elapsed = p.elapsed
	s.RunID = p.runID
}
