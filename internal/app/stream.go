package app

import (
	"fmt"

	"github.com/bft-labs/frameblend/internal/domain"
	"github.com/bft-labs/frameblend/internal/reduce"
	"github.com/bft-labs/frameblend/internal/window"
	"github.com/bft-labs/frameblend/pkg/log"
)

// Stream is a lazy sequence of ticks. Use it like bufio.Scanner:
//
//	for s.Next() {
//	    t := s.Tick()
//	}
//	if err := s.Err(); err != nil { ... }
//
// A Stream is not safe for concurrent use.
type Stream struct {
	batch   domain.Batch
	win     *window.Window[domain.Frame]
	cadence int
	total   int
	logger  log.Logger

	step    int
	emitted int
	cur     Tick
	err     error
}

// Next advances to the next tick, reducing the window. It returns false when
// the session is exhausted or a reduction failed.
func (s *Stream) Next() bool {
	step, frames, ok := s.advance()
	if !ok {
		return false
	}
	avg, err := reduce.Average(frames)
	if err != nil {
		s.err = fmt.Errorf("tick %d (step %d): %w", s.emitted, step, err)
		return false
	}
	s.cur = Tick{Index: s.emitted, Step: step, Frames: len(frames), Frame: avg}
	s.emitted++
	s.logger.Debug("window averaged",
		log.Int("tick", s.cur.Index),
		log.Int("step", step),
		log.Int("frames", len(frames)),
	)
	return true
}

// Tick returns the most recent tick produced by Next.
func (s *Stream) Tick() Tick {
	return s.cur
}

// Err returns the first error encountered by Next.
func (s *Stream) Err() error {
	return s.err
}

// Emitted returns how many ticks have been produced so far.
func (s *Stream) Emitted() int {
	return s.emitted
}

// advance pushes frames until the next cadence step and returns a snapshot
// of the window at that step. The snapshot is a private copy of the frame
// views, so it stays valid while the window keeps moving.
func (s *Stream) advance() (int, []domain.Frame, bool) {
	if s.err != nil {
		return 0, nil, false
	}
	for s.step < s.total {
		i := s.step
		s.step++
		s.win.Push(s.batch.Cycle(i))
		if i%s.cadence == 0 {
			return i, s.win.Snapshot(), true
		}
	}
	return 0, nil, false
}
