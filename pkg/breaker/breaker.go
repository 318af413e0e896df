package breaker

import (
	"errors"
	"sync"
	"time"
)

type state uint8

const (
	closed state = iota
	open
	halfOpen
)

// ErrOpen is returned without invoking the call while the breaker is open.
var ErrOpen = errors.New("circuit breaker is open")

// Breaker trips open when the failure share over the tracked tail of
// calls reaches the threshold. After the cooldown it admits probe calls
// and closes again once enough of them succeed in a row.
type Breaker struct {
	mu sync.Mutex

	state    state
	cooldown time.Duration
	openedAt time.Time

	// failure threshold over the tail, 0..1
	threshold float64
	// tail is a ring of the most recent call outcomes, true = failed
	tail []bool
	pos  int

	// consecutive successes needed to close from half-open
	recovery  int
	successes int
}

func New(tailLength int, cooldown time.Duration, threshold float64, recovery int) *Breaker {
	return &Breaker{
		state:     closed,
		cooldown:  cooldown,
		threshold: threshold,
		tail:      make([]bool, tailLength),
		recovery:  recovery,
	}
}

func (b *Breaker) Call(fn func() error) error {
	b.mu.Lock()
	if b.state == open {
		if time.Since(b.openedAt) <= b.cooldown {
			b.mu.Unlock()
			return ErrOpen
		}
		b.state = halfOpen
		b.successes = 0
	}
	b.mu.Unlock()

	err := fn()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.tail[b.pos] = err != nil
	b.pos = (b.pos + 1) % len(b.tail)

	if b.state == halfOpen {
		if err != nil {
			b.trip()
		} else {
			b.successes++
			if b.successes > b.recovery {
				b.reset()
			}
		}
		return err
	}

	fails := 0
	for _, failed := range b.tail {
		if failed {
			fails++
		}
	}
	if float64(fails)/float64(len(b.tail)) >= b.threshold {
		b.trip()
	}
	return err
}

func (b *Breaker) trip() {
	b.state = open
	b.successes = 0
	b.openedAt = time.Now()
}

func (b *Breaker) reset() {
	for i := range b.tail {
		b.tail[i] = false
	}
	b.pos = 0
	b.successes = 0
	b.state = closed
}
