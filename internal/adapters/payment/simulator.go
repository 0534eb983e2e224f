// Package payment holds the simulated payment collaborator. A real
// gateway integration would replace Simulator behind the same port.
package payment

import (
	"context"
	"math/rand"
	"sync"

	"alx_stays/internal/adapters/observability"
	"alx_stays/internal/domain"
)

// Simulator approves charges with the configured probability. It never
// looks at the card details.
type Simulator struct {
	mu          sync.Mutex
	rng         *rand.Rand
	approveRate float64
}

// NewSimulator takes the approval probability in [0,1]. The reference
// behavior is 0.9 (one in ten charges declines).
func NewSimulator(approveRate float64, seed int64) *Simulator {
	return &Simulator{rng: rand.New(rand.NewSource(seed)), approveRate: approveRate}
}

func (s *Simulator) Process(ctx context.Context, in domain.BookingInput) (bool, error) {
	if err := ctx.Err(); err != nil {
		observability.ObservePayment("error")
		return false, err
	}
	s.mu.Lock()
	ok := s.rng.Float64() < s.approveRate
	s.mu.Unlock()
	if ok {
		observability.ObservePayment("approved")
	} else {
		observability.ObservePayment("declined")
	}
	return ok, nil
}
