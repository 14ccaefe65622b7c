package clock

import (
	"sync"
	"time"
)

// Clock abstrai a hora atual para que os timestamps de auditoria sejam testáveis.
type Clock interface {
	Now() time.Time
}

// RealClock devolve a hora atual em UTC.
type RealClock struct{}

// Now devolve a hora atual em UTC.
func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// FakeClock é um relógio controlável para testes.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFake cria um FakeClock parado em t.
func NewFake(t time.Time) *FakeClock {
	return &FakeClock{now: t}
}

// Now devolve a hora fixada.
func (f *FakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Advance avança o relógio em d.
func (f *FakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}
