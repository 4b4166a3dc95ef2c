package anim

import "time"

// UpdateFunc receives each value a driver produces, tagged with the driver's
// index in its set.
type UpdateFunc func(index int, value float64)

// Set plays drivers together on a shared clock.
type Set struct {
	drivers  []*Driver
	onUpdate UpdateFunc
	elapsed  time.Duration
	running  bool
}

func NewSet(onUpdate UpdateFunc, drivers ...*Driver) *Set {
	return &Set{
		drivers:  drivers,
		onUpdate: onUpdate,
	}
}

// Start rewinds the clock to zero and starts every driver. Starting a running
// set restarts it.
func (s *Set) Start() {
	s.elapsed = 0
	s.running = true
}

// Stop ends all drivers where they are. No update is delivered after Stop
// returns.
func (s *Set) Stop() {
	s.running = false
}

func (s *Set) Running() bool { return s.running }

func (s *Set) Elapsed() time.Duration { return s.elapsed }

func (s *Set) Len() int { return len(s.drivers) }

// Driver returns the i-th driver.
func (s *Set) Driver(i int) *Driver { return s.drivers[i] }

// Advance moves the clock forward by dt and delivers the current value of
// every started driver, in index order. It returns the number of updates
// delivered.
func (s *Set) Advance(dt time.Duration) int {
	if !s.running {
		return 0
	}
	if dt > 0 {
		s.elapsed += dt
	}
	n := 0
	for i, d := range s.drivers {
		v, ok := d.ValueAt(s.elapsed)
		if !ok {
			continue
		}
		if s.onUpdate != nil {
			s.onUpdate(i, v)
		}
		n++
	}
	return n
}
