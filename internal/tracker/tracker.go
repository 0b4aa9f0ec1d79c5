// Package tracker remembers the AC configuration that was last sent to the AC unit.
package tracker

import (
	"sync"

	"github.com/acpilot/acpilot/internal/rules"
	"github.com/clambin/go-common/set"
)

// Tracker holds the last transmitted configuration. It starts out with rules.OffConfig.
type Tracker struct {
	current rules.ACConfig
	lock    sync.RWMutex
}

func New() *Tracker {
	return &Tracker{current: rules.OffConfig}
}

// Current returns the last committed configuration.
func (t *Tracker) Current() rules.ACConfig {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.current
}

// HasChanged returns true if any setting of candidate differs from the last committed configuration.
func (t *Tracker) HasChanged(candidate rules.ACConfig) bool {
	return t.Current() != candidate
}

// Diff returns the names of the settings that differ between candidate and the last committed configuration.
func (t *Tracker) Diff(candidate rules.ACConfig) set.Set[string] {
	current := t.Current()
	diff := set.New[string]()
	if current.Power != candidate.Power {
		diff.Add("power")
	}
	if current.Temperature != candidate.Temperature {
		diff.Add("temperature")
	}
	if current.FanSpeed != candidate.FanSpeed {
		diff.Add("fanSpeed")
	}
	if current.Mode != candidate.Mode {
		diff.Add("mode")
	}
	if current.VSwing != candidate.VSwing {
		diff.Add("vSwing")
	}
	if current.HSwing != candidate.HSwing {
		diff.Add("hSwing")
	}
	return diff
}

// Commit records candidate as the last transmitted configuration. Only call this once candidate has been sent.
func (t *Tracker) Commit(candidate rules.ACConfig) {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.current = candidate
}
