package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/acpilot/acpilot/internal/rules"
	"golang.org/x/sync/semaphore"
)

// MaxRules is the maximum number of rules the store holds.
const MaxRules = 10

// A Backend durably stores the encoded rule document.
type Backend interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, body []byte) error
}

// Store holds the ordered set of rules. All reads and writes are serialized. Rules are persisted after every change,
// outside the lock, sorted by start hour & minimum temperature.
type Store struct {
	backend  Backend
	logger   *slog.Logger
	lock     *semaphore.Weighted
	rules    []rules.Rule
	nextID   int
	saveLock sync.Mutex
	// SaveRetries is the number of times a failed save is retried.
	SaveRetries int
}

// New returns an empty Store. Call Load to populate it from the backend.
func New(backend Backend, logger *slog.Logger) *Store {
	return &Store{
		backend:     backend,
		logger:      logger,
		lock:        semaphore.NewWeighted(1),
		nextID:      1,
		SaveRetries: 1,
	}
}

func (s *Store) acquire(ctx context.Context) error {
	if err := s.lock.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("%w: %w", ErrLockTimeout, err)
	}
	return nil
}

func (s *Store) release() {
	s.lock.Release(1)
}

// Snapshot returns a copy of the current rules, in store order. If the store can't be locked before ctx expires,
// Snapshot returns ErrLockTimeout.
func (s *Store) Snapshot(ctx context.Context) ([]rules.Rule, error) {
	if err := s.acquire(ctx); err != nil {
		return nil, err
	}
	defer s.release()
	return slices.Clone(s.rules), nil
}

// List returns a copy of the current rules, in store order.
func (s *Store) List(ctx context.Context) ([]rules.Rule, error) {
	return s.Snapshot(ctx)
}

// Get returns the rule with the given id.
func (s *Store) Get(ctx context.Context, id int) (rules.Rule, error) {
	if err := s.acquire(ctx); err != nil {
		return rules.Rule{}, err
	}
	defer s.release()
	if i := s.indexOf(id); i >= 0 {
		return s.rules[i], nil
	}
	return rules.Rule{}, ErrNotFound
}

// Create adds a new rule at the end of the store. Fields not set in the Patch are taken from rules.DefaultTemplate.
// The new rule's id is one higher than any id issued before.
func (s *Store) Create(ctx context.Context, p Patch) (int, error) {
	if err := s.acquire(ctx); err != nil {
		return 0, err
	}
	if len(s.rules) >= MaxRules {
		s.release()
		return 0, ErrCapacityExceeded
	}
	r := p.Apply(rules.DefaultTemplate())
	if err := r.Validate(); err != nil {
		s.release()
		return 0, err
	}
	r.ID = s.nextID
	s.nextID++
	s.rules = append(s.rules, r)
	s.release()

	s.logger.Info("rule created", "rule", r)
	_ = s.persist(context.WithoutCancel(ctx))
	return r.ID, nil
}

// Update applies the Patch to the rule with the given id.
func (s *Store) Update(ctx context.Context, id int, p Patch) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	i := s.indexOf(id)
	if i < 0 {
		s.release()
		return ErrNotFound
	}
	r := p.Apply(s.rules[i])
	if err := r.Validate(); err != nil {
		s.release()
		return err
	}
	s.rules[i] = r
	s.release()

	s.logger.Info("rule updated", "rule", r)
	_ = s.persist(context.WithoutCancel(ctx))
	return nil
}

// Delete removes the rule with the given id. Remaining rules keep their relative order.
func (s *Store) Delete(ctx context.Context, id int) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	i := s.indexOf(id)
	if i < 0 {
		s.release()
		return ErrNotFound
	}
	s.rules = slices.Delete(s.rules, i, i+1)
	s.release()

	s.logger.Info("rule deleted", "id", id)
	_ = s.persist(context.WithoutCancel(ctx))
	return nil
}

// Sort reorders the rules in the store, as per rules.Sort.
func (s *Store) Sort(ctx context.Context) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	rules.Sort(s.rules)
	s.release()
	_ = s.persist(context.WithoutCancel(ctx))
	return nil
}

// Reset replaces all rules by the default rules and persists them.
func (s *Store) Reset(ctx context.Context) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	s.set(rules.DefaultRules())
	s.release()

	s.logger.Info("default rules loaded")
	return s.Save(ctx)
}

// Load replaces the rules in the store by the ones held by the backend. If the backend has no rules, or they can't
// be decoded, the default rules are loaded and saved instead.
func (s *Store) Load(ctx context.Context) error {
	body, err := s.backend.Load(ctx)
	var loaded []rules.Rule
	if err == nil {
		loaded, err = Decode(body)
	}
	if err != nil {
		if errors.Is(err, ErrNoDocument) {
			s.logger.Warn("no stored rules found. loading default rules")
		} else {
			s.logger.Warn("failed to load stored rules. loading default rules", "err", err)
		}
		return s.Reset(ctx)
	}
	if len(loaded) > MaxRules {
		s.logger.Warn("too many stored rules. ignoring excess rules", "count", len(loaded), "max", MaxRules)
		loaded = loaded[:MaxRules]
	}

	if err = s.acquire(ctx); err != nil {
		return err
	}
	s.set(loaded)
	s.release()
	s.logger.Info("rules loaded", "count", len(loaded))
	return nil
}

// Save persists the current rules.
func (s *Store) Save(ctx context.Context) error {
	return s.persist(ctx)
}

// set replaces the rules. The caller must hold the lock.
func (s *Store) set(r []rules.Rule) {
	s.rules = slices.Clone(r)
	for _, rule := range s.rules {
		s.nextID = max(s.nextID, rule.ID+1)
	}
}

func (s *Store) indexOf(id int) int {
	return slices.IndexFunc(s.rules, func(r rules.Rule) bool { return r.ID == id })
}

// persist writes the current rules to the backend. Saves are serialized, so the last save always holds the latest
// rules. A failed save is retried SaveRetries times. The in-memory rules remain authoritative if all attempts fail.
func (s *Store) persist(ctx context.Context) error {
	s.saveLock.Lock()
	defer s.saveLock.Unlock()

	current, err := s.Snapshot(ctx)
	if err != nil {
		s.logger.Error("failed to save rules", "err", err)
		return err
	}
	rules.Sort(current)
	body, err := encode(current)
	if err != nil {
		s.logger.Error("failed to encode rules", "err", err)
		return err
	}

	for attempt := 0; attempt <= s.SaveRetries; attempt++ {
		if err = s.backend.Save(ctx, body); err == nil {
			s.logger.Debug("rules saved", "count", len(current))
			return nil
		}
		s.logger.Warn("failed to save rules", "err", err, "attempt", attempt+1)
	}
	s.logger.Error("rules not saved. changes will be lost on restart", "err", err)
	return fmt.Errorf("save: %w", err)
}
