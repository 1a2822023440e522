package session

import (
	"sync"
	"time"

	mix "AceMix/internal/calc/mix"
)

// Record is one immutable design in a user's session history: the inputs as
// submitted and the result they produced. Records are only ever appended;
// "modifying" a design means computing a new one.
type Record struct {
	ID        int        `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	Project   string     `json:"project"`
	Inputs    mix.Input  `json:"inputs"`
	Result    mix.Result `json:"result"`
}

// Store keeps per-user design histories in memory for the lifetime of the
// process. Designs are deliberately never written to the database.
type Store struct {
	mu     sync.RWMutex
	byUser map[int][]Record
	nextID int
}

func NewStore() *Store {
	return &Store{byUser: make(map[int][]Record)}
}

func (s *Store) Append(userID int, project string, in mix.Input, res mix.Result) Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	rec := Record{
		ID:        s.nextID,
		CreatedAt: time.Now(),
		Project:   project,
		Inputs:    in,
		Result:    res,
	}
	s.byUser[userID] = append(s.byUser[userID], rec)
	return rec
}

// List returns the user's records in insertion order. The slice is a copy;
// the store's own ordering is never exposed for mutation.
func (s *Store) List(userID int) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.byUser[userID]
	out := make([]Record, len(records))
	copy(out, records)
	return out
}

func (s *Store) Clear(userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byUser, userID)
}
