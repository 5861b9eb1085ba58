package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Apurer/petstore-api/internal/domains/pets/ports"
)

var _ ports.IdempotencyStore = (*IdempotencyStore)(nil)

// IdempotencyStore keeps AddPet idempotency keys in memory for development and tests.
type IdempotencyStore struct {
	mu      sync.RWMutex
	records map[string]ports.IdempotencyRecord
	now     func() time.Time
}

// NewIdempotencyStore constructs an empty in-memory store. now may be nil.
func NewIdempotencyStore(now ...func() time.Time) *IdempotencyStore {
	clock := time.Now
	if len(now) > 0 && now[0] != nil {
		clock = now[0]
	}
	return &IdempotencyStore{records: map[string]ports.IdempotencyRecord{}, now: clock}
}

// Get returns the record stored under key, or nil when the key is unknown.
func (s *IdempotencyStore) Get(_ context.Context, key string) (*ports.IdempotencyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[key]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Save stores record unless the key is taken. A taken key matching hash and pet is returned as is;
// any other taken key yields ErrIdempotencyConflict together with the stored record.
func (s *IdempotencyStore) Save(_ context.Context, record ports.IdempotencyRecord) (*ports.IdempotencyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.records[record.Key]; ok {
		if existing.RequestHash == record.RequestHash && existing.PetID == record.PetID {
			return &existing, nil
		}
		return &existing, ports.ErrIdempotencyConflict
	}
	record.CreatedAt = s.now()
	record.UpdatedAt = record.CreatedAt
	s.records[record.Key] = record
	return &record, nil
}

// Forget drops key so a later request may reuse it.
func (s *IdempotencyStore) Forget(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
	return nil
}
