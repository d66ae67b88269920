package repo

import (
	"context"
	"sort"
	"sync"
)

type documentRepoInMemory struct {
	mu    sync.RWMutex
	store map[string]*Record
}

func NewDocumentRepoInMemory() DocumentRepo {
	return &documentRepoInMemory{store: make(map[string]*Record)}
}

// Save stores a copy of r.  Saving an ID that already exists keeps the
// original record.
func (r *documentRepoInMemory) Save(_ context.Context, rec *Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.store[rec.ID]; ok {
		return nil
	}
	r.store[rec.ID] = cloneRecord(rec)
	return nil
}

func (r *documentRepoInMemory) FindByID(_ context.Context, id string) (*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneRecord(rec), nil
}

func (r *documentRepoInMemory) List(_ context.Context) ([]*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Record, 0, len(r.store))
	for _, rec := range r.store {
		out = append(out, cloneRecord(rec))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func cloneRecord(rec *Record) *Record {
	dupe := *rec
	dupe.Packed = append([]byte(nil), rec.Packed...)
	return &dupe
}
