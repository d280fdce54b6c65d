package graph

import (
	"context"
	"sort"
	"sync"
)

// Compile-time assertion: *MemStore satisfies Store.
var _ Store = (*MemStore)(nil)

// MemStore implements Store using Go maps. Thread-safe via sync.RWMutex.
type MemStore struct {
	mu          sync.RWMutex
	inventories map[string]Inventory
	edges       []Edge
	libraries   map[string]LibraryMetadata
}

// NewMemStore returns an initialized MemStore ready for use.
func NewMemStore() *MemStore {
	return &MemStore{
		inventories: make(map[string]Inventory),
		libraries:   make(map[string]LibraryMetadata),
	}
}

// InitSchema is a no-op for the in-memory store.
func (m *MemStore) InitSchema(_ context.Context) error {
	return nil
}

// PutInventory stores an inventory keyed by its path, replacing any prior
// record for the same file.
func (m *MemStore) PutInventory(_ context.Context, inv Inventory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inventories[inv.Path] = inv
	return nil
}

// GetInventory returns the inventory for the given path, or nil if absent.
func (m *MemStore) GetInventory(_ context.Context, path string) (*Inventory, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	inv, ok := m.inventories[path]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

// Inventories returns all stored inventories sorted by path.
func (m *MemStore) Inventories(_ context.Context) ([]Inventory, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Inventory, 0, len(m.inventories))
	for _, inv := range m.inventories {
		out = append(out, inv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

// SetSummary attaches a summary to the inventory at path. Missing files are
// ignored: the file may have been removed since the parse pass.
func (m *MemStore) SetSummary(_ context.Context, path string, summary Summary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	inv, ok := m.inventories[path]
	if !ok {
		return nil
	}
	s := summary
	inv.Summary = &s
	m.inventories[path] = inv
	return nil
}

// ReplaceEdges discards the prior edge set and stores the new one.
func (m *MemStore) ReplaceEdges(_ context.Context, edges []Edge) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.edges = make([]Edge, len(edges))
	copy(m.edges, edges)
	return nil
}

// Edges returns a copy of the stored edge set in insertion order.
func (m *MemStore) Edges(_ context.Context) ([]Edge, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Edge, len(m.edges))
	copy(out, m.edges)
	return out, nil
}

// PutLibrary upserts library metadata keyed by name.
func (m *MemStore) PutLibrary(_ context.Context, lib LibraryMetadata) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.libraries[lib.Name] = lib
	return nil
}

// Libraries returns all stored library metadata sorted by name.
func (m *MemStore) Libraries(_ context.Context) ([]LibraryMetadata, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]LibraryMetadata, 0, len(m.libraries))
	for _, lib := range m.libraries {
		out = append(out, lib)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Stats returns counts of stored records.
func (m *MemStore) Stats(_ context.Context) (*GraphStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	summarized := 0
	for _, inv := range m.inventories {
		if inv.Summary != nil {
			summarized++
		}
	}
	return &GraphStats{
		FileCount:       len(m.inventories),
		EdgeCount:       len(m.edges),
		SummarizedCount: summarized,
		LibraryCount:    len(m.libraries),
	}, nil
}

// Close is a no-op for the in-memory store.
func (m *MemStore) Close() error {
	return nil
}
