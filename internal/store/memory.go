// internal/store/memory.go
package store

import (
	"context"
	"encoding/json"
	"hash/fnv"
	"sync"

	"layout-engine/internal/models"
)

const shardCount = 16

// shard is one lock-partitioned segment of a keyed map. Partitioning keeps
// concurrent mutation of unrelated keys from contending on a single lock.
type shard struct {
	mu   sync.RWMutex
	data map[string][]byte
}

type shardedMap struct {
	shards [shardCount]*shard
}

func newShardedMap() *shardedMap {
	sm := &shardedMap{}
	for i := range sm.shards {
		sm.shards[i] = &shard{data: make(map[string][]byte)}
	}
	return sm
}

func (sm *shardedMap) shardFor(key string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return sm.shards[h.Sum32()%shardCount]
}

func (sm *shardedMap) get(key string) ([]byte, bool) {
	s := sm.shardFor(key)
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

func (sm *shardedMap) set(key string, value []byte) {
	s := sm.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

func (sm *shardedMap) clear() {
	for _, s := range sm.shards {
		s.mu.Lock()
		s.data = make(map[string][]byte)
		s.mu.Unlock()
	}
}

// MemoryCache is the in-process CacheStore. Values are stored as JSON so a
// cached response can never alias a caller's mutation.
type MemoryCache struct {
	m *shardedMap
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{m: newShardedMap()}
}

func (c *MemoryCache) Get(_ context.Context, key string) (*models.RecommendResponse, bool, error) {
	raw, ok := c.m.get(key)
	if !ok {
		return nil, false, nil
	}
	var resp models.RecommendResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, false, err
	}
	return &resp, true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, resp *models.RecommendResponse) error {
	raw, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	c.m.set(key, raw)
	return nil
}

func (c *MemoryCache) Clear(_ context.Context) error {
	c.m.clear()
	return nil
}

// MemoryHistory is the in-process HistoryStore. Each user's history lives
// under its own shard lock and is truncated to models.HistoryLimit on append.
type MemoryHistory struct {
	shards [shardCount]*historyShard
	limit  int
}

type historyShard struct {
	mu   sync.RWMutex
	data map[string][]models.Interaction
}

func NewMemoryHistory() *MemoryHistory {
	h := &MemoryHistory{limit: models.HistoryLimit}
	for i := range h.shards {
		h.shards[i] = &historyShard{data: make(map[string][]models.Interaction)}
	}
	return h
}

func (h *MemoryHistory) shardFor(userID string) *historyShard {
	hsh := fnv.New32a()
	_, _ = hsh.Write([]byte(userID))
	return h.shards[hsh.Sum32()%shardCount]
}

func (h *MemoryHistory) Append(_ context.Context, userID string, interaction models.Interaction) error {
	s := h.shardFor(userID)
	s.mu.Lock()
	defer s.mu.Unlock()
	list := append(s.data[userID], interaction)
	if len(list) > h.limit {
		list = list[len(list)-h.limit:]
	}
	s.data[userID] = list
	return nil
}

func (h *MemoryHistory) Get(_ context.Context, userID string) ([]models.Interaction, error) {
	s := h.shardFor(userID)
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := s.data[userID]
	out := make([]models.Interaction, len(list))
	copy(out, list)
	return out, nil
}

// MemoryFeedback is the in-process FeedbackStore.
type MemoryFeedback struct {
	shards [shardCount]*feedbackShard
}

type feedbackShard struct {
	mu   sync.RWMutex
	data map[string]map[string]float64 // userID -> candidateID -> score
}

func NewMemoryFeedback() *MemoryFeedback {
	f := &MemoryFeedback{}
	for i := range f.shards {
		f.shards[i] = &feedbackShard{data: make(map[string]map[string]float64)}
	}
	return f
}

func (f *MemoryFeedback) shardFor(userID string) *feedbackShard {
	hsh := fnv.New32a()
	_, _ = hsh.Write([]byte(userID))
	return f.shards[hsh.Sum32()%shardCount]
}

func (f *MemoryFeedback) Put(_ context.Context, userID, candidateID string, score float64) error {
	s := f.shardFor(userID)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data[userID] == nil {
		s.data[userID] = make(map[string]float64)
	}
	s.data[userID][candidateID] = score
	return nil
}

func (f *MemoryFeedback) Get(_ context.Context, userID, candidateID string) (float64, bool, error) {
	s := f.shardFor(userID)
	s.mu.RLock()
	defer s.mu.RUnlock()
	score, ok := s.data[userID][candidateID]
	return score, ok, nil
}

func (f *MemoryFeedback) All(_ context.Context, userID string) (map[string]float64, error) {
	s := f.shardFor(userID)
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]float64, len(s.data[userID]))
	for k, v := range s.data[userID] {
		out[k] = v
	}
	return out, nil
}

// NewMemoryStores builds a full in-memory store bundle, the default for
// tests and single-process deployments.
func NewMemoryStores() *Stores {
	return &Stores{
		Cache:    NewMemoryCache(),
		History:  NewMemoryHistory(),
		Feedback: NewMemoryFeedback(),
	}
}
