package fraud

import (
	"context"
	"sync"
	"time"

	"ads-billing/internal/biztime"
	redisclient "ads-billing/internal/clients/redis"
)

// Window is the recent-history store the guard evaluates against.
type Window interface {
	// Claim sets a cooldown marker and reports false when one is still live.
	// A non-positive ttl never blocks.
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unclaim(ctx context.Context, key string) error
	// Hit records member at now and returns how many members fall inside
	// the trailing window. An entry exactly window old is outside it.
	Hit(ctx context.Context, key, member string, now time.Time, window time.Duration) (int64, error)
	Unhit(ctx context.Context, key, member string) error
	// AddDistinct adds member to a set and returns whether it was new and
	// the set size.
	AddDistinct(ctx context.Context, key, member string, ttl time.Duration) (bool, int64, error)
	RemoveDistinct(ctx context.Context, key, member string) error
}

// RedisWindow keeps fraud history in redis so every API replica shares it.
type RedisWindow struct {
	client *redisclient.Client
}

func NewRedisWindow(client *redisclient.Client) *RedisWindow {
	return &RedisWindow{client: client}
}

// Claim with a non-positive ttl never blocks, matching MemoryWindow. A
// SETNX without expiry would hold the key forever.
func (w *RedisWindow) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		return true, nil
	}
	return w.client.SetNX(ctx, key, 1, ttl)
}

func (w *RedisWindow) Unclaim(ctx context.Context, key string) error {
	return w.client.Del(ctx, key)
}

func (w *RedisWindow) Hit(ctx context.Context, key, member string, now time.Time, window time.Duration) (int64, error) {
	return w.client.SlidingWindowAdd(ctx, key, member, now, window)
}

func (w *RedisWindow) Unhit(ctx context.Context, key, member string) error {
	return w.client.ZRem(ctx, key, member)
}

func (w *RedisWindow) AddDistinct(ctx context.Context, key, member string, ttl time.Duration) (bool, int64, error) {
	return w.client.SetAddCount(ctx, key, member, ttl)
}

func (w *RedisWindow) RemoveDistinct(ctx context.Context, key, member string) error {
	return w.client.SRem(ctx, key, member)
}

type hit struct {
	member string
	at     time.Time
}

type distinctSet struct {
	members map[string]struct{}
	expires time.Time
}

// MemoryWindow is the single-process fallback used when redis is disabled.
// Expired entries are dropped lazily on access and in bulk by Prune.
type MemoryWindow struct {
	mu     sync.Mutex
	clock  biztime.Clock
	claims map[string]time.Time
	hits   map[string][]hit
	spans  map[string]time.Duration
	sets   map[string]*distinctSet
}

func NewMemoryWindow(clock biztime.Clock) *MemoryWindow {
	return &MemoryWindow{
		clock:  clock,
		claims: make(map[string]time.Time),
		hits:   make(map[string][]hit),
		spans:  make(map[string]time.Duration),
		sets:   make(map[string]*distinctSet),
	}
}

func (w *MemoryWindow) Claim(_ context.Context, key string, ttl time.Duration) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.clock.Now()
	if expires, ok := w.claims[key]; ok && now.Before(expires) {
		return false, nil
	}
	w.claims[key] = now.Add(ttl)
	return true, nil
}

func (w *MemoryWindow) Unclaim(_ context.Context, key string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.claims, key)
	return nil
}

func (w *MemoryWindow) Hit(_ context.Context, key, member string, now time.Time, window time.Duration) (int64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	entries := trim(w.hits[key], now.Add(-window))
	entries = append(entries, hit{member: member, at: now})
	w.hits[key] = entries
	w.spans[key] = window
	return int64(len(entries)), nil
}

func (w *MemoryWindow) Unhit(_ context.Context, key, member string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	entries := w.hits[key]
	for i, h := range entries {
		if h.member == member {
			w.hits[key] = append(entries[:i], entries[i+1:]...)
			break
		}
	}
	return nil
}

func (w *MemoryWindow) AddDistinct(_ context.Context, key, member string, ttl time.Duration) (bool, int64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.clock.Now()
	set, ok := w.sets[key]
	if !ok || !now.Before(set.expires) {
		set = &distinctSet{members: make(map[string]struct{})}
		w.sets[key] = set
	}
	set.expires = now.Add(ttl)

	_, seen := set.members[member]
	set.members[member] = struct{}{}
	return !seen, int64(len(set.members)), nil
}

func (w *MemoryWindow) RemoveDistinct(_ context.Context, key, member string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if set, ok := w.sets[key]; ok {
		delete(set.members, member)
	}
	return nil
}

// Prune drops every expired claim, window entry and set. It returns how
// many keys were removed.
func (w *MemoryWindow) Prune(_ context.Context) int {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.clock.Now()
	removed := 0
	for key, expires := range w.claims {
		if !now.Before(expires) {
			delete(w.claims, key)
			removed++
		}
	}
	for key, entries := range w.hits {
		entries = trim(entries, now.Add(-w.spans[key]))
		if len(entries) == 0 {
			delete(w.hits, key)
			delete(w.spans, key)
			removed++
			continue
		}
		w.hits[key] = entries
	}
	for key, set := range w.sets {
		if !now.Before(set.expires) || len(set.members) == 0 {
			delete(w.sets, key)
			removed++
		}
	}
	return removed
}

// Size is the number of live keys, for tests and logging.
func (w *MemoryWindow) Size() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.claims) + len(w.hits) + len(w.sets)
}

// trim drops entries at or before cutoff. Entries are kept in arrival order.
func trim(entries []hit, cutoff time.Time) []hit {
	i := 0
	for i < len(entries) && !entries[i].at.After(cutoff) {
		i++
	}
	if i == 0 {
		return entries
	}
	return append([]hit(nil), entries[i:]...)
}
