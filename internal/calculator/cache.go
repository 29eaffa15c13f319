package calculator

import (
	"sync"

	"github.com/abdoachhoubi/billsplitter/internal/metrics"
	"github.com/abdoachhoubi/billsplitter/internal/models"
)

// DefaultStatsCacheSize bounds a StatsCache created with a size <= 0.
const DefaultStatsCacheSize = 4096

type cacheKey struct {
	contactID string
	userID    string
	version   int64
}

// StatsCache memoizes contact ledgers keyed by (contact, user, bills
// version). It is safe for concurrent use.
//
// Only the newest version seen is kept: a snapshot with a higher version
// drops every older entry, and lookups with an older version are computed
// without being stored.
type StatsCache struct {
	mu         sync.Mutex
	version    int64
	entries    map[cacheKey]ContactLedger
	maxEntries int
}

// NewStatsCache creates a cache holding at most maxEntries ledgers.
func NewStatsCache(maxEntries int) *StatsCache {
	if maxEntries <= 0 {
		maxEntries = DefaultStatsCacheSize
	}
	return &StatsCache{
		entries:    make(map[cacheKey]ContactLedger),
		maxEntries: maxEntries,
	}
}

// Ledger returns the contact ledger for the snapshot, computing it on a
// miss. The returned relationships must not be modified.
func (c *StatsCache) Ledger(snapshot *models.BillSnapshot, contactID, userID string) ContactLedger {
	key := cacheKey{contactID: contactID, userID: userID, version: snapshot.Version}

	c.mu.Lock()
	if snapshot.Version > c.version {
		c.reset(snapshot.Version)
	}
	ledger, ok := c.entries[key]
	c.mu.Unlock()

	if ok {
		metrics.StatsCacheLookups.WithLabelValues("hit").Inc()
		return ledger
	}
	metrics.StatsCacheLookups.WithLabelValues("miss").Inc()

	ledger = AnalyzeContact(snapshot.Bills, contactID, userID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if snapshot.Version != c.version {
		return ledger
	}
	if len(c.entries) >= c.maxEntries {
		c.reset(c.version)
	}
	c.entries[key] = ledger
	metrics.StatsCacheEntries.Set(float64(len(c.entries)))
	return ledger
}

// Stats returns the cached ContactStats for the snapshot.
func (c *StatsCache) Stats(snapshot *models.BillSnapshot, contactID, userID string) models.ContactStats {
	return c.Ledger(snapshot, contactID, userID).Stats
}

// Len returns the number of cached ledgers.
func (c *StatsCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Purge drops every entry but keeps the current version.
func (c *StatsCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset(c.version)
}

// reset must be called with mu held.
func (c *StatsCache) reset(version int64) {
	c.version = version
	c.entries = make(map[cacheKey]ContactLedger)
	metrics.StatsCacheEntries.Set(0)
}
