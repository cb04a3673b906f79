// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session implements the in-memory password cache that lets a user
// avoid re-typing a password within a vault, folder or file scope.
//
// Nothing in this package touches the disk. Expired entries are dropped
// lazily on every read; there is no background goroutine.
package session

import (
	"strings"
	"sync"
	"time"

	"github.com/kkrgzz/encrypt-x/models"
)

// VaultKey is the single scope key used at [models.LevelVault].
const VaultKey = "$vault"

type entry struct {
	password  string
	hint      string
	expiresAt *time.Time
}

// Cache is a scope-keyed store of passwords and hints.
// The zero value is not usable; construct with [New].
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	active  bool
	ttl     time.Duration
	level   models.CacheLevel
	now     func() time.Time
}

// Option configures a [Cache] at construction.
type Option func(*Cache)

// WithClock replaces time.Now, which lets tests simulate elapsed time.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// WithSettings applies settings as if by the corresponding setters.
func WithSettings(s models.CacheSettings) Option {
	return func(c *Cache) {
		c.active = s.Active
		c.ttl = minutes(s.TimeoutMinutes)
		c.level = normalizeLevel(s.Level)
	}
}

// New returns an active cache at vault level with no expiry.
func New(opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[string]entry),
		active:  true,
		level:   models.LevelVault,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Put remembers entry under the scope derived from path. It is a no-op while
// the cache is inactive.
func (c *Cache) Put(e models.PasswordAndHint, path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active {
		return
	}

	var expiresAt *time.Time
	if c.ttl > 0 {
		t := c.now().Add(c.ttl)
		expiresAt = &t
	}

	c.entries[c.scopeKey(path)] = entry{
		password:  e.Password,
		hint:      e.Hint,
		expiresAt: expiresAt,
	}
}

// Get returns what is remembered for path, or empty strings when nothing is
// remembered, the entry expired or the cache is inactive.
func (c *Cache) Get(path string) models.PasswordAndHint {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active {
		return models.PasswordAndHint{}
	}

	c.sweep()

	e, ok := c.entries[c.scopeKey(path)]
	if !ok {
		return models.PasswordAndHint{}
	}
	return models.PasswordAndHint{Password: e.password, Hint: e.hint}
}

// Clear drops every entry and returns how many were dropped.
func (c *Cache) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.entries)
	c.entries = make(map[string]entry)
	return n
}

// Len returns the number of stored entries, expired ones included until the
// next read sweeps them.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// SetActive switches the cache on or off. Entries survive deactivation and
// become visible again on reactivation until their own expiry.
func (c *Cache) SetActive(active bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = active
}

// SetAutoExpireMinutes sets the lifetime of entries inserted from now on.
// Zero or a negative value means entries live until the process ends.
func (c *Cache) SetAutoExpireMinutes(m int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ttl = minutes(m)
}

// SetLevel changes how future scope keys are derived. Stored entries keep the
// keys they were inserted with. An unknown level falls back to vault.
func (c *Cache) SetLevel(level models.CacheLevel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.level = normalizeLevel(level)
}

// Settings returns the current configuration.
func (c *Cache) Settings() models.CacheSettings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return models.CacheSettings{
		Active:         c.active,
		TimeoutMinutes: int(c.ttl / time.Minute),
		Level:          c.level,
	}
}

// ScopeKey derives the cache key for path at the current level.
func (c *Cache) ScopeKey(path string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scopeKey(path)
}

func (c *Cache) scopeKey(path string) string {
	return ScopeKey(c.level, path)
}

// sweep must be called with c.mu held.
func (c *Cache) sweep() {
	now := c.now()
	for k, e := range c.entries {
		if e.expiresAt != nil && !now.Before(*e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// ScopeKey derives the cache key for path at level.
//
// Vault level maps every path to [VaultKey]; folder level keeps everything
// before the last "/" and gives "/" for top-level documents; file level uses
// the path verbatim.
func ScopeKey(level models.CacheLevel, path string) string {
	switch level {
	case models.LevelParentPath:
		i := strings.LastIndex(path, "/")
		if i <= 0 {
			return "/"
		}
		return path[:i]
	case models.LevelFilename:
		return path
	}
	return VaultKey
}

func normalizeLevel(level models.CacheLevel) models.CacheLevel {
	if level.Valid() {
		return level
	}
	return models.LevelVault
}

func minutes(m int) time.Duration {
	if m <= 0 {
		return 0
	}
	return time.Duration(m) * time.Minute
}
