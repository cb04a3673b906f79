// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/kkrgzz/encrypt-x/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is advanced manually by tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

var secret = models.PasswordAndHint{Password: "s3cret", Hint: "usual"}

func TestCache_PutGet(t *testing.T) {
	c := New()

	assert.Equal(t, models.PasswordAndHint{}, c.Get("notes/a.md"))

	c.Put(secret, "notes/a.md")
	assert.Equal(t, secret, c.Get("notes/a.md"))
	assert.Equal(t, secret, c.Get("other/b.md"), "vault level shares one entry")
}

func TestCache_Expiry(t *testing.T) {
	clock := newFakeClock()
	c := New(WithClock(clock.Now))
	c.SetAutoExpireMinutes(5)

	c.Put(secret, "a.md")

	clock.Advance(4 * time.Minute)
	assert.Equal(t, secret, c.Get("a.md"))

	clock.Advance(2 * time.Minute)
	assert.Equal(t, models.PasswordAndHint{}, c.Get("a.md"))
	assert.Equal(t, 0, c.Len(), "expired entry is swept on read")
}

func TestCache_ZeroTimeoutNeverExpires(t *testing.T) {
	clock := newFakeClock()
	c := New(WithClock(clock.Now))
	c.SetAutoExpireMinutes(0)

	c.Put(secret, "a.md")

	for i := 0; i < 10; i++ {
		clock.Advance(24 * time.Hour)
		require.Equal(t, secret, c.Get("a.md"))
	}
}

func TestCache_ExpiryIsPerEntry(t *testing.T) {
	clock := newFakeClock()
	c := New(WithClock(clock.Now))
	c.SetLevel(models.LevelFilename)
	c.SetAutoExpireMinutes(5)

	c.Put(secret, "old.md")
	clock.Advance(3 * time.Minute)
	c.Put(secret, "new.md")
	clock.Advance(3 * time.Minute)

	assert.Empty(t, c.Get("old.md").Password)
	assert.Equal(t, secret, c.Get("new.md"))
}

func TestCache_TimeoutChangeAffectsOnlyNewEntries(t *testing.T) {
	clock := newFakeClock()
	c := New(WithClock(clock.Now))
	c.SetLevel(models.LevelFilename)

	c.Put(secret, "forever.md")
	c.SetAutoExpireMinutes(1)
	c.Put(secret, "short.md")

	clock.Advance(2 * time.Minute)
	assert.Equal(t, secret, c.Get("forever.md"))
	assert.Empty(t, c.Get("short.md").Password)
}

func TestCache_FolderScopeIsolation(t *testing.T) {
	c := New()
	c.SetLevel(models.LevelParentPath)

	work := models.PasswordAndHint{Password: "work"}
	home := models.PasswordAndHint{Password: "home"}

	c.Put(work, "work/plan.md")
	c.Put(home, "home/diary.md")

	assert.Equal(t, work, c.Get("work/other.md"))
	assert.Equal(t, home, c.Get("home/other.md"))
	assert.Empty(t, c.Get("elsewhere/x.md").Password)

	c.SetLevel(models.LevelVault)
	assert.Empty(t, c.Get("work/plan.md").Password, "level change does not remap stored keys")

	c.Put(work, "work/plan.md")
	assert.Equal(t, work, c.Get("home/diary.md"), "vault level shares one entry going forward")
}

func TestCache_Inactive(t *testing.T) {
	c := New()
	c.Put(secret, "a.md")

	c.SetActive(false)
	assert.Equal(t, models.PasswordAndHint{}, c.Get("a.md"))

	c.Put(models.PasswordAndHint{Password: "ignored"}, "a.md")
	assert.Equal(t, 1, c.Len())

	c.SetActive(true)
	assert.Equal(t, secret, c.Get("a.md"), "reactivation restores prior entries")
}

func TestCache_InactiveKeepsEntriesUntilOwnExpiry(t *testing.T) {
	clock := newFakeClock()
	c := New(WithClock(clock.Now))
	c.SetAutoExpireMinutes(5)
	c.Put(secret, "a.md")

	c.SetActive(false)
	clock.Advance(6 * time.Minute)
	c.SetActive(true)

	assert.Empty(t, c.Get("a.md").Password)
}

func TestCache_Clear(t *testing.T) {
	c := New()
	c.SetLevel(models.LevelFilename)

	c.Put(secret, "a.md")
	c.Put(secret, "b.md")
	c.Put(secret, "c.md")

	assert.Equal(t, 3, c.Clear())
	assert.Equal(t, 0, c.Clear())
	assert.Empty(t, c.Get("a.md").Password)
}

func TestCache_InvalidLevelFallsBackToVault(t *testing.T) {
	c := New()
	c.SetLevel("somewhere")
	assert.Equal(t, models.LevelVault, c.Settings().Level)
	assert.Equal(t, VaultKey, c.ScopeKey("a/b.md"))
}

func TestCache_WithSettings(t *testing.T) {
	c := New(WithSettings(models.CacheSettings{
		Active:         false,
		TimeoutMinutes: 30,
		Level:          models.LevelFilename,
	}))

	assert.Equal(t, models.CacheSettings{
		Active:         false,
		TimeoutMinutes: 30,
		Level:          models.LevelFilename,
	}, c.Settings())
}

func TestScopeKey(t *testing.T) {
	tests := []struct {
		level models.CacheLevel
		path  string
		want  string
	}{
		{models.LevelVault, "a/b/c.md", VaultKey},
		{models.LevelVault, "", VaultKey},
		{models.LevelParentPath, "a/b/c.md", "a/b"},
		{models.LevelParentPath, "c.md", "/"},
		{models.LevelParentPath, "/c.md", "/"},
		{models.LevelParentPath, "", "/"},
		{models.LevelFilename, "a/b/c.md", "a/b/c.md"},
		{"bogus", "a/b/c.md", VaultKey},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %s", tt.level, tt.path), func(t *testing.T) {
			assert.Equal(t, tt.want, ScopeKey(tt.level, tt.path))
		})
	}
}

func TestCache_ConcurrentAccess(t *testing.T) {
	clock := newFakeClock()
	c := New(WithClock(clock.Now))
	c.SetLevel(models.LevelFilename)
	c.SetAutoExpireMinutes(1)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			path := fmt.Sprintf("doc-%d.md", i)
			for j := 0; j < 100; j++ {
				c.Put(secret, path)
				_ = c.Get(path)
				if j%10 == 0 {
					clock.Advance(time.Second)
				}
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 16)
}
