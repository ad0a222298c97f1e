package api_test

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"github.com/plumehq/plume/pkg/internal/cache"
	"github.com/plumehq/plume/pkg/internal/database"
	plumehttp "github.com/plumehq/plume/pkg/internal/http"
	"github.com/plumehq/plume/pkg/internal/models"
	"github.com/spf13/viper"
)

func TestHomeFeedCacheStaleness(t *testing.T) {
	useTestDatabase(t)
	viper.Set("caching.homepage_ttl", "20s")
	app := plumehttp.NewServer()
	alice := seedAccount(t, "alice")
	seedPost(t, alice, "before first load", time.Now().Add(-time.Hour))

	resp := perform(t, app, getRequest("/"))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from home feed, got %d", resp.StatusCode)
	}
	first := readBody(t, resp)
	cache.Wait()

	// Churn the dataset inside the TTL: add a post that stays, add and
	// delete another. None of it may be visible yet.
	seedPost(t, alice, "lands after the flush", time.Now())
	doomed := seedPost(t, alice, "never visible", time.Now())
	if err := database.C.Delete(&models.Post{}, doomed.ID).Error; err != nil {
		t.Fatalf("unable to delete post: %v", err)
	}

	resp = perform(t, app, getRequest("/"))
	second := readBody(t, resp)
	if !bytes.Equal(first, second) {
		t.Fatal("home feed must serve the cached page inside the TTL")
	}

	admin := seedAdmin(t, "root")
	resp = perform(t, app, formRequest("/api/admin/cache/flush", nil, sessionCookie(t, admin)))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from cache flush, got %d", resp.StatusCode)
	}
	cache.Wait()

	resp = perform(t, app, getRequest("/"))
	third := readBody(t, resp)
	if bytes.Equal(first, third) {
		t.Fatal("home feed still serves the stale page after a flush")
	}
}

func TestHomeFeedCacheExpiry(t *testing.T) {
	useTestDatabase(t)
	viper.Set("caching.homepage_ttl", "500ms")
	defer viper.Set("caching.homepage_ttl", "20s")
	app := plumehttp.NewServer()
	alice := seedAccount(t, "alice")
	seedPost(t, alice, "before first load", time.Now().Add(-time.Hour))

	resp := perform(t, app, getRequest("/"))
	first := readBody(t, resp)
	cache.Wait()

	seedPost(t, alice, "after first load", time.Now())

	resp = perform(t, app, getRequest("/"))
	if second := readBody(t, resp); !bytes.Equal(first, second) {
		t.Fatal("home feed must serve the cached page inside the TTL")
	}

	time.Sleep(700 * time.Millisecond)

	resp = perform(t, app, getRequest("/"))
	if third := readBody(t, resp); bytes.Equal(first, third) {
		t.Fatal("home feed still serves the cached page after the TTL elapsed")
	}
}

func TestHomeFeedCachePerURL(t *testing.T) {
	useTestDatabase(t)
	viper.Set("caching.homepage_ttl", "20s")
	app := plumehttp.NewServer()
	alice := seedAccount(t, "alice")
	for idx := 0; idx < 15; idx++ {
		seedPost(t, alice, "post", time.Now().Add(-time.Duration(idx)*time.Minute))
	}

	resp := perform(t, app, getRequest("/?page=1"))
	pageOne := readBody(t, resp)
	cache.Wait()

	resp = perform(t, app, getRequest("/?page=2"))
	pageTwo := readBody(t, resp)
	cache.Wait()

	if bytes.Equal(pageOne, pageTwo) {
		t.Fatal("distinct pages must be cached under distinct keys")
	}

	resp = perform(t, app, getRequest("/?page=1"))
	if again := readBody(t, resp); !bytes.Equal(pageOne, again) {
		t.Fatal("page one was evicted by the page two entry")
	}
}
