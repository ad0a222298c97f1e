package pagecache

import (
	"context"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/gofiber/fiber/v2"
	localCache "github.com/plumehq/plume/pkg/internal/cache"
	"github.com/spf13/viper"
)

const cacheTag = "page-cache"

type cachedPage struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

func pageCacheKey(url string) string {
	return fmt.Sprintf("page-cache#%s", url)
}

// New builds a full-page TTL cache middleware keyed by the original request
// URL, query string included, so every page of a listing caches on its own.
// There is no write-through invalidation: mutations stay invisible until the
// entry expires or Flush is called, and the stale bytes are served verbatim.
func New() fiber.Handler {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)

	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodGet {
			return c.Next()
		}

		key := pageCacheKey(c.OriginalURL())
		if cached, err := marshal.Get(c.Context(), key, new(cachedPage)); err == nil {
			page := cached.(*cachedPage)
			c.Set(fiber.HeaderContentType, page.ContentType)
			return c.Status(page.Status).Send(page.Body)
		}

		if err := c.Next(); err != nil {
			return err
		}

		body := make([]byte, len(c.Response().Body()))
		copy(body, c.Response().Body())

		_ = marshal.Set(c.Context(), key, cachedPage{
			Status:      c.Response().StatusCode(),
			ContentType: string(c.Response().Header.ContentType()),
			Body:        body,
		}, store.WithExpiration(TTL()), store.WithTags([]string{cacheTag}))

		return nil
	}
}

func TTL() time.Duration {
	ttl := viper.GetDuration("caching.homepage_ttl")
	if ttl <= 0 {
		ttl = 20 * time.Second
	}
	return ttl
}

// Flush drops every cached page at once.
func Flush() error {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	return marshal.Invalidate(context.Background(), store.WithInvalidateTags([]string{cacheTag}))
}
