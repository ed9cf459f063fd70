// Package flash implements one-time status messages attached to redirects.
// A message is stored server-side in the cache keyed by a random id carried
// in a cookie; consuming it deletes both, so it renders at most once. When no
// cache is available the message itself travels in the cookie.
package flash

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"userpanel/internal/cache"
)

const (
	cookieName = "flash"
	keyPrefix  = "flash:"
	ttl        = 5 * time.Minute

	// cookie value prefixes: "ref:" carries a cache key id, "msg:" carries
	// the escaped message itself (cache unavailable)
	refPrefix = "ref:"
	msgPrefix = "msg:"
)

// Store reads and writes flash messages. A nil cache degrades to
// cookie-carried messages.
type Store struct {
	cache cache.Cache
}

// NewStore creates a flash store backed by the given cache (may be nil)
func NewStore(cacheClient cache.Cache) *Store {
	return &Store{cache: cacheClient}
}

// Add attaches a one-time message to the response
func (s *Store) Add(c *gin.Context, message string) {
	if s.cache != nil {
		id := uuid.NewString()
		if err := s.cache.Set(c.Request.Context(), keyPrefix+id, message, ttl); err == nil {
			s.setCookie(c, refPrefix+id)
			return
		}
	}
	s.setCookie(c, msgPrefix+url.QueryEscape(message))
}

// Consume returns the pending message, if any, and discards it
func (s *Store) Consume(c *gin.Context) string {
	value, err := c.Cookie(cookieName)
	if err != nil || value == "" {
		return ""
	}
	s.clearCookie(c)

	switch {
	case strings.HasPrefix(value, refPrefix):
		if s.cache == nil {
			return ""
		}
		message, err := s.cache.GetDel(context.WithoutCancel(c.Request.Context()), strings.TrimPrefix(value, refPrefix))
		if err != nil {
			return ""
		}
		return message
	case strings.HasPrefix(value, msgPrefix):
		message, err := url.QueryUnescape(strings.TrimPrefix(value, msgPrefix))
		if err != nil {
			return ""
		}
		return message
	default:
		return ""
	}
}

func (s *Store) setCookie(c *gin.Context, value string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, value, int(ttl.Seconds()), "/", "", false, true)
}

func (s *Store) clearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, "", -1, "/", "", false, true)
}
