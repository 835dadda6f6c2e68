package credits

import (
	"net/http"
	"net/url"
	"sync"
	"time"
)

// Store is a per-browser key/value store.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// CookieStore keeps values in cookies. Reads come from the request and writes
// go to the response, so a value set during a request is visible to later
// reads of the same store.
type CookieStore struct {
	r       *http.Request
	w       http.ResponseWriter
	path    string
	written map[string]string
}

// cookieLifetime keeps values until the user clears them.
const cookieLifetime = 10 * 365 * 24 * time.Hour

// NewCookieStore returns a store reading r and writing w. Cookies are scoped to path.
func NewCookieStore(w http.ResponseWriter, r *http.Request, path string) *CookieStore {
	if path == "" {
		path = "/"
	}
	return &CookieStore{r: r, w: w, path: path, written: make(map[string]string)}
}

// Get returns the value stored under key.
func (s *CookieStore) Get(key string) (string, bool) {
	if v, ok := s.written[key]; ok {
		return v, true
	}
	c, err := s.r.Cookie(key)
	if err != nil {
		return "", false
	}
	v, err := url.QueryUnescape(c.Value)
	if err != nil {
		return c.Value, true
	}
	return v, true
}

// Set stores value under key.
func (s *CookieStore) Set(key, value string) {
	s.written[key] = value
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    url.QueryEscape(value),
		Path:     s.path,
		Expires:  time.Now().Add(cookieLifetime),
		SameSite: http.SameSiteLaxMode,
	})
}

// MemoryStore is a Store held in memory.
type MemoryStore struct {
	mu sync.Mutex
	m  map[string]string
}

// NewMemoryStore returns a store holding the given values.
func NewMemoryStore(values map[string]string) *MemoryStore {
	m := make(map[string]string, len(values))
	for k, v := range values {
		m[k] = v
	}
	return &MemoryStore{m: m}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok
}

func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
}
