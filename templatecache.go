package main

import (
	"bytes"
	"context"
	"fmt"
	"hash/fnv"
	"html/template"
	"net/url"
	"strconv"
	"time"

	"github.com/golang/groupcache"
	"github.com/penquinx/docsite/docs"
)

// articleTemplate renders the body of a documentation page without the page frame.
const articleTemplate = "article"

// ctxKey is the type used to hold data passed to a template execution.
type ctxKey string

// articleCache caches rendered article fragments. Fragments depend only on
// the page and its place in the reading order, never on the visitor.
type articleCache struct {
	group    *groupcache.Group
	duration time.Duration
}

func newArticleCache(s *site, name string, cacheBytes int64, cacheDuration time.Duration) *articleCache {
	return &articleCache{
		duration: cacheDuration,
		group: groupcache.NewGroup(name, cacheBytes, groupcache.GetterFunc(
			func(ctx context.Context, key string, dest groupcache.Sink) error {
				v, ok := ctx.Value(ctxKey("view")).(*docs.View)
				if !ok {
					return fmt.Errorf("article group: no view for %q", key)
				}
				b, err := s.executeArticle(v)
				if err != nil {
					return fmt.Errorf("article group: %w", err)
				}
				return dest.SetBytes(b)
			})),
	}
}

// get returns the fragment for v, rendering it on a miss. The key includes
// the library modification time so a reload invalidates every entry.
func (c *articleCache) get(v *docs.View, modTime time.Time) (template.HTML, error) {
	var (
		buf groupcache.ByteView
		q   = make(url.Values, 3)
	)
	q.Set("key", v.Key)
	q.Set("mod", strconv.FormatInt(modTime.UnixNano(), 10))
	q.Set("t", strconv.FormatInt(quantize(time.Now(), c.duration, v.Key), 10))
	ctx := context.WithValue(context.Background(), ctxKey("view"), v)
	err := c.group.Get(ctx, q.Encode(), groupcache.ByteViewSink(&buf))
	if err != nil {
		return "", fmt.Errorf("articleCache: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// quantize maps t onto periods of length d so that cache keys change once per
// period. The period boundary is shifted by a hash of key so that entries do
// not all expire at once. A zero duration never expires.
func quantize(t time.Time, d time.Duration, key string) int64 {
	if d <= 0 {
		return 0
	}
	h := fnv.New64a()
	h.Write([]byte(key))
	offset := int64(h.Sum64() % uint64(d))
	return (t.UnixNano() + offset) / int64(d)
}

// article returns the rendered fragment for v, from the cache when enabled.
func (s *site) article(v *docs.View) (template.HTML, error) {
	if s.articles != nil {
		return s.articles.get(v, s.lib.ModTime())
	}
	b, err := s.executeArticle(v)
	if err != nil {
		return "", err
	}
	return template.HTML(b), nil
}

func (s *site) executeArticle(v *docs.View) ([]byte, error) {
	var buf bytes.Buffer
	err := s.tpl.ExecuteTemplate(&buf, articleTemplate, v)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
