package enrich

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach-engine/internal/config/configs"
)

const agencyPage = `<!doctype html>
<html><head>
<title>Bright Pixel Studio</title>
<meta name="viewport" content="width=device-width">
</head><body>
<a href="mailto:Hello@BrightPixel.io?subject=Hi">Say hi</a>
<p>Press: press@brightpixel.io or logo@2x.png</p>
<a href="https://www.instagram.com/brightpixel/">Instagram</a>
<a href="https://linkedin.com/company/bright-pixel">LinkedIn</a>
<a href="https://facebook.com/">Share</a>
<a href="/contact">Contact</a>
</body></html>`

type memCache struct {
	mu    sync.Mutex
	pages map[string]Page
}

func (c *memCache) Get(_ context.Context, url string) (Page, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.pages[url]
	return p, ok, nil
}

func (c *memCache) Set(_ context.Context, p Page) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages[p.URL] = p
	return nil
}

func newTestInspector(cache PageCache) *Inspector {
	return NewInspector(configs.Enrich{
		LeadTimeout: 2 * time.Second,
		RatePerHost: 100,
		Burst:       10,
		SlowAfter:   time.Second,
		UserAgent:   "test-agent",
	}, cache, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestInspectExtractsContactsAndIssues(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "test-agent", r.UserAgent())
		_, _ = io.WriteString(w, agencyPage)
	}))
	defer srv.Close()

	cache := &memCache{pages: map[string]Page{}}
	in := newTestInspector(cache)

	rep, err := in.Inspect(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.True(t, rep.Reachable)
	assert.Equal(t, http.StatusOK, rep.Status)
	assert.Equal(t, []string{"hello@brightpixel.io", "press@brightpixel.io"}, rep.Emails)
	assert.Equal(t, []string{
		"https://www.instagram.com/brightpixel/",
		"https://linkedin.com/company/bright-pixel",
	}, rep.SocialLinks)
	assert.ElementsMatch(t, []string{IssueNoSSL, IssueMissingMetaDesc}, rep.Issues)

	again, err := in.Inspect(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, rep.Emails, again.Emails)
	assert.Equal(t, int32(1), hits.Load(), "second inspection is served from the cache")
}

func TestInspectBrokenPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	rep, err := newTestInspector(nil).Inspect(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.False(t, rep.Reachable)
	assert.Equal(t, http.StatusNotFound, rep.Status)
	assert.Equal(t, []string{IssueBrokenPage}, rep.Issues)
}

func TestInspectDoesNotCacheErrorPages(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, agencyPage)
	}))
	defer srv.Close()

	cache := &memCache{pages: map[string]Page{}}
	in := newTestInspector(cache)

	rep, err := in.Inspect(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.False(t, rep.Reachable)
	assert.Empty(t, cache.pages)

	rep, err = in.Inspect(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.True(t, rep.Reachable)
	assert.Equal(t, http.StatusOK, rep.Status)
	assert.Equal(t, int32(2), hits.Load())
	assert.Len(t, cache.pages, 1)
}

func TestRefetchBypassesCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			_, _ = io.WriteString(w, `<html><head><title>Old</title></head><body></body></html>`)
			return
		}
		_, _ = io.WriteString(w, agencyPage)
	}))
	defer srv.Close()

	cache := &memCache{pages: map[string]Page{}}
	in := newTestInspector(cache)

	rep, err := in.Inspect(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Empty(t, rep.Emails)

	rep, err = in.Refetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello@brightpixel.io", "press@brightpixel.io"}, rep.Emails)
	assert.Equal(t, int32(2), hits.Load())

	// the fresh page replaced the cached one
	rep, err = in.Inspect(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, rep.Emails, 2)
	assert.Equal(t, int32(2), hits.Load())
}

func TestInspectUnreachableIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	rep, err := newTestInspector(nil).Inspect(context.Background(), addr)
	require.NoError(t, err)
	assert.False(t, rep.Reachable)
	assert.Equal(t, []string{IssueBrokenPage}, rep.Issues)
}

func TestInspectRejectsEmptyURL(t *testing.T) {
	_, err := newTestInspector(nil).Inspect(context.Background(), "  ")
	assert.Error(t, err)
}

func TestInspectCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, agencyPage)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestInspector(nil).Inspect(ctx, srv.URL)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHostLimiterSeparatesHosts(t *testing.T) {
	hl := NewHostLimiter(1, 1)
	ctx := context.Background()

	require.NoError(t, hl.Wait(ctx, "https://a.io/x"))
	require.NoError(t, hl.Wait(ctx, "https://b.io"))

	short, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	assert.Error(t, hl.Wait(short, "https://www.a.io/y"), "same host must wait for its bucket")
}
