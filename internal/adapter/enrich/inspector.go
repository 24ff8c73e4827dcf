// Package enrich fetches lead websites and extracts the contact details and
// quality issues used to rescore leads.
package enrich

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"outreach-engine/internal/config/configs"
	"outreach-engine/internal/core/intake"
	"outreach-engine/internal/core/port"
)

// Website issues reported by Inspect.
const (
	IssueNoSSL           = "no_ssl"
	IssueNotMobile       = "not_mobile_friendly"
	IssueMissingTitle    = "missing_title"
	IssueMissingMetaDesc = "missing_meta_description"
	IssueSlowResponse    = "slow_response"
	IssueBrokenPage      = "broken_page"
)

const maxBody = 2 << 20

var (
	reEmail = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

	socialDomains = []string{
		"linkedin.com",
		"instagram.com",
		"facebook.com",
		"twitter.com",
		"x.com",
		"tiktok.com",
		"youtube.com",
	}

	// asset names such as logo@2x.png look like addresses
	assetSuffixes = []string{".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp"}
)

// Inspector implements port.SiteInspector with net/http and goquery.
type Inspector struct {
	client    *http.Client
	limiter   *HostLimiter
	cache     PageCache
	slowAfter time.Duration
	userAgent string
	logger    *slog.Logger
}

// NewInspector builds an inspector from the enrichment settings. cache may
// be nil.
func NewInspector(cfg configs.Enrich, cache PageCache, logger *slog.Logger) *Inspector {
	if cache == nil {
		cache = NopCache{}
	}
	return &Inspector{
		client:    &http.Client{Timeout: cfg.LeadTimeout},
		limiter:   NewHostLimiter(cfg.RatePerHost, cfg.Burst),
		cache:     cache,
		slowAfter: cfg.SlowAfter,
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

// Inspect fetches raw and reports what it found, answering from the page
// cache when it holds the URL. An unreachable site is a report with
// Reachable false; only a cancelled context or an unusable URL is an error.
func (in *Inspector) Inspect(ctx context.Context, raw string) (port.SiteReport, error) {
	return in.inspect(ctx, raw, true)
}

// Refetch is Inspect without the cache read. The fresh page still
// replaces the cached copy.
func (in *Inspector) Refetch(ctx context.Context, raw string) (port.SiteReport, error) {
	return in.inspect(ctx, raw, false)
}

func (in *Inspector) inspect(ctx context.Context, raw string, useCache bool) (port.SiteReport, error) {
	target, err := normalizeURL(raw)
	if err != nil {
		return port.SiteReport{}, err
	}

	if useCache {
		page, ok, err := in.cache.Get(ctx, target)
		if err != nil {
			in.logger.Warn("page cache read failed", slog.String("url", target), slog.Any("error", err))
		}
		if ok {
			return in.analyze(page), nil
		}
	}

	page, err := in.fetch(ctx, target)
	if err != nil {
		if ctx.Err() != nil {
			return port.SiteReport{}, ctx.Err()
		}
		in.logger.Debug("site unreachable", slog.String("url", target), slog.Any("error", err))
		return port.SiteReport{URL: target, Issues: []string{IssueBrokenPage}}, nil
	}
	// error pages are not cached so a repaired site is seen on the next run
	if page.Status < http.StatusBadRequest {
		if err = in.cache.Set(ctx, page); err != nil {
			in.logger.Warn("page cache write failed", slog.String("url", target), slog.Any("error", err))
		}
	}
	return in.analyze(page), nil
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty website url")
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid website url %q", raw)
	}
	return u.String(), nil
}

func (in *Inspector) fetch(ctx context.Context, target string) (Page, error) {
	if err := in.limiter.Wait(ctx, target); err != nil {
		return Page{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Page{}, err
	}
	req.Header.Set("User-Agent", in.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	start := time.Now()
	resp, err := in.client.Do(req)
	if err != nil {
		return Page{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return Page{}, err
	}
	return Page{
		URL:       target,
		FinalURL:  resp.Request.URL.String(),
		Status:    resp.StatusCode,
		Body:      string(body),
		Elapsed:   time.Since(start),
		FetchedAt: time.Now().UTC(),
	}, nil
}

func (in *Inspector) analyze(page Page) port.SiteReport {
	rep := port.SiteReport{
		URL:     page.URL,
		Status:  page.Status,
		Elapsed: page.Elapsed,
	}
	if page.Status >= http.StatusBadRequest {
		rep.Issues = []string{IssueBrokenPage}
		return rep
	}
	rep.Reachable = true

	final := page.FinalURL
	if final == "" {
		final = page.URL
	}
	if u, err := url.Parse(final); err == nil && u.Scheme != "https" {
		rep.Issues = append(rep.Issues, IssueNoSSL)
	}
	if in.slowAfter > 0 && page.Elapsed > in.slowAfter {
		rep.Issues = append(rep.Issues, IssueSlowResponse)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.Body))
	if err != nil {
		rep.Issues = append(rep.Issues, IssueBrokenPage)
		return rep
	}
	if strings.TrimSpace(doc.Find("title").First().Text()) == "" {
		rep.Issues = append(rep.Issues, IssueMissingTitle)
	}
	if desc, _ := doc.Find(`meta[name="description"]`).Attr("content"); strings.TrimSpace(desc) == "" {
		rep.Issues = append(rep.Issues, IssueMissingMetaDesc)
	}
	if doc.Find(`meta[name="viewport"]`).Length() == 0 {
		rep.Issues = append(rep.Issues, IssueNotMobile)
	}

	rep.Emails = extractEmails(doc)
	rep.SocialLinks = extractSocial(doc)
	return rep
}

func extractEmails(doc *goquery.Document) []string {
	var out []string
	add := func(e string) {
		e = intake.NormalizeEmail(e)
		if !intake.ValidEmail(e) || slices.Contains(out, e) {
			return
		}
		for _, suf := range assetSuffixes {
			if strings.HasSuffix(e, suf) {
				return
			}
		}
		out = append(out, e)
	}

	doc.Find(`a[href^="mailto:"], a[href^="MAILTO:"]`).Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		add(href)
	})
	for _, m := range reEmail.FindAllString(doc.Find("body").Text(), -1) {
		add(m)
	}
	return out
}

func extractSocial(doc *goquery.Document) []string {
	var out []string
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		href = strings.TrimSpace(href)
		host := intake.Host(href)
		if host == "" || !intake.MatchesDomain(host, socialDomains) {
			return
		}
		if u, err := url.Parse(href); err != nil || strings.Trim(u.Path, "/") == "" {
			// bare domain links are share buttons, not profiles
			return
		}
		if !slices.Contains(out, href) {
			out = append(out, href)
		}
	})
	return out
}
