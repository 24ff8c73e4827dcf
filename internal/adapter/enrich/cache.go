package enrich

import (
	"context"
	"time"
)

// Page is a fetched website as kept in the page cache.
type Page struct {
	URL       string        `json:"url"`
	FinalURL  string        `json:"final_url"`
	Status    int           `json:"status"`
	Body      string        `json:"body"`
	Elapsed   time.Duration `json:"elapsed"`
	FetchedAt time.Time     `json:"fetched_at"`
}

// PageCache stores fetched pages by URL. A miss returns ok == false and a
// nil error.
type PageCache interface {
	Get(ctx context.Context, url string) (page Page, ok bool, err error)
	Set(ctx context.Context, page Page) error
}

// NopCache never stores anything.
type NopCache struct{}

func (NopCache) Get(context.Context, string) (Page, bool, error) { return Page{}, false, nil }
func (NopCache) Set(context.Context, Page) error                 { return nil }
