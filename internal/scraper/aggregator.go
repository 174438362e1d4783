package scraper

import (
	"context"
	"errors"
	"sync"

	"nbanews/internal/story"
)

var ErrUnknownSource = errors.New("unknown news source")

// Aggregator collects top stories across a fixed list of sites.
type Aggregator struct {
	scraper *Scraper
	sites   []Site
}

func NewAggregator(scraper *Scraper, sites []Site) *Aggregator {
	return &Aggregator{scraper: scraper, sites: sites}
}

// Sources returns the aggregated sites.
func (a *Aggregator) Sources() []Site {
	return a.sites
}

// Top scrapes every site concurrently. Stories are grouped by site in site
// order; a site that fails contributes nothing.
func (a *Aggregator) Top(ctx context.Context) []story.Story {
	perSite := make([][]story.Story, len(a.sites))
	var wg sync.WaitGroup
	for i, site := range a.sites {
		wg.Add(1)
		go func() {
			defer wg.Done()
			articles, err := a.scraper.TopArticles(ctx, site)
			if err != nil {
				a.scraper.debugf("error fetching from %s: %v", site.Name, err)
				return
			}
			perSite[i] = articles
		}()
	}
	wg.Wait()

	all := []story.Story{}
	for _, articles := range perSite {
		all = append(all, articles...)
	}
	return all
}

// TopFrom scrapes only the site called source.
func (a *Aggregator) TopFrom(ctx context.Context, source string) ([]story.Story, error) {
	site, ok := Lookup(a.sites, source)
	if !ok {
		return nil, ErrUnknownSource
	}
	return a.scraper.TopArticles(ctx, site)
}
