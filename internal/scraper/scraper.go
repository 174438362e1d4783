package scraper

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
	"golang.org/x/sync/errgroup"

	"nbanews/internal/config"
	"nbanews/internal/httpclient"
	"nbanews/internal/story"
)

// Scraper reads top stories off news sites.
type Scraper struct {
	client     *httpclient.Client
	timeout    time.Duration
	userAgent  string
	maxWorkers int
	logger     *log.Logger
}

// New constructs a Scraper from the scraper section of the config.
func New(cfg config.ScraperConfig, logger *log.Logger) *Scraper {
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	workers := cfg.MaxWorkers
	if workers <= 0 {
		workers = 5
	}
	return &Scraper{
		client:     httpclient.New(timeout),
		timeout:    timeout,
		userAgent:  cfg.UserAgent,
		maxWorkers: workers,
		logger:     logger,
	}
}

func (s *Scraper) debugf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

// TopLinks returns the article links on the site's listing page, each joined
// onto the site's base URL, in page order.
func (s *Scraper) TopLinks(ctx context.Context, site Site) ([]string, error) {
	c := colly.NewCollector(
		colly.UserAgent(s.userAgent),
		colly.StdlibContext(ctx),
	)
	c.SetRequestTimeout(s.timeout)
	// listing pages are read whatever their status
	c.ParseHTTPErrorResponse = true

	var links []string
	c.OnRequest(func(r *colly.Request) {
		for key, value := range site.Headers {
			r.Headers.Set(key, value)
		}
	})
	c.OnHTML(site.LinkSelector, func(e *colly.HTMLElement) {
		if href, ok := e.DOM.Attr("href"); ok {
			links = append(links, site.BaseURL+href)
		}
	})

	var visitErr error
	c.OnError(func(r *colly.Response, err error) {
		visitErr = err
	})

	if err := c.Visit(site.URL); err != nil {
		return nil, fmt.Errorf("failed to visit %s: %w", site.URL, err)
	}
	c.Wait()
	if visitErr != nil {
		return nil, fmt.Errorf("failed to read %s: %w", site.URL, visitErr)
	}

	return links, nil
}

// TopArticles parses every top link of site. Articles that cannot be fetched
// are skipped; the rest keep the listing order.
func (s *Scraper) TopArticles(ctx context.Context, site Site) ([]story.Story, error) {
	links, err := s.TopLinks(ctx, site)
	if err != nil {
		return nil, err
	}

	parsed := make([]*story.Story, len(links))
	var g errgroup.Group
	g.SetLimit(s.maxWorkers)
	for i, link := range links {
		g.Go(func() error {
			article, err := s.parseArticle(ctx, site, link)
			if err != nil {
				s.debugf("skipping %s: %v", link, err)
				return nil
			}
			parsed[i] = &article
			return nil
		})
	}
	_ = g.Wait()

	articles := make([]story.Story, 0, len(links))
	for _, a := range parsed {
		if a != nil {
			articles = append(articles, *a)
		}
	}
	return articles, nil
}

func (s *Scraper) parseArticle(ctx context.Context, site Site, url string) (story.Story, error) {
	body, err := s.client.GetBody(ctx, url, map[string]string{"User-Agent": s.userAgent})
	if err != nil {
		return story.Story{}, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return story.Story{}, fmt.Errorf("failed to parse %s: %w", url, err)
	}

	return story.Story{
		Title:    firstInnerHTML(doc, site.TitleSelector),
		Subtitle: firstInnerHTML(doc, site.SubtitleSelector),
		Author:   firstInnerHTML(doc, site.AuthorSelector),
		Date:     firstInnerHTML(doc, site.DateSelector),
		BaseURL:  site.BaseURL,
		URL:      url,
		Source:   site.Name,
	}, nil
}

// firstInnerHTML is the inner HTML of the first match, or "" without one.
func firstInnerHTML(doc *goquery.Document, selector string) string {
	if selector == "" {
		return ""
	}
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return ""
	}
	html, err := sel.Html()
	if err != nil {
		return ""
	}
	return html
}
