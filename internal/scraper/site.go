package scraper

// Site describes where a news source lists its top stories and how to read
// each article page.
type Site struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	BaseURL string `json:"base_url"`

	LinkSelector     string `json:"-"`
	TitleSelector    string `json:"-"`
	SubtitleSelector string `json:"-"` // empty when the site has no subtitle
	AuthorSelector   string `json:"-"`
	DateSelector     string `json:"-"`

	// Headers are sent with the listing page request.
	Headers map[string]string `json:"-"`
}

var ESPN = Site{
	Name:             "espn",
	URL:              "https://espn.com/nba",
	BaseURL:          "https://espn.com",
	LinkSelector:     "section[class*=col-three] ul[class*='headlineStack'] > li > a",
	TitleSelector:    "header[class=article-header] > h1",
	SubtitleSelector: "",
	AuthorSelector:   "div:not([class=author-img])[class*=author]",
	DateSelector:     "div[class=article-meta] span[class*=timestamp]",
}

var NBA = Site{
	Name:             "nba",
	URL:              "https://nba.com/news/category/top-stories",
	BaseURL:          "https://www.nba.com",
	LinkSelector:     "article[class*='Article'] > a",
	TitleSelector:    "h1[class*=ahTitle]",
	SubtitleSelector: "p[class*=ahSubtitle]",
	AuthorSelector:   "p[class*=authorName]",
	DateSelector:     "time[class*=ahDate]",
	Headers:          map[string]string{"User-Agent": ""},
}

// Sites returns the supported sources in the order their stories are served.
func Sites() []Site {
	return []Site{ESPN, NBA}
}

// Lookup finds a site by name in sites.
func Lookup(sites []Site, name string) (Site, bool) {
	for _, s := range sites {
		if s.Name == name {
			return s, true
		}
	}
	return Site{}, false
}
