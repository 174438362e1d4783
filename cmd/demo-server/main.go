package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"nbanews/internal/api"
	"nbanews/internal/scraper"
	"nbanews/internal/story"
)

func main() {
	addr := flag.String("addr", "localhost:8080", "Address to serve the canned stories on")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := log.New(os.Stdout, "[demo-server] ", log.LstdFlags)
	logger.Printf("canned top stories at http://%s/top", *addr)
	if err := api.Serve(ctx, *addr, createHandler(), logger); err != nil {
		logger.Fatalf("demo server: %v", err)
	}
}

// createHandler serves canned stories in the same shape as the real API
func createHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/top", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, demoStories)
	})
	mux.HandleFunc("/top/", topFromSourceHandler)
	mux.HandleFunc("/sources", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, scraper.Sites())
	})
	return mux
}

func topFromSourceHandler(w http.ResponseWriter, r *http.Request) {
	source := strings.TrimPrefix(r.URL.Path, "/top/")
	if _, ok := scraper.Lookup(scraper.Sites(), source); !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"success": false,
			"error":   "source_not_found",
			"message": "News source not found",
		})
		return
	}

	filtered := []story.Story{}
	for _, s := range demoStories {
		if s.Source == source {
			filtered = append(filtered, s)
		}
	}
	writeJSON(w, http.StatusOK, filtered)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

var demoStories = []story.Story{
	{
		Title:    "Nuggets edge Lakers in overtime thriller",
		Subtitle: "Jokic finishes with a triple-double as Denver holds on late.",
		Author:   "Demo Writer",
		Date:     "January 12, 2025",
		BaseURL:  "https://www.nba.com",
		URL:      "https://www.nba.com/news/demo-nuggets-lakers",
		Source:   "nba",
	},
	{
		Title:    "Power Rankings: The West is wide open",
		Subtitle: "Six teams within two games of the top seed at the midway point.",
		Author:   "Demo Writer",
		Date:     "January 13, 2025",
		BaseURL:  "https://www.nba.com",
		URL:      "https://www.nba.com/news/demo-power-rankings",
		Source:   "nba",
	},
	{
		Title:    "Trade deadline primer: who is buying?",
		Subtitle: "",
		Author:   "Demo Analyst",
		Date:     "Jan 14, 2025",
		BaseURL:  "https://espn.com",
		URL:      "https://espn.com/nba/story/demo-trade-deadline",
		Source:   "espn",
	},
}
