package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"nbanews/internal/scraper"
	"nbanews/internal/story"
)

// TopStories is the source of the stories served by the API.
type TopStories interface {
	Top(ctx context.Context) []story.Story
	TopFrom(ctx context.Context, source string) ([]story.Story, error)
	Sources() []scraper.Site
}

type handler struct {
	stories TopStories
	logger  *log.Logger
}

// NewRouter wires the top stories routes. Any origin may call them, since the
// front-end is served from elsewhere.
func NewRouter(stories TopStories, logger *log.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	r.Use(cors.New(config))

	h := &handler{stories: stories, logger: logger}
	r.GET("/top", h.getTop)
	r.GET("/top/:source", h.getTopFromSource)
	r.GET("/sources", h.getSources)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now()})
	})

	return r
}

func (h *handler) getTop(c *gin.Context) {
	c.JSON(http.StatusOK, h.stories.Top(c.Request.Context()))
}

func (h *handler) getTopFromSource(c *gin.Context) {
	source := c.Param("source")

	stories, err := h.stories.TopFrom(c.Request.Context(), source)
	if errors.Is(err, scraper.ErrUnknownSource) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Success: false,
			Error:   "source_not_found",
			Message: "News source not found",
		})
		return
	}
	if err != nil {
		h.logger.Printf("error fetching from %s: %v", source, err)
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Success: false,
			Error:   "fetch_error",
			Message: "Failed to fetch news: " + err.Error(),
		})
		return
	}

	if stories == nil {
		stories = []story.Story{}
	}
	c.JSON(http.StatusOK, stories)
}

func (h *handler) getSources(c *gin.Context) {
	c.JSON(http.StatusOK, h.stories.Sources())
}
