package player

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"americanclave/internal/catalog"
	"americanclave/internal/middleware"
)

type Handler struct {
	Resolver *catalog.Resolver
}

func NewHandler(r *catalog.Resolver) *Handler {
	return &Handler{Resolver: r}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list)                // GET /players?q=name
	rg.GET("/:slug", h.detail)        // GET /players/:slug
	rg.GET("/:slug/albums", h.albums) // GET /players/:slug/albums
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.Resolver.PlayerDirectory(c.Request.Context(), c.Query("q"))
	if err != nil {
		fail(c, "list failed", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) detail(c *gin.Context) {
	p, err := h.Resolver.PlayerDetail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		fail(c, "get failed", err)
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "player not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) albums(c *gin.Context) {
	credits, err := h.Resolver.PlayerAlbums(c.Request.Context(), c.Param("slug"))
	if err != nil {
		fail(c, "albums failed", err)
		return
	}
	if credits == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "player not found"})
		return
	}
	c.JSON(http.StatusOK, credits)
}

func fail(c *gin.Context, msg string, err error) {
	log.Printf("[api] %s %s (request %s): %v", c.Request.Method, c.Request.URL.Path, middleware.GetRequestID(c), err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
