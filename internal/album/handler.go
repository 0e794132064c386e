package album

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
	rg.GET("", h.list)                   // GET /albums?purchasable=true
	rg.GET("/:token", h.detail)          // GET /albums/:token (id or slug)
	rg.GET("/:token/players", h.players) // GET /albums/:token/players
}

// RegisterGroupRoutes mounts the editorial grouping on its own prefix.
func (h *Handler) RegisterGroupRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.groups) // GET /groups
}

func (h *Handler) list(c *gin.Context) {
	purchasable := c.Query("purchasable") == "true"
	items, err := h.Resolver.Albums(c.Request.Context(), purchasable)
	if err != nil {
		fail(c, "list failed", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) detail(c *gin.Context) {
	d, err := h.Resolver.AlbumDetail(c.Request.Context(), c.Param("token"))
	if err != nil {
		fail(c, "get failed", err)
		return
	}
	if d == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "album not found"})
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *Handler) players(c *gin.Context) {
	apps, err := h.Resolver.AlbumPlayers(c.Request.Context(), c.Param("token"))
	if err != nil {
		fail(c, "players failed", err)
		return
	}
	if apps == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "album not found"})
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *Handler) groups(c *gin.Context) {
	buckets, err := h.Resolver.Groups(c.Request.Context())
	if err != nil {
		fail(c, "groups failed", err)
		return
	}
	c.JSON(http.StatusOK, buckets)
}

func fail(c *gin.Context, msg string, err error) {
	log.Printf("[api] %s %s (request %s): %v", c.Request.Method, c.Request.URL.Path, middleware.GetRequestID(c), err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
