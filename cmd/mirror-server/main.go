package main

import (
	"flag"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"americanclave/internal/catalog"
	"americanclave/internal/source"
	"americanclave/pkg/database"
	"americanclave/pkg/utils"
)

// mirror-server answers the worker's endpoints from the SQLite mirror, so the
// worker client can be developed and demoed offline.
func main() {
	configPath := flag.String("config", "", "config file path")
	addr := flag.String("addr", ":9000", "listen address")
	flag.Parse()

	cfg, _, _, err := utils.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db := database.MustOpen(cfg.Database())
	defer db.Close()
	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	log.Printf("mirror-server listening on http://localhost%s (db %s)", *addr, cfg.Source.DBPath)
	log.Fatal(http.ListenAndServe(*addr, newRouter(source.NewMirror(db))))
}

func newRouter(src catalog.Source) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/albums", func(c *gin.Context) {
		recs, err := src.ListAlbums(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, recs)
	})
	r.HEAD("/albums", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	r.GET("/albums/:id", func(c *gin.Context) {
		id, ok := catalog.ParseID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		rec, err := src.GetAlbum(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if rec == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		// the worker answers detail requests with a one-element array
		c.JSON(http.StatusOK, []any{rec})
	})

	r.GET("/albums/:id/player-songs", func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		rows, err := src.ListAlbumPlayers(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, rows)
	})

	r.GET("/players", func(c *gin.Context) {
		recs, err := src.ListPlayers(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, recs)
	})

	return r
}
