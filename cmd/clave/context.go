package main

import (
	"database/sql"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"americanclave/internal/catalog"
	"americanclave/internal/covers"
	"americanclave/internal/source"
	"americanclave/pkg/database"
	"americanclave/pkg/utils"
)

type commandContext struct {
	configFlag *string
	jsonFlag   *bool

	configOnce sync.Once
	config     *utils.Config
	configErr  error

	db *sql.DB
}

func newCommandContext(configFlag *string, jsonFlag *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		jsonFlag:   jsonFlag,
	}
}

func (c *commandContext) ensureConfig() (*utils.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := utils.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) jsonOutput() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}

func (c *commandContext) coverBuilder() covers.Builder {
	cfg, err := c.ensureConfig()
	if err != nil || cfg == nil {
		return covers.NewBuilder(utils.Default().R2.PublicURL)
	}
	return covers.NewBuilder(cfg.R2.PublicURL)
}

// mirrorDB opens the mirror database once per invocation.
func (c *commandContext) mirrorDB() (*sql.DB, error) {
	if c.db != nil {
		return c.db, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	db, err := database.OpenMigrated(cfg.Database())
	if err != nil {
		return nil, err
	}
	c.db = db
	return db, nil
}

// catalogSource returns the configured catalog source.
func (c *commandContext) catalogSource() (catalog.Source, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Source.Kind == utils.SourceMirror {
		db, err := c.mirrorDB()
		if err != nil {
			return nil, err
		}
		return source.NewMirror(db), nil
	}
	return c.worker()
}

func (c *commandContext) worker() (*source.Worker, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return source.NewWorker(cfg.Source.WorkerURL, cfg.Timeout()), nil
}

func (c *commandContext) resolver() (*catalog.Resolver, error) {
	src, err := c.catalogSource()
	if err != nil {
		return nil, err
	}
	return catalog.NewResolver(src, c.coverBuilder(), nil), nil
}

func (c *commandContext) close() {
	if c.db != nil {
		_ = c.db.Close()
		c.db = nil
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
