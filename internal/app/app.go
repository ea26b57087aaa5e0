package app

import (
	"graphview/internal/catalog"
	"graphview/internal/services/plotter"
)

// App bundles the catalog and plotter for the commands and the viewer.
type App struct {
	Catalog *catalog.Catalog
	Plotter *plotter.Service
	Config  Config
}

// New constructs the dependency graph from cfg.
func New(cfg Config) *App {
	cat := catalog.New()
	return &App{
		Catalog: cat,
		Plotter: plotter.New(cat),
		Config:  cfg.withDefaults(),
	}
}
