package main

import (
	"time"

	"github.com/jrouvier/cadence/internal/catalog"
	"github.com/jrouvier/cadence/internal/config"
	"github.com/jrouvier/cadence/internal/dashboard"
)

// seedSongs is the built-in demo catalog.
var seedSongs = []catalog.Song{
	{ID: 1, Name: "Midnight Drive", Artists: []string{"The Vantas"}, Duration: 3*time.Minute + 12*time.Second},
	{ID: 2, Name: "Glass Rivers", Artists: []string{"Mirela"}, Duration: 4 * time.Minute},
	{ID: 3, Name: "Second Sun", Artists: []string{"The Vantas", "Mirela"}, Duration: 2*time.Minute + 47*time.Second},
	{ID: 4, Name: "Coastal", Artists: []string{"Hollow Pines"}, Duration: 5*time.Minute + 2*time.Second},
	{ID: 5, Name: "Afterlight", Artists: []string{"Mirela"}, Duration: 3*time.Minute + 38*time.Second},
	{ID: 6, Name: "North Station", Artists: []string{"Hollow Pines"}, Duration: 4*time.Minute + 21*time.Second},
	{ID: 7, Name: "Paper Maps", Artists: []string{"Ilse Brandt"}, Duration: 2*time.Minute + 58*time.Second},
	{ID: 8, Name: "Low Tide", Artists: []string{"The Vantas"}, Duration: 6*time.Minute + 5*time.Second},
}

// openCatalog builds the configured catalog backend and loads the seed
// songs into it.
func openCatalog(cfg *config.Config) (dashboard.Catalog, error) {
	if cfg.UseSQLiteCatalog() {
		store, err := catalog.OpenSQLite(cfg.Catalog.Path)
		if err != nil {
			return nil, err
		}
		if store.Len() == 0 {
			if err := store.AddAll(seedSongs); err != nil {
				store.Close()
				return nil, err
			}
		}
		return store, nil
	}

	store := catalog.NewStore()
	for _, song := range seedSongs {
		if err := store.Add(song); err != nil {
			return nil, err
		}
	}
	return store, nil
}
