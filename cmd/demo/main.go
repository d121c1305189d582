// Scripted walkthrough of the library: builds a catalog, exercises the
// playlist, playback and rating components, and prints each view.
package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/jrouvier/cadence/internal/catalog"
	"github.com/jrouvier/cadence/internal/dashboard"
	"github.com/jrouvier/cadence/internal/playback"
	"github.com/jrouvier/cadence/internal/playlist"
	"github.com/jrouvier/cadence/internal/rating"
	"github.com/jrouvier/cadence/internal/songlist"
)

func main() {
	store := catalog.NewStore()
	songs := []catalog.Song{
		{ID: 1, Name: "Song A", Artists: []string{"Artist A"}, Duration: 180 * time.Second},
		{ID: 2, Name: "Song B", Artists: []string{"Artist B"}, Duration: 240 * time.Second},
		{ID: 3, Name: "Song C", Artists: []string{"Artist C"}, Duration: 200 * time.Second},
		{ID: 4, Name: "Song D", Artists: []string{"Artist D", "Artist B"}, Duration: 300 * time.Second},
	}
	for _, song := range songs {
		if err := store.Add(song); err != nil {
			log.Fatalf("Failed to seed catalog: %v", err)
		}
	}

	rng := rand.New(rand.NewPCG(1, 2))
	pl := playlist.New("My Favorite Songs", store)
	dash := dashboard.New(pl, playback.New(), rating.New(), store, rng)

	for _, song := range songs {
		dash.AddSongToPlaylist(song.ID)
	}
	fmt.Println(dash.PlaylistView())

	dash.AddPlaylistToQueue()
	fmt.Println()
	fmt.Println(dash.PlaybackView())

	if err := dash.PlayNextSong(); err != nil {
		log.Fatalf("Failed to play next song: %v", err)
	}
	fmt.Println()
	fmt.Println(dash.PlaybackView())

	if err := dash.RateSong(1, 4.5); err != nil {
		log.Fatalf("Failed to rate song: %v", err)
	}
	fmt.Println()
	fmt.Println("Snapshot")
	fmt.Println(dash.Snapshot(5))

	if err := dash.SortPlaylist(songlist.SortByDuration, true); err != nil {
		log.Fatalf("Failed to sort playlist: %v", err)
	}
	fmt.Println()
	fmt.Println(dash.PlaylistView())

	dash.ReversePlaylist()
	fmt.Println()
	fmt.Println(dash.PlaylistView())

	if err := dash.ShufflePlaylist(); err != nil {
		log.Fatalf("Failed to shuffle playlist: %v", err)
	}
	fmt.Println()
	fmt.Println(dash.PlaylistView())

	if err := dash.UndoLastPlay(); err != nil {
		log.Fatalf("Failed to undo last play: %v", err)
	}
	fmt.Println()
	fmt.Println(dash.PlaybackView())

	dash.RenamePlaylist("My Updated Playlist")
	fmt.Println()
	fmt.Println(dash.PlaylistView())

	fmt.Println()
	fmt.Println(dash.SearchSong(3))

	fmt.Println()
	fmt.Println("Snapshot")
	fmt.Println(dash.Snapshot(5))

	if err := dash.UndoPlaylistChanges(1); err != nil {
		log.Fatalf("Failed to undo playlist changes: %v", err)
	}
	fmt.Println()
	fmt.Println(dash.PlaylistView())
}
