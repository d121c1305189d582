package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a78bfa"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
)

// songLabel renders "Name - Artists (M:SS)" for a song, falling back to
// the bare ID when the catalog misses.
func (d *Dashboard) songLabel(id int64) string {
	song, ok := d.catalog.Lookup(id)
	if !ok {
		return fmt.Sprintf("song #%d", id)
	}
	return fmt.Sprintf("%s - %s (%s)", song.Name, strings.Join(song.Artists, ", "), formatDuration(song.Duration))
}

// PlaylistView renders the playlist name and its songs in order,
// with relative added times.
func (d *Dashboard) PlaylistView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Playlist: "+d.playlist.Name()) + "\n")

	entries := d.playlist.Entries()
	if len(entries) == 0 {
		b.WriteString(mutedStyle.Render("  no songs in the playlist"))
		return b.String()
	}
	for i, e := range entries {
		fmt.Fprintf(&b, "  %2d. %s %s\n", i, d.songLabel(e.Song),
			mutedStyle.Render("added "+humanize.Time(e.AddedAt)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// CurrentSongView renders the currently playing song, or a placeholder.
func (d *Dashboard) CurrentSongView() string {
	id, err := d.playback.Current()
	if err != nil {
		return mutedStyle.Render("No song currently playing")
	}
	return d.songLabel(id)
}

// QueueView renders the pending queue, current song first.
func (d *Dashboard) QueueView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Queue") + "\n")

	queued := d.playback.Queued()
	if len(queued) == 0 {
		b.WriteString(mutedStyle.Render("  queue is empty"))
		return b.String()
	}
	for i, id := range queued {
		marker := "  "
		if i == 0 {
			marker = "▶ "
		}
		fmt.Fprintf(&b, "  %s%s\n", marker, d.songLabel(id))
	}
	return strings.TrimRight(b.String(), "\n")
}

// HistoryView renders up to n recent plays, most recent first.
// n <= 0 renders the whole history.
func (d *Dashboard) HistoryView(n int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("History") + "\n")

	recent := d.playback.Recent(n)
	if len(recent) == 0 {
		b.WriteString(mutedStyle.Render("  no songs played yet"))
		return b.String()
	}
	for _, id := range recent {
		fmt.Fprintf(&b, "  %s\n", d.songLabel(id))
	}
	return strings.TrimRight(b.String(), "\n")
}

// PlaybackView renders the queue and the full history together.
func (d *Dashboard) PlaybackView() string {
	return d.QueueView() + "\n" + d.HistoryView(0)
}

// SearchSong renders one catalog record by ID.
func (d *Dashboard) SearchSong(id int64) string {
	song, ok := d.catalog.Lookup(id)
	if !ok {
		return "Song not found"
	}
	return fmt.Sprintf("ID: %d\nName: %s\nArtists: %s\nDuration: %s",
		song.ID, song.Name, strings.Join(song.Artists, ", "), formatDuration(song.Duration))
}

// LongestSongs renders the n longest catalog songs, duration descending.
func (d *Dashboard) LongestSongs(n int) (string, error) {
	songs, err := d.catalog.Longest(n)
	if err != nil {
		return "", err
	}
	if len(songs) == 0 {
		return "No songs available", nil
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Longest Songs") + "\n")
	for _, song := range songs {
		fmt.Fprintf(&b, "  %s\n", d.songLabel(song.ID))
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// RecentlyPlayed renders the last n plays.
func (d *Dashboard) RecentlyPlayed(n int) string {
	return d.HistoryView(n)
}

// Snapshot renders the full application state: rating counts, longest
// songs, recent plays, the playlist and the playback state.
func (d *Dashboard) Snapshot(historyLimit int) string {
	sections := []string{d.RatingSummary()}
	if longest, err := d.LongestSongs(5); err == nil {
		sections = append(sections, longest)
	}
	sections = append(sections,
		d.RecentlyPlayed(historyLimit),
		d.PlaylistView(),
		d.PlaybackView(),
	)
	return strings.Join(sections, "\n\n")
}

func formatDuration(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
