package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jrouvier/cadence/internal/config"
	"github.com/jrouvier/cadence/internal/dashboard"
	"github.com/jrouvier/cadence/internal/errmsg"
	"github.com/jrouvier/cadence/internal/playback"
	"github.com/jrouvier/cadence/internal/playlist"
	"github.com/jrouvier/cadence/internal/rating"
	"github.com/jrouvier/cadence/internal/songlist"
)

var statusBarStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240"))

type model struct {
	dash         *dashboard.Dashboard
	historyLimit int
	status       string
	width        int
	height       int
}

func initialModel() (model, error) {
	cfg, err := config.Load()
	if err != nil {
		return model{}, err
	}

	cat, err := openCatalog(cfg)
	if err != nil {
		return model{}, err
	}

	seed := cfg.ShuffleSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	pl := playlist.New(cfg.GetPlaylistName(), cat)
	pb := playback.New()
	dash := dashboard.New(pl, pb, rating.New(), cat, rng)

	// Start with the whole catalog in the playlist and the queue.
	for _, song := range seedSongs {
		dash.AddSongToPlaylist(song.ID)
	}
	dash.AddPlaylistToQueue()

	return model{
		dash:         dash,
		historyLimit: cfg.GetHistoryLimit(),
		status:       "n: play next  u: undo play  d: sort by duration  r: reverse  s: shuffle  z: undo edit  q: quit",
	}, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "n":
			m.status = report(errmsg.OpPlayNext, m.dash.PlayNextSong())
		case "u":
			m.status = report(errmsg.OpUndoPlay, m.dash.UndoLastPlay())
		case "d":
			m.status = report(errmsg.OpPlaylistSort,
				m.dash.SortPlaylist(songlist.SortByDuration, true))
		case "r":
			m.dash.ReversePlaylist()
			m.status = "Playlist reversed"
		case "s":
			m.status = report(errmsg.OpPlaylistShuffle, m.dash.ShufflePlaylist())
		case "z":
			m.status = report(errmsg.OpPlaylistUndo, m.dash.UndoPlaylistChanges(1))
		}
	}
	return m, nil
}

// report formats op failures for the status bar; success reads as done.
func report(op errmsg.Op, err error) string {
	if err != nil {
		return errmsg.Format(op, err)
	}
	return "Done: " + string(op)
}

func (m model) View() string {
	view := m.dash.Snapshot(m.historyLimit)

	innerWidth := m.width - 2
	if innerWidth < 0 {
		innerWidth = 0
	}
	return view + "\n" + statusBarStyle.Width(innerWidth).Render(m.status)
}

func main() {
	m, err := initialModel()
	if err != nil {
		fmt.Printf("Error initializing: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
