package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpPlaylistAdd,
			err:      nil,
			expected: "",
		},
		{
			name:     "playlist operation",
			op:       OpPlaylistShuffle,
			err:      errors.New("too many songs by a single artist"),
			expected: "Failed to shuffle playlist: too many songs by a single artist",
		},
		{
			name:     "playback operation",
			op:       OpPlayNext,
			err:      errors.New("no songs to play next"),
			expected: "Failed to play next song: no songs to play next",
		},
		{
			name:     "rating operation",
			op:       OpRateSong,
			err:      errors.New("rating must be between 0 and 5"),
			expected: "Failed to rate song: rating must be between 0 and 5",
		},
		{
			name:     "catalog operation",
			op:       OpCatalogAdd,
			err:      errors.New("id 4 taken"),
			expected: "Failed to add song to catalog: id 4 taken",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpPlaylistRemove,
			context:  "Song A",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpPlaylistRemove,
			context:  "Song A",
			err:      errors.New("index out of range"),
			expected: "Failed to remove song from playlist 'Song A': index out of range",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpUndoPlay,
			context:  "",
			err:      errors.New("no history to undo"),
			expected: "Failed to undo last play: no history to undo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}
