// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Playlist operations
	OpPlaylistRename  Op = "rename playlist"
	OpPlaylistAdd     Op = "add song to playlist"
	OpPlaylistRemove  Op = "remove song from playlist"
	OpPlaylistMove    Op = "move song in playlist"
	OpPlaylistReverse Op = "reverse playlist"
	OpPlaylistSort    Op = "sort playlist"
	OpPlaylistShuffle Op = "shuffle playlist"
	OpPlaylistUndo    Op = "undo playlist changes"

	// Playback operations
	OpQueueAdd Op = "add song to queue"
	OpPlayNext Op = "play next song"
	OpUndoPlay Op = "undo last play"

	// Rating operations
	OpRateSong     Op = "rate song"
	OpRatingSearch Op = "search songs by rating"
	OpRatingDelete Op = "remove song rating"

	// Catalog operations
	OpCatalogAdd     Op = "add song to catalog"
	OpCatalogRemove  Op = "remove song from catalog"
	OpCatalogLongest Op = "list longest songs"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
