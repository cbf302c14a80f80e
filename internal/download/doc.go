// Package download implements the download session lifecycle on top of
// yt-dlp (via github.com/lrstanley/go-ytdlp): the single-permit guard,
// derivation of the fetch options bundle from configuration, progress
// propagation to the UI, and classification of terminal failures.
package download
