package models

import "time"

// Default rendering parameters applied when a client omits them.
const (
	DefaultVideoHeight  = 1920
	DefaultVideoWidth   = 1080
	DefaultVideoQuality = 80
)

// Video is a catalog entry. Only metadata is stored here; the media itself
// lives behind the URLs.
type Video struct {
	ID           string
	Title        string
	Description  string
	VideoURL     string
	ThumbnailURL string
	Controls     bool
	Height       int
	Width        int
	Quality      int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
