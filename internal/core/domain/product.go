package domain

import "time"

// MaxGenres is the maximum number of genre tags a product may carry.
const MaxGenres = 5

// Product is a catalog entry for a single album release.
type Product struct {
	ID          string    `json:"_id"`
	Artist      string    `json:"artist"`
	AlbumName   string    `json:"albumName"`
	Description string    `json:"description"`
	Details     []string  `json:"details"`
	TrackList   string    `json:"trackList,omitempty"`
	Genre       []string  `json:"genre"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
