package handler

import "time"

type createProductRequest struct {
	Artist      string   `json:"artist"`
	AlbumName   string   `json:"albumName"`
	Description string   `json:"description"`
	Details     []string `json:"details"`
	TrackList   string   `json:"trackList"`
	Genre       []string `json:"genre"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
}

type listProductsQuery struct {
	Page   int    `json:"page"   query:"page"   validate:"omitempty,min=1,max=100000"`
	Limit  int    `json:"limit"  query:"limit"  validate:"omitempty,min=1,max=100"`
	Genre  string `json:"genre"  query:"genre"  validate:"omitempty,max=32"`
	Artist string `json:"artist" query:"artist"`
}

type productResponse struct {
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

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type listProductsResponse struct {
	Data       []productResponse  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
