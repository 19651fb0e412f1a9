package handler

import (
	"github.com/vinylshop/record-store/internal/core/domain"
	"github.com/vinylshop/record-store/internal/core/ports"
)

// --- Request → Service input ---

func toSignupInput(r signupRequest) ports.SignupInput {
	return ports.SignupInput{Name: r.Name, Email: r.Email, Password: r.Password}
}

func toUpdateProfileInput(r updateProfileRequest) ports.UpdateProfileInput {
	return ports.UpdateProfileInput{Name: r.Name, Password: r.Password, Email: r.Email}
}

func toCreateProductInput(r createProductRequest) ports.CreateProductInput {
	return ports.CreateProductInput{
		Artist:      r.Artist,
		AlbumName:   r.AlbumName,
		Description: r.Description,
		Details:     r.Details,
		TrackList:   r.TrackList,
		Genre:       r.Genre,
		Price:       r.Price,
		Stock:       r.Stock,
	}
}

// --- Domain → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.UTC(),
		UpdatedAt: u.UpdatedAt.UTC(),
	}
}

func toLoginResponse(r *ports.LoginResult) loginResponse {
	return loginResponse{
		User: loginUserResponse{
			Name:  r.User.Name,
			Email: r.User.Email,
			ID:    r.User.ID,
			Role:  r.User.Role,
		},
		Token: r.Token,
	}
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Artist:      p.Artist,
		AlbumName:   p.AlbumName,
		Description: p.Description,
		Details:     p.Details,
		TrackList:   p.TrackList,
		Genre:       p.Genre,
		Price:       p.Price,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt.UTC(),
		UpdatedAt:   p.UpdatedAt.UTC(),
	}
}

func toListProductsResponse(r *ports.ListProductsResult) listProductsResponse {
	items := make([]productResponse, len(r.Items))
	for i, p := range r.Items {
		items[i] = toProductResponse(p)
	}
	return listProductsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}
