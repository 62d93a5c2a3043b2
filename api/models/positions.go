package models

import "github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/storage"

type PositionCreateRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type PositionUpdateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type PositionResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

func TransformPositionFromStorage(p *storage.Position) PositionResponse {
	return PositionResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Order:       p.Order,
	}
}
