package shop

import (
	"strconv"

	"github.com/frahmantamala/shopfront/internal/category"
	shopDatamodel "github.com/frahmantamala/shopfront/internal/core/datamodel/shop"
)

type Shop struct {
	ID          int64
	Title       string
	Description string
	CategoryID  *int64
	Category    *category.Category
}

// CategoryLabel prefers the embedded category title over the bare id.
func (s Shop) CategoryLabel() string {
	if s.Category != nil && s.Category.Title != "" {
		return s.Category.Title
	}
	if s.CategoryID != nil {
		return strconv.FormatInt(*s.CategoryID, 10)
	}
	return ""
}

func (s Shop) Selected() category.SelectedShop {
	return category.SelectedShop{ID: s.ID, Title: s.Title}
}

func (s Shop) ToResponse() ShopResponse {
	resp := ShopResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		CategoryID:  s.CategoryID,
	}
	if s.Category != nil {
		c := s.Category.ToResponse()
		resp.Category = &c
	}
	return resp
}

func FromDataModel(s *shopDatamodel.Shop) Shop {
	domain := Shop{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		CategoryID:  s.CategoryID,
	}
	if s.Category != nil {
		c := category.FromDataModel(s.Category)
		domain.Category = &c
		if domain.CategoryID == nil && c.ID != 0 {
			id := c.ID
			domain.CategoryID = &id
		}
	}
	return domain
}

// Find returns the shop with id from shops, or nil.
func Find(shops []Shop, id int64) *Shop {
	for i := range shops {
		if shops[i].ID == id {
			return &shops[i]
		}
	}
	return nil
}
