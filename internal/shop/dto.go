package shop

import (
	"github.com/frahmantamala/shopfront/internal/category"
	"github.com/frahmantamala/shopfront/internal/core/result"
)

type ShopResponse struct {
	ID          int64                      `json:"id"`
	Title       string                     `json:"title"`
	Description string                     `json:"description"`
	CategoryID  *int64                     `json:"categoryId,omitempty"`
	Category    *category.CategoryResponse `json:"category,omitempty"`
}

type ShopsResponse struct {
	Shops []ShopResponse `json:"shops"`
}

type CreateShopDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CategoryID  int64  `json:"categoryId"`
}

// ListPage is the view model of the shop list, with the category modal when a shop is selected.
type ListPage struct {
	Shops result.Result[[]Shop]
	Panel *category.Panel
}

type ErrorPage struct {
	Heading string
	Message string
}
