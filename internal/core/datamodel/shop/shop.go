package shop

import (
	categoryDatamodel "github.com/frahmantamala/shopfront/internal/core/datamodel/category"
)

// Shop is the remote API's representation of a shop. Depending on the
// endpoint the category arrives as an id, an embedded object, or both.
type Shop struct {
	ID          int64                           `json:"id"`
	Title       string                          `json:"title"`
	Description string                          `json:"description"`
	CategoryID  *int64                          `json:"categoryId,omitempty"`
	Category    *categoryDatamodel.ShopCategory `json:"category,omitempty"`
}

// CreateShopRequest is the body of POST /api/Shop.
type CreateShopRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CategoryID  int64  `json:"categoryId"`
}
