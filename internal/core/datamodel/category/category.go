package category

// ShopCategory is the remote API's representation of a category.
// ParentCategoryID is nil for top-level categories.
type ShopCategory struct {
	ID               int64          `json:"id"`
	Title            string         `json:"title"`
	ShopID           int64          `json:"shopId"`
	ParentCategoryID *int64         `json:"parentCategoryId,omitempty"`
	SubCategories    []ShopCategory `json:"subCategories,omitempty"`
}

// CreateShopCategoryRequest is the body of POST /api/ShopCategory.
// A nil ParentCategoryID is dropped from the JSON, not sent as null.
type CreateShopCategoryRequest struct {
	Title            string `json:"title"`
	ShopID           int64  `json:"shopId"`
	ParentCategoryID *int64 `json:"parentCategoryId,omitempty"`
}
