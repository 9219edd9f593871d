package category

type CategoryResponse struct {
	ID               int64              `json:"id"`
	Title            string             `json:"title"`
	ShopID           int64              `json:"shopId"`
	ParentCategoryID *int64             `json:"parentCategoryId,omitempty"`
	SubCategories    []CategoryResponse `json:"subCategories,omitempty"`
}

type CategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

type CreateCategoryDTO struct {
	Title            string `json:"title"`
	ParentCategoryID *int64 `json:"parentCategoryId,omitempty"`
}
