package category

import (
	categoryDatamodel "github.com/frahmantamala/shopfront/internal/core/datamodel/category"
)

type Category struct {
	ID               int64
	Title            string
	ShopID           int64
	ParentCategoryID *int64
	SubCategories    []Category
}

func (c Category) IsTopLevel() bool {
	return c.ParentCategoryID == nil
}

func (c Category) HasSubCategories() bool {
	return len(c.SubCategories) > 0
}

func (c Category) ToResponse() CategoryResponse {
	resp := CategoryResponse{
		ID:               c.ID,
		Title:            c.Title,
		ShopID:           c.ShopID,
		ParentCategoryID: c.ParentCategoryID,
	}
	for i := range c.SubCategories {
		resp.SubCategories = append(resp.SubCategories, c.SubCategories[i].ToResponse())
	}
	return resp
}

func FromDataModel(c *categoryDatamodel.ShopCategory) Category {
	domain := Category{
		ID:               c.ID,
		Title:            c.Title,
		ShopID:           c.ShopID,
		ParentCategoryID: c.ParentCategoryID,
	}
	for i := range c.SubCategories {
		domain.SubCategories = append(domain.SubCategories, FromDataModel(&c.SubCategories[i]))
	}
	return domain
}

// FilterByShop keeps the categories owned by shopID, in their original order.
// The remote API cannot filter, so this runs over the full category list.
func FilterByShop(all []categoryDatamodel.ShopCategory, shopID int64) []Category {
	filtered := make([]Category, 0)
	for i := range all {
		if all[i].ShopID == shopID {
			filtered = append(filtered, FromDataModel(&all[i]))
		}
	}
	return filtered
}
