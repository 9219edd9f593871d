package category

import (
	"github.com/frahmantamala/shopfront/internal/core/result"
)

const (
	MessageCategoryAdded     = "Category added successfully!"
	MessageAddCategoryFailed = "Failed to add category. Please check your input or try again."
)

// SelectedShop is the part of a shop the panel needs.
type SelectedShop struct {
	ID    int64
	Title string
}

type NewCategoryForm struct {
	Title            string
	ParentCategoryID string
	Errors           map[string]string
}

// Panel is the state of the category modal for one selected shop.
type Panel struct {
	Shop       *SelectedShop
	Open       bool
	Categories result.Result[[]Category]
	Form       NewCategoryForm
	Notice     string
	Alert      string
}

func (p *Panel) HasCategories() bool {
	return len(p.Categories.Value()) > 0
}

func (p *Panel) Close() {
	p.Open = false
}

func (p *Panel) resetForm() {
	p.Form = NewCategoryForm{}
}
