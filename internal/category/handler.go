package category

import (
	"context"
	"net/http"
	"strconv"

	"github.com/frahmantamala/shopfront/internal/core/result"
	"github.com/frahmantamala/shopfront/internal/transport"
)

type ServiceAPI interface {
	LoadCategories(ctx context.Context, shopID int64) result.Result[[]Category]
	SelectShop(ctx context.Context, shop SelectedShop) *Panel
	CreateCategory(ctx context.Context, shopID int64, title, parentCategoryID string) (*Category, error)
	AddCategory(ctx context.Context, panel *Panel, title, parentCategoryID string) error
}

// Handler serves the category part of the JSON API.
type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) GetShopCategories(w http.ResponseWriter, r *http.Request) {
	shopID, err := h.ShopIDParam(r)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	loaded := h.Service.LoadCategories(r.Context(), shopID)
	if loaded.IsFailed() {
		h.Logger.Error("GetShopCategories: failed to load categories", "shop_id", shopID, "error", loaded.Err())
		h.HandleServiceError(w, loaded.Err())
		return
	}

	categories := loaded.Value()
	responses := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, categories[i].ToResponse())
	}

	h.WriteJSON(w, http.StatusOK, CategoriesResponse{Categories: responses})
}

func (h *Handler) CreateShopCategory(w http.ResponseWriter, r *http.Request) {
	shopID, err := h.ShopIDParam(r)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	var dto CreateCategoryDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.Logger.Error("CreateShopCategory: invalid request body", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	parent := ""
	if dto.ParentCategoryID != nil {
		parent = strconv.FormatInt(*dto.ParentCategoryID, 10)
	}

	created, err := h.Service.CreateCategory(r.Context(), shopID, dto.Title, parent)
	if err != nil {
		h.Logger.Error("CreateShopCategory: service error", "error", err, "shop_id", shopID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateShopCategory: category created",
		"category_id", created.ID,
		"shop_id", shopID)

	h.WriteJSON(w, http.StatusCreated, created.ToResponse())
}
