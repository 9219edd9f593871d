package category

import (
	"context"
	"log/slog"
	"strings"

	"github.com/frahmantamala/shopfront/internal"
	"github.com/frahmantamala/shopfront/internal/core/common/validation"
	categoryDatamodel "github.com/frahmantamala/shopfront/internal/core/datamodel/category"
	"github.com/frahmantamala/shopfront/internal/core/events"
	"github.com/frahmantamala/shopfront/internal/core/result"
	"github.com/frahmantamala/shopfront/pkg/logger"
)

type ClientAPI interface {
	ListCategories(ctx context.Context) ([]categoryDatamodel.ShopCategory, error)
	CreateCategory(ctx context.Context, req *categoryDatamodel.CreateShopCategoryRequest) (*categoryDatamodel.ShopCategory, error)
}

type Service struct {
	client    ClientAPI
	publisher events.Publisher
	logger    *slog.Logger
}

func NewService(client ClientAPI, publisher events.Publisher, logger *slog.Logger) *Service {
	return &Service{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}
}

// LoadCategories reads every category and keeps those of shopID.
// A failed read is logged and yields an empty, Failed result.
func (s *Service) LoadCategories(ctx context.Context, shopID int64) result.Result[[]Category] {
	lg := logger.FromOr(ctx, s.logger)

	all, err := s.client.ListCategories(ctx)
	if err != nil {
		lg.Error("failed to fetch categories", "shop_id", shopID, "error", err)
		return result.Failed[[]Category](err)
	}

	categories := FilterByShop(all, shopID)
	lg.Info("retrieved categories", "shop_id", shopID, "count", len(categories), "total", len(all))
	return result.Succeeded(categories)
}

// SelectShop makes shop the active shop, loads its categories and opens the panel.
func (s *Service) SelectShop(ctx context.Context, shop SelectedShop) *Panel {
	return &Panel{
		Shop:       &shop,
		Open:       true,
		Categories: s.LoadCategories(ctx, shop.ID),
	}
}

// NewCreateRequest shapes the write payload. A blank or zero parent id is left nil
// so the field is omitted from the JSON body.
func NewCreateRequest(shopID int64, title, parentCategoryID string) (*categoryDatamodel.CreateShopCategoryRequest, error) {
	if shopID <= 0 {
		return nil, internal.ErrNoShopSelected
	}
	if appErr := validation.ValidateCategoryInput(title, parentCategoryID); appErr != nil {
		return nil, appErr
	}

	parentID, err := validation.ParseOptionalID(parentCategoryID)
	if err != nil {
		return nil, internal.NewValidationFieldError("parentCategoryId", "parentCategoryId must be a whole number", internal.ErrCodeInvalidParentCategory)
	}

	return &categoryDatamodel.CreateShopCategoryRequest{
		Title:            strings.TrimSpace(title),
		ShopID:           shopID,
		ParentCategoryID: parentID,
	}, nil
}

func (s *Service) CreateCategory(ctx context.Context, shopID int64, title, parentCategoryID string) (*Category, error) {
	lg := logger.FromOr(ctx, s.logger)

	req, err := NewCreateRequest(shopID, title, parentCategoryID)
	if err != nil {
		lg.Warn("invalid category input", "shop_id", shopID, "error", err)
		return nil, err
	}

	created, err := s.client.CreateCategory(ctx, req)
	if err != nil {
		lg.Error("failed to create category", "shop_id", shopID, "title", req.Title, "error", err)
		return nil, err
	}

	category := FromDataModel(created)
	if category.ShopID == 0 {
		category.ShopID = shopID
	}
	if category.Title == "" {
		category.Title = req.Title
	}

	if s.publisher != nil {
		event := events.NewCategoryCreatedEvent(category.ID, shopID, category.Title, req.ParentCategoryID)
		if err := s.publisher.Publish(ctx, event); err != nil {
			lg.Warn("failed to publish category created event", "error", err)
		}
	}

	return &category, nil
}

// AddCategory submits the panel's form. On success the categories are reloaded
// and the form cleared; on failure the input is kept and an alert is set.
func (s *Service) AddCategory(ctx context.Context, panel *Panel, title, parentCategoryID string) error {
	if panel == nil {
		return internal.ErrNoShopSelected
	}
	if panel.Shop == nil {
		panel.Alert = internal.ErrNoShopSelected.Message
		return internal.ErrNoShopSelected
	}

	panel.Notice = ""
	panel.Alert = ""
	panel.Form = NewCategoryForm{Title: title, ParentCategoryID: parentCategoryID}

	if _, err := s.CreateCategory(ctx, panel.Shop.ID, title, parentCategoryID); err != nil {
		if appErr, ok := internal.IsAppError(err); ok && appErr.Type == internal.ErrorTypeValidation {
			panel.Form.Errors = appErr.FieldErrors()
			if len(panel.Form.Errors) == 0 {
				panel.Alert = appErr.Message
			}
			return err
		}
		panel.Alert = MessageAddCategoryFailed
		return err
	}

	panel.Notice = MessageCategoryAdded
	panel.Categories = s.LoadCategories(ctx, panel.Shop.ID)
	panel.resetForm()
	return nil
}
