package shop

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/frahmantamala/shopfront/internal"
	"github.com/frahmantamala/shopfront/internal/core/common/validation"
	shopDatamodel "github.com/frahmantamala/shopfront/internal/core/datamodel/shop"
	"github.com/frahmantamala/shopfront/internal/core/events"
	"github.com/frahmantamala/shopfront/internal/core/result"
	"github.com/frahmantamala/shopfront/pkg/logger"
)

type ClientAPI interface {
	ListShops(ctx context.Context) ([]shopDatamodel.Shop, error)
	CreateShop(ctx context.Context, req *shopDatamodel.CreateShopRequest) (*shopDatamodel.Shop, error)
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

// LoadShops reads all shops in the order the API returns them.
// A failed read is logged and yields an empty, Failed result.
func (s *Service) LoadShops(ctx context.Context) result.Result[[]Shop] {
	lg := logger.FromOr(ctx, s.logger)

	dataShops, err := s.client.ListShops(ctx)
	if err != nil {
		lg.Error("failed to fetch shops", "error", err)
		return result.Failed[[]Shop](err)
	}

	shops := make([]Shop, 0, len(dataShops))
	for i := range dataShops {
		shops = append(shops, FromDataModel(&dataShops[i]))
	}

	lg.Info("retrieved shops", "count", len(shops))
	return result.Succeeded(shops)
}

// FindShop resolves id against a fresh shop list; the API has no single-shop read.
func (s *Service) FindShop(ctx context.Context, id int64) (*Shop, error) {
	loaded := s.LoadShops(ctx)
	if loaded.IsFailed() {
		return nil, loaded.Err()
	}

	found := Find(loaded.Value(), id)
	if found == nil {
		return nil, internal.ErrShopNotFound
	}
	return found, nil
}

func NewCreateRequest(title, description, categoryID string) (*shopDatamodel.CreateShopRequest, error) {
	if appErr := validation.ValidateShopInput(title, description, categoryID); appErr != nil {
		return nil, appErr
	}

	id, err := strconv.ParseInt(strings.TrimSpace(categoryID), 10, 64)
	if err != nil {
		return nil, internal.NewValidationFieldError("categoryId", "categoryId must be a whole number", internal.ErrCodeInvalidCategoryID)
	}

	return &shopDatamodel.CreateShopRequest{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		CategoryID:  id,
	}, nil
}

func (s *Service) CreateShop(ctx context.Context, title, description, categoryID string) (*Shop, error) {
	lg := logger.FromOr(ctx, s.logger)

	req, err := NewCreateRequest(title, description, categoryID)
	if err != nil {
		lg.Warn("invalid shop input", "error", err)
		return nil, err
	}

	created, err := s.client.CreateShop(ctx, req)
	if err != nil {
		lg.Error("failed to create shop", "title", req.Title, "error", err)
		return nil, err
	}

	shop := FromDataModel(created)
	if shop.Title == "" {
		shop.Title = req.Title
		shop.Description = req.Description
	}
	if shop.CategoryID == nil {
		shop.CategoryID = &req.CategoryID
	}

	if s.publisher != nil {
		event := events.NewShopCreatedEvent(shop.ID, shop.Title, req.CategoryID)
		if err := s.publisher.Publish(ctx, event); err != nil {
			lg.Warn("failed to publish shop created event", "error", err)
		}
	}

	lg.Info("shop created", "shop_id", shop.ID, "title", shop.Title)
	return &shop, nil
}
