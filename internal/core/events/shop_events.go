package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeShopCreated     = "shop.created"
	EventTypeCategoryCreated = "shop_category.created"
)

type ShopCreatedEvent struct {
	BaseEvent
	ShopID     int64  `json:"shop_id"`
	Title      string `json:"title"`
	CategoryID int64  `json:"category_id"`
}

func NewShopCreatedEvent(shopID int64, title string, categoryID int64) *ShopCreatedEvent {
	return &ShopCreatedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeShopCreated,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"shop_id":     shopID,
				"title":       title,
				"category_id": categoryID,
			},
		},
		ShopID:     shopID,
		Title:      title,
		CategoryID: categoryID,
	}
}

type CategoryCreatedEvent struct {
	BaseEvent
	CategoryID       int64  `json:"category_id"`
	ShopID           int64  `json:"shop_id"`
	Title            string `json:"title"`
	ParentCategoryID *int64 `json:"parent_category_id,omitempty"`
}

func NewCategoryCreatedEvent(categoryID, shopID int64, title string, parentCategoryID *int64) *CategoryCreatedEvent {
	data := map[string]interface{}{
		"category_id": categoryID,
		"shop_id":     shopID,
		"title":       title,
	}
	if parentCategoryID != nil {
		data["parent_category_id"] = *parentCategoryID
	}

	return &CategoryCreatedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeCategoryCreated,
			Timestamp: time.Now(),
			Data:      data,
		},
		CategoryID:       categoryID,
		ShopID:           shopID,
		Title:            title,
		ParentCategoryID: parentCategoryID,
	}
}
