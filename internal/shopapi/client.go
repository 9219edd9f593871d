package shopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/frahmantamala/shopfront/internal"
	categoryDatamodel "github.com/frahmantamala/shopfront/internal/core/datamodel/category"
	shopDatamodel "github.com/frahmantamala/shopfront/internal/core/datamodel/shop"
	"github.com/frahmantamala/shopfront/pkg/logger"
)

const (
	shopPath         = "/api/Shop"
	shopCategoryPath = "/api/ShopCategory"

	defaultTimeout = 10 * time.Second
	maxErrorBody   = 512
)

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client talks to the remote shop API. Every call is a single attempt.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(config Config, lg *slog.Logger) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	if lg == nil {
		lg = logger.LoggerWrapper()
	}

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		timeout:    timeout,
		httpClient: httpClient,
		logger:     lg,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) ListShops(ctx context.Context) ([]shopDatamodel.Shop, error) {
	var shops []shopDatamodel.Shop
	if err := c.do(ctx, http.MethodGet, shopPath, nil, &shops); err != nil {
		return nil, err
	}

	c.logger.Debug("shop api: shops fetched", "count", len(shops))
	return shops, nil
}

func (c *Client) CreateShop(ctx context.Context, req *shopDatamodel.CreateShopRequest) (*shopDatamodel.Shop, error) {
	var created shopDatamodel.Shop
	if err := c.do(ctx, http.MethodPost, shopPath, req, &created); err != nil {
		return nil, err
	}

	c.logger.Info("shop api: shop created", "shop_id", created.ID, "title", req.Title)
	return &created, nil
}

// ListCategories returns every category of every shop; the API has no filter.
func (c *Client) ListCategories(ctx context.Context) ([]categoryDatamodel.ShopCategory, error) {
	var categories []categoryDatamodel.ShopCategory
	if err := c.do(ctx, http.MethodGet, shopCategoryPath, nil, &categories); err != nil {
		return nil, err
	}

	c.logger.Debug("shop api: categories fetched", "count", len(categories))
	return categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, req *categoryDatamodel.CreateShopCategoryRequest) (*categoryDatamodel.ShopCategory, error) {
	var created categoryDatamodel.ShopCategory
	if err := c.do(ctx, http.MethodPost, shopCategoryPath, req, &created); err != nil {
		return nil, err
	}

	c.logger.Info("shop api: category created",
		"category_id", created.ID,
		"shop_id", req.ShopID,
		"title", req.Title)
	return &created, nil
}

// Ping issues a lightweight read against the shop endpoint and reports reachability.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, shopPath, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	ctx, cancel := internal.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return internal.NewInternalError("failed to marshal shop api request", err)
		}
		reader = bytes.NewReader(jsonData)
	}

	url := c.baseURL + path
	httpReq, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return internal.NewInternalError("failed to create HTTP request", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("shop api: request failed",
			"method", method,
			"url", url,
			"error", err)
		return internal.NewExternalError("shop api request failed", internal.ErrCodeUpstreamFailed, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("shop api: response received",
		"method", method,
		"url", url,
		"status_code", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Warn("shop api: unexpected status",
			"method", method,
			"url", url,
			"status_code", resp.StatusCode,
			"body", string(snippet))
		return internal.NewExternalError(
			fmt.Sprintf("shop api returned status %d", resp.StatusCode),
			internal.ErrCodeUpstreamStatus, nil)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	// An empty 2xx body is accepted; out keeps its zero value.
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		c.logger.Error("shop api: failed to decode response",
			"method", method,
			"url", url,
			"error", err)
		return internal.NewExternalError("failed to decode shop api response", internal.ErrCodeUpstreamDecode, err)
	}

	return nil
}
