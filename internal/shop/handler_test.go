package shop_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/frahmantamala/shopfront/internal"
	"github.com/frahmantamala/shopfront/internal/category"
	categoryDatamodel "github.com/frahmantamala/shopfront/internal/core/datamodel/category"
	"github.com/frahmantamala/shopfront/internal/shop"
	"github.com/frahmantamala/shopfront/internal/transport"
	"github.com/frahmantamala/shopfront/internal/web"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// MockCategoryClient implements category.ClientAPI for testing
type MockCategoryClient struct {
	categories  []categoryDatamodel.ShopCategory
	listErr     error
	createErr   error
	createCalls int
	lastCreate  *categoryDatamodel.CreateShopCategoryRequest
}

func (m *MockCategoryClient) ListCategories(ctx context.Context) ([]categoryDatamodel.ShopCategory, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.categories, nil
}

func (m *MockCategoryClient) CreateCategory(ctx context.Context, req *categoryDatamodel.CreateShopCategoryRequest) (*categoryDatamodel.ShopCategory, error) {
	m.createCalls++
	m.lastCreate = req
	if m.createErr != nil {
		return nil, m.createErr
	}
	created := categoryDatamodel.ShopCategory{
		ID:               int64(100 + len(m.categories)),
		Title:            req.Title,
		ShopID:           req.ShopID,
		ParentCategoryID: req.ParentCategoryID,
	}
	m.categories = append(m.categories, created)
	return &created, nil
}

func parseHTML(w *httptest.ResponseRecorder) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(w.Body.Bytes()))
	Expect(err).NotTo(HaveOccurred())
	return doc
}

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

var _ = Describe("Shop Handler", func() {
	var (
		shopClient     *MockShopClient
		categoryClient *MockCategoryClient
		router         *chi.Mux
	)

	BeforeEach(func() {
		slogger := quietLogger()
		shopClient = &MockShopClient{shops: sampleShops()}
		categoryClient = &MockCategoryClient{categories: []categoryDatamodel.ShopCategory{
			{ID: 1, Title: "Snacks", ShopID: 1, SubCategories: []categoryDatamodel.ShopCategory{
				{ID: 3, Title: "Crisps", ShopID: 1, ParentCategoryID: int64Ptr(1)},
			}},
			{ID: 2, Title: "Board Games", ShopID: 2},
			{ID: 4, Title: "Drinks", ShopID: 1},
		}}

		renderer, err := web.NewRenderer(slogger)
		Expect(err).NotTo(HaveOccurred())

		shopService := shop.NewService(shopClient, &MockPublisher{}, slogger)
		categoryService := category.NewService(categoryClient, &MockPublisher{}, slogger)
		handler := shop.NewHandler(&transport.BaseHandler{Logger: slogger}, shopService, categoryService, renderer)

		router = chi.NewRouter()
		router.Get("/", handler.ListPage)
		router.Get("/shops/{id}", handler.SelectShop)
		router.Post("/shops/{id}/categories", handler.AddCategory)
		router.Get("/add-shop", handler.AddShopPage)
		router.Post("/add-shop", handler.SubmitAddShop)
		router.Get("/api/v1/shops", handler.GetShops)
		router.Post("/api/v1/shops", handler.CreateShop)
	})

	Describe("GET /", func() {
		It("should render one card per shop in API order", func() {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(ContainSubstring("text/html"))

			doc := parseHTML(w)
			cards := doc.Find(".shop-card")
			Expect(cards.Length()).To(Equal(2))
			Expect(cards.Eq(0).Find(".shop-title").Text()).To(Equal("Corner Shop"))
			Expect(cards.Eq(0).Find(".shop-description").Text()).To(Equal("Everyday goods"))
			Expect(cards.Eq(1).AttrOr("href", "")).To(Equal("/shops/2"))
			Expect(doc.Find("#category-modal").Length()).To(Equal(0))
		})

		It("should render an empty grid when the shop list cannot be loaded", func() {
			shopClient.listErr = errors.New("unreachable")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			Expect(w.Code).To(Equal(http.StatusOK))
			doc := parseHTML(w)
			Expect(doc.Find(".shop-card").Length()).To(Equal(0))
			Expect(doc.Find("#category-modal").Length()).To(Equal(0))
		})

		It("should show the navigation links", func() {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			doc := parseHTML(w)
			var hrefs []string
			doc.Find(".nav-link").Each(func(_ int, s *goquery.Selection) {
				hrefs = append(hrefs, s.AttrOr("href", ""))
			})
			Expect(hrefs).To(ContainElements("/", "/add-shop"))
		})
	})

	Describe("GET /shops/{id}", func() {
		It("should open the modal with only that shop's categories", func() {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shops/1", nil))

			Expect(w.Code).To(Equal(http.StatusOK))
			doc := parseHTML(w)
			modal := doc.Find("#category-modal")
			Expect(modal.Length()).To(Equal(1))
			Expect(strings.TrimSpace(modal.Find(".modal-title").Text())).To(Equal("Categories for Corner Shop (Shop ID: 1)"))

			items := modal.Find("li.category")
			Expect(items.Length()).To(Equal(2))
			items.Each(func(_ int, s *goquery.Selection) {
				Expect(s.AttrOr("data-shop-id", "")).To(Equal("1"))
			})
			Expect(items.Eq(0).Find(".category-title").Text()).To(Equal("Snacks"))
			Expect(items.Eq(0).Find("li.subcategory").Text()).To(ContainSubstring("Crisps"))
			Expect(items.Eq(1).Find(".category-title").Text()).To(Equal("Drinks"))
			Expect(modal.Find("#add-category-form").AttrOr("action", "")).To(Equal("/shops/1/categories"))
		})

		It("should show the empty state when the shop has no categories", func() {
			categoryClient.categories = nil

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shops/2", nil))

			doc := parseHTML(w)
			Expect(doc.Find("li.category").Length()).To(Equal(0))
			Expect(doc.Find("p.empty").Text()).To(Equal("No categories available for this shop."))
		})

		It("should show the empty state when categories cannot be loaded", func() {
			categoryClient.listErr = errors.New("unreachable")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shops/1", nil))

			Expect(w.Code).To(Equal(http.StatusOK))
			doc := parseHTML(w)
			Expect(doc.Find("#category-modal").Length()).To(Equal(1))
			Expect(doc.Find("p.empty").Length()).To(Equal(1))
		})

		It("should return 404 for an unknown shop", func() {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shops/99", nil))

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(parseHTML(w).Find("h1").Text()).To(Equal("Shop not found"))
		})

		It("should return 404 for a malformed id", func() {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shops/abc", nil))

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("POST /shops/{id}/categories", func() {
		It("should add the category and redirect to the modal with a notice", func() {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, postForm("/shops/1/categories", url.Values{"title": {"Sweets"}, "parentCategoryId": {""}}))

			Expect(w.Code).To(Equal(http.StatusSeeOther))
			Expect(w.Header().Get("Location")).To(Equal("/shops/1?notice=category-added"))
			Expect(categoryClient.lastCreate.ShopID).To(Equal(int64(1)))
			Expect(categoryClient.lastCreate.ParentCategoryID).To(BeNil())

			follow := httptest.NewRecorder()
			router.ServeHTTP(follow, httptest.NewRequest(http.MethodGet, w.Header().Get("Location"), nil))

			doc := parseHTML(follow)
			Expect(doc.Find("p.notice").Text()).To(Equal("Category added successfully!"))
			Expect(doc.Find("li.category").Length()).To(Equal(3))
			Expect(doc.Find("#add-category-form input[name=title]").AttrOr("value", "x")).To(BeEmpty())
			Expect(categoryClient.createCalls).To(Equal(1))
		})

		It("should not show a notice on a plain visit", func() {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shops/1?notice=bogus", nil))

			Expect(parseHTML(w).Find("p.notice").Length()).To(Equal(0))
		})

		It("should keep the input and alert when the API rejects the write", func() {
			categoryClient.createErr = internal.NewExternalError("shop api returned status 400", internal.ErrCodeUpstreamStatus, nil)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, postForm("/shops/1/categories", url.Values{"title": {"Sweets"}, "parentCategoryId": {"1"}}))

			Expect(w.Code).To(Equal(http.StatusBadGateway))
			doc := parseHTML(w)
			Expect(doc.Find("div.alert").Text()).To(Equal("Failed to add category. Please check your input or try again."))
			Expect(doc.Find("p.notice").Length()).To(Equal(0))
			Expect(doc.Find("#add-category-form input[name=title]").AttrOr("value", "")).To(Equal("Sweets"))
			Expect(doc.Find("#add-category-form input[name=parentCategoryId]").AttrOr("value", "")).To(Equal("1"))
			Expect(doc.Find("li.category").Length()).To(Equal(2))
		})

		It("should send the parent id when one is given", func() {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, postForm("/shops/1/categories", url.Values{"title": {"Chocolate"}, "parentCategoryId": {"1"}}))

			Expect(w.Code).To(Equal(http.StatusSeeOther))
			Expect(*categoryClient.lastCreate.ParentCategoryID).To(Equal(int64(1)))
		})
	})

	Describe("GET /add-shop", func() {
		It("should render an empty, enabled form", func() {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/add-shop", nil))

			Expect(w.Code).To(Equal(http.StatusOK))
			doc := parseHTML(w)
			button := doc.Find("#add-shop-submit")
			Expect(button.Text()).To(Equal("Add Shop"))
			_, disabled := button.Attr("disabled")
			Expect(disabled).To(BeFalse())
			Expect(doc.Find("#add-shop-form").AttrOr("action", "")).To(Equal("/add-shop"))
		})
	})

	Describe("POST /add-shop", func() {
		It("should create the shop and redirect to a cleared form with the success message", func() {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, postForm("/add-shop", url.Values{
				"title":       {"Bakery"},
				"description": {"Fresh bread"},
				"categoryId":  {"4"},
			}))

			Expect(w.Code).To(Equal(http.StatusSeeOther))
			Expect(w.Header().Get("Location")).To(Equal("/add-shop?notice=shop-added"))
			Expect(shopClient.lastCreate.Title).To(Equal("Bakery"))
			Expect(shopClient.lastCreate.CategoryID).To(Equal(int64(4)))

			follow := httptest.NewRecorder()
			router.ServeHTTP(follow, httptest.NewRequest(http.MethodGet, w.Header().Get("Location"), nil))

			doc := parseHTML(follow)
			Expect(doc.Find("p.notice").Text()).To(Equal("Shop added successfully!"))
			Expect(doc.Find("input[name=title]").AttrOr("value", "x")).To(BeEmpty())
			Expect(doc.Find("textarea[name=description]").Text()).To(BeEmpty())
			Expect(doc.Find("div.alert").Length()).To(Equal(0))
			Expect(shopClient.createCalls).To(Equal(1))
		})

		It("should keep the input and alert when the API fails", func() {
			shopClient.createErr = internal.NewExternalError("shop api request failed", internal.ErrCodeUpstreamFailed, errors.New("dial tcp"))

			w := httptest.NewRecorder()
			router.ServeHTTP(w, postForm("/add-shop", url.Values{
				"title":       {"Bakery"},
				"description": {"Fresh bread"},
				"categoryId":  {"4"},
			}))

			Expect(w.Code).To(Equal(http.StatusBadGateway))
			doc := parseHTML(w)
			Expect(doc.Find("div.alert").Text()).To(Equal("Failed to add shop."))
			Expect(doc.Find("p.notice").Length()).To(Equal(0))
			Expect(doc.Find("input[name=title]").AttrOr("value", "")).To(Equal("Bakery"))
			Expect(doc.Find("textarea[name=description]").Text()).To(Equal("Fresh bread"))
			Expect(doc.Find("input[name=categoryId]").AttrOr("value", "")).To(Equal("4"))
		})

		It("should show field errors for missing input without calling the API", func() {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, postForm("/add-shop", url.Values{"title": {"Bakery"}}))

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(shopClient.createCalls).To(Equal(0))
			Expect(parseHTML(w).Find(".field-error").Length()).To(Equal(2))
		})
	})

	Describe("JSON API", func() {
		It("should list shops", func() {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/shops", nil))

			Expect(w.Code).To(Equal(http.StatusOK))
			var response shop.ShopsResponse
			Expect(json.Unmarshal(w.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Shops).To(HaveLen(2))
			Expect(*response.Shops[1].CategoryID).To(Equal(int64(20)))
		})

		It("should return 502 when the API is unreachable", func() {
			shopClient.listErr = internal.NewExternalError("shop api request failed", internal.ErrCodeUpstreamFailed, nil)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/shops", nil))

			Expect(w.Code).To(Equal(http.StatusBadGateway))
		})

		It("should create a shop", func() {
			body := []byte(`{"title": "Bakery", "description": "Bread", "categoryId": 4}`)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/shops", bytes.NewReader(body)))

			Expect(w.Code).To(Equal(http.StatusCreated))
			var response shop.ShopResponse
			Expect(json.Unmarshal(w.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Title).To(Equal("Bakery"))
		})

		It("should reject a shop without a category", func() {
			body := []byte(`{"title": "Bakery", "description": "Bread"}`)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/shops", bytes.NewReader(body)))

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(shopClient.createCalls).To(Equal(0))
		})
	})
})
