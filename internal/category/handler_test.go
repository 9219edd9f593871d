package category_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/frahmantamala/shopfront/internal/category"
	categoryDatamodel "github.com/frahmantamala/shopfront/internal/core/datamodel/category"
	"github.com/frahmantamala/shopfront/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Category Handler", func() {
	var (
		client  *MockClient
		service *category.Service
		handler *category.Handler
		router  *chi.Mux
	)

	BeforeEach(func() {
		slogger := quietLogger()
		client = NewMockClient(
			categoryDatamodel.ShopCategory{ID: 1, Title: "Food", ShopID: 1},
			categoryDatamodel.ShopCategory{ID: 2, Title: "Toys", ShopID: 2},
		)
		service = category.NewService(client, &MockPublisher{}, slogger)
		baseHandler := &transport.BaseHandler{Logger: slogger}
		handler = category.NewHandler(baseHandler, service)

		router = chi.NewRouter()
		router.Get("/shops/{id}/categories", handler.GetShopCategories)
		router.Post("/shops/{id}/categories", handler.CreateShopCategory)
	})

	Describe("GET /shops/{id}/categories", func() {
		It("should return only the shop's categories", func() {
			req := httptest.NewRequest(http.MethodGet, "/shops/1/categories", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var response category.CategoriesResponse
			Expect(json.Unmarshal(w.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Categories).To(HaveLen(1))
			Expect(response.Categories[0].Title).To(Equal("Food"))
			Expect(response.Categories[0].ShopID).To(Equal(int64(1)))
		})

		It("should return 400 for a malformed shop id", func() {
			req := httptest.NewRequest(http.MethodGet, "/shops/abc/categories", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring("INVALID_SHOP_ID"))
		})

		It("should return 500 when the API read fails with an unknown error", func() {
			client.listErr = errors.New("boom")
			req := httptest.NewRequest(http.MethodGet, "/shops/1/categories", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
		})
	})

	Describe("POST /shops/{id}/categories", func() {
		It("should create a category without a parent", func() {
			body := []byte(`{"title": "Snacks"}`)
			req := httptest.NewRequest(http.MethodPost, "/shops/1/categories", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))
			var response map[string]interface{}
			Expect(json.Unmarshal(w.Body.Bytes(), &response)).To(Succeed())
			Expect(response).To(HaveKeyWithValue("title", "Snacks"))
			Expect(response).To(HaveKeyWithValue("shopId", float64(1)))
			Expect(response).NotTo(HaveKey("parentCategoryId"))
			Expect(client.lastCreate.ParentCategoryID).To(BeNil())
		})

		It("should pass the parent through", func() {
			body := []byte(`{"title": "Snacks", "parentCategoryId": 1}`)
			req := httptest.NewRequest(http.MethodPost, "/shops/1/categories", bytes.NewReader(body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(*client.lastCreate.ParentCategoryID).To(Equal(int64(1)))
		})

		It("should reject unknown fields", func() {
			body := []byte(`{"title": "Snacks", "colour": "red"}`)
			req := httptest.NewRequest(http.MethodPost, "/shops/1/categories", bytes.NewReader(body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(client.createCalls).To(Equal(0))
		})

		It("should reject a blank title with field details", func() {
			body := []byte(`{"title": ""}`)
			req := httptest.NewRequest(http.MethodPost, "/shops/1/categories", bytes.NewReader(body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring(`"field":"title"`))
		})
	})
})
