package shop

import (
	"context"
	"net/http"
	"strconv"

	"github.com/frahmantamala/shopfront/internal"
	"github.com/frahmantamala/shopfront/internal/category"
	"github.com/frahmantamala/shopfront/internal/core/result"
	"github.com/frahmantamala/shopfront/internal/transport"
	"github.com/frahmantamala/shopfront/internal/web"
)

const (
	pageShops   = "shops"
	pageAddShop = "add_shop"
	pageError   = "error"

	titleShops   = "Shop List"
	titleAddShop = "Add Shop"

	// Successful form posts redirect with ?notice=... so a refresh does not repeat the write.
	noticeParam         = "notice"
	noticeCategoryAdded = "category-added"
	noticeShopAdded     = "shop-added"
)

type ServiceAPI interface {
	LoadShops(ctx context.Context) result.Result[[]Shop]
	FindShop(ctx context.Context, id int64) (*Shop, error)
	CreateShop(ctx context.Context, title, description, categoryID string) (*Shop, error)
}

type PageRenderer interface {
	Render(w http.ResponseWriter, status int, page string, data web.Page)
}

type Handler struct {
	*transport.BaseHandler
	Service    ServiceAPI
	Categories category.ServiceAPI
	Pages      PageRenderer
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI, categories category.ServiceAPI, pages PageRenderer) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
		Categories:  categories,
		Pages:       pages,
	}
}

// ---------- HTML pages ----------

func (h *Handler) ListPage(w http.ResponseWriter, r *http.Request) {
	page := ListPage{Shops: h.Service.LoadShops(r.Context())}
	h.Pages.Render(w, http.StatusOK, pageShops, web.Page{Title: titleShops, Active: web.NavShops, Data: page})
}

// SelectShop renders the list with the category modal of the chosen shop open.
func (h *Handler) SelectShop(w http.ResponseWriter, r *http.Request) {
	shops, selected, ok := h.resolveShop(w, r)
	if !ok {
		return
	}

	panel := h.Categories.SelectShop(r.Context(), selected.Selected())
	if r.URL.Query().Get(noticeParam) == noticeCategoryAdded {
		panel.Notice = category.MessageCategoryAdded
	}
	page := ListPage{Shops: shops, Panel: panel}
	h.Pages.Render(w, http.StatusOK, pageShops, web.Page{Title: titleShops, Active: web.NavShops, Data: page})
}

func (h *Handler) AddCategory(w http.ResponseWriter, r *http.Request) {
	shops, selected, ok := h.resolveShop(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		h.Logger.Error("AddCategory: invalid form", "error", err)
		h.renderError(w, http.StatusBadRequest, "Invalid form", "The submitted form could not be read.")
		return
	}

	sel := selected.Selected()
	panel := &category.Panel{Shop: &sel, Open: true}

	err := h.Categories.AddCategory(r.Context(), panel, r.PostFormValue("title"), r.PostFormValue("parentCategoryId"))
	if err == nil {
		h.Logger.Info("AddCategory: category added", "shop_id", sel.ID)
		target := "/shops/" + strconv.FormatInt(sel.ID, 10) + "?" + noticeParam + "=" + noticeCategoryAdded
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}

	h.Logger.Error("AddCategory: failed to add category", "shop_id", sel.ID, "error", err)
	panel.Categories = h.Categories.LoadCategories(r.Context(), sel.ID)

	page := ListPage{Shops: shops, Panel: panel}
	h.Pages.Render(w, statusOf(err), pageShops, web.Page{Title: titleShops, Active: web.NavShops, Data: page})
}

func (h *Handler) AddShopPage(w http.ResponseWriter, r *http.Request) {
	form := &AddShopForm{}
	if r.URL.Query().Get(noticeParam) == noticeShopAdded {
		form.SuccessMessage = MessageShopAdded
	}
	h.Pages.Render(w, http.StatusOK, pageAddShop, web.Page{Title: titleAddShop, Active: web.NavAddShop, Data: form})
}

func (h *Handler) SubmitAddShop(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Logger.Error("SubmitAddShop: invalid form", "error", err)
		h.renderError(w, http.StatusBadRequest, "Invalid form", "The submitted form could not be read.")
		return
	}

	form := &AddShopForm{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		CategoryID:  r.PostFormValue("categoryId"),
	}

	created, err := form.Submit(r.Context(), h.Service)
	if err == nil {
		h.Logger.Info("SubmitAddShop: shop added", "shop_id", created.ID)
		http.Redirect(w, r, "/add-shop?"+noticeParam+"="+noticeShopAdded, http.StatusSeeOther)
		return
	}

	h.Logger.Error("SubmitAddShop: failed to add shop", "error", err)
	h.Pages.Render(w, statusOf(err), pageAddShop, web.Page{Title: titleAddShop, Active: web.NavAddShop, Data: form})
}

func (h *Handler) resolveShop(w http.ResponseWriter, r *http.Request) (result.Result[[]Shop], *Shop, bool) {
	id, err := h.ShopIDParam(r)
	if err != nil {
		h.renderError(w, http.StatusNotFound, "Shop not found", "There is no shop with that ID.")
		return result.Result[[]Shop]{}, nil, false
	}

	shops := h.Service.LoadShops(r.Context())
	if shops.IsFailed() {
		h.renderError(w, http.StatusBadGateway, "Shops unavailable", "The shop list could not be loaded. Please try again.")
		return shops, nil, false
	}

	selected := Find(shops.Value(), id)
	if selected == nil {
		h.Logger.Warn("shop not found", "shop_id", id)
		h.renderError(w, http.StatusNotFound, "Shop not found", "There is no shop with ID "+strconv.FormatInt(id, 10)+".")
		return shops, nil, false
	}

	return shops, selected, true
}

func (h *Handler) renderError(w http.ResponseWriter, status int, heading, message string) {
	h.Pages.Render(w, status, pageError, web.Page{Title: heading, Active: web.NavShops, Data: ErrorPage{Heading: heading, Message: message}})
}

func statusOf(err error) int {
	if appErr, ok := internal.IsAppError(err); ok && appErr.StatusCode != 0 {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// ---------- JSON API ----------

func (h *Handler) GetShops(w http.ResponseWriter, r *http.Request) {
	loaded := h.Service.LoadShops(r.Context())
	if loaded.IsFailed() {
		h.Logger.Error("GetShops: failed to load shops", "error", loaded.Err())
		h.HandleServiceError(w, loaded.Err())
		return
	}

	shops := loaded.Value()
	responses := make([]ShopResponse, 0, len(shops))
	for i := range shops {
		responses = append(responses, shops[i].ToResponse())
	}

	h.WriteJSON(w, http.StatusOK, ShopsResponse{Shops: responses})
}

func (h *Handler) CreateShop(w http.ResponseWriter, r *http.Request) {
	var dto CreateShopDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.Logger.Error("CreateShop: invalid request body", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	categoryID := ""
	if dto.CategoryID != 0 {
		categoryID = strconv.FormatInt(dto.CategoryID, 10)
	}

	created, err := h.Service.CreateShop(r.Context(), dto.Title, dto.Description, categoryID)
	if err != nil {
		h.Logger.Error("CreateShop: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateShop: shop created successfully", "shop_id", created.ID, "title", created.Title)
	h.WriteJSON(w, http.StatusCreated, created.ToResponse())
}
