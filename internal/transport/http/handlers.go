package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/aromaline/inventory-service/internal/adapters/cache"
	contracts "github.com/aromaline/inventory-service/internal/app/catalog/contracts"
	"github.com/aromaline/inventory-service/internal/app/catalog/queries/get_product"
	"github.com/aromaline/inventory-service/internal/app/catalog/queries/list_history"
	"github.com/aromaline/inventory-service/internal/app/catalog/queries/list_products"
	"github.com/aromaline/inventory-service/internal/app/catalog/usecases/activate_product"
	"github.com/aromaline/inventory-service/internal/app/catalog/usecases/add_stock"
	"github.com/aromaline/inventory-service/internal/app/catalog/usecases/create_product"
	"github.com/aromaline/inventory-service/internal/app/catalog/usecases/delete_product"
	"github.com/aromaline/inventory-service/internal/app/catalog/usecases/remove_stock"
	"github.com/aromaline/inventory-service/internal/app/catalog/usecases/update_product"
	"github.com/aromaline/inventory-service/internal/app/catalog/usecases/update_variant"
)

// Handlers holds the usecase and query entry points exposed over HTTP.
type Handlers struct {
	CreateProduct   *create_product.Interactor
	UpdateProduct   *update_product.Interactor
	UpdateVariant   *update_variant.Interactor
	AddStock        *add_stock.Interactor
	RemoveStock     *remove_stock.Interactor
	DeleteProduct   *delete_product.Interactor
	ActivateProduct *activate_product.Interactor

	GetProduct   *get_product.Handler
	ListProducts *list_products.Handler
	ListHistory  *list_history.Handler

	Cache             *cache.ProductCache
	Metrics           *Metrics
	LowStockThreshold int64
	Logger            *zap.Logger
}

func (h *Handlers) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	req := &createProductRequest{}
	if err := render.Bind(r, req); err != nil {
		renderError(w, r, errInvalidRequest)
		return
	}

	id, err := h.CreateProduct.Execute(r.Context(), create_product.Request{
		ProductType: req.ProductType,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		PhotoURL:    req.PhotoURL,
		Variant:     req.Variant.toInput(),
	})
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, &createProductResponse{ProductID: id})
}

func (h *Handlers) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	if cached, ok := h.Cache.Get(r.Context(), productID); ok {
		render.JSON(w, r, newProductResponse(cached, h.LowStockThreshold))
		return
	}

	product, err := h.GetProduct.Execute(r.Context(), productID)
	if err != nil {
		renderError(w, r, err)
		return
	}
	h.Cache.Set(r.Context(), product)

	render.JSON(w, r, newProductResponse(product, h.LowStockThreshold))
}

func (h *Handlers) handleListProducts(w http.ResponseWriter, r *http.Request) {
	filter := contracts.ProductFilter{}
	if v := r.URL.Query().Get("product_type"); v != "" {
		filter.ProductType = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Offset = n
		}
	}

	products, err := h.ListProducts.Execute(r.Context(), filter)
	if err != nil {
		renderError(w, r, err)
		return
	}

	out := make([]*productSummaryResponse, 0, len(products))
	for _, p := range products {
		out = append(out, newProductSummaryResponse(p, h.LowStockThreshold))
	}
	render.JSON(w, r, out)
}

func (h *Handlers) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	req := &updateProductRequest{}
	if err := render.Bind(r, req); err != nil {
		renderError(w, r, errInvalidRequest)
		return
	}

	err := h.UpdateProduct.Execute(r.Context(), update_product.Request{
		ProductID:   productID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		renderError(w, r, err)
		return
	}
	h.Cache.Invalidate(r.Context(), productID)

	render.NoContent(w, r)
}

func (h *Handlers) handleUpdateVariant(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	req := &updateVariantRequest{}
	if err := render.Bind(r, req); err != nil {
		renderError(w, r, errInvalidRequest)
		return
	}

	err := h.UpdateVariant.Execute(r.Context(), update_variant.Request{
		ProductID: productID,
		Variant:   req.toInput(),
	})
	if err != nil {
		renderError(w, r, err)
		return
	}
	h.Cache.Invalidate(r.Context(), productID)

	render.NoContent(w, r)
}

func (h *Handlers) handleAddStock(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	req := &stockRequest{}
	if err := render.Bind(r, req); err != nil {
		renderError(w, r, errInvalidRequest)
		return
	}

	res, err := h.AddStock.Execute(r.Context(), add_stock.Request{
		ProductID: productID,
		Quantity:  req.Quantity,
		Reason:    req.Reason,
		ActorID:   ActorID(r.Context()),
	})
	if err != nil {
		renderError(w, r, err)
		return
	}
	h.Cache.Invalidate(r.Context(), productID)
	h.Metrics.StockMutation("addition")

	render.JSON(w, r, &stockResponse{ProductID: productID, NewQuantity: res.NewQuantity})
}

func (h *Handlers) handleRemoveStock(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	req := &stockRequest{}
	if err := render.Bind(r, req); err != nil {
		renderError(w, r, errInvalidRequest)
		return
	}

	res, err := h.RemoveStock.Execute(r.Context(), remove_stock.Request{
		ProductID: productID,
		Quantity:  req.Quantity,
		Reason:    req.Reason,
		ActorID:   ActorID(r.Context()),
	})
	if err != nil {
		renderError(w, r, err)
		return
	}
	h.Cache.Invalidate(r.Context(), productID)
	h.Metrics.StockMutation("removal")

	render.JSON(w, r, &stockResponse{ProductID: productID, NewQuantity: res.NewQuantity})
}

func (h *Handlers) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	err := h.DeleteProduct.Execute(r.Context(), delete_product.Request{ProductID: productID})
	if err != nil {
		renderError(w, r, err)
		return
	}
	h.Cache.Invalidate(r.Context(), productID)

	render.NoContent(w, r)
}

func (h *Handlers) handleActivateProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	err := h.ActivateProduct.Execute(r.Context(), activate_product.Request{ProductID: productID})
	if err != nil {
		renderError(w, r, err)
		return
	}
	h.Cache.Invalidate(r.Context(), productID)

	render.NoContent(w, r)
}

func (h *Handlers) handleListHistory(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	filter := contracts.HistoryFilter{}
	if v := r.URL.Query().Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			renderError(w, r, errInvalidRequest)
			return
		}
		filter.FromDate = &t
	}
	if v := r.URL.Query().Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			renderError(w, r, errInvalidRequest)
			return
		}
		filter.ToDate = &t
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}

	entries, err := h.ListHistory.Execute(r.Context(), productID, filter)
	if err != nil {
		renderError(w, r, err)
		return
	}

	out := make([]*historyEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, newHistoryEntryResponse(e))
	}
	render.JSON(w, r, out)
}
