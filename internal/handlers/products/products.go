package products

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskmart/taskmart/internal/domain"
	"github.com/taskmart/taskmart/internal/dto"
	"github.com/taskmart/taskmart/internal/service/productservice"
	"github.com/taskmart/taskmart/pkg/utils"
)

type Service interface {
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
}

type ProductHandler struct {
	productService Service
}

func New(productService Service) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

func toDTO(p *domain.Product) dto.ProductResponseDTO {
	return dto.ProductResponseDTO{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		DiscountRate: p.DiscountRate,
		UnitPrice:    p.UnitPrice(),
		Quantity:     p.Quantity,
		ImageURL:     p.ImageURL,
	}
}

// List godoc
//
//	@Summary		List products
//	@Tags			Products
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ProductResponseDTO	"Products"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.ProductResponseDTO, len(products))
	for i := range products {
		resp[i] = toDTO(&products[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Get godoc
//
//	@Summary		Get product detail
//	@Tags			Products
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Product id"
//	@Success		200	{object}	dto.ProductResponseDTO	"Product"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Product not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/products/{id} [get]
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.productService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, productservice.ErrProductNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(product))
}
