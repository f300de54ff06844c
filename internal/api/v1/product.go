package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pointsclub/clubadmin/internal/logger"
	"github.com/pointsclub/clubadmin/internal/rest/middleware"
	"github.com/pointsclub/clubadmin/internal/service"
)

type ProductHandler struct {
	service service.ProductService
	logger  *logger.Logger
}

func NewProductHandler(service service.ProductService, logger *logger.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// @Summary Create a product
// @Tags Products
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Success 201 {object} action.State[product.Product]
// @Failure 422 {object} action.State[product.Product]
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	in, err := bindInput(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	state, err := h.service.CreateProduct(c.Request.Context(), middleware.OrganizationID(c), in)
	render(c, http.StatusCreated, state, err)
}

// @Summary Get a product
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} product.Product
// @Failure 404 {object} ierr.ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	item, err := h.service.GetProduct(c.Request.Context(), middleware.OrganizationID(c), c.Param("id"))
	respond(c, item, err)
}

// @Summary Update a product
// @Tags Products
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} action.State[product.Product]
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 422 {object} action.State[product.Product]
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	in, err := bindInput(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	state, err := h.service.UpdateProduct(c.Request.Context(), middleware.OrganizationID(c), c.Param("id"), in)
	render(c, http.StatusOK, state, err)
}

// @Summary List products
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param filter query types.QueryFilter false "Filter"
// @Success 200 {object} types.ListResponse[product.Product]
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp, err := h.service.ListProducts(c.Request.Context(), middleware.OrganizationID(c), filter)
	respond(c, resp, err)
}

// @Summary Upload a product image
// @Tags Products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param file formData file true "Product image"
// @Success 200 {object} action.State[product.Product]
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 422 {object} action.State[product.Product]
// @Router /products/{id}/image [post]
func (h *ProductHandler) UploadImage(c *gin.Context) {
	data, err := readUpload(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	state, err := h.service.UploadImage(c.Request.Context(), middleware.OrganizationID(c), c.Param("id"), data)
	render(c, http.StatusOK, state, err)
}
