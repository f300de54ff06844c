package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pointsclub/clubadmin/internal/logger"
	"github.com/pointsclub/clubadmin/internal/rest/middleware"
	"github.com/pointsclub/clubadmin/internal/service"
)

type RedemptionHandler struct {
	service service.RedemptionService
	logger  *logger.Logger
}

func NewRedemptionHandler(service service.RedemptionService, logger *logger.Logger) *RedemptionHandler {
	return &RedemptionHandler{
		service: service,
		logger:  logger,
	}
}

// @Summary Create a redemption
// @Tags Redemptions
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Success 201 {object} action.State[redemption.Redemption]
// @Failure 422 {object} action.State[redemption.Redemption]
// @Router /redemptions [post]
func (h *RedemptionHandler) CreateRedemption(c *gin.Context) {
	in, err := bindInput(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	state, err := h.service.CreateRedemption(c.Request.Context(), middleware.OrganizationID(c), in)
	render(c, http.StatusCreated, state, err)
}

// @Summary Get a redemption
// @Tags Redemptions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Redemption ID"
// @Success 200 {object} redemption.Redemption
// @Failure 404 {object} ierr.ErrorResponse
// @Router /redemptions/{id} [get]
func (h *RedemptionHandler) GetRedemption(c *gin.Context) {
	item, err := h.service.GetRedemption(c.Request.Context(), middleware.OrganizationID(c), c.Param("id"))
	respond(c, item, err)
}

// @Summary Update a redemption
// @Tags Redemptions
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param id path string true "Redemption ID"
// @Success 200 {object} action.State[redemption.Redemption]
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 422 {object} action.State[redemption.Redemption]
// @Router /redemptions/{id} [put]
func (h *RedemptionHandler) UpdateRedemption(c *gin.Context) {
	in, err := bindInput(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	state, err := h.service.UpdateRedemption(c.Request.Context(), middleware.OrganizationID(c), c.Param("id"), in)
	render(c, http.StatusOK, state, err)
}

// @Summary List redemptions
// @Tags Redemptions
// @Produce json
// @Security BearerAuth
// @Param filter query types.QueryFilter false "Filter"
// @Success 200 {object} types.ListResponse[redemption.Redemption]
// @Router /redemptions [get]
func (h *RedemptionHandler) ListRedemptions(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp, err := h.service.ListRedemptions(c.Request.Context(), middleware.OrganizationID(c), filter)
	respond(c, resp, err)
}

// @Summary Find a redemption by code
// @Description Looks up the short code a member shows at the counter
// @Tags Redemptions
// @Produce json
// @Security BearerAuth
// @Param code path string true "Redemption code"
// @Success 200 {object} redemption.Redemption
// @Failure 404 {object} ierr.ErrorResponse
// @Router /redemptions/code/{code} [get]
func (h *RedemptionHandler) GetRedemptionByCode(c *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(c.Param("code")))
	item, err := h.service.GetRedemptionByCode(c.Request.Context(), middleware.OrganizationID(c), code)
	respond(c, item, err)
}
