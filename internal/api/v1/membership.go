package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pointsclub/clubadmin/internal/logger"
	"github.com/pointsclub/clubadmin/internal/rest/middleware"
	"github.com/pointsclub/clubadmin/internal/service"
)

type MembershipHandler struct {
	service service.MembershipService
	logger  *logger.Logger
}

func NewMembershipHandler(service service.MembershipService, logger *logger.Logger) *MembershipHandler {
	return &MembershipHandler{
		service: service,
		logger:  logger,
	}
}

// @Summary Create a membership
// @Tags Memberships
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Success 201 {object} action.State[membership.Membership]
// @Failure 422 {object} action.State[membership.Membership]
// @Router /memberships [post]
func (h *MembershipHandler) CreateMembership(c *gin.Context) {
	in, err := bindInput(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	state, err := h.service.CreateMembership(c.Request.Context(), middleware.OrganizationID(c), in)
	render(c, http.StatusCreated, state, err)
}

// @Summary Get a membership
// @Tags Memberships
// @Produce json
// @Security BearerAuth
// @Param id path string true "Membership ID"
// @Success 200 {object} membership.Membership
// @Failure 404 {object} ierr.ErrorResponse
// @Router /memberships/{id} [get]
func (h *MembershipHandler) GetMembership(c *gin.Context) {
	item, err := h.service.GetMembership(c.Request.Context(), middleware.OrganizationID(c), c.Param("id"))
	respond(c, item, err)
}

// @Summary Update a membership
// @Tags Memberships
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param id path string true "Membership ID"
// @Success 200 {object} action.State[membership.Membership]
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 422 {object} action.State[membership.Membership]
// @Router /memberships/{id} [put]
func (h *MembershipHandler) UpdateMembership(c *gin.Context) {
	in, err := bindInput(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	state, err := h.service.UpdateMembership(c.Request.Context(), middleware.OrganizationID(c), c.Param("id"), in)
	render(c, http.StatusOK, state, err)
}

// @Summary List memberships
// @Tags Memberships
// @Produce json
// @Security BearerAuth
// @Param filter query types.QueryFilter false "Filter"
// @Success 200 {object} types.ListResponse[membership.Membership]
// @Router /memberships [get]
func (h *MembershipHandler) ListMemberships(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp, err := h.service.ListMemberships(c.Request.Context(), middleware.OrganizationID(c), filter)
	respond(c, resp, err)
}
