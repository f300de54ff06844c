package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pointsclub/clubadmin/internal/logger"
	"github.com/pointsclub/clubadmin/internal/rest/middleware"
	"github.com/pointsclub/clubadmin/internal/service"
	"github.com/pointsclub/clubadmin/internal/session"
	"github.com/pointsclub/clubadmin/internal/types"
)

type OrganizationHandler struct {
	service  service.OrganizationService
	sessions *session.Manager
	logger   *logger.Logger
}

func NewOrganizationHandler(service service.OrganizationService, sessions *session.Manager, logger *logger.Logger) *OrganizationHandler {
	return &OrganizationHandler{
		service:  service,
		sessions: sessions,
		logger:   logger,
	}
}

// @Summary Create an organization
// @Description Creates the organization and makes the caller its owner
// @Tags Organizations
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Success 201 {object} action.State[organization.Organization]
// @Failure 422 {object} action.State[organization.Organization]
// @Router /organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	in, err := bindInput(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	ctx := c.Request.Context()
	state, err := h.service.CreateOrganization(ctx, types.GetUserID(ctx), in)
	render(c, http.StatusCreated, state, err)
}

// @Summary List organizations
// @Description Lists the organizations the caller has access to
// @Tags Organizations
// @Produce json
// @Security BearerAuth
// @Param filter query types.QueryFilter false "Filter"
// @Success 200 {object} types.ListResponse[organization.Organization]
// @Router /organizations [get]
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	ctx := c.Request.Context()
	resp, err := h.service.ListOrganizations(ctx, types.GetUserID(ctx), filter)
	respond(c, resp, err)
}

// @Summary Get an organization
// @Tags Organizations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Organization ID"
// @Success 200 {object} organization.Organization
// @Failure 403 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	ctx := c.Request.Context()
	org, err := h.service.GetOrganization(ctx, types.GetUserID(ctx), c.Param("id"))
	respond(c, org, err)
}

// @Summary Update an organization
// @Tags Organizations
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param id path string true "Organization ID"
// @Success 200 {object} action.State[organization.Organization]
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 422 {object} action.State[organization.Organization]
// @Router /organizations/{id} [put]
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	in, err := bindInput(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	ctx := c.Request.Context()
	state, err := h.service.UpdateOrganization(ctx, types.GetUserID(ctx), c.Param("id"), in)
	render(c, http.StatusOK, state, err)
}

// @Summary Upload an organization logo
// @Tags Organizations
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Organization ID"
// @Param file formData file true "Logo image"
// @Success 200 {object} action.State[organization.Organization]
// @Failure 422 {object} action.State[organization.Organization]
// @Router /organizations/{id}/logo [post]
func (h *OrganizationHandler) UploadLogo(c *gin.Context) {
	data, err := readUpload(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	ctx := c.Request.Context()
	state, err := h.service.UploadLogo(ctx, types.GetUserID(ctx), c.Param("id"), data)
	render(c, http.StatusOK, state, err)
}

// @Summary Select the active organization
// @Description Checks access and stores the choice in the session cookie
// @Tags Organizations
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param request body dto.SelectOrganizationRequest true "Organization"
// @Success 200 {object} action.State[organization.Organization]
// @Failure 403 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 422 {object} action.State[organization.Organization]
// @Router /organizations/select [post]
func (h *OrganizationHandler) SelectOrganization(c *gin.Context) {
	in, err := bindInput(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	ctx := c.Request.Context()
	userID := types.GetUserID(ctx)
	state, err := h.service.SelectOrganization(ctx, userID, in)
	if err == nil && state.Success {
		if err = h.sessions.SetActiveOrganization(c, userID, state.Data.ID); err == nil {
			h.logger.Infow("organization selected", "user_id", userID, "organization_id", state.Data.ID)
		}
	}
	render(c, http.StatusOK, state, err)
}

// @Summary Get the active organization
// @Tags Organizations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} organization.Organization
// @Failure 403 {object} ierr.ErrorResponse
// @Router /organizations/active [get]
func (h *OrganizationHandler) GetActiveOrganization(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.ActiveOrganization(c))
}

// @Summary Clear the active organization
// @Tags Organizations
// @Security BearerAuth
// @Success 204
// @Router /organizations/active [delete]
func (h *OrganizationHandler) ClearActiveOrganization(c *gin.Context) {
	h.sessions.Clear(c)
	c.Status(http.StatusNoContent)
}
