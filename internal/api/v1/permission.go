package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pointsclub/clubadmin/internal/logger"
	"github.com/pointsclub/clubadmin/internal/rest/middleware"
	"github.com/pointsclub/clubadmin/internal/service"
)

type PermissionHandler struct {
	service service.PermissionService
	logger  *logger.Logger
}

func NewPermissionHandler(service service.PermissionService, logger *logger.Logger) *PermissionHandler {
	return &PermissionHandler{
		service: service,
		logger:  logger,
	}
}

// @Summary Create a permission
// @Tags Permissions
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Success 201 {object} action.State[permission.Permission]
// @Failure 422 {object} action.State[permission.Permission]
// @Router /permissions [post]
func (h *PermissionHandler) CreatePermission(c *gin.Context) {
	in, err := bindInput(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	state, err := h.service.CreatePermission(c.Request.Context(), middleware.OrganizationID(c), in)
	render(c, http.StatusCreated, state, err)
}

// @Summary Get a permission
// @Tags Permissions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Permission ID"
// @Success 200 {object} permission.Permission
// @Failure 404 {object} ierr.ErrorResponse
// @Router /permissions/{id} [get]
func (h *PermissionHandler) GetPermission(c *gin.Context) {
	item, err := h.service.GetPermission(c.Request.Context(), middleware.OrganizationID(c), c.Param("id"))
	respond(c, item, err)
}

// @Summary Update a permission
// @Tags Permissions
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param id path string true "Permission ID"
// @Success 200 {object} action.State[permission.Permission]
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 422 {object} action.State[permission.Permission]
// @Router /permissions/{id} [put]
func (h *PermissionHandler) UpdatePermission(c *gin.Context) {
	in, err := bindInput(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	state, err := h.service.UpdatePermission(c.Request.Context(), middleware.OrganizationID(c), c.Param("id"), in)
	render(c, http.StatusOK, state, err)
}

// @Summary List permissions
// @Tags Permissions
// @Produce json
// @Security BearerAuth
// @Param filter query types.QueryFilter false "Filter"
// @Success 200 {object} types.ListResponse[permission.Permission]
// @Router /permissions [get]
func (h *PermissionHandler) ListPermissions(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp, err := h.service.ListPermissions(c.Request.Context(), middleware.OrganizationID(c), filter)
	respond(c, resp, err)
}
