package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pointsclub/clubadmin/internal/logger"
	"github.com/pointsclub/clubadmin/internal/rest/middleware"
	"github.com/pointsclub/clubadmin/internal/service"
)

// AppUserHandler manages member app accounts. Accounts are shared between
// organizations; only the list is scoped to the active one.
type AppUserHandler struct {
	service service.AppUserService
	logger  *logger.Logger
}

func NewAppUserHandler(service service.AppUserService, logger *logger.Logger) *AppUserHandler {
	return &AppUserHandler{
		service: service,
		logger:  logger,
	}
}

// @Summary Create an app user
// @Tags App Users
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Success 201 {object} action.State[appuser.AppUser]
// @Failure 422 {object} action.State[appuser.AppUser]
// @Router /app-users [post]
func (h *AppUserHandler) CreateAppUser(c *gin.Context) {
	in, err := bindInput(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	state, err := h.service.CreateAppUser(c.Request.Context(), in)
	render(c, http.StatusCreated, state, err)
}

// @Summary Get an app user
// @Tags App Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "App user ID"
// @Success 200 {object} appuser.AppUser
// @Failure 404 {object} ierr.ErrorResponse
// @Router /app-users/{id} [get]
func (h *AppUserHandler) GetAppUser(c *gin.Context) {
	user, err := h.service.GetAppUser(c.Request.Context(), c.Param("id"))
	respond(c, user, err)
}

// @Summary Update an app user
// @Tags App Users
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param id path string true "App user ID"
// @Success 200 {object} action.State[appuser.AppUser]
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 422 {object} action.State[appuser.AppUser]
// @Router /app-users/{id} [put]
func (h *AppUserHandler) UpdateAppUser(c *gin.Context) {
	in, err := bindInput(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	state, err := h.service.UpdateAppUser(c.Request.Context(), c.Param("id"), in)
	render(c, http.StatusOK, state, err)
}

// @Summary List app users
// @Description Lists app users with a membership in the active organization
// @Tags App Users
// @Produce json
// @Security BearerAuth
// @Param filter query types.QueryFilter false "Filter"
// @Success 200 {object} types.ListResponse[appuser.AppUser]
// @Router /app-users [get]
func (h *AppUserHandler) ListAppUsers(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp, err := h.service.ListAppUsers(c.Request.Context(), middleware.OrganizationID(c), filter)
	respond(c, resp, err)
}
