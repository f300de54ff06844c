package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pointsclub/clubadmin/internal/logger"
	"github.com/pointsclub/clubadmin/internal/rest/middleware"
	"github.com/pointsclub/clubadmin/internal/service"
)

type BranchHandler struct {
	service service.BranchService
	logger  *logger.Logger
}

func NewBranchHandler(service service.BranchService, logger *logger.Logger) *BranchHandler {
	return &BranchHandler{
		service: service,
		logger:  logger,
	}
}

// @Summary Create a branch
// @Tags Branches
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Success 201 {object} action.State[branch.Branch]
// @Failure 422 {object} action.State[branch.Branch]
// @Router /branches [post]
func (h *BranchHandler) CreateBranch(c *gin.Context) {
	in, err := bindInput(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	state, err := h.service.CreateBranch(c.Request.Context(), middleware.OrganizationID(c), in)
	render(c, http.StatusCreated, state, err)
}

// @Summary Get a branch
// @Tags Branches
// @Produce json
// @Security BearerAuth
// @Param id path string true "Branch ID"
// @Success 200 {object} branch.Branch
// @Failure 404 {object} ierr.ErrorResponse
// @Router /branches/{id} [get]
func (h *BranchHandler) GetBranch(c *gin.Context) {
	item, err := h.service.GetBranch(c.Request.Context(), middleware.OrganizationID(c), c.Param("id"))
	respond(c, item, err)
}

// @Summary Update a branch
// @Tags Branches
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param id path string true "Branch ID"
// @Success 200 {object} action.State[branch.Branch]
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 422 {object} action.State[branch.Branch]
// @Router /branches/{id} [put]
func (h *BranchHandler) UpdateBranch(c *gin.Context) {
	in, err := bindInput(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	state, err := h.service.UpdateBranch(c.Request.Context(), middleware.OrganizationID(c), c.Param("id"), in)
	render(c, http.StatusOK, state, err)
}

// @Summary List branches
// @Tags Branches
// @Produce json
// @Security BearerAuth
// @Param filter query types.QueryFilter false "Filter"
// @Success 200 {object} types.ListResponse[branch.Branch]
// @Router /branches [get]
func (h *BranchHandler) ListBranches(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp, err := h.service.ListBranches(c.Request.Context(), middleware.OrganizationID(c), filter)
	respond(c, resp, err)
}
