package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pointsclub/clubadmin/internal/action"
	"github.com/pointsclub/clubadmin/internal/api/dto"
	"github.com/pointsclub/clubadmin/internal/logger"
	"github.com/pointsclub/clubadmin/internal/service"
	"github.com/pointsclub/clubadmin/internal/session"
	"github.com/pointsclub/clubadmin/internal/types"
	"github.com/samber/lo"
)

type AuthHandler struct {
	authService service.AuthService
	sessions    *session.Manager
	logger      *logger.Logger
}

func NewAuthHandler(authService service.AuthService, sessions *session.Manager, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		logger:      logger,
	}
}

// @Summary Login
// @Description Sign in with email and password
// @Tags Auth
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param login body dto.LoginRequest true "Login request"
// @Success 200 {object} action.State[dto.AuthResponse]
// @Failure 401 {object} action.State[dto.AuthResponse]
// @Failure 422 {object} action.State[dto.AuthResponse]
// @Failure 429 {object} ierr.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	in, err := bindInput(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	state, err := h.authService.Login(c.Request.Context(), in)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if !state.Success {
		status := http.StatusUnprocessableEntity
		if !state.IsInvalid() {
			status = http.StatusUnauthorized
		}
		c.JSON(status, &action.State[dto.AuthResponse]{Error: state.Error})
		return
	}

	// drop any selection left from an earlier sign in
	h.sessions.Clear(c)
	c.JSON(http.StatusOK, action.Ok(dto.NewAuthResponse(state.Data)))
}

// @Summary Current user
// @Description Returns the signed in user and the selected organization
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MeResponse
// @Failure 401 {object} ierr.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()
	userID := types.GetUserID(ctx)

	resp := dto.MeResponse{
		UserID: userID,
		Email:  types.GetUserEmail(ctx),
	}
	if orgID, err := h.sessions.ActiveOrganization(c, userID); err == nil {
		resp.ActiveOrganizationID = lo.ToPtr(orgID)
	}
	c.JSON(http.StatusOK, resp)
}
