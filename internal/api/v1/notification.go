package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pointsclub/clubadmin/internal/logger"
	"github.com/pointsclub/clubadmin/internal/rest/middleware"
	"github.com/pointsclub/clubadmin/internal/service"
)

type NotificationHandler struct {
	service service.NotificationService
	logger  *logger.Logger
}

func NewNotificationHandler(service service.NotificationService, logger *logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		logger:  logger,
	}
}

// @Summary Create a push notification
// @Tags Notifications
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Success 201 {object} action.State[notification.PushNotification]
// @Failure 422 {object} action.State[notification.PushNotification]
// @Router /notifications [post]
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	in, err := bindInput(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	state, err := h.service.CreateNotification(c.Request.Context(), middleware.OrganizationID(c), in)
	render(c, http.StatusCreated, state, err)
}

// @Summary Get a push notification
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} notification.PushNotification
// @Failure 404 {object} ierr.ErrorResponse
// @Router /notifications/{id} [get]
func (h *NotificationHandler) GetNotification(c *gin.Context) {
	n, err := h.service.GetNotification(c.Request.Context(), middleware.OrganizationID(c), c.Param("id"))
	respond(c, n, err)
}

// @Summary Update a push notification
// @Tags Notifications
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} action.State[notification.PushNotification]
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 422 {object} action.State[notification.PushNotification]
// @Router /notifications/{id} [put]
func (h *NotificationHandler) UpdateNotification(c *gin.Context) {
	in, err := bindInput(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	state, err := h.service.UpdateNotification(c.Request.Context(), middleware.OrganizationID(c), c.Param("id"), in)
	render(c, http.StatusOK, state, err)
}

// @Summary List push notifications
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param filter query types.QueryFilter false "Filter"
// @Success 200 {object} types.ListResponse[notification.PushNotification]
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp, err := h.service.ListNotifications(c.Request.Context(), middleware.OrganizationID(c), filter)
	respond(c, resp, err)
}

// @Summary Add a recipient
// @Tags Notifications
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 201 {object} action.State[notification.Recipient]
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 422 {object} action.State[notification.Recipient]
// @Router /notifications/{id}/recipients [post]
func (h *NotificationHandler) AddRecipient(c *gin.Context) {
	in, err := bindInput(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	state, err := h.service.AddRecipient(c.Request.Context(), middleware.OrganizationID(c), c.Param("id"), in)
	render(c, http.StatusCreated, state, err)
}

// @Summary Update a recipient's status
// @Description Marking a recipient read stamps read_at once
// @Tags Notifications
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Param recipient_id path string true "Recipient ID"
// @Param request body dto.RecipientStatusRequest true "Status"
// @Success 200 {object} action.State[notification.Recipient]
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 422 {object} action.State[notification.Recipient]
// @Router /notifications/{id}/recipients/{recipient_id} [put]
func (h *NotificationHandler) UpdateRecipientStatus(c *gin.Context) {
	in, err := bindInput(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	state, err := h.service.UpdateRecipientStatus(c.Request.Context(),
		middleware.OrganizationID(c), c.Param("id"), c.Param("recipient_id"), in)
	render(c, http.StatusOK, state, err)
}

// @Summary List recipients
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Param filter query types.QueryFilter false "Filter"
// @Success 200 {object} types.ListResponse[notification.Recipient]
// @Failure 404 {object} ierr.ErrorResponse
// @Router /notifications/{id}/recipients [get]
func (h *NotificationHandler) ListRecipients(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp, err := h.service.ListRecipients(c.Request.Context(), middleware.OrganizationID(c), c.Param("id"), filter)
	respond(c, resp, err)
}
