package service

import (
	"testing"

	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/pointsclub/clubadmin/internal/schema"
	"github.com/pointsclub/clubadmin/internal/types"
	"github.com/stretchr/testify/suite"
)

type NotificationServiceSuite struct {
	ServiceTestSuite
	service NotificationService
}

func TestNotificationService(t *testing.T) {
	suite.Run(t, new(NotificationServiceSuite))
}

func (s *NotificationServiceSuite) SetupTest() {
	s.ServiceTestSuite.SetupTest()
	s.service = NewNotificationService(s.params)
}

func (s *NotificationServiceSuite) createNotification(orgID string) string {
	state, err := s.service.CreateNotification(s.GetContext(), orgID, schema.Input{
		"title": "Double points",
		"body":  "All weekend long",
	})
	s.Require().NoError(err)
	s.Require().True(state.Success)
	return state.Data.ID
}

func (s *NotificationServiceSuite) TestCreateNotification() {
	state, err := s.service.CreateNotification(s.GetContext(), "o1", schema.Input{
		"title": "Double points",
		"body":  "All weekend long",
		"data":  `{"screen":"rewards"}`,
	})
	s.NoError(err)
	s.Require().True(state.Success)
	s.Equal(types.PushNotificationStatusDraft, state.Data.Status)
	s.Equal(types.Metadata{"screen": "rewards"}, state.Data.Data)

	state, err = s.service.CreateNotification(s.GetContext(), "o1", schema.Input{
		"title":  "Double points",
		"body":   "All weekend long",
		"status": "scheduled",
	})
	s.NoError(err)
	s.False(state.Success)
	s.Equal("Scheduled notifications need a date", state.FieldError("scheduled_at"))
}

func (s *NotificationServiceSuite) TestUpdateNotification() {
	id := s.createNotification("o1")

	state, err := s.service.UpdateNotification(s.GetContext(), "o1", id, schema.Input{
		"title":        "Triple points",
		"body":         "Sunday only",
		"status":       "scheduled",
		"scheduled_at": "2026-11-01T10:00",
	})
	s.NoError(err)
	s.Require().True(state.Success)
	s.Equal(types.PushNotificationStatusScheduled, state.Data.Status)
	s.Require().NotNil(state.Data.ScheduledAt)
	s.Equal(types.Metadata{}, state.Data.Data)

	state, err = s.service.UpdateNotification(s.GetContext(), "o2", id, schema.Input{"title": "x", "body": "y"})
	s.Nil(state)
	s.True(ierr.IsNotFound(err))
}

func (s *NotificationServiceSuite) TestAddRecipient() {
	id := s.createNotification("o1")

	state, err := s.service.AddRecipient(s.GetContext(), "o1", id, schema.Input{
		"app_user_id":          "appuser_1",
		"push_notification_id": "push_other",
	})
	s.NoError(err)
	s.Require().True(state.Success)
	s.Equal(id, state.Data.PushNotificationID)
	s.Equal(types.RecipientStatusPending, state.Data.Status)
	s.Nil(state.Data.ReadAt)

	state, err = s.service.AddRecipient(s.GetContext(), "o1", id, schema.Input{
		"app_user_id": "appuser_2",
		"status":      "archived",
	})
	s.NoError(err)
	s.False(state.Success)
	s.Equal(map[string][]string{"status": {"Status must be pending, sent, failed or read"}}, state.Error.Fields)

	state, err = s.service.AddRecipient(s.GetContext(), "o2", id, schema.Input{"app_user_id": "appuser_3"})
	s.Nil(state)
	s.True(ierr.IsNotFound(err))
}

func (s *NotificationServiceSuite) TestAddRecipientAlreadyRead() {
	id := s.createNotification("o1")

	state, err := s.service.AddRecipient(s.GetContext(), "o1", id, schema.Input{
		"app_user_id": "appuser_1",
		"status":      "read",
	})
	s.NoError(err)
	s.Require().True(state.Success)
	s.NotNil(state.Data.ReadAt)
}

func (s *NotificationServiceSuite) TestUpdateRecipientStatusStampsReadAt() {
	id := s.createNotification("o1")
	added, err := s.service.AddRecipient(s.GetContext(), "o1", id, schema.Input{"app_user_id": "appuser_1"})
	s.NoError(err)
	s.Require().True(added.Success)
	recipientID := added.Data.ID

	state, err := s.service.UpdateRecipientStatus(s.GetContext(), "o1", id, recipientID, schema.Input{"status": "read"})
	s.NoError(err)
	s.Require().True(state.Success)
	s.Require().NotNil(state.Data.ReadAt)
	readAt := *state.Data.ReadAt

	state, err = s.service.UpdateRecipientStatus(s.GetContext(), "o1", id, recipientID, schema.Input{"status": "read"})
	s.NoError(err)
	s.Require().True(state.Success)
	s.Equal(readAt, *state.Data.ReadAt)

	state, err = s.service.UpdateRecipientStatus(s.GetContext(), "o1", id, recipientID, schema.Input{"status": "gone"})
	s.NoError(err)
	s.False(state.Success)
	s.NotEmpty(state.FieldError("status"))

	state, err = s.service.UpdateRecipientStatus(s.GetContext(), "o1", id, "recip_missing", schema.Input{"status": "read"})
	s.Nil(state)
	s.True(ierr.IsNotFound(err))
}

func (s *NotificationServiceSuite) TestListRecipients() {
	id := s.createNotification("o1")
	other := s.createNotification("o1")
	for _, user := range []string{"appuser_1", "appuser_2"} {
		_, err := s.service.AddRecipient(s.GetContext(), "o1", id, schema.Input{"app_user_id": user})
		s.Require().NoError(err)
	}
	_, err := s.service.AddRecipient(s.GetContext(), "o1", other, schema.Input{"app_user_id": "appuser_3"})
	s.Require().NoError(err)

	resp, err := s.service.ListRecipients(s.GetContext(), "o1", id, nil)
	s.NoError(err)
	s.Len(resp.Items, 2)
	s.Equal(2, resp.Pagination.Total)

	_, err = s.service.ListRecipients(s.GetContext(), "o2", id, nil)
	s.True(ierr.IsNotFound(err))

	list, err := s.service.ListNotifications(s.GetContext(), "o1", nil)
	s.NoError(err)
	s.Equal(2, list.Pagination.Total)
}
