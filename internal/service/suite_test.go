package service

import (
	"github.com/pointsclub/clubadmin/internal/auth"
	"github.com/pointsclub/clubadmin/internal/testutil"
	"github.com/pointsclub/clubadmin/internal/types"
	"golang.org/x/crypto/bcrypt"
)

const (
	testOperatorEmail    = "admin@example.com"
	testOperatorPassword = "correct horse"
)

// ServiceTestSuite wires every service onto the in-memory stores
type ServiceTestSuite struct {
	testutil.BaseServiceTestSuite
	params ServiceParams
}

func (s *ServiceTestSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	cfg := *s.GetConfig()
	hash, err := bcrypt.GenerateFromPassword([]byte(testOperatorPassword), bcrypt.MinCost)
	s.Require().NoError(err)
	cfg.Auth.Provider = types.AuthProviderLocal
	cfg.Auth.Secret = "test-secret-test-secret-test-secret"
	cfg.Auth.Local.Email = testOperatorEmail
	cfg.Auth.Local.PasswordHash = string(hash)

	stores := s.GetStores()
	s.params = ServiceParams{
		Logger:           s.GetLogger(),
		Config:           &cfg,
		DB:               s.GetDB(),
		Cache:            s.GetCache(),
		S3:               s.GetImageStore(),
		Auth:             auth.NewLocalAuth(&cfg),
		OrganizationRepo: stores.OrganizationRepo,
		AppUserRepo:      stores.AppUserRepo,
		MembershipRepo:   stores.MembershipRepo,
		BranchRepo:       stores.BranchRepo,
		ProductRepo:      stores.ProductRepo,
		RedemptionRepo:   stores.RedemptionRepo,
		NotificationRepo: stores.NotificationRepo,
		RecipientRepo:    stores.RecipientRepo,
		PermissionRepo:   stores.PermissionRepo,
	}
}

// userID is the dashboard user every test acts as
func (s *ServiceTestSuite) userID() string {
	return types.GetUserID(s.GetContext())
}
