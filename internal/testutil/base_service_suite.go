package testutil

import (
	"context"
	"time"

	"github.com/pointsclub/clubadmin/internal/cache"
	"github.com/pointsclub/clubadmin/internal/config"
	"github.com/pointsclub/clubadmin/internal/logger"
	"github.com/pointsclub/clubadmin/internal/types"
	"github.com/pointsclub/clubadmin/internal/validator"
	"github.com/stretchr/testify/suite"
)

// Stores holds all the repository fakes for testing
type Stores struct {
	OrganizationRepo *InMemoryOrganizationStore
	AppUserRepo      *InMemoryAppUserStore
	MembershipRepo   *InMemoryMembershipStore
	BranchRepo       *InMemoryBranchStore
	ProductRepo      *InMemoryProductStore
	RedemptionRepo   *InMemoryRedemptionStore
	NotificationRepo *InMemoryPushNotificationStore
	RecipientRepo    *InMemoryRecipientStore
	PermissionRepo   *InMemoryPermissionStore
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	db     *MockTransactor
	cache  cache.Cache
	images *MockImageStore
	logger *logger.Logger
	config *config.Configuration
	now    time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	cfg := config.GetDefaultConfig()
	cfg.Logging.Level = types.LogLevelInfo
	cfg.Cache.Enabled = true
	s.config = cfg
	s.logger = logger.NewNop()
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = SetupContext()
	s.setupStores()
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
}

func (s *BaseServiceTestSuite) setupStores() {
	permissions := NewInMemoryPermissionStore()
	memberships := NewInMemoryMembershipStore()
	s.stores = Stores{
		OrganizationRepo: NewInMemoryOrganizationStore(permissions),
		AppUserRepo:      NewInMemoryAppUserStore(memberships),
		MembershipRepo:   memberships,
		BranchRepo:       NewInMemoryBranchStore(),
		ProductRepo:      NewInMemoryProductStore(),
		RedemptionRepo:   NewInMemoryRedemptionStore(),
		NotificationRepo: NewInMemoryPushNotificationStore(),
		RecipientRepo:    NewInMemoryRecipientStore(),
		PermissionRepo:   permissions,
	}
	s.db = NewMockTransactor()
	s.cache = cache.NewInMemoryCache(s.config, s.logger)
	s.images = NewMockImageStore()
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.OrganizationRepo.Clear()
	s.stores.AppUserRepo.Clear()
	s.stores.MembershipRepo.Clear()
	s.stores.BranchRepo.Clear()
	s.stores.ProductRepo.Clear()
	s.stores.RedemptionRepo.Clear()
	s.stores.NotificationRepo.Clear()
	s.stores.RecipientRepo.Clear()
	s.stores.PermissionRepo.Clear()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetStores returns the in-memory stores
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetDB returns the pass-through transactor
func (s *BaseServiceTestSuite) GetDB() *MockTransactor {
	return s.db
}

// GetCache returns the test cache
func (s *BaseServiceTestSuite) GetCache() cache.Cache {
	return s.cache
}

// GetImageStore returns the in-memory image store
func (s *BaseServiceTestSuite) GetImageStore() *MockImageStore {
	return s.images
}

// GetNow returns the time the current test started
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}
