package cache

import (
	"context"
	"testing"
	"time"

	"github.com/pointsclub/clubadmin/internal/config"
	"github.com/pointsclub/clubadmin/internal/logger"
	"github.com/stretchr/testify/assert"
)

func newCache(enabled bool) Cache {
	cfg := config.GetDefaultConfig()
	cfg.Cache.Enabled = enabled
	cfg.Cache.TTL = time.Minute
	return NewInMemoryCache(cfg, logger.NewNop())
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "organization:v1:org_1", OrganizationKey("org_1"))
	assert.Equal(t, "permission:v1:org_1:user_1", PermissionKey("org_1", "user_1"))
}

func TestForgetOrganization(t *testing.T) {
	ctx := context.Background()
	c := newCache(true)

	c.Set(ctx, OrganizationKey("org_1"), "one", 0)
	c.Set(ctx, PermissionKey("org_1", "user_a"), "a", 0)
	c.Set(ctx, PermissionKey("org_1", "user_b"), "b", 0)
	c.Set(ctx, PermissionKey("org_10", "user_a"), "other", 0)

	v, ok := c.Get(ctx, OrganizationKey("org_1"))
	assert.True(t, ok)
	assert.Equal(t, "one", v)

	ForgetOrganization(ctx, c, "org_1")

	for _, key := range []string{
		OrganizationKey("org_1"),
		PermissionKey("org_1", "user_a"),
		PermissionKey("org_1", "user_b"),
	} {
		_, ok := c.Get(ctx, key)
		assert.False(t, ok, key)
	}
	_, ok = c.Get(ctx, PermissionKey("org_10", "user_a"))
	assert.True(t, ok, "a different organization sharing the id prefix is kept")
}

func TestDisabledCacheAlwaysMisses(t *testing.T) {
	ctx := context.Background()
	c := newCache(false)

	c.Set(ctx, "k", "v", 0)
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}
