package cache

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Cache holds short-lived copies of records read on every request
type Cache interface {
	// Get returns the value and whether the key was found
	Get(ctx context.Context, key string) (interface{}, bool)

	// Set stores value for expiration; zero means the configured TTL
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration)

	Delete(ctx context.Context, key string)

	// DeleteByPrefix removes every key starting with prefix
	DeleteByPrefix(ctx context.Context, prefix string)
}

const (
	PrefixOrganization = "organization:v1"
	PrefixPermission   = "permission:v1"
)

// GenerateKey joins params onto prefix with colons
func GenerateKey(prefix string, params ...interface{}) string {
	parts := make([]string, 0, len(params)+1)
	parts = append(parts, prefix)
	for _, param := range params {
		parts = append(parts, fmt.Sprint(param))
	}
	return strings.Join(parts, ":")
}

// OrganizationKey is the key of a cached organization record
func OrganizationKey(organizationID string) string {
	return GenerateKey(PrefixOrganization, organizationID)
}

// PermissionKey is the key of the permission userID holds on organizationID.
// Keys start with the organization so ForgetOrganization can drop them together.
func PermissionKey(organizationID, userID string) string {
	return GenerateKey(PrefixPermission, organizationID, userID)
}

// ForgetOrganization drops the organization and every permission cached for it
func ForgetOrganization(ctx context.Context, c Cache, organizationID string) {
	c.Delete(ctx, OrganizationKey(organizationID))
	c.DeleteByPrefix(ctx, GenerateKey(PrefixPermission, organizationID)+":")
}
