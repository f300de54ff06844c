package postgres

import (
	"testing"

	"github.com/pointsclub/clubadmin/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestListQuery(t *testing.T) {
	filter := &types.QueryFilter{
		Limit:    lo.ToPtr(10),
		Offset:   lo.ToPtr(20),
		Sort:     lo.ToPtr("updated_at"),
		Order:    lo.ToPtr("asc"),
		IsActive: lo.ToPtr(true),
	}

	query, args := listQuery("SELECT * FROM branches WHERE organization_id = $1", []interface{}{"o1"}, filter, "")

	assert.Equal(t, "SELECT * FROM branches WHERE organization_id = $1 AND is_active = $2 ORDER BY updated_at ASC, id ASC LIMIT $3 OFFSET $4", query)
	assert.Equal(t, []interface{}{"o1", true, 10, 20}, args)
}

func TestListQueryDefaults(t *testing.T) {
	query, args := listQuery("SELECT o.* FROM organizations o WHERE p.user_id = $1", []interface{}{"u1"}, nil, "o.")

	assert.Equal(t, "SELECT o.* FROM organizations o WHERE p.user_id = $1 ORDER BY o.created_at DESC, o.id DESC LIMIT $2 OFFSET $3", query)
	assert.Equal(t, []interface{}{"u1", types.FILTER_DEFAULT_LIMIT, 0}, args)
}

func TestSortColumnIgnoresUnknownFields(t *testing.T) {
	assert.Equal(t, "created_at", sortColumn(&types.QueryFilter{Sort: lo.ToPtr("name; DROP TABLE")}, ""))
}
