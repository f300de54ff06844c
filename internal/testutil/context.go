package testutil

import (
	"context"

	"github.com/pointsclub/clubadmin/internal/types"
)

func SetupContext() context.Context {
	ctx := context.Background()
	ctx = types.SetUserID(ctx, types.DefaultUserID)
	ctx = types.SetUserEmail(ctx, "admin@example.com")
	ctx = types.SetRequestID(ctx, types.GenerateUUID())
	return ctx
}
