package service

import (
	"context"

	"github.com/pointsclub/clubadmin/internal/action"
	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/pointsclub/clubadmin/internal/postgres"
	"github.com/pointsclub/clubadmin/internal/types"
	"github.com/sourcegraph/conc/pool"
)

// writeResult turns the outcome of a create or update into an action state.
// Not found errors stay errors: the caller renders a 404, never a form.
// Errors without a known marker are logged and reported before the generic
// message goes back to the form.
func writeResult[T any](ctx context.Context, p ServiceParams, op string, data *T, err error) (*action.State[T], error) {
	if err == nil {
		return action.Ok(data), nil
	}
	if ierr.IsNotFound(err) {
		return nil, err
	}

	if !ierr.IsKnown(err) {
		p.Logger.Errorw("unexpected error",
			"operation", op,
			"error", err,
			"request_id", types.GetRequestID(ctx),
		)
		p.Sentry.CaptureException(ctx, err)
	} else if !ierr.IsValidation(err) {
		p.Logger.Warnw("operation failed",
			"operation", op,
			"error", err,
		)
	}
	return action.FromError[T](err), nil
}

// fetchPage runs a list view's page query and its count query side by side.
// scope is the organization, notification or user the rows belong to. Inside
// a transaction the two run one after the other; a tx is not safe for
// concurrent use.
func fetchPage[T any](
	ctx context.Context,
	scope string,
	filter *types.QueryFilter,
	list func(ctx context.Context, scope string, filter *types.QueryFilter) ([]T, error),
	count func(ctx context.Context, scope string, filter *types.QueryFilter) (int, error),
) (*types.ListResponse[T], error) {
	var (
		items []T
		total int
	)
	fetchItems := func(ctx context.Context) error {
		var err error
		items, err = list(ctx, scope, filter)
		return err
	}
	fetchTotal := func(ctx context.Context) error {
		var err error
		total, err = count(ctx, scope, filter)
		return err
	}

	if _, inTx := postgres.GetTx(ctx); inTx {
		if err := fetchItems(ctx); err != nil {
			return nil, err
		}
		if err := fetchTotal(ctx); err != nil {
			return nil, err
		}
	} else {
		p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
		p.Go(fetchItems)
		p.Go(fetchTotal)
		if err := p.Wait(); err != nil {
			return nil, err
		}
	}

	resp := types.NewListResponse(items, total, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func validateFilter(filter *types.QueryFilter) (*types.QueryFilter, error) {
	if filter == nil {
		return types.NewDefaultQueryFilter(), nil
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return filter, nil
}
