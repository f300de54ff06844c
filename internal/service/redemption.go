package service

import (
	"context"
	"time"

	"github.com/pointsclub/clubadmin/internal/action"
	"github.com/pointsclub/clubadmin/internal/domain"
	"github.com/pointsclub/clubadmin/internal/domain/redemption"
	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/pointsclub/clubadmin/internal/schema"
	"github.com/pointsclub/clubadmin/internal/types"
)

type RedemptionService interface {
	// CreateRedemption records the redemption, takes one unit of stock and
	// spends the member's points in a single transaction
	CreateRedemption(ctx context.Context, organizationID string, in schema.Input) (*action.State[redemption.Redemption], error)
	GetRedemption(ctx context.Context, organizationID, id string) (*redemption.Redemption, error)
	GetRedemptionByCode(ctx context.Context, organizationID, code string) (*redemption.Redemption, error)
	UpdateRedemption(ctx context.Context, organizationID, id string, in schema.Input) (*action.State[redemption.Redemption], error)
	ListRedemptions(ctx context.Context, organizationID string, filter *types.QueryFilter) (*types.ListResponse[*redemption.Redemption], error)
}

type redemptionService struct {
	ServiceParams
}

func NewRedemptionService(params ServiceParams) RedemptionService {
	return &redemptionService{ServiceParams: params}
}

func (s *redemptionService) CreateRedemption(ctx context.Context, organizationID string, in schema.Input) (*action.State[redemption.Redemption], error) {
	r, err := schema.Decode[redemption.Redemption](redemption.Schema, in.With("organization_id", organizationID))
	if err != nil {
		return writeResult[redemption.Redemption](ctx, s.ServiceParams, "create_redemption", nil, err)
	}

	r.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_REDEMPTION)
	r.Code = types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_REDEMPTION)
	r.BaseModel = domain.NewBaseModel(time.Now())

	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		if err := s.spend(ctx, r); err != nil {
			return err
		}
		return s.RedemptionRepo.Create(ctx, r)
	})
	if err != nil && ierr.IsNotFound(err) {
		// a missing product or member is a bad reference in the form, not a missing page
		err = ierr.Handled(err).
			WithHint(ierr.DisplayMessage(err)).
			WithReportableDetails(ierr.SafeDetails(err)).
			Mark(ierr.ErrInvalidOperation)
	}
	return writeResult(ctx, s.ServiceParams, "create_redemption", r, err)
}

// spend takes stock and points for a new redemption. Cancelled redemptions
// are recorded without touching either.
func (s *redemptionService) spend(ctx context.Context, r *redemption.Redemption) error {
	if r.Status == types.RedemptionStatusCancelled {
		return nil
	}

	if _, err := s.ProductRepo.Get(ctx, r.OrganizationID, r.ProductID); err != nil {
		return err
	}

	member, err := s.MembershipRepo.Get(ctx, r.OrganizationID, r.BeneficiaryID)
	if err != nil {
		return err
	}
	if !member.IsActive {
		return ierr.NewError("membership is inactive").
			WithHint("The member is inactive").
			Mark(ierr.ErrInvalidOperation)
	}

	if err := s.ProductRepo.DecrementStock(ctx, r.OrganizationID, r.ProductID, 1); err != nil {
		return err
	}

	// the balance read above may be stale; the debit checks it again
	return s.MembershipRepo.DebitPoints(ctx, r.OrganizationID, member.ID, r.Points)
}

func (s *redemptionService) GetRedemption(ctx context.Context, organizationID, id string) (*redemption.Redemption, error) {
	return s.RedemptionRepo.Get(ctx, organizationID, id)
}

func (s *redemptionService) GetRedemptionByCode(ctx context.Context, organizationID, code string) (*redemption.Redemption, error) {
	return s.RedemptionRepo.GetByCode(ctx, organizationID, code)
}

// UpdateRedemption edits the record only; stock and balances are not
// recalculated
func (s *redemptionService) UpdateRedemption(ctx context.Context, organizationID, id string, in schema.Input) (*action.State[redemption.Redemption], error) {
	r, err := s.RedemptionRepo.Get(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}

	in = in.With(schema.FieldID, id).With("organization_id", organizationID)
	if err := schema.DecodeInto(redemption.EditSchema, in, r); err != nil {
		return writeResult[redemption.Redemption](ctx, s.ServiceParams, "update_redemption", nil, err)
	}
	r.Touch(time.Now())

	err = s.RedemptionRepo.Update(ctx, r)
	return writeResult(ctx, s.ServiceParams, "update_redemption", r, err)
}

func (s *redemptionService) ListRedemptions(ctx context.Context, organizationID string, filter *types.QueryFilter) (*types.ListResponse[*redemption.Redemption], error) {
	filter, err := validateFilter(filter)
	if err != nil {
		return nil, err
	}

	page, err := fetchPage(ctx, organizationID, filter, s.RedemptionRepo.List, s.RedemptionRepo.Count)
	if err != nil {
		s.Logger.Errorw("failed to list redemptions", "error", err, "organization_id", organizationID)
		return nil, err
	}
	return page, nil
}
