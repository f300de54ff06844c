package types

import (
	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/samber/lo"
)

type RedemptionStatus string

const (
	// RedemptionStatusPending is a redemption waiting to be handed over at a branch
	RedemptionStatusPending RedemptionStatus = "pending"
	// RedemptionStatusCompleted is a redemption whose product was delivered
	RedemptionStatusCompleted RedemptionStatus = "completed"
	RedemptionStatusCancelled RedemptionStatus = "cancelled"
)

// RedemptionStatusValues lists the accepted redemption statuses
func RedemptionStatusValues() []string {
	return []string{
		string(RedemptionStatusPending),
		string(RedemptionStatusCompleted),
		string(RedemptionStatusCancelled),
	}
}

func (s RedemptionStatus) String() string {
	return string(s)
}

func (s RedemptionStatus) Validate() error {
	if !lo.Contains(RedemptionStatusValues(), string(s)) {
		return ierr.NewError("invalid redemption status").
			WithHint("Please provide a valid redemption status").
			WithReportableDetails(map[string]any{
				"allowed": RedemptionStatusValues(),
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
