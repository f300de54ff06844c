package testutil

import (
	"context"

	"github.com/pointsclub/clubadmin/internal/postgres"
)

var _ postgres.Transactor = (*MockTransactor)(nil)

// MockTransactor runs the function without a real transaction. Calls counts
// the outermost WithTx invocations.
type MockTransactor struct {
	Calls int
}

func NewMockTransactor() *MockTransactor {
	return &MockTransactor{}
}

func (m *MockTransactor) WithTx(ctx context.Context, fn func(context.Context) error) error {
	m.Calls++
	return fn(ctx)
}
