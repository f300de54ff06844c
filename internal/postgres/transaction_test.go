package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/pointsclub/clubadmin/internal/logger"
	"github.com/stretchr/testify/suite"
)

type TransactionSuite struct {
	suite.Suite
	db   *DB
	mock sqlmock.Sqlmock
}

func TestTransaction(t *testing.T) {
	suite.Run(t, new(TransactionSuite))
}

func (s *TransactionSuite) SetupTest() {
	conn, mock, err := sqlmock.New()
	s.Require().NoError(err)
	s.db = NewFromSQLX(sqlx.NewDb(conn, "postgres"), logger.NewNop(), nil)
	s.mock = mock
}

func (s *TransactionSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *TransactionSuite) TestCommit() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec("UPDATE branches").WillReturnResult(sqlmock.NewResult(0, 1))
	s.mock.ExpectCommit()

	err := s.db.WithTx(context.Background(), func(ctx context.Context) error {
		_, ok := GetTx(ctx)
		s.True(ok)
		_, err := s.db.GetQuerier(ctx).ExecContext(ctx, "UPDATE branches SET name = $1", "x")
		return err
	})
	s.NoError(err)
}

func (s *TransactionSuite) TestRollbackOnError() {
	boom := errors.New("boom")
	s.mock.ExpectBegin()
	s.mock.ExpectRollback()

	err := s.db.WithTx(context.Background(), func(ctx context.Context) error {
		return boom
	})
	s.ErrorIs(err, boom)
}

func (s *TransactionSuite) TestNestedUsesSavepoint() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec("SAVEPOINT sp_1").WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectExec("ROLLBACK TO SAVEPOINT sp_1").WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectCommit()

	inner := errors.New("inner")
	err := s.db.WithTx(context.Background(), func(ctx context.Context) error {
		s.ErrorIs(s.db.WithTx(ctx, func(context.Context) error { return inner }), inner)
		return nil
	})
	s.NoError(err)
}
