//go:build integration

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"idcheck/internal/division"
	"idcheck/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	store *Postgres
	ctx   context.Context
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.ctx = context.Background()
	pg := containers.NewPostgresContainer(s.T())
	s.store = NewPostgres(pg.DB)
	s.Require().NoError(s.store.EnsureSchema(s.ctx))
}

func (s *PostgresStoreSuite) SetupTest() {
	_, err := s.store.db.ExecContext(s.ctx, `TRUNCATE divisions`)
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) TestSeedAndLookup() {
	err := s.store.Seed(s.ctx, []division.Division{
		{Code: "510108", Name: "成华区", Revision: 1990},
		{Code: "110103", Name: "崇文区", Revision: 1980},
	})
	s.Require().NoError(err)

	s.Run("known code", func() {
		d, ok, err := s.store.Lookup(s.ctx, "510108")
		s.Require().NoError(err)
		s.True(ok)
		s.Equal("成华区", d.Name)
		s.Equal(1990, d.Revision)
	})

	s.Run("retired code still resolves", func() {
		d, ok, err := s.store.Lookup(s.ctx, "110103")
		s.Require().NoError(err)
		s.True(ok)
		s.Equal("崇文区", d.Name)
	})

	s.Run("unknown code is not an error", func() {
		_, ok, err := s.store.Lookup(s.ctx, "000000")
		s.Require().NoError(err)
		s.False(ok)
	})
}

func (s *PostgresStoreSuite) TestSeedUpserts() {
	err := s.store.Seed(s.ctx, []division.Division{
		{Code: "510132", Name: "新津县", Revision: 1983},
	})
	s.Require().NoError(err)

	err = s.store.Seed(s.ctx, []division.Division{
		{Code: "510132", Name: "新津县", Revision: 1995},
		{Code: "510118", Name: "新津区", Revision: 2020},
	})
	s.Require().NoError(err)

	n, err := s.store.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, n)

	d, ok, err := s.store.Lookup(s.ctx, "510132")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(1995, d.Revision)
}
