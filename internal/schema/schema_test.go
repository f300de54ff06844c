package schema

import (
	"net/url"
	"strings"
	"testing"
	"time"

	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SchemaSuite struct {
	suite.Suite
	schema *Schema
}

func TestSchema(t *testing.T) {
	suite.Run(t, new(SchemaSuite))
}

func (s *SchemaSuite) SetupTest() {
	s.schema = New("branch",
		Key(FieldID, OptionalString()),
		Key("organization_id", RequiredString("Organization is required")),
		Key("name", RequiredString("Name is required")),
		Key("address", NullableText()),
		Key("is_active", Bool(true)),
	)
}

func (s *SchemaSuite) TestParseAppliesTransforms() {
	rec, err := s.schema.Parse(Input{
		"organization_id": "o1",
		"name":            "Downtown",
		"address":         "",
		"is_active":       "on",
		"unknown":         "dropped",
	})
	s.Require().NoError(err)

	s.Equal(Record{
		"organization_id": "o1",
		"name":            "Downtown",
		"address":         nil,
		"is_active":       true,
	}, rec)
}

func (s *SchemaSuite) TestParseIsDeterministic() {
	in := Input{"organization_id": "o1", "name": "Downtown"}

	first, err1 := s.schema.Parse(in)
	second, err2 := s.schema.Parse(in)

	s.NoError(err1)
	s.NoError(err2)
	s.Equal(first, second)
	s.Len(in, 2, "parse must not mutate its input")
}

func (s *SchemaSuite) TestParseReportsFailuresInDeclarationOrder() {
	_, err := s.schema.Parse(Input{"organization_id": "", "is_active": 7})
	s.Require().Error(err)
	s.True(ierr.IsValidation(err))

	verr, ok := AsValidationError(err)
	s.Require().True(ok)
	s.Equal([]FieldError{
		{Field: "organization_id", Message: "Organization is required"},
		{Field: "name", Message: "Name is required"},
		{Field: "is_active", Message: MsgExpectedBoolean},
	}, verr.Errors)
	s.Equal(map[string][]string{
		"organization_id": {"Organization is required"},
		"name":            {"Name is required"},
		"is_active":       {MsgExpectedBoolean},
	}, verr.Fields())
	s.True(verr.Has("name"))
	s.False(verr.Has("address"))
}

func (s *SchemaSuite) TestRequireID() {
	edit := s.schema.RequireID("Branch id is required")

	_, err := edit.Parse(Input{"organization_id": "o1", "name": "Downtown"})
	verr, ok := AsValidationError(err)
	s.Require().True(ok)
	s.Equal([]FieldError{{Field: FieldID, Message: "Branch id is required"}}, verr.Errors)

	rec, err := edit.Parse(Input{"id": "branch_1", "organization_id": "o1", "name": "Downtown"})
	s.NoError(err)
	s.Equal("branch_1", rec[FieldID])

	// the create schema is untouched
	_, err = s.schema.Parse(Input{"organization_id": "o1", "name": "Downtown"})
	s.NoError(err)
}

func (s *SchemaSuite) TestChecksRunOnlyAfterFieldsPass() {
	calls := 0
	checked := s.schema.WithCheck(func(rec Record) []FieldError {
		calls++
		if rec["address"] == nil {
			return []FieldError{{Field: "address", Message: "Address is required for active branches"}}
		}
		return nil
	})

	_, err := checked.Parse(Input{})
	s.Error(err)
	s.Zero(calls)

	_, err = checked.Parse(Input{"organization_id": "o1", "name": "Downtown"})
	verr, ok := AsValidationError(err)
	s.Require().True(ok)
	s.Equal(1, calls)
	s.Equal("Address is required for active branches", verr.Fields()["address"][0])
}

type branchRecord struct {
	ID             string  `json:"id"`
	OrganizationID string  `json:"organization_id"`
	Name           string  `json:"name"`
	Address        *string `json:"address"`
	IsActive       bool    `json:"is_active"`
}

func (s *SchemaSuite) TestDecode() {
	out, err := Decode[branchRecord](s.schema, Input{
		"organization_id": "o1",
		"name":            "Downtown",
		"address":         "1 Main St",
		"is_active":       "false",
	})
	s.Require().NoError(err)

	s.Equal("o1", out.OrganizationID)
	s.Equal("Downtown", out.Name)
	s.Require().NotNil(out.Address)
	s.Equal("1 Main St", *out.Address)
	s.False(out.IsActive)

	_, err = Decode[branchRecord](s.schema, Input{})
	s.True(ierr.IsValidation(err))
}

func TestFromForm(t *testing.T) {
	in := FromForm(url.Values{
		"name":      {"Downtown", "ignored"},
		"is_active": {"on"},
		"empty":     {},
	})

	assert.Equal(t, Input{"name": "Downtown", "is_active": "on"}, in)
}

func TestFromJSON(t *testing.T) {
	in, err := FromJSON(strings.NewReader(`{"points": 10, "data": {"screen": "home"}, "notes": null}`))
	require.NoError(t, err)

	points, ok, msg := Int("Points are required", 0)(Value{Raw: in["points"], Present: true})
	assert.True(t, ok)
	assert.Empty(t, msg)
	assert.Equal(t, int64(10), points)
	assert.Equal(t, map[string]any{"screen": "home"}, in["data"])
	assert.Contains(t, in, "notes")
	assert.Nil(t, in["notes"])

	empty, err := FromJSON(strings.NewReader("  "))
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = FromJSON(strings.NewReader(`[1, 2]`))
	assert.True(t, ierr.IsValidation(err))
}

func TestInputWith(t *testing.T) {
	in := Input{"name": "Downtown"}
	scoped := in.With("organization_id", "o1")

	assert.Equal(t, "o1", scoped["organization_id"])
	assert.NotContains(t, in, "organization_id")
}

func TestOptionalTimeDecodes(t *testing.T) {
	type rec struct {
		ScheduledAt *time.Time `json:"scheduled_at"`
	}
	s := New("notification", Key("scheduled_at", OptionalTime("Invalid date")))

	out, err := Decode[rec](s, Input{"scheduled_at": "2026-03-01T09:30"})
	require.NoError(t, err)
	require.NotNil(t, out.ScheduledAt)
	assert.Equal(t, 9, out.ScheduledAt.Hour())
}

func (s *SchemaSuite) TestDecodeIntoKeepsOmittedFields() {
	address := "1 Main St"
	existing := &branchRecord{
		ID:             "branch_1",
		OrganizationID: "o1",
		Name:           "Downtown",
		Address:        &address,
		IsActive:       true,
	}

	err := DecodeInto(s.schema.RequireID("Branch id is required"), Input{
		"id":              "branch_1",
		"organization_id": "o1",
		"name":            "Uptown",
		"address":         "",
	}, existing)
	s.Require().NoError(err)

	s.Equal("Uptown", existing.Name)
	s.Nil(existing.Address, "an emptied nullable field is cleared")
	s.True(existing.IsActive)
}
