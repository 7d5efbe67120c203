package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"parttimepro/internal/domain"
	errs "parttimepro/pkg/errors"
	"parttimepro/pkg/logger"
)

func newProfileFixture() (ProfileService, *fakeProfileRepo) {
	profiles := newFakeProfileRepo()
	svc := NewProfileService(profiles, logger.New("error"))
	return svc, profiles
}

func employerInput() UpdateEmployerProfileInput {
	return UpdateEmployerProfileInput{
		CompanyName:        "Acme Staffing",
		CompanyDescription: "Part-time placements",
		Industry:           "Recruiting",
		Address:            "1 Main St",
		Phone:              "555-0100",
		Email:              "hr@acme.test",
	}
}

func Test_UpdateEmployerProfile_CreatesAndReads(t *testing.T) {
	req := require.New(t)
	svc, _ := newProfileFixture()
	ctx := context.Background()
	userID := uuid.New()

	updated, err := svc.UpdateEmployerProfile(ctx, userID, employerInput())
	req.NoError(err)
	req.Equal("Acme Staffing", updated.CompanyName)

	got, err := svc.GetEmployerProfile(ctx, userID)
	req.NoError(err)
	req.Equal(updated.CompanyName, got.CompanyName)
	req.Equal(updated.Industry, got.Industry)
}

func Test_UpdateEmployerProfile_RequiredFields(t *testing.T) {
	req := require.New(t)
	svc, _ := newProfileFixture()
	ctx := context.Background()

	input := employerInput()
	input.CompanyName = "   "
	_, err := svc.UpdateEmployerProfile(ctx, uuid.New(), input)
	req.ErrorIs(err, errs.ErrBadRequest)

	input = employerInput()
	input.Email = "not-an-email"
	_, err = svc.UpdateEmployerProfile(ctx, uuid.New(), input)
	req.ErrorIs(err, errs.ErrBadRequest)
}

func Test_UpdateEmployerProfile_PreservesLogo(t *testing.T) {
	req := require.New(t)
	svc, profiles := newProfileFixture()
	ctx := context.Background()
	userID := uuid.New()
	profiles.roles[userID] = domain.RoleEmployer

	_, err := svc.UpdateEmployerProfile(ctx, userID, employerInput())
	req.NoError(err)
	req.NoError(svc.SetPhoto(ctx, userID, domain.RoleEmployer, "logos/logo_1.png"))

	// A later form save without a new upload keeps the existing logo.
	input := employerInput()
	input.CompanyName = "Acme Staffing Ltd"
	updated, err := svc.UpdateEmployerProfile(ctx, userID, input)
	req.NoError(err)
	req.NotNil(updated.LogoPath)
	req.Equal("logos/logo_1.png", *updated.LogoPath)
}

func Test_UpdateJobSeekerProfile_CreatesAndReads(t *testing.T) {
	req := require.New(t)
	svc, _ := newProfileFixture()
	ctx := context.Background()
	userID := uuid.New()

	headline := "Barista, evenings"
	updated, err := svc.UpdateJobSeekerProfile(ctx, userID, UpdateJobSeekerProfileInput{
		FullName: "Jamie Doe",
		Headline: &headline,
		Email:    "jamie@example.com",
	})
	req.NoError(err)
	req.Equal("Jamie Doe", updated.FullName)

	got, err := svc.GetJobSeekerProfile(ctx, userID)
	req.NoError(err)
	req.Equal("Jamie Doe", got.FullName)
	req.NotNil(got.Headline)
}

func Test_UpdateJobSeekerProfile_RequiresName(t *testing.T) {
	req := require.New(t)
	svc, _ := newProfileFixture()

	_, err := svc.UpdateJobSeekerProfile(context.Background(), uuid.New(), UpdateJobSeekerProfileInput{
		FullName: "  ",
		Email:    "jamie@example.com",
	})
	req.ErrorIs(err, errs.ErrBadRequest)
}

func Test_SetPhoto_MissingProfile_NotFound(t *testing.T) {
	req := require.New(t)
	svc, _ := newProfileFixture()

	err := svc.SetPhoto(context.Background(), uuid.New(), domain.RoleJobSeeker, "photos/photo_1.jpg")
	req.ErrorIs(err, errs.ErrNotFound)
}
