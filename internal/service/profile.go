package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"parttimepro/internal/domain"
	"parttimepro/internal/repository"
	errs "parttimepro/pkg/errors"
	"parttimepro/pkg/logger"
)

type ProfileService interface {
	GetEmployerProfile(ctx context.Context, userID uuid.UUID) (*domain.EmployerProfile, error)
	UpdateEmployerProfile(ctx context.Context, userID uuid.UUID, input UpdateEmployerProfileInput) (*domain.EmployerProfile, error)
	GetJobSeekerProfile(ctx context.Context, userID uuid.UUID) (*domain.JobSeekerProfile, error)
	UpdateJobSeekerProfile(ctx context.Context, userID uuid.UUID, input UpdateJobSeekerProfileInput) (*domain.JobSeekerProfile, error)
	SetPhoto(ctx context.Context, userID uuid.UUID, role, path string) error
	GetSummary(ctx context.Context, userID uuid.UUID) (*domain.ProfileSummary, error)
}

type UpdateEmployerProfileInput struct {
	CompanyName        string
	CompanyDescription string
	Industry           string
	Website            *string
	Address            string
	Phone              string
	Email              string
}

type UpdateJobSeekerProfileInput struct {
	FullName string
	Headline *string
	Skills   *string
	Phone    *string
	Email    string
}

type profileService struct {
	profileRepo repository.ProfileRepository
	log         logger.Logger
}

func NewProfileService(profileRepo repository.ProfileRepository, log logger.Logger) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		log:         log,
	}
}

func (s *profileService) GetEmployerProfile(ctx context.Context, userID uuid.UUID) (*domain.EmployerProfile, error) {
	return s.profileRepo.GetEmployerProfile(ctx, userID)
}

func (s *profileService) UpdateEmployerProfile(ctx context.Context, userID uuid.UUID, input UpdateEmployerProfileInput) (*domain.EmployerProfile, error) {
	input.CompanyName = strings.TrimSpace(input.CompanyName)
	input.CompanyDescription = strings.TrimSpace(input.CompanyDescription)
	input.Industry = strings.TrimSpace(input.Industry)
	input.Address = strings.TrimSpace(input.Address)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if input.CompanyName == "" || input.CompanyDescription == "" || input.Industry == "" ||
		input.Address == "" || input.Phone == "" {
		return nil, errs.ErrBadRequest
	}
	if !strings.Contains(input.Email, "@") {
		return nil, errs.ErrBadRequest
	}

	// A new profile keeps whatever logo was already uploaded.
	var logoPath *string
	if existing, err := s.profileRepo.GetEmployerProfile(ctx, userID); err == nil {
		logoPath = existing.LogoPath
	}

	profile := &domain.EmployerProfile{
		UserID:             userID,
		CompanyName:        input.CompanyName,
		CompanyDescription: input.CompanyDescription,
		Industry:           input.Industry,
		Website:            input.Website,
		Address:            input.Address,
		Phone:              input.Phone,
		LogoPath:           logoPath,
	}

	if err := s.profileRepo.UpsertEmployerProfile(ctx, profile, input.Email); err != nil {
		return nil, err
	}

	s.log.Info("Employer profile updated", "user_id", userID)
	return profile, nil
}

func (s *profileService) GetJobSeekerProfile(ctx context.Context, userID uuid.UUID) (*domain.JobSeekerProfile, error) {
	return s.profileRepo.GetJobSeekerProfile(ctx, userID)
}

func (s *profileService) UpdateJobSeekerProfile(ctx context.Context, userID uuid.UUID, input UpdateJobSeekerProfileInput) (*domain.JobSeekerProfile, error) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if input.FullName == "" {
		return nil, errs.ErrBadRequest
	}
	if !strings.Contains(input.Email, "@") {
		return nil, errs.ErrBadRequest
	}

	var picturePath *string
	if existing, err := s.profileRepo.GetJobSeekerProfile(ctx, userID); err == nil {
		picturePath = existing.ProfilePicture
	}

	profile := &domain.JobSeekerProfile{
		UserID:         userID,
		FullName:       input.FullName,
		Headline:       input.Headline,
		Skills:         input.Skills,
		Phone:          input.Phone,
		ProfilePicture: picturePath,
	}

	if err := s.profileRepo.UpsertJobSeekerProfile(ctx, profile, input.Email); err != nil {
		return nil, err
	}

	s.log.Info("Jobseeker profile updated", "user_id", userID)
	return profile, nil
}

func (s *profileService) SetPhoto(ctx context.Context, userID uuid.UUID, role, path string) error {
	if role == domain.RoleEmployer {
		return s.profileRepo.UpdateEmployerLogo(ctx, userID, path)
	}
	return s.profileRepo.UpdateJobSeekerPicture(ctx, userID, path)
}

func (s *profileService) GetSummary(ctx context.Context, userID uuid.UUID) (*domain.ProfileSummary, error) {
	return s.profileRepo.GetSummary(ctx, userID)
}
