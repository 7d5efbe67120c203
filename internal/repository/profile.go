package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"parttimepro/internal/domain"
	errs "parttimepro/pkg/errors"
	"parttimepro/pkg/logger"
)

type ProfileRepository interface {
	GetEmployerProfile(ctx context.Context, userID uuid.UUID) (*domain.EmployerProfile, error)
	// UpsertEmployerProfile writes the profile and the account email in one
	// transaction, matching how the profile form saves both at once.
	UpsertEmployerProfile(ctx context.Context, profile *domain.EmployerProfile, email string) error
	GetJobSeekerProfile(ctx context.Context, userID uuid.UUID) (*domain.JobSeekerProfile, error)
	UpsertJobSeekerProfile(ctx context.Context, profile *domain.JobSeekerProfile, email string) error
	UpdateEmployerLogo(ctx context.Context, userID uuid.UUID, logoPath string) error
	UpdateJobSeekerPicture(ctx context.Context, userID uuid.UUID, picturePath string) error

	// GetSummary resolves display metadata for any user. A missing profile
	// row is not an error: the summary falls back to a placeholder name so
	// messaging never blocks on presentation data.
	GetSummary(ctx context.Context, userID uuid.UUID) (*domain.ProfileSummary, error)
}

type profileRepository struct {
	db  *pgxpool.Pool
	log logger.Logger
}

func NewProfileRepository(db *pgxpool.Pool, log logger.Logger) ProfileRepository {
	return &profileRepository{db: db, log: log}
}

func (r *profileRepository) GetEmployerProfile(ctx context.Context, userID uuid.UUID) (*domain.EmployerProfile, error) {
	query := `
		SELECT user_id, company_name, company_description, industry, website,
		       address, phone, logo_path, created_at, updated_at
		FROM employer_profiles
		WHERE user_id = $1
	`

	profile := &domain.EmployerProfile{}
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.UserID, &profile.CompanyName, &profile.CompanyDescription,
		&profile.Industry, &profile.Website, &profile.Address, &profile.Phone,
		&profile.LogoPath, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		r.log.Error("Failed to get employer profile", "error", err)
		return nil, fmt.Errorf("%w: get employer profile: %v", errs.ErrStorage, err)
	}

	return profile, nil
}

func (r *profileRepository) UpsertEmployerProfile(ctx context.Context, profile *domain.EmployerProfile, email string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin transaction", "error", err)
		return fmt.Errorf("%w: begin tx: %v", errs.ErrStorage, err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`UPDATE users SET email = $2, updated_at = NOW() WHERE id = $1`,
		profile.UserID, email,
	)
	if err != nil {
		r.log.Error("Failed to update user email", "error", err)
		return fmt.Errorf("%w: update email: %v", errs.ErrStorage, err)
	}

	query := `
		INSERT INTO employer_profiles (
			user_id, company_name, company_description, industry,
			website, address, phone, logo_path, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			company_description = EXCLUDED.company_description,
			industry = EXCLUDED.industry,
			website = EXCLUDED.website,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			logo_path = EXCLUDED.logo_path,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`

	err = tx.QueryRow(ctx, query,
		profile.UserID, profile.CompanyName, profile.CompanyDescription,
		profile.Industry, profile.Website, profile.Address, profile.Phone,
		profile.LogoPath,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to upsert employer profile", "error", err)
		return fmt.Errorf("%w: upsert employer profile: %v", errs.ErrStorage, err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit profile update", "error", err)
		return fmt.Errorf("%w: commit profile: %v", errs.ErrStorage, err)
	}

	return nil
}

func (r *profileRepository) GetJobSeekerProfile(ctx context.Context, userID uuid.UUID) (*domain.JobSeekerProfile, error) {
	query := `
		SELECT user_id, full_name, headline, skills, phone, profile_picture,
		       created_at, updated_at
		FROM jobseeker_profiles
		WHERE user_id = $1
	`

	profile := &domain.JobSeekerProfile{}
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.UserID, &profile.FullName, &profile.Headline, &profile.Skills,
		&profile.Phone, &profile.ProfilePicture, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		r.log.Error("Failed to get jobseeker profile", "error", err)
		return nil, fmt.Errorf("%w: get jobseeker profile: %v", errs.ErrStorage, err)
	}

	return profile, nil
}

func (r *profileRepository) UpsertJobSeekerProfile(ctx context.Context, profile *domain.JobSeekerProfile, email string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin transaction", "error", err)
		return fmt.Errorf("%w: begin tx: %v", errs.ErrStorage, err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`UPDATE users SET email = $2, updated_at = NOW() WHERE id = $1`,
		profile.UserID, email,
	)
	if err != nil {
		r.log.Error("Failed to update user email", "error", err)
		return fmt.Errorf("%w: update email: %v", errs.ErrStorage, err)
	}

	query := `
		INSERT INTO jobseeker_profiles (
			user_id, full_name, headline, skills, phone, profile_picture,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			headline = EXCLUDED.headline,
			skills = EXCLUDED.skills,
			phone = EXCLUDED.phone,
			profile_picture = EXCLUDED.profile_picture,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`

	err = tx.QueryRow(ctx, query,
		profile.UserID, profile.FullName, profile.Headline, profile.Skills,
		profile.Phone, profile.ProfilePicture,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to upsert jobseeker profile", "error", err)
		return fmt.Errorf("%w: upsert jobseeker profile: %v", errs.ErrStorage, err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit profile update", "error", err)
		return fmt.Errorf("%w: commit profile: %v", errs.ErrStorage, err)
	}

	return nil
}

func (r *profileRepository) UpdateEmployerLogo(ctx context.Context, userID uuid.UUID, logoPath string) error {
	query := `
		UPDATE employer_profiles
		SET logo_path = $2, updated_at = NOW()
		WHERE user_id = $1
	`

	tag, err := r.db.Exec(ctx, query, userID, logoPath)
	if err != nil {
		r.log.Error("Failed to update employer logo", "error", err)
		return fmt.Errorf("%w: update logo: %v", errs.ErrStorage, err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *profileRepository) UpdateJobSeekerPicture(ctx context.Context, userID uuid.UUID, picturePath string) error {
	query := `
		UPDATE jobseeker_profiles
		SET profile_picture = $2, updated_at = NOW()
		WHERE user_id = $1
	`

	tag, err := r.db.Exec(ctx, query, userID, picturePath)
	if err != nil {
		r.log.Error("Failed to update profile picture", "error", err)
		return fmt.Errorf("%w: update picture: %v", errs.ErrStorage, err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *profileRepository) GetSummary(ctx context.Context, userID uuid.UUID) (*domain.ProfileSummary, error) {
	query := `
		SELECT u.id, u.role, u.email,
		       ep.company_name, ep.phone, ep.logo_path,
		       jp.full_name, jp.phone, jp.profile_picture
		FROM users u
		LEFT JOIN employer_profiles ep ON ep.user_id = u.id
		LEFT JOIN jobseeker_profiles jp ON jp.user_id = u.id
		WHERE u.id = $1
	`

	var (
		companyName, fullName        *string
		employerPhone, seekerPhone   *string
		logoPath, profilePicturePath *string
	)

	summary := &domain.ProfileSummary{}
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&summary.UserID, &summary.Role, &summary.Email,
		&companyName, &employerPhone, &logoPath,
		&fullName, &seekerPhone, &profilePicturePath,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrUserNotFound
		}
		r.log.Error("Failed to get profile summary", "error", err)
		return nil, fmt.Errorf("%w: get summary: %v", errs.ErrStorage, err)
	}

	switch summary.Role {
	case domain.RoleEmployer:
		if companyName != nil {
			summary.DisplayName = *companyName
		}
		summary.Phone = employerPhone
		summary.PicturePath = logoPath
	default:
		if fullName != nil {
			summary.DisplayName = *fullName
		}
		summary.Phone = seekerPhone
		summary.PicturePath = profilePicturePath
	}

	if summary.DisplayName == "" {
		summary.DisplayName = domain.DisplayNamePlaceholder
	}

	return summary, nil
}
