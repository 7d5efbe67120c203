package domain

import (
	"time"

	"github.com/google/uuid"
)

type EmployerProfile struct {
	UserID             uuid.UUID `json:"user_id"`
	CompanyName        string    `json:"company_name"`
	CompanyDescription string    `json:"company_description"`
	Industry           string    `json:"industry"`
	Website            *string   `json:"website,omitempty"`
	Address            string    `json:"address"`
	Phone              string    `json:"phone"`
	LogoPath           *string   `json:"logo_path,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type JobSeekerProfile struct {
	UserID         uuid.UUID `json:"user_id"`
	FullName       string    `json:"full_name"`
	Headline       *string   `json:"headline,omitempty"`
	Skills         *string   `json:"skills,omitempty"`
	Phone          *string   `json:"phone,omitempty"`
	ProfilePicture *string   `json:"profile_picture,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ProfileSummary is the presentational subset shared by both profile kinds,
// shown in conversation headers and lists.
type ProfileSummary struct {
	UserID      uuid.UUID `json:"user_id"`
	Role        string    `json:"role"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	PicturePath *string   `json:"picture_path,omitempty"`
}

// DisplayNamePlaceholder is used when a counterpart has not filled in a
// profile yet. Display metadata never blocks messaging.
const DisplayNamePlaceholder = "Unknown user"
