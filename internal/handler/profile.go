package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"parttimepro/internal/config"
	"parttimepro/internal/domain"
	"parttimepro/internal/service"
	"parttimepro/pkg/errors"
	"parttimepro/pkg/logger"
)

type ProfileHandler struct {
	profileService service.ProfileService
	uploads        config.UploadsConfig
	log            logger.Logger
}

func NewProfileHandler(profileService service.ProfileService, uploads config.UploadsConfig, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		uploads:        uploads,
		log:            log,
	}
}

// Get returns the caller's own profile, shaped by their role.
func (h *ProfileHandler) Get(c *gin.Context) {
	viewerID, viewerRole, ok := viewerFromContext(c)
	if !ok {
		return
	}

	var (
		profile interface{}
		err     error
	)
	if viewerRole == domain.RoleEmployer {
		profile, err = h.profileService.GetEmployerProfile(c.Request.Context(), viewerID)
	} else {
		profile, err = h.profileService.GetJobSeekerProfile(c.Request.Context(), viewerID)
	}
	if err != nil {
		c.JSON(errors.HTTPStatusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

type UpdateEmployerProfileRequest struct {
	CompanyName        string  `json:"company_name" binding:"required"`
	CompanyDescription string  `json:"company_description" binding:"required"`
	Industry           string  `json:"industry" binding:"required"`
	Website            *string `json:"website,omitempty" binding:"omitempty,url"`
	Address            string  `json:"address" binding:"required"`
	Phone              string  `json:"phone" binding:"required"`
	Email              string  `json:"email" binding:"required,email"`
}

type UpdateJobSeekerProfileRequest struct {
	FullName string  `json:"full_name" binding:"required"`
	Headline *string `json:"headline,omitempty"`
	Skills   *string `json:"skills,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    string  `json:"email" binding:"required,email"`
}

func (h *ProfileHandler) Update(c *gin.Context) {
	viewerID, viewerRole, ok := viewerFromContext(c)
	if !ok {
		return
	}

	if viewerRole == domain.RoleEmployer {
		var req UpdateEmployerProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		profile, err := h.profileService.UpdateEmployerProfile(c.Request.Context(), viewerID, service.UpdateEmployerProfileInput{
			CompanyName:        req.CompanyName,
			CompanyDescription: req.CompanyDescription,
			Industry:           req.Industry,
			Website:            req.Website,
			Address:            req.Address,
			Phone:              req.Phone,
			Email:              req.Email,
		})
		if err != nil {
			c.JSON(errors.HTTPStatusFromError(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, profile)
		return
	}

	var req UpdateJobSeekerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileService.UpdateJobSeekerProfile(c.Request.Context(), viewerID, service.UpdateJobSeekerProfileInput{
		FullName: req.FullName,
		Headline: req.Headline,
		Skills:   req.Skills,
		Phone:    req.Phone,
		Email:    req.Email,
	})
	if err != nil {
		c.JSON(errors.HTTPStatusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

var allowedPhotoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// UploadPhoto stores a company logo or a profile picture and records its
// relative path on the profile.
func (h *ProfileHandler) UploadPhoto(c *gin.Context) {
	viewerID, viewerRole, ok := viewerFromContext(c)
	if !ok {
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}

	if file.Size > h.uploads.MaxSizeByte {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedPhotoExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file type, only JPG, PNG and GIF are allowed"})
		return
	}

	subdir, prefix := "photos", "photo"
	if viewerRole == domain.RoleEmployer {
		subdir, prefix = "logos", "logo"
	}
	fileName := fmt.Sprintf("%s_%s%s", prefix, uuid.New().String(), ext)
	relPath := filepath.Join(subdir, fileName)
	dstPath := filepath.Join(h.uploads.Dir, relPath)

	if err := c.SaveUploadedFile(file, dstPath); err != nil {
		h.log.Error("Failed to save uploaded photo", "error", err, "user_id", viewerID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store file"})
		return
	}

	if err := h.profileService.SetPhoto(c.Request.Context(), viewerID, viewerRole, relPath); err != nil {
		c.JSON(errors.HTTPStatusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"path": relPath})
}
