package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"parttimepro/internal/service"
	"parttimepro/pkg/logger"
)

type UserHandler struct {
	profileService service.ProfileService
	log            logger.Logger
}

func NewUserHandler(profileService service.ProfileService, log logger.Logger) *UserHandler {
	return &UserHandler{
		profileService: profileService,
		log:            log,
	}
}

// GetMe returns the caller's own profile summary: id, role, display name,
// photo path.
func (h *UserHandler) GetMe(c *gin.Context) {
	viewerID, _, ok := viewerFromContext(c)
	if !ok {
		return
	}

	summary, err := h.profileService.GetSummary(c.Request.Context(), viewerID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
