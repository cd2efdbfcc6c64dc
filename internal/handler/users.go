package handler

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MichaelOwusu007/vdlpro/internal/apierror"
	"github.com/MichaelOwusu007/vdlpro/internal/config"
	"github.com/MichaelOwusu007/vdlpro/internal/dto"
	"github.com/MichaelOwusu007/vdlpro/internal/middleware"
	"github.com/MichaelOwusu007/vdlpro/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UsersHandler struct {
	svc service.AuthService
	cfg *config.Config
}

func NewUsersHandler(svc service.AuthService, cfg *config.Config) *UsersHandler {
	return &UsersHandler{svc: svc, cfg: cfg}
}

// UploadAvatar accepts a multipart image in the "avatar" field, stores it
// under the upload directory, and records its public URL on the user.
// Only image/* content up to the configured size limit is accepted.
func (h *UsersHandler) UploadAvatar(c *gin.Context) {
	claims := middleware.GetClaims(c)
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Invalid or expired token"))
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No file uploaded"))
		return
	}

	maxBytes := int64(h.cfg.MaxUploadMB) << 20
	if file.Size > maxBytes {
		c.JSON(http.StatusBadRequest, apierror.New(fmt.Sprintf("File exceeds %dMB limit", h.cfg.MaxUploadMB)))
		return
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		c.JSON(http.StatusBadRequest, apierror.New("Only image uploads are allowed"))
		return
	}

	if err := os.MkdirAll(h.cfg.UploadDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Server error"))
		return
	}

	name := fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.IntN(1_000_000_000), filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(h.cfg.UploadDir, name)); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Server error"))
		return
	}

	avatarURL := "/uploads/" + name
	if _, err := h.svc.SetAvatar(c.Request.Context(), userID, avatarURL); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AvatarResponse{OK: true, AvatarURL: avatarURL})
}

// PublicProfile returns the public fields of any user by ID.
func (h *UsersHandler) PublicProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(service.ErrUserNotFound.Error()))
		return
	}

	user, svcErr := h.svc.PublicProfile(c.Request.Context(), id)
	if svcErr != nil {
		writeServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
