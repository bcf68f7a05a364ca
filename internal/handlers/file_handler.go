package handlers

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"dastawez_backend/internal/logger"
	"dastawez_backend/internal/middleware"
	"dastawez_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// FileHandler streams stored documents back to their owners. Routes
// live at the engine root so stored file_url values resolve directly.
type FileHandler struct {
	*BaseHandler
	documents services.DocumentService
}

func NewFileHandler(base *BaseHandler, documents services.DocumentService) *FileHandler {
	return &FileHandler{BaseHandler: base, documents: documents}
}

func (h *FileHandler) RegisterRoutes(router *gin.Engine) {
	files := router.Group("/files")
	files.Use(middleware.AuthMiddleware())
	{
		files.GET("/*path", h.ServeFile)
	}
}

func (h *FileHandler) ServeFile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	path := strings.TrimPrefix(c.Param("path"), "/")
	download, err := h.documents.OpenFile(c.Request.Context(), path, userID, h.IsAdminRequest(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer download.Content.Close()

	c.Header("Content-Type", download.ContentType)
	c.Header("Content-Length", strconv.FormatInt(download.Size, 10))
	if c.Query("download") == "true" {
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, download.FileName))
	} else {
		c.Header("Content-Disposition", "inline")
	}

	if _, err := io.Copy(c.Writer, download.Content); err != nil {
		// Headers are already out, just record the broken stream.
		logger.Warn("file stream interrupted", "path", path, "error", err)
	}
}
