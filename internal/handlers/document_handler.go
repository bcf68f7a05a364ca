package handlers

import (
	"net/http"

	"dastawez_backend/internal/middleware"
	"dastawez_backend/internal/models"
	"dastawez_backend/internal/services"
	"dastawez_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	*BaseHandler
	documents services.DocumentService
}

func NewDocumentHandler(base *BaseHandler, documents services.DocumentService) *DocumentHandler {
	return &DocumentHandler{BaseHandler: base, documents: documents}
}

func (h *DocumentHandler) RegisterRoutes(r *gin.RouterGroup) {
	orderDocs := r.Group("/orders/:id/documents")
	orderDocs.Use(middleware.AuthMiddleware())
	{
		orderDocs.POST("", h.UploadOrderDocuments)
		orderDocs.GET("", h.ListOrderDocuments)
	}

	docs := r.Group("/documents")
	docs.Use(middleware.AuthMiddleware())
	{
		docs.POST("", h.UploadUserDocument)
		docs.GET("", h.ListUserDocuments)
		docs.DELETE("/:id", h.DeleteUserDocument)
		docs.DELETE("/order/:id", h.DeleteOrderDocument)
	}
}

// UploadOrderDocuments accepts a multipart batch under the "files"
// field. The optional "document_type" field defaults to customer
// uploads; only admins may send "completed".
func (h *DocumentHandler) UploadOrderDocuments(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("invalid multipart form: "+err.Error()))
		return
	}

	files := form.File["files"]
	docType := models.DocumentTypeUploaded
	if values := form.Value["document_type"]; len(values) > 0 && values[0] != "" {
		docType = models.DocumentType(values[0])
	}

	resp, err := h.documents.AttachToOrder(
		c.Request.Context(), c.Param("id"), userID, h.IsAdminRequest(c), docType, files)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	status := http.StatusCreated
	if resp.Failed > 0 {
		// Partial success still tells the client exactly what failed.
		status = http.StatusMultiStatus
	}
	c.JSON(status, resp)
}

func (h *DocumentHandler) ListOrderDocuments(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.documents.ListOrderDocuments(c.Param("id"), userID, h.IsAdminRequest(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DocumentHandler) DeleteOrderDocument(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.documents.DeleteOrderDocument(c.Request.Context(), c.Param("id"), userID, h.IsAdminRequest(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DocumentHandler) UploadUserDocument(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("file is required"))
		return
	}

	resp, err := h.documents.UploadUserDocument(c.Request.Context(), userID, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *DocumentHandler) ListUserDocuments(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.documents.ListUserDocuments(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DocumentHandler) DeleteUserDocument(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.documents.DeleteUserDocument(c.Request.Context(), c.Param("id"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
