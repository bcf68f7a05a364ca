package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"dastawez_backend/internal/events"
	"dastawez_backend/internal/logger"
	"dastawez_backend/internal/models"
	"dastawez_backend/internal/repositories"
	"dastawez_backend/internal/services/dto"
	"dastawez_backend/internal/storage"
	"dastawez_backend/pkg/apperrors"
)

type UploadLimits struct {
	MaxSize      int64
	AllowedTypes []string
}

type DocumentService interface {
	AttachToOrder(ctx context.Context, orderID, requesterID string, isAdmin bool, docType models.DocumentType, files []*multipart.FileHeader) (*dto.UploadBatchResponse, error)
	ListOrderDocuments(orderID, requesterID string, isAdmin bool) ([]dto.OrderDocumentResponse, error)
	DeleteOrderDocument(ctx context.Context, documentID, requesterID string, isAdmin bool) error

	UploadUserDocument(ctx context.Context, userID string, file *multipart.FileHeader) (*dto.UserDocumentResponse, error)
	ListUserDocuments(userID string) ([]dto.UserDocumentResponse, error)
	DeleteUserDocument(ctx context.Context, documentID, userID string) error

	OpenFile(ctx context.Context, path, requesterID string, isAdmin bool) (*FileDownload, error)
}

// FileDownload is an opened stored file ready for streaming. The
// caller owns Content and must close it.
type FileDownload struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.ReadCloser
}

type DocumentServiceImpl struct {
	documents repositories.DocumentRepository
	orders    repositories.OrderRepository
	store     storage.Storage
	limits    UploadLimits
	bus       *events.Bus
}

func NewDocumentService(
	documents repositories.DocumentRepository,
	orders repositories.OrderRepository,
	store storage.Storage,
	limits UploadLimits,
	bus *events.Bus,
) DocumentService {
	return &DocumentServiceImpl{
		documents: documents,
		orders:    orders,
		store:     store,
		limits:    limits,
		bus:       bus,
	}
}

// AttachToOrder stores each file and records its metadata. Individual
// failures do not abort the batch; every file gets an entry in the
// response so the client can retry exactly what failed.
func (s *DocumentServiceImpl) AttachToOrder(
	ctx context.Context,
	orderID, requesterID string,
	isAdmin bool,
	docType models.DocumentType,
	files []*multipart.FileHeader,
) (*dto.UploadBatchResponse, error) {
	order, err := s.authorizeOrder(orderID, requesterID, isAdmin)
	if err != nil {
		return nil, err
	}

	if docType == models.DocumentTypeCompleted && !isAdmin {
		return nil, apperrors.NewForbiddenError("only staff may attach completed documents")
	}
	if docType != models.DocumentTypeUploaded && docType != models.DocumentTypeCompleted {
		return nil, apperrors.NewBadRequestError("unknown document type")
	}
	if len(files) == 0 {
		return nil, apperrors.NewBadRequestError("no files provided")
	}

	resp := &dto.UploadBatchResponse{Results: make([]dto.FileUploadResult, 0, len(files))}
	for _, file := range files {
		result := s.attachOne(ctx, order, docType, file)
		if result.Success {
			resp.Uploaded++
		} else {
			resp.Failed++
		}
		resp.Results = append(resp.Results, result)
	}

	if resp.Uploaded > 0 {
		s.bus.Publish(events.Event{
			Type:   events.DocumentUploaded,
			UserID: order.UserID,
			Payload: map[string]interface{}{
				"order_id":     order.ID,
				"service_name": serviceName(order),
				"count":        resp.Uploaded,
			},
		})
	}
	return resp, nil
}

func (s *DocumentServiceImpl) attachOne(
	ctx context.Context,
	order *models.Order,
	docType models.DocumentType,
	file *multipart.FileHeader,
) dto.FileUploadResult {
	result := dto.FileUploadResult{FileName: file.Filename}

	if err := s.validateFile(file); err != nil {
		result.Error = err.Error()
		return result
	}

	path := objectPath(order.UserID, order.ID, file.Filename)
	url, err := s.saveFile(ctx, path, file)
	if err != nil {
		logger.Error("file upload failed", "order_id", order.ID, "file", file.Filename, "error", err)
		result.Error = "failed to store file"
		return result
	}

	doc := &models.OrderDocument{
		OrderID:      order.ID,
		FileName:     file.Filename,
		FileURL:      url,
		StoragePath:  path,
		DocumentType: docType,
	}
	if err := s.documents.CreateOrderDocument(doc); err != nil {
		logger.Error("document metadata insert failed", "order_id", order.ID, "file", file.Filename, "error", err)
		if derr := s.store.Delete(ctx, path); derr != nil {
			logger.Warn("failed to remove stored file after insert failure", "path", path, "error", derr)
		}
		result.Error = "failed to record document"
		return result
	}

	docResp := dto.NewOrderDocumentResponse(doc)
	result.Success = true
	result.Document = &docResp
	return result
}

func (s *DocumentServiceImpl) ListOrderDocuments(orderID, requesterID string, isAdmin bool) ([]dto.OrderDocumentResponse, error) {
	if _, err := s.authorizeOrder(orderID, requesterID, isAdmin); err != nil {
		return nil, err
	}
	docs, err := s.documents.FindByOrder(orderID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := make([]dto.OrderDocumentResponse, 0, len(docs))
	for i := range docs {
		resp = append(resp, dto.NewOrderDocumentResponse(&docs[i]))
	}
	return resp, nil
}

func (s *DocumentServiceImpl) DeleteOrderDocument(ctx context.Context, documentID, requesterID string, isAdmin bool) error {
	doc, err := s.documents.FindOrderDocument(documentID)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return apperrors.NewNotFoundError("document", "document not found")
		}
		return apperrors.InternalError(err)
	}
	if _, err := s.authorizeOrder(doc.OrderID, requesterID, isAdmin); err != nil {
		return err
	}

	if err := s.documents.DeleteOrderDocument(documentID); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.store.Delete(ctx, doc.StoragePath); err != nil {
		logger.Warn("failed to remove stored file for deleted document",
			"document_id", documentID, "path", doc.StoragePath, "error", err)
	}
	return nil
}

func (s *DocumentServiceImpl) UploadUserDocument(ctx context.Context, userID string, file *multipart.FileHeader) (*dto.UserDocumentResponse, error) {
	if file == nil {
		return nil, apperrors.NewBadRequestError("no file provided")
	}
	if err := s.validateFile(file); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	path := objectPath(userID, "personal", file.Filename)
	url, err := s.saveFile(ctx, path, file)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	doc := &models.UserDocument{
		UserID:       userID,
		FileName:     file.Filename,
		FileURL:      url,
		StoragePath:  path,
		DocumentType: file.Header.Get("Content-Type"),
	}
	if err := s.documents.CreateUserDocument(doc); err != nil {
		if derr := s.store.Delete(ctx, path); derr != nil {
			logger.Warn("failed to remove stored file after insert failure", "path", path, "error", derr)
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewUserDocumentResponse(doc)
	return &resp, nil
}

func (s *DocumentServiceImpl) ListUserDocuments(userID string) ([]dto.UserDocumentResponse, error) {
	docs, err := s.documents.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := make([]dto.UserDocumentResponse, 0, len(docs))
	for i := range docs {
		resp = append(resp, dto.NewUserDocumentResponse(&docs[i]))
	}
	return resp, nil
}

func (s *DocumentServiceImpl) DeleteUserDocument(ctx context.Context, documentID, userID string) error {
	doc, err := s.documents.FindUserDocument(documentID)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return apperrors.NewNotFoundError("document", "document not found")
		}
		return apperrors.InternalError(err)
	}
	if doc.UserID != userID {
		return apperrors.NewForbiddenError("document belongs to another user")
	}

	if err := s.documents.DeleteUserDocument(documentID); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.store.Delete(ctx, doc.StoragePath); err != nil {
		logger.Warn("failed to remove stored file for deleted document",
			"document_id", documentID, "path", doc.StoragePath, "error", err)
	}
	return nil
}

// OpenFile resolves a storage path back to its metadata row, applies
// the same access rules as the listing endpoints and opens the stored
// object for streaming.
func (s *DocumentServiceImpl) OpenFile(ctx context.Context, path, requesterID string, isAdmin bool) (*FileDownload, error) {
	if doc, err := s.documents.FindOrderDocumentByPath(path); err == nil {
		if _, err := s.authorizeOrder(doc.OrderID, requesterID, isAdmin); err != nil {
			return nil, err
		}
		return s.openStored(ctx, path, doc.FileName, contentTypeFor(doc.FileName, ""))
	} else if !errors.Is(err, repositories.ErrDocumentNotFound) {
		return nil, apperrors.InternalError(err)
	}

	doc, err := s.documents.FindUserDocumentByPath(path)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, apperrors.NewNotFoundError("document", "file not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if doc.UserID != requesterID && !isAdmin {
		return nil, apperrors.NewForbiddenError("document belongs to another user")
	}
	return s.openStored(ctx, path, doc.FileName, contentTypeFor(doc.FileName, doc.DocumentType))
}

func (s *DocumentServiceImpl) openStored(ctx context.Context, path, name, contentType string) (*FileDownload, error) {
	exists, err := s.store.Exists(ctx, path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !exists {
		return nil, apperrors.NewNotFoundError("document", "file missing from storage")
	}

	size, err := s.store.GetSize(ctx, path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	reader, err := s.store.Get(ctx, path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &FileDownload{
		FileName:    name,
		ContentType: contentType,
		Size:        size,
		Content:     reader,
	}, nil
}

// contentTypeFor prefers the MIME type recorded at upload time, then
// the filename extension.
func contentTypeFor(filename, recorded string) string {
	if strings.Contains(recorded, "/") {
		return recorded
	}
	if ct := mime.TypeByExtension(filepath.Ext(filename)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func (s *DocumentServiceImpl) authorizeOrder(orderID, requesterID string, isAdmin bool) (*models.Order, error) {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.NewNotFoundError("order", "order not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if !isAdmin && order.UserID != requesterID {
		return nil, apperrors.NewForbiddenError("order belongs to another user")
	}
	return order, nil
}

func (s *DocumentServiceImpl) validateFile(file *multipart.FileHeader) error {
	if s.limits.MaxSize > 0 && file.Size > s.limits.MaxSize {
		return fmt.Errorf("file exceeds the %d MB limit", s.limits.MaxSize/(1024*1024))
	}
	if len(s.limits.AllowedTypes) == 0 {
		return nil
	}
	contentType := file.Header.Get("Content-Type")
	for _, allowed := range s.limits.AllowedTypes {
		if contentType == allowed {
			return nil
		}
	}
	return fmt.Errorf("file type %q is not allowed", contentType)
}

func (s *DocumentServiceImpl) saveFile(ctx context.Context, path string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := s.store.Save(ctx, path, src, file.Header.Get("Content-Type")); err != nil {
		return "", err
	}
	return s.store.GetURL(ctx, path)
}

// objectPath namespaces stored files by owner and scope so listing and
// cleanup stay cheap.
func objectPath(userID, scope, filename string) string {
	base := strings.ReplaceAll(filepath.Base(filename), " ", "_")
	return fmt.Sprintf("%s/%s/%d-%s", userID, scope, time.Now().UnixNano(), base)
}
