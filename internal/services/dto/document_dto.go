package dto

import (
	"time"

	"dastawez_backend/internal/models"
)

type OrderDocumentResponse struct {
	ID           string              `json:"id"`
	OrderID      string              `json:"order_id"`
	FileName     string              `json:"file_name"`
	FileURL      string              `json:"file_url"`
	DocumentType models.DocumentType `json:"document_type"`
	CreatedAt    time.Time           `json:"created_at"`
}

type UserDocumentResponse struct {
	ID           string    `json:"id"`
	FileName     string    `json:"file_name"`
	FileURL      string    `json:"file_url"`
	DocumentType string    `json:"document_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// FileUploadResult reports the outcome of one file within a batch
// upload. Failed files carry the reason instead of being dropped.
type FileUploadResult struct {
	FileName string                 `json:"file_name"`
	Success  bool                   `json:"success"`
	Error    string                 `json:"error,omitempty"`
	Document *OrderDocumentResponse `json:"document,omitempty"`
}

type UploadBatchResponse struct {
	Uploaded int                `json:"uploaded"`
	Failed   int                `json:"failed"`
	Results  []FileUploadResult `json:"results"`
}

func NewOrderDocumentResponse(d *models.OrderDocument) OrderDocumentResponse {
	return OrderDocumentResponse{
		ID:           d.ID,
		OrderID:      d.OrderID,
		FileName:     d.FileName,
		FileURL:      d.FileURL,
		DocumentType: d.DocumentType,
		CreatedAt:    d.CreatedAt,
	}
}

func NewUserDocumentResponse(d *models.UserDocument) UserDocumentResponse {
	return UserDocumentResponse{
		ID:           d.ID,
		FileName:     d.FileName,
		FileURL:      d.FileURL,
		DocumentType: d.DocumentType,
		CreatedAt:    d.CreatedAt,
	}
}
