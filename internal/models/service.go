package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// CustomField is one admin-defined form field rendered by the order wizard.
type CustomField struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
}

type Service struct {
	BaseModel
	Name                 string          `gorm:"not null" json:"name"`
	Description          string          `json:"description"`
	Category             ServiceCategory `gorm:"type:varchar(30);not null;index" json:"category"`
	Price                decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	PricePerCopy         bool            `gorm:"default:false" json:"price_per_copy"`
	Icon                 string          `json:"icon"`
	CustomFields         datatypes.JSON  `gorm:"type:jsonb" json:"custom_fields"`
	IsActive             bool            `gorm:"default:true;index" json:"is_active"`
	ShowUploadSection    bool            `gorm:"default:true" json:"show_upload_section"`
	ShowCompletedSection bool            `gorm:"default:true" json:"show_completed_section"`
}

// ParseCustomFields decodes the stored custom_fields JSON.
// Returns nil for empty or malformed payloads.
func (s *Service) ParseCustomFields() []CustomField {
	if len(s.CustomFields) == 0 {
		return nil
	}
	var fields []CustomField
	if err := json.Unmarshal(s.CustomFields, &fields); err != nil {
		return nil
	}
	return fields
}

// FormFields returns the fields the wizard should render: the service's
// own custom fields, or the category defaults when none are defined.
func (s *Service) FormFields() []CustomField {
	if fields := s.ParseCustomFields(); len(fields) > 0 {
		return fields
	}
	return DefaultCategoryFields(s.Category)
}

// DefaultCategoryFields returns the built-in field set for a category,
// used as a fallback for services without custom fields.
func DefaultCategoryFields(category ServiceCategory) []CustomField {
	switch category {
	case CategoryPrinting:
		return []CustomField{
			{ID: "copies", Label: "Number of Copies", Placeholder: "Enter number of copies", Type: "number", Required: true},
			{ID: "paperSize", Label: "Paper Size", Placeholder: "e.g., A4, A3, Letter", Type: "text", Required: true},
			{ID: "colorType", Label: "Print Type", Placeholder: "e.g., Color, Black & White", Type: "text", Required: true},
		}
	case CategoryCertificates:
		return []CustomField{
			{ID: "applicantName", Label: "Applicant Full Name", Placeholder: "Name as per documents", Type: "text", Required: true},
			{ID: "fatherName", Label: "Father's Name", Placeholder: "Enter father's name", Type: "text", Required: true},
			{ID: "dateOfBirth", Label: "Date of Birth", Placeholder: "DD/MM/YYYY", Type: "text", Required: true},
			{ID: "aadharNumber", Label: "Aadhar Number", Placeholder: "12-digit Aadhar number", Type: "text", Required: true},
			{ID: "samagraId", Label: "Samagra ID", Placeholder: "Enter Samagra ID", Type: "text", Required: false},
		}
	case CategoryBills:
		return []CustomField{
			{ID: "accountNumber", Label: "Account/Consumer Number", Placeholder: "Enter account number", Type: "text", Required: true},
			{ID: "billAmount", Label: "Bill Amount (₹)", Placeholder: "Enter bill amount", Type: "number", Required: true},
			{ID: "billType", Label: "Bill Type", Placeholder: "e.g., Electricity, Water, Gas", Type: "text", Required: true},
		}
	case CategoryMPOnline:
		return []CustomField{
			{ID: "applicantName", Label: "Applicant Full Name", Placeholder: "Name as per documents", Type: "text", Required: true},
			{ID: "fatherName", Label: "Father's Name", Placeholder: "Enter father's name", Type: "text", Required: true},
			{ID: "aadharNumber", Label: "Aadhar Number", Placeholder: "12-digit Aadhar number", Type: "text", Required: true},
			{ID: "serviceType", Label: "Service Required", Placeholder: "e.g., Domicile, Income, Caste", Type: "text", Required: true},
		}
	}
	return nil
}
