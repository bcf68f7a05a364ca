package dto

import "github.com/shopspring/decimal"

// PaymentInfoResponse carries everything the pay step renders: the UPI
// deep link for mobile and a QR image URL for desktop.
type PaymentInfoResponse struct {
	OrderID    string          `json:"order_id"`
	Amount     decimal.Decimal `json:"amount"`
	PayeeVPA   string          `json:"payee_vpa"`
	PayeeName  string          `json:"payee_name"`
	UPILink    string          `json:"upi_link"`
	QRImageURL string          `json:"qr_image_url"`
}

type PaymentConfirmResponse struct {
	OrderID      string `json:"order_id"`
	Acknowledged bool   `json:"acknowledged"`
	Message      string `json:"message"`
}
