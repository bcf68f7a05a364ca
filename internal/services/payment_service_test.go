package services

import (
	"net/url"
	"strings"
	"testing"

	"dastawez_backend/internal/models"
	"dastawez_backend/internal/services/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUPI = UPIConfig{
	PayeeVPA:    "shop@upi",
	PayeeName:   "Dastawez Services",
	QREndpoint:  "https://api.qrserver.com/v1/create-qr-code/",
	QRImageSize: "200x200",
}

func TestBuildUPILink(t *testing.T) {
	link := BuildUPILink(testUPI, "Photo Printing", "a1b2c3d4-0000-0000-0000-000000000000", decimal.NewFromFloat(60))

	require.True(t, strings.HasPrefix(link, "upi://pay?"))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	params := parsed.Query()

	assert.Equal(t, "shop@upi", params.Get("pa"))
	assert.Equal(t, "Dastawez Services", params.Get("pn"))
	assert.Equal(t, "60.00", params.Get("am"))
	assert.Equal(t, "INR", params.Get("cu"))
	assert.Equal(t, "Order: Photo Printing - a1b2c3d4", params.Get("tn"))
}

func TestBuildUPILink_ShortOrderIDKeptWhole(t *testing.T) {
	link := BuildUPILink(testUPI, "Print", "abc", decimal.NewFromInt(5))
	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Order: Print - abc", parsed.Query().Get("tn"))
}

func TestBuildQRImageURL_EncodesLink(t *testing.T) {
	upiLink := BuildUPILink(testUPI, "Print", "a1b2c3d4e5", decimal.NewFromInt(5))
	qrURL := BuildQRImageURL(testUPI, upiLink)

	require.True(t, strings.HasPrefix(qrURL, testUPI.QREndpoint+"?"))

	parsed, err := url.Parse(qrURL)
	require.NoError(t, err)
	params := parsed.Query()
	assert.Equal(t, "200x200", params.Get("size"))
	// The data round-trips back to the exact deep link.
	assert.Equal(t, upiLink, params.Get("data"))
}

func TestPaymentInfo_UsesOrderAmountAndService(t *testing.T) {
	orderSvc, _, catalog, _, _ := newOrderServiceForTest()

	service := catalog.add(&models.Service{
		Name:         "Photo Printing",
		Price:        decimal.NewFromInt(5),
		PricePerCopy: true,
		IsActive:     true,
	})
	created, err := orderSvc.CreateOrder("user-1", dto.CreateOrderRequest{
		ServiceID: service.ID,
		Details:   map[string]interface{}{"copies": "3"},
	})
	require.NoError(t, err)

	payments := NewPaymentService(orderSvc, testUPI)
	info, err := payments.PaymentInfo(created.ID, "user-1", false)
	require.NoError(t, err)

	assert.True(t, info.Amount.Equal(decimal.NewFromInt(15)))
	assert.Contains(t, info.UPILink, "am=15.00")
	assert.Contains(t, info.QRImageURL, testUPI.QREndpoint)
	assert.Equal(t, "shop@upi", info.PayeeVPA)
}

func TestConfirmPayment_RequiresOwnership(t *testing.T) {
	orderSvc, _, catalog, _, _ := newOrderServiceForTest()

	service := catalog.add(&models.Service{
		Name:     "Print",
		Price:    decimal.NewFromInt(5),
		IsActive: true,
	})
	created, err := orderSvc.CreateOrder("owner", dto.CreateOrderRequest{
		ServiceID: service.ID,
		Details:   map[string]interface{}{},
	})
	require.NoError(t, err)

	payments := NewPaymentService(orderSvc, testUPI)

	_, err = payments.ConfirmPayment(created.ID, "intruder")
	assert.Error(t, err)

	resp, err := payments.ConfirmPayment(created.ID, "owner")
	require.NoError(t, err)
	assert.True(t, resp.Acknowledged)
}
