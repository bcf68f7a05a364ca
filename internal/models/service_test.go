package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/datatypes"
)

func TestFormFields_DefaultsByCategory(t *testing.T) {
	tests := []struct {
		category ServiceCategory
		firstID  string
		count    int
	}{
		{CategoryPrinting, "copies", 3},
		{CategoryCertificates, "applicantName", 5},
		{CategoryBills, "accountNumber", 3},
		{CategoryMPOnline, "applicantName", 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			s := &Service{Category: tt.category}
			fields := s.FormFields()
			require.Len(t, fields, tt.count)
			assert.Equal(t, tt.firstID, fields[0].ID)
		})
	}
}

func TestFormFields_CustomFieldsOverrideDefaults(t *testing.T) {
	s := &Service{
		Category:     CategoryPrinting,
		CustomFields: datatypes.JSON(`[{"id":"binding","label":"Binding Type","type":"text","required":true}]`),
	}

	fields := s.FormFields()
	require.Len(t, fields, 1)
	assert.Equal(t, "binding", fields[0].ID)
	assert.True(t, fields[0].Required)
}

func TestParseCustomFields_MalformedJSONReturnsNil(t *testing.T) {
	s := &Service{CustomFields: datatypes.JSON(`{not json`)}
	assert.Nil(t, s.ParseCustomFields())

	empty := &Service{}
	assert.Nil(t, empty.ParseCustomFields())
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderStatusPending, OrderStatusInProgress, OrderStatusReady,
		OrderStatusDelivered, OrderStatusCancelled,
	} {
		assert.True(t, ValidOrderStatus(s), string(s))
	}
	assert.False(t, ValidOrderStatus("shipped"))
}

func TestValidServiceCategory(t *testing.T) {
	for _, c := range []ServiceCategory{
		CategoryPrinting, CategoryCertificates, CategoryBills, CategoryMPOnline,
	} {
		assert.True(t, ValidServiceCategory(c), string(c))
	}
	assert.False(t, ValidServiceCategory("unknown"))
}

func TestOrderStatusLabel(t *testing.T) {
	assert.Equal(t, "Ready for Pickup", OrderStatusLabel(OrderStatusReady))
	assert.Equal(t, "In Progress", OrderStatusLabel(OrderStatusInProgress))
	assert.Equal(t, "custom", OrderStatusLabel(OrderStatus("custom")))
}
