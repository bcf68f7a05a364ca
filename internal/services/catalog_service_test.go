package services

import (
	"testing"

	"dastawez_backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_InactiveHiddenFromCustomerListing(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := NewCatalogService(repo)

	active := repo.add(&models.Service{
		Name:     "Photo Printing",
		Category: models.CategoryPrinting,
		Price:    decimal.NewFromInt(5),
		IsActive: true,
	})
	repo.add(&models.Service{
		Name:     "Caste Certificate",
		Category: models.CategoryCertificates,
		Price:    decimal.NewFromInt(50),
		IsActive: false,
	})

	customer, err := svc.ListActive()
	require.NoError(t, err)
	require.Len(t, customer, 1)
	assert.Equal(t, active.ID, customer[0].ID)

	admin, err := svc.ListAll()
	require.NoError(t, err)
	assert.Len(t, admin, 2)
}

func TestCatalog_ToggleRemovesFromCustomerCatalogOnly(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := NewCatalogService(repo)

	service := repo.add(&models.Service{
		Name:     "Bill Payment",
		Category: models.CategoryBills,
		Price:    decimal.NewFromInt(20),
		IsActive: true,
	})

	require.NoError(t, svc.SetActive(service.ID, false))

	customer, err := svc.ListActive()
	require.NoError(t, err)
	assert.Empty(t, customer)

	admin, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, admin, 1)
	assert.False(t, admin[0].IsActive)

	// Still fetchable by id; the handler decides who may see it.
	got, err := svc.GetService(service.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	require.NoError(t, svc.SetActive(service.ID, true))
	customer, err = svc.ListActive()
	require.NoError(t, err)
	assert.Len(t, customer, 1)
}
