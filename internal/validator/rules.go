package validator

import (
	"dastawez_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerDomainRules wires the catalog/order enum validations.
func registerDomainRules(v *validator.Validate) {
	_ = v.RegisterValidation("service_category", func(fl validator.FieldLevel) bool {
		return models.ValidServiceCategory(models.ServiceCategory(fl.Field().String()))
	})

	_ = v.RegisterValidation("order_status", func(fl validator.FieldLevel) bool {
		return models.ValidOrderStatus(models.OrderStatus(fl.Field().String()))
	})
}
