package domain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

type Validation struct {
	validator *validator.Validate
}

func NewValidation() *Validation {
	v := validator.New()
	v.RegisterValidation("storetype", validateStoreType)
	v.RegisterValidation("sortorder", validateSortOrder)
	v.RegisterStructValidation(validatePriceRange, SearchFilters{})
	v.RegisterStructValidation(validateOriginalPrice, Product{})
	return &Validation{validator: v}
}

func validateStoreType(fl validator.FieldLevel) bool {
	return StoreType(fl.Field().String()).IsValid()
}

func validateSortOrder(fl validator.FieldLevel) bool {
	return SortOrder(fl.Field().String()).IsValid()
}

// validatePriceRange rejects a lower price bound above the upper one
func validatePriceRange(sl validator.StructLevel) {
	f := sl.Current().Interface().(SearchFilters)
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		sl.ReportError(f.MaxPrice, "MaxPrice", "maxPrice", "gtefield", "MinPrice")
	}
}

// validateOriginalPrice requires the pre-discount price to be at least the current one
func validateOriginalPrice(sl validator.StructLevel) {
	p := sl.Current().Interface().(Product)
	if p.OriginalPrice != nil && *p.OriginalPrice < p.Price {
		sl.ReportError(p.OriginalPrice, "OriginalPrice", "originalPrice", "gtefield", "Price")
	}
}

// ValidationError wraps the validator's FieldError
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (v ValidationError) Error() string {
	return fmt.Sprintf("Field '%s': %s", v.Field, v.Message)
}

// ValidationErrors is a slice of ValidationError
type ValidationErrors []ValidationError

// Errors converts the validation errors to a slice of strings
func (ve ValidationErrors) Errors() []string {
	errs := make([]string, 0, len(ve))
	for _, v := range ve {
		errs = append(errs, v.Error())
	}
	return errs
}

func (v *Validation) Validate(i interface{}) ValidationErrors {
	var errs ValidationErrors

	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return ValidationErrors{{Field: "", Message: err.Error()}}
	}

	for _, fe := range fieldErrors {
		errs = append(errs, ValidationError{
			Field:   fe.Field(),
			Message: fmt.Sprintf("failed on the '%s' tag", fe.Tag()),
		})
	}

	return errs
}
