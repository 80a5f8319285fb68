// Package validation wraps go-playground/validator for struct tag
// validation. flow.ValidateStruct uses it to gate pipeline values on
// their `validate:"..."` tags.
package validation
