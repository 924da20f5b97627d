package entity

// FieldError describes a single failed validation rule on an entity field.
type FieldError struct {
	Field string `json:"field"`
	Code  string `json:"code"`
}

const codeRequired = "required"

// requireString appends a required-field error when the value is empty.
func requireString(errs []FieldError, field, value string) []FieldError {
	if value == "" {
		return append(errs, FieldError{Field: field, Code: codeRequired})
	}
	return errs
}

func requireNonZero(errs []FieldError, field string, zero bool) []FieldError {
	if zero {
		return append(errs, FieldError{Field: field, Code: codeRequired})
	}
	return errs
}
