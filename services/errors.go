package services

// ValidationError marks input that failed form validation. Err is usually a
// validation.Errors map so handlers can return it field by field.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
