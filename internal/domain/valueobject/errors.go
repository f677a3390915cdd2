package valueobject

// Reasons reported by the smart constructors.
const (
	ReasonEmpty            = "empty"
	ReasonTooLong          = "too long"
	ReasonInvalidFormat    = "invalid format"
	ReasonLengthOutOfRange = "length out of range"
)

// ValidationError is returned when raw input cannot become a value object.
// Reason is one of the Reason* constants.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
