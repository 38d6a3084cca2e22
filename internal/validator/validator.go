package validator

// Validator collects named validation errors for a request.
type Validator struct {
	Errors map[string]string
}

// New returns an empty Validator.
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid returns true if there are no recorded errors.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records an error message for a key, keeping the first one recorded.
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

// Check records message under key when ok is false.
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// ValidationError bundles the collected field errors for an API response.
type ValidationError struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError wraps a validator's field errors with a summary message.
func NewValidationError(message string, errors map[string]string) *ValidationError {
	return &ValidationError{Message: message, Errors: errors}
}
