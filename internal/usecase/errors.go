package usecase

// DomainError is a business-rule failure: bad input, missing lead, disabled
// component. It aborts only the operation that raised it.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError is an infrastructure failure: an upstream API said no, or
// the store could not be written. Codes name the failing service so batch
// reporting can say which call broke.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

// Error codes used across the use cases.
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeLeadNotFound      = "LEAD_NOT_FOUND"
	CodeGeneratorDisabled = "GENERATOR_DISABLED"
	CodeComposerDisabled  = "COMPOSER_DISABLED"
	CodeDispatchDisabled  = "DISPATCH_DISABLED"
	CodeLeadHasNoEmail    = "LEAD_HAS_NO_EMAIL"
	CodeEmptyDraft        = "EMPTY_DRAFT"
	CodePlacesError       = "PLACES_ERROR"
	CodeCompositionError  = "COMPOSITION_ERROR"
	CodeEmailError        = "EMAIL_ERROR"
	CodeDatabaseError     = "DATABASE_ERROR"
)
