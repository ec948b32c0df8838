package apperrors

import "errors"

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrGateway indicates that an outbound call to a third-party service failed.
var ErrGateway = errors.New("external gateway error")
