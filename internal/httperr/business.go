package httperr

import "errors"

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// CodeOf returns the business code carried by err, or "" when err is not a business error.
func CodeOf(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

// retryable codes describe transient persistence failures; the caller may repeat the request.
var retryable = map[string]bool{
	CodePersistenceTimeout:     true,
	CodePersistenceUnavailable: true,
}

func IsRetryable(err error) bool {
	return retryable[CodeOf(err)]
}
