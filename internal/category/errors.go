package category

import "errors"

var (
	ErrInvalidInput          = errors.New("description must not be empty")
	ErrOutOfVocabulary       = errors.New("classifier returned no known category")
	ErrClassifierUnavailable = errors.New("category classifier unavailable")
)
