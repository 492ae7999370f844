package formhttp

import (
	"errors"
	"net/http"
)

// HTTPError is an error with a status code and a stable machine readable key.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

var (
	ErrBadRequest       = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrNotFound         = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrUnknownRule      = HTTPError{Code: http.StatusUnprocessableEntity, Key: "unknown_rule"}
	ErrInvalidField     = HTTPError{Code: http.StatusUnprocessableEntity, Key: "invalid_field"}
	ErrInternal         = HTTPError{Code: http.StatusInternalServerError, Key: "internal_error"}
	ErrRuleFailed       = HTTPError{Code: http.StatusBadGateway, Key: "rule_failed"}
	ErrStoreUnavailable = HTTPError{Code: http.StatusServiceUnavailable, Key: "store_unavailable"}
)

// ErrNoStore is returned by store routes when the handler has no store.
var ErrNoStore = errors.New("formhttp: no store configured")
