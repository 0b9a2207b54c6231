package ledger

import (
	"errors"
	"fmt"
	"strconv"
)

// Kind classifies a failed ledger operation.
type Kind int

const (
	KindMissingField Kind = iota + 1
	KindInvalidDate
	KindUnknownFarm
	KindNotFound
	KindStore
)

func (k Kind) String() string {
	switch k {
	case KindMissingField:
		return "missing_field"
	case KindInvalidDate:
		return "invalid_date"
	case KindUnknownFarm:
		return "unknown_farm"
	case KindNotFound:
		return "not_found"
	case KindStore:
		return "store_error"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Validation reports whether k is a malformed-payload failure.
func (k Kind) Validation() bool {
	return k == KindMissingField || k == KindInvalidDate
}

// Error is returned by every ledger operation that fails. Caller errors
// (validation, unknown farm, not found) are raised before anything is
// written; store errors mean the transaction was rolled back.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindMissingField:
		return fmt.Sprintf("missing required field: %s", e.Detail)
	case KindInvalidDate:
		if e.Err != nil {
			return fmt.Sprintf("invalid date %q: %v", e.Detail, e.Err)
		}
		return fmt.Sprintf("invalid date %q", e.Detail)
	case KindUnknownFarm:
		return fmt.Sprintf("farm name '%s' does not exist", e.Detail)
	case KindNotFound:
		return fmt.Sprintf("record %s not found", e.Detail)
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "store error"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func MissingField(name string) *Error {
	return &Error{Kind: KindMissingField, Detail: name}
}

// InvalidDate reports raw as unparseable in the given human-readable format.
func InvalidDate(raw, format string) *Error {
	return &Error{Kind: KindInvalidDate, Detail: raw, Err: fmt.Errorf("expected format %s", format)}
}

func UnknownFarm(farmName string) *Error {
	return &Error{Kind: KindUnknownFarm, Detail: farmName}
}

func NotFound(id uint) *Error {
	return &Error{Kind: KindNotFound, Detail: strconv.FormatUint(uint64(id), 10)}
}

func StoreError(err error) *Error {
	return &Error{Kind: KindStore, Err: err}
}

// KindOf extracts the Kind of a ledger error anywhere in err's chain.
func KindOf(err error) (Kind, bool) {
	var ledgerErr *Error
	if errors.As(err, &ledgerErr) {
		return ledgerErr.Kind, true
	}
	return 0, false
}
