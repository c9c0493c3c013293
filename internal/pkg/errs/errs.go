package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Each typed error below
// unwraps to exactly one of these.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrVersionIsInvalid  = errors.New("version is invalid")

	ErrStoreFailure    = errors.New("store operation failed")
	ErrAnalysisData    = errors.New("analysis data unavailable")
	ErrRenderFailure   = errors.New("document render failed")
	ErrLifecycleDenied = errors.New("status transition denied")
)

// sanitize strips newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError indicates that a lookup by identifier found nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value violates a business
// rule or format constraint.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a numeric value outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates a required value is absent.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError indicates an aggregate version conflict.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewVersionIsInvalidError(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

func NewVersionIsInvalidErrorWithCause(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName))
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// StoreError indicates an I/O failure against the record store. It carries
// the pipeline stage that issued the call so callers can tell which part of
// an operation failed. Store errors are considered retryable.
type StoreError struct {
	Stage string
	Cause error
}

func NewStoreError(stage string, cause error) *StoreError {
	return &StoreError{Stage: stage, Cause: cause}
}

func (e *StoreError) Error() string {
	return sanitize(fmt.Sprintf("%s: stage is: %s (cause: %s)", ErrStoreFailure, e.Stage, e.Cause))
}

func (e *StoreError) Unwrap() error {
	return ErrStoreFailure
}

// AnalysisDataError indicates a market-intelligence read failure. Absence of
// fresh intelligence is not an error and must not be reported through this
// type.
type AnalysisDataError struct {
	ProductID string
	Cause     error
}

func NewAnalysisDataError(productID string, cause error) *AnalysisDataError {
	return &AnalysisDataError{ProductID: productID, Cause: cause}
}

func (e *AnalysisDataError) Error() string {
	return sanitize(fmt.Sprintf("%s: product is: %s (cause: %s)", ErrAnalysisData, e.ProductID, e.Cause))
}

func (e *AnalysisDataError) Unwrap() error {
	return ErrAnalysisData
}

// RenderError indicates that assembling or rendering one document kind
// failed. Other documents of the same package are unaffected.
type RenderError struct {
	Kind  string
	Cause error
}

func NewRenderError(kind string, cause error) *RenderError {
	return &RenderError{Kind: kind, Cause: cause}
}

func (e *RenderError) Error() string {
	return sanitize(fmt.Sprintf("%s: kind is: %s (cause: %s)", ErrRenderFailure, e.Kind, e.Cause))
}

func (e *RenderError) Unwrap() error {
	return ErrRenderFailure
}

// LifecycleError indicates a rejected status transition. The current policy
// accepts every transition, so this type is reserved for future guarded
// transition tables.
type LifecycleError struct {
	From  string
	To    string
	Cause error
}

func NewLifecycleError(from, to string, cause error) *LifecycleError {
	return &LifecycleError{From: from, To: to, Cause: cause}
}

func (e *LifecycleError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: from is: %s, to is: %s (cause: %s)",
			ErrLifecycleDenied, e.From, e.To, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: from is: %s, to is: %s", ErrLifecycleDenied, e.From, e.To))
}

func (e *LifecycleError) Unwrap() error {
	return ErrLifecycleDenied
}
