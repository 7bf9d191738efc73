package errors

import (
	"encoding/json"
)

// BusinessErr signals violation of a business rule
type BusinessErr struct {
	target  string
	message string
}

func (e *BusinessErr) Error() string {
	return e.message
}

func (e *BusinessErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Target  string `json:"target"`
		Message string `json:"message"`
	}{Target: e.target, Message: e.message})
}

// NewBusinessErr builds new BusinessErr
func NewBusinessErr(target string, msg string) error {
	return &BusinessErr{
		target:  target,
		message: msg,
	}
}

// EntryNotFoundErr signals that entry is absent. Ownership checks on
// customer-level resources collapse to it as well, so foreign records
// are not distinguishable from missing ones.
type EntryNotFoundErr struct {
	message string
}

func (e *EntryNotFoundErr) Error() string {
	return e.message
}

// NewEntryNotFoundErr builds new EntryNotFoundErr
func NewEntryNotFoundErr(msg string) *EntryNotFoundErr {
	return &EntryNotFoundErr{message: msg}
}

// UnauthorizedErr signals that entry exists but caller has no claim to it.
// Raised on lead-level checks only.
type UnauthorizedErr struct {
	message string
}

func (e *UnauthorizedErr) Error() string {
	return e.message
}

// NewUnauthorizedErr builds new UnauthorizedErr
func NewUnauthorizedErr(msg string) *UnauthorizedErr {
	return &UnauthorizedErr{message: msg}
}

// ConflictErr signals uniqueness violation
type ConflictErr struct {
	target  string
	message string
}

func (e *ConflictErr) Error() string {
	return e.message
}

func (e *ConflictErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Target  string `json:"target"`
		Message string `json:"message"`
	}{Target: e.target, Message: e.message})
}

// NewConflictErr builds new ConflictErr
func NewConflictErr(target string, msg string) *ConflictErr {
	return &ConflictErr{target: target, message: msg}
}

// StoreUnavailableErr signals transient storage failure, caller may retry
type StoreUnavailableErr struct {
	cause error
}

func (e *StoreUnavailableErr) Error() string {
	return "storage is unavailable - " + e.cause.Error()
}

func (e *StoreUnavailableErr) Unwrap() error {
	return e.cause
}

// NewStoreUnavailableErr builds new StoreUnavailableErr
func NewStoreUnavailableErr(cause error) *StoreUnavailableErr {
	return &StoreUnavailableErr{cause: cause}
}
