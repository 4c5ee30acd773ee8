// Package domain defines error types for the storefront.
package domain

import (
	"errors"
	"fmt"
)

// Reason codes carried by every mutation outcome so the presentation layer
// can tell "added" from "already there".
const (
	ReasonOK                 = "ok"
	ReasonNoSession          = "no_session"
	ReasonAlreadyPresent     = "already_present"
	ReasonInvalidCredentials = "invalid_credentials"
	ReasonEmailTaken         = "email_taken"
	ReasonStorageCorrupt     = "storage_corrupt"
	ReasonInvalidProduct     = "invalid_product"
	ReasonProductNotFound    = "product_not_found"
	ReasonInvalidQuantity    = "invalid_quantity"
	ReasonInternal           = "internal"
)

// NoSessionError is returned when a session-gated mutation runs anonymously
type NoSessionError struct {
	Action string
}

// Error implements the error interface for NoSessionError
func (e *NoSessionError) Error() string {
	return fmt.Sprintf("no session: login required to %s", e.Action)
}

// Is allows proper error type checking with errors.Is()
func (e *NoSessionError) Is(target error) bool {
	_, ok := target.(*NoSessionError)
	return ok
}

// AlreadyPresentError is returned on a duplicate wishlist add
type AlreadyPresentError struct {
	ProductID string
}

// Error implements the error interface for AlreadyPresentError
func (e *AlreadyPresentError) Error() string {
	return fmt.Sprintf("already present: id=%s", e.ProductID)
}

// Is allows proper error type checking with errors.Is()
func (e *AlreadyPresentError) Is(target error) bool {
	_, ok := target.(*AlreadyPresentError)
	return ok
}

// InvalidCredentialsError is returned when no credential matches a login
type InvalidCredentialsError struct {
	Email string
}

// Error implements the error interface for InvalidCredentialsError
func (e *InvalidCredentialsError) Error() string {
	return "invalid email or password"
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidCredentialsError) Is(target error) bool {
	_, ok := target.(*InvalidCredentialsError)
	return ok
}

// EmailTakenError is returned when signing up with a registered email
type EmailTakenError struct {
	Email string
}

// Error implements the error interface for EmailTakenError
func (e *EmailTakenError) Error() string {
	return fmt.Sprintf("email already exists: %s", e.Email)
}

// Is allows proper error type checking with errors.Is()
func (e *EmailTakenError) Is(target error) bool {
	_, ok := target.(*EmailTakenError)
	return ok
}

// StorageCorruptError describes stored content that could not be used.
// Stores recover from it locally; it is only recorded for diagnostics.
type StorageCorruptError struct {
	Key   string
	Cause error
}

// Error implements the error interface for StorageCorruptError
func (e *StorageCorruptError) Error() string {
	return fmt.Sprintf("storage corrupt: key=%s: %v", e.Key, e.Cause)
}

// Unwrap returns the decode or validation failure
func (e *StorageCorruptError) Unwrap() error { return e.Cause }

// Is allows proper error type checking with errors.Is()
func (e *StorageCorruptError) Is(target error) bool {
	_, ok := target.(*StorageCorruptError)
	return ok
}

// ProductNotFoundError is returned when a product with the given ID is not found
type ProductNotFoundError struct {
	ProductID string
}

// Error implements the error interface for ProductNotFoundError
func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product not found: id=%s", e.ProductID)
}

// Is allows proper error type checking with errors.Is()
func (e *ProductNotFoundError) Is(target error) bool {
	_, ok := target.(*ProductNotFoundError)
	return ok
}

// InvalidProductError is returned when product validation fails
type InvalidProductError struct {
	Field  string
	Reason string
	Value  interface{}
}

// Error implements the error interface for InvalidProductError
func (e *InvalidProductError) Error() string {
	return fmt.Sprintf("invalid product: field=%s, reason=%s, value=%v", e.Field, e.Reason, e.Value)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidProductError) Is(target error) bool {
	_, ok := target.(*InvalidProductError)
	return ok
}

// InvalidQuantityError is returned when an add carries a non-positive quantity
type InvalidQuantityError struct {
	ProductID string
	Quantity  int
}

// Error implements the error interface for InvalidQuantityError
func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity: id=%s, quantity=%d", e.ProductID, e.Quantity)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidQuantityError) Is(target error) bool {
	_, ok := target.(*InvalidQuantityError)
	return ok
}

// Helper functions for creating errors with context

// NewNoSessionError creates a new NoSessionError
func NewNoSessionError(action string) error {
	return &NoSessionError{Action: action}
}

// NewAlreadyPresentError creates a new AlreadyPresentError
func NewAlreadyPresentError(productID string) error {
	return &AlreadyPresentError{ProductID: productID}
}

// NewInvalidCredentialsError creates a new InvalidCredentialsError
func NewInvalidCredentialsError(email string) error {
	return &InvalidCredentialsError{Email: email}
}

// NewEmailTakenError creates a new EmailTakenError
func NewEmailTakenError(email string) error {
	return &EmailTakenError{Email: email}
}

// NewStorageCorruptError creates a new StorageCorruptError
func NewStorageCorruptError(key string, cause error) error {
	return &StorageCorruptError{Key: key, Cause: cause}
}

// NewProductNotFoundError creates a new ProductNotFoundError
func NewProductNotFoundError(productID string) error {
	return &ProductNotFoundError{ProductID: productID}
}

// NewInvalidProductError creates a new InvalidProductError
func NewInvalidProductError(field, reason string, value interface{}) error {
	return &InvalidProductError{
		Field:  field,
		Reason: reason,
		Value:  value,
	}
}

// NewInvalidQuantityError creates a new InvalidQuantityError
func NewInvalidQuantityError(productID string, quantity int) error {
	return &InvalidQuantityError{ProductID: productID, Quantity: quantity}
}

// Type assertion helpers for use with errors.As()

// IsNoSessionError checks if an error is a NoSessionError
func IsNoSessionError(err error) bool {
	var e *NoSessionError
	return errors.As(err, &e)
}

// IsAlreadyPresentError checks if an error is an AlreadyPresentError
func IsAlreadyPresentError(err error) bool {
	var e *AlreadyPresentError
	return errors.As(err, &e)
}

// IsInvalidCredentialsError checks if an error is an InvalidCredentialsError
func IsInvalidCredentialsError(err error) bool {
	var e *InvalidCredentialsError
	return errors.As(err, &e)
}

// IsEmailTakenError checks if an error is an EmailTakenError
func IsEmailTakenError(err error) bool {
	var e *EmailTakenError
	return errors.As(err, &e)
}

// IsStorageCorruptError checks if an error is a StorageCorruptError
func IsStorageCorruptError(err error) bool {
	var e *StorageCorruptError
	return errors.As(err, &e)
}

// IsProductNotFoundError checks if an error is a ProductNotFoundError
func IsProductNotFoundError(err error) bool {
	var e *ProductNotFoundError
	return errors.As(err, &e)
}

// IsInvalidProductError checks if an error is an InvalidProductError
func IsInvalidProductError(err error) bool {
	var e *InvalidProductError
	return errors.As(err, &e)
}

// IsInvalidQuantityError checks if an error is an InvalidQuantityError
func IsInvalidQuantityError(err error) bool {
	var e *InvalidQuantityError
	return errors.As(err, &e)
}

// Reason maps an outcome error to its reason code. A nil error is ReasonOK;
// anything unrecognised (backend I/O failures) is ReasonInternal.
func Reason(err error) string {
	switch {
	case err == nil:
		return ReasonOK
	case IsNoSessionError(err):
		return ReasonNoSession
	case IsAlreadyPresentError(err):
		return ReasonAlreadyPresent
	case IsInvalidCredentialsError(err):
		return ReasonInvalidCredentials
	case IsEmailTakenError(err):
		return ReasonEmailTaken
	case IsStorageCorruptError(err):
		return ReasonStorageCorrupt
	case IsInvalidProductError(err):
		return ReasonInvalidProduct
	case IsProductNotFoundError(err):
		return ReasonProductNotFound
	case IsInvalidQuantityError(err):
		return ReasonInvalidQuantity
	default:
		return ReasonInternal
	}
}
