package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// User errors
var (
	ErrUserEmailNotUnique = errors.New("a user with this email address already exists")
)

// Category errors
var (
	ErrCategoryNameNotUnique = errors.New("the category name must be unique for the user")
	ErrCategoryReferenced    = errors.New("the category is referenced by at least one transaction and cannot be deleted")
	ErrNoCategoryAvailable   = errors.New("the user does not have any categories")
)

// Transaction errors
var (
	ErrTransactionAmountNegative = errors.New("the transaction amount must not be negative")
	ErrTransactionKindInvalid    = errors.New("the transaction kind must be income or expense")
)
