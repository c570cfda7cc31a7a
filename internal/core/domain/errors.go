package domain

import "errors"

// ErrAlreadyExists is an error thrown when a record for a file hash was already written
var ErrAlreadyExists = errors.New("record already exists")

// ErrInvalidPointer is an error thrown when a storage pointer is empty
var ErrInvalidPointer = errors.New("storage pointer must not be empty")

// ErrRecordNotFound is an error thrown when no record exists for a file hash
var ErrRecordNotFound = errors.New("record not found")

// ErrUnauthorized is an error thrown when a caller other than the uploader mutates access
var ErrUnauthorized = errors.New("caller is not the uploader")

// ErrInvalidGrantee is an error thrown when the grantee is the null identity
var ErrInvalidGrantee = errors.New("grantee is the null identity")

// ErrSelfRevocation is an error thrown when the uploader revokes their own access
var ErrSelfRevocation = errors.New("uploader cannot revoke own access")
