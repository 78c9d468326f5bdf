package handler

import "errors"

var (
	errNotAuthorized = errors.New("user is not authorized")
	errInvalidPostID = errors.New("invalid post ID")
	errInvalidConfirmToken = errors.New("invalid confirmation token")
	errLimitAndOffsetMustBeInt = errors.New("limit and offset must be int")
)
