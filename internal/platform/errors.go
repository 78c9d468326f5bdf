package platform

import "errors"

var (
	ErrRequestFailed = errors.New("platform request failed")
	ErrUnexpectedStatus = errors.New("unexpected status from platform")
	ErrUnrecognizedShape = errors.New("unrecognized response shape from platform")
)
