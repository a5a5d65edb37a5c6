package hrdata

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrFixtureUnreadable = errors.New("fixture file unreadable")
	ErrFixtureMalformed  = errors.New("fixture file malformed")
)
