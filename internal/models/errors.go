package models

import (
	"database/sql/driver"
	"errors"
	"net"

	go_sqlite "github.com/glebarez/go-sqlite"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrUnavailable      = errors.New("the database is currently unavailable, please try again later")
	ErrOpenIDNotUnique  = errors.New("a user with this openId already exists")
)

// errDBClosed is hard-coded in database/sql and not exported
const errDBClosed = "sql: database is closed"

// Classify maps low level driver errors to the errors of this package.
//
// Errors that signal that the database cannot be reached become
// ErrUnavailable, other driver errors become ErrGeneral. All other
// errors are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrUnavailable) || errors.Is(err, ErrGeneral) || errors.Is(err, ErrResourceNotFound) {
		return err
	}

	var opErr *net.OpError
	if err.Error() == errDBClosed || errors.Is(err, driver.ErrBadConn) || errors.As(err, &opErr) {
		return ErrUnavailable
	}

	var sqliteErr *go_sqlite.Error
	if errors.As(err, &sqliteErr) {
		return ErrGeneral
	}

	return err
}

// IsUnavailable reports whether err means that the database cannot be reached.
func IsUnavailable(err error) bool {
	return errors.Is(Classify(err), ErrUnavailable)
}
