package core

import (
	"errors"
	"io/fs"
)

// IsSkippable reports whether a filesystem error is one the cleaner treats
// as an ordinary skip: the entry vanished mid-walk or access was denied.
func IsSkippable(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission)
}

// IsPermission reports whether err is a permission denial.
func IsPermission(err error) bool {
	return errors.Is(err, fs.ErrPermission)
}
