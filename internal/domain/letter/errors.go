package letter

import "errors"

var (
	ErrLetterNotFound = errors.New("letter not found")
	ErrFormatNotFound = errors.New("letter format not found")
	ErrFormatInUse    = errors.New("letter format still has letters attached")
)
