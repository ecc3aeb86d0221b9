package domain

import "errors"

var (
	ErrResultConsumed = errors.New("future result already consumed")
	ErrJobPanic       = errors.New("job panic")
)
