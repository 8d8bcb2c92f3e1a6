package assistant

import "errors"

var (
	ErrEmptyCommand = errors.New("no command provided")
)
