package client

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("wrong arguments")
	ErrNotLoggedIn    = errors.New("not logged in, run `login` first")
	ErrNoUI           = errors.New("interactive mode is not available")
)
