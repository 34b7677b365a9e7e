package tui

import "errors"

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("tui: prompt interrupted")

// ErrNoOptions is returned by pickers given nothing to pick from.
var ErrNoOptions = errors.New("tui: nothing to choose from")
