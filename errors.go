package mcworld

import "errors"

// ErrClosed is returned by any World method called after Close.
var ErrClosed = errors.New("mcworld: world is closed")
