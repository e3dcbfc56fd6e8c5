package mcdb

import "errors"

// ErrFormat is wrapped by errors raised while decoding a key that is shaped
// like a block record (right length, right prefix byte) but carries an
// unrecognised dimension discriminant.
var ErrFormat = errors.New("mcdb: malformed block record key")

// ErrClosed is returned by any DB method called after Close.
var ErrClosed = errors.New("mcdb: database is closed")
