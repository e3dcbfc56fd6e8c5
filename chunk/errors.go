package chunk

import "errors"

// ErrFormat is wrapped by every error returned while decoding a malformed
// subchunk record: an unsupported version, an illegal bits-per-block width,
// a network-flagged storage, an empty or oversized palette, a palette
// reference out of range, or trailing bytes left over after decoding.
var ErrFormat = errors.New("chunk: malformed subchunk record")
