// Package transport exchanges token positions with the adversary process
// over a line-oriented text channel: one non-negative integer per line.
//
// Line wraps an io.Reader (usually os.Stdin) and an io.Writer (usually
// os.Stdout). ReadPositions is the only blocking operation of a match; it
// honors context cancellation and an optional per-read timeout
// (WithTimeout). Diagnostics never go through this channel.
//
// Every error returned by this package satisfies errors.Is(err, ErrTransport)
// and is an *Error carrying the operation and the token index involved.
package transport
