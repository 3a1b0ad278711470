package transport

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Option configures a Line.
type Option func(*Line)

// WithTimeout bounds every single-line read. Zero or negative disables it.
func WithTimeout(d time.Duration) Option {
	return func(l *Line) {
		if d > 0 {
			l.timeout = d
		}
	}
}

// Line is a position channel over a reader/writer pair.
//
// Input is consumed by a single background goroutine started on the first
// read, so a timed-out read never races with the next one: the line that
// eventually arrives is delivered to the following ReadPositions call.
// The goroutine exits once the input ends; termErr is set before done is
// closed and is returned by every later read.
type Line struct {
	in      io.Reader
	out     *bufio.Writer
	timeout time.Duration

	once    sync.Once
	lines   chan string
	done    chan struct{}
	termErr error
}

// NewLine creates a Line reading from r and writing to w.
func NewLine(r io.Reader, w io.Writer, opts ...Option) *Line {
	l := &Line{
		in:  r,
		out: bufio.NewWriter(w),
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

func (l *Line) pump() {
	l.lines = make(chan string)
	l.done = make(chan struct{})
	go func() {
		defer close(l.done)
		sc := bufio.NewScanner(l.in)
		for sc.Scan() {
			l.lines <- sc.Text()
		}
		if l.termErr = sc.Err(); l.termErr == nil {
			l.termErr = ErrClosed
		}
	}()
}

// ReadPositions blocks until n positions have been read, one per line.
//
// Errors: *Error wrapping ErrClosed, ErrMalformed, ErrTimeout or the
// context error.
func (l *Line) ReadPositions(ctx context.Context, n int) ([]int, error) {
	l.once.Do(l.pump)

	out := make([]int, n)
	for i := 0; i < n; i++ {
		text, err := l.readLine(ctx)
		if err != nil {
			return nil, &Error{Op: "read", Index: i, Err: err}
		}
		v, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil || v < 0 {
			return nil, &Error{Op: "read", Index: i, Err: fmt.Errorf("%w: %q", ErrMalformed, text)}
		}
		out[i] = v
	}

	return out, nil
}

func (l *Line) readLine(ctx context.Context) (string, error) {
	var expired <-chan time.Time
	if l.timeout > 0 {
		timer := time.NewTimer(l.timeout)
		defer timer.Stop()
		expired = timer.C
	}

	// lines is unbuffered, so every scanned line has been received
	// before done can close.
	select {
	case text := <-l.lines:
		return text, nil
	case <-l.done:
		return "", l.termErr
	case <-ctx.Done():
		return "", ctx.Err()
	case <-expired:
		return "", fmt.Errorf("%w after %s", ErrTimeout, l.timeout)
	}
}

// WritePositions writes pos one integer per line and flushes.
func (l *Line) WritePositions(pos []int) error {
	for i, p := range pos {
		if _, err := fmt.Fprintf(l.out, "%d\n", p); err != nil {
			return &Error{Op: "write", Index: i, Err: err}
		}
	}
	if err := l.out.Flush(); err != nil {
		return &Error{Op: "write", Index: len(pos), Err: err}
	}

	return nil
}
