/*
 * Copyright 2025 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package bufx

import (
	"bytes"
	"errors"
	"fmt"
)

// Reader is the readable half of the buffer IO contract. It provides a
// user-space zero-copy method to reduce memory allocation and copy overhead:
// callers read bytes straight out of the exposed buffer instead of having
// them copied into a slice of their own.
//
// Implementations are not safe for concurrent use.
type Reader interface {
	// Buffer returns the unconsumed bytes of the internal buffer. It never
	// triggers IO; on an empty buffer it returns an empty view.
	//
	// The returned slice is only valid until the next mutating call
	// (Fill, Consume, Seek).
	Buffer() []byte

	// Fill appends new bytes after the bytes currently returned by Buffer
	// and returns the count added. A zero count means the stream is
	// exhausted, never that the call should be retried. A fixed-capacity
	// reader returns ErrCannotGrow when its buffer is full and non-empty;
	// no reader returns it on an empty buffer.
	Fill() (int, error)

	// Consume drops the first n bytes of Buffer from future exposure.
	// It fails with KindConsume if n is negative or exceeds len(Buffer()).
	Consume(n int) error
}

// NonEmpty returns the exposed bytes, filling once if the buffer is empty.
// It returns nil only at end of stream.
func NonEmpty(r Reader) ([]byte, error) {
	if b := r.Buffer(); len(b) > 0 {
		return b, nil
	}
	if _, err := r.Fill(); err != nil {
		return nil, err
	}
	if b := r.Buffer(); len(b) > 0 {
		return b, nil
	}
	return nil, nil
}

// AtEOF reports whether r has no more bytes. It may fill the buffer.
func AtEOF(r Reader) (bool, error) {
	b, err := NonEmpty(r)
	if err != nil {
		return false, err
	}
	return b == nil, nil
}

// ReadInto copies at most len(p) bytes into p using a single fill and
// returns the count copied. A zero count means p is empty or the stream is
// exhausted.
func ReadInto(r Reader, p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	b, err := NonEmpty(r)
	if err != nil || b == nil {
		return 0, err
	}
	n := copy(p, b)
	if err := r.Consume(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ReadAll copies bytes into p until p is full or the stream ends, returning
// the count copied. It never fails on a short read.
func ReadAll(r Reader, p []byte) (int, error) {
	total := 0
	for total < len(p) {
		n, err := ReadInto(r, p[total:])
		if err != nil {
			return total, err
		}
		if n == 0 {
			break
		}
		total += n
	}
	return total, nil
}

// ReadExact fills p completely and returns true. At a clean end of stream,
// with no byte copied, it returns false instead. A stream that ends after
// the first byte but before the last fails with KindEOF.
func ReadExact(r Reader, p []byte) (bool, error) {
	n, err := ReadAll(r, p)
	if err != nil {
		return false, err
	}
	if n == len(p) {
		return true, nil
	}
	if n == 0 {
		return false, nil
	}
	return false, errEOF(fmt.Sprintf("stream ended after %d of %d bytes", n, len(p)))
}

// ReadByte reads and consumes one byte. It fails with KindEOF at end of
// stream.
func ReadByte(r Reader) (byte, error) {
	b, err := NonEmpty(r)
	if err != nil {
		return 0, err
	}
	if b == nil {
		return 0, errEOF("read byte at end of stream")
	}
	c := b[0]
	if err := r.Consume(1); err != nil {
		return 0, err
	}
	return c, nil
}

// PeekByte returns the next byte without consuming it. It fails with
// KindEOF at end of stream.
func PeekByte(r Reader) (byte, error) {
	b, err := NonEmpty(r)
	if err != nil {
		return 0, err
	}
	if b == nil {
		return 0, errEOF("peek byte at end of stream")
	}
	return b[0], nil
}

// Skip discards up to n bytes and returns the count discarded, which is
// smaller than n only if the stream ends first.
func Skip(r Reader, n int) (int, error) {
	if n < 0 {
		return 0, errConsume(n, 0)
	}
	total := 0
	for total < n {
		b, err := NonEmpty(r)
		if err != nil {
			return total, err
		}
		if b == nil {
			break
		}
		c := len(b)
		if c > n-total {
			c = n - total
		}
		if err := r.Consume(c); err != nil {
			return total, err
		}
		total += c
	}
	return total, nil
}

// SkipExact discards exactly n bytes, failing with KindEOF if the stream
// ends first.
func SkipExact(r Reader, n int) error {
	skipped, err := Skip(r, n)
	if err != nil {
		return err
	}
	if skipped < n {
		return errEOF(fmt.Sprintf("stream ended after skipping %d of %d bytes", skipped, n))
	}
	return nil
}

// ReadUntil returns the bytes up to and including the first occurrence of
// delim, filling as needed. When keep is false the delimiter is stripped,
// and for delim '\n' a '\r' immediately before it is stripped too. At end
// of stream the final unterminated segment is returned as-is; once nothing
// is left, ReadUntil returns nil.
//
// The view aliases the reader's buffer and is valid until the next mutating
// call. A fixed-capacity reader that cannot buffer the whole segment fails
// with KindBufferTooShort.
func ReadUntil(r Reader, delim byte, keep bool) ([]byte, error) {
	scanned := 0
	for {
		b := r.Buffer()
		if i := bytes.IndexByte(b[scanned:], delim); i >= 0 {
			end := scanned + i + 1
			line := b[:end]
			if err := r.Consume(end); err != nil {
				return nil, err
			}
			if !keep {
				line = chompDelim(line, delim)
			}
			return line, nil
		}
		scanned = len(b)
		n, err := r.Fill()
		if err != nil {
			if errors.Is(err, ErrCannotGrow) {
				return nil, newError(KindBufferTooShort, "delimiter not found within a fixed buffer")
			}
			return nil, err
		}
		if n == 0 {
			b = r.Buffer()
			if len(b) == 0 {
				return nil, nil
			}
			if err := r.Consume(len(b)); err != nil {
				return nil, err
			}
			return b, nil
		}
	}
}

// ReadLine is ReadUntil for '\n'. With keep false the terminator is
// chomped, '\r' included.
func ReadLine(r Reader, keep bool) ([]byte, error) {
	return ReadUntil(r, '\n', keep)
}

// CopyUntil copies the bytes up to and including the first occurrence of
// delim into w, without requiring the whole segment to fit in r's buffer.
// It returns the count written to w. Delimiter stripping follows ReadUntil.
//
// With keep false and delim '\n', a '\r' that ends a fixed buffer cannot be
// classified without one byte of lookahead; if the buffer cannot grow the
// copy fails with KindBufferTooShort rather than guessing.
func CopyUntil(w Writer, r Reader, delim byte, keep bool) (int, error) {
	written := 0
	for {
		b := r.Buffer()
		if len(b) == 0 {
			n, err := r.Fill()
			if err != nil {
				return written, err
			}
			if n == 0 {
				return written, nil
			}
			continue
		}
		if i := bytes.IndexByte(b, delim); i >= 0 {
			line := b[:i+1]
			if !keep {
				line = chompDelim(line, delim)
			}
			n, err := WriteBytes(w, line)
			written += n
			if err != nil {
				return written, err
			}
			if err := r.Consume(i + 1); err != nil {
				return written, err
			}
			return written, nil
		}
		safe := len(b)
		if !keep && delim == '\n' && b[safe-1] == '\r' {
			// the \r may be the first half of a \r\n
			safe--
		}
		if safe > 0 {
			n, err := WriteBytes(w, b[:safe])
			written += n
			if err != nil {
				return written, err
			}
			if err := r.Consume(safe); err != nil {
				return written, err
			}
			continue
		}
		n, err := r.Fill()
		if err != nil {
			if errors.Is(err, ErrCannotGrow) {
				return written, newError(KindBufferTooShort, "trailing \\r needs one byte of lookahead")
			}
			return written, err
		}
		if n == 0 {
			// stream ends in \r, so it belongs to the final segment
			b = r.Buffer()
			n, err := WriteBytes(w, b)
			written += n
			if err != nil {
				return written, err
			}
			if err := r.Consume(len(b)); err != nil {
				return written, err
			}
			return written, nil
		}
	}
}

// CopyLine is CopyUntil for '\n'.
func CopyLine(w Writer, r Reader, keep bool) (int, error) {
	return CopyUntil(w, r, '\n', keep)
}

// chompDelim strips the trailing delim from line, plus a '\r' before it
// when delim is '\n'. line must end with delim.
func chompDelim(line []byte, delim byte) []byte {
	line = line[:len(line)-1]
	if delim == '\n' && len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}
	return line
}
