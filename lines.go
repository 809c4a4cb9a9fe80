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
)

// LineScanner iterates over the lines of a Reader, yielding zero-copy views
// into its buffer. It logically owns the reader for the duration of the
// scan: nothing else may drive the reader until scanning ends. Closing the
// reader stays the caller's responsibility.
//
// A scanner is single-pass and cannot be restarted; iterating again takes a
// fresh reader. The previous line is consumed lazily at the start of the
// next Scan, so the reader's byte position never runs ahead of what was
// yielded.
type LineScanner struct {
	r       Reader
	chomp   bool
	line    []byte
	pending int // bytes of the previous line left to consume
	done    bool
	err     error
}

// Lines returns a scanner over r. When chomp is true the trailing '\n',
// and a '\r' immediately before it, are stripped from every yielded line.
// The final line of a stream with no terminator is yielded as-is.
func Lines(r Reader, chomp bool) *LineScanner {
	return &LineScanner{r: r, chomp: chomp}
}

// Scan advances to the next line. It returns false at end of stream or on
// error; Err tells the two apart.
func (s *LineScanner) Scan() bool {
	if s.err != nil {
		return false
	}
	if s.pending > 0 {
		if err := s.r.Consume(s.pending); err != nil {
			s.err = err
			return false
		}
		s.pending = 0
	}
	if s.done {
		return false
	}
	scanned := 0 // bytes of the exposed view already searched
	for {
		b := s.r.Buffer()
		if scanned < len(b) {
			if i := bytes.IndexByte(b[scanned:], '\n'); i >= 0 {
				end := scanned + i + 1
				line := b[:end]
				if s.chomp {
					line = chompDelim(line, '\n')
				}
				s.line = line
				s.pending = end
				return true
			}
			scanned = len(b)
		}
		n, err := s.r.Fill()
		if err != nil {
			if errors.Is(err, ErrCannotGrow) {
				err = newError(KindBufferTooShort, "line does not fit in a fixed buffer")
			}
			s.err = err
			return false
		}
		if n == 0 {
			b = s.r.Buffer()
			if len(b) == 0 {
				s.done = true
				return false
			}
			// unterminated final line
			s.line = b
			s.pending = len(b)
			s.done = true
			return true
		}
	}
}

// Bytes returns the current line. The view aliases the reader's buffer and
// is valid until the next Scan.
func (s *LineScanner) Bytes() []byte {
	return s.line
}

// Text returns the current line as a freshly allocated string.
func (s *LineScanner) Text() string {
	return string(s.line)
}

// Err returns the first error the scan hit, or nil if iteration ended at
// end of stream.
func (s *LineScanner) Err() error {
	return s.err
}
