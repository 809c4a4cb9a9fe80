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

// chunkSource feeds its data in fixed-size chunks and can inject transient
// zero-byte reads before each chunk, the way a polled transport would.
type chunkSource struct {
	data   []byte
	off    int
	chunk  int // max bytes per ReadSome, 0 means unlimited
	stalls int // zero-byte reads reported before each chunk
	stall  int
	closed int
}

func (s *chunkSource) ReadSome(p []byte) (int, error) {
	if s.off >= len(s.data) {
		return 0, nil
	}
	if s.stall < s.stalls {
		s.stall++
		return 0, nil
	}
	s.stall = 0
	n := len(p)
	if s.chunk > 0 && n > s.chunk {
		n = s.chunk
	}
	n = copy(p[:n], s.data[s.off:])
	s.off += n
	return n, nil
}

func (s *chunkSource) AtEnd() bool {
	return s.off >= len(s.data)
}

func (s *chunkSource) Close() error {
	s.closed++
	return nil
}

// seekSource is a chunkSource with random access.
type seekSource struct {
	chunkSource
}

func (s *seekSource) Seek(pos int64) error {
	s.off = int(pos)
	return nil
}

func (s *seekSource) Size() int64 {
	return int64(len(s.data))
}

// recordSink accumulates everything written to it and can throttle how many
// bytes it accepts per call.
type recordSink struct {
	data    []byte
	max     int // max bytes per WriteSome, 0 means unlimited
	flushes int
	closed  int
}

func (s *recordSink) WriteSome(p []byte) (int, error) {
	n := len(p)
	if s.max > 0 && n > s.max {
		n = s.max
	}
	s.data = append(s.data, p[:n]...)
	return n, nil
}

func (s *recordSink) Flush() error {
	s.flushes++
	return nil
}

func (s *recordSink) Close() error {
	s.closed++
	return nil
}

// fixedReader is a Reader whose buffer can never grow, used to exercise the
// ErrCannotGrow paths that BufferedReader deliberately does not have.
type fixedReader struct {
	data   []byte
	off    int
	buf    []byte
	lo, hi int
}

func newFixedReader(data string, size int) *fixedReader {
	return &fixedReader{data: []byte(data), buf: make([]byte, size)}
}

func (r *fixedReader) Buffer() []byte {
	return r.buf[r.lo:r.hi]
}

func (r *fixedReader) Fill() (int, error) {
	if r.off >= len(r.data) {
		return 0, nil
	}
	if r.lo == r.hi {
		r.lo, r.hi = 0, 0
	}
	if r.hi == len(r.buf) {
		if r.lo == 0 {
			return 0, ErrCannotGrow
		}
		copy(r.buf, r.buf[r.lo:r.hi])
		r.hi -= r.lo
		r.lo = 0
	}
	n := copy(r.buf[r.hi:], r.data[r.off:])
	r.hi += n
	r.off += n
	return n, nil
}

func (r *fixedReader) Consume(n int) error {
	if n < 0 || n > r.hi-r.lo {
		return errConsume(n, r.hi-r.lo)
	}
	r.lo += n
	return nil
}
