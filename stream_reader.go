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
	"github.com/bytedance/gopkg/lang/dirtmake"

	"github.com/cloudwego/bufx/internal/opts"
	"github.com/cloudwego/bufx/internal/utils"
)

// BufferedReader is a growable-buffer Reader over a Source. Its buffer is
// unbounded: Fill compacts or reallocates as needed and never returns
// ErrCannotGrow. The reader owns the source and closes it on Close.
type BufferedReader struct {
	buf     []byte
	lo, hi  int // unconsumed bytes live in buf[lo:hi]
	src     Source
	fetched int64 // bytes pulled from src so far, rebased by Seek
	closed  bool
}

// NewBufferedReader wraps src. The default buffer capacity is 8192 bytes,
// overridable with WithBufferSize or the BUFX_READER_BUFFER_SIZE
// environment variable.
func NewBufferedReader(src Source, options ...Option) *BufferedReader {
	o := newOptions(opts.ReaderBufferSize, options)
	return &BufferedReader{
		buf: dirtmake.Bytes(o.bufferSize, o.bufferSize),
		src: src,
	}
}

// Buffer returns the unconsumed bytes. It never reads from the source.
func (r *BufferedReader) Buffer() []byte {
	return r.buf[r.lo:r.hi]
}

// Fill reads more bytes from the source into the buffer and returns the
// count added; zero means the source is exhausted. When the tail of the
// buffer is used up, pending bytes are compacted to the front if possible
// and the buffer is reallocated otherwise.
func (r *BufferedReader) Fill() (int, error) {
	if r.src.AtEnd() {
		return 0, nil
	}
	if r.lo == r.hi {
		r.lo, r.hi = 0, 0
	}
	if r.hi == len(r.buf) {
		if r.lo > 0 {
			copy(r.buf, r.buf[r.lo:r.hi])
			r.hi -= r.lo
			r.lo = 0
		} else {
			next := utils.GrowCapacity(len(r.buf))
			buf := dirtmake.Bytes(next, next)
			copy(buf, r.buf[:r.hi])
			r.buf = buf
		}
	}
	return r.readTail()
}

// readTail reads once into the free tail. Transient zero-byte reads are
// retried here so that a single Fill call never reports 0 while the source
// still has data.
func (r *BufferedReader) readTail() (int, error) {
	for {
		n, err := r.src.ReadSome(r.buf[r.hi:])
		if err != nil {
			return 0, WrapTransport(err)
		}
		if n > 0 {
			r.hi += n
			r.fetched += int64(n)
			return n, nil
		}
		if r.src.AtEnd() {
			return 0, nil
		}
	}
}

// Consume drops the first n unconsumed bytes.
func (r *BufferedReader) Consume(n int) error {
	if n < 0 || n > r.hi-r.lo {
		return errConsume(n, r.hi-r.lo)
	}
	r.lo += n
	return nil
}

// Seek repositions the reader at an absolute source offset, discarding the
// buffered bytes. The source must be a SeekableSource and pos must lie in
// [0, Size()], else the seek fails with KindBadSeek.
func (r *BufferedReader) Seek(pos int64) error {
	s, ok := r.src.(SeekableSource)
	if !ok {
		return newError(KindBadSeek, "source is not seekable")
	}
	if pos < 0 || pos > s.Size() {
		return errBadSeek(pos, s.Size())
	}
	if err := s.Seek(pos); err != nil {
		return WrapTransport(err)
	}
	r.lo, r.hi = 0, 0
	r.fetched = pos
	return nil
}

// Position returns the source offset of the next unconsumed byte.
func (r *BufferedReader) Position() int64 {
	return r.fetched - int64(r.hi-r.lo)
}

// Size returns the total source size. It fails with KindBadSeek when the
// source is not a SeekableSource.
func (r *BufferedReader) Size() (int64, error) {
	if s, ok := r.src.(SeekableSource); ok {
		return s.Size(), nil
	}
	return 0, newError(KindBadSeek, "source does not report a size")
}

// Close closes the source. It is safe to call more than once.
func (r *BufferedReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return WrapTransport(r.src.Close())
}
