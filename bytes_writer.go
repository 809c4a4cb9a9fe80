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
	"github.com/cloudwego/bufx/internal/rt"
	"github.com/cloudwego/bufx/internal/utils"
)

// BytesWriter is a Writer over a growable in-memory region it owns. The
// committed bytes are the first len bytes of the backing store; the free
// space is the remaining capacity. There is no sink, so Grow always
// reallocates and Flush and Close are no-ops.
type BytesWriter struct {
	buf []byte // len(buf) committed, cap(buf) capacity
}

// NewBytesWriter returns an empty writer. The default initial capacity is
// 32 bytes, overridable with WithBufferSize or the BUFX_VECTOR_BUFFER_SIZE
// environment variable.
func NewBytesWriter(options ...Option) *BytesWriter {
	o := newOptions(opts.VectorBufferSize, options)
	return &BytesWriter{buf: dirtmake.Bytes(0, o.bufferSize)}
}

// Buffer returns the unused tail capacity.
func (w *BytesWriter) Buffer() []byte {
	return w.buf[len(w.buf):cap(w.buf)]
}

// Grow reallocates the backing store to the next capacity on the
// overallocation curve, carrying the committed bytes over, and returns the
// capacity gained.
func (w *BytesWriter) Grow() (int, error) {
	next := utils.GrowCapacity(cap(w.buf))
	buf := dirtmake.Bytes(len(w.buf), next)
	copy(buf, w.buf)
	delta := next - cap(w.buf)
	w.buf = buf
	return delta, nil
}

// Consume extends the committed length by n.
func (w *BytesWriter) Consume(n int) error {
	if free := cap(w.buf) - len(w.buf); n < 0 || n > free {
		return errConsume(n, free)
	}
	w.buf = w.buf[:len(w.buf)+n]
	return nil
}

// Seek truncates or extends the committed length to pos, bounded by the
// current capacity. Extending exposes bytes whose contents are
// unspecified until overwritten.
func (w *BytesWriter) Seek(pos int64) error {
	if pos < 0 || pos > int64(cap(w.buf)) {
		return errBadSeek(pos, int64(cap(w.buf)))
	}
	w.buf = w.buf[:pos]
	return nil
}

// Bytes returns the committed bytes. The view aliases the backing store
// and is invalidated by the next Grow, Seek or TakeBytes.
func (w *BytesWriter) Bytes() []byte {
	return w.buf
}

// Len returns the committed length.
func (w *BytesWriter) Len() int {
	return len(w.buf)
}

// Position returns the committed length, which is where the next byte
// lands.
func (w *BytesWriter) Position() int64 {
	return int64(len(w.buf))
}

// Size returns the committed length.
func (w *BytesWriter) Size() int64 {
	return int64(len(w.buf))
}

// TakeBytes moves the backing store out and leaves the writer empty. The
// writer no longer aliases the returned bytes, so the caller owns them
// outright.
func (w *BytesWriter) TakeBytes() []byte {
	b := w.buf
	w.buf = nil
	return b
}

// TakeString builds a string from the committed bytes without copying.
// Like TakeBytes it is a move: the writer gives up the backing store so
// the string contents can never change under the caller.
func (w *BytesWriter) TakeString() string {
	return rt.Mem2Str(w.TakeBytes())
}

// Flush is a no-op: there is no sink.
func (w *BytesWriter) Flush() error {
	return nil
}

// Close is a no-op: the writer holds no external resource.
func (w *BytesWriter) Close() error {
	return nil
}
