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

// BufferedWriter is a growable-buffer Writer over a Sink. The writer owns
// the sink and closes it on Close.
type BufferedWriter struct {
	buf     []byte
	used    int // committed-but-unflushed bytes live in buf[:used]
	sink    Sink
	flushed int64
	closed  bool
}

// NewBufferedWriter wraps sink. The default buffer capacity is 4096 bytes,
// overridable with WithBufferSize or the BUFX_WRITER_BUFFER_SIZE
// environment variable.
func NewBufferedWriter(sink Sink, options ...Option) *BufferedWriter {
	o := newOptions(opts.WriterBufferSize, options)
	return &BufferedWriter{
		buf:  dirtmake.Bytes(o.bufferSize, o.bufferSize),
		sink: sink,
	}
}

// Buffer returns the free space of the buffer.
func (w *BufferedWriter) Buffer() []byte {
	return w.buf[w.used:]
}

// FlushBuffer writes the committed bytes to the sink without flushing the
// sink itself and returns the count written. On a partial failure the
// unwritten suffix stays committed.
func (w *BufferedWriter) FlushBuffer() (int, error) {
	if w.used == 0 {
		return 0, nil
	}
	total := 0
	for total < w.used {
		n, err := w.sink.WriteSome(w.buf[total:w.used])
		if err != nil {
			copy(w.buf, w.buf[total:w.used])
			w.used -= total
			w.flushed += int64(total)
			return total, WrapTransport(err)
		}
		if n == 0 {
			copy(w.buf, w.buf[total:w.used])
			w.used -= total
			w.flushed += int64(total)
			return total, newError(KindBrokenPipe, "sink accepted no bytes")
		}
		total += n
	}
	w.used = 0
	w.flushed += int64(total)
	return total, nil
}

// Grow frees space by flushing the committed bytes; only when there was
// nothing to flush does it reallocate a larger buffer. The count returned
// is the space gained.
func (w *BufferedWriter) Grow() (int, error) {
	n, err := w.FlushBuffer()
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return n, nil
	}
	next := utils.GrowCapacity(len(w.buf))
	delta := next - len(w.buf)
	w.buf = dirtmake.Bytes(next, next) // buffer is empty, nothing to carry over
	return delta, nil
}

// Consume commits the first n bytes of the free space.
func (w *BufferedWriter) Consume(n int) error {
	if free := len(w.buf) - w.used; n < 0 || n > free {
		return errConsume(n, free)
	}
	w.used += n
	return nil
}

// WriteBinary commits all of p, draining the buffer to the sink whenever it
// fills. The buffer is never grown on this path. It returns the count
// written, which is len(p) unless the sink fails.
func (w *BufferedWriter) WriteBinary(p []byte) (int, error) {
	written := 0
	for written < len(p) {
		if w.used == len(w.buf) {
			if _, err := w.FlushBuffer(); err != nil {
				return written, err
			}
		}
		n := copy(w.buf[w.used:], p[written:])
		w.used += n
		written += n
	}
	return written, nil
}

// Flush writes the committed bytes and flushes the sink itself. It is
// idempotent and safe to call repeatedly.
func (w *BufferedWriter) Flush() error {
	if _, err := w.FlushBuffer(); err != nil {
		return err
	}
	return WrapTransport(w.sink.Flush())
}

// Position returns the sink offset of the next byte to be committed.
func (w *BufferedWriter) Position() int64 {
	return w.flushed + int64(w.used)
}

// Close flushes and closes the sink. It is safe to call more than once.
func (w *BufferedWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if err := w.Flush(); err != nil {
		return err
	}
	return WrapTransport(w.sink.Close())
}
