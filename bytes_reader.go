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
	"github.com/cloudwego/bufx/internal/rt"
)

// BytesReader is a zero-allocation Reader over a byte region the caller
// owns. There is no upstream source, so Fill never adds bytes and the
// whole region is exposed at once.
type BytesReader struct {
	buf []byte
	off int
}

// NewBytesReader reads from b. The region stays owned by the caller and
// must not be modified while the reader is in use.
func NewBytesReader(b []byte) *BytesReader {
	return &BytesReader{buf: b}
}

// NewBytesReaderString reads from s without copying it.
func NewBytesReaderString(s string) *BytesReader {
	return &BytesReader{buf: rt.Str2Mem(s)}
}

// Buffer returns the bytes from the cursor to the end of the region.
func (r *BytesReader) Buffer() []byte {
	return r.buf[r.off:]
}

// Fill always reports end of stream: there is nothing to fill from.
func (r *BytesReader) Fill() (int, error) {
	return 0, nil
}

// Consume advances the cursor by n.
func (r *BytesReader) Consume(n int) error {
	if rem := len(r.buf) - r.off; n < 0 || n > rem {
		return errConsume(n, rem)
	}
	r.off += n
	return nil
}

// Seek moves the cursor to an absolute offset in [0, Size()], failing with
// KindBadSeek otherwise.
func (r *BytesReader) Seek(pos int64) error {
	if pos < 0 || pos > int64(len(r.buf)) {
		return errBadSeek(pos, int64(len(r.buf)))
	}
	r.off = int(pos)
	return nil
}

// Position returns the cursor offset.
func (r *BytesReader) Position() int64 {
	return int64(r.off)
}

// Size returns the length of the region.
func (r *BytesReader) Size() int64 {
	return int64(len(r.buf))
}

// Close is a no-op: the region belongs to the caller.
func (r *BytesReader) Close() error {
	return nil
}
