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
	"encoding/binary"
	"math"

	"github.com/cloudwego/bufx/internal/rt"
)

// Writer is the writable half of the buffer IO contract. Callers write
// bytes straight into the exposed free space and commit them with Consume,
// so derived encoders run without intermediate allocations.
//
// Implementations are not safe for concurrent use.
type Writer interface {
	// Buffer returns the free space of the internal buffer. It never
	// flushes or allocates; when the buffer is full it returns an empty
	// view.
	//
	// The returned slice is only valid until the next mutating call
	// (Grow, Consume, Seek).
	Buffer() []byte

	// Grow makes room for more bytes and returns the count gained. It
	// first tries to flush committed bytes to the sink, which frees space
	// without reallocating; only when nothing was pending does it allocate
	// a larger buffer. A zero count means neither worked, which under the
	// constructors' buffer-size invariants only happens on a saturated
	// sink.
	Grow() (int, error)

	// Consume commits the first n bytes of Buffer as written. It fails
	// with KindConsume if n is negative or exceeds len(Buffer()).
	Consume(n int) error
}

// NonEmptySpace returns the free space, growing once if there is none. It
// returns nil only when growth gained nothing.
func NonEmptySpace(w Writer) ([]byte, error) {
	if b := w.Buffer(); len(b) > 0 {
		return b, nil
	}
	if _, err := w.Grow(); err != nil {
		return nil, err
	}
	if b := w.Buffer(); len(b) > 0 {
		return b, nil
	}
	return nil, nil
}

// WriteByte writes a single byte.
func WriteByte(w Writer, c byte) error {
	b, err := NonEmptySpace(w)
	if err != nil {
		return err
	}
	if b == nil {
		return newError(KindBufferTooShort, "no space gained for one byte")
	}
	b[0] = c
	return w.Consume(1)
}

// WriteBytes writes all of p, growing as needed, and returns the count
// written.
func WriteBytes(w Writer, p []byte) (int, error) {
	written := 0
	for written < len(p) {
		b, err := NonEmptySpace(w)
		if err != nil {
			return written, err
		}
		if b == nil {
			return written, newError(KindBufferTooShort, "no space gained for bulk write")
		}
		n := copy(b, p[written:])
		if err := w.Consume(n); err != nil {
			return written, err
		}
		written += n
	}
	return written, nil
}

// WriteString writes s without an intermediate copy of its bytes.
func WriteString(w Writer, s string) (int, error) {
	return WriteBytes(w, rt.Str2Mem(s))
}

// WriteUint16 encodes v in little-endian order.
func WriteUint16(w Writer, v uint16) error {
	if b := w.Buffer(); len(b) >= 2 {
		binary.LittleEndian.PutUint16(b, v)
		return w.Consume(2)
	}
	return writeSlow(w, uint64(v), 2)
}

// WriteUint32 encodes v in little-endian order.
func WriteUint32(w Writer, v uint32) error {
	if b := w.Buffer(); len(b) >= 4 {
		binary.LittleEndian.PutUint32(b, v)
		return w.Consume(4)
	}
	return writeSlow(w, uint64(v), 4)
}

// WriteUint64 encodes v in little-endian order. When the free space already
// holds eight bytes the pattern is written in place and committed once;
// otherwise the bytes are emitted one at a time across grown buffers.
func WriteUint64(w Writer, v uint64) error {
	if b := w.Buffer(); len(b) >= 8 {
		binary.LittleEndian.PutUint64(b, v)
		return w.Consume(8)
	}
	return writeSlow(w, v, 8)
}

// WriteFloat64 encodes the IEEE-754 bits of v in little-endian order.
func WriteFloat64(w Writer, v float64) error {
	return WriteUint64(w, math.Float64bits(v))
}

// writeSlow is the byte-at-a-time fallback for scalars wider than the free
// space, used when the type is wider than the buffer or only a short tail
// is left.
func writeSlow(w Writer, v uint64, size int) error {
	for i := 0; i < size; i++ {
		if err := WriteByte(w, byte(v>>(8*uint(i)))); err != nil {
			return err
		}
	}
	return nil
}
