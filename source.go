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

// Source is the transport a BufferedReader drains. It is owned by whoever
// constructed it until it is handed to a reader, which closes it on Close.
type Source interface {
	// ReadSome reads up to len(p) bytes into p and returns the count read.
	// It may block. A zero count only means "no bytes this call": a source
	// that can never produce another byte must also report AtEnd.
	ReadSome(p []byte) (int, error)

	// AtEnd reports whether the source is exhausted.
	AtEnd() bool

	// Close releases the transport.
	Close() error
}

// SeekableSource is a Source with random access. BufferedReader.Seek and
// Size require it.
type SeekableSource interface {
	Source

	// Seek repositions the source at an absolute offset.
	Seek(pos int64) error

	// Size returns the total number of bytes the source holds.
	Size() int64
}

// Sink is the transport a BufferedWriter fills. It is owned by whoever
// constructed it until it is handed to a writer, which closes it on Close.
type Sink interface {
	// WriteSome writes some prefix of p and returns the count written.
	// It may block.
	WriteSome(p []byte) (int, error)

	// Flush forces bytes the sink itself may be holding down to the device.
	Flush() error

	// Close releases the transport.
	Close() error
}
