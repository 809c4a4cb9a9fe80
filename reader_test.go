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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadByteAndPeek(t *testing.T) {
	r := NewBytesReaderString("ab")

	c, err := PeekByte(r)
	require.NoError(t, err)
	require.Equal(t, byte('a'), c)

	// peek does not advance
	c, err = ReadByte(r)
	require.NoError(t, err)
	require.Equal(t, byte('a'), c)

	c, err = ReadByte(r)
	require.NoError(t, err)
	require.Equal(t, byte('b'), c)

	_, err = ReadByte(r)
	require.Equal(t, KindEOF, KindOf(err))
	_, err = PeekByte(r)
	require.Equal(t, KindEOF, KindOf(err))
}

func TestReadIntoAndReadAll(t *testing.T) {
	r := NewBufferedReader(&chunkSource{data: []byte("hello world"), chunk: 3}, WithBufferSize(4))

	p := make([]byte, 5)
	n, err := ReadInto(r, p)
	require.NoError(t, err)
	require.True(t, n > 0 && n <= 5)

	rest := make([]byte, 11-n)
	m, err := ReadAll(r, rest)
	require.NoError(t, err)
	require.Equal(t, len(rest), m)
	require.Equal(t, "hello world", string(p[:n])+string(rest))

	// exhausted
	n, err = ReadInto(r, p)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestReadExact(t *testing.T) {
	r := NewBytesReaderString("abcd")

	p := make([]byte, 4)
	ok, err := ReadExact(r, p)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "abcd", string(p))

	// clean end of stream
	ok, err = ReadExact(r, p)
	require.NoError(t, err)
	require.False(t, ok)

	// stream ends mid-object
	r = NewBytesReaderString("xy")
	_, err = ReadExact(r, p)
	require.Equal(t, KindEOF, KindOf(err))
}

func TestConsumeBounds(t *testing.T) {
	readers := map[string]Reader{
		"bytes":    NewBytesReader([]byte("abc")),
		"buffered": NewBufferedReader(&chunkSource{data: []byte("abc")}, WithBufferSize(8)),
		"fixed":    newFixedReader("abc", 8),
	}
	for name, r := range readers {
		_, err := NonEmpty(r)
		require.NoError(t, err, name)
		require.Equal(t, KindConsume, KindOf(r.Consume(-1)), name)
		require.Equal(t, KindConsume, KindOf(r.Consume(len(r.Buffer())+1)), name)
		require.NoError(t, r.Consume(len(r.Buffer())), name)
	}
}

func TestWriterConsumeBounds(t *testing.T) {
	writers := map[string]Writer{
		"vector":   NewBytesWriter(WithBufferSize(8)),
		"buffered": NewBufferedWriter(&recordSink{}, WithBufferSize(8)),
	}
	for name, w := range writers {
		require.Equal(t, KindConsume, KindOf(w.Consume(-1)), name)
		require.Equal(t, KindConsume, KindOf(w.Consume(len(w.Buffer())+1)), name)
		require.NoError(t, w.Consume(len(w.Buffer())), name)
	}
}

func TestBufferNeverFills(t *testing.T) {
	// Buffer on an empty reader returns an empty view without touching the
	// source, and eof is derived from NonEmpty.
	src := &chunkSource{data: []byte("z")}
	r := NewBufferedReader(src, WithBufferSize(4))
	require.Len(t, r.Buffer(), 0)
	require.Equal(t, 0, src.off)

	eof, err := AtEOF(r)
	require.NoError(t, err)
	require.False(t, eof)
	require.NoError(t, r.Consume(1))

	eof, err = AtEOF(r)
	require.NoError(t, err)
	require.True(t, eof)
}

func TestCursorReadLineScenario(t *testing.T) {
	r := NewBytesReaderString("hello\nworld!\n")

	line, err := ReadLine(r, false)
	require.NoError(t, err)
	require.Equal(t, "hello", string(line))

	line, err = ReadLine(r, false)
	require.NoError(t, err)
	require.Equal(t, "world!", string(line))

	line, err = ReadLine(r, false)
	require.NoError(t, err)
	require.Len(t, line, 0)
}

func TestReadUntilKeepsDelimiter(t *testing.T) {
	r := NewBytesReaderString("a,b,c")

	part, err := ReadUntil(r, ',', true)
	require.NoError(t, err)
	require.Equal(t, "a,", string(part))

	part, err = ReadUntil(r, ',', false)
	require.NoError(t, err)
	require.Equal(t, "b", string(part))

	// unterminated tail comes back as-is
	part, err = ReadUntil(r, ',', false)
	require.NoError(t, err)
	require.Equal(t, "c", string(part))
}

func TestReadLineCRLFSplitAcrossFills(t *testing.T) {
	data := "xxxxxxxxx\r\nafter"
	whole := NewBytesReaderString(data)
	want, err := ReadLine(whole, false)
	require.NoError(t, err)

	// buffer of 10 puts the \r at the end of the first fill
	split := NewBufferedReader(&chunkSource{data: []byte(data), chunk: 10}, WithBufferSize(10))
	got, err := ReadLine(split, false)
	require.NoError(t, err)
	require.Equal(t, string(want), string(got))
	require.Equal(t, "xxxxxxxxx", string(got))

	rest, err := ReadLine(split, false)
	require.NoError(t, err)
	require.Equal(t, "after", string(rest))
}

func TestReadLineFixedBufferTooShort(t *testing.T) {
	r := newFixedReader("this line is longer than the buffer\n", 8)
	_, err := ReadLine(r, false)
	require.Equal(t, KindBufferTooShort, KindOf(err))
}

func TestSkip(t *testing.T) {
	r := NewBufferedReader(&chunkSource{data: []byte("0123456789"), chunk: 4}, WithBufferSize(4))

	n, err := Skip(r, 4)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, int64(4), r.Position())

	rest := make([]byte, 16)
	m, err := ReadAll(r, rest)
	require.NoError(t, err)
	require.Equal(t, "456789", string(rest[:m]))

	// skipping past the end reports the short count
	n, err = Skip(r, 3)
	require.NoError(t, err)
	require.Equal(t, 0, n)

	require.Equal(t, KindEOF, KindOf(SkipExact(r, 1)))

	_, err = Skip(r, -1)
	require.Equal(t, KindConsume, KindOf(err))
}

func TestCopyLine(t *testing.T) {
	r := NewBytesReaderString("one\r\ntwo\n")
	w := NewBytesWriter()

	n, err := CopyLine(w, r, false)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, "one", string(w.Bytes()))

	n, err = CopyLine(w, r, true)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, "onetwo\n", string(w.Bytes()))
}

func TestCopyLineTrailingCR(t *testing.T) {
	// A \r at the end of a size-1 fixed buffer with more data pending
	// cannot be classified; chomping must fail instead of guessing.
	r := newFixedReader("a\r\nb", 1)
	w := NewBytesWriter()
	_, err := CopyLine(w, r, false)
	require.Equal(t, KindBufferTooShort, KindOf(err))

	// keep=true never needs the lookahead
	r = newFixedReader("a\r\nb", 1)
	w = NewBytesWriter()
	n, err := CopyLine(w, r, true)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, "a\r\n", string(w.Bytes()))
}

func TestCopyLineStreamEndsInCR(t *testing.T) {
	// with no byte after it, the \r is part of the final segment
	r := newFixedReader("a\r", 1)
	w := NewBytesWriter()
	n, err := CopyLine(w, r, false)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, "a\r", string(w.Bytes()))
}
