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
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// Kind classifies every error produced by this package.
type Kind uint8

const (
	// KindConsume reports a Consume argument outside [0, len(Buffer())].
	KindConsume Kind = iota + 1

	// KindEOF reports that an operation needed more bytes than the stream
	// holds and cannot return a partial result.
	KindEOF

	// KindBufferTooShort reports that a fixed-capacity buffer cannot be
	// grown enough to complete an operation.
	KindBufferTooShort

	// KindBadSeek reports a seek target outside [0, size].
	KindBadSeek

	// Transport kinds, surfaced verbatim from the underlying source or sink.
	KindPermissionDenied
	KindNotFound
	KindBrokenPipe
	KindAlreadyExists
	KindNotADirectory
	KindIsADirectory
	KindDirectoryNotEmpty
	KindInvalidName
)

var kindNames = [...]string{
	KindConsume:           "ConsumeBufferError",
	KindEOF:               "EOF",
	KindBufferTooShort:    "BufferTooShort",
	KindBadSeek:           "BadSeek",
	KindPermissionDenied:  "PermissionDenied",
	KindNotFound:          "NotFound",
	KindBrokenPipe:        "BrokenPipe",
	KindAlreadyExists:     "AlreadyExists",
	KindNotADirectory:     "NotADirectory",
	KindIsADirectory:      "IsADirectory",
	KindDirectoryNotEmpty: "DirectoryNotEmpty",
	KindInvalidName:       "InvalidFileName",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Error is the single error carrier of the package. Every failure an
// operation can report maps onto one Kind; the note only adds context.
type Error struct {
	Kind  Kind
	Note  string
	cause error
}

func (e *Error) Error() string {
	if e.Note != "" {
		return fmt.Sprintf("bufx: %s: %s", e.Kind, e.Note)
	}
	return "bufx: " + e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.cause
}

// ErrCannotGrow is returned by Fill when a non-empty fixed-capacity buffer
// is full. It is a signal, not a failure: callers that can work with the
// bytes already buffered may proceed, the others map it to
// KindBufferTooShort. Fill never returns it on an empty buffer.
var ErrCannotGrow = errors.New("bufx: buffer cannot grow")

// KindOf returns the Kind carried by err, or 0 for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func newError(k Kind, note string) *Error {
	return &Error{Kind: k, Note: note}
}

func errConsume(n, limit int) error {
	return newError(KindConsume, fmt.Sprintf("consume %d outside [0, %d]", n, limit))
}

func errBadSeek(pos, size int64) error {
	return newError(KindBadSeek, fmt.Sprintf("seek %d outside [0, %d]", pos, size))
}

func errEOF(note string) error {
	return newError(KindEOF, note)
}

// WrapTransport maps an error raised by a Source or Sink onto the transport
// kinds of the taxonomy. Errors with no matching kind pass through verbatim.
func WrapTransport(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	k := transportKind(err)
	if k == 0 {
		return err
	}
	return &Error{Kind: k, Note: err.Error(), cause: err}
}

func transportKind(err error) Kind {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return KindPermissionDenied
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrExist):
		return KindAlreadyExists
	case errors.Is(err, fs.ErrInvalid):
		return KindInvalidName
	case errors.Is(err, syscall.EPIPE):
		return KindBrokenPipe
	case errors.Is(err, syscall.ENOTDIR):
		return KindNotADirectory
	case errors.Is(err, syscall.EISDIR):
		return KindIsADirectory
	case errors.Is(err, syscall.ENOTEMPTY):
		return KindDirectoryNotEmpty
	case errors.Is(err, syscall.ENAMETOOLONG):
		return KindInvalidName
	}
	return 0
}
