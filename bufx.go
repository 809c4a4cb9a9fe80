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

// Package bufx provides user-space zero-copy buffered IO.
//
// Instead of hiding buffering behind opaque read and write calls, every type
// in this package exposes its internal buffer so that callers copy bytes into
// or out of it directly. A reader is anything with Buffer / Fill / Consume; a
// writer is anything with Buffer / Grow / Consume. Everything else - byte and
// scalar reads and writes, line scanning, delimiter copies - is derived from
// those six methods and works with any implementation of the two contracts.
//
// The package ships four concrete engines: BufferedReader and BufferedWriter
// wrap an external transport with a growable buffer, BytesReader is a
// zero-allocation cursor over bytes the caller already owns, and BytesWriter
// accumulates bytes into a growable region it owns.
//
// None of the types are safe for concurrent use. Callers that share an
// instance across goroutines must serialize access themselves.
package bufx
