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
	"fmt"
)

// Option is the property setter function for constructor options.
type Option func(*options)

type options struct {
	bufferSize int
}

func newOptions(def int, setters []Option) options {
	o := options{bufferSize: def}
	for _, fn := range setters {
		fn(&o)
	}
	return o
}

// WithBufferSize sets the initial buffer capacity of the constructed reader
// or writer. Growable types treat it as a starting point, BytesWriter as the
// capacity available before the first reallocation.
//
// A size below 1 is a programmer error and panics.
func WithBufferSize(size int) Option {
	if size < 1 {
		panic(fmt.Sprintf("bufx: invalid buffer size: %d", size))
	}
	return func(o *options) { o.bufferSize = size }
}
