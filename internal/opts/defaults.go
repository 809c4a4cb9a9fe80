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

package opts

import (
	"os"
	"strconv"
)

const (
	_DefaultReaderBufferSize = 8192
	_DefaultWriterBufferSize = 4096
	_DefaultVectorBufferSize = 32
)

var (
	ReaderBufferSize = parseOrDefault("BUFX_READER_BUFFER_SIZE", _DefaultReaderBufferSize, 0)
	WriterBufferSize = parseOrDefault("BUFX_WRITER_BUFFER_SIZE", _DefaultWriterBufferSize, 0)
	VectorBufferSize = parseOrDefault("BUFX_VECTOR_BUFFER_SIZE", _DefaultVectorBufferSize, 0)
)

func parseOrDefault(key string, def int, min int) int {
	if env := os.Getenv(key); env == "" {
		return def
	} else if val, err := strconv.ParseUint(env, 0, 64); err != nil {
		panic("bufx: invalid value for " + key)
	} else if ret := int(val); ret <= min {
		panic("bufx: value too small for " + key)
	} else {
		return ret
	}
}
