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

package utils

import (
	"math/bits"
)

const minCapacity = 64

// GrowCapacity returns the capacity to reallocate to when a buffer of the
// given size is full. The curve overshoots the immediate need so that
// repeated appends cost amortized O(1) per byte: small buffers jump to a few
// hundred bytes, large ones grow by roughly an eighth plus a term that decays
// with magnitude.
func GrowCapacity(size int) int {
	if size < minCapacity {
		return minCapacity
	}
	exp := uint(bits.Len(uint(size))) * 7 / 8
	next := size + size/8 + 4<<exp
	if next <= size { // overflow
		next = size + size/8
	}
	return next
}
