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

package rt

import (
	"unsafe"
)

type GoSlice struct {
	Ptr unsafe.Pointer
	Len int
	Cap int
}

type GoString struct {
	Ptr unsafe.Pointer
	Len int
}

// Mem2Str casts b to a string without copying. The caller must guarantee
// that b is never modified afterwards.
func Mem2Str(b []byte) (s string) {
	(*GoString)(unsafe.Pointer(&s)).Len = (*GoSlice)(unsafe.Pointer(&b)).Len
	(*GoString)(unsafe.Pointer(&s)).Ptr = (*GoSlice)(unsafe.Pointer(&b)).Ptr
	return
}

// Str2Mem casts s to a byte slice without copying. The result must not be
// written to.
func Str2Mem(s string) (b []byte) {
	(*GoSlice)(unsafe.Pointer(&b)).Cap = (*GoString)(unsafe.Pointer(&s)).Len
	(*GoSlice)(unsafe.Pointer(&b)).Len = (*GoString)(unsafe.Pointer(&s)).Len
	(*GoSlice)(unsafe.Pointer(&b)).Ptr = (*GoString)(unsafe.Pointer(&s)).Ptr
	return
}
