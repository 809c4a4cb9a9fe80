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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMem2Str(t *testing.T) {
	b := []byte("hello")
	s := Mem2Str(b)
	require.Equal(t, "hello", s)

	// the string aliases b, that is the point
	b[0] = 'y'
	require.Equal(t, "yello", s)
}

func TestStr2Mem(t *testing.T) {
	b := Str2Mem("world")
	require.Equal(t, []byte("world"), b)
	require.Equal(t, 5, cap(b))
}

func TestRoundTrip(t *testing.T) {
	require.Equal(t, "abc", Mem2Str(Str2Mem("abc")))
	require.Equal(t, "", Mem2Str(nil))
	require.Len(t, Str2Mem(""), 0)
}
