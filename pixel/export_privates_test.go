// SPDX-License-Identifier: MIT

package pixel

// Test bridge for private helpers. Compiled into the test binary only.

var (
	ReflectIndex_TestOnly = reflectIndex
	ReflectCoord_TestOnly = reflectCoord
)

// Contiguous_TestOnly reports whether b takes the flat fast path.
func Contiguous_TestOnly(b *Buffer) bool { return b.contiguous() }
