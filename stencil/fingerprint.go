// SPDX-License-Identifier: MIT

package stencil

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a 64-bit digest of the dimension, the sentinel and
// every elementary stencil's ordered velocity numbers. Sets built from the
// same configuration and sentinel share a fingerprint; reordering a stencil
// or changing the sentinel changes it, since the index tables change with it.
func (s *Set) Fingerprint() uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 8)
	put := func(x int) {
		buf = binary.LittleEndian.AppendUint64(buf[:0], uint64(x))
		_, _ = d.Write(buf)
	}
	put(s.dim)
	put(s.sentinel)
	put(len(s.stencils))
	for _, vs := range s.stencils {
		put(len(vs))
		for _, v := range vs {
			put(v.Num())
		}
	}

	return d.Sum64()
}
