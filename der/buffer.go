// Copyright 2026 The asn1fuzz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import "math/bits"

// Buffer is a growing DER output buffer supporting the content-first,
// header-last emission scheme: content is appended at the tail and header
// octets are inserted at a remembered offset in front of it.
//
// Buffer implements [io.Writer] and [io.ByteWriter]; both never fail. The
// zero value is an empty buffer ready for use. A Buffer is owned by a single
// encoding operation and is not safe for concurrent use.
type Buffer struct {
	b []byte
}

// Len returns the number of bytes in b.
func (b *Buffer) Len() int { return len(b.b) }

// Bytes returns the contents of b. The slice aliases the buffer's backing
// array and is only valid until the next mutation.
func (b *Buffer) Bytes() []byte { return b.b }

// Reset truncates b to zero length, retaining the allocated capacity.
func (b *Buffer) Reset() { b.b = b.b[:0] }

// Write appends p to the buffer. It implements [io.Writer] and never returns
// an error.
func (b *Buffer) Write(p []byte) (int, error) {
	b.b = append(b.b, p...)
	return len(p), nil
}

// WriteByte appends c to the buffer. It implements [io.ByteWriter] and never
// returns an error.
func (b *Buffer) WriteByte(c byte) error {
	b.b = append(b.b, c)
	return nil
}

// Insert splices p into the buffer at offset pos, shifting everything from
// pos onward towards the tail. pos must be in the range 0..Len().
func (b *Buffer) Insert(pos int, p []byte) {
	b.b = append(b.b, p...)
	copy(b.b[pos+len(p):], b.b[pos:])
	copy(b.b[pos:], p)
}

// InsertByte splices the single byte c into the buffer at offset pos.
func (b *Buffer) InsertByte(pos int, c byte) {
	b.b = append(b.b, 0)
	copy(b.b[pos+1:], b.b[pos:])
	b.b[pos] = c
}

// UintSize returns the number of base-256 octets needed to represent v with
// no leading zero octet. Zero needs one octet, not zero octets.
func UintSize(v uint64) int {
	if v == 0 {
		return 1
	}
	return (bits.Len64(v) + 7) / 8
}

// InsertUint splices the big-endian base-256 octets of v into the buffer at
// offset pos, most significant octet first, with no leading zero octet except
// for v == 0.
func (b *Buffer) InsertUint(pos int, v uint64) {
	var tmp [8]byte
	n := UintSize(v)
	for i := n; i > 0; i-- {
		tmp[n-i] = byte(v >> uint((i-1)*8))
	}
	b.Insert(pos, tmp[:n])
}

// InsertLength splices the definite-form length octets for a content size of
// n at offset pos. Sizes up to 127 use the short form; larger sizes use the
// long form, a leading octet 0x80|k followed by the k big-endian octets of n
// (X.690 (2015), 8.1.3.3-8.1.3.5).
func (b *Buffer) InsertLength(pos, n int) {
	b.InsertUint(pos, uint64(n))
	// Sizes in 128..255 fit one base-256 octet but still need the long form.
	if n > 127 {
		b.InsertByte(pos, 0x80|byte(UintSize(uint64(n))))
	}
}

// TagLength splices the identifier octet tag followed by the definite-form
// length octets for content size n at offset pos. It is the back-patching
// step of the content-first scheme: the caller records pos before writing n
// content bytes and calls TagLength afterwards, yielding [tag][len][content].
func (b *Buffer) TagLength(tag byte, n, pos int) {
	b.InsertLength(pos, n)
	b.InsertByte(pos, tag)
}

// ReplaceTag rewrites the identifier at offset pos to the single octet tag.
// If the existing identifier uses the high-tag-number form, its continuation
// octets and the terminating septet octet are dropped so that the encoding
// stays well-formed. This is how context-specific tagging is retrofitted
// after a value was emitted with its natural universal tag.
func (b *Buffer) ReplaceTag(tag byte, pos int) {
	if b.b[pos]&0x1f == 0x1f {
		end := pos + 1
		for end < len(b.b) && b.b[end]&0x80 != 0 {
			end++
		}
		if end < len(b.b) {
			end++
		}
		b.b = append(b.b[:pos+1], b.b[end:]...)
	}
	b.b[pos] = tag
}
