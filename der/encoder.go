// Copyright 2026 The asn1fuzz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"codello.dev/asn1fuzz"
	"codello.dev/asn1fuzz/internal/vlq"
)

// recursionLimit is the maximum nesting depth of PDUs. Descriptions nested
// deeper than this encode to nothing: a pathological tree must not cost a
// fuzzer an enormous half-finished output, and the limit keeps the call stack
// bounded.
const recursionLimit = 200

// Encoder encodes [asn1fuzz.PDU] trees into DER bytes. The zero value is
// ready for use and an Encoder can be reused for any number of encodings; its
// state is reset on every call to [Encoder.Encode]. An Encoder must not be
// used concurrently, but distinct Encoders are fully independent.
type Encoder struct {
	buf           Buffer
	depth         int
	limitExceeded bool
}

// EncodePDU encodes a single PDU description using a throwaway [Encoder].
func EncodePDU(p *asn1fuzz.PDU) []byte {
	var e Encoder
	return e.Encode(p)
}

// Encode returns the complete TLV encoding of p. Every structurally
// well-formed description produces some byte string; the single failure mode
// is a tree nested beyond the recursion limit, which yields an empty result
// rather than a partial encoding. The returned slice aliases the Encoder's
// internal buffer and is only valid until the next call to Encode.
func (e *Encoder) Encode(p *asn1fuzz.PDU) []byte {
	e.buf.Reset()
	e.depth = 0
	e.limitExceeded = false

	if p == nil {
		return nil
	}
	e.pdu(p)
	if e.limitExceeded {
		return nil
	}
	return e.buf.Bytes()
}

// pdu encodes one TLV node: identifier octets, content octets, then the
// length octets back-patched in front of the content. The depth guard runs
// before any bytes are written so an over-deep node contributes nothing.
func (e *Encoder) pdu(p *asn1fuzz.PDU) {
	if e.depth > recursionLimit {
		e.limitExceeded = true
		return
	}
	e.depth++
	e.identifier(p.ID)
	lenPos := e.buf.Len()
	e.value(p.Val)
	e.length(p.Len, e.buf.Len()-lenPos, lenPos)
	e.depth--
}

// identifier appends the identifier octets of id. Tag numbers below 31 fold
// into a single octet with the class and encoding bits; larger tag numbers
// use the high-tag-number form, a leading octet with the low five bits set
// followed by the base-128 octets of the tag number (X.690 (2015), 8.1.2.4).
func (e *Encoder) identifier(id asn1fuzz.Identifier) {
	b := byte(id.Class)<<6 | byte(id.Encoding)<<5
	if id.TagNum >= 31 {
		e.buf.WriteByte(b | 0x1f)
		vlq.Write(&e.buf, id.TagNum)
	} else {
		e.buf.WriteByte(b | byte(id.TagNum))
	}
}

// value appends the content octets of val in input order. Once the recursion
// limit has been hit anywhere below, remaining elements are skipped; the
// whole encoding is discarded at the top level anyway.
func (e *Encoder) value(val asn1fuzz.Value) {
	for i := range val {
		if e.limitExceeded {
			return
		}
		if val[i].PDU != nil {
			e.pdu(val[i].PDU)
		} else {
			e.buf.Write(val[i].Bytes)
		}
	}
}

// length emits the length octets for a content size of n at offset lenPos,
// according to the description's length strategy.
func (e *Encoder) length(l asn1fuzz.Length, n, lenPos int) {
	switch l.Form {
	case asn1fuzz.LengthOverride:
		e.buf.Insert(lenPos, l.Override)
	case asn1fuzz.LengthIndefinite:
		e.buf.InsertByte(lenPos, 0x80)
		// The content runs from lenPos to the end of the buffer, so the
		// end-of-contents octets go at the very end.
		e.buf.Write([]byte{0x00, 0x00})
	default:
		e.buf.InsertLength(lenPos, n)
	}
}
