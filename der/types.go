// Copyright 2026 The asn1fuzz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"time"

	"codello.dev/asn1fuzz"
	"codello.dev/asn1fuzz/internal/vlq"
)

// The encoders in this file all follow the same shape: content octets are
// written at the tail of the buffer, the offset at which they began is
// remembered, and the universal tag plus definite length are spliced in
// front. Each encoder emits exactly one complete TLV (or, for the time types,
// possibly nothing at all).

// Integer appends the encoding of an INTEGER. An empty value is replaced by
// the single content octet 0x00 (X.690 (2015), 8.3.1).
func (b *Buffer) Integer(v asn1fuzz.Integer) {
	pos := b.Len()
	if len(v.Val) > 0 {
		b.Write(v.Val)
	} else {
		b.WriteByte(0x00)
	}
	b.TagLength(TagInteger, b.Len()-pos, pos)
}

// Boolean appends the encoding of a BOOLEAN: content 0xFF for true, 0x00 for
// false (X.690 (2015), 11.1).
func (b *Buffer) Boolean(v asn1fuzz.Boolean) {
	pos := b.Len()
	if v {
		b.WriteByte(0xff)
	} else {
		b.WriteByte(0x00)
	}
	b.TagLength(TagBoolean, b.Len()-pos, pos)
}

// BitString appends the encoding of a BIT STRING: the unused-bit count as the
// initial content octet followed by the content bytes. An empty value encodes
// as the single initial octet 0x00 (X.690 (2015), 8.6.2.3). The encoding is
// always primitive, as DER requires.
func (b *Buffer) BitString(v asn1fuzz.BitString) {
	pos := b.Len()
	if len(v.Val) > 0 {
		b.WriteByte(v.UnusedBits)
		b.Write(v.Val)
	} else {
		b.WriteByte(0x00)
	}
	b.TagLength(TagBitString, b.Len()-pos, pos)
}

// OctetString appends the encoding of an OCTET STRING.
func (b *Buffer) OctetString(v asn1fuzz.OctetString) {
	pos := b.Len()
	b.Write(v)
	b.TagLength(TagOctetString, b.Len()-pos, pos)
}

// ObjectIdentifier appends the encoding of an OBJECT IDENTIFIER. Each
// subidentifier from [asn1fuzz.ObjectIdentifier.Arcs] is emitted in base-128
// continuation form (X.690 (2015), 8.19.2). The degenerate arcless form
// yields the single content octet 0x00, which is malformed DER and preserved
// deliberately.
func (b *Buffer) ObjectIdentifier(v asn1fuzz.ObjectIdentifier) {
	pos := b.Len()
	arcs := v.Arcs()
	if len(arcs) == 0 {
		b.WriteByte(0x00)
	}
	for _, arc := range arcs {
		vlq.Write(b, arc)
	}
	b.TagLength(TagOID, b.Len()-pos, pos)
}

// UTCTime appends the encoding of a UTCTime as YYMMDDHHMMSSZ (X.690 (2015),
// 11.8), dropping the century digits of the year. If the rendered timestamp
// is too short to extract the time fields, nothing is appended, not even the
// tag and length; callers treat the absent encoding as a skipped field.
func (b *Buffer) UTCTime(v asn1fuzz.UTCTime) {
	pos := b.Len()
	b.timestamp(v.Time(), true)
	if b.Len() == pos {
		return
	}
	b.TagLength(TagUTCTime, b.Len()-pos, pos)
}

// GeneralizedTime appends the encoding of a GeneralizedTime as
// YYYYMMDDHHMMSSZ with a four-digit year (X.690 (2015), 11.7). If the
// rendered timestamp is too short to extract the time fields, nothing is
// appended, not even the tag and length.
func (b *Buffer) GeneralizedTime(v asn1fuzz.GeneralizedTime) {
	pos := b.Len()
	b.timestamp(v.Time(), false)
	if b.Len() == pos {
		return
	}
	b.TagLength(TagGeneralizedTime, b.Len()-pos, pos)
}

// timestamp writes the content octets for a time value by slicing the fields
// out of an RFC 3339 rendering of t at fixed positions. Fractional seconds
// are never included, keeping the encodings compatible with RFC 5280,
// 4.1.2.5.
func (b *Buffer) timestamp(t time.Time, twoDigitYear bool) {
	content, ok := timeContent(t.UTC().Format(time.RFC3339), twoDigitYear)
	if !ok {
		return
	}
	b.Write(content)
}

// timeContent extracts YYMMDDHHMMSSZ or YYYYMMDDHHMMSSZ from an ISO-8601
// string of the shape YYYY-MM-DDTHH:MM:SS[...]. Renderings shorter than the
// 20 bytes of YYYY-MM-DDTHH:MM:SSZ report ok = false.
func timeContent(iso string, twoDigitYear bool) (content []byte, ok bool) {
	if len(iso) < 20 {
		return nil, false
	}
	var s string
	if twoDigitYear {
		s = iso[2:4]
	} else {
		s = iso[0:4]
	}
	s += iso[5:7]   // month
	s += iso[8:10]  // day
	s += iso[11:13] // hour
	s += iso[14:16] // minute
	s += iso[17:19] // seconds
	s += "Z"
	return []byte(s), true
}
