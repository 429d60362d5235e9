// Copyright 2026 The asn1fuzz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package der turns [codello.dev/asn1fuzz] value descriptions into DER bytes.
//
// The package works content-first, header-last: content octets are appended
// to the tail of a [Buffer], then the identifier and length octets are
// inserted in front of the finished content. This mirrors how a DER length
// can only be known once the content exists, and it is what allows a
// description to splice arbitrary override bytes in place of the length
// octets after the fact.
//
// Encoding is total: every description yields some byte string, possibly
// empty, possibly malformed DER. The only input that collapses to an empty
// result is a PDU tree nested deeper than the recursion limit of [Encoder].
package der

// Identifier octets of the universal types emitted by this package, with
// class and constructed bits folded in (X.680, 8.6, Table 1).
const (
	TagBoolean         byte = 0x01
	TagInteger         byte = 0x02
	TagBitString       byte = 0x03
	TagOctetString     byte = 0x04
	TagNull            byte = 0x05
	TagOID             byte = 0x06
	TagIA5String       byte = 0x16
	TagUTCTime         byte = 0x17
	TagGeneralizedTime byte = 0x18
	TagSequence        byte = 0x30 // SEQUENCE is always constructed in DER
	TagSet             byte = 0x31 // SET is always constructed in DER
)

// Identifier octet bit masks (X.690 (2015), 8.1.2).
const (
	ClassContextSpecific byte = 0x80
	BitConstructed       byte = 0x20
)
