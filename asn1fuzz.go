// Copyright 2026 The asn1fuzz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asn1fuzz defines the structured description of ASN.1 values used to
// generate DER-encoded ([Rec. ITU-T X.690]) fuzzing seeds. A description is a
// tree of [PDU] nodes: every node carries an identifier, a length strategy,
// and an ordered sequence of value elements which are either literal content
// octets or nested PDUs.
//
// Unlike an ASN.1 compiler, this package makes no attempt to keep
// descriptions well-formed. The identifier, length, and value of a node are
// controlled independently, so a description can ask for an indefinite length
// (which DER forbids), a length field that contradicts the content, or a
// constructed bit on a type that must be primitive. Emitting such encodings
// is the point: the consumers of this module are fuzz targets for X.509 and
// ASN.1 parsers.
//
// Encoding a description into bytes is implemented in
// [codello.dev/asn1fuzz/der]. Assembling whole X.509 certificates and
// certificate chains is implemented in [codello.dev/asn1fuzz/x509].
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
package asn1fuzz

// Class holds the class part of an ASN.1 identifier octet. The class acts as
// a namespace for the tag number. A Class value is an unsigned 2-bit integer;
// it occupies bits 8 and 7 of the identifier octet (X.690 (2015), 8.1.2.2).
//
//go:generate stringer -type=Class -trimprefix=Class
type Class uint8

// Predefined [Class] constants. These are all the possible values that can be
// encoded in the [Class] type.
const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

// IsValid reports whether c is a valid Class value.
func (c Class) IsValid() bool {
	return c <= 3
}

// Encoding selects the primitive or constructed form of a data value. It
// occupies bit 6 of the identifier octet (X.690 (2015), 8.1.2.5).
//
//go:generate stringer -type=Encoding -trimprefix=Encoding
type Encoding uint8

// Predefined [Encoding] constants.
const (
	EncodingPrimitive Encoding = iota
	EncodingConstructed
)

// Identifier describes the identifier octets of a PDU. Tag numbers below 31
// encode into a single octet together with the class and encoding bits; tag
// numbers of 31 and above use the high-tag-number form (X.690 (2015),
// 8.1.2.4).
type Identifier struct {
	Class    Class
	Encoding Encoding
	TagNum   uint32
}

// LengthForm selects how the length octets of a PDU are produced.
type LengthForm uint8

const (
	// LengthAuto computes the definite length from the actual content size,
	// using the short form up to 127 and the minimal long form beyond
	// (X.690 (2015), 8.1.3.3-8.1.3.5). This is the zero value and the only
	// form DER permits.
	LengthAuto LengthForm = iota

	// LengthIndefinite emits the single octet 0x80 and terminates the content
	// with end-of-contents octets 00 00 (X.690 (2015), 8.1.3.6). Legal in BER,
	// never in DER.
	LengthIndefinite

	// LengthOverride splices [Length.Override] verbatim in place of the
	// length octets, with no relationship to the actual content size. An empty
	// override omits the length octets entirely.
	LengthOverride
)

// Length describes the length octets of a PDU. The zero value requests the
// automatically computed definite form.
type Length struct {
	Form     LengthForm
	Override []byte
}

// OverrideLength returns a Length that splices raw verbatim in place of the
// length octets.
func OverrideLength(raw []byte) Length {
	return Length{Form: LengthOverride, Override: raw}
}

// Element is a single component of a PDU's value: either literal content
// octets or a nested PDU. A non-nil PDU takes precedence over Bytes.
type Element struct {
	PDU   *PDU
	Bytes []byte
}

// Value is the ordered sequence of elements making up the content octets of a
// PDU. Elements are encoded in exactly the order they appear; nothing is
// reordered or deduplicated.
type Value []Element

// PDU is one node of an ASN.1 value description: identifier, length strategy,
// and content. The zero value describes the encoding 00 00 (an
// end-of-contents marker).
type PDU struct {
	ID  Identifier
	Len Length
	Val Value
}

// Raw returns an Element holding literal content octets.
func Raw(b []byte) Element {
	return Element{Bytes: b}
}

// Nested returns an Element holding a nested PDU.
func Nested(p *PDU) Element {
	return Element{PDU: p}
}
