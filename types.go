// Copyright 2026 The asn1fuzz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1fuzz

import (
	"strconv"
	"time"
)

// Integer describes the content octets of an ASN.1 INTEGER verbatim. The
// bytes are not interpreted: a leading padding octet, a non-minimal encoding,
// or a sign-flipping first bit are all preserved. An empty Val encodes as the
// single octet 0x00 because an INTEGER must have at least one content octet
// (X.690 (2015), 8.3.1).
type Integer struct {
	Val []byte
}

// Boolean describes an ASN.1 BOOLEAN. It encodes with a single content octet,
// 0xFF for true and 0x00 for false (X.690 (2015), 8.2 and 11.1).
type Boolean bool

// BitString describes an ASN.1 BIT STRING as a count of unused trailing bits
// and the content bytes. UnusedBits is written verbatim into the initial
// content octet, even when it exceeds the valid range of 0..7. An empty Val
// encodes as the single initial octet 0x00 (X.690 (2015), 8.6.2.3).
type BitString struct {
	UnusedBits uint8
	Val        []byte
}

// OctetString describes the content octets of an ASN.1 OCTET STRING.
type OctetString []byte

// ObjectIdentifier describes an ASN.1 OBJECT IDENTIFIER in the split form
// X.690 (2015), 8.19.4 requires for the first two arcs: the first
// subidentifier is 40*X+Y where X is the root arc and Y the second arc.
//
// For Root values 0 and 1 the second arc must stay below 40, so it is taken
// from SmallIdentifier (clamped to 39) and every entry of Subarcs becomes a
// subsequent arc. For Root 2 the second arc may be arbitrarily large, so it
// is taken from the first entry of Subarcs instead; with Root 2 and no
// Subarcs the content degenerates to a single 0x00 octet.
//
// Root values above 2 are treated as 2.
type ObjectIdentifier struct {
	Root            uint8
	SmallIdentifier uint8
	Subarcs         []uint32
}

// Arcs returns the sequence of subidentifier values oid encodes to, after
// root clamping and arc splitting. The result is empty for the degenerate
// Root-2 form.
func (oid ObjectIdentifier) Arcs() []uint64 {
	root := oid.Root
	if root > 2 {
		root = 2
	}
	if root == 2 {
		if len(oid.Subarcs) == 0 {
			return nil
		}
		arcs := make([]uint64, len(oid.Subarcs))
		arcs[0] = 80 + uint64(oid.Subarcs[0])
		for i, arc := range oid.Subarcs[1:] {
			arcs[i+1] = uint64(arc)
		}
		return arcs
	}
	second := oid.SmallIdentifier
	if second > 39 {
		second = 39
	}
	arcs := make([]uint64, len(oid.Subarcs)+1)
	arcs[0] = uint64(root)*40 + uint64(second)
	for i, arc := range oid.Subarcs {
		arcs[i+1] = uint64(arc)
	}
	return arcs
}

// String returns the dotted representation of oid.
func (oid ObjectIdentifier) String() string {
	arcs := oid.Arcs()
	if len(arcs) == 0 {
		return "2"
	}
	var s string
	if arcs[0] >= 80 {
		s = "2." + strconv.FormatUint(arcs[0]-80, 10)
	} else {
		s = strconv.FormatUint(arcs[0]/40, 10) + "." + strconv.FormatUint(arcs[0]%40, 10)
	}
	for _, arc := range arcs[1:] {
		s += "." + strconv.FormatUint(arc, 10)
	}
	return s
}

// UTCTime describes an ASN.1 UTCTime instant. It encodes as the 13 characters
// YYMMDDHHMMSSZ (X.690 (2015), 11.8); the century digits of the year are
// dropped. Fractional seconds are never emitted, per RFC 5280, 4.1.2.5.1.
type UTCTime time.Time

// Time returns the instant t describes.
func (t UTCTime) Time() time.Time { return time.Time(t) }

// GeneralizedTime describes an ASN.1 GeneralizedTime instant. It encodes as
// the 15 characters YYYYMMDDHHMMSSZ (X.690 (2015), 11.7) with a four-digit
// year. Fractional seconds are never emitted, per RFC 5280, 4.1.2.5.2.
type GeneralizedTime time.Time

// Time returns the instant t describes.
func (t GeneralizedTime) Time() time.Time { return time.Time(t) }
