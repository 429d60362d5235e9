// Copyright 2026 The asn1fuzz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package x509 assembles DER-encoded X.509 certificates (RFC 5280) and
// certificate chains from structured descriptions.
//
// Every structured field is a [Field]: a choice between typed content and a
// raw [asn1fuzz.PDU] that replaces the field's encoding wholesale. The raw
// escape hatch applies recursively, down to individual name attributes and
// extension members, and is the chief mechanism by which callers produce
// malformed certificates while still exercising the typed layout code.
//
// The package lays out octets only. It never computes signatures, never
// validates the result, and never fails: every description encodes to some
// byte string.
package x509

import (
	"codello.dev/asn1fuzz"
)

// Field is a structured field that is either typed content or an arbitrary
// raw PDU. A non-nil PDU takes precedence: its encoding is spliced verbatim
// in place of the typed encoding of Value. A raw PDU that trips the recursion
// limit of [codello.dev/asn1fuzz/der.Encoder] contributes nothing, leaving
// the field absent.
type Field[T any] struct {
	PDU   *asn1fuzz.PDU
	Value T
}

// Typed returns a Field carrying typed content.
func Typed[T any](v T) Field[T] {
	return Field[T]{Value: v}
}

// RawPDU returns a Field whose encoding is replaced by the encoding of p.
func RawPDU[T any](p *asn1fuzz.PDU) Field[T] {
	return Field[T]{PDU: p}
}

// Version is the TBSCertificate version number (RFC 5280, 4.1.2.1). It is
// emitted as [0] EXPLICIT INTEGER regardless of whether the optional fields
// its value gates are present; interesting fuzz inputs disagree on purpose.
type Version uint8

const (
	V1 Version = iota
	V2
	V3
)

// Certificate describes a complete certificate: the to-be-signed body, the
// outer signature algorithm, and the signature value, wrapped in a SEQUENCE
// (RFC 5280, 4.1). The signature value is an arbitrary bit string; no
// signing takes place.
type Certificate struct {
	TBSCertificate     Field[TBSCertificate]
	SignatureAlgorithm Field[AlgorithmIdentifier]
	SignatureValue     Field[asn1fuzz.BitString]
}

// TBSCertificate describes the to-be-signed body (RFC 5280, 4.1.2). The
// three trailing fields are optional; when present they are emitted with
// their natural universal tags and rewritten to the context-specific tags
// [1], [2], and [3]. They are encoded whenever set, independently of the
// version number.
type TBSCertificate struct {
	Version              Field[Version]
	SerialNumber         Field[asn1fuzz.Integer]
	SignatureAlgorithm   Field[AlgorithmIdentifier]
	Issuer               Field[Name]
	Validity             Field[Validity]
	Subject              Field[Name]
	SubjectPublicKeyInfo Field[SubjectPublicKeyInfo]
	IssuerUniqueID       *Field[asn1fuzz.BitString]
	SubjectUniqueID      *Field[asn1fuzz.BitString]
	Extensions           *Field[Extensions]
}

// AlgorithmIdentifier describes an algorithm OID and its parameters, wrapped
// in a SEQUENCE (RFC 5280, 4.1.1.2).
type AlgorithmIdentifier struct {
	ObjectIdentifier Field[asn1fuzz.ObjectIdentifier]
	Parameters       Field[RawDER]
}

// RawDER is a pre-encoded DER fragment spliced into the output verbatim,
// without any added tag or length. An empty fragment contributes nothing,
// which is how absent OPTIONAL content is expressed.
type RawDER []byte

// SubjectPublicKeyInfo describes the public key field (RFC 5280, 4.1.2.7):
// an algorithm identifier followed by the key material as a BIT STRING,
// wrapped in a SEQUENCE.
type SubjectPublicKeyInfo struct {
	AlgorithmIdentifier Field[AlgorithmIdentifier]
	SubjectPublicKey    Field[asn1fuzz.BitString]
}

// Validity describes the validity interval (RFC 5280, 4.1.2.5): two Time
// values wrapped in a SEQUENCE. Whether notBefore precedes notAfter is none
// of this package's business.
type Validity struct {
	NotBefore Field[Time]
	NotAfter  Field[Time]
}

// Time is the CHOICE between UTCTime and GeneralizedTime (RFC 5280, 4.1.2.5).
// A non-nil UTCTime wins; otherwise the GeneralizedTime arm is used, falling
// back to its zero instant when both are nil.
type Time struct {
	UTCTime         *asn1fuzz.UTCTime
	GeneralizedTime *asn1fuzz.GeneralizedTime
}

// UTC returns a Time holding a UTCTime instant.
func UTC(t asn1fuzz.UTCTime) Time {
	return Time{UTCTime: &t}
}

// Generalized returns a Time holding a GeneralizedTime instant.
func Generalized(t asn1fuzz.GeneralizedTime) Time {
	return Time{GeneralizedTime: &t}
}

// Name describes an RDNSequence (RFC 5280, 4.1.2.4): a SEQUENCE OF
// RelativeDistinguishedName. The empty Name encodes as the empty SEQUENCE
// 30 00.
type Name []RelativeDistinguishedName

// RelativeDistinguishedName is a SET OF AttributeTypeAndValue. The attributes
// are emitted in input order; no DER SET-OF sorting is applied, so multi-
// attribute RDNs in caller-chosen order are another source of near-valid
// encodings.
type RelativeDistinguishedName []AttributeTypeAndValue

// AttributeTypeAndValue is one attribute of an RDN: a type OID and a value,
// wrapped in a SEQUENCE (RFC 5280, 4.1.2.4).
type AttributeTypeAndValue struct {
	Type  Field[asn1fuzz.ObjectIdentifier]
	Value Field[AttributeValue]
}

// AttributeValue is a directory string with a caller-chosen universal string
// tag. A zero Tag means PrintableString (0x13). The bytes are emitted
// verbatim; nothing checks that they are legal for the chosen string type.
type AttributeValue struct {
	Tag byte
	Val []byte
}

// Attribute type OIDs from RFC 5280, Appendix A, for convenience when
// building names.
var (
	OIDCommonName       = asn1fuzz.ObjectIdentifier{Root: 2, Subarcs: []uint32{5, 4, 3}}
	OIDCountryName      = asn1fuzz.ObjectIdentifier{Root: 2, Subarcs: []uint32{5, 4, 6}}
	OIDOrganizationName = asn1fuzz.ObjectIdentifier{Root: 2, Subarcs: []uint32{5, 4, 10}}
)
