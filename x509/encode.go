// Copyright 2026 The asn1fuzz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x509

import (
	"codello.dev/asn1fuzz"
	"codello.dev/asn1fuzz/der"
)

// The composer builds a certificate strictly bottom-up with the same
// content-first, header-last splicing the der package uses: each structured
// field writes its inner fields in order, then prepends the SEQUENCE tag and
// length covering the span.

// EncodeCertificate returns the DER encoding of c. A nil certificate encodes
// to nothing.
func EncodeCertificate(c *Certificate) []byte {
	if c == nil {
		return nil
	}
	var b der.Buffer
	field(&b, c.TBSCertificate, encodeTBSCertificate)
	field(&b, c.SignatureAlgorithm, encodeAlgorithmIdentifier)
	field(&b, c.SignatureValue, (*der.Buffer).BitString)
	b.TagLength(der.TagSequence, b.Len(), 0)
	return b.Bytes()
}

// field encodes one structured field: a raw PDU override wins over the typed
// encoder. A raw PDU that trips the recursion limit splices nothing, leaving
// the field absent.
func field[T any](b *der.Buffer, f Field[T], enc func(*der.Buffer, T)) {
	if f.PDU != nil {
		b.Write(der.EncodePDU(f.PDU))
		return
	}
	enc(b, f.Value)
}

func encodeTBSCertificate(b *der.Buffer, tbs TBSCertificate) {
	pos := b.Len()
	field(b, tbs.Version, encodeVersion)
	field(b, tbs.SerialNumber, (*der.Buffer).Integer)
	field(b, tbs.SignatureAlgorithm, encodeAlgorithmIdentifier)
	field(b, tbs.Issuer, encodeName)
	field(b, tbs.Validity, encodeValidity)
	field(b, tbs.Subject, encodeName)
	field(b, tbs.SubjectPublicKeyInfo, encodeSubjectPublicKeyInfo)

	// The optional fields are encoded with their natural universal tag first
	// and the identifier is then rewritten to the context-specific form
	// (RFC 5280, 4.1 and 4.1.2.8-4.1.2.9).
	if tbs.IssuerUniqueID != nil {
		tagPos := b.Len()
		field(b, *tbs.IssuerUniqueID, (*der.Buffer).BitString)
		replaceTag(b, der.ClassContextSpecific|0x01, tagPos)
	}
	if tbs.SubjectUniqueID != nil {
		tagPos := b.Len()
		field(b, *tbs.SubjectUniqueID, (*der.Buffer).BitString)
		replaceTag(b, der.ClassContextSpecific|0x02, tagPos)
	}
	if tbs.Extensions != nil {
		tagPos := b.Len()
		field(b, *tbs.Extensions, encodeExtensions)
		replaceTag(b, der.ClassContextSpecific|der.BitConstructed|0x03, tagPos)
	}

	b.TagLength(der.TagSequence, b.Len()-pos, pos)
}

// replaceTag rewrites the identifier at tagPos unless the field encoded to
// nothing (a skipped timestamp or an over-deep raw PDU), in which case there
// is no identifier to rewrite.
func replaceTag(b *der.Buffer, tag byte, tagPos int) {
	if b.Len() == tagPos {
		return
	}
	b.ReplaceTag(tag, tagPos)
}

// encodeVersion emits the version as [0] EXPLICIT INTEGER (RFC 5280,
// 4.1.2.1). The wrapped INTEGER is always a single content octet; version
// numbers only ever need values 0 through 2.
func encodeVersion(b *der.Buffer, v Version) {
	b.Write([]byte{der.ClassContextSpecific | der.BitConstructed, 0x03, der.TagInteger, 0x01, byte(v)})
}

func encodeAlgorithmIdentifier(b *der.Buffer, v AlgorithmIdentifier) {
	pos := b.Len()
	field(b, v.ObjectIdentifier, (*der.Buffer).ObjectIdentifier)
	field(b, v.Parameters, encodeRawDER)
	b.TagLength(der.TagSequence, b.Len()-pos, pos)
}

func encodeRawDER(b *der.Buffer, v RawDER) {
	b.Write(v)
}

func encodeSubjectPublicKeyInfo(b *der.Buffer, v SubjectPublicKeyInfo) {
	pos := b.Len()
	field(b, v.AlgorithmIdentifier, encodeAlgorithmIdentifier)
	field(b, v.SubjectPublicKey, (*der.Buffer).BitString)
	b.TagLength(der.TagSequence, b.Len()-pos, pos)
}

func encodeValidity(b *der.Buffer, v Validity) {
	pos := b.Len()
	field(b, v.NotBefore, encodeTime)
	field(b, v.NotAfter, encodeTime)
	b.TagLength(der.TagSequence, b.Len()-pos, pos)
}

// encodeTime encodes the UTCTime arm when present, the GeneralizedTime arm
// otherwise. A skipped timestamp leaves the field absent; the surrounding
// SEQUENCE simply covers one element less.
func encodeTime(b *der.Buffer, t Time) {
	if t.UTCTime != nil {
		b.UTCTime(*t.UTCTime)
		return
	}
	var g asn1fuzz.GeneralizedTime
	if t.GeneralizedTime != nil {
		g = *t.GeneralizedTime
	}
	b.GeneralizedTime(g)
}

func encodeName(b *der.Buffer, n Name) {
	pos := b.Len()
	for _, rdn := range n {
		encodeRDN(b, rdn)
	}
	b.TagLength(der.TagSequence, b.Len()-pos, pos)
}

func encodeRDN(b *der.Buffer, rdn RelativeDistinguishedName) {
	pos := b.Len()
	for _, atv := range rdn {
		encodeAttributeTypeAndValue(b, atv)
	}
	b.TagLength(der.TagSet, b.Len()-pos, pos)
}

func encodeAttributeTypeAndValue(b *der.Buffer, atv AttributeTypeAndValue) {
	pos := b.Len()
	field(b, atv.Type, (*der.Buffer).ObjectIdentifier)
	field(b, atv.Value, encodeAttributeValue)
	b.TagLength(der.TagSequence, b.Len()-pos, pos)
}

func encodeAttributeValue(b *der.Buffer, v AttributeValue) {
	tag := v.Tag
	if tag == 0 {
		tag = 0x13 // PrintableString
	}
	pos := b.Len()
	b.Write(v.Val)
	b.TagLength(tag, b.Len()-pos, pos)
}
