// Copyright 2026 The asn1fuzz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x509

import (
	"codello.dev/asn1fuzz"
	"codello.dev/asn1fuzz/der"
)

// Extension OIDs under the id-ce arc 2.5.29 (RFC 5280, 4.2.1). The OID of a
// typed extension kind is synthesized from this table; only the Raw kind
// carries its own.
var (
	OIDAuthorityKeyIdentifier = asn1fuzz.ObjectIdentifier{Root: 2, Subarcs: []uint32{5, 29, 35}}
	OIDSubjectKeyIdentifier   = asn1fuzz.ObjectIdentifier{Root: 2, Subarcs: []uint32{5, 29, 14}}
	OIDKeyUsage               = asn1fuzz.ObjectIdentifier{Root: 2, Subarcs: []uint32{5, 29, 15}}
	OIDBasicConstraints       = asn1fuzz.ObjectIdentifier{Root: 2, Subarcs: []uint32{5, 29, 19}}
	OIDSubjectAltName         = asn1fuzz.ObjectIdentifier{Root: 2, Subarcs: []uint32{5, 29, 17}}
	OIDExtendedKeyUsage       = asn1fuzz.ObjectIdentifier{Root: 2, Subarcs: []uint32{5, 29, 37}}
)

// Extended key usage purpose OIDs under id-kp 1.3.6.1.5.5.7.3 (RFC 5280,
// 4.2.1.12).
var (
	OIDServerAuth   = asn1fuzz.ObjectIdentifier{Root: 1, SmallIdentifier: 3, Subarcs: []uint32{6, 1, 5, 5, 7, 3, 1}}
	OIDClientAuth   = asn1fuzz.ObjectIdentifier{Root: 1, SmallIdentifier: 3, Subarcs: []uint32{6, 1, 5, 5, 7, 3, 2}}
	OIDCodeSigning  = asn1fuzz.ObjectIdentifier{Root: 1, SmallIdentifier: 3, Subarcs: []uint32{6, 1, 5, 5, 7, 3, 3}}
	OIDOCSPSigning  = asn1fuzz.ObjectIdentifier{Root: 1, SmallIdentifier: 3, Subarcs: []uint32{6, 1, 5, 5, 7, 3, 9}}
	OIDTimeStamping = asn1fuzz.ObjectIdentifier{Root: 1, SmallIdentifier: 3, Subarcs: []uint32{6, 1, 5, 5, 7, 3, 8}}
)

// Extensions describes the extension list of a certificate. It encodes as
// the SEQUENCE OF Extension wrapped in the additional SEQUENCE that the
// [3] EXPLICIT tagging in TBSCertificate calls for; the composer rewrites
// the outer identifier to 0xA3.
type Extensions []Extension

// Extension is one certificate extension (RFC 5280, 4.2): a tagged union
// over the typed kinds plus the Raw fallback. The first non-nil kind in
// declaration order wins; an Extension with no kind set behaves like an
// empty Raw extension.
//
// Critical is a BOOLEAN DEFAULT FALSE; per DER (X.690 (2015), 11.5) the
// default value is omitted from the encoding.
type Extension struct {
	Critical asn1fuzz.Boolean

	AuthorityKeyIdentifier *AuthorityKeyIdentifier
	SubjectKeyIdentifier   *SubjectKeyIdentifier
	KeyUsage               *KeyUsage
	BasicConstraints       *BasicConstraints
	SubjectAlternativeName *SubjectAlternativeName
	ExtendedKeyUsage       *ExtendedKeyUsage
	Raw                    *RawExtension
}

// AuthorityKeyIdentifier describes the authorityKeyIdentifier extension
// content (RFC 5280, 4.2.1.1): a SEQUENCE of up to three optional members,
// each emitted with its natural tag and rewritten to the context-specific
// form.
type AuthorityKeyIdentifier struct {
	KeyIdentifier             *Field[asn1fuzz.OctetString]
	AuthorityCertIssuer       *Field[Name]
	AuthorityCertSerialNumber *Field[asn1fuzz.Integer]
}

// SubjectKeyIdentifier describes the subjectKeyIdentifier extension content
// (RFC 5280, 4.2.1.2): an OCTET STRING holding the key identifier.
type SubjectKeyIdentifier struct {
	KeyIdentifier Field[asn1fuzz.OctetString]
}

// KeyUsage describes the keyUsage extension content (RFC 5280, 4.2.1.3): a
// named-bit-list BIT STRING. DigitalSignature is bit 0, DecipherOnly bit 8.
// Per X.690 (2015), 11.2.2 trailing zero bits are trimmed from the encoding
// and the unused-bit count is derived from the highest set bit; with no bit
// set the empty BIT STRING 03 01 00 is emitted.
type KeyUsage struct {
	DigitalSignature bool
	NonRepudiation   bool
	KeyEncipherment  bool
	DataEncipherment bool
	KeyAgreement     bool
	KeyCertSign      bool
	CRLSign          bool
	EncipherOnly     bool
	DecipherOnly     bool
}

// BasicConstraints describes the basicConstraints extension content
// (RFC 5280, 4.2.1.9). CA is a BOOLEAN DEFAULT FALSE and is omitted when
// false; a nil PathLenConstraint is simply absent.
type BasicConstraints struct {
	CA                asn1fuzz.Boolean
	PathLenConstraint *asn1fuzz.Integer
}

// SubjectAlternativeName describes the subjectAltName extension content
// (RFC 5280, 4.2.1.6): a SEQUENCE OF GeneralName in input order. An empty
// list encodes as the empty SEQUENCE, which RFC 5280 forbids but parsers
// must survive.
type SubjectAlternativeName struct {
	Names []GeneralName
}

// GeneralName is one alternative name. The first non-nil member in
// declaration order wins; a GeneralName with no member set contributes
// nothing. The string and address forms are emitted with their natural
// universal tags and rewritten to the context-specific forms rfc822Name [1],
// dNSName [2], uniformResourceIdentifier [6], and iPAddress [7]. A Raw PDU
// is spliced verbatim, identifier included, so callers control the tag
// themselves.
type GeneralName struct {
	RFC822Name *string
	DNSName    *string
	URI        *string
	IPAddress  *asn1fuzz.OctetString
	Raw        *asn1fuzz.PDU
}

// ExtendedKeyUsage describes the extKeyUsage extension content (RFC 5280,
// 4.2.1.12): a SEQUENCE OF purpose OIDs, the primary purpose first and any
// additional purposes in input order.
type ExtendedKeyUsage struct {
	Primary    Field[asn1fuzz.ObjectIdentifier]
	Additional []Field[asn1fuzz.ObjectIdentifier]
}

// RawExtension carries an arbitrary extension: its own OID and either an
// arbitrary PDU or an opaque body as the extnValue content. A non-nil PDU
// wins over Value.
type RawExtension struct {
	OID   Field[asn1fuzz.ObjectIdentifier]
	PDU   *asn1fuzz.PDU
	Value []byte
}

func encodeExtensions(b *der.Buffer, exts Extensions) {
	pos := b.Len()
	inner := b.Len()
	for i := range exts {
		encodeExtension(b, &exts[i])
	}
	b.TagLength(der.TagSequence, b.Len()-inner, inner)
	// The extra SEQUENCE wrapper becomes the [3] EXPLICIT tag once the
	// composer rewrites its identifier.
	b.TagLength(der.TagSequence, b.Len()-pos, pos)
}

// encodeExtension emits SEQUENCE { extnID, critical, extnValue } where
// extnValue is an OCTET STRING wrapping the inner DER of the chosen kind.
func encodeExtension(b *der.Buffer, ext *Extension) {
	pos := b.Len()
	encodeExtensionOID(b, ext)
	if ext.Critical {
		b.Boolean(true)
	}
	vpos := b.Len()
	encodeExtensionContent(b, ext)
	b.TagLength(der.TagOctetString, b.Len()-vpos, vpos)
	b.TagLength(der.TagSequence, b.Len()-pos, pos)
}

func encodeExtensionOID(b *der.Buffer, ext *Extension) {
	switch {
	case ext.AuthorityKeyIdentifier != nil:
		b.ObjectIdentifier(OIDAuthorityKeyIdentifier)
	case ext.SubjectKeyIdentifier != nil:
		b.ObjectIdentifier(OIDSubjectKeyIdentifier)
	case ext.KeyUsage != nil:
		b.ObjectIdentifier(OIDKeyUsage)
	case ext.BasicConstraints != nil:
		b.ObjectIdentifier(OIDBasicConstraints)
	case ext.SubjectAlternativeName != nil:
		b.ObjectIdentifier(OIDSubjectAltName)
	case ext.ExtendedKeyUsage != nil:
		b.ObjectIdentifier(OIDExtendedKeyUsage)
	case ext.Raw != nil:
		field(b, ext.Raw.OID, (*der.Buffer).ObjectIdentifier)
	default:
		b.ObjectIdentifier(asn1fuzz.ObjectIdentifier{})
	}
}

func encodeExtensionContent(b *der.Buffer, ext *Extension) {
	switch {
	case ext.AuthorityKeyIdentifier != nil:
		encodeAuthorityKeyIdentifier(b, ext.AuthorityKeyIdentifier)
	case ext.SubjectKeyIdentifier != nil:
		field(b, ext.SubjectKeyIdentifier.KeyIdentifier, (*der.Buffer).OctetString)
	case ext.KeyUsage != nil:
		b.BitString(ext.KeyUsage.bitString())
	case ext.BasicConstraints != nil:
		encodeBasicConstraints(b, ext.BasicConstraints)
	case ext.SubjectAlternativeName != nil:
		encodeSubjectAlternativeName(b, ext.SubjectAlternativeName)
	case ext.ExtendedKeyUsage != nil:
		encodeExtendedKeyUsage(b, ext.ExtendedKeyUsage)
	case ext.Raw != nil:
		if ext.Raw.PDU != nil {
			b.Write(der.EncodePDU(ext.Raw.PDU))
		} else {
			b.Write(ext.Raw.Value)
		}
	}
}

func encodeAuthorityKeyIdentifier(b *der.Buffer, v *AuthorityKeyIdentifier) {
	pos := b.Len()
	if v.KeyIdentifier != nil {
		tagPos := b.Len()
		field(b, *v.KeyIdentifier, (*der.Buffer).OctetString)
		replaceTag(b, der.ClassContextSpecific|0x00, tagPos)
	}
	if v.AuthorityCertIssuer != nil {
		tagPos := b.Len()
		field(b, *v.AuthorityCertIssuer, encodeName)
		replaceTag(b, der.ClassContextSpecific|der.BitConstructed|0x01, tagPos)
	}
	if v.AuthorityCertSerialNumber != nil {
		tagPos := b.Len()
		field(b, *v.AuthorityCertSerialNumber, (*der.Buffer).Integer)
		replaceTag(b, der.ClassContextSpecific|0x02, tagPos)
	}
	b.TagLength(der.TagSequence, b.Len()-pos, pos)
}

// bitString packs the nine usage flags into a named-bit-list BIT STRING,
// bit 0 at the most significant position of the first content byte.
func (ku *KeyUsage) bitString() asn1fuzz.BitString {
	bits := [9]bool{
		ku.DigitalSignature, ku.NonRepudiation, ku.KeyEncipherment,
		ku.DataEncipherment, ku.KeyAgreement, ku.KeyCertSign,
		ku.CRLSign, ku.EncipherOnly, ku.DecipherOnly,
	}
	last := -1
	for i, set := range bits {
		if set {
			last = i
		}
	}
	if last < 0 {
		return asn1fuzz.BitString{}
	}
	n := last + 1
	val := make([]byte, (n+7)/8)
	for i := 0; i <= last; i++ {
		if bits[i] {
			val[i/8] |= 0x80 >> (i % 8)
		}
	}
	return asn1fuzz.BitString{UnusedBits: uint8(len(val)*8 - n), Val: val}
}

func encodeBasicConstraints(b *der.Buffer, v *BasicConstraints) {
	pos := b.Len()
	if v.CA {
		b.Boolean(true)
	}
	if v.PathLenConstraint != nil {
		b.Integer(*v.PathLenConstraint)
	}
	b.TagLength(der.TagSequence, b.Len()-pos, pos)
}

func encodeSubjectAlternativeName(b *der.Buffer, v *SubjectAlternativeName) {
	pos := b.Len()
	for i := range v.Names {
		encodeGeneralName(b, &v.Names[i])
	}
	b.TagLength(der.TagSequence, b.Len()-pos, pos)
}

func encodeGeneralName(b *der.Buffer, n *GeneralName) {
	ia5 := func(s string, tag byte) {
		pos := b.Len()
		b.Write([]byte(s))
		b.TagLength(der.TagIA5String, b.Len()-pos, pos)
		b.ReplaceTag(tag, pos)
	}
	switch {
	case n.RFC822Name != nil:
		ia5(*n.RFC822Name, der.ClassContextSpecific|0x01)
	case n.DNSName != nil:
		ia5(*n.DNSName, der.ClassContextSpecific|0x02)
	case n.URI != nil:
		ia5(*n.URI, der.ClassContextSpecific|0x06)
	case n.IPAddress != nil:
		tagPos := b.Len()
		b.OctetString(*n.IPAddress)
		b.ReplaceTag(der.ClassContextSpecific|0x07, tagPos)
	case n.Raw != nil:
		b.Write(der.EncodePDU(n.Raw))
	}
}

func encodeExtendedKeyUsage(b *der.Buffer, v *ExtendedKeyUsage) {
	pos := b.Len()
	field(b, v.Primary, (*der.Buffer).ObjectIdentifier)
	for _, oid := range v.Additional {
		field(b, oid, (*der.Buffer).ObjectIdentifier)
	}
	b.TagLength(der.TagSequence, b.Len()-pos, pos)
}
