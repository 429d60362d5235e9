// Copyright 2026 The asn1fuzz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x509

import "codello.dev/asn1fuzz"

// EncodedCertificate pairs one certificate encoding with its trust
// disposition for the consuming fuzz target.
type EncodedCertificate struct {
	DER     []byte
	Trusted bool
}

// TrustParameter marks the certificate at Index as trusted or untrusted.
// Indices outside the chain are ignored.
type TrustParameter struct {
	Index   int
	Trusted bool
}

// Mutation is a chain-level rewrite applied to a certificate before
// encoding. It is a tagged union with a single variant so far; a Mutation
// with no variant set does nothing.
type Mutation struct {
	MutateSignature *MutateSignature
}

// MutateSignature overwrites the signature value of the certificate at
// Index. The replacement is a BIT STRING with zero unused bits whose content
// is the ASCII digit "1" for a valid signature and "0" for an invalid one;
// consuming fuzz targets interpret the marker instead of verifying real
// cryptography. Any raw PDU override on the signature value is cleared
// first. Indices outside the chain are ignored.
type MutateSignature struct {
	Index int
	Valid bool
}

// MutatedChain describes an ordered certificate chain together with the
// mutations and trust dispositions to apply.
type MutatedChain struct {
	Chain           []*Certificate
	Mutations       []Mutation
	TrustParameters []TrustParameter
}

// EncodeChain encodes each certificate in order and returns the
// concatenation of their encodings, leaf first.
func EncodeChain(chain []*Certificate) []byte {
	var out []byte
	for _, cert := range chain {
		out = append(out, EncodeCertificate(cert)...)
	}
	return out
}

// EncodeMutatedChain applies the chain's mutations, encodes every
// certificate independently, and pairs each encoding with its trust flag
// (default untrusted). An empty chain returns a single empty encoding.
//
// Mutations operate on copies; the caller's certificates are not modified.
func EncodeMutatedChain(mc MutatedChain) []EncodedCertificate {
	if len(mc.Chain) == 0 {
		return []EncodedCertificate{{}}
	}

	chain := make([]Certificate, len(mc.Chain))
	for i, cert := range mc.Chain {
		if cert != nil {
			chain[i] = *cert
		}
	}

	for _, m := range mc.Mutations {
		mutate(m, chain)
	}

	out := make([]EncodedCertificate, len(chain))
	for i := range chain {
		out[i] = EncodedCertificate{DER: EncodeCertificate(&chain[i])}
	}

	for _, tp := range mc.TrustParameters {
		if tp.Index < 0 || tp.Index >= len(out) {
			continue
		}
		out[tp.Index].Trusted = tp.Trusted
	}
	return out
}

func mutate(m Mutation, chain []Certificate) {
	ms := m.MutateSignature
	if ms == nil || ms.Index < 0 || ms.Index >= len(chain) {
		return
	}
	content := "0"
	if ms.Valid {
		content = "1"
	}
	chain[ms.Index].SignatureValue = Field[asn1fuzz.BitString]{
		Value: asn1fuzz.BitString{UnusedBits: 0, Val: []byte(content)},
	}
}
