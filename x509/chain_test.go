package x509

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codello.dev/asn1fuzz"
)

func TestEncodeChainConcatenation(t *testing.T) {
	chain := []*Certificate{skeleton(), skeleton()}
	got := EncodeChain(chain)
	single := EncodeCertificate(skeleton())
	assert.Equal(t, append(append([]byte{}, single...), single...), got)
}

func TestEncodeMutatedChainEmpty(t *testing.T) {
	got := EncodeMutatedChain(MutatedChain{})
	require.Len(t, got, 1)
	assert.Empty(t, got[0].DER)
	assert.False(t, got[0].Trusted)
}

func TestMutateSignature(t *testing.T) {
	tests := map[string]struct {
		valid bool
		want  []byte
	}{
		// The marker signature is a BIT STRING with zero unused bits whose
		// content is the ASCII digit.
		"Valid":   {true, []byte{0x03, 0x02, 0x00, '1'}},
		"Invalid": {false, []byte{0x03, 0x02, 0x00, '0'}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			out := EncodeMutatedChain(MutatedChain{
				Chain:     []*Certificate{skeleton()},
				Mutations: []Mutation{{MutateSignature: &MutateSignature{Index: 0, Valid: tc.valid}}},
			})
			require.Len(t, out, 1)
			assert.True(t, bytes.HasSuffix(out[0].DER, tc.want), "suffix %# x missing in %# x", tc.want, out[0].DER)
		})
	}
}

// A mutation clears a raw PDU override on the signature value before
// installing the marker.
func TestMutateSignatureClearsOverride(t *testing.T) {
	cert := skeleton()
	cert.SignatureValue = RawPDU[asn1fuzz.BitString](&asn1fuzz.PDU{
		ID:  asn1fuzz.Identifier{Class: asn1fuzz.ClassPrivate, TagNum: 9},
		Val: asn1fuzz.Value{asn1fuzz.Raw([]byte{0xee})},
	})

	out := EncodeMutatedChain(MutatedChain{
		Chain:     []*Certificate{cert},
		Mutations: []Mutation{{MutateSignature: &MutateSignature{Index: 0, Valid: true}}},
	})
	require.Len(t, out, 1)
	assert.True(t, bytes.HasSuffix(out[0].DER, []byte{0x03, 0x02, 0x00, '1'}))
	assert.False(t, bytes.Contains(out[0].DER, []byte{0xc9, 0x01, 0xee}))

	// The caller's certificate keeps its override.
	assert.NotNil(t, cert.SignatureValue.PDU)
}

func TestMutationIndexOutOfRange(t *testing.T) {
	plain := EncodeCertificate(skeleton())
	out := EncodeMutatedChain(MutatedChain{
		Chain: []*Certificate{skeleton()},
		Mutations: []Mutation{
			{MutateSignature: &MutateSignature{Index: 5, Valid: true}},
			{MutateSignature: &MutateSignature{Index: -1, Valid: true}},
			{}, // no variant set
		},
	})
	require.Len(t, out, 1)
	assert.Equal(t, plain, out[0].DER)
}

func TestTrustParameters(t *testing.T) {
	out := EncodeMutatedChain(MutatedChain{
		Chain: []*Certificate{skeleton(), skeleton(), skeleton()},
		TrustParameters: []TrustParameter{
			{Index: 2, Trusted: true},
			{Index: 7, Trusted: true},  // ignored
			{Index: -1, Trusted: true}, // ignored
			{Index: 0, Trusted: true},
			{Index: 0, Trusted: false}, // later parameters win
		},
	})
	require.Len(t, out, 3)
	assert.False(t, out[0].Trusted)
	assert.False(t, out[1].Trusted)
	assert.True(t, out[2].Trusted)
}

func TestEncodeMutatedChainOrder(t *testing.T) {
	a := skeleton()
	a.TBSCertificate.Value.SerialNumber = Typed(asn1fuzz.Integer{Val: []byte{0x01}})
	b := skeleton()
	b.TBSCertificate.Value.SerialNumber = Typed(asn1fuzz.Integer{Val: []byte{0x02}})

	out := EncodeMutatedChain(MutatedChain{Chain: []*Certificate{a, b}})
	require.Len(t, out, 2)
	assert.Equal(t, EncodeCertificate(a), out[0].DER)
	assert.Equal(t, EncodeCertificate(b), out[1].DER)
}
