package der

import (
	"slices"
	"testing"

	"codello.dev/asn1fuzz"
)

// sequenceOf returns a constructed universal SEQUENCE node holding the given
// elements.
func sequenceOf(l asn1fuzz.Length, elems ...asn1fuzz.Element) *asn1fuzz.PDU {
	return &asn1fuzz.PDU{
		ID:  asn1fuzz.Identifier{Class: asn1fuzz.ClassUniversal, Encoding: asn1fuzz.EncodingConstructed, TagNum: 16},
		Len: l,
		Val: elems,
	}
}

func integerOne() *asn1fuzz.PDU {
	return &asn1fuzz.PDU{
		ID:  asn1fuzz.Identifier{TagNum: 2},
		Val: asn1fuzz.Value{asn1fuzz.Raw([]byte{0x01})},
	}
}

func TestEncode(t *testing.T) {
	tests := map[string]struct {
		in   *asn1fuzz.PDU
		want []byte
	}{
		"Nil":   {nil, nil},
		"Empty": {&asn1fuzz.PDU{}, []byte{0x00, 0x00}},
		"Integer": {
			integerOne(),
			[]byte{0x02, 0x01, 0x01},
		},
		"HighTagEmpty": {
			&asn1fuzz.PDU{ID: asn1fuzz.Identifier{TagNum: 128}},
			[]byte{0x1f, 0x81, 0x00, 0x00},
		},
		"HighTagBoundary": {
			&asn1fuzz.PDU{ID: asn1fuzz.Identifier{TagNum: 31}},
			[]byte{0x1f, 0x1f, 0x00},
		},
		"LowTagBoundary": {
			&asn1fuzz.PDU{ID: asn1fuzz.Identifier{TagNum: 30}},
			[]byte{0x1e, 0x00},
		},
		"ContextConstructed": {
			&asn1fuzz.PDU{ID: asn1fuzz.Identifier{Class: asn1fuzz.ClassContextSpecific, Encoding: asn1fuzz.EncodingConstructed, TagNum: 0}},
			[]byte{0xa0, 0x00},
		},
		"PrivateHighTag": {
			&asn1fuzz.PDU{ID: asn1fuzz.Identifier{Class: asn1fuzz.ClassPrivate, Encoding: asn1fuzz.EncodingPrimitive, TagNum: 200}},
			[]byte{0xdf, 0x81, 0x48, 0x00},
		},
		"IndefiniteSequence": {
			sequenceOf(asn1fuzz.Length{Form: asn1fuzz.LengthIndefinite}, asn1fuzz.Nested(integerOne())),
			[]byte{0x30, 0x80, 0x02, 0x01, 0x01, 0x00, 0x00},
		},
		"LengthOverride": {
			&asn1fuzz.PDU{
				ID:  asn1fuzz.Identifier{TagNum: 2},
				Len: asn1fuzz.OverrideLength([]byte{0x05}),
				Val: asn1fuzz.Value{asn1fuzz.Raw([]byte{0x00})},
			},
			[]byte{0x02, 0x05, 0x00},
		},
		"LengthOverrideEmpty": {
			&asn1fuzz.PDU{
				ID:  asn1fuzz.Identifier{TagNum: 2},
				Len: asn1fuzz.OverrideLength(nil),
				Val: asn1fuzz.Value{asn1fuzz.Raw([]byte{0x2a})},
			},
			[]byte{0x02, 0x2a},
		},
		"NestedSequence": {
			sequenceOf(asn1fuzz.Length{}, asn1fuzz.Nested(sequenceOf(asn1fuzz.Length{}, asn1fuzz.Nested(integerOne())))),
			[]byte{0x30, 0x05, 0x30, 0x03, 0x02, 0x01, 0x01},
		},
		"MixedValue": {
			sequenceOf(asn1fuzz.Length{}, asn1fuzz.Raw([]byte{0xaa}), asn1fuzz.Nested(integerOne()), asn1fuzz.Raw([]byte{0xbb})),
			[]byte{0x30, 0x05, 0xaa, 0x02, 0x01, 0x01, 0xbb},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := EncodePDU(tc.in)
			if !slices.Equal(got, tc.want) {
				t.Errorf("EncodePDU = %# x, want %# x", got, tc.want)
			}
		})
	}
}

func TestEncodeLongFormLength(t *testing.T) {
	content := make([]byte, 300)
	p := &asn1fuzz.PDU{
		ID:  asn1fuzz.Identifier{TagNum: 4},
		Val: asn1fuzz.Value{asn1fuzz.Raw(content)},
	}
	got := EncodePDU(p)
	want := append([]byte{0x04, 0x82, 0x01, 0x2c}, content...)
	if !slices.Equal(got, want) {
		t.Errorf("EncodePDU = %# x..., want %# x...", got[:4], want[:4])
	}
}

// Every indefinite-length opener must be matched by its own end-of-contents
// octets at the correct nesting depth.
func TestEncodeNestedIndefinite(t *testing.T) {
	indef := asn1fuzz.Length{Form: asn1fuzz.LengthIndefinite}
	p := sequenceOf(indef, asn1fuzz.Nested(sequenceOf(indef, asn1fuzz.Nested(integerOne()))))
	got := EncodePDU(p)
	want := []byte{0x30, 0x80, 0x30, 0x80, 0x02, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00}
	if !slices.Equal(got, want) {
		t.Errorf("EncodePDU = %# x, want %# x", got, want)
	}
}

// nest builds a chain of n PDUs, each holding the next as its only value
// element.
func nest(n int) *asn1fuzz.PDU {
	p := &asn1fuzz.PDU{ID: asn1fuzz.Identifier{TagNum: 4}}
	for range n - 1 {
		p = sequenceOf(asn1fuzz.Length{}, asn1fuzz.Nested(p))
	}
	return p
}

func TestRecursionLimit(t *testing.T) {
	if got := EncodePDU(nest(recursionLimit + 1)); len(got) == 0 {
		t.Errorf("EncodePDU(depth %d) is empty, want an encoding", recursionLimit+1)
	}
	if got := EncodePDU(nest(recursionLimit + 2)); got != nil {
		t.Errorf("EncodePDU(depth %d) = %d bytes, want empty", recursionLimit+2, len(got))
	}
}

// An Encoder that tripped the limit must be fully usable afterwards.
func TestEncoderReuse(t *testing.T) {
	var e Encoder
	if got := e.Encode(nest(recursionLimit + 2)); got != nil {
		t.Fatalf("Encode(over-deep) = %# x, want empty", got)
	}
	got := slices.Clone(e.Encode(integerOne()))
	if want := []byte{0x02, 0x01, 0x01}; !slices.Equal(got, want) {
		t.Errorf("Encode after overflow = %# x, want %# x", got, want)
	}
}

func TestEncodeElementOrder(t *testing.T) {
	p := sequenceOf(asn1fuzz.Length{},
		asn1fuzz.Raw([]byte{0x03}),
		asn1fuzz.Raw([]byte{0x01}),
		asn1fuzz.Raw([]byte{0x02}),
	)
	got := EncodePDU(p)
	want := []byte{0x30, 0x03, 0x03, 0x01, 0x02}
	if !slices.Equal(got, want) {
		t.Errorf("EncodePDU = %# x, want %# x (input order preserved)", got, want)
	}
}
