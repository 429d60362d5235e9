package asn1fuzz

import (
	"slices"
	"testing"
)

func TestClassString(t *testing.T) {
	tests := map[Class]string{
		ClassUniversal:       "Universal",
		ClassApplication:     "Application",
		ClassContextSpecific: "ContextSpecific",
		ClassPrivate:         "Private",
		Class(7):             "Class(7)",
	}
	for c, want := range tests {
		if got := c.String(); got != want {
			t.Errorf("Class(%d).String() = %q, want %q", uint8(c), got, want)
		}
	}
}

func TestEncodingString(t *testing.T) {
	if got := EncodingPrimitive.String(); got != "Primitive" {
		t.Errorf("EncodingPrimitive.String() = %q", got)
	}
	if got := EncodingConstructed.String(); got != "Constructed" {
		t.Errorf("EncodingConstructed.String() = %q", got)
	}
}

func TestObjectIdentifierArcs(t *testing.T) {
	tests := map[string]struct {
		oid  ObjectIdentifier
		want []uint64
	}{
		"Zero":         {ObjectIdentifier{}, []uint64{0}},
		"RootOne":      {ObjectIdentifier{Root: 1, SmallIdentifier: 3, Subarcs: []uint32{6, 1}}, []uint64{43, 6, 1}},
		"Clamped":      {ObjectIdentifier{Root: 0, SmallIdentifier: 99}, []uint64{39}},
		"RootTwo":      {ObjectIdentifier{Root: 2, Subarcs: []uint32{5, 29, 35}}, []uint64{85, 29, 35}},
		"RootTwoLarge": {ObjectIdentifier{Root: 2, Subarcs: []uint32{999}}, []uint64{1079}},
		"Degenerate":   {ObjectIdentifier{Root: 2}, nil},
		"RootClamped":  {ObjectIdentifier{Root: 200, Subarcs: []uint32{1}}, []uint64{81}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tc.oid.Arcs(); !slices.Equal(got, tc.want) {
				t.Errorf("Arcs() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestObjectIdentifierString(t *testing.T) {
	tests := map[string]struct {
		oid  ObjectIdentifier
		want string
	}{
		"IdCE":       {ObjectIdentifier{Root: 2, Subarcs: []uint32{5, 29, 35}}, "2.5.29.35"},
		"IdKp":       {ObjectIdentifier{Root: 1, SmallIdentifier: 3, Subarcs: []uint32{6, 1, 5, 5, 7, 3, 1}}, "1.3.6.1.5.5.7.3.1"},
		"LargeArc":   {ObjectIdentifier{Root: 2, Subarcs: []uint32{999}}, "2.999"},
		"Degenerate": {ObjectIdentifier{Root: 2}, "2"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tc.oid.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}
