package types_test

import (
	"testing"

	"github.com/geunaseh/jeumala/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestFieldKind_IsValid(t *testing.T) {
	for _, kind := range types.AllFieldKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			gt.Bool(t, kind.IsValid()).True()
		})
	}

	tests := []struct {
		name string
		kind types.FieldKind
	}{
		{name: "empty", kind: ""},
		{name: "unknown", kind: "multi-select"},
		{name: "uppercase", kind: "TEXT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Bool(t, tt.kind.IsValid()).False()
		})
	}
}

func TestFieldKind_Normalize(t *testing.T) {
	gt.Value(t, types.FieldKind("").Normalize()).Equal(types.FieldKindText)
	gt.Value(t, types.FieldKindTags.Normalize()).Equal(types.FieldKindTags)
}
