package hcl

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/require"
	"github.com/vk/sumgridgo/internal/config"
	"github.com/zclconf/go-cty/cty"
)

type adderInput struct {
	Alpha int    `sggo:"alpha"`
	Bravo int    `sggo:"bravo"`
	Label string `sggo:"label"`
}

func adderDefs() map[string]*config.InputDefinition {
	one := cty.NumberIntVal(1)
	two := cty.NumberIntVal(2)
	return map[string]*config.InputDefinition{
		"alpha": {Name: "alpha", Type: cty.Number, Default: &one, Optional: true},
		"bravo": {Name: "bravo", Type: cty.Number, Default: &two, Optional: true},
		"label": {Name: "label", Type: cty.String},
	}
}

func TestConverter_DecodeBody_AppliesDefaultsAndArguments(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := map[string]hcl.Expression{
		"alpha": hcl.StaticExpr(cty.NumberIntVal(5), hcl.Range{}),
		"label": hcl.StaticExpr(cty.StringVal("demo"), hcl.Range{}),
	}
	var got adderInput

	// --- Act ---
	err := NewConverter().DecodeBody(context.Background(), &got, args, adderDefs(), nil)

	// --- Assert ---
	require.NoError(t, err)
	want := adderInput{Alpha: 5, Bravo: 2, Label: "demo"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decoded input mismatch (-want +got):\n%s", diff)
	}
}

func TestConverter_DecodeBody_MissingRequiredArgument(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var got adderInput

	// --- Act ---
	err := NewConverter().DecodeBody(context.Background(), &got, nil, adderDefs(), nil)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), `missing required argument "label"`)
}

func TestConverter_DecodeBody_ConvertsCompatibleTypes(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A string holding a number is convertible to the struct's int field.
	args := map[string]hcl.Expression{
		"alpha": hcl.StaticExpr(cty.StringVal("41"), hcl.Range{}),
		"label": hcl.StaticExpr(cty.StringVal("x"), hcl.Range{}),
	}
	var got adderInput

	// --- Act ---
	err := NewConverter().DecodeBody(context.Background(), &got, args, adderDefs(), nil)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, 41, got.Alpha)
}

func TestConverter_DecodeBody_RejectsIncompatibleValue(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := map[string]hcl.Expression{
		"alpha": hcl.StaticExpr(cty.StringVal("not-a-number"), hcl.Range{}),
		"label": hcl.StaticExpr(cty.StringVal("x"), hcl.Range{}),
	}
	var got adderInput

	// --- Act ---
	err := NewConverter().DecodeBody(context.Background(), &got, args, adderDefs(), nil)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to decode argument 'alpha'")
}

func TestConverter_DecodeBody_RequiresPointer(t *testing.T) {
	t.Parallel()

	// --- Act ---
	err := NewConverter().DecodeBody(context.Background(), adderInput{}, nil, adderDefs(), nil)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "must be a non-nil pointer")
}

func TestConverter_ToCtyValue_StructWithTags(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	type output struct {
		Sum int `cty:"sum"`
	}

	// --- Act ---
	val, err := NewConverter().ToCtyValue(&output{Sum: 7})

	// --- Assert ---
	require.NoError(t, err)
	require.True(t, val.Type().IsObjectType())
	require.True(t, val.GetAttr("sum").RawEquals(cty.NumberIntVal(7)))
}

func TestConverter_ToCtyValue_Nil(t *testing.T) {
	t.Parallel()

	// --- Act ---
	val, err := NewConverter().ToCtyValue(nil)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, cty.NilVal, val)
}
