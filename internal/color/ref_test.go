package color

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRefValidatesInput(t *testing.T) {
	ref, err := NewRef("primary", Step500)
	require.NoError(t, err)
	require.Equal(t, "primary", ref.Name())
	require.Equal(t, Step500, ref.Step())

	_, err = NewRef("", Step500)
	require.Error(t, err)
	var invalid *ErrInvalidRef
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "invalid_color_ref", invalid.Code())

	_, err = NewRef("primary", Step(123))
	require.Error(t, err)
	require.ErrorAs(t, err, &invalid)
}

func TestNewRefRejectsNonKebabNames(t *testing.T) {
	cases := []string{
		"brand.alt",
		"Brand",
		"brand_alt",
		"-brand",
		"brand-",
		"brand--alt",
		"1brand",
	}
	for _, name := range cases {
		_, err := NewRef(name, Step500)
		require.Error(t, err, "expected %q to be rejected", name)
		var invalid *ErrInvalidRef
		require.ErrorAs(t, err, &invalid)
	}

	ref, err := NewRef("brand-alt", Step500)
	require.NoError(t, err)

	parsed, ok := ParseRef(ref.String())
	require.True(t, ok)
	require.Equal(t, ref, parsed)
}

func TestRefStringAndParseAreInverses(t *testing.T) {
	for _, step := range Steps {
		ref, err := NewRef("neutral", step)
		require.NoError(t, err)

		parsed, ok := ParseRef(ref.String())
		require.True(t, ok, "round trip failed for %s", ref)
		require.Equal(t, ref, parsed)
	}
}

func TestParseRefRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"name500",
		"name.123",
		".500",
		"name.",
		"name.500.extra",
		"name.50x",
		"name.050",
		"name.+50",
		"name. 500",
		"Name.500",
	}
	for _, input := range cases {
		_, ok := ParseRef(input)
		require.False(t, ok, "expected %q to fail", input)
	}
}

func TestParseStepAcceptsOnlyCanonicalSpellings(t *testing.T) {
	for _, want := range Steps {
		got, ok := ParseStep(want.String())
		require.True(t, ok)
		require.Equal(t, want, got)
	}

	for _, input := range []string{"050", "+50", " 50", "5_0", "0x32"} {
		_, ok := ParseStep(input)
		require.False(t, ok, "expected %q to fail", input)
	}
}

func TestMustRefPanicsOnInvalidStep(t *testing.T) {
	require.Panics(t, func() {
		MustRef("primary", Step(42))
	})
}
