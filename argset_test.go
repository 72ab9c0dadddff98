package argset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilder_ConfiguresOwnDefinition(t *testing.T) {
	p := New("prog")

	// Interleaved builder calls: each handle must keep mutating the
	// definition it was created for, not the most recently added one.
	verbose := p.AddFlag("verbose")
	output := p.AddOption("output")
	verbose.Short('v').Help("Enable verbose output")
	output.Short('o').Help("Where to write results").Required()

	require.Len(t, p.defs, 2)

	require.Equal(t, kindFlag, p.defs[0].kind)
	require.Equal(t, 'v', p.defs[0].short)
	require.Equal(t, "Enable verbose output", p.defs[0].help)
	require.False(t, p.defs[0].required)

	require.Equal(t, kindOption, p.defs[1].kind)
	require.Equal(t, 'o', p.defs[1].short)
	require.Equal(t, "Where to write results", p.defs[1].help)
	require.True(t, p.defs[1].required)
}

func TestBuilder_DefaultsAreEmpty(t *testing.T) {
	p := New("prog")
	p.AddPositional("input")

	require.Len(t, p.defs, 1)
	require.Equal(t, kindPositional, p.defs[0].kind)
	require.Equal(t, rune(0), p.defs[0].short)
	require.Empty(t, p.defs[0].help)
	require.False(t, p.defs[0].required)
}

func TestFindLong_SkipsPositionals(t *testing.T) {
	p := New("prog")
	p.AddPositional("input")
	p.AddFlag("verbose")

	// A prefixed token can never resolve to a positional definition.
	require.Nil(t, p.findLong("input"))
	require.NotNil(t, p.findLong("verbose"))
}

func TestFindShort_SkipsPositionals(t *testing.T) {
	p := New("prog")
	p.AddPositional("input")
	p.AddFlag("verbose").Short('v')

	require.Nil(t, p.findShort('i'))
	require.NotNil(t, p.findShort('v'))
}

func TestFindShort_IgnoresUnsetShortNames(t *testing.T) {
	p := New("prog")
	p.AddFlag("quiet")
	p.AddOption("output")

	require.Nil(t, p.findShort(0))
}

func TestBuilder_ShortZeroRuneIsIgnored(t *testing.T) {
	p := New("prog")
	p.AddFlag("quiet").Short(0)
	p.AddFlag("silent").Short(0)

	// Two zero runes are not a short-name collision; both definitions
	// simply remain without a short name.
	_, err := p.Parse([]string{"prog"})
	require.NoError(t, err)
	require.Equal(t, rune(0), p.defs[0].short)
	require.Equal(t, rune(0), p.defs[1].short)
}

func TestRegistration_FirstDuplicateWinsTheReport(t *testing.T) {
	p := New("prog")
	p.AddFlag("verbose")
	p.AddFlag("verbose")
	p.AddFlag("output")
	p.AddFlag("output")

	_, err := p.Parse([]string{"prog"})
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "verbose", perr.Name, "the first registration error is the one reported")
}

func TestRegistration_PositionalLongNamesAreStillUnique(t *testing.T) {
	p := New("prog")
	p.AddPositional("input")
	p.AddFlag("input")

	_, err := p.Parse([]string{"prog"})
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, KindDuplicateDefinition, perr.Kind)
}

func TestParser_ReusableAcrossParses(t *testing.T) {
	p := newTestParser()

	first, err := p.Parse([]string{"prog", "--verbose"})
	require.NoError(t, err)
	require.True(t, first.Has("verbose"))

	second, err := p.Parse([]string{"prog", "data.csv"})
	require.NoError(t, err)
	require.False(t, second.Has("verbose"), "results must not leak between parses")
	require.Equal(t, []string{"data.csv"}, second.Positional())
}
