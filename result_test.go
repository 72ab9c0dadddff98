package argset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func parsedWithOptions(t *testing.T, argv ...string) *ParsedArgs {
	t.Helper()
	p := New("prog")
	p.AddOption("port")
	p.AddOption("rate")
	p.AddOption("timeout")
	p.AddOption("mode")
	result, err := p.Parse(append([]string{"prog"}, argv...))
	require.NoError(t, err)
	return result
}

func TestValue_Int(t *testing.T) {
	args := parsedWithOptions(t, "--port", "8080")

	port, ok, err := Value[int](args, "port")
	require.True(t, ok)
	require.NoError(t, err)
	require.Equal(t, 8080, port)
}

func TestValue_ParseFailure(t *testing.T) {
	args := parsedWithOptions(t, "--rate", "hello")

	_, ok, err := Value[float64](args, "rate")
	require.True(t, ok, "the key was present even though parsing failed")
	require.Error(t, err)
	require.Contains(t, err.Error(), "rate")
}

func TestValue_MissingKey(t *testing.T) {
	args := parsedWithOptions(t)

	port, ok, err := Value[int](args, "port")
	require.False(t, ok)
	require.NoError(t, err)
	require.Zero(t, port)
}

func TestValue_String(t *testing.T) {
	args := parsedWithOptions(t, "--mode", "fast")

	mode, ok, err := Value[string](args, "mode")
	require.True(t, ok)
	require.NoError(t, err)
	require.Equal(t, "fast", mode)
}

func TestValue_Duration(t *testing.T) {
	args := parsedWithOptions(t, "--timeout", "1m30s")

	d, ok, err := Value[time.Duration](args, "timeout")
	require.True(t, ok)
	require.NoError(t, err)
	require.Equal(t, 90*time.Second, d)
}

func TestValue_Bool(t *testing.T) {
	args := parsedWithOptions(t, "--mode", "true")

	b, ok, err := Value[bool](args, "mode")
	require.True(t, ok)
	require.NoError(t, err)
	require.True(t, b)
}

func TestValue_TextUnmarshaler(t *testing.T) {
	args := parsedWithOptions(t, "--timeout", "2024-01-15T00:00:00Z")

	ts, ok, err := Value[time.Time](args, "timeout")
	require.True(t, ok)
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), ts)
}

func TestParsedArgs_FlagNamesSorted(t *testing.T) {
	p := New("prog")
	p.AddFlag("zeta").Short('z')
	p.AddFlag("alpha").Short('a')

	result, err := p.Parse([]string{"prog", "-za"})
	require.NoError(t, err)
	require.Equal(t, []string{"alpha", "zeta"}, result.FlagNames())
}

func TestParsedArgs_OptionAbsent(t *testing.T) {
	args := parsedWithOptions(t)

	_, ok := args.Option("port")
	require.False(t, ok)
}
