package fstio_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliotfiske/cmu-lextool-sub001/core"
	"github.com/elliotfiske/cmu-lextool-sub001/fstio"
	"github.com/elliotfiske/cmu-lextool-sub001/semiring"
)

func readSymbols(t testing.TB, path string) *core.SymbolTable {
	t.Helper()
	fh, err := os.Open(path)
	require.NoError(t, err)
	defer fh.Close()
	st, err := fstio.ReadSymbols(fh)
	require.NoError(t, err)

	return st
}

func TestReadText_Fixture(t *testing.T) {
	fh, err := os.Open("testdata/sample.txt")
	require.NoError(t, err)
	defer fh.Close()

	got, err := fstio.ReadText(fh, semiring.Tropical,
		fstio.WithInputSymbols(readSymbols(t, "testdata/sample.isyms")),
		fstio.WithOutputSymbols(readSymbols(t, "testdata/sample.osyms")),
	)
	require.NoError(t, err)
	assert.True(t, core.Equal(sample(t), got))
}

func TestWriteText_Fixture(t *testing.T) {
	want, err := os.ReadFile("testdata/sample.txt")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, fstio.WriteText(&buf, sample(t)))
	assert.Equal(t, string(want), buf.String())
}

func TestWriteText_Numeric(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, fstio.WriteText(&buf, sample(t), fstio.WithNumericLabels()))
	assert.True(t, strings.HasPrefix(buf.String(), "1\t2\t1\t2\t0.5\n"))
}

func TestText_RoundTripNumeric(t *testing.T) {
	f := sample(t)
	f.SetInputSymbols(nil)
	f.SetOutputSymbols(nil)

	var buf bytes.Buffer
	require.NoError(t, fstio.WriteText(&buf, f))
	got, err := fstio.ReadText(&buf, semiring.Tropical)
	require.NoError(t, err)
	assert.True(t, core.Equal(f, got))
}

func TestReadText_Errors(t *testing.T) {
	cases := map[string]string{
		"field count":    "0 1 2\n",
		"bad state":      "x 1 2 3\n",
		"negative state": "-1 1 2 3\n",
		"bad label":      "0 1 a 3\n",
		"bad weight":     "0 1 2 3 heavy\n",
		"bad final":      "0 -inf\n",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := fstio.ReadText(strings.NewReader(text), semiring.Tropical)
			assert.ErrorIs(t, err, fstio.ErrSyntax)
			assert.Nil(t, got)
		})
	}
}

func TestReadText_UnknownSymbol(t *testing.T) {
	syms := core.NewSymbolTable()
	syms.Add("a")
	_, err := fstio.ReadText(strings.NewReader("0 1 a b\n"), semiring.Tropical,
		fstio.WithInputSymbols(syms), fstio.WithOutputSymbols(syms))
	assert.ErrorIs(t, err, fstio.ErrSyntax)
}

func TestReadText_Empty(t *testing.T) {
	got, err := fstio.ReadText(strings.NewReader("\n\n"), semiring.Log)
	require.NoError(t, err)
	assert.Equal(t, 0, got.NumStates())
	assert.Equal(t, core.NoState, got.Start())
}

func TestSymbols_RoundTrip(t *testing.T) {
	st := readSymbols(t, "testdata/sample.isyms")
	assert.Equal(t, 4, st.Len())

	var buf bytes.Buffer
	require.NoError(t, fstio.WriteSymbols(&buf, st))
	want, err := os.ReadFile("testdata/sample.isyms")
	require.NoError(t, err)
	assert.Equal(t, string(want), buf.String())
}

func TestReadSymbols_Errors(t *testing.T) {
	for _, text := range []string{"a\n", "a 1 2\n", "a one\n", "<eps> 3\n", "a 1\nb 1\n"} {
		_, err := fstio.ReadSymbols(strings.NewReader(text))
		assert.ErrorIs(t, err, fstio.ErrSyntax, text)
	}
}
