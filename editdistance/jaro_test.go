package editdistance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJaro(t *testing.T) {
	testcases := []struct {
		a, b     string
		jaro     float64
		winkler  float64
		matches  int
		halfTran float64
	}{
		{"bededqowd", "beeddqpdw", 0.8425925925925926, 0.874074074074074, 8, 2},
		{"martha", "marhta", 0.9444444444444445, 0.9611111111111111, 6, 1},
		{"dixon", "dicksonx", 0.7666666666666666, 0.8133333333333332, 4, 0},
		{"kitten", "sitting", 0.746031746031746, 0.746031746031746, 4, 0},
		{"ca", "abc", 0, 0, 0, 0},
	}
	for _, tc := range testcases {
		a, b := units(tc.a), units(tc.b)
		m := match(a, b)
		require.Equalf(t, tc.matches, m.matches, "matches(%q, %q)", tc.a, tc.b)
		require.Equalf(t, tc.halfTran, m.transpositions, "transpositions(%q, %q)", tc.a, tc.b)

		require.InDeltaf(t, tc.jaro, Jaro(a, b), 1e-9, "jaro(%q, %q)", tc.a, tc.b)
		require.InDeltaf(t, tc.jaro, Jaro(b, a), 1e-9, "jaro(%q, %q)", tc.b, tc.a)

		jw, err := JaroWinkler(a, b, DefaultWinklerScale)
		require.Nil(t, err)
		require.InDeltaf(t, tc.winkler, jw, 1e-9, "jaro-winkler(%q, %q)", tc.a, tc.b)
	}

	// rounded values
	a, b := units("bededqowd"), units("beeddqpdw")
	require.Equal(t, 0.84, math.Round(Jaro(a, b)*100)/100)
	jw, _ := JaroWinkler(a, b, 0.1)
	require.Equal(t, 0.87, math.Round(jw*100)/100)
}

func TestJaroTranspositions(t *testing.T) {
	// every matched unit sits in the wrong slot, four mismatches make two transpositions
	m := match(units("abcd"), units("badc"))
	require.Equal(t, 4, m.matches)
	require.Equal(t, 2.0, m.transpositions)
	require.InDelta(t, 0.8333333333333334, Jaro(units("abcd"), units("badc")), 1e-12)

	// window is 1 for five units, 'c' and 't' are out of reach
	m = match(units("crate"), units("trace"))
	require.Equal(t, 3, m.matches)
	require.Equal(t, 0.0, m.transpositions)
}

func TestJaroWinklerScale(t *testing.T) {
	a, b := units("prefixed"), units("prefixes")
	for _, p := range []float64{0, -0.1, 0.25, 0.3, math.NaN()} {
		_, err := JaroWinkler(a, b, p)
		require.ErrorIsf(t, err, ErrInvalidParameterRange, "p=%v", p)
	}

	// validated even when the inputs are empty
	_, err := JaroWinkler(nil, nil, 1)
	require.ErrorIs(t, err, ErrInvalidParameterRange)

	// five shared leading units, only four earn a bonus
	jw, err := JaroWinkler(a, b, 0.24)
	require.Nil(t, err)
	jaro := Jaro(a, b)
	require.InDelta(t, jaro+4*0.24*(1-jaro), jw, 1e-12)
	require.LessOrEqual(t, jw, 1.0)

	jw, err = JaroWinkler(nil, nil, 0.1)
	require.Nil(t, err)
	require.Equal(t, 1.0, jw)

	jw, err = JaroWinkler(a, nil, 0.1)
	require.Nil(t, err)
	require.Equal(t, 0.0, jw)
}

func TestCommonPrefix(t *testing.T) {
	require.Equal(t, 0, CommonPrefix(units("abc"), units("xbc"), 4))
	require.Equal(t, 2, CommonPrefix(units("abc"), units("abx"), 4))
	require.Equal(t, 3, CommonPrefix(units("abc"), units("abc"), 4))
	require.Equal(t, 4, CommonPrefix(units("abcdef"), units("abcdef"), 4))
	require.Equal(t, 0, CommonPrefix(nil, units("abc"), 4))
}

func TestJaroIdentity(t *testing.T) {
	for _, s := range []string{"a", "ab", "bededqowd", "the quick brown fox"} {
		require.Equal(t, 1.0, Jaro(units(s), units(s)))
		jw, err := JaroWinkler(units(s), units(s), DefaultWinklerScale)
		require.Nil(t, err)
		require.Equal(t, 1.0, jw)
	}
}
