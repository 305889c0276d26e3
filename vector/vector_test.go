package vector

import (
	"math"
	"strings"
	"testing"

	"github.com/projectdiscovery/textdist/preprocess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	notice1 = "For Paperwork Reduction Act Notice, see your tax return instructions. For Paperwork Reduction Act Notice, see your tax return instructions."
	notice2 = "For Disclosure, Privacy Act, and Paperwork Reduction Act Notice, see separate instructions. Form 1040"
)

func TestNewHistogram(t *testing.T) {
	tokens := strings.Fields("to be or not to be")
	h, err := NewHistogram(tokens, 2)
	require.Nil(t, err)
	require.Equal(t, Histogram{"to be": 2, "be or": 1, "or not": 1, "not to": 1}, h)
	require.Equal(t, len(tokens)-2+1, h.Total())
	require.Equal(t, []string{"be or", "not to", "or not", "to be"}, h.Keys())
	require.InDelta(t, math.Sqrt(7), h.Norm(), 1e-12)

	h, err = NewHistogram(tokens, len(tokens))
	require.Nil(t, err)
	require.Len(t, h, 1)

	_, err = NewHistogram(tokens, len(tokens)+1)
	require.ErrorIs(t, err, ErrInsufficientLength)

	_, err = NewHistogram(nil, 1)
	require.ErrorIs(t, err, ErrInsufficientLength)

	_, err = NewHistogram(tokens, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSetOperations(t *testing.T) {
	h1 := Histogram{"a": 1, "b": 2, "c": 1}
	h2 := Histogram{"b": 1, "c": 3, "d": 1}
	require.ElementsMatch(t, []string{"b", "c"}, Intersection(h1, h2))
	require.ElementsMatch(t, []string{"b", "c"}, Intersection(h2, h1))
	require.ElementsMatch(t, []string{"a", "b", "c", "d"}, Union(h1, h2))
	require.Empty(t, Intersection(h1, Histogram{"z": 1}))
}

func TestNoticeSentences(t *testing.T) {
	a := preprocess.Sentence(notice1, nil)
	b := preprocess.Sentence(notice2, nil)

	testcases := []struct {
		name     string
		fn       SimilarityFunc
		unigram  float64
		bigram   float64
		rounded2 float64
	}{
		{"cosine", Cosine, 0.6531972647421808, 0.3796631983009996, 0.38},
		{"jaccard", Jaccard, 0.4666666666666667, 0.2222222222222222, 0.22},
		{"sorensen-dice", SorensenDice, 0.6363636363636364, 0.36363636363636365, 0.36},
		{"qgram", QGram, 0.32, 0.14814814814814814, 0.15},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Compare(a, b, 1, tc.fn)
			require.Nil(t, err)
			require.InDelta(t, tc.unigram, got, 1e-9)

			got, err = Compare(a, b, 2, tc.fn)
			require.Nil(t, err)
			require.InDelta(t, tc.bigram, got, 1e-9)
			require.Equal(t, tc.rounded2, math.Round(got*100)/100)

			reversed, err := Compare(b, a, 2, tc.fn)
			require.Nil(t, err)
			require.InDelta(t, got, reversed, 1e-12)

			same, err := Compare(b, b, 2, tc.fn)
			require.Nil(t, err)
			require.Equal(t, 1.0, same)
		})
	}
}

func TestCharBigrams(t *testing.T) {
	a := strings.Split("night", "")
	b := strings.Split("nacht", "")

	got, err := Compare(a, b, 2, Cosine)
	require.Nil(t, err)
	require.InDelta(t, 0.25, got, 1e-12)

	got, err = Compare(a, b, 2, Jaccard)
	require.Nil(t, err)
	require.InDelta(t, 1.0/7, got, 1e-12)

	got, err = Compare(a, b, 2, SorensenDice)
	require.Nil(t, err)
	require.InDelta(t, 0.25, got, 1e-12)

	got, err = Compare(a, b, 2, QGram)
	require.Nil(t, err)
	require.InDelta(t, 1.0/7, got, 1e-12)

	_, err = Compare(a, []string{"x"}, 2, Cosine)
	require.ErrorIs(t, err, ErrInsufficientLength)
}

func TestRange(t *testing.T) {
	phrases := []string{"abc", "abcabc", "xyz", "aaaa", "the cat sat", "cat the sat"}
	for _, x := range phrases {
		for _, y := range phrases {
			a, b := strings.Split(x, ""), strings.Split(y, "")
			for _, fn := range []SimilarityFunc{Cosine, Jaccard, SorensenDice, QGram} {
				got, err := Compare(a, b, 1, fn)
				require.Nil(t, err)
				assert.GreaterOrEqual(t, got, 0.0)
				assert.LessOrEqual(t, got, 1.0)
			}
		}
	}
}
