package tldr_test

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/fwojciec/tldr"
	"github.com/fwojciec/tldr/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldsTokenizer() *mock.Tokenizer {
	return &mock.Tokenizer{TokenizeFn: strings.Fields}
}

func TestNewCorpus(t *testing.T) {
	t.Parallel()

	docs := []tldr.Document{
		{Path: "pages/common/b.md", Text: "tar gzip tar"},
		{Path: "pages/common/a.md", Text: "tar zip"},
		{Path: "pages/linux/c.md", Text: "apt"},
		{Path: "pages/linux/d.md", Text: ""},
	}

	c := tldr.NewCorpus(docs, fieldsTokenizer())

	t.Run("counts tokens per document", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, map[string]int{"tar": 2, "gzip": 1}, c.FileWords["pages/common/b.md"])
		assert.Empty(t, c.FileWords["pages/linux/d.md"])
		assert.Equal(t, 4, c.DocumentCount())
	})

	t.Run("sorts the inverted index and vocabulary", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"pages/common/a.md", "pages/common/b.md"}, c.InvertedIndex["tar"])
		assert.Equal(t, []string{"apt", "gzip", "tar", "zip"}, c.AllTokens)
	})

	t.Run("computes idf from document frequency", func(t *testing.T) {
		t.Parallel()
		assert.InDelta(t, math.Log(4.0/2.0), c.IDF("tar"), 1e-9)
		assert.InDelta(t, math.Log(4.0), c.IDF("apt"), 1e-9)
		assert.Zero(t, c.IDF("missing"))
	})

	t.Run("weights terms by frequency over length", func(t *testing.T) {
		t.Parallel()
		tar := 2.0 / 3.0 * math.Log(2)
		gzip := 1.0 / 3.0 * math.Log(4)
		assert.InDelta(t, tar, c.TfIdf["pages/common/b.md"]["tar"], 1e-9)
		assert.InDelta(t, gzip, c.TfIdf["pages/common/b.md"]["gzip"], 1e-9)
		assert.InDelta(t, math.Sqrt(tar*tar+gzip*gzip), c.FileLengths["pages/common/b.md"], 1e-9)
		assert.Zero(t, c.FileLengths["pages/linux/d.md"])
	})
}

func TestCorpus_JSON(t *testing.T) {
	t.Parallel()

	c := tldr.NewCorpus([]tldr.Document{{Path: "pages/common/a.md", Text: "tar"}}, fieldsTokenizer())

	b, err := json.Marshal(c)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"fileWords": {"pages/common/a.md": {"tar": 1}},
		"fileLengths": {"pages/common/a.md": 0},
		"invertedIndex": {"tar": ["pages/common/a.md"]},
		"allTokens": ["tar"],
		"tfidf": {"pages/common/a.md": {"tar": 0}}
	}`, string(b))
}

func TestCorpus_Rank(t *testing.T) {
	t.Parallel()

	docs := []tldr.Document{
		{Path: "pages/common/heavy.md", Text: "tar tar tar gzip"},
		{Path: "pages/common/light.md", Text: "tar gzip gzip gzip"},
		{Path: "pages/common/other.md", Text: "zip unzip"},
		{Path: "pages/linux/apt.md", Text: "apt install"},
	}
	c := tldr.NewCorpus(docs, fieldsTokenizer())

	t.Run("scores more frequent terms higher", func(t *testing.T) {
		t.Parallel()

		results := c.Rank([]string{"tar"}, tldr.SearchLimit)

		require.Len(t, results, 2)
		assert.Equal(t, "pages/common/heavy.md", results[0].File)
		assert.Equal(t, "heavy", results[0].Page)
		assert.Greater(t, results[0].Score, results[1].Score)
	})

	t.Run("returns only documents containing a query token", func(t *testing.T) {
		t.Parallel()

		results := c.Rank([]string{"apt", "missing"}, tldr.SearchLimit)

		require.Len(t, results, 1)
		assert.Equal(t, "pages/linux/apt.md", results[0].File)
	})

	t.Run("returns nothing for an empty query", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, c.Rank(nil, tldr.SearchLimit))
	})

	t.Run("repeated query tokens boost the weight", func(t *testing.T) {
		t.Parallel()

		once := c.Rank([]string{"zip"}, tldr.SearchLimit)
		twice := c.Rank([]string{"zip", "zip"}, tldr.SearchLimit)

		require.Len(t, once, 1)
		require.Len(t, twice, 1)
		assert.InDelta(t, once[0].Score*(1+math.Log10(2)), twice[0].Score, 1e-9)
	})

	t.Run("breaks ties by file path", func(t *testing.T) {
		t.Parallel()

		tie := tldr.NewCorpus([]tldr.Document{
			{Path: "pages/common/b.md", Text: "x"},
			{Path: "pages/common/a.md", Text: "x"},
			{Path: "pages/common/c.md", Text: "y"},
		}, fieldsTokenizer())

		results := tie.Rank([]string{"x"}, tldr.SearchLimit)

		require.Len(t, results, 2)
		assert.Equal(t, "pages/common/a.md", results[0].File)
		assert.Equal(t, "pages/common/b.md", results[1].File)
	})

	t.Run("truncates to the limit", func(t *testing.T) {
		t.Parallel()

		var many []tldr.Document
		for _, name := range strings.Fields("a b c d e f g h i j k l") {
			many = append(many, tldr.Document{Path: "pages/common/" + name + ".md", Text: "common " + name})
		}
		many = append(many, tldr.Document{Path: "pages/common/z.md", Text: "z"})
		big := tldr.NewCorpus(many, fieldsTokenizer())

		results := big.Rank([]string{"common"}, tldr.SearchLimit)

		assert.Len(t, results, tldr.SearchLimit)
	})

	t.Run("scores zero when a document norm is zero", func(t *testing.T) {
		t.Parallel()

		all := tldr.NewCorpus([]tldr.Document{{Path: "pages/common/a.md", Text: "tar"}}, fieldsTokenizer())

		results := all.Rank([]string{"tar"}, tldr.SearchLimit)

		require.Len(t, results, 1)
		assert.Zero(t, results[0].Score)
	})
}
