// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/pdiddy/pubmed-rag/pkg/types"
)

const efetchTwoSections = `<?xml version="1.0" ?>
<!DOCTYPE PubmedArticleSet PUBLIC "-//NLM//DTD PubMedArticle, 1st January 2024//EN" "https://dtd.nlm.nih.gov/ncbi/pubmed/out/pubmed_240101.dtd">
<PubmedArticleSet>
  <PubmedArticle>
    <MedlineCitation Status="MEDLINE" Owner="NLM">
      <PMID Version="1">37000001</PMID>
      <Article PubModel="Print">
        <Journal>
          <JournalIssue CitedMedium="Internet">
            <PubDate><Year>2023</Year><Month>Mar</Month></PubDate>
          </JournalIssue>
          <Title>Biomaterials</Title>
        </Journal>
        <ArticleTitle>Porous <i>β</i>-TCP scaffolds &amp; bone ingrowth.</ArticleTitle>
        <Abstract>
          <AbstractText Label="BACKGROUND">Scaffolds   support regeneration.</AbstractText>
          <AbstractText Label="RESULTS">Porosity of 60% improved ingrowth (p&lt;0.05).</AbstractText>
        </Abstract>
        <AuthorList CompleteYN="Y">
          <Author ValidYN="Y"><LastName>Smith</LastName><ForeName>Jane A</ForeName><Initials>JA</Initials></Author>
          <Author ValidYN="Y"><CollectiveName>Bone Study Group</CollectiveName></Author>
        </AuthorList>
        <ELocationID EIdType="doi" ValidYN="Y">10.1000/elocation</ELocationID>
      </Article>
    </MedlineCitation>
    <PubmedData>
      <ArticleIdList>
        <ArticleId IdType="pubmed">37000001</ArticleId>
        <ArticleId IdType="doi">10.1000/bio.2023.1</ArticleId>
      </ArticleIdList>
    </PubmedData>
  </PubmedArticle>
</PubmedArticleSet>`

const efetchNoAbstract = `<PubmedArticleSet>
  <PubmedArticle>
    <MedlineCitation>
      <PMID Version="1">37000002</PMID>
      <Article>
        <Journal><JournalIssue><PubDate><MedlineDate>2024 Jan-Feb</MedlineDate></PubDate></JournalIssue><Title>Lancet</Title></Journal>
        <ArticleTitle>Editorial comment.</ArticleTitle>
      </Article>
    </MedlineCitation>
  </PubmedArticle>
</PubmedArticleSet>`

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	old := eutilsBase
	eutilsBase = ts.URL
	t.Cleanup(func() { eutilsBase = old })

	c := NewClient(ts.Client(), types.PubMedConfig{
		HTTPConfig: types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "test/0.1"},
		Tool:       "pubmed-rag",
		Email:      "dev@example.com",
	})
	c.Limiter = rate.NewLimiter(rate.Inf, 1)
	return c
}

// --- esearch ---

func TestPMIDsForQuery(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"header":{"type":"esearch"},"esearchresult":{"count":"42","retmax":"3","idlist":["111","222","333"]}}`))
	})

	ids, err := c.PMIDsForQuery(context.Background(), "bone scaffolds AND 2023:3000[dp]", 10)
	require.NoError(t, err)

	assert.Equal(t, []string{"111", "222", "333"}, ids)
	assert.Equal(t, "/esearch.fcgi", gotPath)
	assert.Equal(t, "pubmed", gotQuery["db"][0])
	assert.Equal(t, "bone scaffolds AND 2023:3000[dp]", gotQuery["term"][0])
	assert.Equal(t, "10", gotQuery["retmax"][0])
	assert.Equal(t, "json", gotQuery["retmode"][0])
	assert.Equal(t, "pubmed-rag", gotQuery["tool"][0])
	assert.Equal(t, "dev@example.com", gotQuery["email"][0])
	assert.NotContains(t, gotQuery, "api_key")
}

func TestPMIDsForQueryCapsResults(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"esearchresult":{"idlist":["1","2","3","4"]}}`))
	})

	ids, err := c.PMIDsForQuery(context.Background(), "x", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ids)
}

func TestPMIDsForQueryEmpty(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"esearchresult":{"count":"0","retmax":"0","idlist":[]}}`))
	})

	ids, err := c.PMIDsForQuery(context.Background(), "xyz123nonexistentterm AND 2025:3000[dp]", 10)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestPMIDsForQueryErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"http error", http.StatusInternalServerError, "boom", "HTTP 500"},
		{"bad json", http.StatusOK, "{not json", "parsing PubMed esearch response"},
		{"api error field", http.StatusOK, `{"esearchresult":{"ERROR":"Invalid query"}}`, "Invalid query"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			_, err := c.PMIDsForQuery(context.Background(), "x", 10)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestNewClientRate(t *testing.T) {
	anon := NewClient(nil, types.PubMedConfig{})
	keyed := NewClient(nil, types.PubMedConfig{APIKey: "k"})

	assert.Equal(t, rate.Limit(anonymousRate), anon.Limiter.Limit())
	assert.Equal(t, rate.Limit(keyedRate), keyed.Limiter.Limit())
}

func TestAPIKeySent(t *testing.T) {
	var gotKey string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("api_key")
		w.Write([]byte(`{"esearchresult":{"idlist":[]}}`))
	})
	c.Cfg.APIKey = "ncbi-secret"

	_, err := c.PMIDsForQuery(context.Background(), "x", 10)
	require.NoError(t, err)
	assert.Equal(t, "ncbi-secret", gotKey)
}

// --- efetch ---

func TestArticleByPMID(t *testing.T) {
	var gotID string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotID = r.URL.Query().Get("id")
		assert.Equal(t, "/efetch.fcgi", r.URL.Path)
		assert.Equal(t, "xml", r.URL.Query().Get("retmode"))
		w.Write([]byte(efetchTwoSections))
	})

	a, err := c.ArticleByPMID(context.Background(), "37000001")
	require.NoError(t, err)

	assert.Equal(t, "37000001", gotID)
	assert.Equal(t, "37000001", a.PMID)
	assert.Equal(t, "Porous β-TCP scaffolds & bone ingrowth.", a.Title)
	assert.Equal(t, "BACKGROUND: Scaffolds support regeneration. RESULTS: Porosity of 60% improved ingrowth (p<0.05).", a.Abstract)
	assert.Equal(t, "Biomaterials", a.Journal)
	assert.Equal(t, 2023, a.Year)
	assert.Equal(t, "10.1000/bio.2023.1", a.DOI)
	assert.Equal(t, []string{"Smith JA", "Bone Study Group"}, a.AuthorNames())
	assert.Equal(t, "https://pubmed.ncbi.nlm.nih.gov/37000001/", a.URL())
}

func TestArticleByPMIDWithoutAbstract(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(efetchNoAbstract))
	})

	a, err := c.ArticleByPMID(context.Background(), "37000002")
	require.NoError(t, err)

	assert.False(t, a.HasAbstract())
	assert.Equal(t, 2024, a.Year)
	assert.Equal(t, "Editorial comment.", a.Title)
}

func TestArticleByPMIDBook(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<PubmedArticleSet><PubmedBookArticle><BookDocument>
			<PMID Version="1">20301295</PMID>
			<Book><BookTitle>GeneReviews</BookTitle><PubDate><Year>1993</Year></PubDate></Book>
			<Abstract><AbstractText>Clinical characteristics.</AbstractText></Abstract>
		</BookDocument></PubmedBookArticle></PubmedArticleSet>`))
	})

	a, err := c.ArticleByPMID(context.Background(), "20301295")
	require.NoError(t, err)

	assert.Equal(t, "GeneReviews", a.Title)
	assert.Equal(t, "Clinical characteristics.", a.Abstract)
	assert.Equal(t, 1993, a.Year)
}

func TestArticleByPMIDErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"http error", http.StatusTooManyRequests, "slow down", "HTTP 429"},
		{"malformed xml", http.StatusOK, "<PubmedArticleSet><PubmedArticle>", "parsing PubMed record"},
		{"empty set", http.StatusOK, "<PubmedArticleSet></PubmedArticleSet>", "no record for PMID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			_, err := c.ArticleByPMID(context.Background(), "1")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestArticleByPMIDPicksMatchingRecord(t *testing.T) {
	body := strings.Replace(efetchTwoSections, "</PubmedArticleSet>", `<PubmedArticle><MedlineCitation><PMID>999</PMID><Article><ArticleTitle>Other</ArticleTitle></Article></MedlineCitation></PubmedArticle></PubmedArticleSet>`, 1)
	c := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(body))
	})

	a, err := c.ArticleByPMID(context.Background(), "999")
	require.NoError(t, err)
	assert.Equal(t, "Other", a.Title)
}

// --- markup ---

func TestFlattenMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Hello world", "Hello world"},
		{"inline tags", "H<sub>2</sub>O and <i>E. coli</i>", "H2O and E. coli"},
		{"entities", "a &lt; b &amp;&amp; c &gt; d", "a < b && c > d"},
		{"whitespace", "  line one\n\t line two  ", "line one line two"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, flattenMarkup(tt.in))
		})
	}
}

func TestPubDateYear(t *testing.T) {
	tests := []struct {
		name string
		d    pubDate
		want int
	}{
		{"year", pubDate{Year: "2021"}, 2021},
		{"medline date", pubDate{MedlineDate: "2019 Winter"}, 2019},
		{"empty", pubDate{}, 0},
		{"garbage", pubDate{MedlineDate: "Spring"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.year())
		})
	}
}
