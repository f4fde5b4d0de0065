// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/pdiddy/pubmed-rag/internal/httputil"
	"github.com/pdiddy/pubmed-rag/pkg/types"
)

// eutilsBase is the NCBI E-utilities root. Declared as a var so tests can
// substitute an httptest server.
var eutilsBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

// NCBI request ceilings per second, with and without an API key.
const (
	anonymousRate = 3
	keyedRate     = 10
)

// Client talks to the NCBI E-utilities for the pubmed database.
type Client struct {
	HTTP    *http.Client
	Cfg     types.PubMedConfig
	Limiter *rate.Limiter
}

// NewClient returns a Client whose requests are paced to the NCBI usage
// policy for cfg.
func NewClient(hc *http.Client, cfg types.PubMedConfig) *Client {
	limit := rate.Limit(anonymousRate)
	if cfg.APIKey != "" {
		limit = rate.Limit(keyedRate)
	}
	return &Client{
		HTTP:    hc,
		Cfg:     cfg,
		Limiter: rate.NewLimiter(limit, 1),
	}
}

// PMIDsForQuery runs an esearch for term and returns at most retmax PMIDs
// in relevance order.
func (c *Client) PMIDsForQuery(ctx context.Context, term string, retmax int) ([]string, error) {
	params := c.baseParams()
	params.Set("term", term)
	params.Set("retmax", strconv.Itoa(retmax))
	params.Set("retmode", "json")

	body, err := c.get(ctx, "esearch.fcgi", params)
	if err != nil {
		return nil, fmt.Errorf("PubMed esearch request: %w", err)
	}

	var res esearchResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("parsing PubMed esearch response: %w", err)
	}
	if res.Result.Error != "" {
		return nil, fmt.Errorf("PubMed esearch: %s", res.Result.Error)
	}

	ids := res.Result.IDList
	if retmax > 0 && len(ids) > retmax {
		ids = ids[:retmax]
	}
	return ids, nil
}

// ArticleByPMID fetches and parses the record for one PMID. A record
// without an abstract is returned with an empty Abstract, not an error.
func (c *Client) ArticleByPMID(ctx context.Context, pmid string) (types.Article, error) {
	params := c.baseParams()
	params.Set("id", pmid)
	params.Set("retmode", "xml")

	body, err := c.get(ctx, "efetch.fcgi", params)
	if err != nil {
		return types.Article{}, fmt.Errorf("PubMed efetch %s: %w", pmid, err)
	}

	var set articleSet
	if err := xml.Unmarshal(body, &set); err != nil {
		return types.Article{}, fmt.Errorf("parsing PubMed record %s: %w", pmid, err)
	}

	a, ok := set.article(pmid)
	if !ok {
		return types.Article{}, fmt.Errorf("PubMed returned no record for PMID %s", pmid)
	}
	return a, nil
}

func (c *Client) baseParams() url.Values {
	params := url.Values{"db": {"pubmed"}}
	if c.Cfg.APIKey != "" {
		params.Set("api_key", c.Cfg.APIKey)
	}
	if c.Cfg.Tool != "" {
		params.Set("tool", c.Cfg.Tool)
	}
	if c.Cfg.Email != "" {
		params.Set("email", c.Cfg.Email)
	}
	return params
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	reqURL := eutilsBase + "/" + endpoint + "?" + params.Encode()
	return httputil.GetBody(ctx, c.HTTP, reqURL, c.Cfg.UserAgent)
}

// esearchResponse is the JSON envelope returned by esearch.fcgi.
type esearchResponse struct {
	Result struct {
		Count  string   `json:"count"`
		IDList []string `json:"idlist"`
		Error  string   `json:"ERROR"`
	} `json:"esearchresult"`
}
