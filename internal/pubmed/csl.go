package pubmed

import (
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubmed-rag/pkg/types"
)

// CSLItem is a bibliographic entry in CSL (Citation Style Language) form.
// Field names follow the CSL-YAML schema so the output loads into Pandoc
// and reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title"`
	Author         []CSLName `yaml:"author,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Abstract       string    `yaml:"abstract,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	DOI            string    `yaml:"DOI,omitempty"`
	PMID           string    `yaml:"PMID,omitempty"`
	URL            string    `yaml:"URL,omitempty"`
}

// CSLName is a person or group name in CSL form.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate is a date in CSL date-parts form.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// FormatCSL writes records as a CSL-YAML list to w.
func FormatCSL(records []types.Article, w io.Writer) error {
	items := make([]CSLItem, len(records))
	for i, r := range records {
		items[i] = toCSLItem(r)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

func toCSLItem(a types.Article) CSLItem {
	item := CSLItem{
		ID:             "pmid" + a.PMID,
		Type:           "article-journal",
		Title:          a.Title,
		ContainerTitle: a.Journal,
		Abstract:       a.Abstract,
		DOI:            a.DOI,
		PMID:           a.PMID,
		URL:            a.URL(),
	}
	for _, au := range a.Authors {
		item.Author = append(item.Author, toCSLName(au))
	}
	if a.Year > 0 {
		item.Issued = &CSLDate{DateParts: [][]int{{a.Year}}}
	}
	return item
}

// toCSLName maps a PubMed author: group authors use the literal field,
// initials stand in for the given name.
func toCSLName(a types.Author) CSLName {
	if a.CollectiveName != "" {
		return CSLName{Literal: a.CollectiveName}
	}
	return CSLName{Family: a.LastName, Given: a.Initials}
}
