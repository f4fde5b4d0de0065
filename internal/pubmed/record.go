// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"html"
	"strconv"
	"strings"

	"github.com/pdiddy/pubmed-rag/pkg/types"
)

// efetch XML structures (PubmedArticleSet DTD, trimmed to the fields used).
type articleSet struct {
	Articles []pubmedArticle `xml:"PubmedArticle"`
	Books    []bookArticle   `xml:"PubmedBookArticle"`
}

type pubmedArticle struct {
	Citation struct {
		PMID    string `xml:"PMID"`
		Article struct {
			Journal struct {
				Title string `xml:"Title"`
				Issue struct {
					PubDate pubDate `xml:"PubDate"`
				} `xml:"JournalIssue"`
			} `xml:"Journal"`
			Title       markup       `xml:"ArticleTitle"`
			Abstract    abstract     `xml:"Abstract"`
			Authors     []authorNode `xml:"AuthorList>Author"`
			ELocationID []idNode     `xml:"ELocationID"`
		} `xml:"Article"`
	} `xml:"MedlineCitation"`
	ArticleIDs []idNode `xml:"PubmedData>ArticleIdList>ArticleId"`
}

type bookArticle struct {
	Document struct {
		PMID      string       `xml:"PMID"`
		Title     markup       `xml:"ArticleTitle"`
		BookTitle markup       `xml:"Book>BookTitle"`
		PubDate   pubDate      `xml:"Book>PubDate"`
		Abstract  abstract     `xml:"Abstract"`
		Authors   []authorNode `xml:"AuthorList>Author"`
	} `xml:"BookDocument"`
}

type pubDate struct {
	Year        string `xml:"Year"`
	MedlineDate string `xml:"MedlineDate"`
}

type abstract struct {
	Sections []abstractSection `xml:"AbstractText"`
}

type abstractSection struct {
	Label string `xml:"Label,attr"`
	Inner string `xml:",innerxml"`
}

type authorNode struct {
	LastName       string `xml:"LastName"`
	Initials       string `xml:"Initials"`
	CollectiveName string `xml:"CollectiveName"`
}

type idNode struct {
	Type  string `xml:"IdType,attr"`
	EType string `xml:"EIdType,attr"`
	Value string `xml:",chardata"`
}

// markup captures element content that may carry inline tags
// (<i>, <sup>, <b>) so the text inside them is kept.
type markup struct {
	Inner string `xml:",innerxml"`
}

func (m markup) String() string { return flattenMarkup(m.Inner) }

// article returns the record for pmid, preferring journal articles over
// book records. Sets holding a single record match regardless of PMID.
func (s articleSet) article(pmid string) (types.Article, bool) {
	single := len(s.Articles)+len(s.Books) == 1
	for _, pa := range s.Articles {
		if single || pa.Citation.PMID == pmid {
			return pa.toArticle(), true
		}
	}
	for _, ba := range s.Books {
		if single || ba.Document.PMID == pmid {
			return ba.toArticle(), true
		}
	}
	return types.Article{}, false
}

func (pa pubmedArticle) toArticle() types.Article {
	art := pa.Citation.Article
	a := types.Article{
		PMID:     strings.TrimSpace(pa.Citation.PMID),
		Title:    art.Title.String(),
		Abstract: art.Abstract.String(),
		Journal:  strings.TrimSpace(art.Journal.Title),
		Year:     art.Journal.Issue.PubDate.year(),
		Authors:  convertAuthors(art.Authors),
	}
	for _, id := range pa.ArticleIDs {
		if id.Type == "doi" {
			a.DOI = strings.TrimSpace(id.Value)
			break
		}
	}
	if a.DOI == "" {
		for _, id := range art.ELocationID {
			if id.EType == "doi" {
				a.DOI = strings.TrimSpace(id.Value)
				break
			}
		}
	}
	return a
}

func (ba bookArticle) toArticle() types.Article {
	doc := ba.Document
	title := doc.Title.String()
	if title == "" {
		title = doc.BookTitle.String()
	}
	return types.Article{
		PMID:     strings.TrimSpace(doc.PMID),
		Title:    title,
		Abstract: doc.Abstract.String(),
		Year:     doc.PubDate.year(),
		Authors:  convertAuthors(doc.Authors),
	}
}

// String joins abstract sections; labelled sections read "LABEL: text".
func (ab abstract) String() string {
	var parts []string
	for _, sec := range ab.Sections {
		text := flattenMarkup(sec.Inner)
		if text == "" {
			continue
		}
		if sec.Label != "" {
			text = sec.Label + ": " + text
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, " ")
}

// year returns the publication year, falling back to the leading digits
// of a MedlineDate such as "2023 Jan-Feb".
func (d pubDate) year() int {
	raw := strings.TrimSpace(d.Year)
	if raw == "" {
		raw = strings.TrimSpace(d.MedlineDate)
	}
	if len(raw) < 4 {
		return 0
	}
	y, err := strconv.Atoi(raw[:4])
	if err != nil {
		return 0
	}
	return y
}

func convertAuthors(nodes []authorNode) []types.Author {
	var authors []types.Author
	for _, n := range nodes {
		a := types.Author{
			LastName:       strings.TrimSpace(n.LastName),
			Initials:       strings.TrimSpace(n.Initials),
			CollectiveName: strings.TrimSpace(n.CollectiveName),
		}
		if a.String() == "" {
			continue
		}
		authors = append(authors, a)
	}
	return authors
}

// flattenMarkup drops inline tags, decodes entities, and collapses
// whitespace.
func flattenMarkup(inner string) string {
	var b strings.Builder
	inTag := false
	for _, r := range inner {
		switch {
		case r == '<':
			inTag = true
		case r == '>' && inTag:
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(html.UnescapeString(b.String())), " ")
}
