// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// pubmedURLTemplate builds the canonical article page from a PMID.
const pubmedURLTemplate = "https://pubmed.ncbi.nlm.nih.gov/%s/"

// Author is one entry of a PubMed author list. Group authors carry only
// CollectiveName.
type Author struct {
	LastName       string `json:"last_name,omitempty" yaml:"last_name,omitempty"`
	Initials       string `json:"initials,omitempty" yaml:"initials,omitempty"`
	CollectiveName string `json:"collective_name,omitempty" yaml:"collective_name,omitempty"`
}

// String renders the author as "LastName Initials" (e.g. "Smith JA").
func (a Author) String() string {
	if a.CollectiveName != "" {
		return a.CollectiveName
	}
	if a.Initials == "" {
		return a.LastName
	}
	return a.LastName + " " + a.Initials
}

// Article holds the metadata fetched for one PubMed record.
type Article struct {
	// PMID is the PubMed identifier (e.g. "37012345").
	PMID string `json:"pmid" yaml:"pmid"`

	// Title is the article title with inline markup removed.
	Title string `json:"title" yaml:"title"`

	// Authors lists the authors in source order.
	Authors []Author `json:"authors" yaml:"authors"`

	// Abstract is the abstract text. Empty when the record has none.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// Journal is the journal title.
	Journal string `json:"journal,omitempty" yaml:"journal,omitempty"`

	// Year is the publication year, 0 when unknown.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	// DOI is the article DOI when PubMed lists one.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`
}

// URL returns the PubMed page for the article.
func (a Article) URL() string {
	return fmt.Sprintf(pubmedURLTemplate, a.PMID)
}

// HasAbstract reports whether the record can be used in a corpus.
func (a Article) HasAbstract() bool {
	return a.Abstract != ""
}

// AuthorNames returns the rendered author names in order.
func (a Article) AuthorNames() []string {
	names := make([]string, 0, len(a.Authors))
	for _, au := range a.Authors {
		if s := au.String(); s != "" {
			names = append(names, s)
		}
	}
	return names
}
