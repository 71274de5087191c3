package main

import (
	"bytes"
	"cmp"
	"slices"
	"strings"
	"time"
)

type category string

func (c category) String() string { return string(c) }

// ID is the URL-safe form of the category name.
func (c category) ID() string { return strings.ReplaceAll(c.String(), " ", "_") }

type categoryWithEntries struct {
	Category category
	Entries  []*Entry
}

func (c categoryWithEntries) latestUpdate() time.Time {
	var t time.Time
	for _, e := range c.Entries {
		if e.Metadata.Updated.After(t) {
			t = e.Metadata.Updated
		}
	}
	return t
}

// Entries grouped by category. Create using groupByCategory, which sorts by
// number of entries per category, then by newest entry.
type entriesByCategory []categoryWithEntries

func (ec *entriesByCategory) addEntry(c category, e *Entry) {
	for i, cat := range *ec {
		if cat.Category == c {
			cat.Entries = append(cat.Entries, e)
			(*ec)[i] = cat
			return
		}
	}

	newCategory := categoryWithEntries{c, make([]*Entry, 1, 10)}
	newCategory.Entries[0] = e
	*ec = append(*ec, newCategory)
}

func (ec entriesByCategory) String() string {
	b := new(bytes.Buffer)
	for _, c := range ec {
		b.WriteString(c.Category.String())
		b.WriteString(": ")
		for i, e := range c.Entries {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(e.Metadata.Title)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func groupByCategory(entries []*Entry) entriesByCategory {
	byCat := make(entriesByCategory, 0, 20)

	for _, e := range entries {
		for _, cat := range e.Metadata.Categories {
			byCat.addEntry(category(cat), e)
		}
	}

	// Order categories by the number of entries in them, then by newest
	// entry.
	slices.SortFunc(byCat, func(a, b categoryWithEntries) int {
		if c := cmp.Compare(len(b.Entries), len(a.Entries)); c != 0 {
			return c
		}
		return b.latestUpdate().Compare(a.latestUpdate())
	})

	return byCat
}
