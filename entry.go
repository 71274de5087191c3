package main

import "time"

// AuthorMetadata is the author block on an individual entry.
type AuthorMetadata struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	URI   string `yaml:"uri"`
}

// FeedAuthor is the capsule-wide author. Same shape as AuthorMetadata, but
// kept as its own type so entry and feed metadata stay decoupled.
type FeedAuthor struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	URI   string `yaml:"uri"`
}

// EntryMetadata is the validated frontmatter of a post or page.
type EntryMetadata struct {
	ID         string
	Title      string
	Summary    string
	Updated    time.Time
	Published  *time.Time
	Author     *AuthorMetadata
	Rights     string
	Lang       string
	Categories []string
	Layout     string
	Draft      bool
	// Values holds the frontmatter keys caps11 itself doesn't know about,
	// preserved verbatim for templates.
	Values map[string]any
}

// Entry is a single gemlog-style post: validated metadata plus the body
// already rendered from its source format.
type Entry struct {
	Metadata EntryMetadata
	Body     string
	URL      string
	Path     string
	Slug     string
}

// PageEntry is a static page. Unlike posts, its body may itself contain
// template syntax and is re-rendered through the layout pipeline.
type PageEntry struct {
	Metadata EntryMetadata
	Body     string
	URL      string
	Path     string
	Slug     string
}

// Feed is the capsule-wide feed: three distinct URLs (capsule root, feed
// document, index page) plus the posts in publication order.
type Feed struct {
	CapsuleURL string
	FeedURL    string
	IndexURL   string
	Title      string
	Updated    time.Time
	Subtitle   string
	Rights     string
	Lang       string
	Author     *FeedAuthor
	Entries    []*Entry
}

// Pages groups the static pages with the capsule navigation context they
// are rendered against. PagesDir is the output root used for breadcrumb
// derivation.
type Pages struct {
	CapsuleURL string
	IndexURL   string
	PagesDir   string
	Feed       *Feed
	Entries    []*PageEntry
}
