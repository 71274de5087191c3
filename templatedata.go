package main

import "time"

// The template data types are the flattened structures handed to templates.
// They are built once from validated domain objects immediately before a
// render and discarded after it; projection never fails.

type EntryAuthorTemplateData struct {
	Name  string
	Email string
	URI   string
}

func newEntryAuthorTemplateData(a *AuthorMetadata) *EntryAuthorTemplateData {
	if a == nil {
		return nil
	}
	return &EntryAuthorTemplateData{Name: a.Name, Email: a.Email, URI: a.URI}
}

type FeedAuthorTemplateData struct {
	Name  string
	Email string
	URI   string
}

func newFeedAuthorTemplateData(a *FeedAuthor) *FeedAuthorTemplateData {
	if a == nil {
		return nil
	}
	return &FeedAuthorTemplateData{Name: a.Name, Email: a.Email, URI: a.URI}
}

// EntryTemplateData is the render context shape for one post or page.
// PublishYear is always derived from Published and is zero when Published
// is nil.
type EntryTemplateData struct {
	ID          string
	URL         string
	Title       string
	Body        string
	Updated     time.Time
	Summary     string
	Published   *time.Time
	PublishYear int
	Author      *EntryAuthorTemplateData
	Rights      string
	Lang        string
	Categories  []string
	Layout      string
	Values      map[string]any
}

func newEntryTemplateDataFromMetadata(m EntryMetadata, body, url string) *EntryTemplateData {
	data := &EntryTemplateData{
		ID:         m.ID,
		URL:        url,
		Title:      m.Title,
		Body:       body,
		Updated:    m.Updated,
		Summary:    m.Summary,
		Published:  m.Published,
		Author:     newEntryAuthorTemplateData(m.Author),
		Rights:     m.Rights,
		Lang:       m.Lang,
		Categories: m.Categories,
		Layout:     m.Layout,
		Values:     m.Values,
	}
	if m.Published != nil {
		data.PublishYear = m.Published.Year()
	}
	return data
}

func newEntryTemplateData(e *Entry) *EntryTemplateData {
	return newEntryTemplateDataFromMetadata(e.Metadata, e.Body, e.URL)
}

func newPageEntryTemplateData(p *PageEntry) *EntryTemplateData {
	return newEntryTemplateDataFromMetadata(p.Metadata, p.Body, p.URL)
}

// templateContext flattens the entry into the lowercase key set templates
// depend on. Timestamps are serialized to RFC 3339; optional fields that
// are absent come through as nil so templates can test for them.
func (e *EntryTemplateData) templateContext() map[string]any {
	ctx := map[string]any{
		"id":         e.ID,
		"url":        e.URL,
		"title":      e.Title,
		"body":       e.Body,
		"updated":    e.Updated.Format(time.RFC3339),
		"summary":    e.Summary,
		"rights":     e.Rights,
		"lang":       e.Lang,
		"categories": e.Categories,
		"layout":     e.Layout,
		"values":     e.Values,
	}

	if e.Published != nil {
		ctx["published"] = e.Published.Format(time.RFC3339)
		ctx["publish_year"] = e.PublishYear
	} else {
		ctx["published"] = nil
		ctx["publish_year"] = nil
	}

	if e.Author != nil {
		ctx["author"] = map[string]any{
			"name":  e.Author.Name,
			"email": e.Author.Email,
			"uri":   e.Author.URI,
		}
	} else {
		ctx["author"] = nil
	}

	return ctx
}

// FeedTemplateData is the render context shape for the capsule feed. The
// three URLs are distinct: capsule root, feed document, and index page.
type FeedTemplateData struct {
	CapsuleURL string
	FeedURL    string
	IndexURL   string
	Title      string
	Updated    string
	Subtitle   string
	Rights     string
	Author     *FeedAuthorTemplateData
	Entries    []*EntryTemplateData
}

func newFeedTemplateData(f *Feed) *FeedTemplateData {
	entries := make([]*EntryTemplateData, 0, len(f.Entries))
	for _, e := range f.Entries {
		entries = append(entries, newEntryTemplateData(e))
	}

	return &FeedTemplateData{
		CapsuleURL: f.CapsuleURL,
		FeedURL:    f.FeedURL,
		IndexURL:   f.IndexURL,
		Title:      f.Title,
		Updated:    f.Updated.Format(time.RFC3339),
		Subtitle:   f.Subtitle,
		Rights:     f.Rights,
		Author:     newFeedAuthorTemplateData(f.Author),
		Entries:    entries,
	}
}

func (f *FeedTemplateData) templateContext() map[string]any {
	entries := make([]map[string]any, 0, len(f.Entries))
	for _, e := range f.Entries {
		entries = append(entries, e.templateContext())
	}

	ctx := map[string]any{
		"capsule_url": f.CapsuleURL,
		"feed_url":    f.FeedURL,
		"index_url":   f.IndexURL,
		"title":       f.Title,
		"updated":     f.Updated,
		"subtitle":    f.Subtitle,
		"rights":      f.Rights,
		"entries":     entries,
	}

	if f.Author != nil {
		ctx["author"] = map[string]any{
			"name":  f.Author.Name,
			"email": f.Author.Email,
			"uri":   f.Author.URI,
		}
	} else {
		ctx["author"] = nil
	}

	return ctx
}

// PagesTemplateData carries the capsule-wide navigation context page
// templates render against. PagesDir is the absolute base directory used
// for breadcrumb derivation.
type PagesTemplateData struct {
	CapsuleURL string
	IndexURL   string
	PagesDir   string
	FeedData   *FeedTemplateData
}

func newPagesTemplateData(p *Pages) *PagesTemplateData {
	return &PagesTemplateData{
		CapsuleURL: p.CapsuleURL,
		IndexURL:   p.IndexURL,
		PagesDir:   p.PagesDir,
		FeedData:   newFeedTemplateData(p.Feed),
	}
}
