package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntry(published *time.Time) *Entry {
	return &Entry{
		Metadata: EntryMetadata{
			ID:         "urn:test:1",
			Title:      "World",
			Summary:    "a summary",
			Updated:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
			Published:  published,
			Author:     &AuthorMetadata{Name: "Ada", Email: "ada@example.com"},
			Rights:     "CC BY-SA",
			Lang:       "en",
			Categories: []string{"tech", "go", "tech"},
			Layout:     "list",
			Values:     map[string]any{"mood": "happy"},
		},
		Body: "<p>hello</p>",
		URL:  "https://example.com/posts/2024/03/hello.html",
	}
}

func TestEntryTemplateDataPublishYearDerived(t *testing.T) {
	published := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)

	data := newEntryTemplateData(testEntry(&published))

	require.NotNil(t, data.Published)
	assert.Equal(t, 2024, data.PublishYear)
	assert.Equal(t, data.Published.Year(), data.PublishYear)
}

func TestEntryTemplateDataPublishYearAbsentWithoutPublished(t *testing.T) {
	data := newEntryTemplateData(testEntry(nil))

	assert.Nil(t, data.Published)
	assert.Zero(t, data.PublishYear)

	ctx := data.templateContext()
	assert.Nil(t, ctx["published"])
	assert.Nil(t, ctx["publish_year"])
}

func TestEntryTemplateDataKeepsCategoryOrderAndDuplicates(t *testing.T) {
	data := newEntryTemplateData(testEntry(nil))

	assert.Equal(t, []string{"tech", "go", "tech"}, data.Categories)
}

func TestEntryTemplateContextKeySet(t *testing.T) {
	published := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)
	ctx := newEntryTemplateData(testEntry(&published)).templateContext()

	// Template authors depend on this exact key set being stable.
	for _, key := range []string{
		"id", "url", "title", "body", "updated", "summary", "published",
		"publish_year", "author", "rights", "lang", "categories", "layout",
		"values",
	} {
		assert.Contains(t, ctx, key)
	}

	assert.Equal(t, "2024-03-07T00:00:00Z", ctx["published"])
	assert.Equal(t, 2024, ctx["publish_year"])
	assert.Equal(t, map[string]any{"mood": "happy"}, ctx["values"])

	author, ok := ctx["author"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ada", author["name"])
}

func TestEntryTemplateContextWithoutAuthor(t *testing.T) {
	entry := testEntry(nil)
	entry.Metadata.Author = nil

	ctx := newEntryTemplateData(entry).templateContext()

	assert.Nil(t, ctx["author"])
}

func testFeed() *Feed {
	published := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	first := testEntry(&published)
	second := testEntry(nil)
	second.Metadata.Title = "Second"

	return &Feed{
		CapsuleURL: "https://example.com/",
		FeedURL:    "https://example.com/atom.xml",
		IndexURL:   "https://example.com/index.html",
		Title:      "Example Capsule",
		Updated:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Subtitle:   "notes",
		Author:     &FeedAuthor{Name: "Ada"},
		Entries:    []*Entry{first, second},
	}
}

func TestFeedTemplateDataKeepsEntryOrder(t *testing.T) {
	data := newFeedTemplateData(testFeed())

	require.Len(t, data.Entries, 2)
	assert.Equal(t, "World", data.Entries[0].Title)
	assert.Equal(t, "Second", data.Entries[1].Title)
}

func TestFeedTemplateDataDistinctURLs(t *testing.T) {
	data := newFeedTemplateData(testFeed())

	assert.Equal(t, "https://example.com/", data.CapsuleURL)
	assert.Equal(t, "https://example.com/atom.xml", data.FeedURL)
	assert.Equal(t, "https://example.com/index.html", data.IndexURL)
	assert.Equal(t, "2024-05-01T12:00:00Z", data.Updated)
}

func TestPagesTemplateDataEmbedsFeed(t *testing.T) {
	pages := &Pages{
		CapsuleURL: "https://example.com/",
		IndexURL:   "https://example.com/index.html",
		PagesDir:   "/srv/capsule/public",
		Feed:       testFeed(),
	}

	data := newPagesTemplateData(pages)

	assert.Equal(t, "/srv/capsule/public", data.PagesDir)
	require.NotNil(t, data.FeedData)
	assert.Equal(t, "Example Capsule", data.FeedData.Title)
}
