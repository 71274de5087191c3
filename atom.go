package main

import (
	"log"
	"path/filepath"

	atom "github.com/thomas11/atomgenerator"
)

// atomFeedTemplate is the bundled Atom feed template. It is compiled into
// the program and not user-editable; pongo2's autoescaping doubles as XML
// escaping for the text nodes.
const atomFeedTemplate = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
<id>{{ feed.capsule_url }}</id>
<title>{{ feed.title }}</title>
{% if feed.subtitle %}<subtitle>{{ feed.subtitle }}</subtitle>
{% endif %}<updated>{{ feed.updated }}</updated>
<link rel="self" href="{{ feed.feed_url }}" type="application/atom+xml"/>
<link rel="alternate" href="{{ feed.index_url }}"/>
{% if feed.rights %}<rights>{{ feed.rights }}</rights>
{% endif %}{% if feed.author %}<author>
<name>{{ feed.author.name }}</name>
{% if feed.author.email %}<email>{{ feed.author.email }}</email>
{% endif %}{% if feed.author.uri %}<uri>{{ feed.author.uri }}</uri>
{% endif %}</author>
{% endif %}<generator>caps11</generator>
{% for entry in feed.entries %}<entry>
<id>{{ entry.id }}</id>
<title>{{ entry.title }}</title>
<updated>{{ entry.updated }}</updated>
{% if entry.published %}<published>{{ entry.published }}</published>
{% endif %}{% if entry.summary %}<summary>{{ entry.summary }}</summary>
{% endif %}{% if entry.author %}<author>
<name>{{ entry.author.name }}</name>
{% if entry.author.email %}<email>{{ entry.author.email }}</email>
{% endif %}{% if entry.author.uri %}<uri>{{ entry.author.uri }}</uri>
{% endif %}</author>
{% endif %}{% if entry.rights %}<rights>{{ entry.rights }}</rights>
{% endif %}{% for category in entry.categories %}<category term="{{ category }}"/>
{% endfor %}<link rel="alternate" href="{{ entry.url }}"{% if entry.lang %} hreflang="{{ entry.lang }}"{% endif %}/>
<content type="html">{{ entry.body }}</content>
</entry>
{% endfor %}</feed>
`

// validateFeed mirrors the feed into an atomgenerator feed and runs its
// validation, catching structural problems before the document is written.
func validateFeed(f *Feed) []error {
	feed := atom.Feed{
		Title:   f.Title,
		Link:    f.FeedURL,
		PubDate: f.Updated,
	}
	if f.Author != nil {
		feed.AddAuthor(atom.Author{
			Name: f.Author.Name,
			Uri:  f.Author.URI,
		})
	}

	for _, e := range f.Entries {
		entry := &atom.Entry{
			Title:       e.Metadata.Title,
			Description: e.Metadata.Summary,
			Link:        e.URL,
			PubDate:     e.Metadata.Updated,
			Content:     e.Body,
		}
		for _, c := range e.Metadata.Categories {
			entry.AddCategory(atom.Category{Term: c})
		}
		feed.AddEntry(entry)
	}

	return feed.Validate()
}

// RenderAtom validates and writes the capsule feed, then one feed per
// category.
func (s *Site) RenderAtom() error {
	if errs := validateFeed(s.feed); len(errs) > 0 {
		log.Println("Atom feed is not valid!")
		for _, e := range errs {
			log.Println(e.Error())
		}
		return errs[0]
	}

	feedData := newFeedTemplateData(s.feed)
	output := filepath.Join(s.conf.OutDir, s.conf.FeedPath)
	if err := feedData.RenderFeed(atomFeedTemplate, output); err != nil {
		return err
	}

	return s.renderCategoryFeeds()
}

// renderCategoryFeeds writes one Atom document per category, each holding
// only that category's posts.
func (s *Site) renderCategoryFeeds() error {
	for _, catEntries := range groupByCategory(s.feed.Entries) {
		cat := catEntries.Category

		catFeed := *s.feed
		catFeed.Title = s.feed.Title + ` Category "` + cat.String() + `."`
		catFeed.FeedURL = capsuleURLJoin(s.feed.CapsuleURL, s.conf.CategoriesOutDir+"/"+cat.ID()+".xml")
		catFeed.Entries = catEntries.Entries

		output := filepath.Join(s.conf.OutDir, s.conf.CategoriesOutDir, cat.ID()+".xml")
		if err := newFeedTemplateData(&catFeed).RenderFeed(atomFeedTemplate, output); err != nil {
			return err
		}
	}
	return nil
}
