// caps11 is a static capsule generator, because everyone needs to write
// one. Markdown entries with YAML frontmatter in, templated post pages,
// layout-composed static pages, an index, and Atom feeds out.
//
// To get started, copy example/caps11.yaml and customize it for your setup.
// You need to provide your own templates; the feed template is bundled.
package main

import (
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/otiai10/copy"
)

type Site struct {
	conf  *SiteConf
	feed  *Feed
	pages *Pages

	// Output file path per entry, computed once from the path templates.
	postOut map[*Entry]string
	pageOut map[*PageEntry]string
}

// capsuleURLJoin joins a path onto the capsule base URL without doubling
// slashes.
func capsuleURLJoin(baseURL, relPath string) string {
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(relPath, "/")
}

// ReadSite reads every post and page under the configured source
// directories and resolves their output paths and URLs. Entries flagged as
// drafts are skipped unless drafts is set.
func ReadSite(conf *SiteConf, drafts bool) (*Site, error) {
	toHTML := newMarkdownRenderer()

	site := &Site{
		conf:    conf,
		postOut: make(map[*Entry]string),
		pageOut: make(map[*PageEntry]string),
	}

	postFiles, err := findEntryFiles(conf.PostsDir, conf.EntryFileExtension)
	if err != nil {
		return nil, err
	}

	entries := make([]*Entry, 0, len(postFiles))
	var latest time.Time
	for _, f := range postFiles {
		e, err := readEntryFromFile(f, toHTML)
		if err != nil {
			return nil, err
		}
		if e.Metadata.Draft && !drafts {
			continue
		}

		pathData := newPostPathTemplateData(PostPathParams{
			Slug:      e.Slug,
			Published: e.Metadata.Published,
		})
		relPath, err := pathData.Render(conf.PostPath)
		if err != nil {
			return nil, err
		}

		e.URL = capsuleURLJoin(conf.CapsuleURL, relPath)
		if e.Metadata.ID == "" {
			e.Metadata.ID = e.URL
		}
		site.postOut[e] = filepath.Join(conf.OutDir, filepath.FromSlash(relPath))

		if e.Metadata.Updated.After(latest) {
			latest = e.Metadata.Updated
		}
		entries = append(entries, e)
	}

	// Order posts newest first: by publish date, falling back to the
	// update timestamp for unpublished ones.
	sort.Slice(entries, func(i, j int) bool {
		return entrySortDate(entries[i]).After(entrySortDate(entries[j]))
	})

	if latest.IsZero() {
		latest = time.Now()
	}

	site.feed = &Feed{
		CapsuleURL: conf.CapsuleURL,
		FeedURL:    capsuleURLJoin(conf.CapsuleURL, conf.FeedPath),
		IndexURL:   capsuleURLJoin(conf.CapsuleURL, conf.IndexPath),
		Title:      conf.SiteTitle,
		Updated:    latest,
		Subtitle:   conf.Subtitle,
		Rights:     conf.Rights,
		Lang:       conf.Lang,
		Author:     conf.Author,
		Entries:    entries,
	}

	pageFiles, err := findEntryFiles(conf.PagesDir, conf.EntryFileExtension)
	if err != nil {
		return nil, err
	}

	pageEntries := make([]*PageEntry, 0, len(pageFiles))
	for _, f := range pageFiles {
		p, err := readPageFromFile(f, toHTML)
		if err != nil {
			return nil, err
		}
		if p.Metadata.Draft && !drafts {
			continue
		}

		pathData := newPagePathTemplateData(PagePathParams{
			BasePath: conf.PagesDir,
			FilePath: p.Path,
			Slug:     p.Slug,
		})
		relPath, err := pathData.Render(conf.PagePath)
		if err != nil {
			return nil, err
		}

		p.URL = capsuleURLJoin(conf.CapsuleURL, relPath)
		if p.Metadata.ID == "" {
			p.Metadata.ID = p.URL
		}
		site.pageOut[p] = filepath.Join(conf.OutDir, filepath.FromSlash(relPath))

		pageEntries = append(pageEntries, p)
	}

	site.pages = &Pages{
		CapsuleURL: conf.CapsuleURL,
		IndexURL:   site.feed.IndexURL,
		PagesDir:   conf.OutDir,
		Feed:       site.feed,
		Entries:    pageEntries,
	}

	return site, nil
}

func entrySortDate(e *Entry) time.Time {
	if e.Metadata.Published != nil {
		return *e.Metadata.Published
	}
	return e.Metadata.Updated
}

// RenderPosts writes one page per post.
func (s *Site) RenderPosts() error {
	feedData := newFeedTemplateData(s.feed)

	for _, e := range s.feed.Entries {
		entryData := newEntryTemplateData(e)
		if err := entryData.RenderPost(feedData, s.conf.PostTemplate, s.postOut[e]); err != nil {
			return err
		}
	}
	return nil
}

// RenderPages writes the static pages through the layout pipeline.
func (s *Site) RenderPages() error {
	pagesData := newPagesTemplateData(s.pages)

	for _, p := range s.pages.Entries {
		entryData := newPageEntryTemplateData(p)
		if err := entryData.RenderPage(pagesData, s.conf.TemplatesDir, s.pageOut[p]); err != nil {
			return err
		}
	}
	return nil
}

// RenderIndex writes the capsule index page.
func (s *Site) RenderIndex() error {
	output := filepath.Join(s.conf.OutDir, s.conf.IndexPath)
	return newFeedTemplateData(s.feed).RenderIndex(s.conf.IndexTemplate, output)
}

func (s *Site) RenderAll() error {
	if err := s.RenderPosts(); err != nil {
		return err
	}
	if err := s.RenderPages(); err != nil {
		return err
	}
	if err := s.RenderIndex(); err != nil {
		return err
	}
	return s.RenderAtom()
}

func (s *Site) CopyStaticFiles() error {
	srcDir := s.conf.StaticFilesDir
	dirName := filepath.Base(srcDir)
	dest := filepath.Join(s.conf.OutDir, dirName)
	log.Println("Recursively copying ", srcDir, " to ", dest)
	return copy.Copy(srcDir, dest)
}

func (s *Site) String() string {
	return fmt.Sprintf("site %q with %d posts and %d pages", s.conf.SiteTitle, len(s.feed.Entries), len(s.pages.Entries))
}
