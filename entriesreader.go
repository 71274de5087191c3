package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var frontmatterDelimiter = []byte("---")

// frontmatter is the known metadata block at the top of an entry file.
// Unknown keys are preserved separately in EntryMetadata.Values.
type frontmatter struct {
	ID         string          `yaml:"id"`
	Title      string          `yaml:"title"`
	Summary    string          `yaml:"summary"`
	Updated    time.Time       `yaml:"updated"`
	Published  *time.Time      `yaml:"published"`
	Author     *AuthorMetadata `yaml:"author"`
	Rights     string          `yaml:"rights"`
	Lang       string          `yaml:"lang"`
	Categories []string        `yaml:"categories"`
	Layout     string          `yaml:"layout"`
	Draft      bool            `yaml:"draft"`
}

var knownFrontmatterKeys = []string{
	"id", "title", "summary", "updated", "published", "author",
	"rights", "lang", "categories", "layout", "draft",
}

func findEntryFiles(dir, fileExtension string) ([]string, error) {
	files := make([]string, 0, 100)

	walkFunc := func(path string, info os.FileInfo, err error) error {
		if err != nil {
			fmt.Printf("Error at %v: %v\n", path, err)
			return nil
		}

		if !info.IsDir() && strings.HasSuffix(path, fileExtension) {
			files = append(files, path)
		}
		return nil
	}

	err := filepath.Walk(dir, walkFunc)
	return files, err
}

// splitFrontmatter splits an entry file into its YAML frontmatter block and
// the body below it. The frontmatter is fenced by "---" lines and must come
// first.
func splitFrontmatter(content []byte) (header, body []byte, err error) {
	normalized := bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))

	if !bytes.HasPrefix(normalized, frontmatterDelimiter) {
		return nil, nil, fmt.Errorf("no frontmatter block")
	}

	rest := normalized[len(frontmatterDelimiter):]
	if len(rest) > 0 && rest[0] == '\n' {
		rest = rest[1:]
	}

	end := bytes.Index(rest, append([]byte("\n"), frontmatterDelimiter...))
	if end == -1 {
		return nil, nil, fmt.Errorf("unterminated frontmatter block")
	}

	header = rest[:end+1]
	body = rest[end+1+len(frontmatterDelimiter):]
	body = bytes.TrimPrefix(body, []byte("\n"))
	return header, body, nil
}

// readEntryMetadata parses the frontmatter into validated metadata,
// preserving the keys caps11 doesn't know about in Values.
func readEntryMetadata(header []byte, path string) (EntryMetadata, error) {
	var fm frontmatter
	if err := yaml.Unmarshal(header, &fm); err != nil {
		return EntryMetadata{}, fmt.Errorf("invalid frontmatter in %v: %w", path, err)
	}

	if fm.Title == "" {
		return EntryMetadata{}, fmt.Errorf("entry %v has no title", path)
	}

	values := make(map[string]any)
	if err := yaml.Unmarshal(header, &values); err != nil {
		return EntryMetadata{}, fmt.Errorf("invalid frontmatter in %v: %w", path, err)
	}
	for _, key := range knownFrontmatterKeys {
		delete(values, key)
	}

	if fm.Updated.IsZero() {
		if info, err := os.Stat(path); err == nil {
			fm.Updated = info.ModTime()
		} else {
			fm.Updated = time.Now()
		}
	}

	return EntryMetadata{
		ID:         fm.ID,
		Title:      fm.Title,
		Summary:    fm.Summary,
		Updated:    fm.Updated,
		Published:  fm.Published,
		Author:     fm.Author,
		Rights:     fm.Rights,
		Lang:       fm.Lang,
		Categories: fm.Categories,
		Layout:     fm.Layout,
		Draft:      fm.Draft,
		Values:     values,
	}, nil
}

func readEntryFromFile(path string, toHTML renderer) (*Entry, error) {
	fileContent, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	header, body, err := splitFrontmatter(fileContent)
	if err != nil {
		return nil, fmt.Errorf("weird entry %v: %w", path, err)
	}

	metadata, err := readEntryMetadata(header, path)
	if err != nil {
		return nil, err
	}

	return &Entry{
		Metadata: metadata,
		Body:     toHTML.render(body),
		Path:     path,
		Slug:     stem(filepath.Base(path)),
	}, nil
}

func readPageFromFile(path string, toHTML renderer) (*PageEntry, error) {
	fileContent, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	header, body, err := splitFrontmatter(fileContent)
	if err != nil {
		return nil, fmt.Errorf("weird page %v: %w", path, err)
	}

	metadata, err := readEntryMetadata(header, path)
	if err != nil {
		return nil, err
	}

	return &PageEntry{
		Metadata: metadata,
		Body:     toHTML.render(body),
		Path:     path,
		Slug:     stem(filepath.Base(path)),
	}, nil
}
