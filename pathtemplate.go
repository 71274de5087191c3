package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/flosch/pongo2/v6"
)

// Path templates are small string-interpolation templates the site uses to
// decide where each post and page lands. They operate purely on strings;
// no file I/O happens here.

type PostPathParams struct {
	Slug      string
	Published *time.Time
}

// PostPathTemplateData feeds a post path template. The date fields are
// zero-padded fixed-width strings, and all of them are empty together when
// the post has no publish date — never partially empty.
type PostPathTemplateData struct {
	Year  string
	Month string
	Day   string
	Slug  string
}

func newPostPathTemplateData(params PostPathParams) PostPathTemplateData {
	data := PostPathTemplateData{Slug: params.Slug}
	if params.Published != nil {
		data.Year = fmt.Sprintf("%04d", params.Published.Year())
		data.Month = fmt.Sprintf("%02d", int(params.Published.Month()))
		data.Day = fmt.Sprintf("%02d", params.Published.Day())
	}
	return data
}

// Render interpolates the post path template with this data.
func (d PostPathTemplateData) Render(template string) (string, error) {
	engine := newRawTemplateEngine()

	if err := engine.addRawTemplate("path", template); err != nil {
		return "", &PostPathTemplateError{Template: template, Reason: flattenError(err)}
	}

	ctx := pongo2.Context{
		"year":  d.Year,
		"month": d.Month,
		"day":   d.Day,
		"slug":  d.Slug,
	}

	path, err := engine.render("path", ctx)
	if err != nil {
		return "", &PostPathTemplateError{Template: template, Reason: flattenError(err)}
	}
	// A template made of typo'd variable names renders to nothing rather
	// than erroring; catch that before it turns into a bogus output path.
	if strings.TrimSpace(path) == "" {
		return "", &PostPathTemplateError{Template: template, Reason: "rendered an empty path"}
	}
	return path, nil
}

type PagePathParams struct {
	BasePath string
	FilePath string
	Slug     string
}

// PagePathTemplateData feeds a page path template. ParentURL is the page's
// ancestor breadcrumb joined by "/", excluding the page's own segment.
type PagePathTemplateData struct {
	ParentURL string
	Slug      string
}

func newPagePathTemplateData(params PagePathParams) PagePathTemplateData {
	// The breadcrumb drops its last entry, which is the page name itself
	// here; the slug is supplied separately.
	breadcrumb := createBreadcrumb(params.FilePath, params.BasePath)
	if len(breadcrumb) > 0 {
		breadcrumb = breadcrumb[:len(breadcrumb)-1]
	}

	return PagePathTemplateData{
		ParentURL: strings.Join(breadcrumb, "/"),
		Slug:      params.Slug,
	}
}

// Render interpolates the page path template with this data. The ancestor
// breadcrumb is exposed under the context key "breadcrumb".
func (d PagePathTemplateData) Render(template string) (string, error) {
	engine := newRawTemplateEngine()

	if err := engine.addRawTemplate("path", template); err != nil {
		return "", &PagePathTemplateError{Template: template, Reason: flattenError(err)}
	}

	ctx := pongo2.Context{
		"breadcrumb": d.ParentURL,
		"slug":       d.Slug,
	}

	path, err := engine.render("path", ctx)
	if err != nil {
		return "", &PagePathTemplateError{Template: template, Reason: flattenError(err)}
	}
	if strings.TrimSpace(path) == "" {
		return "", &PagePathTemplateError{Template: template, Reason: "rendered an empty path"}
	}
	return path, nil
}
