package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/flosch/pongo2/v6"
)

// All four renderers follow the same skeleton: acquire templates, assemble
// the context, create the output file (parents first), render. Each one
// uses its own isolated engine instance.

// createOutputFile creates output's parent directories and then the file
// itself, truncating any previous contents.
func createOutputFile(output, what string) (*os.File, error) {
	if output == "" {
		return nil, fmt.Errorf("could not get parent directory of %s file, this is a bug", what)
	}

	if err := os.MkdirAll(filepath.Dir(output), 0775); err != nil {
		return nil, fmt.Errorf("failed creating parent directory: %w", err)
	}

	dest, err := os.Create(output)
	if err != nil {
		return nil, fmt.Errorf("failed creating %s file: %w", what, err)
	}
	return dest, nil
}

// RenderPost renders a single post page from the template file at template
// to the file at output.
func (e *EntryTemplateData) RenderPost(feed *FeedTemplateData, template, output string) error {
	engine, err := newTemplateEngine(filepath.Dir(template))
	if err != nil {
		return &PostPageTemplateError{Path: output, Reason: flattenError(err)}
	}

	if err := engine.addTemplateFile("post", template); err != nil {
		return &PostPageTemplateError{Path: output, Reason: flattenError(err)}
	}

	ctx := pongo2.Context{
		"entry": e.templateContext(),
		"feed":  feed.templateContext(),
	}

	dest, err := createOutputFile(output, "post page")
	if err != nil {
		return err
	}

	if err := engine.renderTo("post", ctx, dest); err != nil {
		dest.Close()
		return &PostPageTemplateError{Path: output, Reason: flattenError(err)}
	}

	return dest.Close()
}

// RenderPage renders a static page in two passes: the entry body is itself
// a template, rendered first on its own and then wrapped in the layout
// named by entry.layout (default "base"). The layout sees the first pass
// under the context key "content".
func (e *EntryTemplateData) RenderPage(pages *PagesTemplateData, templatesDir, output string) error {
	engine, err := newTemplateEngine(templatesDir)
	if err != nil {
		return &PageTemplateError{Path: output, Reason: flattenError(err)}
	}

	if err := engine.addTemplateDir(templatesDir); err != nil {
		return &PageTemplateError{Path: output, Reason: flattenError(err)}
	}

	if err := engine.addRawTemplate(reservedPageTemplateName, e.Body); err != nil {
		return &PageTemplateError{Path: output, Reason: fmt.Sprintf("%s: %s", e.URL, flattenError(err))}
	}

	// The file must exist before the breadcrumb is derived, or path
	// canonicalization won't resolve it.
	dest, err := createOutputFile(output, "templated page")
	if err != nil {
		return err
	}

	breadcrumb := createBreadcrumb(output, pages.PagesDir)

	firstPass := pongo2.Context{
		"entry":      e.templateContext(),
		"values":     e.Values,
		"breadcrumb": breadcrumb,
		"feed":       pages.FeedData.templateContext(),
	}

	// Render the content itself, then render it through the layout. The
	// second pass gets a fresh context so the first one stays untouched.
	content, err := engine.render(reservedPageTemplateName, firstPass)
	if err != nil {
		dest.Close()
		return &PageTemplateError{Path: output, Reason: fmt.Sprintf("%s: %s", e.URL, flattenError(err))}
	}

	secondPass := make(pongo2.Context, len(firstPass)+1)
	for k, v := range firstPass {
		secondPass[k] = v
	}
	secondPass["content"] = content

	layout := e.Layout
	if layout == "" {
		layout = "base"
	}

	if err := engine.renderTo(layout, secondPass, dest); err != nil {
		dest.Close()
		return &PageTemplateError{Path: output, Reason: fmt.Sprintf("%s: %s", e.URL, flattenError(err))}
	}

	return dest.Close()
}

// RenderIndex renders the capsule index page from the template file at
// template to the file at output.
func (f *FeedTemplateData) RenderIndex(template, output string) error {
	engine, err := newTemplateEngine(filepath.Dir(template))
	if err != nil {
		return &IndexPageTemplateError{Reason: flattenError(err)}
	}

	if err := engine.addTemplateFile("index", template); err != nil {
		return &IndexPageTemplateError{Reason: flattenError(err)}
	}

	ctx := pongo2.Context{"feed": f.templateContext()}

	dest, err := createOutputFile(output, "index page")
	if err != nil {
		return err
	}

	if err := engine.renderTo("index", ctx, dest); err != nil {
		dest.Close()
		return &IndexPageTemplateError{Reason: flattenError(err)}
	}

	return dest.Close()
}

// RenderFeed renders the Atom feed document from a bundled raw template
// string. The template is not user-supplied: if it fails to parse, that is
// a defect in caps11 itself, not a configuration error.
func (f *FeedTemplateData) RenderFeed(template, output string) error {
	engine := newRawTemplateEngine()

	if err := engine.addRawTemplate("feed", template); err != nil {
		return fmt.Errorf("the bundled Atom feed template is invalid, this is a bug: %s", flattenError(err))
	}

	ctx := pongo2.Context{"feed": f.templateContext()}

	dest, err := createOutputFile(output, "Atom feed")
	if err != nil {
		return err
	}

	if err := engine.renderTo("feed", ctx, dest); err != nil {
		dest.Close()
		return fmt.Errorf("failed generating the Atom feed: %s", flattenError(err))
	}

	return dest.Close()
}
