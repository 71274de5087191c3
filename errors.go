package main

import "fmt"

// The error kinds below mirror the ways template input can be bad. Each one
// carries the output path, URL, or template text the failure should be
// attributed to, plus a reason string holding the engine's full cause chain
// flattened onto one line.

// PostPageTemplateError means the post page template failed to load or
// render.
type PostPageTemplateError struct {
	Path   string
	Reason string
}

func (e *PostPageTemplateError) Error() string {
	return fmt.Sprintf("invalid post page template (%s): %s", e.Path, e.Reason)
}

// PageTemplateError means a page layout or body template failed to load or
// render, including the reserved-name collision.
type PageTemplateError struct {
	Path   string
	Reason string
}

func (e *PageTemplateError) Error() string {
	return fmt.Sprintf("invalid page template (%s): %s", e.Path, e.Reason)
}

// IndexPageTemplateError means the index page template failed to load or
// render.
type IndexPageTemplateError struct {
	Reason string
}

func (e *IndexPageTemplateError) Error() string {
	return fmt.Sprintf("invalid index page template: %s", e.Reason)
}

// PostPathTemplateError means a post path template string failed to parse
// or render.
type PostPathTemplateError struct {
	Template string
	Reason   string
}

func (e *PostPathTemplateError) Error() string {
	return fmt.Sprintf("invalid post path template (%q): %s", e.Template, e.Reason)
}

// PagePathTemplateError means a page path template string failed to parse
// or render.
type PagePathTemplateError struct {
	Template string
	Reason   string
}

func (e *PagePathTemplateError) Error() string {
	return fmt.Sprintf("invalid page path template (%q): %s", e.Template, e.Reason)
}
