package main

import (
	"path/filepath"
	"strings"
)

// canonicalPath resolves a path to an absolute path with symlinks
// evaluated. Returns "" if the path can't be resolved, e.g. because it
// doesn't exist yet.
func canonicalPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return ""
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return ""
	}
	return resolved
}

func pathComponents(path string) []string {
	if path == "" {
		return nil
	}
	parts := strings.Split(filepath.ToSlash(path), "/")
	components := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" && p != "." && p != ".." {
			components = append(components, p)
		}
	}
	return components
}

// stem returns the file name without its extension. Dotfiles keep their
// full name, matching file-stem semantics rather than filepath.Ext.
func stem(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return name
	}
	return strings.TrimSuffix(name, ext)
}

// createBreadcrumb computes the path segments of filePath relative to
// basePath, with the extension stripped from the last segment. It is a
// best-effort navigation aid: if either path can't be canonicalized the
// result degrades to an empty breadcrumb instead of failing the render.
func createBreadcrumb(filePath, basePath string) []string {
	// Strip the first N components, which gives us the breadcrumb within
	// the context of the capsule itself instead of a full absolute path on
	// the local filesystem.
	baseComponents := pathComponents(canonicalPath(basePath))
	fileComponents := pathComponents(canonicalPath(filePath))

	if len(fileComponents) <= len(baseComponents) {
		return []string{}
	}

	breadcrumb := make([]string, 0, len(fileComponents)-len(baseComponents))
	for _, c := range fileComponents[len(baseComponents):] {
		breadcrumb = append(breadcrumb, strings.ToValidUTF8(c, "�"))
	}

	// Remove the file extension from the last element.
	if n := len(breadcrumb); n > 0 {
		breadcrumb[n-1] = stem(breadcrumb[n-1])
	}

	return breadcrumb
}
