package main

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostPathTemplateDataFromPublishDate(t *testing.T) {
	published := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)

	data := newPostPathTemplateData(PostPathParams{Slug: "hello", Published: &published})

	assert.Equal(t, PostPathTemplateData{Year: "2024", Month: "03", Day: "07", Slug: "hello"}, data)
}

func TestPostPathTemplateDataWithoutPublishDate(t *testing.T) {
	data := newPostPathTemplateData(PostPathParams{Slug: "hello"})

	// Never partially populated: all date fields are empty together.
	assert.Equal(t, PostPathTemplateData{Year: "", Month: "", Day: "", Slug: "hello"}, data)
}

func TestPostPathRender(t *testing.T) {
	published := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)
	data := newPostPathTemplateData(PostPathParams{Slug: "hello", Published: &published})

	got, err := data.Render("{{year}}/{{month}}/{{slug}}")

	require.NoError(t, err)
	assert.Equal(t, "2024/03/hello", got)
}

func TestPostPathRenderIsPure(t *testing.T) {
	published := time.Date(2021, 12, 1, 0, 0, 0, 0, time.UTC)
	data := newPostPathTemplateData(PostPathParams{Slug: "x", Published: &published})

	first, err := data.Render("{{ year }}-{{ month }}-{{ day }}/{{ slug }}")
	require.NoError(t, err)
	second, err := data.Render("{{ year }}-{{ month }}-{{ day }}/{{ slug }}")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPostPathRenderSyntaxError(t *testing.T) {
	data := newPostPathTemplateData(PostPathParams{Slug: "x"})

	_, err := data.Render("{% bogus %}{{ slug }}")

	var pathErr *PostPathTemplateError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "{% bogus %}{{ slug }}", pathErr.Template)
	assert.NotEmpty(t, pathErr.Reason)
}

func TestPostPathRenderRejectsEmptyResult(t *testing.T) {
	published := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)
	data := newPostPathTemplateData(PostPathParams{Slug: "hello", Published: &published})

	// Typo'd variable names resolve to nothing instead of erroring, so a
	// template made only of them would send output to a bogus location.
	_, err := data.Render("{{ yaer }}{{ sulg }}")

	var pathErr *PostPathTemplateError
	require.ErrorAs(t, err, &pathErr)
	assert.Contains(t, pathErr.Reason, "empty path")
}

func TestPagePathTemplateDataDropsOwnSegment(t *testing.T) {
	base := t.TempDir()
	file := filepath.Join(base, "docs", "guides", "install.md")
	writeFile(t, file, "x")

	data := newPagePathTemplateData(PagePathParams{BasePath: base, FilePath: file, Slug: "install"})

	assert.Equal(t, "docs/guides", data.ParentURL)
	assert.Equal(t, "install", data.Slug)
}

func TestPagePathTemplateDataTopLevelPage(t *testing.T) {
	base := t.TempDir()
	file := filepath.Join(base, "about.md")
	writeFile(t, file, "x")

	data := newPagePathTemplateData(PagePathParams{BasePath: base, FilePath: file, Slug: "about"})

	assert.Equal(t, "", data.ParentURL)
}

func TestPagePathRender(t *testing.T) {
	data := PagePathTemplateData{ParentURL: "docs/guides", Slug: "install"}

	got, err := data.Render("{% if breadcrumb %}{{ breadcrumb }}/{% endif %}{{ slug }}.html")

	require.NoError(t, err)
	assert.Equal(t, "docs/guides/install.html", got)
}

func TestPagePathRenderRejectsEmptyResult(t *testing.T) {
	data := PagePathTemplateData{Slug: "about"}

	_, err := data.Render("{{ breadcrumbs }}")

	var pathErr *PagePathTemplateError
	require.ErrorAs(t, err, &pathErr)
	assert.Contains(t, pathErr.Reason, "empty path")
}

func TestPagePathRenderSyntaxError(t *testing.T) {
	data := PagePathTemplateData{Slug: "x"}

	_, err := data.Render("{{ slug")

	var pathErr *PagePathTemplateError
	require.True(t, errors.As(err, &pathErr))
	assert.Equal(t, "{{ slug", pathErr.Template)
}
