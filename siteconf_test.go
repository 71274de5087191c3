package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfDefaults(t *testing.T) {
	conf, err := parseConf([]byte("capsule_url: https://example.com\ntitle: Example\n"))
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/", conf.CapsuleURL)
	assert.Equal(t, "posts", conf.PostsDir)
	assert.Equal(t, "pages", conf.PagesDir)
	assert.Equal(t, "public", conf.OutDir)
	assert.Equal(t, "categories", conf.CategoriesOutDir)
	assert.Equal(t, "index.html", conf.IndexPath)
	assert.Equal(t, "atom.xml", conf.FeedPath)
	assert.Equal(t, ".md", conf.EntryFileExtension)
	assert.NotEmpty(t, conf.PostPath)
	assert.NotEmpty(t, conf.PagePath)
}

func TestParseConfRequiresCapsuleURL(t *testing.T) {
	_, err := parseConf([]byte("title: Example\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "capsule_url")
}

func TestParseConfAuthor(t *testing.T) {
	conf, err := parseConf([]byte(`
capsule_url: https://example.com/
title: Example
author:
  name: Ada
  email: ada@example.com
  uri: https://ada.example.com/
`))
	require.NoError(t, err)

	require.NotNil(t, conf.Author)
	assert.Equal(t, "Ada", conf.Author.Name)
	assert.Equal(t, "ada@example.com", conf.Author.Email)
	assert.Equal(t, "https://ada.example.com/", conf.Author.URI)
}

func TestParseConfInvalidYAML(t *testing.T) {
	_, err := parseConf([]byte("title: [unterminated\n"))

	assert.Error(t, err)
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "/base/rel", normalizePath("rel", "/base"))
	assert.Equal(t, "/abs/path", normalizePath("/abs/path", "/base"))
}
