package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type SiteConf struct {
	SiteTitle  string      `yaml:"title"`
	Subtitle   string      `yaml:"subtitle"`
	Rights     string      `yaml:"rights"`
	Lang       string      `yaml:"lang"`
	CapsuleURL string      `yaml:"capsule_url"`
	Author     *FeedAuthor `yaml:"author"`

	PostsDir       string `yaml:"posts_dir"`
	PagesDir       string `yaml:"pages_dir"`
	StaticFilesDir string `yaml:"static_dir"`

	PostTemplate  string `yaml:"post_template"`
	IndexTemplate string `yaml:"index_template"`
	TemplatesDir  string `yaml:"templates_dir"`

	OutDir           string `yaml:"out_dir"`
	CategoriesOutDir string `yaml:"categories_out_dir"`

	PostPath  string `yaml:"post_path"`
	PagePath  string `yaml:"page_path"`
	IndexPath string `yaml:"index_path"`
	FeedPath  string `yaml:"feed_path"`

	EntryFileExtension string `yaml:"entry_file_extension"`
}

func readConf(fileName string) *SiteConf {
	rawConf, err := os.ReadFile(fileName)
	if err != nil {
		log.Fatal(err)
	}

	conf, err := parseConf(rawConf)
	if err != nil {
		log.Fatal(err)
	}

	// Normalize relative paths because the executable can be called from
	// anywhere.
	baseDir := filepath.Dir(fileName)
	conf.PostsDir = normalizePath(conf.PostsDir, baseDir)
	conf.PagesDir = normalizePath(conf.PagesDir, baseDir)
	conf.StaticFilesDir = normalizePath(conf.StaticFilesDir, baseDir)
	conf.PostTemplate = normalizePath(conf.PostTemplate, baseDir)
	conf.IndexTemplate = normalizePath(conf.IndexTemplate, baseDir)
	conf.TemplatesDir = normalizePath(conf.TemplatesDir, baseDir)
	conf.OutDir = normalizePath(conf.OutDir, baseDir)

	return conf
}

func parseConf(rawConf []byte) (*SiteConf, error) {
	conf := SiteConf{}

	if err := yaml.Unmarshal(rawConf, &conf); err != nil {
		return nil, fmt.Errorf("invalid site configuration: %w", err)
	}

	if conf.CapsuleURL == "" {
		return nil, fmt.Errorf("site configuration needs a capsule_url")
	}
	if !strings.HasSuffix(conf.CapsuleURL, "/") {
		conf.CapsuleURL += "/"
	}

	// Populate with defaults.
	if conf.PostsDir == "" {
		conf.PostsDir = "posts"
	}
	if conf.PagesDir == "" {
		conf.PagesDir = "pages"
	}
	if conf.StaticFilesDir == "" {
		conf.StaticFilesDir = "static"
	}
	if conf.PostTemplate == "" {
		conf.PostTemplate = filepath.Join("templates", "post.tmpl")
	}
	if conf.IndexTemplate == "" {
		conf.IndexTemplate = filepath.Join("templates", "index.tmpl")
	}
	if conf.TemplatesDir == "" {
		conf.TemplatesDir = filepath.Join("templates", "pages")
	}
	if conf.OutDir == "" {
		conf.OutDir = "public"
	}
	if conf.CategoriesOutDir == "" {
		conf.CategoriesOutDir = "categories"
	}
	if conf.PostPath == "" {
		conf.PostPath = "posts/{{ year }}/{{ month }}/{{ slug }}.html"
	}
	if conf.PagePath == "" {
		conf.PagePath = "{% if breadcrumb %}{{ breadcrumb }}/{% endif %}{{ slug }}.html"
	}
	if conf.IndexPath == "" {
		conf.IndexPath = "index.html"
	}
	if conf.FeedPath == "" {
		conf.FeedPath = "atom.xml"
	}
	if conf.EntryFileExtension == "" {
		conf.EntryFileExtension = ".md"
	}

	return &conf, nil
}

func normalizePath(path, baseDir string) string {
	if !filepath.IsAbs(path) {
		absPath := filepath.Join(baseDir, path)
		return absPath
	}
	return path
}
