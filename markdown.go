package main

import (
	"github.com/russross/blackfriday/v2"
)

// renderer turns an entry's source body into its rendered form.
type renderer interface {
	render(in []byte) string
}

var htmlFlags blackfriday.HTMLFlags
var extensions blackfriday.Extensions

func init() {
	htmlFlags |= blackfriday.UseXHTML
	htmlFlags |= blackfriday.Smartypants
	htmlFlags |= blackfriday.SmartypantsFractions
	htmlFlags |= blackfriday.SmartypantsLatexDashes

	extensions |= blackfriday.NoIntraEmphasis
	extensions |= blackfriday.Tables
	extensions |= blackfriday.FencedCode
	extensions |= blackfriday.Autolink
	extensions |= blackfriday.Strikethrough
}

func newMarkdownRenderer() renderer {
	r := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{Flags: htmlFlags})
	return &blackfridayHTMLRenderer{r, extensions}
}

type blackfridayHTMLRenderer struct {
	r          blackfriday.Renderer
	extensions blackfriday.Extensions
}

func (b *blackfridayHTMLRenderer) render(in []byte) string {
	return string(blackfriday.Run(in, blackfriday.WithRenderer(b.r), blackfriday.WithExtensions(b.extensions)))
}
