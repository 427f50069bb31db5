package views

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	g "maragu.dev/gomponents"
)

// Raw HTML in the source is dropped; the renderer is not in unsafe mode.
var md = goldmark.New(
	goldmark.WithExtensions(extension.Linkify, extension.Typographer),
)

// Markdown renders src as HTML. If conversion fails the source is shown
// as escaped text.
func Markdown(src string) g.Node {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return g.Text(src)
	}
	return g.Raw(buf.String())
}
