package render

import (
	"io"

	"github.com/vango-dev/multislider/pkg/vdom"
)

// PageOptions describes a full HTML document.
type PageOptions struct {
	Title string
	// Stylesheets are linked from the head, in order.
	Stylesheets []string
	// Styles is inlined into a <style> element in the head.
	Styles string
	// Scripts are loaded at the end of the body, in order.
	Scripts []string
	// Script is inlined after Scripts.
	Script string
	Body   *vdom.VNode
}

// RenderPage writes a complete HTML5 document wrapping opts.Body.
func (r *Renderer) RenderPage(w io.Writer, opts PageOptions) error {
	pw := &pageWriter{w: w}
	pw.write("<!DOCTYPE html>\n<html lang=\"en\"><head><meta charset=\"utf-8\"><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">")
	if opts.Title != "" {
		pw.write("<title>" + escapeHTML(opts.Title) + "</title>")
	}
	for _, href := range opts.Stylesheets {
		pw.write(`<link rel="stylesheet" href="` + escapeAttr(href) + `">`)
	}
	if opts.Styles != "" {
		pw.write("<style>" + opts.Styles + "</style>")
	}
	pw.write("</head><body>")
	if pw.err != nil {
		return pw.err
	}

	if err := r.RenderToWriter(w, opts.Body); err != nil {
		return err
	}

	for _, src := range opts.Scripts {
		pw.write(`<script src="` + escapeAttr(src) + `"></script>`)
	}
	if opts.Script != "" {
		pw.write("<script>" + opts.Script + "</script>")
	}
	pw.write("</body></html>")
	return pw.err
}

// pageWriter keeps the first write error.
type pageWriter struct {
	w   io.Writer
	err error
}

func (p *pageWriter) write(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}
