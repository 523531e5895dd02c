package server

import (
	"bytes"
	"embed"
	"net/http"

	"github.com/vango-dev/multislider/pkg/assets"
	"github.com/vango-dev/multislider/pkg/render"
	"github.com/vango-dev/multislider/pkg/vdom"
)

//go:embed static
var staticFS embed.FS

const assetsPrefix = "/assets/"

func newBundle() (*assets.Bundle, error) {
	b := assets.NewBundle(assetsPrefix)
	if err := b.AddFS(staticFS, "static/client.js", "static/demo.css"); err != nil {
		return nil, err
	}
	return b, nil
}

// page renders the demo document with fresh host state. The browser
// replaces each mount once its websocket session sends the first render.
func (s *Server) page() ([]byte, error) {
	hosts, err := newHosts(s.cfg.Demo.Sliders, hostDeps{logger: s.logger})
	if err != nil {
		return nil, err
	}

	body := vdom.Main(
		vdom.H1(s.cfg.Demo.Title),
		vdom.Range(hosts, func(h host, _ int) *vdom.VNode {
			return vdom.Div(
				vdom.Data("demo", h.ID()),
				vdom.If(h.Label() != "", vdom.P(h.Label())),
				vdom.Div(vdom.Data("mount", h.ID()), h.Render()),
				vdom.Div(vdom.Data("values", h.ID())),
			)
		}),
	)

	var buf bytes.Buffer
	r := render.NewRenderer(render.RendererConfig{})
	err = r.RenderPage(&buf, render.PageOptions{
		Title:       s.cfg.Demo.Title,
		Stylesheets: []string{s.assets.Asset("demo.css")},
		Scripts:     []string{s.assets.Asset("client.js")},
		Body:        body,
	})
	return buf.Bytes(), err
}

func (s *Server) handlePage(w http.ResponseWriter, _ *http.Request) {
	html, err := s.page()
	if err != nil {
		s.logger.Error("page render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}
