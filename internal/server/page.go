// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package server

import (
	"html/template"
	"log/slog"
	"net/http"
	"sync"

	"github.com/fortlewis-ir/summit/internal/webui"
)

var (
	indexTmplOnce sync.Once
	indexTmpl     *template.Template
)

// indexData holds template data for the single-page shell.
type indexData struct {
	Title     string
	PlotlyCDN string
	CSS       template.CSS
	Renderer  template.JS
	App       template.JS
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	indexTmplOnce.Do(func() {
		indexTmpl = template.Must(template.New("index").Parse(indexTemplate))
	})

	data := indexData{
		Title:     s.opts.Title,
		PlotlyCDN: webui.PlotlyCDN,
		CSS:       template.CSS(webui.CSS),
		Renderer:  template.JS(webui.RendererJS), //nolint:gosec // compiled-in asset
		App:       template.JS(appJS),            //nolint:gosec // compiled-in asset
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		slog.Warn("rendering index", "error", err)
	}
}

const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<script src="{{.PlotlyCDN}}"></script>
<style>{{.CSS}}</style>
</head>
<body>
<header class="site">
  <h1>{{.Title}}</h1>
  <p>Strategic Planning &amp; Program Portfolio Analysis</p>
</header>
<nav class="tabs" id="tabs"></nav>
<main><div id="content"><p class="note">Loading&hellip;</p></div></main>
<footer>Office of Institutional Research &middot; data through Fall 2025 census</footer>
<script>{{.Renderer}}</script>
<script>{{.App}}</script>
</body>
</html>
`

// appJS is the live-page controller: it loads the tab list, wires hash
// routing, and fetches each layout on demand.
const appJS = `
(function () {
  var nav = document.getElementById("tabs");
  var content = document.getElementById("content");
  var current = null;

  function selectTab(id) {
    if (id === current) { return; }
    current = id;
    var links = nav.querySelectorAll("a");
    for (var i = 0; i < links.length; i++) {
      links[i].className = links[i].getAttribute("data-tab") === id ? "active" : "";
    }
    fetch("api/tabs/" + encodeURIComponent(id))
      .then(function (res) {
        if (!res.ok) { throw new Error("HTTP " + res.status); }
        return res.json();
      })
      .then(function (layout) { renderLayout(content, layout); })
      .catch(function (err) {
        content.innerHTML = "";
        content.appendChild(el("p", "note", "Failed to load tab: " + err.message));
      });
  }

  function buildNav(tabs) {
    var lastPhase = null;
    tabs.forEach(function (tab) {
      if (tab.phase !== lastPhase) {
        nav.appendChild(el("span", "phase", tab.phase));
        lastPhase = tab.phase;
      }
      var a = el("a", "", tab.label);
      a.href = "#" + tab.id;
      a.setAttribute("data-tab", tab.id);
      nav.appendChild(a);
    });
    var initial = window.location.hash.slice(1);
    var known = tabs.some(function (t) { return t.id === initial; });
    selectTab(known ? initial : tabs[0].id);
  }

  window.addEventListener("hashchange", function () {
    var id = window.location.hash.slice(1);
    if (id) { selectTab(id); }
  });

  fetch("api/tabs")
    .then(function (res) { return res.json(); })
    .then(buildNav)
    .catch(function (err) {
      content.innerHTML = "";
      content.appendChild(el("p", "note", "Failed to load dashboard: " + err.message));
    });
})();
`
