// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package export

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"sync"

	"github.com/fortlewis-ir/summit/internal/webui"
)

func init() {
	RegisterFormatter(&HTMLFormatter{})
}

// HTMLFormatter writes the snapshot as one self-contained HTML page with
// every tab's layout inlined. Only Plotly comes from the network.
type HTMLFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*HTMLFormatter)(nil)

// Name returns the format name.
func (h *HTMLFormatter) Name() string { return "html" }

// Ext returns the output file extension.
func (h *HTMLFormatter) Ext() string { return ".html" }

var (
	snapTmplOnce sync.Once
	snapTmpl     *template.Template
)

// Format writes the snapshot to w.
func (h *HTMLFormatter) Format(snap *Snapshot, w io.Writer) error {
	snapTmplOnce.Do(func() {
		snapTmpl = template.Must(template.New("snapshot").Funcs(template.FuncMap{
			"json": func(v any) template.JS {
				b, _ := json.Marshal(v)
				return template.JS(b) //nolint:gosec // intentional unescaped embedding
			},
		}).Parse(snapshotTemplate))
	})

	data := struct {
		Title       string
		GeneratedAt string
		Tabs        []Tab
		PlotlyCDN   string
		CSS         template.CSS
		Renderer    template.JS
	}{
		Title:       snap.Title,
		GeneratedAt: snap.GeneratedAt.Format("2006-01-02 15:04 MST"),
		Tabs:        snap.Tabs,
		PlotlyCDN:   webui.PlotlyCDN,
		CSS:         template.CSS(webui.CSS),
		Renderer:    template.JS(webui.RendererJS), //nolint:gosec // compiled-in asset
	}
	if err := snapTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("execute snapshot template: %w", err)
	}
	return nil
}

const snapshotTemplate = `<!DOCTYPE html>
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
  <p>Snapshot generated {{.GeneratedAt}}</p>
</header>
<nav class="tabs" id="tabs"></nav>
<main><div id="content"></div></main>
<footer>Static snapshot &middot; download links require the live server</footer>
<script>{{.Renderer}}</script>
<script>
var SNAPSHOT = {{json .Tabs}};
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
    for (var j = 0; j < SNAPSHOT.length; j++) {
      if (SNAPSHOT[j].id === id) { renderLayout(content, SNAPSHOT[j].layout); }
    }
  }

  var lastPhase = null;
  SNAPSHOT.forEach(function (tab) {
    if (tab.phase !== lastPhase) {
      nav.appendChild(el("span", "phase", tab.phase));
      lastPhase = tab.phase;
    }
    var a = el("a", "", tab.label);
    a.href = "#" + tab.id;
    a.setAttribute("data-tab", tab.id);
    a.onclick = function () { selectTab(tab.id); };
    nav.appendChild(a);
  });
  selectTab(SNAPSHOT[0].id);
})();
</script>
</body>
</html>
`
