// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

// Package webui holds the frontend assets shared by the live server and the
// HTML export: the dashboard stylesheet and the client-side layout renderer.
// Charts are delegated to Plotly loaded from its CDN; the renderer passes
// each chart's traces and layout straight to Plotly.newPlot after merging
// the brand template.
package webui

// PlotlyCDN is the script tag source for the pinned Plotly build.
const PlotlyCDN = "https://cdn.plot.ly/plotly-2.35.2.min.js"

// CSS is the dashboard stylesheet, built around the institutional palette.
const CSS = `
:root {
  --navy: #003057; --blue: #0066b3; --blue-light: #2a8fd4; --gold: #c8a415;
  --bg: #f5f8fb; --card-bg: #ffffff; --border: #c8daea; --pale: #d6e8f7;
  --wash: #eaf2fa; --muted: #718096; --fg: #1a2733;
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; }
header.site { background: var(--navy); color: #fff; padding: 1rem 1.5rem; }
header.site h1 { font-size: 1.25rem; font-weight: 600; }
header.site p { color: var(--pale); font-size: .8125rem; }
nav.tabs { display: flex; flex-wrap: wrap; gap: .25rem; background: var(--navy); padding: 0 1rem .5rem; }
nav.tabs a { color: var(--pale); text-decoration: none; font-size: .8125rem; padding: .375rem .75rem; border-radius: 6px 6px 0 0; }
nav.tabs a.active { background: var(--bg); color: var(--navy); font-weight: 600; }
nav.tabs a:hover:not(.active) { background: rgba(255,255,255,.12); }
nav.tabs .phase { color: var(--gold); font-size: .6875rem; text-transform: uppercase; align-self: center; margin: 0 .375rem; }
main { max-width: 1400px; margin: 0 auto; padding: 1.25rem; }
h2.tab-heading { color: var(--navy); font-size: 1.375rem; margin-bottom: .5rem; }
p.description { color: var(--muted); font-size: .875rem; max-width: 64rem; margin-bottom: 1rem; }
.source-badge { display: inline-block; background: var(--wash); border: 1px solid var(--border); border-radius: 6px; padding: .375rem .625rem; font-size: .75rem; color: var(--navy); margin-bottom: 1rem; }
.source-badge .files { color: var(--muted); }
.downloads { display: flex; gap: .5rem; flex-wrap: wrap; margin-bottom: 1.25rem; }
.downloads a { background: var(--blue); color: #fff; text-decoration: none; font-size: .8125rem; padding: .4375rem .875rem; border-radius: 6px; }
.downloads a:hover { background: var(--navy); }
.downloads span.disabled { background: var(--border); color: var(--muted); font-size: .8125rem; padding: .4375rem .875rem; border-radius: 6px; cursor: not-allowed; }
.stat-cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(160px, 1fr)); gap: .75rem; margin-bottom: 1.25rem; }
.stat-card { background: var(--card-bg); border: 1px solid var(--border); border-top: 3px solid var(--navy); border-radius: 8px; padding: .75rem; }
.stat-card .value { font-size: 1.5rem; font-weight: 700; color: var(--navy); }
.stat-card .label { font-size: .6875rem; color: var(--muted); text-transform: uppercase; letter-spacing: .03em; }
.stat-card .sub { font-size: .75rem; color: var(--muted); }
.chart-row { display: grid; grid-template-columns: repeat(auto-fit, minmax(420px, 1fr)); gap: 1rem; margin-bottom: 1.25rem; }
.chart-box { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: 1rem; }
.chart-box h3 { color: var(--navy); font-size: .875rem; margin-bottom: .5rem; }
.chart-box .chart-source { color: var(--muted); font-size: .6875rem; margin-top: .25rem; }
.table-block { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: 1rem; margin-bottom: 1.25rem; overflow-x: auto; }
.table-block h3 { color: var(--navy); font-size: .9375rem; margin-bottom: .625rem; }
table.data { width: 100%; border-collapse: collapse; font-size: .8125rem; }
table.data th { background: var(--navy); color: #fff; padding: .4375rem .625rem; text-align: left; white-space: nowrap; cursor: pointer; user-select: none; }
table.data th.sort-asc::after { content: " \2191"; color: var(--gold); }
table.data th.sort-desc::after { content: " \2193"; color: var(--gold); }
table.data td { padding: .4375rem .625rem; border-bottom: 1px solid var(--border); }
table.data tr.note-row td { color: var(--muted); font-size: .75rem; background: var(--wash); }
table.data .align-right { text-align: right; }
table.data .align-center { text-align: center; }
.card-grid { display: grid; gap: 1rem; margin-bottom: 1.25rem; }
.card-grid.cols-2 { grid-template-columns: repeat(auto-fit, minmax(440px, 1fr)); }
.card-grid.cols-3 { grid-template-columns: repeat(auto-fit, minmax(320px, 1fr)); }
.panel { background: var(--card-bg); border: 1px solid var(--border); border-left: 4px solid var(--navy); border-radius: 8px; padding: 1rem; }
.panel h3 { color: var(--navy); font-size: 1rem; margin-bottom: .375rem; }
.panel .tag { color: var(--muted); font-weight: 400; font-size: .75rem; margin-left: .375rem; }
.panel .icon { display: inline-flex; align-items: center; justify-content: center; width: 1.625rem; height: 1.625rem; border-radius: 50%; color: #fff; font-weight: 700; font-size: .875rem; margin-right: .5rem; }
.panel .badges { margin-bottom: .5rem; }
.panel .badge { display: inline-block; color: #fff; font-size: .6875rem; padding: .1875rem .5rem; border-radius: 99px; margin-right: .375rem; }
.panel p.body { font-size: .8125rem; color: var(--fg); margin-bottom: .625rem; }
.panel h4 { font-size: .75rem; text-transform: uppercase; color: var(--muted); margin: .5rem 0 .25rem; }
.panel ul { padding-left: 1.125rem; font-size: .8125rem; }
.panel li { margin-bottom: .1875rem; }
.panel .item { border-bottom: 1px solid var(--wash); padding: .5rem 0; }
.panel .item:last-child { border-bottom: none; }
.panel .item b { font-size: .8125rem; }
.panel .item p { font-size: .8125rem; color: var(--fg); }
.panel .item .src { font-size: .6875rem; color: var(--muted); font-style: italic; }
.insights { background: var(--wash); border: 1px solid var(--border); border-radius: 8px; padding: 1rem; margin-bottom: 1.25rem; }
.insights h3 { color: var(--navy); font-size: .9375rem; margin-bottom: .5rem; }
.insights ul { padding-left: 1.25rem; font-size: .8125rem; }
.insights li { margin-bottom: .3125rem; }
.note { color: var(--muted); font-size: .8125rem; font-style: italic; margin-bottom: 1.25rem; }
footer { text-align: center; color: var(--muted); font-size: .75rem; padding: 1.5rem 0; }
`

// RendererJS renders a layout object into #content and draws its charts.
// It is plain ES5-era JavaScript with no dependencies beyond Plotly.
const RendererJS = `
var BRAND_LAYOUT = {
  font: { family: '-apple-system, "Segoe UI", Roboto, sans-serif', size: 12, color: "#1a2733" },
  paper_bgcolor: "rgba(0,0,0,0)",
  plot_bgcolor: "rgba(0,0,0,0)",
  colorway: ["#003057", "#0066b3", "#2a8fd4", "#5ba3d9", "#8cc0e8", "#b8d8f0"],
  margin: { t: 24, r: 24, b: 48, l: 56 },
  xaxis: { gridcolor: "#eaf2fa", linecolor: "#c8daea" },
  yaxis: { gridcolor: "#eaf2fa", linecolor: "#c8daea" }
};

function mergeLayout(overrides) {
  var out = {};
  var k;
  for (k in BRAND_LAYOUT) { out[k] = BRAND_LAYOUT[k]; }
  for (k in (overrides || {})) {
    if ((k === "xaxis" || k === "yaxis") && out[k]) {
      var merged = {};
      var kk;
      for (kk in out[k]) { merged[kk] = out[k][kk]; }
      for (kk in overrides[k]) { merged[kk] = overrides[k][kk]; }
      out[k] = merged;
    } else {
      out[k] = overrides[k];
    }
  }
  return out;
}

function el(tag, cls, text) {
  var e = document.createElement(tag);
  if (cls) { e.className = cls; }
  if (text !== undefined) { e.textContent = text; }
  return e;
}

function renderChart(parent, chart) {
  var box = el("div", "chart-box");
  if (chart.title) { box.appendChild(el("h3", "", chart.title)); }
  var target = el("div", "");
  if (chart.height) { target.style.height = chart.height + "px"; }
  box.appendChild(target);
  if (chart.source) { box.appendChild(el("div", "chart-source", chart.source)); }
  parent.appendChild(box);
  Plotly.newPlot(target, chart.traces, mergeLayout(chart.layout), { responsive: true, displayModeBar: false });
}

// cellSortValue extracts a numeric key from formatted cell text, or null
// when the cell is not a number. Commas, percent signs, units, and the
// trend glyph prefix are stripped first.
function cellSortValue(text) {
  var cleaned = String(text).replace(/^[v^-] /, "").replace(/[,%$]/g, "").replace(/ (pp|students|programs|degrees)$/, "");
  if (!/^[+-]?[0-9.]+$/.test(cleaned)) { return null; }
  var n = parseFloat(cleaned);
  return isNaN(n) ? null : n;
}

function compareCells(a, b) {
  var na = cellSortValue(a);
  var nb = cellSortValue(b);
  if (na !== null && nb !== null) { return na - nb; }
  return String(a) < String(b) ? -1 : (String(a) > String(b) ? 1 : 0);
}

function renderTable(parent, title, table) {
  var wrap = el("div", "table-block");
  if (title) { wrap.appendChild(el("h3", "", title)); }
  var t = el("table", "data");
  var thead = el("thead", "");
  var hr = el("tr", "");
  var ths = [];
  table.columns.forEach(function (col) {
    var th = el("th", col.align ? "align-" + col.align : "", col.title);
    ths.push(th);
    hr.appendChild(th);
  });
  thead.appendChild(hr);
  t.appendChild(thead);
  var tbody = el("tbody", "");
  // Each group carries a data row plus its optional note row, so sorting
  // keeps notes attached to their rows.
  var groups = [];
  table.rows.forEach(function (row) {
    var tr = el("tr", "");
    if (row.color) { tr.style.background = row.color; }
    row.cells.forEach(function (cell, i) {
      var col = table.columns[i] || {};
      var td = el("td", col.align ? "align-" + col.align : "", cell);
      if (row.colors && row.colors[i]) {
        td.style.color = row.colors[i];
        td.style.fontWeight = "600";
      }
      tr.appendChild(td);
    });
    var group = { cells: row.cells, trs: [tr] };
    if (row.note) {
      var nr = el("tr", "note-row");
      var td2 = el("td", "", row.note);
      td2.colSpan = table.columns.length;
      nr.appendChild(td2);
      group.trs.push(nr);
    }
    groups.push(group);
  });
  function appendGroups() {
    groups.forEach(function (g) {
      g.trs.forEach(function (tr) { tbody.appendChild(tr); });
    });
  }
  appendGroups();
  var sortCol = -1;
  var sortAsc = true;
  ths.forEach(function (th, i) {
    th.addEventListener("click", function () {
      sortAsc = sortCol === i ? !sortAsc : true;
      sortCol = i;
      ths.forEach(function (other) {
        other.className = other.className.replace(/ sort-(asc|desc)/g, "");
      });
      th.className += sortAsc ? " sort-asc" : " sort-desc";
      groups.sort(function (a, b) {
        return compareCells(a.cells[i], b.cells[i]) * (sortAsc ? 1 : -1);
      });
      appendGroups();
    });
  });
  t.appendChild(tbody);
  wrap.appendChild(t);
  parent.appendChild(wrap);
}

function renderCard(parent, card) {
  var panel = el("div", "panel");
  if (card.accent) { panel.style.borderLeftColor = card.accent; }
  var h = el("h3", "");
  if (card.icon) {
    var icon = el("span", "icon", card.icon);
    icon.style.background = card.accent || "#003057";
    h.appendChild(icon);
  }
  h.appendChild(document.createTextNode(card.title));
  if (card.tag) { h.appendChild(el("span", "tag", card.tag)); }
  panel.appendChild(h);
  if (card.badges && card.badges.length) {
    var badges = el("div", "badges");
    card.badges.forEach(function (b) {
      var badge = el("span", "badge", b.text);
      badge.style.background = b.color;
      badges.appendChild(badge);
    });
    panel.appendChild(badges);
  }
  if (card.body) { panel.appendChild(el("p", "body", card.body)); }
  (card.items || []).forEach(function (item) {
    var div = el("div", "item");
    div.appendChild(el("b", "", item.title));
    div.appendChild(el("p", "", item.detail));
    if (item.source) { div.appendChild(el("div", "src", "Source: " + item.source)); }
    panel.appendChild(div);
  });
  (card.lists || []).forEach(function (list) {
    var h4 = el("h4", "", list.title);
    if (list.color) { h4.style.color = list.color; }
    panel.appendChild(h4);
    var ul = el("ul", "");
    list.items.forEach(function (li) { ul.appendChild(el("li", "", li)); });
    panel.appendChild(ul);
  });
  if (card.table) { renderTable(panel, "", card.table); }
  if (card.chart) { renderChart(panel, card.chart); }
  parent.appendChild(panel);
}

function renderBlock(root, block) {
  switch (block.type) {
    case "heading":
      root.appendChild(el("h2", "tab-heading", block.text));
      break;
    case "description":
      root.appendChild(el("p", "description", block.text));
      break;
    case "source_badge":
      var badge = el("div", "source-badge");
      badge.appendChild(el("b", "", "Source: " + block.source));
      if (block.detail) { badge.appendChild(el("div", "files", block.detail)); }
      root.appendChild(badge);
      break;
    case "downloads":
      var dl = el("div", "downloads");
      (block.downloads || []).forEach(function (d) {
        if (d.available) {
          var a = el("a", "", d.label);
          a.href = "downloads/" + encodeURIComponent(d.name);
          dl.appendChild(a);
        } else {
          var span = el("span", "disabled", d.label + " (not generated)");
          dl.appendChild(span);
        }
      });
      root.appendChild(dl);
      break;
    case "stat_cards":
      var grid = el("div", "stat-cards");
      (block.stats || []).forEach(function (s) {
        var card = el("div", "stat-card");
        if (s.accent) { card.style.borderTopColor = s.accent; }
        card.appendChild(el("div", "label", s.label));
        card.appendChild(el("div", "value", s.value));
        if (s.sub) { card.appendChild(el("div", "sub", s.sub)); }
        grid.appendChild(card);
      });
      root.appendChild(grid);
      break;
    case "chart_row":
      var row = el("div", "chart-row");
      (block.charts || []).forEach(function (c) { renderChart(row, c); });
      root.appendChild(row);
      break;
    case "table":
      renderTable(root, block.title, block.table);
      break;
    case "cards":
      var cols = block.columns === 3 ? "cols-3" : "cols-2";
      var cards = el("div", "card-grid " + cols);
      (block.cards || []).forEach(function (c) { renderCard(cards, c); });
      root.appendChild(cards);
      break;
    case "insights":
      var box = el("div", "insights");
      box.appendChild(el("h3", "", block.title || "Key Insights"));
      var ul = el("ul", "");
      (block.items || []).forEach(function (item) { ul.appendChild(el("li", "", item)); });
      box.appendChild(ul);
      root.appendChild(box);
      break;
    case "note":
      root.appendChild(el("p", "note", block.text));
      break;
  }
}

function renderLayout(root, layout) {
  root.innerHTML = "";
  (layout.blocks || []).forEach(function (b) { renderBlock(root, b); });
}
`
