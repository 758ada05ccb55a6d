// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/gdpscope/core/internal/chart"
	"github.com/gdpscope/core/internal/logging"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Gross Domestic Product Through Time</title>
<style>
div.tooltip { position: absolute; pointer-events: none; background: #fff; border: 1px solid #ccc; border-radius: 4px; opacity: 0; }
p.notice { font-family: sans-serif; color: #a33; }
</style>
</head>
<body>
{{if .Empty}}<p class="notice">No data for {{.Selected}}.</p>
{{end}}{{.MainSVG}}
<form method="get" action="/">
<select name="country" onchange="this.form.submit()">
{{range .Countries}}<option{{if eq . $.Selected}} selected{{end}}>{{.}}</option>
{{end}}</select>
<noscript><button type="submit">Show</button></noscript>
</form>
<div class="tooltip" id="tooltip">{{.TooltipSVG}}</div>
<script>
(function () {
  var tip = document.getElementById("tooltip");
  function run(el, ev) {
    var d = el.dataset;
    tip.style.transition = "opacity " + d[ev + "Ms"] + "ms";
    tip.style.opacity = d[ev + "Opacity"];
    if (d[ev] === "show") {
      var box = el.ownerSVGElement.getBoundingClientRect();
      tip.style.left = (box.left + window.scrollX + parseFloat(d[ev + "X"])) + "px";
      tip.style.top = (box.top + window.scrollY + parseFloat(d[ev + "Y"])) + "px";
    }
  }
  document.querySelectorAll("circle[data-enter]").forEach(function (el) {
    el.addEventListener("mouseover", function () { run(el, "enter"); });
    el.addEventListener("mouseout", function () { run(el, "leave"); });
  });
})();
</script>
</body>
</html>
`))

var errorTemplate = template.Must(template.New("error").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Dataset unavailable</title></head>
<body>
<h1>Dataset unavailable</h1>
<p>{{.}}</p>
</body>
</html>
`))

type indexPage struct {
	Countries  []string
	Selected   string
	Empty      bool
	MainSVG    template.HTML
	TooltipSVG template.HTML
}

// IndexHandler serves the page with the drop-down and both charts. When the
// dataset failed to load the page shows the error instead.
func (h *Handler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if h.loadErr != nil || h.app == nil {
		msg := "no dataset loaded"
		if h.loadErr != nil {
			msg = h.loadErr.Error()
		}
		renderHTML(w, errorTemplate, msg, http.StatusServiceUnavailable)
		return
	}

	surface := chart.NewSVGSurface(h.app.MainOptions())
	state, ok := h.selectCountry(w, r, surface)
	if !ok {
		return
	}

	renderHTML(w, indexTemplate, indexPage{
		Countries:  h.app.ListDistinctCountries(),
		Selected:   state.Country,
		Empty:      state.Empty(),
		MainSVG:    template.HTML(surface.Bytes()),
		TooltipSVG: template.HTML(h.app.TooltipSVG()),
	}, http.StatusOK)
}

func renderHTML(w http.ResponseWriter, tmpl *template.Template, data any, status int) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		logging.Logger().Error("failed to render page", "template", tmpl.Name(), "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logging.Logger().Error("failed to write page", "error", err)
	}
}
