package web

import (
	"html/template"
	"net/http"

	"github.com/FeMonky/Impact-Prognasticator/internal/domain"
)

// The page keeps the brass-and-wood look of the original cogitator UI, but
// all scoring happens server-side through the JSON API.
var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>The Aetheric Impact Prognosticator</title>
<style>
  :root { --bronze:#8B4513; --copper:#B87333; --brass:#D4AF37; --dark-wood:#3A241D; --off-white:#F5F5DC; }
  body { background:var(--dark-wood); color:var(--off-white); font-family:Georgia,serif; max-width:720px; margin:2em auto; padding:0 1em; }
  h1 { text-align:center; color:var(--brass); }
  fieldset { border:2px solid var(--bronze); background:#4a302a; border-radius:5px; padding:1em; margin-bottom:1em; }
  button { background:var(--bronze); color:var(--off-white); border:2px solid var(--copper); padding:.5em 1.5em; font-size:1.1em; cursor:pointer; }
  button:hover { background:var(--copper); }
  select, input[type=file] { background:var(--off-white); color:var(--dark-wood); padding:.3em; }
  #verdict { text-align:center; padding:1em; border:4px solid var(--brass); border-radius:8px; margin-top:1em; display:none; }
  #verdict.SURVIVES { background:#2E4638; } #verdict.DAMAGED { background:#5A4D2B; } #verdict.SHATTERS { background:#5A2B2B; }
  .disclaimer { font-size:.85em; color:#b0a88f; margin-top:2em; }
</style>
</head>
<body>
<h1>⚙️ The Aetheric Impact Prognosticator ⚙️</h1>
<p>Present your G-code schematics, select the material composition and the anticipated
kinetic force to receive a calculated prognosis of structural integrity.</p>
<form id="form">
  <fieldset>
    <label>G-code file <input type="file" name="gcode" accept=".gcode" required></label><br><br>
    <label>Material
      <select name="material">
        {{range .Materials}}<option>{{.}}</option>{{end}}
      </select>
    </label>
    <label>Impact level
      <select name="impact">
        {{range .Impacts}}<option{{if eq . $.DefaultImpact}} selected{{end}}>{{.}}</option>{{end}}
      </select>
    </label><br><br>
    <button type="submit">Analyze Impact Resistance</button>
  </fieldset>
</form>
<div id="verdict"></div>
<pre id="details"></pre>
<p class="disclaimer">Disclaimer: this is a simplified model and not a substitute for
real-world testing or professional engineering analysis (FEA).</p>
<script>
document.getElementById('form').addEventListener('submit', async (e) => {
  e.preventDefault();
  const resp = await fetch('/api/analyze', { method: 'POST', body: new FormData(e.target) });
  const data = await resp.json();
  const v = document.getElementById('verdict');
  v.style.display = 'block';
  if (!resp.ok) { v.className = 'SHATTERS'; v.textContent = data.error; return; }
  v.className = data.verdict;
  v.innerHTML = '<h2>' + data.verdict + '</h2><p>' + data.rationale + '</p>';
  document.getElementById('details').textContent = JSON.stringify(data, null, 2);
});
</script>
</body>
</html>
`))

type indexData struct {
	Materials     []string
	Impacts       []string
	DefaultImpact string
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := indexTmpl.Execute(w, indexData{
		Materials:     domain.MaterialNames(),
		Impacts:       domain.ImpactNames(),
		DefaultImpact: domain.DefaultImpactLevel,
	})
	if err != nil {
		s.log.WithError(err).Error("rendering index")
	}
}
