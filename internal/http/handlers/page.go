package handlers

import (
	"bytes"
	"html/template"
	"net/http"
	"strings"

	"journalguru/internal/domain"
	"journalguru/internal/formstate"
	"journalguru/internal/metrics"
)

type selectField struct {
	Name     string
	Label    string
	Prompt   string
	Options  []domain.Option
	Selected string
}

type indexPageData struct {
	Fields   []selectField
	Rendered string
	Missing  []string
}

var indexPageTmpl = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Journal Prompt Generator</title>
    <style>
      body { margin: 0; font-family: ui-sans-serif, system-ui, sans-serif; background: linear-gradient(135deg, #eff6ff, #e0e7ff); color: #1f2937; }
      main { max-width: 48rem; margin: 2rem auto; background: #fff; border-radius: .5rem; box-shadow: 0 12px 30px rgba(0,0,0,.12); padding: 2rem; }
      h1 { text-align: center; margin-top: 0; }
      label { display: block; font-weight: 600; margin: 1rem 0 .4rem; }
      select { width: 100%; padding: .5rem; border-radius: .5rem; border: 1px solid #d1d5db; }
      .actions { display: flex; gap: .5rem; margin-top: 1.5rem; }
      button, .button { flex: 1; text-align: center; text-decoration: none; color: inherit; padding: .75rem; border: 0; border-radius: .5rem; font-weight: 600; cursor: pointer; }
      .primary { background: #4f46e5; color: #fff; }
      .secondary { background: #e5e7eb; }
      .warn { background: #fef3c7; border: 1px solid #fbbf24; padding: .75rem; border-radius: .5rem; margin-top: 1rem; }
      pre { white-space: pre-wrap; background: #f9fafb; border: 2px solid #e5e7eb; border-radius: .5rem; padding: 1rem; font-size: .9rem; }
      .hint { font-style: italic; color: #4b5563; font-size: .9rem; }
    </style>
  </head>
  <body>
    <main>
      <h1>Journal Prompt Generator</h1>
      <p class="hint">Create personalized journal prompts tailored to your life situation and philosophical perspective</p>
      <form method="post" action="/" id="prompt-form">
        {{range .Fields}}
        <label for="{{.Name}}">{{.Label}}</label>
        <select id="{{.Name}}" name="{{.Name}}">
          <option value="">{{.Prompt}}</option>
          {{$selected := .Selected}}
          {{range .Options}}<option value="{{.Value}}"{{if eq .Value $selected}} selected{{end}}>{{.Label}}</option>{{end}}
        </select>
        {{end}}
        {{if .Missing}}
        <div class="warn" role="alert">Please fill out all fields before generating your prompt. Missing: {{range $i, $m := .Missing}}{{if $i}}, {{end}}{{$m}}{{end}}</div>
        {{end}}
        <div class="actions">
          <button class="primary" type="submit">Generate LLM Prompt</button>
          <button class="secondary" type="button" id="generate-remote">Generate Journal Prompts</button>
        </div>
      </form>
      {{if .Rendered}}
      <section id="result">
        <h2>Your Custom LLM Prompt</h2>
        <pre id="rendered">{{.Rendered}}</pre>
        <div class="actions">
          <button class="secondary" type="button" id="copy">Copy</button>
          <a class="secondary button" href="/">Create Another Prompt</a>
        </div>
        <p class="hint">Copy this prompt and paste it into your favorite LLM to receive your personalized journal prompts.</p>
      </section>
      {{end}}
      <section id="remote" hidden>
        <h2>Your Journal Prompts</h2>
        <pre id="remote-text"></pre>
      </section>
    </main>
    <script>
      const copyButton = document.getElementById("copy");
      let copiedTimer;
      if (copyButton) {
        copyButton.addEventListener("click", async () => {
          await navigator.clipboard.writeText(document.getElementById("rendered").textContent);
          copyButton.textContent = "Copied!";
          clearTimeout(copiedTimer);
          copiedTimer = setTimeout(() => { copyButton.textContent = "Copy"; }, 2000);
        });
      }
      document.getElementById("generate-remote").addEventListener("click", async () => {
        const data = Object.fromEntries(new FormData(document.getElementById("prompt-form")));
        const out = document.getElementById("remote-text");
        document.getElementById("remote").hidden = false;
        out.textContent = "Generating...";
        const res = await fetch("/api/generate-prompts", {
          method: "POST",
          headers: { "Content-Type": "application/json" },
          body: JSON.stringify(data),
        });
        const body = await res.json();
        out.textContent = res.ok ? body.prompts : body.error + (body.details ? ": " + body.details : "");
      });
    </script>
  </body>
</html>`))

func buildIndexPage(values domain.PromptRequest, rendered string, missing []string) indexPageData {
	return indexPageData{
		Fields: []selectField{
			{Name: "age", Label: "What is your age?", Prompt: "Select your age range", Options: domain.AgeOptions, Selected: values.Age},
			{Name: "issue", Label: "What issue are you hoping to explore with journal prompts?", Prompt: "Select an issue to explore", Options: domain.SituationOptions, Selected: values.Situation},
			{Name: "lens", Label: "What lens would you like the prompts to take on?", Prompt: "Select a philosophical lens", Options: domain.LensOptions, Selected: values.Lens},
			{Name: "style", Label: "What tone should the prompts have?", Prompt: "Select a style (optional)", Options: domain.StyleOptions, Selected: values.Style},
			{Name: "numPrompts", Label: "How many prompts would you like to start with?", Prompt: "Select number of prompts", Options: domain.CountOptions, Selected: values.Count},
		},
		Rendered: rendered,
		Missing:  missing,
	}
}

// Index renders the empty preference form.
func (a *App) Index(w http.ResponseWriter, r *http.Request) {
	a.renderIndex(w, r, buildIndexPage(domain.PromptRequest{}, "", nil))
}

// IndexSubmit renders the copy-paste instruction for the submitted form, or
// the form again with the missing fields listed.
func (a *App) IndexSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := formstate.New(nil, formstate.Options{Required: domain.StyleOptional})
	for _, field := range domain.Fields {
		key := domain.CanonicalScheme.Key(field)
		_ = form.SetField(key, strings.TrimSpace(r.PostForm.Get(key)))
	}
	result := form.Submit()
	if !result.OK {
		metrics.IncFormSubmission("incomplete")
		a.renderIndex(w, r, buildIndexPage(form.Values(), "", result.MissingNames()))
		return
	}
	metrics.IncFormSubmission("rendered")
	a.renderIndex(w, r, buildIndexPage(form.Values(), form.Rendered(), nil))
}

func (a *App) renderIndex(w http.ResponseWriter, r *http.Request, data indexPageData) {
	var buf bytes.Buffer
	if err := indexPageTmpl.Execute(&buf, data); err != nil {
		a.logger(r).Error().Err(err).Msg("failed to render index page")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
