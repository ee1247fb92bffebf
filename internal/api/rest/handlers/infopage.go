package handlers

import "html/template"

// infoPage renders the short link info card. Values are escaped by html/template.
var infoPage = template.Must(template.New("info").Parse(`<!doctype html>
<html>
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width,initial-scale=1"/>
    <title>Short URL Info</title>
    <style>
      body{font-family:Inter,system-ui,Arial;display:flex;align-items:center;justify-content:center;height:100vh;margin:0;background:#f0f4f8}
      .card{background:#fff;padding:24px;border-radius:12px;box-shadow:0 6px 20px rgba(18,38,63,0.08);max-width:520px;text-align:center}
      a.button{display:inline-block;margin-top:12px;padding:10px 18px;border-radius:8px;background:#0066cc;color:#fff;text-decoration:none}
      p.small{color:#666;font-size:14px}
    </style>
  </head>
  <body>
    <div class="card">
      <h2>Short URL Info</h2>
      <p class="small">Created at: {{.CreatedAt}}</p>
      <p>Original URL:</p>
      <p><a href="{{.URL}}" target="_blank" rel="noopener noreferrer">{{.URL}}</a></p>
      <a class="button" href="{{.URL}}">Visit Original ▶</a>
    </div>
  </body>
</html>
`))

type infoPageData struct {
	URL       string
	CreatedAt string
}
