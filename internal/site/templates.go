package site

// layoutTemplate wraps every page in the shared header and footer. Pages
// supply a "content" block.
const layoutTemplate = `{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} | {{.Chrome.SiteName}}</title>
  <link rel="stylesheet" href="{{.StyleHref}}">
</head>
<body data-variant="{{.Variant}}">
  <header class="site-header">
    <div class="header-inner">
      <a class="brand" href="{{.Chrome.HomeHref}}">{{.Chrome.SiteName}}</a>
      <button class="menu-toggle" id="menu-toggle" aria-label="Toggle navigation" aria-controls="site-nav" aria-expanded="false">
        <svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <line x1="3" y1="6" x2="21" y2="6"/><line x1="3" y1="12" x2="21" y2="12"/><line x1="3" y1="18" x2="21" y2="18"/>
        </svg>
      </button>
      <nav class="site-nav collapsed" id="site-nav">
        <ul>
        {{- range .Chrome.Nav}}
          <li><a href="{{.Href}}"{{if .Active}} class="active" aria-current="page"{{end}}>{{.Name}}</a></li>
        {{- end}}
        </ul>
      </nav>
    </div>
  </header>
  <main class="page">
{{template "content" .}}
  </main>
  {{with .Chrome.Footer}}
  <footer class="site-footer">
    <div class="footer-grid">
      <section>
        <h4>Contact</h4>
        {{if .Contact.Href}}<p><a href="{{.Contact.Href}}">{{.Contact.Label}}</a></p>{{end}}
      </section>
      {{if .Links}}
      <section>
        <h4>Links</h4>
        <ul>
        {{- range .Links}}
          <li><a href="{{.Href}}"{{if .External}} target="_blank" rel="noopener noreferrer"{{end}}>{{.Label}}</a></li>
        {{- end}}
        </ul>
      </section>
      {{end}}
      <section>
        <h4>License</h4>
        <ul>
        {{- range .Licenses}}
          <li>{{.}}</li>
        {{- end}}
        </ul>
      </section>
    </div>
    <p class="copyright">&copy; {{.Year}} {{.Copyright}}</p>
    <p class="last-updated">Last updated: {{.LastUpdated}}</p>
  </footer>
  {{end}}
  <script src="{{.ScriptHref}}"></script>
  {{if .LiveReload}}
  <script>
  (function() {
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(proto + location.host + "/_livereload");
    ws.onmessage = function(ev) { if (ev.data === "reload") { location.reload(); } };
  })();
  </script>
  {{end}}
</body>
</html>
{{end}}`

// contactListTemplate renders a list of view.Link values.
const contactListTemplate = `{{define "contacts"}}{{range $i, $c := .}}{{if $i}}, {{end}}<a href="{{$c.Href}}"{{if $c.External}} target="_blank" rel="noopener noreferrer"{{end}}>{{$c.Label}}</a>{{end}}{{end}}`

// sessionTemplate renders one program card. Intro is only set by the
// intro topic layout.
const sessionTemplate = `{{define "session"}}
    <article class="session-card" id="session-{{.Order}}">
      <div class="session-header">
        <h2>{{.Heading}}</h2>
        <div class="session-meta">
          <span class="presenter">{{.Presenter}}</span>
          <span class="duration">{{.Duration}}</span>
        </div>
      </div>
      <div class="session-body">
        {{if .Intro}}<p class="session-intro">{{.Intro}}</p>{{end}}
        {{if .Topics}}
        <h3>Topics Covered:</h3>
        <ul class="topics">
        {{- range .Topics}}
          <li>{{.}}</li>
        {{- end}}
        </ul>
        {{end}}
        <div class="session-actions">
          <a class="button add-to-calendar" href="{{.CalendarHref}}" download="{{.CalendarFile}}">Add to Calendar</a>
          <a class="button button-outline" href="{{.MaterialsHref}}">View Materials</a>
        </div>
      </div>
      {{if .BreakAfter}}<div class="session-break">{{.BreakAfter}}</div>{{end}}
    </article>
{{end}}`

// materialsTemplate renders the tabbed materials sections.
const materialsTemplate = `{{define "materials"}}
    <div class="tabs" role="tablist">
    {{- range .Sections}}
      <button class="tab-button{{if .Selected}} active{{end}}" role="tab" data-tab="{{.ID}}" aria-selected="{{if .Selected}}true{{else}}false{{end}}">{{.Tab}}</button>
    {{- end}}
    </div>
    {{range .Sections}}
    <section class="tab-panel" id="tab-{{.ID}}" role="tabpanel"{{if not .Selected}} hidden{{end}}>
      <h2>{{.Heading}}</h2>
      {{if .Entries}}
      <div class="material-grid">
      {{- range .Entries}}
        <div class="material-card">
          <div class="material-title">
            <h3>{{.Title}}</h3>
            <span class="badge {{.BadgeClass}}">{{.Badge}}</span>
          </div>
          {{if .Description}}<p class="material-description">{{.Description}}</p>{{end}}
          {{if .Enabled}}
          <a class="button" href="{{.Href}}"{{if .External}} target="_blank" rel="noopener noreferrer"{{end}}>{{.Label}}</a>
          {{else}}
          <button class="button" disabled>{{.Label}}</button>
          {{end}}
        </div>
      {{- end}}
      </div>
      {{else}}
      <p class="empty">Nothing here yet.</p>
      {{end}}
    </section>
    {{end}}
{{end}}`

// readingTemplate renders the three reading sections with BibTeX copy
// controls.
const readingTemplate = `{{define "reading"}}
    {{range .Sections}}
    <section class="reading-section" id="{{.ID}}">
      <h2><span class="section-number">{{.Number}}</span> {{.Heading}}</h2>
      <p class="section-intro">{{.Intro}}</p>
      {{range .Entries}}
      <article class="reading-card">
        <div class="reading-title">
          <h3>{{if .URL}}<a href="{{.URL}}" target="_blank" rel="noopener noreferrer">{{.Title}}</a>{{else}}{{.Title}}{{end}}</h3>
          {{if .Type}}<span class="badge badge-{{.Badge}}">{{.Type}}</span>{{end}}
        </div>
        {{if .Authors}}<p class="authors">{{.Authors}}</p>{{end}}
        {{if .Description}}<p class="reading-description">{{.Description}}</p>{{end}}
        {{if .Bibtex}}
        <details class="bibtex">
          <summary>BibTeX</summary>
          <textarea class="bibtex-content" readonly rows="6">{{.Bibtex}}</textarea>
          <button class="button copy-bibtex" type="button" data-label="Copy BibTeX">Copy BibTeX</button>
        </details>
        {{end}}
      </article>
      {{end}}
    </section>
    {{end}}
{{end}}`

const homeTemplate = `{{define "content"}}{{with .Page}}
    <section class="hero">
      <h1>{{.Title}}</h1>
      <div class="hero-meta">
        {{if .Conference}}<span>{{.Conference}}</span>{{end}}
        {{if .Date}}<span>{{.Date}}</span>{{end}}
        {{if .Duration}}<span>{{.Duration}}</span>{{end}}
        {{if .Venue}}<span>{{.Venue}}</span>{{end}}
      </div>
      <div class="hero-actions">
        {{if .OfficialLink}}<a class="button" href="{{.OfficialLink}}" target="_blank" rel="noopener noreferrer">Official Tutorial Page</a>{{end}}
        <a class="button button-outline add-to-calendar" href="{{.CalendarHref}}" download="{{.CalendarFile}}">Add to Calendar</a>
      </div>
    </section>
    {{if .Description}}
    <section class="prose">
      <h2>About This Tutorial</h2>
      <p>{{.Description}}</p>
    </section>
    {{end}}
    {{if .LearningOutcomes}}
    <section>
      <h3>Learning Outcomes</h3>
      <p class="muted">By the end of this tutorial, participants will be able to:</p>
      <ul class="outcomes">
      {{- range .LearningOutcomes}}
        <li>{{.}}</li>
      {{- end}}
      </ul>
    </section>
    {{end}}
    {{if .ParentProject}}
    <section class="panel">
      <h3>Project Context</h3>
      <p>This tutorial is part of the <strong>{{.ParentProject}}</strong> project.</p>
      <a href="../">Explore the full collection</a>
    </section>
    {{end}}
    <section class="quick-links">
    {{- range .QuickLinks}}
      <a class="quick-link" href="{{.Href}}"><h4>{{.Title}}</h4><p>{{.Summary}}</p></a>
    {{- end}}
    </section>
    {{if .Contacts}}
    <p class="contact-line">Questions? Contact us at {{template "contacts" .Contacts}}</p>
    {{end}}
{{end}}{{end}}`

const programTemplate = `{{define "content"}}
    <div class="page-heading">
      <h1>Program Schedule</h1>
    </div>
    {{with .Page}}
    <div class="sessions">
    {{- range .Sessions}}{{template "session" .}}{{end}}
    </div>
    {{end}}
{{end}}`

const speakersTemplate = `{{define "content"}}
    <div class="page-heading">
      <h1>Speakers</h1>
    </div>
    {{with .Page}}
    <div class="speaker-grid">
    {{- range .Speakers}}
      <article class="speaker-card">
        <div class="avatar" aria-hidden="true">{{.Initials}}</div>
        <h2>{{.Name}}</h2>
        {{if .Affiliation}}<p class="affiliation">{{.Affiliation}}</p>{{end}}
        {{if .EmailHref}}<p><a href="{{.EmailHref}}">{{.Email}}</a></p>{{end}}
        {{if .Bio}}<p class="bio">{{.Bio}}</p>{{end}}
        {{if .Sessions}}
        <h3>Sessions</h3>
        <ul>
        {{- range .Sessions}}
          <li>{{.}}</li>
        {{- end}}
        </ul>
        <a href="{{.ProgramHref}}">See the program</a>
        {{end}}
      </article>
    {{- end}}
    </div>
    {{end}}
{{end}}`

const materialsPageTemplate = `{{define "content"}}
    <div class="page-heading">
      <h1>Tutorial Materials</h1>
    </div>
    {{with .Page}}{{template "materials" .}}{{end}}
{{end}}`

const readingPageTemplate = `{{define "content"}}
    <div class="page-heading">
      <h1>Reading List</h1>
    </div>
    {{with .Page}}{{template "reading" .}}{{end}}
{{end}}`

const markdownPageTemplate = `{{define "content"}}
    <article class="prose markdown">
    {{with .Page}}{{.Body}}{{end}}
    </article>
{{end}}`

const contactTemplate = `{{define "content"}}
    <div class="page-heading">
      <h1>Contact &amp; Logistics</h1>
    </div>
    {{with .Page}}
    <section class="panel">
      <h2>Organizers</h2>
      {{if .Contacts}}<p>{{template "contacts" .Contacts}}</p>{{end}}
    </section>
    <section class="panel">
      <h2>Event Details</h2>
      <dl class="details">
        {{if .Conference}}<dt>Conference</dt><dd>{{.Conference}}</dd>{{end}}
        {{if .Date}}<dt>Date</dt><dd>{{.Date}}</dd>{{end}}
        {{if .Duration}}<dt>Duration</dt><dd>{{.Duration}}</dd>{{end}}
        {{if .Timezone}}<dt>Timezone</dt><dd>{{.Timezone}}</dd>{{end}}
        {{if .Location}}<dt>Location</dt><dd>{{.Location}}</dd>{{end}}
        {{if .Room}}<dt>Room</dt><dd>{{.Room}}</dd>{{end}}
      </dl>
      {{if .OfficialLink}}<a href="{{.OfficialLink}}" target="_blank" rel="noopener noreferrer">Official conference page</a>{{end}}
    </section>
    <section>
      <h2>Frequently Asked Questions</h2>
      {{range .FAQ}}
      <details class="faq">
        <summary>{{.Question}}</summary>
        <p>{{.Answer}}</p>
      </details>
      {{end}}
    </section>
    <section>
      <h2>Preparing for the Tutorial</h2>
      <ul>
      {{- range .Preparation}}
        <li><a href="{{.Href}}">{{.Label}}</a></li>
      {{- end}}
      </ul>
    </section>
    {{end}}
{{end}}`

// Legacy pages keep every populated region inside {{with .Page}} so the
// shell still renders when the aggregate document could not be loaded.

const legacyHomeTemplate = `{{define "content"}}
    <section class="hero" id="tutorial-info">
    {{with .Page}}
      <h1>{{.Title}}</h1>
      <div class="hero-meta">
        {{if .Conference}}<span>{{.Conference}}</span>{{end}}
        {{if .Date}}<span>{{.Date}}</span>{{end}}
        {{if .Duration}}<span>{{.Duration}}</span>{{end}}
        {{if .Venue}}<span>{{.Venue}}</span>{{end}}
      </div>
      <div class="hero-actions">
        {{if .OfficialLink}}<a class="button" href="{{.OfficialLink}}" target="_blank" rel="noopener noreferrer">Official Tutorial Page</a>{{end}}
        <a class="button button-outline add-to-calendar" href="{{.CalendarHref}}" download="{{.CalendarFile}}">Add to Calendar</a>
      </div>
    {{end}}
    </section>
    <section class="prose" id="tutorial-description">
    {{with .Page}}{{if .Description}}<p>{{.Description}}</p>{{end}}{{end}}
    </section>
    <section id="learning-outcomes">
      <h3>Learning Outcomes</h3>
      {{with .Page}}
      <ul class="outcomes">
      {{- range .LearningOutcomes}}
        <li>{{.}}</li>
      {{- end}}
      </ul>
      {{end}}
    </section>
    <p class="contact-line" id="tutorial-contact">{{with .Page}}{{if .Contacts}}Questions? Contact us at {{template "contacts" .Contacts}}{{end}}{{end}}</p>
{{end}}`

const legacyProgramTemplate = `{{define "content"}}
    <div class="page-heading">
      <h1>Program Schedule</h1>
    </div>
    <div class="sessions" id="sessions">
    {{with .Page}}{{range .Sessions}}{{template "session" .}}{{end}}{{end}}
    </div>
{{end}}`

const legacySpeakersTemplate = `{{define "content"}}
    <div class="page-heading">
      <h1>Speakers</h1>
    </div>
    <div class="speaker-grid" id="speakers">
    {{with .Page}}
    {{- range .Speakers}}
      <article class="speaker-card">
        <div class="avatar" aria-hidden="true">{{.Initials}}</div>
        <h2>{{.Name}}</h2>
        {{if .Affiliation}}<p class="affiliation">{{.Affiliation}}</p>{{end}}
        {{if .EmailHref}}<p><a href="{{.EmailHref}}">{{.Email}}</a></p>{{end}}
        {{if .Bio}}<p class="bio">{{.Bio}}</p>{{end}}
      </article>
    {{- end}}
    {{end}}
    </div>
{{end}}`

// The legacy site has no reading route; its reading list sits under the
// materials tabs.
const legacyMaterialsTemplate = `{{define "content"}}
    <div class="page-heading">
      <h1>Tutorial Materials</h1>
    </div>
    <div id="materials">
    {{with .Page}}{{template "materials" .Materials}}{{end}}
    </div>
    <div id="reading-list">
      <h1>Reading List</h1>
    {{with .Page}}{{template "reading" .Reading}}{{end}}
    </div>
{{end}}`

// cssContent is the stylesheet shared by both variants.
const cssContent = `/* ============ CSS Variables ============ */
:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --text: #212529;
  --text-secondary: #495057;
  --text-muted: #868e96;
  --border: #dee2e6;
  --primary: #1e3a8a;
  --primary-hover: #1d4ed8;
  --primary-light: #eff6ff;
  --success: #2f9e44;
  --warning: #f08c00;
  --info: #1098ad;
  --secondary: #868e96;
  --content-max-width: 960px;
  --radius: 8px;
  --shadow: 0 1px 3px rgba(0,0,0,0.08);
  --shadow-lg: 0 4px 12px rgba(0,0,0,0.1);
}

/* ============ Reset & Base ============ */
*, *::before, *::after {
  box-sizing: border-box;
  margin: 0;
  padding: 0;
}

html {
  font-size: 16px;
  scroll-behavior: smooth;
}

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
  color: var(--text);
  background: var(--bg);
  line-height: 1.7;
  min-height: 100vh;
  display: flex;
  flex-direction: column;
}

a { color: var(--primary); text-decoration: none; }
a:hover { text-decoration: underline; }

h1, h2, h3, h4 { color: var(--primary); line-height: 1.3; margin-bottom: 0.5em; }
h1 { font-size: 2.25rem; }
h2 { font-size: 1.5rem; }
h3 { font-size: 1.2rem; }
p, ul, dl { margin-bottom: 1em; }
ul { padding-left: 1.5em; }

/* ============ Header ============ */
.site-header {
  background: var(--bg);
  border-bottom: 1px solid var(--border);
  position: sticky;
  top: 0;
  z-index: 100;
}

.header-inner {
  max-width: var(--content-max-width);
  margin: 0 auto;
  padding: 12px 16px;
  display: flex;
  align-items: center;
  justify-content: space-between;
  flex-wrap: wrap;
}

.brand { font-weight: 700; font-size: 1.1rem; }

.site-nav ul {
  list-style: none;
  display: flex;
  gap: 4px;
  padding: 0;
  margin: 0;
}

.site-nav a {
  display: block;
  padding: 6px 10px;
  border-radius: 6px;
  color: var(--text-secondary);
  font-size: 0.95rem;
}

.site-nav a:hover { background: var(--bg-secondary); text-decoration: none; }
.site-nav a.active { background: var(--primary-light); color: var(--primary); font-weight: 600; }

.menu-toggle {
  display: none;
  background: none;
  border: none;
  color: var(--text);
  cursor: pointer;
}

/* ============ Layout ============ */
.page {
  flex: 1;
  width: 100%;
  max-width: var(--content-max-width);
  margin: 0 auto;
  padding: 32px 16px;
}

.page-heading { text-align: center; margin-bottom: 32px; }
.muted { color: var(--text-muted); }
.panel { background: var(--bg-secondary); border-radius: var(--radius); padding: 24px; margin-bottom: 24px; }

/* ============ Buttons & Badges ============ */
.button {
  display: inline-block;
  padding: 8px 16px;
  border-radius: 6px;
  border: 1px solid var(--primary);
  background: var(--primary);
  color: #fff;
  font-size: 0.9rem;
  cursor: pointer;
}

.button:hover { background: var(--primary-hover); text-decoration: none; }
.button-outline { background: transparent; color: var(--primary); }
.button-outline:hover { background: var(--primary-light); }
.button[disabled] { background: var(--secondary); border-color: var(--secondary); cursor: not-allowed; opacity: 0.7; }

.badge {
  display: inline-block;
  padding: 2px 8px;
  border-radius: 999px;
  font-size: 0.75rem;
  font-weight: 600;
  color: #fff;
  background: var(--secondary);
  text-transform: capitalize;
}

.badge-primary { background: var(--primary); }
.badge-success { background: var(--success); }
.badge-warning { background: var(--warning); }
.badge-info { background: var(--info); }
.badge-secondary { background: var(--secondary); }

/* ============ Home ============ */
.hero { text-align: center; margin-bottom: 48px; }
.hero-meta { display: flex; flex-wrap: wrap; justify-content: center; gap: 16px; color: var(--text-muted); margin-bottom: 16px; }
.hero-actions { display: flex; justify-content: center; gap: 12px; flex-wrap: wrap; }
.outcomes { display: grid; grid-template-columns: repeat(auto-fit, minmax(280px, 1fr)); gap: 8px 24px; }
.quick-links { display: grid; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); gap: 16px; margin: 32px 0; }
.quick-link { display: block; padding: 20px; border: 1px solid var(--border); border-radius: var(--radius); color: var(--text); }
.quick-link:hover { box-shadow: var(--shadow-lg); text-decoration: none; }
.contact-line { text-align: center; color: var(--text-muted); }

/* ============ Program ============ */
.session-card { border: 1px solid var(--border); border-radius: var(--radius); overflow: hidden; margin-bottom: 32px; box-shadow: var(--shadow); }
.session-header { background: var(--primary); color: #fff; padding: 16px 24px; }
.session-header h2 { color: #fff; margin: 0; }
.session-meta { display: flex; gap: 16px; font-size: 0.9rem; opacity: 0.9; }
.session-body { padding: 24px; }
.session-actions { display: flex; gap: 12px; flex-wrap: wrap; }
.session-break { background: var(--bg-secondary); border-top: 1px solid var(--border); padding: 10px 24px; color: var(--text-muted); font-size: 0.9rem; }

/* ============ Speakers ============ */
.speaker-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(280px, 1fr)); gap: 24px; }
.speaker-card { border: 1px solid var(--border); border-radius: var(--radius); padding: 24px; text-align: center; }
.avatar { width: 80px; height: 80px; margin: 0 auto 16px; border-radius: 50%; background: var(--primary-light); color: var(--primary); display: flex; align-items: center; justify-content: center; font-size: 1.5rem; font-weight: 700; }
.affiliation { color: var(--text-muted); }
.bio { text-align: left; }

/* ============ Materials ============ */
.tabs { display: flex; gap: 4px; border-bottom: 1px solid var(--border); margin-bottom: 24px; flex-wrap: wrap; }
.tab-button { background: none; border: none; border-bottom: 2px solid transparent; padding: 8px 16px; cursor: pointer; color: var(--text-secondary); font-size: 0.95rem; }
.tab-button.active { border-bottom-color: var(--primary); color: var(--primary); font-weight: 600; }
.material-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(260px, 1fr)); gap: 16px; }
.material-card { border: 1px solid var(--border); border-radius: var(--radius); padding: 20px; display: flex; flex-direction: column; gap: 8px; }
.material-title { display: flex; justify-content: space-between; align-items: flex-start; gap: 8px; }
.material-title h3 { margin: 0; }
.material-card .button { align-self: flex-start; margin-top: auto; }
.empty { color: var(--text-muted); }

/* ============ Reading ============ */
.reading-section { margin-bottom: 40px; }
.section-number { display: inline-flex; width: 32px; height: 32px; border-radius: 50%; background: var(--primary); color: #fff; align-items: center; justify-content: center; font-size: 1rem; margin-right: 8px; }
.section-intro { color: var(--text-muted); }
.reading-card { border-left: 3px solid var(--primary); padding: 12px 16px; margin-bottom: 16px; background: var(--bg-secondary); border-radius: 0 var(--radius) var(--radius) 0; }
.reading-title { display: flex; justify-content: space-between; align-items: flex-start; gap: 8px; }
.reading-title h3 { margin: 0; }
.authors { color: var(--text-muted); font-style: italic; margin-bottom: 4px; }
.bibtex summary { cursor: pointer; color: var(--primary); font-size: 0.9rem; }
.bibtex-content { width: 100%; font-family: "SFMono-Regular", Consolas, "Liberation Mono", Menlo, monospace; font-size: 0.8rem; padding: 8px; margin: 8px 0; border: 1px solid var(--border); border-radius: 6px; resize: vertical; }

/* ============ Contact ============ */
.details { display: grid; grid-template-columns: max-content 1fr; gap: 4px 16px; }
.details dt { font-weight: 600; }
.faq { border-bottom: 1px solid var(--border); padding: 12px 0; }
.faq summary { cursor: pointer; font-weight: 600; }

/* ============ Markdown ============ */
.prose table { border-collapse: collapse; width: 100%; margin: 16px 0; font-size: 0.9rem; }
.prose th, .prose td { border: 1px solid var(--border); padding: 6px 10px; text-align: left; }
.prose th { background: var(--bg-secondary); }
.prose pre { background: var(--bg-secondary); border: 1px solid var(--border); border-radius: 6px; padding: 12px; overflow-x: auto; font-size: 0.85rem; margin-bottom: 1em; }
.prose code { font-family: "SFMono-Regular", Consolas, "Liberation Mono", Menlo, monospace; }

/* ============ Footer ============ */
.site-footer { border-top: 1px solid var(--border); background: var(--bg-secondary); padding: 32px 16px; font-size: 0.9rem; }
.footer-grid { max-width: var(--content-max-width); margin: 0 auto; display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 24px; }
.site-footer ul { list-style: none; padding: 0; }
.copyright, .last-updated { text-align: center; color: var(--text-muted); margin: 8px 0 0; }

/* ============ Responsive ============ */
@media (max-width: 768px) {
  .menu-toggle { display: block; }
  .site-nav { width: 100%; }
  .site-nav.collapsed { display: none; }
  .site-nav ul { flex-direction: column; padding-top: 8px; }
  h1 { font-size: 1.75rem; }
}
`

// jsContent holds the client widgets: mobile menu, tabs, BibTeX copy and
// calendar download.
const jsContent = `(function() {
  "use strict";

  var variant = document.body.getAttribute("data-variant") || "rebuilt";

  // ===== Mobile menu toggle =====
  var menuToggle = document.getElementById("menu-toggle");
  var nav = document.getElementById("site-nav");

  if (menuToggle && nav) {
    menuToggle.addEventListener("click", function() {
      var collapsed = nav.classList.toggle("collapsed");
      menuToggle.setAttribute("aria-expanded", collapsed ? "false" : "true");
    });
  }

  // ===== Tab switching =====
  var tabButtons = document.querySelectorAll(".tab-button");

  tabButtons.forEach(function(btn) {
    btn.addEventListener("click", function() {
      var target = btn.getAttribute("data-tab");
      tabButtons.forEach(function(other) {
        var selected = other === btn;
        other.classList.toggle("active", selected);
        other.setAttribute("aria-selected", selected ? "true" : "false");
      });
      document.querySelectorAll(".tab-panel").forEach(function(panel) {
        panel.hidden = panel.id !== "tab-" + target;
      });
    });
  });

  // ===== Copy BibTeX =====
  function fallbackCopy(text) {
    var ta = document.createElement("textarea");
    ta.value = text;
    ta.setAttribute("readonly", "");
    ta.style.position = "absolute";
    ta.style.left = "-9999px";
    document.body.appendChild(ta);
    ta.select();
    var ok = false;
    try {
      ok = document.execCommand("copy");
    } finally {
      document.body.removeChild(ta);
    }
    return ok ? Promise.resolve() : Promise.reject(new Error("execCommand copy failed"));
  }

  function copyText(text) {
    if (navigator.clipboard && window.isSecureContext) {
      return navigator.clipboard.writeText(text).catch(function() {
        return fallbackCopy(text);
      });
    }
    try {
      return fallbackCopy(text);
    } catch (e) {
      return Promise.reject(e);
    }
  }

  document.querySelectorAll(".copy-bibtex").forEach(function(btn) {
    var label = btn.getAttribute("data-label") || btn.textContent;
    btn.addEventListener("click", function() {
      var card = btn.closest(".reading-card") || btn.parentElement;
      var src = card ? card.querySelector(".bibtex-content") : null;
      if (!src) return;
      var text = src.value !== undefined ? src.value : src.textContent;
      copyText(text).then(function() {
        btn.textContent = "Copied!";
        setTimeout(function() { btn.textContent = label; }, 2000);
      }, function(err) {
        console.error("Failed to copy BibTeX:", err);
        if (variant === "legacy") {
          alert("Failed to copy BibTeX");
        }
      });
    });
  });

  // ===== Calendar download =====
  function downloadICS(filename, text) {
    var blob = new Blob([text], { type: "text/calendar;charset=utf-8" });
    var url = URL.createObjectURL(blob);
    var a = document.createElement("a");
    a.href = url;
    a.download = filename;
    document.body.appendChild(a);
    a.click();
    document.body.removeChild(a);
    URL.revokeObjectURL(url);
  }

  document.querySelectorAll(".add-to-calendar").forEach(function(link) {
    if (!window.fetch || !window.Blob) return;
    link.addEventListener("click", function(ev) {
      var href = link.getAttribute("href");
      var filename = link.getAttribute("download") || "event.ics";
      ev.preventDefault();
      fetch(href)
        .then(function(r) {
          if (!r.ok) throw new Error("HTTP " + r.status);
          return r.text();
        })
        .then(function(text) { downloadICS(filename, text); })
        .catch(function(err) {
          console.error("Calendar download failed:", err);
          window.location.href = href;
        });
    });
  });
})();
`
