// Package main implements a mock booking platform for local development. It
// serves Resy venue pages and OpenTable search pages with the markup the
// scrapers look for, built from a YAML fixture, so a server running with
// browser.mode=http can sweep without touching the real sites.
package main

import (
	"flag"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type venue struct {
	Slug      string              `yaml:"slug"`
	Name      string              `yaml:"name"`
	Platforms []string            `yaml:"platforms"`
	Times     []string            `yaml:"times"`
	Dates     map[string][]string `yaml:"dates"`
}

// timesOn returns the bookable times for date: a per-date override if one
// exists, otherwise the default list.
func (v *venue) timesOn(date string) []string {
	if t, ok := v.Dates[date]; ok {
		return t
	}
	return v.Times
}

func (v *venue) on(platform string) bool {
	return slices.Contains(v.Platforms, platform)
}

type fixture struct {
	Venues []venue `yaml:"venues"`
}

func (f *fixture) bySlug(slug string) *venue {
	for i := range f.Venues {
		if f.Venues[i].Slug == slug && f.Venues[i].on("resy") {
			return &f.Venues[i]
		}
	}
	return nil
}

func (f *fixture) byName(term string) *venue {
	term = strings.ToLower(strings.TrimSpace(term))
	for i := range f.Venues {
		if strings.ToLower(f.Venues[i].Name) == term && f.Venues[i].on("opentable") {
			return &f.Venues[i]
		}
	}
	return nil
}

func main() {
	port := flag.Int("port", 8090, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-platform/testdata/venues.yaml", "path to venue fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fx, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "venues", len(fx.Venues))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock booking platform", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, fx)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(logger *slog.Logger, fx *fixture) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /cities/{region}/{slug}", resyHandler(logger, fx))
	mux.HandleFunc("GET /s", openTableHandler(logger, fx))
	return mux
}

func loadFixture(path string) (*fixture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var fx fixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &fx, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

var resyPage = template.Must(template.New("resy").Parse(`<!DOCTYPE html>
<html><head><title>{{.Name}} - Resy</title></head>
<body>
<h1>{{.Name}}</h1>
{{if .Times}}<div class="ReservationButtonList">
{{range .Times}}  <button class="ReservationButton" data-test="time-slot">{{.}}</button>
{{end}}</div>{{else}}<p class="VenuePage__no-availability">No tables available for {{.Date}}.</p>{{end}}
</body></html>
`))

func resyHandler(logger *slog.Logger, fx *fixture) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := r.PathValue("slug")
		date := r.URL.Query().Get("date")

		v := fx.bySlug(slug)
		if v == nil {
			logger.Info("resy venue not found", "slug", slug)
			http.NotFound(w, r)
			return
		}

		times := v.timesOn(date)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		resyPage.Execute(w, map[string]any{"Name": v.Name, "Date": date, "Times": times})
		logger.Info("resy venue", "slug", slug, "date", date, "slots", len(times))
	}
}

type openTableSlot struct {
	Time string
	Href string
}

var openTablePage = template.Must(template.New("opentable").Parse(`<!DOCTYPE html>
<html><head><title>OpenTable search</title></head>
<body>
{{if .Found}}<div data-test="times-702">
  <h2>{{.Name}}</h2>
{{range .Slots}}  <a class="timeSlot" href="{{.Href}}">{{.Time}}</a>
{{end}}</div>{{else}}<p>No restaurants match "{{.Term}}".</p>{{end}}
</body></html>
`))

func openTableHandler(logger *slog.Logger, fx *fixture) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		term := q.Get("term")
		date, _, _ := strings.Cut(q.Get("dateTime"), "T")
		covers := q.Get("covers")

		data := map[string]any{"Term": term}
		v := fx.byName(term)
		if v != nil {
			times := v.timesOn(date)
			slots := make([]openTableSlot, len(times))
			for i, t := range times {
				book := url.Values{}
				book.Set("date", date)
				book.Set("time", t)
				book.Set("covers", covers)
				slots[i] = openTableSlot{Time: t, Href: "/booking/" + v.Slug + "?" + book.Encode()}
			}
			data["Found"] = true
			data["Name"] = v.Name
			data["Slots"] = slots
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		openTablePage.Execute(w, data)
		logger.Info("opentable search", "term", term, "date", date, "found", v != nil)
	}
}
