package web

import (
	"errors"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/readmelens/readmelens/internal/github"
	"github.com/readmelens/readmelens/internal/lens"
	"github.com/readmelens/readmelens/internal/store"
)

const recentScansShown = 20

type homeView struct {
	Example string
	Recent  []recentView
}

type recentView struct {
	Owner     string
	Repo      string
	Branch    string
	ShortSHA  string
	ScannedAt string
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	recent, err := s.svc.Recent(recentScansShown)
	if err != nil {
		s.renderError(w, http.StatusInternalServerError, "Could not load recent scans.")
		return
	}

	view := homeView{
		Example: "https://github.com/tiangolo/fastapi",
		Recent:  recentViews(recent),
	}
	s.render(w, http.StatusOK, "home.html", view)
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "about.html", nil)
}

type resultView struct {
	Report   *lens.Report
	ShortSHA string
	Files    []fileView
	Sections map[string]bool
}

type fileView struct {
	Key  string
	Path string
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	repoURL := r.FormValue("repo_url")

	report, err := s.svc.ScanRepo(r.Context(), repoURL)
	if err != nil {
		switch {
		case errors.Is(err, github.ErrBadURL):
			s.renderError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, github.ErrNotFound):
			s.renderError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, github.ErrRateLimited):
			s.renderError(w, http.StatusServiceUnavailable, err.Error())
		default:
			s.logger.Error("scan failed", "repo_url", repoURL, "error", err)
			s.renderError(w, http.StatusInternalServerError, "Scan failed. Try again later.")
		}
		return
	}

	view := resultView{
		Report:   report,
		ShortSHA: shortSHA(report.SHA),
		Sections: report.Result.Readme.Sections,
	}
	for key, path := range report.Result.Files {
		if path != nil {
			view.Files = append(view.Files, fileView{Key: key, Path: *path})
		}
	}
	s.render(w, http.StatusOK, "result.html", view)
}

func (s *Server) handleOnboarding(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")
	repo := chi.URLParam(r, "repo")
	sha := r.URL.Query().Get("sha")

	doc, err := s.svc.Onboarding(owner, repo, sha)
	if err != nil {
		if errors.Is(err, lens.ErrNotCached) {
			s.renderError(w, http.StatusNotFound, "No cached scan for that repository. Scan it first.")
			return
		}
		s.logger.Error("onboarding doc failed", "owner", owner, "repo", repo, "error", err)
		s.renderError(w, http.StatusInternalServerError, "Could not generate the onboarding doc.")
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = w.Write([]byte(doc))
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error("template render failed", "template", name, "error", err)
	}
}

type errorView struct {
	Message string
}

func (s *Server) renderError(w http.ResponseWriter, status int, message string) {
	s.render(w, status, "error.html", errorView{Message: message})
}

func recentViews(rows []store.RecentScan) []recentView {
	views := make([]recentView, 0, len(rows))
	for _, r := range rows {
		views = append(views, recentView{
			Owner:     r.Owner,
			Repo:      r.Repo,
			Branch:    r.Branch,
			ShortSHA:  shortSHA(r.SHA),
			ScannedAt: time.Unix(r.ScannedAt, 0).UTC().Format("2006-01-02 15:04"),
		})
	}
	return views
}

func shortSHA(sha string) string {
	if len(sha) > 12 {
		return sha[:12]
	}
	return sha
}
