// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/style-funnel/catalog"
	"github.com/danielhkuo/style-funnel/effects"
	"github.com/danielhkuo/style-funnel/survey"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var funcs = template.FuncMap{
	"ms": func(d time.Duration) template.CSS {
		return template.CSS(fmt.Sprintf("%gms", float64(d)/float64(time.Millisecond)))
	},
	"age": func(t time.Time) string {
		return humanize.Time(t)
	},
	"stamp": func(t time.Time) string {
		return t.UTC().Format("2006-01-02 15:04:05 UTC")
	},
	"inc": func(i int) int { return i + 1 },
}

var pages = map[string]*template.Template{}

func init() {
	for _, name := range []string{"survey", "thanks", "admin_list", "admin_detail", "admin_login", "message"} {
		pages[name] = template.Must(template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html", "templates/"+name+".html"))
	}
}

// Page titles and messages
const (
	SiteName        = "BLACKMRKT"
	ThanksMessage   = "Thank you for completing the survey!"
	NotFoundMessage = "Record not found"
	BadKeyMessage   = "Invalid admin key"
)

// transitionVars exposes the transition timings to the stylesheet
var transitionVars = template.CSS(fmt.Sprintf(
	"--advance-delay: %dms; --direction-reset: %dms; --letter-delay: %gms; --box-fade: %dms; --fade-delay: %dms; --main-fade: %dms; --shuffle-time: %dms",
	effects.AdvanceDelay.Milliseconds(),
	effects.DirectionReset.Milliseconds(),
	float64(effects.LetterDelay)/float64(time.Millisecond),
	effects.BoxFadeDuration.Milliseconds(),
	effects.FadeDelay.Milliseconds(),
	effects.MainFadeDuration.Milliseconds(),
	effects.ShuffleTime.Milliseconds(),
))

type layout struct {
	Title      string
	Transition template.CSS
	Direction  survey.Direction
	Body       any
}

// SurveyPage is one question of the running survey
type SurveyPage struct {
	Question    catalog.Question
	Position    int
	Total       int
	Field       template.HTML
	Letters     []effects.Letter
	Warning     string
	CanGoBack   bool
	AutoAdvance bool
	IsLast      bool
}

// Progress is the 1-based question number
func (p SurveyPage) Progress() int {
	return p.Position + 1
}

type thanksPage struct {
	Message string
	// Frames is the JSON-encoded scramble animation
	Frames string
}

type loginPage struct {
	Error string
}

type messagePage struct {
	Heading string
	Message string
}

// WriteSurvey renders a question page
func WriteSurvey(w http.ResponseWriter, status int, page SurveyPage, direction survey.Direction) {
	write(w, status, "survey", layout{
		Title:      SiteName,
		Transition: transitionVars,
		Direction:  direction,
		Body:       page,
	})
}

// WriteThanks renders the completion page
func WriteThanks(w http.ResponseWriter) {
	frames, _ := json.Marshal(effects.ScrambleFrames(ThanksMessage))
	write(w, http.StatusOK, "thanks", layout{
		Title:      SiteName,
		Transition: transitionVars,
		Direction:  survey.DirectionForward,
		Body: thanksPage{
			Message: ThanksMessage,
			Frames:  string(frames),
		},
	})
}

// WriteAdminList renders the recent records table
func WriteAdminList(w http.ResponseWriter, list AdminList) {
	write(w, http.StatusOK, "admin_list", layout{Title: SiteName + " Admin", Body: list})
}

// WriteAdminDetail renders one record's answers
func WriteAdminDetail(w http.ResponseWriter, detail AdminDetail) {
	write(w, http.StatusOK, "admin_detail", layout{Title: SiteName + " Admin", Body: detail})
}

// WriteAdminLogin renders the admin key form, with errMsg above it when set
func WriteAdminLogin(w http.ResponseWriter, status int, errMsg string) {
	write(w, status, "admin_login", layout{Title: SiteName + " Admin", Body: loginPage{Error: errMsg}})
}

// WriteMessage renders a plain status page such as not found or an error
func WriteMessage(w http.ResponseWriter, status int, message string) {
	write(w, status, "message", layout{
		Title: SiteName,
		Body:  messagePage{Heading: http.StatusText(status), Message: message},
	})
}

// Static serves the stylesheet and other bundled assets
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServerFS(sub)
}

func write(w http.ResponseWriter, status int, name string, data layout) {
	var buf bytes.Buffer
	if err := render(&buf, name, data); err != nil {
		slog.Error("failed to render page", "page", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func render(w io.Writer, name string, data layout) error {
	tmpl, ok := pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}
