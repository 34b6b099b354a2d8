package main

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"

	"cc-details-portal/internal/form"
	"cc-details-portal/internal/model"
	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	log "github.com/sirupsen/logrus"
)

//go:embed templates/page.html
var pageFS embed.FS

var pageTemplate = template.Must(template.ParseFS(pageFS, "templates/page.html"))

var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

type pageData struct {
	Name      string
	RefNumber string
	ResetURL  string
	Values    form.Values
	Errors    form.FieldErrors
	Success   bool
	Failed    bool

	SuccessWindowMS int64
}

func newPageData(r *http.Request) pageData {
	name := r.URL.Query().Get("name")
	if name == "" {
		name = "Guest"
	}

	reset := url.URL{Path: r.URL.Path, RawQuery: r.URL.RawQuery}

	return pageData{
		Name:      name,
		RefNumber: mux.Vars(r)["personRef"],
		ResetURL:  reset.String(),
		Errors:    form.FieldErrors{},

		SuccessWindowMS: form.SuccessWindow.Milliseconds(),
	}
}

func (s *Server) showPage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, http.StatusOK, newPageData(r))
}

// submitPage is the no-script path of the form: validate, relay, re-render.
func (s *Server) submitPage(w http.ResponseWriter, r *http.Request) {
	data := newPageData(r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var values form.Values
	if err := formDecoder.Decode(&values, r.PostForm); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	data.Values = values

	if errs := form.Validate(values); len(errs) > 0 {
		data.Errors = errs
		renderPage(w, http.StatusUnprocessableEntity, data)
		return
	}

	err := s.sender.SendCardDetails(r.Context(), model.CardSubmission{
		RefNumber:           data.RefNumber,
		CardNumber:          values.CardNumber,
		CardName:            values.CardName,
		CardExpirationMonth: values.CardExpirationMonth,
		CardExpirationYear:  values.CardExpirationYear,
	})
	if err != nil {
		log.Errorf("sending card details email: %v", err)
		data.Failed = true
		renderPage(w, http.StatusInternalServerError, data)
		return
	}

	data.Values = form.Values{}
	data.Success = true
	renderPage(w, http.StatusOK, data)
}

func renderPage(w http.ResponseWriter, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := pageTemplate.Execute(w, data); err != nil {
		log.Errorf("rendering page: %v", err)
	}
}
