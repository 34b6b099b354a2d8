package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"cc-details-portal/internal/model"
	"github.com/gorilla/mux"
	"github.com/newrelic/go-agent/v3/newrelic"
	log "github.com/sirupsen/logrus"
)

const (
	submitPath = "/ect/cc-det/api"
	pagePath   = "/ect/cc-det/{personRef}"
)

// CardDetailsSender relays a submission to the back office.
type CardDetailsSender interface {
	SendCardDetails(ctx context.Context, submission model.CardSubmission) error
}

type Server struct {
	port   int
	sender CardDetailsSender
	nr     *newrelic.Application
	srv    *http.Server
}

// NewServer wires the handlers. nr may be nil, in which case nothing is
// instrumented.
func NewServer(port int, sender CardDetailsSender, nr *newrelic.Application) *Server {
	return &Server{
		port:   port,
		sender: sender,
		nr:     nr,
	}
}

func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.Use(s.logRequests)

	router.HandleFunc(newrelic.WrapHandleFunc(s.nr, submitPath, s.submitCardDetails)).Methods("POST")
	router.HandleFunc(submitPath, s.methodNotAllowed)
	router.HandleFunc(newrelic.WrapHandleFunc(s.nr, pagePath, s.showPage)).Methods("GET")
	router.HandleFunc(newrelic.WrapHandleFunc(s.nr, pagePath, s.submitPage)).Methods("POST")
	router.HandleFunc("/healthz", s.health).Methods("GET")

	return router
}

func (s *Server) Run() error {
	address := "0.0.0.0"

	s.srv = &http.Server{
		Addr:    fmt.Sprintf("%v:%v", address, s.port),
		Handler: s.Handler(),
	}

	log.Printf("listening requests at %v:%v", address, s.port)

	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

func (s *Server) submitCardDetails(w http.ResponseWriter, r *http.Request) {
	request, err := decodeSubmitCardRequest(r.Body)
	if err != nil {
		log.Warn(err)
		writeJSON(w, http.StatusBadRequest, model.RelayResponse{Status: model.StatusError})
		return
	}

	err = s.sender.SendCardDetails(r.Context(), request.toSubmission())
	if err != nil {
		log.Errorf("sending card details email: %v", err)
		writeJSON(w, http.StatusInternalServerError, model.RelayResponse{Status: model.StatusError})
		return
	}

	writeJSON(w, http.StatusOK, model.RelayResponse{Status: model.StatusSuccess})
}

// methodNotAllowed keeps other methods on the relay path from reaching the
// page route as booking reference "api".
func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodPost)
	writeJSON(w, http.StatusMethodNotAllowed, model.RelayResponse{Status: model.StatusError})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, response interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Errorf("encoding response: %v", err)
	}
}
