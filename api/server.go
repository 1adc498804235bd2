// Package api serves curve evaluations over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/matt-g-everett/easecalc/curve"
	"github.com/matt-g-everett/easecalc/input"
	"github.com/matt-g-everett/easecalc/logger"
)

type evaluateResponse struct {
	Curve    string        `json:"curve"`
	Lower    int           `json:"lower"`
	Upper    int           `json:"upper"`
	Duration float64       `json:"duration"`
	Results  []curve.Point `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type Api struct {
	mux *http.ServeMux
}

func NewApi() *Api {
	a := new(Api)
	a.mux = http.NewServeMux()
	a.mux.HandleFunc("/evaluate", a.handleEvaluate)
	return a
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger.Info("request", "method", r.Method, "path", r.URL.Path)
	a.mux.ServeHTTP(w, r)
}

// handleEvaluate answers GET /evaluate?curve=<details line>&t=<time>[&t=...].
func (a *Api) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{"method not allowed"})
		return
	}

	query := r.URL.Query()
	c, err := input.ParseLine(query.Get("curve"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{err.Error()})
		return
	}

	times := query["t"]
	if len(times) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{"at least one t parameter is required"})
		return
	}

	resp := evaluateResponse{
		Curve:    c.Kind.String(),
		Lower:    c.Lower,
		Upper:    c.Upper,
		Duration: c.Duration,
		Results:  make([]curve.Point, 0, len(times)),
	}
	for _, s := range times {
		t, err := input.ParseTime(s, c)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{err.Error()})
			return
		}
		resp.Results = append(resp.Results, curve.Point{Time: t, Value: c.Evaluate(t)})
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("writing response failed", "err", err)
	}
}

// Serve listens on addr until ctx is cancelled.
func (a *Api) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           a,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		logger.Error("server stopped", "addr", addr, "err", err)
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
