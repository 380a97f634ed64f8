package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/peter-r-g/CodeItOut/internal/diagnostics"
	"github.com/peter-r-g/CodeItOut/internal/types"
	"github.com/peter-r-g/CodeItOut/script"
)

// Request is one message from a client
type Request struct {
	Source string `json:"source"`
}

type Diagnostic struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Code     string `json:"code,omitempty"`
	Stage    string `json:"stage,omitempty"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
}

// Response answers one Request. Value is null when analysis failed or
// nothing was returned.
type Response struct {
	Value       any          `json:"value"`
	Type        string       `json:"type,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics"`
	Error       string       `json:"error,omitempty"`
}

// Factory builds the script for a new connection
type Factory func() (*script.Script, error)

// Server executes scripts sent over WebSocket connections. Each
// connection owns one Script, so globals persist between its messages.
type Server struct {
	factory  Factory
	upgrader websocket.Upgrader
}

func New(factory Factory) *Server {
	return &Server{
		factory: factory,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handler routes /exec to the execution endpoint
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/exec", s.serveExec)
	return mux
}

// ListenAndServe serves until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}

	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe() }()

	select {
	case err := <-done:
		return errors.Wrap(err, "serving")
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdown)
	}
}

func (s *Server) serveExec(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	sc, err := s.factory()
	if err != nil {
		_ = conn.WriteJSON(Response{Error: err.Error(), Diagnostics: []Diagnostic{}})
		return
	}

	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		if err := conn.WriteJSON(Execute(sc, req.Source)); err != nil {
			return
		}
	}
}

// Execute runs src on sc and builds the response. A panic raised while
// executing is reported as the response error so the connection survives.
func Execute(sc *script.Script, src string) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			resp = Response{Diagnostics: []Diagnostic{}, Error: fmt.Sprintf("execution panicked: %v", r)}
		}
	}()

	value, diags, err := sc.Execute(src)

	resp = Response{Diagnostics: convert(diags)}
	if err != nil {
		resp.Error = err.Error()
	}
	if value != nil && !value.IsNothing() {
		resp.Type = value.Type().String()
		resp.Value = jsonValue(value.Raw())
	}
	return resp
}

func jsonValue(raw any) any {
	switch v := raw.(type) {
	case rune:
		return string(v)
	case bool, float64, string:
		return v
	}
	return types.Format(raw)
}

func convert(diags *diagnostics.Collection) []Diagnostic {
	result := make([]Diagnostic, 0)
	if diags == nil {
		return result
	}
	for _, d := range diags.All() {
		result = append(result, Diagnostic{
			Severity: d.Severity.String(),
			Message:  d.Message,
			Code:     d.Code,
			Stage:    d.Stage,
			Line:     d.Location.Line,
			Column:   d.Location.Column,
		})
	}
	return result
}
