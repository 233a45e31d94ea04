// Package server is the HTTP face of the compiler. It frames requests
// and responses; the pipeline itself lives in pkg and knows nothing
// about transport.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	"tlog.app/go/tlog"

	exprc "go.exprc.dev/pkg"
)

type Server struct {
	cfg      Config
	compiler *exprc.Compiler
	handler  http.Handler
}

func New(cfg Config) *Server {
	s := &Server{
		cfg:      cfg,
		compiler: exprc.NewCompiler(),
	}

	router := httprouter.New()
	router.POST("/api/compile", s.handleCompile)
	router.GET("/healthz", s.handleHealth)

	s.handler = cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodPost, http.MethodGet},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)

	return s
}

// Handler returns the CORS-wrapped router.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) ListenAndServe() error {
	tlog.Printw("listening", "addr", s.cfg.Addr)

	srv := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.handler,
	}

	return srv.ListenAndServe()
}

type compileRequest struct {
	Expression json.RawMessage `json:"expression"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleCompile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req compileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	// Unmarshalling JSON null into a string is a silent no-op, so an
	// explicit null has to be rejected up front.
	var expression string
	if req.Expression == nil || string(req.Expression) == "null" ||
		json.Unmarshal(req.Expression, &expression) != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "expression must be a string"})
		return
	}

	if len(expression) > s.cfg.MaxExpressionLen {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "expression too long"})
		return
	}

	res, err := s.compiler.Compile(expression)
	if err != nil {
		tlog.Printw("compile", "len", len(expression), "err", err)

		// A pipeline failure is a valid outcome, not a bad request: the
		// caller renders the message as the trace.
		writeJSON(w, http.StatusOK, errorResponse{Error: err.Error()})
		return
	}

	tlog.Printw("compile", "len", len(expression))

	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		tlog.Printw("write response", "err", err)
	}
}
