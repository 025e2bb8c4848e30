// SPDX-License-Identifier: MIT
// Dev KryperAI

package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"cosmos-txmsg/msgs"
	"cosmos-txmsg/node"
	"cosmos-txmsg/tx"
)

type Server struct {
	node *node.Node
	log  *slog.Logger
	mux  *http.ServeMux
}

func NewServer(n *node.Node) *Server {
	s := &Server{
		node: n,
		log:  n.Logger.With("component", "rpc"),
		mux:  http.NewServeMux(),
	}
	s.routes()
	return s
}

// Handler returns the mux wrapped with request logging.
func (s *Server) Handler() http.Handler {
	return s.logRequests(s.mux)
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) routes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/msg/types", s.handleMsgTypes)
	s.mux.HandleFunc("/msg/encode", s.handleMsgEncode)
	s.mux.HandleFunc("/msg/decode", s.handleMsgDecode)
	s.mux.HandleFunc("/msg/parse", s.handleMsgParse)
	s.mux.HandleFunc("/tx/body/encode", s.handleBodyEncode)
	s.mux.HandleFunc("/tx/body/decode", s.handleBodyDecode)
}

// -------------------- request / response shapes --------------------

type encodeRequest struct {
	TypeURL string          `json:"type_url"`
	Value   json.RawMessage `json:"value"`
}

type envelope struct {
	TypeURL string `json:"type_url"`
	Value   string `json:"value"`
}

type parseRequest struct {
	Expected string `json:"expected"`
	TypeURL  string `json:"type_url"`
	Value    string `json:"value"`
}

type decodedMsg struct {
	TypeURL string `json:"type_url"`
	Message any    `json:"message"`
}

type bodyEncodeRequest struct {
	Messages      []encodeRequest `json:"messages"`
	Memo          string          `json:"memo"`
	TimeoutHeight uint64          `json:"timeout_height"`
}

type bodyDecodeRequest struct {
	Body string `json:"body"`
}

// -------------------- handlers --------------------

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httpError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
	})
}

func (s *Server) handleMsgTypes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httpError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"type_urls": s.node.Registry.TypeURLs(),
	})
}

func (s *Server) handleMsgEncode(w http.ResponseWriter, r *http.Request) {
	var req encodeRequest
	if !s.readJSON(w, r, &req) {
		return
	}

	msg, err := s.encode(req)
	if err != nil {
		s.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEnvelope(msg))
}

func (s *Server) handleMsgDecode(w http.ResponseWriter, r *http.Request) {
	var req envelope
	if !s.readJSON(w, r, &req) {
		return
	}

	msg, err := fromEnvelope(req)
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}

	out, err := s.node.Registry.Decode(msg)
	if err != nil {
		s.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, decodedMsg{TypeURL: msg.TypeURL(), Message: out})
}

func (s *Server) handleMsgParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if !s.readJSON(w, r, &req) {
		return
	}
	if _, ok := s.node.Registry.Lookup(req.Expected); !ok {
		s.writeErr(w, fmt.Errorf("%w: %s", tx.ErrUnknownTypeURL, req.Expected))
		return
	}

	msg, err := fromEnvelope(envelope{TypeURL: req.TypeURL, Value: req.Value})
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}

	out, err := msgs.ParseAs(req.Expected, msg)
	if err != nil {
		s.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, decodedMsg{TypeURL: msg.TypeURL(), Message: out})
}

func (s *Server) handleBodyEncode(w http.ResponseWriter, r *http.Request) {
	var req bodyEncodeRequest
	if !s.readJSON(w, r, &req) {
		return
	}

	body := &tx.Body{Memo: req.Memo, TimeoutHeight: req.TimeoutHeight}
	for i, m := range req.Messages {
		msg, err := s.encode(m)
		if err != nil {
			s.writeErr(w, fmt.Errorf("message %d: %w", i, err))
			return
		}
		body.Messages = append(body.Messages, msg)
	}

	data, err := body.Marshal()
	if err != nil {
		s.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"body": hexutil.Encode(data),
		"hash": s.bodyHash(body),
	})
}

func (s *Server) handleBodyDecode(w http.ResponseWriter, r *http.Request) {
	var req bodyDecodeRequest
	if !s.readJSON(w, r, &req) {
		return
	}

	data, err := hexutil.Decode(req.Body)
	if err != nil {
		httpError(w, http.StatusBadRequest, "invalid body hex: "+err.Error())
		return
	}

	body, decoded, err := tx.DecodeBody(s.node.Registry, data)
	if err != nil {
		s.writeErr(w, err)
		return
	}

	out := make([]decodedMsg, len(decoded))
	for i, d := range decoded {
		out[i] = decodedMsg{TypeURL: body.Messages[i].TypeURL(), Message: d}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"hash":           s.bodyHash(body),
		"memo":           body.Memo,
		"timeout_height": body.TimeoutHeight,
		"messages":       out,
	})
}

// -------------------- helpers --------------------

func (s *Server) encode(req encodeRequest) (tx.Msg, error) {
	m, err := s.node.Registry.New(req.TypeURL)
	if err != nil {
		return tx.Msg{}, err
	}

	dec := json.NewDecoder(bytes.NewReader(req.Value))
	dec.DisallowUnknownFields()
	if err := dec.Decode(m); err != nil {
		return tx.Msg{}, &badRequest{fmt.Sprintf("invalid %s json: %v", req.TypeURL, err)}
	}
	return s.node.Registry.Encode(m)
}

func (s *Server) bodyHash(b *tx.Body) string {
	h, err := b.Hash()
	if err != nil {
		s.log.Warn("body hash failed", "err", err)
		return ""
	}
	return h.String()
}

func (s *Server) readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Method != http.MethodPost {
		httpError(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	defer r.Body.Close()

	body := http.MaxBytesReader(w, r.Body, s.node.Config.MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return false
		}
		httpError(w, http.StatusBadRequest, "invalid request json")
		return false
	}
	return true
}

type badRequest struct{ msg string }

func (e *badRequest) Error() string { return e.msg }

// writeErr maps registry and codec errors onto HTTP status codes.
func (s *Server) writeErr(w http.ResponseWriter, err error) {
	var mismatch *tx.MsgTypeError
	var bad *badRequest

	switch {
	case errors.As(err, &mismatch):
		writeJSON(w, http.StatusConflict, map[string]any{
			"error":    err.Error(),
			"expected": mismatch.Expected,
			"found":    mismatch.Found,
		})
		return
	case errors.Is(err, tx.ErrUnknownTypeURL):
		httpError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, tx.ErrCodec), errors.As(err, &bad):
		httpError(w, http.StatusBadRequest, err.Error())
	default:
		s.log.Error("request failed", "err", err)
		httpError(w, http.StatusInternalServerError, "internal error")
		return
	}
	s.log.Warn("request rejected", "err", err)
}

func toEnvelope(m tx.Msg) envelope {
	return envelope{TypeURL: m.TypeURL(), Value: hexutil.Encode(m.Value())}
}

func fromEnvelope(e envelope) (tx.Msg, error) {
	value, err := hexutil.Decode(e.Value)
	if err != nil {
		return tx.Msg{}, fmt.Errorf("invalid value hex: %w", err)
	}
	return tx.NewMsg(e.TypeURL, value), nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		slog.Default().Error("rpc: write json", "err", err)
	}
}

func httpError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{
		"error": msg,
	})
}
