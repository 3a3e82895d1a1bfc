package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/matzehuels/overlay/pkg/buildinfo"
	"github.com/matzehuels/overlay/pkg/cache"
	errs "github.com/matzehuels/overlay/pkg/errors"
	"github.com/matzehuels/overlay/pkg/gog"
	pkgio "github.com/matzehuels/overlay/pkg/io"
)

// parseResponse is the body of a successful POST /v1/parse.
type parseResponse struct {
	ID string `json:"id"`
	*pkgio.Document
}

type errorResponse struct {
	Code  errs.Code `json:"code"`
	Error string    `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	comment := s.opts.CommentChar
	if q := r.URL.Query().Get("comment"); q != "" {
		if err := errs.ValidateCommentChar(q); err != nil {
			writeError(w, err)
			return
		}
		comment, _ = utf8.DecodeRuneInString(q)
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, errs.New(errs.ErrCodeTooLarge, "request body exceeds %d bytes", tooLarge.Limit))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: errs.ErrCodeReadFailed, Error: err.Error()})
		return
	}

	key := s.keyer.ParseKey(cache.Hash(data), cache.ParseKeyOpts{
		CommentChar: string(comment),
		Version:     buildinfo.CacheVersion(),
	})

	if cached, ok, err := s.opts.Cache.Get(ctx, key); err != nil {
		s.logger.Warn("cache get failed", "err", err)
	} else if ok {
		doc, err := pkgio.ReadJSON(bytes.NewReader(cached))
		if err == nil {
			w.Header().Set("X-Cache", "hit")
			writeJSON(w, http.StatusOK, parseResponse{ID: requestIDFrom(ctx), Document: doc})
			return
		}
		s.logger.Warn("discarding unreadable cache entry", "err", err)
	}

	doc, err := s.parse(data, comment)
	if err != nil {
		writeError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := pkgio.WriteJSON(doc, &buf); err == nil {
		if err := s.opts.Cache.Set(ctx, key, buf.Bytes(), s.opts.CacheTTL); err != nil {
			s.logger.Warn("cache set failed", "err", err)
		}
	}

	w.Header().Set("X-Cache", "miss")
	writeJSON(w, http.StatusOK, parseResponse{ID: requestIDFrom(ctx), Document: doc})
}

func (s *Server) parse(data []byte, comment rune) (*pkgio.Document, error) {
	p := gog.NewParser()
	if err := p.SetCommentChar(comment); err != nil {
		return nil, err
	}
	collector := &gog.Collector{}
	p.SetHooks(collector)

	shapes, err := p.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	for _, d := range collector.Diagnostics {
		s.logger.Debug("diagnostic", "line", d.Line, "err", d.Err)
	}
	return pkgio.NewDocument(shapes, collector.Diagnostics), nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError answers with the status derived from err's code.
func writeError(w http.ResponseWriter, err error) {
	code := errs.GetCode(err)
	if code == "" {
		code = errs.ErrCodeInternal
	}
	writeJSON(w, errs.HTTPStatus(err), errorResponse{Code: code, Error: errs.UserMessage(err)})
}
