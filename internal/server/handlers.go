package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vitrine-dev/vitrine/pkg/display"
	"github.com/vitrine-dev/vitrine/pkg/engine"
	"github.com/vitrine-dev/vitrine/pkg/errors"
	"github.com/vitrine-dev/vitrine/pkg/mime"
	"github.com/vitrine-dev/vitrine/pkg/objects"
	"github.com/vitrine-dev/vitrine/pkg/publish"
	"github.com/vitrine-dev/vitrine/pkg/store"
)

// renderRequest is the body of POST /v1/render.
type renderRequest struct {
	Object string         `json:"object"`
	Params objects.Params `json:"params"`
	engine.Options
}

// renderResponse is the body returned by POST /v1/render.
type renderResponse struct {
	Record    store.Record `json:"record"`
	CacheHits int          `json:"cache_hits"`
	Absent    []mime.Kind  `json:"absent,omitempty"` // requested kinds with no representation
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}

	obj, err := objects.Build(req.Object, req.Params)
	if err != nil {
		writeError(w, err)
		return
	}

	ctx := r.Context()
	opts := req.Options
	opts.Logger = s.logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		writeError(w, err)
		return
	}

	var resp renderResponse
	if _, ok := obj.(display.Displayer); ok {
		// Self-displaying objects publish into a capture sink and the
		// captured representations become the stored bundle.
		capture := publish.NewCapture()
		if err := s.runner.Display(ctx, obj, capture, opts); err != nil {
			writeError(w, err)
			return
		}
		resp.Record = store.NewRecord(display.TypeName(obj), capture.Bundle())
	} else {
		result, err := s.runner.Execute(ctx, obj, opts)
		if err != nil {
			writeError(w, err)
			return
		}
		resp.Record = store.NewRecord(display.TypeName(obj), result.Bundle)
		resp.CacheHits = result.CacheInfo.Hits
		for _, kind := range opts.Kinds {
			if _, ok := result.Bundle[kind]; !ok {
				resp.Absent = append(resp.Absent, kind)
			}
		}
	}

	if err := s.store.Put(ctx, resp.Record); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeStore, err, "store bundle"))
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// kindsResponse is the body of GET /v1/kinds.
type kindsResponse struct {
	Kinds     []mime.Kind     `json:"kinds"`
	Renderers []rendererEntry `json:"renderers"`
}

type rendererEntry struct {
	Kind mime.Kind `json:"kind"`
	Type string    `json:"type"`
}

func (s *Server) handleKinds(w http.ResponseWriter, r *http.Request) {
	resp := kindsResponse{Kinds: mime.Known, Renderers: []rendererEntry{}}
	for _, e := range s.runner.Registry.Entries() {
		resp.Renderers = append(resp.Renderers, rendererEntry{Kind: e.Kind, Type: e.Type.String()})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListBundles(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid limit: %s", raw))
			return
		}
		limit = n
	}

	records, err := s.store.List(r.Context(), limit)
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeStore, err, "list bundles"))
		return
	}
	if records == nil {
		records = []store.Record{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleGetBundle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, err := s.store.Get(r.Context(), id)
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeStore, err, "get bundle"))
		return
	}
	if rec == nil {
		writeError(w, errors.New(errors.ErrCodeNotFound, "bundle not found: %s", id))
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteBundle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeStore, err, "delete bundle"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// errorResponse is the JSON shape of every error reply.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps error codes to HTTP statuses and writes a JSON body.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidKind, errors.ErrCodeInvalidObject,
		errors.ErrCodeInvalidInput, errors.ErrCodeInvalidConfig:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeUnsupported:
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, errorResponse{
		Error: errors.UserMessage(err),
		Code:  string(errors.GetCode(err)),
	})
}
