// Package handlers provides http.HandlerFunc handler functions to be used for endpoints.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi"

	"github.com/danilovkiri/dk_go_shortlinks/internal/api/rest/middleware"
	"github.com/danilovkiri/dk_go_shortlinks/internal/api/rest/modeldto"
	"github.com/danilovkiri/dk_go_shortlinks/internal/metrics"
	serviceErrors "github.com/danilovkiri/dk_go_shortlinks/internal/service/errors"
	"github.com/danilovkiri/dk_go_shortlinks/internal/service/modellink"
	"github.com/danilovkiri/dk_go_shortlinks/internal/service/shortener"
	shortenerV1 "github.com/danilovkiri/dk_go_shortlinks/internal/service/shortener/v1"
)

// Messages sent to clients when the datastore fails.
const (
	MsgDatabaseError = "database error"
	MsgDBError       = "db error"
	MsgNotFound      = "not found"
	TextNotFound     = "Not found"
	TextServerError  = "Server error"
)

const storageTimeout = 500 * time.Millisecond

// URLHandler defines data structure handling and provides support for adding new implementations.
type URLHandler struct {
	processor shortener.Processor
	recorder  metrics.Recorder
}

// InitURLHandler initializes a URLHandler object and sets its attributes.
func InitURLHandler(processor shortener.Processor, recorder metrics.Recorder) (*URLHandler, error) {
	if processor == nil {
		return nil, fmt.Errorf("nil Shortener Service was passed to service URL Handler initializer")
	}
	if recorder == nil {
		return nil, fmt.Errorf("nil metrics Recorder was passed to service URL Handler initializer")
	}
	return &URLHandler{processor: processor, recorder: recorder}, nil
}

// HandleShorten accepts JSON as {"url":"<some_url>"} and responds with the stored link.
func (h *URLHandler) HandleShorten() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		// set context timeout to 500 ms for timing DB operations
		ctx, cancel := context.WithTimeout(r.Context(), storageTimeout)
		defer cancel()
		var req modeldto.RequestShorten
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.recorder.ObserveLatency(time.Since(start))
			writeError(w, http.StatusBadRequest, shortenerV1.MsgInvalidURL)
			return
		}
		link, err := h.processor.Shorten(ctx, req.URL, ownerPtr(r))
		h.recorder.ObserveLatency(time.Since(start))
		if err != nil {
			var validationError *serviceErrors.ValidationError
			if errors.As(err, &validationError) {
				writeError(w, http.StatusBadRequest, validationError.Msg)
				return
			}
			log.Println("HandleShorten:", err)
			writeError(w, http.StatusInternalServerError, MsgDatabaseError)
			return
		}
		h.recorder.IncCreated()
		log.Println("HandleShorten: stored", link.URL, "as", link.Code)
		writeJSON(w, http.StatusOK, toResponseLink(r, link))
	}
}

// HandleList returns every link, or the caller's links when mine=true.
func (h *URLHandler) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), storageTimeout)
		defer cancel()
		owner, _ := middleware.OwnerFromContext(r.Context())
		mine := r.URL.Query().Get("mine") == "true"
		links, err := h.processor.List(ctx, owner, mine)
		if err != nil {
			var validationError *serviceErrors.ValidationError
			if errors.As(err, &validationError) {
				writeError(w, http.StatusBadRequest, validationError.Msg)
				return
			}
			log.Println("HandleList:", err)
			writeError(w, http.StatusInternalServerError, MsgDBError)
			return
		}
		resp := make([]modeldto.ResponseLink, 0, len(links))
		for _, link := range links {
			resp = append(resp, toResponseLink(r, link))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleDelete removes a link owned by the caller.
func (h *URLHandler) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), storageTimeout)
		defer cancel()
		code := chi.URLParam(r, "code")
		owner, _ := middleware.OwnerFromContext(r.Context())
		err := h.processor.Delete(ctx, code, owner)
		if err != nil {
			var (
				notFoundError  *serviceErrors.NotFoundError
				forbiddenError *serviceErrors.ForbiddenError
			)
			switch {
			case errors.As(err, &notFoundError):
				writeError(w, http.StatusNotFound, MsgNotFound)
			case errors.As(err, &forbiddenError):
				writeError(w, http.StatusForbidden, forbiddenError.Msg)
			default:
				log.Println("HandleDelete:", err)
				writeError(w, http.StatusInternalServerError, MsgDBError)
			}
			return
		}
		log.Println("HandleDelete: removed", code)
		writeJSON(w, http.StatusOK, modeldto.ResponseDeleted{Deleted: true})
	}
}

// HandleInfo renders an HTML page describing the link behind code.
func (h *URLHandler) HandleInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), storageTimeout)
		defer cancel()
		link, err := h.processor.Lookup(ctx, chi.URLParam(r, "code"))
		if err != nil {
			writeLookupError(w, "HandleInfo", err)
			return
		}
		var buf bytes.Buffer
		data := infoPageData{
			URL:       link.URL,
			CreatedAt: link.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		if err := infoPage.Execute(&buf, data); err != nil {
			log.Println("HandleInfo:", err)
			writeText(w, http.StatusInternalServerError, TextServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
	}
}

// HandleRedirect provides client with a redirect to the original URL accessed by its code.
func (h *URLHandler) HandleRedirect() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := chi.URLParam(r, "code")
		if shortener.IsReserved(code) {
			writeText(w, http.StatusNotFound, TextNotFound)
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), storageTimeout)
		defer cancel()
		start := time.Now()
		link, err := h.processor.Resolve(ctx, code)
		h.recorder.ObserveLatency(time.Since(start))
		if err != nil {
			var notFoundError *serviceErrors.NotFoundError
			if errors.As(err, &notFoundError) {
				h.recorder.IncNotFound()
			}
			writeLookupError(w, "HandleRedirect", err)
			return
		}
		h.recorder.IncRedirect()
		http.Redirect(w, r, link.URL, http.StatusFound)
	}
}

// HandleHealth reports that the process is up.
func (h *URLHandler) HandleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, modeldto.ResponseHealth{Status: "ok"})
	}
}

// HandlePingDB checks the datastore connection.
func (h *URLHandler) HandlePingDB() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), storageTimeout)
		defer cancel()
		if err := h.processor.PingDB(ctx); err != nil {
			log.Println("HandlePingDB:", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

func writeLookupError(w http.ResponseWriter, op string, err error) {
	var notFoundError *serviceErrors.NotFoundError
	if errors.As(err, &notFoundError) {
		writeText(w, http.StatusNotFound, TextNotFound)
		return
	}
	log.Println(op+":", err)
	writeText(w, http.StatusInternalServerError, TextServerError)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, modeldto.ResponseError{Error: msg})
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(msg))
}

func ownerPtr(r *http.Request) *string {
	owner, ok := middleware.OwnerFromContext(r.Context())
	if !ok {
		return nil
	}
	return &owner
}

// shortURL builds scheme://host/code from the incoming request.
func shortURL(r *http.Request, code string) string {
	scheme := "http"
	if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	return scheme + "://" + r.Host + "/" + code
}

func toResponseLink(r *http.Request, link modellink.ShortLink) modeldto.ResponseLink {
	return modeldto.ResponseLink{
		ID:        link.ID,
		Code:      link.Code,
		ShortURL:  shortURL(r, link.Code),
		URL:       link.URL,
		OwnerID:   link.OwnerID,
		CreatedAt: link.CreatedAt.UTC(),
	}
}
