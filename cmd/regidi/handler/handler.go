package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsundh/regidi/internal/format"
	"github.com/jsundh/regidi/pkg/regidi"
)

type handler struct {
	codec *regidi.Codec
}

func NewHandler(codec *regidi.Codec) *handler {
	return &handler{
		codec: codec,
	}
}

// Register mounts the API routes on mux.
func (h *handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/digest18/{key}", h.HandleDigest18)
	mux.HandleFunc("GET /api/v1/digest24/{key}", h.HandleDigest24)
	mux.HandleFunc("GET /api/v1/reverse/{digest}", h.HandleReverse)
}

func (h *handler) HandleDigest18(w http.ResponseWriter, r *http.Request) {
	h.handleDigest(w, r, h.codec.Digest18)
}

func (h *handler) HandleDigest24(w http.ResponseWriter, r *http.Request) {
	h.handleDigest(w, r, h.codec.Digest24)
}

func (h *handler) handleDigest(w http.ResponseWriter, r *http.Request, digest func(uint64) string) {
	raw := r.PathValue("key")
	if raw == "" {
		writeError(w, http.StatusBadRequest, errors.New("key is required"))
		return
	}

	inputFormat := r.URL.Query().Get("format")
	if inputFormat == "" {
		inputFormat = format.Int
	}

	key, err := format.ParseKey(raw, inputFormat)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, DigestResponse{Key: key, Digest: digest(key)})
}

func (h *handler) HandleReverse(w http.ResponseWriter, r *http.Request) {
	digest := r.PathValue("digest")
	if digest == "" {
		writeError(w, http.StatusBadRequest, errors.New("digest is required"))
		return
	}

	key, bits, err := format.Reverse(h.codec, digest)
	if err != nil {
		if errors.Is(err, regidi.ErrNoInput) {
			writeError(w, http.StatusNotFound, err)
			return
		}

		if errors.Is(err, regidi.ErrInvalidDigestLength) ||
			errors.Is(err, regidi.ErrUnresolvableSplit) ||
			errors.Is(err, regidi.ErrInvalidSuffix) {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, ReverseResponse{Digest: format.Normalize(digest), Key: key, Bits: bits})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}
