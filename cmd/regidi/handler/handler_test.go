package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsundh/regidi/pkg/regidi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	NewHandler(regidi.Default()).Register(mux)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string, out any) int {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}

func TestHandleDigest(t *testing.T) {
	srv := newServer(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		want       DigestResponse
	}{
		{
			name:       "digest18",
			path:       "/api/v1/digest18/122775",
			wantStatus: http.StatusOK,
			want:       DigestResponse{Key: 122775, Digest: "potato"},
		},
		{
			name:       "digest24",
			path:       "/api/v1/digest24/122775",
			wantStatus: http.StatusOK,
			want:       DigestResponse{Key: 122775, Digest: "potato01"},
		},
		{
			name:       "hex input",
			path:       "/api/v1/digest18/1df97?format=hex",
			wantStatus: http.StatusOK,
			want:       DigestResponse{Key: 122775, Digest: "potato"},
		},
		{
			name:       "bad key",
			path:       "/api/v1/digest18/potato",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown format",
			path:       "/api/v1/digest18/1?format=base64",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantStatus != http.StatusOK {
				var resp ErrorResponse
				assert.Equal(t, tt.wantStatus, get(t, srv.URL+tt.path, &resp))
				assert.NotEmpty(t, resp.Error)
				return
			}

			var resp DigestResponse
			assert.Equal(t, tt.wantStatus, get(t, srv.URL+tt.path, &resp))
			assert.Equal(t, tt.want, resp)
		})
	}
}

func TestHandleReverse(t *testing.T) {
	srv := newServer(t)

	tests := []struct {
		name       string
		digest     string
		wantStatus int
		want       ReverseResponse
	}{
		{
			name:       "digest18",
			digest:     "potato",
			wantStatus: http.StatusOK,
			want:       ReverseResponse{Digest: "potato", Key: 122775, Bits: 18},
		},
		{
			name:       "digest24",
			digest:     "potato02",
			wantStatus: http.StatusOK,
			want:       ReverseResponse{Digest: "potato02", Key: 1<<18 | 122775, Bits: 24},
		},
		{
			name:       "uppercase",
			digest:     "POTATO",
			wantStatus: http.StatusOK,
			want:       ReverseResponse{Digest: "potato", Key: 122775, Bits: 18},
		},
		{
			name:       "no input",
			digest:     "skeskeske",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "bad length",
			digest:     "abc",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unresolvable",
			digest:     "xxxxxxx",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad suffix",
			digest:     "potato70",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := srv.URL + "/api/v1/reverse/" + tt.digest

			if tt.wantStatus != http.StatusOK {
				var resp ErrorResponse
				assert.Equal(t, tt.wantStatus, get(t, url, &resp))
				assert.NotEmpty(t, resp.Error)
				return
			}

			var resp ReverseResponse
			assert.Equal(t, tt.wantStatus, get(t, url, &resp))
			assert.Equal(t, tt.want, resp)
		})
	}
}
