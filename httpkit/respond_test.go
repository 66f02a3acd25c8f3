package httpkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "placard/internal/platform/errors"
)

func TestJSONWritesBodyAndContentType(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	JSON(rec, http.StatusOK, map[string]string{"ok": "yes"})

	if rec.Code != http.StatusOK {
		t.Fatalf("code=%d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content type=%q", ct)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["ok"] != "yes" {
		t.Fatalf("body=%v", body)
	}
}

func TestRespondErrorMapsCodes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
		code perr.ErrorCode
	}{
		{"not found", perr.NotFoundf("no such asset"), http.StatusNotFound, perr.ErrorCodeNotFound},
		{"invalid", perr.InvalidArgf("bad scheme"), http.StatusUnprocessableEntity, perr.ErrorCodeInvalidArgument},
		{"unauthorized", perr.Unauthorizedf("credentials required"), http.StatusUnauthorized, perr.ErrorCodeUnauthorized},
		{"unknown", http.ErrBodyNotAllowed, http.StatusInternalServerError, perr.ErrorCodeUnknown},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			RespondError(rec, req, c.err)

			if rec.Code != c.want {
				t.Fatalf("code=%d, want %d", rec.Code, c.want)
			}
			var env Envelope
			if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if env.StatusCode != c.want || env.Code != c.code {
				t.Fatalf("envelope=%+v, want status %d code %q", env, c.want, c.code)
			}
		})
	}
}
