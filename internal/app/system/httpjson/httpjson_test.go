package httpjson

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, 201, map[string]string{"hello": "world"})

	if rec.Code != 201 {
		t.Errorf("status: got %d, want 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want application/json", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["hello"] != "world" {
		t.Errorf("body: got %v", body)
	}
}

func TestError_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, 403, CodeForbidden, "access denied to this organization")

	if rec.Code != 403 {
		t.Errorf("status: got %d, want 403", rec.Code)
	}

	var env struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if env.Error.Code != CodeForbidden {
		t.Errorf("code: got %q, want %q", env.Error.Code, CodeForbidden)
	}
	if env.Error.Message == "" {
		t.Error("expected a message")
	}
}

func TestDecode(t *testing.T) {
	type in struct {
		Name string `json:"name"`
	}

	t.Run("valid object", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"ok"}`))
		var dst in
		if err := Decode(httptest.NewRecorder(), req, &dst); err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if dst.Name != "ok" {
			t.Errorf("Name: got %q", dst.Name)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"nope":1}`))
		var dst in
		if err := Decode(httptest.NewRecorder(), req, &dst); err == nil {
			t.Error("expected error for unknown field")
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{`))
		var dst in
		if err := Decode(httptest.NewRecorder(), req, &dst); err == nil {
			t.Error("expected error for malformed body")
		}
	})

	t.Run("trailing garbage", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"a"}{"name":"b"}`))
		var dst in
		if err := Decode(httptest.NewRecorder(), req, &dst); err == nil {
			t.Error("expected error for trailing content")
		}
	})
}
