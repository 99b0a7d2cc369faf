package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestUploadDrawing_MultipartBody(t *testing.T) {
	var gotPath string
	var gotFile, gotDescription string
	var descriptionPresent bool

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		gotFile = header.Filename + ":" + string(data)

		values, ok := r.MultipartForm.Value["description"]
		descriptionPresent = ok && len(values) > 0
		if descriptionPresent {
			gotDescription = values[0]
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"id": 9, "project_id": 42, "filename": header.Filename,
			"status": "draft", "uploaded_at": time.Now().Format(time.RFC3339),
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	drawing, err := c.UploadDrawing(context.Background(), 42, "plan-a.pdf", strings.NewReader("%PDF-1.4"), "")
	if err != nil {
		t.Fatalf("UploadDrawing: %v", err)
	}

	if gotPath != "/drawings/upload/42" {
		t.Errorf("path = %s, want /drawings/upload/42", gotPath)
	}
	if gotFile != "plan-a.pdf:%PDF-1.4" {
		t.Errorf("file = %q", gotFile)
	}
	// Empty description must still be present as a form field
	if !descriptionPresent {
		t.Error("description field missing from multipart body")
	}
	if gotDescription != "" {
		t.Errorf("description = %q, want empty", gotDescription)
	}
	if drawing.ID != 9 {
		t.Errorf("drawing id = %d, want 9", drawing.ID)
	}
}

func TestListDrawings_Path(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/drawings/project/42" {
			t.Errorf("path = %s, want /drawings/project/42", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]map[string]any{})
	}))
	defer srv.Close()

	c := New(srv.URL)
	drawings, err := c.ListDrawings(context.Background(), 42)
	if err != nil {
		t.Fatalf("ListDrawings: %v", err)
	}
	if len(drawings) != 0 {
		t.Errorf("len = %d, want 0", len(drawings))
	}
}

func TestDeleteDrawing(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL)
	if err := c.DeleteDrawing(context.Background(), 7); err != nil {
		t.Fatalf("DeleteDrawing: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/drawings/7" {
		t.Errorf("request = %s %s, want DELETE /drawings/7", gotMethod, gotPath)
	}
}

func TestDownloadDrawing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/drawings/download/5" {
			t.Errorf("path = %s, want /drawings/download/5", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="plan-a.pdf"`)
		w.Write([]byte("%PDF-1.4"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	dl, err := c.DownloadDrawing(context.Background(), 5)
	if err != nil {
		t.Fatalf("DownloadDrawing: %v", err)
	}
	defer dl.Body.Close()

	if dl.Filename != "plan-a.pdf" {
		t.Errorf("filename = %q, want plan-a.pdf", dl.Filename)
	}
	if dl.ContentType != "application/pdf" {
		t.Errorf("content type = %q, want application/pdf", dl.ContentType)
	}
	data, _ := io.ReadAll(dl.Body)
	if string(data) != "%PDF-1.4" {
		t.Errorf("body = %q", data)
	}
}

func TestDownloadDrawing_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Drawing not found"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.DownloadDrawing(context.Background(), 99)
	if !IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}
