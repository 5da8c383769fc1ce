package imagestore_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"home-inventory/pkg/imagestore"
)

// uploadedFile builds a *multipart.FileHeader the way gin would hand it to us.
func uploadedFile(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("images", name)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	w.Close()

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("parse multipart: %v", err)
	}
	return req.MultipartForm.File["images"][0]
}

func TestDiskStore(t *testing.T) {
	t.Run("Save Writes File And Returns Ref", func(t *testing.T) {
		dir := t.TempDir()
		store, err := imagestore.NewDisk(dir, 10)
		if err != nil {
			t.Fatalf("new disk store: %v", err)
		}

		ref, err := store.Save(context.Background(), uploadedFile(t, "photo.png", []byte("fake-png")))
		if err != nil {
			t.Fatalf("save: %v", err)
		}
		if !strings.HasPrefix(ref, "/uploads/") {
			t.Errorf("ref %q missing /uploads/ prefix", ref)
		}
		if !strings.HasSuffix(ref, "_photo.png") {
			t.Errorf("ref %q missing original filename suffix", ref)
		}

		data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(ref, "/uploads/")))
		if err != nil {
			t.Fatalf("read saved file: %v", err)
		}
		if string(data) != "fake-png" {
			t.Errorf("unexpected file content %q", data)
		}
	})

	t.Run("Distinct Refs For Same Filename", func(t *testing.T) {
		store, err := imagestore.NewDisk(t.TempDir(), 10)
		if err != nil {
			t.Fatalf("new disk store: %v", err)
		}

		a, _ := store.Save(context.Background(), uploadedFile(t, "photo.png", []byte("a")))
		b, _ := store.Save(context.Background(), uploadedFile(t, "photo.png", []byte("b")))
		if a == b {
			t.Errorf("expected unique refs, both were %q", a)
		}
	})

	t.Run("Rejects Oversized Upload", func(t *testing.T) {
		store, err := imagestore.NewDisk(t.TempDir(), 1)
		if err != nil {
			t.Fatalf("new disk store: %v", err)
		}

		big := bytes.Repeat([]byte("x"), (1<<20)+1)
		if _, err := store.Save(context.Background(), uploadedFile(t, "big.png", big)); err != imagestore.ErrFileTooLarge {
			t.Errorf("expected ErrFileTooLarge, got %v", err)
		}
	})
}
