package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

type fakeObjectStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeObjectStorage() *fakeObjectStorage {
	return &fakeObjectStorage{objects: make(map[string][]byte)}
}

func (f *fakeObjectStorage) EnsureBucket(ctx context.Context) error { return nil }

func (f *fakeObjectStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = data
	return nil
}

func (f *fakeObjectStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[key]
	if !ok {
		return nil, errors.New("no such object")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeObjectStorage) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	return nil
}

func (f *fakeObjectStorage) Bucket() string { return "test-bucket" }

func newImageServer(t *testing.T) (*httptest.Server, *fakeObjectStorage) {
	t.Helper()
	store := newFakeObjectStorage()
	router := chi.NewRouter()
	router.Route("/images", func(r chi.Router) {
		ImageRouter(r, store)
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, store
}

func uploadImage(t *testing.T, baseURL, filename, contentType string, data []byte) *http.Response {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	resp, err := http.Post(baseURL+"/images/upload", writer.FormDataContentType(), &body)
	if err != nil {
		t.Fatalf("upload request: %v", err)
	}
	return resp
}

func TestImageUploadAndFetch(t *testing.T) {
	srv, _ := newImageServer(t)
	payload := []byte("not really a png, but close enough")

	resp := uploadImage(t, srv.URL, "part.png", "image/png", payload)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("upload status = %d, want 201", resp.StatusCode)
	}

	var uploaded UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		t.Fatalf("decode upload response: %v", err)
	}
	if !strings.HasSuffix(uploaded.ObjectKey, ".png") {
		t.Fatalf("object key %q should keep the file extension", uploaded.ObjectKey)
	}
	if uploaded.URL != "/images/"+uploaded.ObjectKey {
		t.Fatalf("url = %q, want /images/%s", uploaded.URL, uploaded.ObjectKey)
	}

	getResp, err := http.Get(srv.URL + uploaded.URL)
	if err != nil {
		t.Fatalf("fetch image: %v", err)
	}
	defer getResp.Body.Close()
	if getResp.StatusCode != http.StatusOK {
		t.Fatalf("fetch status = %d, want 200", getResp.StatusCode)
	}
	fetched, _ := io.ReadAll(getResp.Body)
	if !bytes.Equal(fetched, payload) {
		t.Fatalf("fetched %d bytes differ from uploaded %d bytes", len(fetched), len(payload))
	}
}

func TestImageUploadRejectsNonImage(t *testing.T) {
	srv, store := newImageServer(t)

	resp := uploadImage(t, srv.URL, "notes.txt", "text/plain", []byte("hello"))
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if len(store.objects) != 0 {
		t.Fatalf("store should be empty, has %d objects", len(store.objects))
	}
}

func TestImageGetUnknownKey(t *testing.T) {
	srv, _ := newImageServer(t)

	resp, err := http.Get(srv.URL + "/images/doesnotexist.png")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}
