package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/ozon-logistics-api/internal/config"
)

// fakeS3 answers the handful of S3 calls the archive makes.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func (s *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch r.Method {
	case http.MethodHead:
		w.WriteHeader(http.StatusOK)
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		s.objects[r.URL.Path] = body
		s.types[r.URL.Path] = r.Header.Get("Content-Type")
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.WriteHeader(http.StatusOK)
	default:
		w.WriteHeader(http.StatusNotImplemented)
	}
}

func TestNewArchive_Disabled(t *testing.T) {
	archive, err := NewArchive(context.Background(), config.Storage{Enabled: false})
	require.NoError(t, err)
	assert.Nil(t, archive)
}

func TestMinioArchive_Store(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{}, types: map[string]string{}}
	server := httptest.NewServer(fake)
	defer server.Close()

	archive, err := NewArchive(context.Background(), config.Storage{
		Enabled:   true,
		Endpoint:  strings.TrimPrefix(server.URL, "http://"),
		AccessKey: "minio",
		SecretKey: "minio123",
		Bucket:    "ozon-reports",
		URLExpiry: time.Hour,
	})
	require.NoError(t, err)
	require.NotNil(t, archive)

	link, err := archive.Store(context.Background(), "reports/836583/abc.xlsx", []byte("report"), "application/octet-stream")
	require.NoError(t, err)

	assert.Contains(t, link, "/ozon-reports/reports/836583/abc.xlsx")
	assert.Contains(t, link, "X-Amz-Signature=")
	assert.Contains(t, link, "X-Amz-Expires=3600")

	fake.mu.Lock()
	defer fake.mu.Unlock()
	// plain http uploads are aws-chunked, the payload is embedded in the body
	assert.Contains(t, string(fake.objects["/ozon-reports/reports/836583/abc.xlsx"]), "report")
	assert.Equal(t, "application/octet-stream", fake.types["/ozon-reports/reports/836583/abc.xlsx"])
}
