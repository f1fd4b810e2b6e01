package archive

import (
	"bytes"
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

	"wakeup-punch-system/config"
)

func TestNewWithoutBucket(t *testing.T) {
	a, err := New(context.Background(), config.S3{})
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestPutUploadsAndPresigns(t *testing.T) {
	var (
		mu      sync.Mutex
		gotPath string
		gotBody []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		if r.Method == http.MethodPut {
			gotPath = r.URL.Path
			gotBody, _ = io.ReadAll(r.Body)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a, err := New(context.Background(), config.S3{
		Endpoint:        srv.URL,
		Bucket:          "exports",
		Region:          "us-east-1",
		AccessKey:       "ak",
		SecretAccessKey: "sk",
		Prefix:          "/rank/",
		UsePathStyle:    true,
		PresignMinutes:  30,
	})
	require.NoError(t, err)
	now := time.Date(2024, 5, 31, 12, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return now }

	obj, err := a.Put(context.Background(), "ranking-2024-05.xlsx",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", bytes.NewReader([]byte("PK-data")))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(obj.Key, "rank/"))
	assert.True(t, strings.HasSuffix(obj.Key, "-ranking-2024-05.xlsx"))
	assert.Contains(t, obj.URL, "/exports/"+obj.Key)
	assert.Contains(t, obj.URL, "X-Amz-Signature=")
	assert.Equal(t, now.Add(30*time.Minute), obj.ExpiresAt)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "/exports/"+obj.Key, gotPath)
	assert.Contains(t, string(gotBody), "PK-data")
}
