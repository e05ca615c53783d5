package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type probeDoc struct {
	Value string `xml:"value"`
}

func TestFetchDecodesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<probeDoc><value>hello</value></probeDoc>`))
	}))
	defer srv.Close()

	client := NewClient(time.Second, zerolog.Nop())

	var doc probeDoc
	require.NoError(t, client.Fetch(context.Background(), "probe", srv.URL, &doc))
	assert.Equal(t, "hello", doc.Value)
}

func TestFetchRejectsNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(time.Second, zerolog.Nop())

	err := client.Fetch(context.Background(), "probe", srv.URL, &probeDoc{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 503")
}

func TestFetchReportsDecodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<probeDoc><value>`))
	}))
	defer srv.Close()

	client := NewClient(time.Second, zerolog.Nop())

	err := client.Fetch(context.Background(), "probe", srv.URL, &probeDoc{})
	assert.Error(t, err)
}

func TestFetchUnreachableFeed(t *testing.T) {
	client := NewClient(100*time.Millisecond, zerolog.Nop())

	err := client.Fetch(context.Background(), "probe", "http://127.0.0.1:1/none", &probeDoc{})
	assert.Error(t, err)
}
