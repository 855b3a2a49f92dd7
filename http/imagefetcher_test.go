package http_test

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/paperpress"
	"github.com/fwojciec/paperpress/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageFetcher_FetchImage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte{0x89, 'P', 'N', 'G'})
	}))
	defer srv.Close()

	f := http.NewImageFetcher()

	data, contentType, err := f.FetchImage(context.Background(), srv.URL+"/photo.png")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data)
	assert.Equal(t, "image/png", contentType)
}

func TestImageFetcher_FetchImage_Non200(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusGone)
	}))
	defer srv.Close()

	f := http.NewImageFetcher()

	_, _, err := f.FetchImage(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Equal(t, paperpress.EUNAVAILABLE, paperpress.ErrorCode(err))
}

func TestImageFetcher_FetchImage_ContextCanceled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	f := http.NewImageFetcher()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := f.FetchImage(ctx, srv.URL)
	require.Error(t, err)
}
