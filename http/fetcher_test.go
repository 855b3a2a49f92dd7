package http_test

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/paperpress"
	"github.com/fwojciec/paperpress/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	var gotUA string
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer srv.Close()

	f := http.NewFetcher()
	defer f.Close()

	html, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, html, "hello")
	assert.Equal(t, http.DefaultUserAgent, gotUA)
}

func TestFetcher_Fetch_CustomUserAgent(t *testing.T) {
	t.Parallel()

	var gotUA string
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	f := http.NewFetcher(http.WithUserAgent("paperpress/1.0"))
	defer f.Close()

	_, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "paperpress/1.0", gotUA)
}

func TestFetcher_Fetch_Non200(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusNotFound)
	}))
	defer srv.Close()

	f := http.NewFetcher()
	defer f.Close()

	_, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Equal(t, paperpress.EUNAVAILABLE, paperpress.ErrorCode(err))
}

func TestFetcher_Fetch_Timeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	f := http.NewFetcher(http.WithTimeout(20 * time.Millisecond))
	defer f.Close()

	_, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Equal(t, paperpress.EUNAVAILABLE, paperpress.ErrorCode(err))
}

func TestFetcher_Check_UsesHead(t *testing.T) {
	t.Parallel()

	var methods []string
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		methods = append(methods, r.Method)
	}))
	defer srv.Close()

	f := http.NewFetcher()
	defer f.Close()

	status, err := f.Check(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, status)
	assert.Equal(t, []string{nethttp.MethodHead}, methods)
}

func TestFetcher_Check_FallsBackToGetOn405(t *testing.T) {
	t.Parallel()

	var methods []string
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		methods = append(methods, r.Method)
		if r.Method == nethttp.MethodHead {
			w.WriteHeader(nethttp.StatusMethodNotAllowed)
			return
		}
	}))
	defer srv.Close()

	f := http.NewFetcher()
	defer f.Close()

	status, err := f.Check(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, status)
	assert.Equal(t, []string{nethttp.MethodHead, nethttp.MethodGet}, methods)
}

func TestFetcher_Check_Inaccessible(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusForbidden)
	}))
	defer srv.Close()

	f := http.NewFetcher()
	defer f.Close()

	_, err := f.Check(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Equal(t, paperpress.EUNAVAILABLE, paperpress.ErrorCode(err))
}
