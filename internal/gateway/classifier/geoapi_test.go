package classifier_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"click-gateway/internal/gateway/classifier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPResolver_ResolveCountry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/json/81.2.69.142", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","countryCode":"GB"}`))
	}))
	defer srv.Close()

	r := classifier.NewHTTPResolver(srv.URL+"/json/{ip}", srv.Client())
	country, err := r.ResolveCountry(context.Background(), "81.2.69.142")

	require.NoError(t, err)
	assert.Equal(t, "GB", country)
}

func TestHTTPResolver_FailStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"fail"}`))
	}))
	defer srv.Close()

	r := classifier.NewHTTPResolver(srv.URL+"/{ip}", srv.Client())
	_, err := r.ResolveCountry(context.Background(), "10.0.0.1")

	assert.Error(t, err)
}

func TestHTTPResolver_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	r := classifier.NewHTTPResolver(srv.URL+"/{ip}", srv.Client())
	_, err := r.ResolveCountry(context.Background(), "10.0.0.1")

	assert.Error(t, err)
}

func TestHTTPResolver_HonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	r := classifier.NewHTTPResolver(srv.URL+"/{ip}", srv.Client())
	_, err := r.ResolveCountry(ctx, "10.0.0.1")

	assert.Error(t, err)
}
