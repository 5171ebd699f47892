package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"blogpilot/internal/infra/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// probeCounter records probe outcomes and ignores everything else.
type probeCounter struct {
	metrics.Nop
	mu             sync.Mutex
	found, missing int
}

func (c *probeCounter) RecordProbe(found bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if found {
		c.found++
	} else {
		c.missing++
	}
}

func TestImageProbe_Exists(t *testing.T) {
	var mu sync.Mutex
	var methods []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		methods = append(methods, r.Method)
		mu.Unlock()

		switch r.URL.Path {
		case "/generated_images/post_1_img_1.png":
			w.WriteHeader(http.StatusOK)
		case "/generated_images/head_not_allowed.png":
			if r.Method == http.MethodHead {
				w.WriteHeader(http.StatusMethodNotAllowed)

				return
			}
			_, _ = w.Write([]byte{0x89, 'P', 'N', 'G'})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	counter := &probeCounter{}
	p, err := NewImageProbe(Options{
		BaseURL:              server.URL + "/api/v1",
		Timeout:              time.Second,
		AllowPrivateNetworks: true,
		Metrics:              counter,
	})
	require.NoError(t, err)
	ctx := context.Background()

	found, err := p.Exists(ctx, "/generated_images/post_1_img_1.png")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = p.Exists(ctx, server.URL+"/generated_images/post_1_img_2.png")
	require.NoError(t, err)
	assert.False(t, found)

	found, err = p.Exists(ctx, "/generated_images/head_not_allowed.png")
	require.NoError(t, err)
	assert.True(t, found)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{http.MethodHead, http.MethodHead, http.MethodHead, http.MethodGet}, methods)

	// One count per check, even when HEAD falls back to GET.
	assert.Equal(t, 2, counter.found)
	assert.Equal(t, 1, counter.missing)
}

func TestImageProbe_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	base := server.URL
	server.Close()

	p, err := NewImageProbe(Options{BaseURL: base, AllowPrivateNetworks: true})
	require.NoError(t, err)

	found, err := p.Exists(context.Background(), "/generated_images/a.png")
	assert.Error(t, err)
	assert.False(t, found)
}

func TestImageProbe_SafeClientBlocksLoopback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	p, err := NewImageProbe(Options{BaseURL: server.URL, Timeout: time.Second})
	require.NoError(t, err)

	found, err := p.Exists(context.Background(), "/generated_images/a.png")
	assert.Error(t, err)
	assert.False(t, found)
}

func TestImageProbe_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	p, err := NewImageProbe(Options{BaseURL: server.URL, AllowPrivateNetworks: true})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = p.Exists(ctx, "/generated_images/a.png")
	assert.Error(t, err)
}
