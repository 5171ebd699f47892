package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	deliverycontext "blogpilot/internal/delivery/context"
	"blogpilot/internal/domain/entity"
	domainerrors "blogpilot/internal/domain/errors"
	"blogpilot/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type tokenHolder struct {
	mu    sync.Mutex
	token string
}

func (h *tokenHolder) Token() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.token
}

func (h *tokenHolder) set(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
}

func newTestClient(t *testing.T, handler http.Handler, tokens *tokenHolder) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Options{
		BaseURL:        server.URL,
		RequestTimeout: time.Second,
		Tokens:         tokens,
	})
	require.NoError(t, err)

	return client
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func requireAPIError(t *testing.T, err error) *domainerrors.APIError {
	t.Helper()

	var apiErr *domainerrors.APIError
	require.True(t, errors.As(err, &apiErr), "expected *APIError, got %T", err)

	return apiErr
}

func TestNewClient(t *testing.T) {
	t.Run("appends api prefix", func(t *testing.T) {
		client, err := NewClient(Options{BaseURL: "http://localhost:8000/"})
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8000/api/v1", client.BaseURL().String())
	})

	t.Run("keeps existing prefix", func(t *testing.T) {
		client, err := NewClient(Options{BaseURL: "http://localhost:8000/api/v1"})
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8000/api/v1", client.BaseURL().String())
	})

	t.Run("rejects relative url", func(t *testing.T) {
		_, err := NewClient(Options{BaseURL: "/api"})
		assert.Error(t, err)
	})
}

func TestClient_AuthorizationHeaderReadAtCallTime(t *testing.T) {
	var seen []string
	var mu sync.Mutex
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Header.Get("Authorization"))
		mu.Unlock()
		writeJSON(w, http.StatusOK, []entity.Blog{})
	})

	tokens := &tokenHolder{}
	client := newTestClient(t, handler, tokens)

	_, err := client.ListBlogs(context.Background())
	require.NoError(t, err)

	tokens.set("abc")
	_, err = client.ListBlogs(context.Background())
	require.NoError(t, err)

	tokens.set("")
	_, err = client.ListBlogs(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"", "Bearer abc", ""}, seen)
}

func TestClient_ForwardsRequestID(t *testing.T) {
	var got string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(deliverycontext.HeaderXRequestID)
		writeJSON(w, http.StatusOK, []entity.Blog{})
	}), &tokenHolder{})

	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	_, err := client.ListBlogs(ctx)

	require.NoError(t, err)
	assert.Equal(t, "req-42", got)
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantKind    domainerrors.APIErrorKind
		wantMessage string
	}{
		{
			name:        "string detail",
			status:      http.StatusBadRequest,
			body:        `{"detail":"Not enough credits"}`,
			wantKind:    domainerrors.KindStatus,
			wantMessage: "Not enough credits",
		},
		{
			name:        "list detail",
			status:      http.StatusUnprocessableEntity,
			body:        `{"detail":[{"loc":["body","topic"],"msg":"field required"}]}`,
			wantKind:    domainerrors.KindStatus,
			wantMessage: "field required",
		},
		{
			name:        "unstructured body",
			status:      http.StatusInternalServerError,
			body:        `<html>oops</html>`,
			wantKind:    domainerrors.KindStatus,
			wantMessage: "GET /blogs/ failed with status 500",
		},
		{
			name:        "unauthorized",
			status:      http.StatusUnauthorized,
			body:        `{"detail":"Could not validate credentials"}`,
			wantKind:    domainerrors.KindUnauthorized,
			wantMessage: "Could not validate credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}), &tokenHolder{})

			_, err := client.ListBlogs(context.Background())
			apiErr := requireAPIError(t, err)
			assert.Equal(t, tt.wantKind, apiErr.Kind)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
		})
	}
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(release) })

	client, err := NewClient(Options{BaseURL: server.URL, RequestTimeout: 50 * time.Millisecond})
	require.NoError(t, err)

	_, err = client.ListBlogs(context.Background())
	apiErr := requireAPIError(t, err)
	assert.Equal(t, domainerrors.KindTimeout, apiErr.Kind)
	assert.True(t, domainerrors.IsTimeout(err))
}

func TestClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client, err := NewClient(Options{BaseURL: baseURL, RequestTimeout: time.Second})
	require.NoError(t, err)

	_, err = client.ListBlogs(context.Background())
	apiErr := requireAPIError(t, err)
	assert.Equal(t, domainerrors.KindTransport, apiErr.Kind)
}

func TestClient_DecodeFailures(t *testing.T) {
	t.Run("malformed json", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"id":`)
		}), &tokenHolder{})

		_, err := client.AdminStats(context.Background())
		assert.Equal(t, domainerrors.KindDecode, requireAPIError(t, err).Kind)
	})

	t.Run("response fails validation", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []map[string]any{{"alias": "no id"}})
		}), &tokenHolder{})

		_, err := client.ListBlogs(context.Background())
		assert.Equal(t, domainerrors.KindDecode, requireAPIError(t, err).Kind)
	})
}

func TestClient_ValidationHappensBeforeNetwork(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}), &tokenHolder{})
	ctx := context.Background()

	_, err := client.CreateBlog(ctx, entity.BlogIdentity{Alias: "", PlatformType: entity.PlatformNaver})
	assert.Equal(t, domainerrors.KindValidation, requireAPIError(t, err).Kind)

	_, err = client.RequestRecharge(ctx, entity.RechargeInput{Amount: 0, RequestedCredits: 10, DepositorName: "kim"})
	assert.Equal(t, domainerrors.KindValidation, requireAPIError(t, err).Kind)

	_, err = client.SearchKeywords(ctx, "   ")
	assert.Equal(t, domainerrors.KindValidation, requireAPIError(t, err).Kind)

	err = client.SaveSchedule(ctx, entity.ScheduleConfig{Frequency: "monthly", PostsPerDay: 1})
	assert.Equal(t, domainerrors.KindValidation, requireAPIError(t, err).Kind)

	_, err = client.Download(ctx, 1, "pdf")
	assert.Equal(t, domainerrors.KindValidation, requireAPIError(t, err).Kind)

	assert.Zero(t, calls.Load())
}

func TestClient_CreditStatus(t *testing.T) {
	t.Run("returns server value and is stable across calls", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/credits/status", r.URL.Path)
			writeJSON(w, http.StatusOK, map[string]any{"current_credit": 42, "upcoming_deduction": 6, "currency": "KRW"})
		}), &tokenHolder{})

		first := client.CreditStatus(context.Background())
		second := client.CreditStatus(context.Background())

		assert.Equal(t, entity.CreditStatus{CurrentCredit: 42, UpcomingDeduction: 6, Currency: "KRW"}, first)
		assert.Equal(t, first, second)
	})

	t.Run("falls back on failure", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}), &tokenHolder{})

		status := client.CreditStatus(context.Background())
		assert.Equal(t, entity.FallbackCreditStatus(), status)
		assert.True(t, status.Degraded)
	})
}

func TestClient_KeywordTrackingFallback(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "not json")
	}), &tokenHolder{})

	rows := client.KeywordTracking(context.Background())
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestClient_PreviewPayload(t *testing.T) {
	var bodies []map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		bodies = append(bodies, body)
		writeJSON(w, http.StatusOK, entity.GenerationResult{
			Status:          "processing",
			PostID:          9,
			HTML:            "<p>hi</p>",
			CreditsRequired: 7,
			Images:          []string{"/generated_images/post_9_img_1.png"},
		})
	}), &tokenHolder{})

	req := entity.GenerationRequest{
		Topic:      "AI",
		Persona:    "SEO",
		ImageCount: 1,
		WordRange:  entity.WordRange{Min: 800, Max: 1200},
	}

	result, err := client.Preview(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(9), result.PostID)
	assert.Len(t, result.Images, 1)

	req.FreeTrial = true
	_, err = client.Preview(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, bodies, 2)
	assert.Equal(t, false, bodies[0]["free_trial"])
	assert.Equal(t, true, bodies[1]["free_trial"])
	assert.Equal(t, []any{800.0, 1200.0}, bodies[0]["word_count_range"])
	assert.NotContains(t, bodies[0], "WordRange")
}

func TestClient_CreateBlogIsAtLeastOnce(t *testing.T) {
	var keys []string
	var nextID atomic.Int64
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		keys = append(keys, r.Header.Get(idempotencyKeyHeader))
		var identity entity.BlogIdentity
		require.NoError(t, json.NewDecoder(r.Body).Decode(&identity))
		writeJSON(w, http.StatusOK, entity.Blog{ID: nextID.Add(1), Alias: identity.Alias})
	}), &tokenHolder{})

	identity := entity.BlogIdentity{
		Alias:        "main",
		PlatformType: entity.PlatformTistory,
		BlogURL:      "https://main.tistory.com",
		BlogID:       "main",
	}

	first, err := client.CreateBlog(context.Background(), identity)
	require.NoError(t, err)
	second, err := client.CreateBlog(context.Background(), identity)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	require.Len(t, keys, 2)
	assert.NotEmpty(t, keys[0])
	assert.NotEqual(t, keys[0], keys[1])
}

func TestClient_ScheduleRoundTrip(t *testing.T) {
	var stored []byte
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			data, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			stored = data
			w.WriteHeader(http.StatusOK)
		case http.MethodGet:
			if stored == nil {
				w.WriteHeader(http.StatusNotFound)

				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(stored)
		}
	}), &tokenHolder{})
	ctx := context.Background()

	assert.Nil(t, client.GetSchedule(ctx))

	saved := entity.ScheduleConfig{
		Frequency:   entity.FrequencyWeekly,
		PostsPerDay: 2,
		Days:        []string{"Tue", "Sat"},
		TargetTimes: []string{"08:30", "21:00"},
		IsActive:    true,
	}
	require.NoError(t, client.SaveSchedule(ctx, saved))

	loaded := client.GetSchedule(ctx)
	require.NotNil(t, loaded)
	assert.Equal(t, saved, *loaded)
}

func TestClient_Download(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/posts/5/download/html", r.URL.Path)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, "<h1>post</h1>")
	}), &tokenHolder{})

	artifact, err := client.Download(context.Background(), 5, entity.DownloadHTML)
	require.NoError(t, err)
	assert.Equal(t, "text/html; charset=utf-8", artifact.ContentType)
	assert.Equal(t, []byte("<h1>post</h1>"), artifact.Data)
}

func TestClient_SearchKeywordsEncodesSeed(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ai 마케팅", r.URL.Query().Get("seed"))
		writeJSON(w, http.StatusOK, []entity.KeywordSuggestion{{Keyword: "ai 마케팅 툴", MonthlySearch: 1200, Competition: 2, Priority: 0.8}})
	}), &tokenHolder{})

	got, err := client.SearchKeywords(context.Background(), " ai 마케팅 ")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ai 마케팅 툴", got[0].Keyword)
}

func TestClient_RateLimiterHonoursContext(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusOK, []entity.Blog{})
	}), &tokenHolder{})
	client.limiter = rate.NewLimiter(1, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListBlogs(ctx)
	apiErr := requireAPIError(t, err)
	assert.Equal(t, domainerrors.KindTransport, apiErr.Kind)
	assert.Zero(t, calls.Load())
}

func TestParseDetail(t *testing.T) {
	assert.Equal(t, "boom", parseDetail([]byte(`{"detail":"boom"}`)))
	assert.Equal(t, "bad", parseDetail([]byte(`{"detail":[{"msg":"bad"}]}`)))
	assert.Equal(t, "", parseDetail([]byte(`{"detail":{"x":1}}`)))
	assert.Equal(t, "", parseDetail([]byte(`plain`)))
	assert.Equal(t, "", parseDetail(nil))
}
