package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"buildbid/internal/domain/entities"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.QuoteSubmitted("accepted")
	m.QuoteSubmitted("accepted")
	m.QuoteSubmitted("duplicate")
	m.QuoteStatusChanged(entities.QuoteStatusSubmitted, entities.QuoteStatusUnderReview)
	m.QuotesCompared("accepted", 3)
	m.QuotesCompared("empty", 0)

	if got := testutil.ToFloat64(m.quoteSubmissions.WithLabelValues("accepted")); got != 2 {
		t.Fatalf("expected 2 accepted submissions, got %v", got)
	}
	if got := testutil.ToFloat64(m.quoteSubmissions.WithLabelValues("duplicate")); got != 1 {
		t.Fatalf("expected 1 duplicate submission, got %v", got)
	}
	if got := testutil.ToFloat64(m.statusTransitions.WithLabelValues("submitted", "under-review")); got != 1 {
		t.Fatalf("expected 1 transition, got %v", got)
	}
	if got := testutil.ToFloat64(m.comparisons.WithLabelValues("empty")); got != 1 {
		t.Fatalf("expected 1 empty comparison, got %v", got)
	}
}

func TestMetrics_Handler(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ObserveAPI(http.MethodGet, "/v1/quotes/:id", "200", 15*time.Millisecond)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `buildbid_http_requests_total{method="GET",route="/v1/quotes/:id",status="200"} 1`) {
		t.Fatalf("missing request counter in output:\n%s", w.Body.String())
	}
}
