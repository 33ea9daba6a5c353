package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"buildbid/internal/adapter/http/handlers/mocks"
	"buildbid/internal/domain/entities"
	"buildbid/internal/domain/quoting"
	"buildbid/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type envelopeBody struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	ValidationErrors []quoting.ValidationError `json:"validation_errors"`
	Warnings         []string                  `json:"warnings"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelopeBody {
	t.Helper()
	var body envelopeBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	return body
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newQuoteRouter(t *testing.T) (*gin.Engine, *mocks.MockIQuoteUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc, nil)
	h.now = func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) }

	r := gin.New()
	r.POST("/v1/quotes", h.SubmitQuote)
	r.GET("/v1/quotes/:id", h.GetQuote)
	r.PATCH("/v1/quotes/:id/status", h.UpdateQuoteStatus)
	r.POST("/v1/quotes/:id/revisions", h.CreateRevision)
	r.GET("/v1/quotes/:id/analysis", h.AnalyzeQuote)
	r.GET("/v1/scopes/:sow_id/quotes", h.GetQuotesForSoW)
	r.GET("/v1/builders/:builder_id/quotes", h.GetBuilderQuotes)
	return r, uc
}

func storedQuote() entities.Quote {
	return entities.Quote{
		ID:          "abcdef12-3456",
		SoWID:       "sow-1",
		BuilderID:   "b-1",
		Version:     1,
		TotalPrice:  1000,
		Currency:    "GBP",
		Status:      entities.QuoteStatusSubmitted,
		SubmittedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		ValidUntil:  time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestQuoteHandler_SubmitQuote(t *testing.T) {
	const body = `{"sow_id":"sow-1","builder_id":"b-1","total_price":1000,"methodology":"nrm2"}`

	t.Run("malformed json", func(t *testing.T) {
		r, _ := newQuoteRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/quotes", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if got := decodeEnvelope(t, w); got.Success || got.Error == nil || got.Error.Code != "INVALID_REQUEST" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unknown methodology", func(t *testing.T) {
		r, _ := newQuoteRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/quotes", `{"sow_id":"sow-1","builder_id":"b-1","methodology":"NRM3"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation failure lists every defect", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().SubmitQuote(gomock.Any(), "sow-1", "b-1", gomock.Any()).Return(usecase.SubmitQuoteResult{}, &usecase.ValidationFailedError{
			Errors: []quoting.ValidationError{
				{Field: "total_price", Message: "mismatch", Code: quoting.CodeCalculationError},
				{Field: "terms.payment_schedule", Message: "sum", Code: quoting.CodePaymentScheduleError},
			},
		})

		w := doRequest(r, http.MethodPost, "/v1/quotes", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		got := decodeEnvelope(t, w)
		if got.Error == nil || got.Error.Code != "VALIDATION_FAILED" {
			t.Fatalf("expected VALIDATION_FAILED, got %s", w.Body.String())
		}
		if len(got.ValidationErrors) != 2 || got.ValidationErrors[1].Code != quoting.CodePaymentScheduleError {
			t.Fatalf("unexpected validation errors: %+v", got.ValidationErrors)
		}
	})

	t.Run("duplicate", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().SubmitQuote(gomock.Any(), "sow-1", "b-1", gomock.Any()).Return(usecase.SubmitQuoteResult{}, usecase.ErrDuplicateQuote)

		w := doRequest(r, http.MethodPost, "/v1/quotes", body)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if got := decodeEnvelope(t, w); got.Error.Code != "DUPLICATE_QUOTE" {
			t.Fatalf("expected DUPLICATE_QUOTE, got %s", got.Error.Code)
		}
	})

	t.Run("success with warnings", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().SubmitQuote(gomock.Any(), "sow-1", "b-1", gomock.Any()).DoAndReturn(
			func(_ any, _, _ string, in entities.QuoteInput) (usecase.SubmitQuoteResult, error) {
				if in.Methodology != entities.MethodologyNRM2 {
					t.Fatalf("expected NRM2, got %q", in.Methodology)
				}
				return usecase.SubmitQuoteResult{Quote: storedQuote(), Warnings: []string{"No certifications provided"}}, nil
			})

		w := doRequest(r, http.MethodPost, "/v1/quotes", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		got := decodeEnvelope(t, w)
		if !got.Success || len(got.Warnings) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		var data map[string]any
		if err := json.Unmarshal(got.Data, &data); err != nil {
			t.Fatalf("invalid data: %v", err)
		}
		if data["reference"] != "QT-2603-ABCDEF" {
			t.Fatalf("unexpected reference: %v", data["reference"])
		}
	})
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().GetQuote(gomock.Any(), "q-1").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		w := doRequest(r, http.MethodGet, "/v1/quotes/q-1", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("expired overlay", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		q := storedQuote()
		q.ValidUntil = time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().GetQuote(gomock.Any(), q.ID).Return(q, nil)

		w := doRequest(r, http.MethodGet, "/v1/quotes/"+q.ID, "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var data map[string]any
		if err := json.Unmarshal(decodeEnvelope(t, w).Data, &data); err != nil {
			t.Fatalf("invalid data: %v", err)
		}
		if data["status"] != "submitted" || data["effective_status"] != "expired" {
			t.Fatalf("unexpected statuses: %v / %v", data["status"], data["effective_status"])
		}
	})

	t.Run("unexpected error is hidden", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().GetQuote(gomock.Any(), "q-1").Return(entities.Quote{}, errors.New("dynamodb: throttled"))

		w := doRequest(r, http.MethodGet, "/v1/quotes/q-1", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("throttled")) {
			t.Fatalf("internal detail leaked: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_Listings(t *testing.T) {
	t.Run("scope of work", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().GetQuotesForSoW(gomock.Any(), "sow-1").Return([]entities.Quote{storedQuote()}, nil)

		w := doRequest(r, http.MethodGet, "/v1/scopes/sow-1/quotes", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var data []map[string]any
		if err := json.Unmarshal(decodeEnvelope(t, w).Data, &data); err != nil || len(data) != 1 {
			t.Fatalf("unexpected data: %s (%v)", w.Body.String(), err)
		}
	})

	t.Run("builder with status filter", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().GetBuilderQuotes(gomock.Any(), "b-1", "submitted").Return(nil, nil)

		w := doRequest(r, http.MethodGet, "/v1/builders/b-1/quotes?status=submitted", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("builder with invalid status", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().GetBuilderQuotes(gomock.Any(), "b-1", "expired").Return(nil, usecase.ErrInvalidQuoteStatus)

		w := doRequest(r, http.MethodGet, "/v1/builders/b-1/quotes?status=expired", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_UpdateQuoteStatus(t *testing.T) {
	t.Run("missing status", func(t *testing.T) {
		r, _ := newQuoteRouter(t)
		w := doRequest(r, http.MethodPatch, "/v1/quotes/q-1/status", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("illegal transition", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		err := fmt.Errorf("%w: selected -> submitted", quoting.ErrInvalidStatusTransition)
		uc.EXPECT().UpdateQuoteStatus(gomock.Any(), "q-1", "submitted").Return(entities.Quote{}, err)

		w := doRequest(r, http.MethodPatch, "/v1/quotes/q-1/status", `{"status":"submitted"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if got := decodeEnvelope(t, w); got.Error.Code != "INVALID_STATUS_TRANSITION" {
			t.Fatalf("expected INVALID_STATUS_TRANSITION, got %s", got.Error.Code)
		}
	})

	t.Run("expired", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().UpdateQuoteStatus(gomock.Any(), "q-1", "selected").Return(entities.Quote{}, usecase.ErrQuoteExpired)

		w := doRequest(r, http.MethodPatch, "/v1/quotes/q-1/status", `{"status":"selected"}`)
		if got := decodeEnvelope(t, w); w.Code != http.StatusConflict || got.Error.Code != "QUOTE_EXPIRED" {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		q := storedQuote()
		q.Status = entities.QuoteStatusUnderReview
		uc.EXPECT().UpdateQuoteStatus(gomock.Any(), q.ID, "under-review").Return(q, nil)

		w := doRequest(r, http.MethodPatch, "/v1/quotes/"+q.ID+"/status", `{"status":"under-review"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_CreateRevision(t *testing.T) {
	t.Run("not modifiable", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().CreateRevision(gomock.Any(), "q-1", gomock.Any()).Return(usecase.SubmitQuoteResult{}, usecase.ErrQuoteNotModifiable)

		w := doRequest(r, http.MethodPost, "/v1/quotes/q-1/revisions", `{"total_price":900}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("superseded version", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().CreateRevision(gomock.Any(), "q-1", gomock.Any()).Return(usecase.SubmitQuoteResult{}, usecase.ErrQuoteSuperseded)

		w := doRequest(r, http.MethodPost, "/v1/quotes/q-1/revisions", `{"total_price":900}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if got := decodeEnvelope(t, w); got.Error == nil || got.Error.Code != "QUOTE_SUPERSEDED" {
			t.Fatalf("expected QUOTE_SUPERSEDED, got %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		q := storedQuote()
		q.Version = 2
		q.Status = entities.QuoteStatusRevised
		uc.EXPECT().CreateRevision(gomock.Any(), "q-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, updates quoting.RevisionUpdates) (usecase.SubmitQuoteResult, error) {
				if updates.TotalPrice == nil || *updates.TotalPrice != 900 {
					t.Fatalf("expected total price update, got %+v", updates.TotalPrice)
				}
				return usecase.SubmitQuoteResult{Quote: q}, nil
			})

		w := doRequest(r, http.MethodPost, "/v1/quotes/q-1/revisions", `{"total_price":900}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_AnalyzeQuote(t *testing.T) {
	r, uc := newQuoteRouter(t)
	uc.EXPECT().AnalyzeQuote(gomock.Any(), "q-1").Return(usecase.QuoteAnalysis{QuoteID: "q-1", Reference: "QT-2603-Q1"}, nil)

	w := doRequest(r, http.MethodGet, "/v1/quotes/q-1/analysis", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var data usecase.QuoteAnalysis
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &data); err != nil {
		t.Fatalf("invalid data: %v", err)
	}
	if data.Reference != "QT-2603-Q1" {
		t.Fatalf("unexpected reference %q", data.Reference)
	}
}
