package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"buildbid/internal/infrastructure/logger"
	"buildbid/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMercadoPagoGateway_RequiresToken(t *testing.T) {
	_, err := NewMercadoPagoGateway(Options{AccessToken: "  "}, nil)
	assert.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
}

func TestMercadoPagoGateway_MockPayment(t *testing.T) {
	g, err := NewMercadoPagoGateway(Options{Mock: true}, logger.Nop())
	require.NoError(t, err)
	fixed := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return fixed }

	res, err := g.CreatePayment(context.Background(), interfaces.PaymentRequest{
		ExternalReference: "q-1#deposit",
		Description:       "Quote QT-2603-ABCDEF milestone deposit",
		Amount:            2500,
		Payload:           json.RawMessage(`{"transaction_amount":1,"token":"tok"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, "approved", res.ProviderStatus)
	assert.NotEmpty(t, res.ProviderPaymentID)

	var body map[string]any
	require.NoError(t, json.Unmarshal(res.Response, &body))
	assert.Equal(t, 2500.0, body["transaction_amount"])
	assert.Equal(t, "q-1#deposit", body["external_reference"])
	assert.Equal(t, "tok", body["token"])
	assert.Equal(t, fixed.Format(time.RFC3339Nano), body["date_approved"])
}

func TestMercadoPagoGateway_CurrencyMustMatchAccount(t *testing.T) {
	g, err := NewMercadoPagoGateway(Options{Mock: true, Currency: " brl "}, logger.Nop())
	require.NoError(t, err)

	_, err = g.CreatePayment(context.Background(), interfaces.PaymentRequest{ExternalReference: "q-1#deposit", Amount: 10, Currency: "GBP"})
	assert.ErrorIs(t, err, interfaces.ErrUnsupportedCurrency)

	res, err := g.CreatePayment(context.Background(), interfaces.PaymentRequest{ExternalReference: "q-1#deposit", Amount: 10, Currency: "brl"})
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(res.Response, &body))
	assert.Equal(t, "BRL", body["currency_id"])
}

func TestMercadoPagoGateway_PayloadChecks(t *testing.T) {
	live := &MercadoPagoGateway{opts: Options{AccessToken: "APP_USR-1"}, log: logger.Nop()}

	cases := map[string]string{
		"not an object":     `[1,2]`,
		"no payment method": `{"payer":{"email":"a@b.c"}}`,
		"no payer":          `{"payment_method_id":"pix"}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := live.CreatePayment(context.Background(), interfaces.PaymentRequest{Amount: 10, Payload: json.RawMessage(payload)})
			assert.ErrorIs(t, err, interfaces.ErrInvalidPaymentRequest)
		})
	}

	t.Run("valid payload without client", func(t *testing.T) {
		_, err := live.CreatePayment(context.Background(), interfaces.PaymentRequest{
			Amount:  10,
			Payload: json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"a@b.c"}}`),
		})
		assert.True(t, errors.Is(err, ErrMercadoPagoGatewayNotConfigured))
	})
}

func TestMercadoPagoGateway_SandboxPayer(t *testing.T) {
	t.Run("fills the sandbox email", func(t *testing.T) {
		g := &MercadoPagoGateway{opts: Options{AccessToken: "TEST-123"}, log: logger.Nop()}
		body, err := g.prepare(interfaces.PaymentRequest{Amount: 10, Payload: json.RawMessage(`{"payment_method_id":"pix"}`)})
		require.NoError(t, err)
		payer := body["payer"].(map[string]any)
		assert.Equal(t, sandboxPayerEmail, payer["email"])
		assert.Equal(t, "customer", payer["type"])
	})

	t.Run("maps the configured test user to its email", func(t *testing.T) {
		g := &MercadoPagoGateway{
			opts: Options{AccessToken: "TEST-123", TestPayerUserID: "1234567890", TestPayerEmail: "buyer@testuser.com"},
			log:  logger.Nop(),
		}
		body, err := g.prepare(interfaces.PaymentRequest{
			Amount:  10,
			Payload: json.RawMessage(`{"payment_method_id":"pix","payer":{"id":1234567890}}`),
		})
		require.NoError(t, err)
		payer := body["payer"].(map[string]any)
		assert.Equal(t, "buyer@testuser.com", payer["email"])
		assert.NotContains(t, payer, "id")
	})

	t.Run("production token keeps payer untouched", func(t *testing.T) {
		g := &MercadoPagoGateway{opts: Options{AccessToken: "APP_USR-1"}, log: logger.Nop()}
		body, err := g.prepare(interfaces.PaymentRequest{
			Amount:  10,
			Payload: json.RawMessage(`{"payment_method_id":"pix","payer":{"id":42}}`),
		})
		require.NoError(t, err)
		payer := body["payer"].(map[string]any)
		assert.Equal(t, json.Number("42"), payer["id"])
		assert.NotContains(t, payer, "email")
	})
}
