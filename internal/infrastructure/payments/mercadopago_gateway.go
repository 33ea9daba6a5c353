package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"buildbid/internal/infrastructure/logger"
	"buildbid/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// sandboxPayerEmail is accepted by the Mercado Pago sandbox for TEST- tokens.
const sandboxPayerEmail = "test_user_br@testuser.com"

type Options struct {
	AccessToken     string
	// Currency is the settlement currency of the provider account. Charges in any
	// other currency are refused since the payments API takes no currency.
	Currency        string
	Mock            bool
	TestPayerEmail  string
	TestPayerUserID string
}

type MercadoPagoGateway struct {
	client payment.Client
	opts   Options
	log    *logger.Logger
	now    func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(opts Options, log *logger.Logger) (*MercadoPagoGateway, error) {
	if log == nil {
		log = logger.Nop()
	}
	opts.AccessToken = strings.TrimSpace(opts.AccessToken)
	opts.Currency = strings.ToUpper(strings.TrimSpace(opts.Currency))
	g := &MercadoPagoGateway{opts: opts, log: log, now: func() time.Time { return time.Now().UTC() }}
	if opts.Mock {
		log.Info("[payment][gateway] mock mode enabled")
		return g, nil
	}

	if opts.AccessToken == "" {
		log.Error("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(opts.AccessToken)
	if err != nil {
		log.Error("[payment][gateway] failed creating sdk config", "err", err)
		return nil, err
	}
	g.client = payment.NewClient(cfg)
	log.Info("[payment][gateway] Mercado Pago client initialized", "sandbox", g.sandbox())
	return g, nil
}

// CreatePayment charges req.Amount. The amount always comes from req, whatever the
// payer payload says.
func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, req interfaces.PaymentRequest) (interfaces.PaymentResult, error) {
	if g == nil {
		return interfaces.PaymentResult{}, ErrMercadoPagoGatewayNotConfigured
	}
	if c := strings.ToUpper(strings.TrimSpace(req.Currency)); c != "" && g.opts.Currency != "" && c != g.opts.Currency {
		g.log.Warn("[payment][gateway] currency mismatch", "external_reference", req.ExternalReference, "currency", c, "account_currency", g.opts.Currency)
		return interfaces.PaymentResult{}, fmt.Errorf("%w: %s (account settles in %s)", interfaces.ErrUnsupportedCurrency, c, g.opts.Currency)
	}
	body, err := g.prepare(req)
	if err != nil {
		g.log.Warn("[payment][gateway] rejected payload", "external_reference", req.ExternalReference, "err", err)
		return interfaces.PaymentResult{}, err
	}

	if g.opts.Mock {
		return g.mockPayment(body, req.Currency)
	}
	if g.client == nil {
		g.log.Error("[payment][gateway] gateway not configured")
		return interfaces.PaymentResult{}, ErrMercadoPagoGatewayNotConfigured
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return interfaces.PaymentResult{}, err
	}
	var mpReq payment.Request
	if err := json.Unmarshal(raw, &mpReq); err != nil {
		g.log.Warn("[payment][gateway] payload unmarshal failed", "err", err)
		return interfaces.PaymentResult{}, fmt.Errorf("%w: %v", interfaces.ErrInvalidPaymentRequest, err)
	}

	g.log.Info("[payment][gateway] create start", "external_reference", req.ExternalReference, "amount", req.Amount)
	resp, err := g.client.Create(ctx, mpReq)
	if err != nil {
		g.log.Error("[payment][gateway] sdk create failed", "external_reference", req.ExternalReference, "err", err)
		return interfaces.PaymentResult{}, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		g.log.Error("[payment][gateway] response marshal failed", "err", err)
		return interfaces.PaymentResult{}, err
	}
	g.log.Info("[payment][gateway] create success", "provider_payment_id", resp.ID, "provider_status", resp.Status)
	return interfaces.PaymentResult{
		ProviderPaymentID: fmt.Sprintf("%d", resp.ID),
		ProviderStatus:    resp.Status,
		Response:          b,
	}, nil
}

// prepare merges the payer payload with the fields owned by the server.
func (g *MercadoPagoGateway) prepare(req interfaces.PaymentRequest) (map[string]any, error) {
	body := map[string]any{}
	if len(req.Payload) > 0 {
		dec := json.NewDecoder(bytes.NewReader(req.Payload))
		dec.UseNumber()
		if err := dec.Decode(&body); err != nil || body == nil {
			return nil, fmt.Errorf("%w: payload must be a JSON object", interfaces.ErrInvalidPaymentRequest)
		}
	}

	if !g.opts.Mock {
		if !hasNonEmptyString(body, "payment_method_id") {
			return nil, fmt.Errorf("%w: payment_method_id is required", interfaces.ErrInvalidPaymentRequest)
		}
		g.normalizeSandboxPayer(body)
		g.ensurePayerDefaults(body)
		if !hasPayer(body) {
			return nil, fmt.Errorf("%w: payer email or id is required", interfaces.ErrInvalidPaymentRequest)
		}
	}

	if !hasNonEmptyString(body, "external_reference") {
		body["external_reference"] = req.ExternalReference
	}
	if !hasNonEmptyString(body, "description") {
		body["description"] = req.Description
	}
	body["transaction_amount"] = req.Amount
	return body, nil
}

func (g *MercadoPagoGateway) mockPayment(body map[string]any, currency string) (interfaces.PaymentResult, error) {
	now := g.now()
	id := strconv.FormatInt(now.UnixNano(), 10)
	body["id"] = id
	if currency != "" {
		body["currency_id"] = strings.ToUpper(currency)
	}
	body["status"] = "approved"
	body["status_detail"] = "accredited"
	body["date_created"] = now.Format(time.RFC3339Nano)
	body["date_approved"] = now.Format(time.RFC3339Nano)

	b, err := json.Marshal(body)
	if err != nil {
		g.log.Error("[payment][gateway] mock response marshal failed", "err", err)
		return interfaces.PaymentResult{}, err
	}
	g.log.Info("[payment][gateway] mock create success", "provider_payment_id", id)
	return interfaces.PaymentResult{ProviderPaymentID: id, ProviderStatus: "approved", Response: b}, nil
}

func (g *MercadoPagoGateway) sandbox() bool {
	return strings.HasPrefix(g.opts.AccessToken, "TEST-")
}

func (g *MercadoPagoGateway) ensurePayerDefaults(body map[string]any) {
	v, ok := body["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		body["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// Either payer.id or payer.email is enough; fill the email only when both are missing.
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if g.opts.TestPayerEmail != "" {
		payer["email"] = g.opts.TestPayerEmail
	} else if g.sandbox() {
		payer["email"] = sandboxPayerEmail
	}
}

// normalizeSandboxPayer swaps the configured sandbox user id for its email, which
// is what the sandbox accepts.
func (g *MercadoPagoGateway) normalizeSandboxPayer(body map[string]any) {
	if !g.sandbox() || g.opts.TestPayerUserID == "" || g.opts.TestPayerEmail == "" {
		return
	}
	payer, ok := body["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != g.opts.TestPayerUserID {
		return
	}
	payer["email"] = g.opts.TestPayerEmail
	delete(payer, "id")
	g.log.Debug("[payment][gateway] mapped sandbox payer user id to email")
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}
