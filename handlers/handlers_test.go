package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sagashealth/handlers"
	"sagashealth/middleware"
	"sagashealth/models"
	"sagashealth/routes"
	"sagashealth/services/booking"
	"sagashealth/services/catalog"
	"sagashealth/services/certification"
	"sagashealth/services/geo"
	"sagashealth/services/payment"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeGeocoder serves fixed coordinates without network access.
type fakeGeocoder struct {
	credential bool
	failFor    string
}

func (f *fakeGeocoder) Geocode(_ context.Context, address string) (*models.Coordinates, error) {
	if address == f.failFor {
		return nil, errors.New("no match")
	}
	return &models.Coordinates{Lat: 40.75, Lng: -73.98}, nil
}

func (f *fakeGeocoder) HasCredential() bool { return f.credential }

var _ geo.Geocoder = (*fakeGeocoder)(nil)

// fakePayment resolves card confirmations by scripted outcome. When
// intentAmount is set it plays the amount check the way the live service
// does.
type fakePayment struct {
	confirmErr   error
	intentAmount int64
}

func (f *fakePayment) CreateIntent(_ context.Context, amount int64, currency string) (string, error) {
	if amount <= 0 {
		return "", payment.ErrInvalidAmount
	}
	return "pi_test_secret", nil
}

func (f *fakePayment) ConfirmCardPayment(_ context.Context, paymentIntentID string, expectedAmount int64) (string, error) {
	if f.confirmErr != nil {
		return "", f.confirmErr
	}
	if f.intentAmount != 0 && f.intentAmount != expectedAmount {
		return "", payment.ErrAmountMismatch
	}
	return paymentIntentID, nil
}

func (f *fakePayment) ProcessHSAPayment(provider string) (string, error) {
	if provider == "" {
		return "", payment.ErrMissingHSAProvider
	}
	return payment.HSASimulatedIntentID, nil
}

var _ payment.PaymentService = (*fakePayment)(nil)

type testEnv struct {
	router *gin.Engine
	flow   *booking.DefaultFlowService
}

func newTestEnv(t *testing.T, pay payment.PaymentService, geocoder geo.Geocoder) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	catalogService := catalog.NewDefaultCatalogService()
	flow := &booking.DefaultFlowService{
		Store:   booking.NewMemoryRecordStore(),
		Catalog: catalogService,
		Logger:  logger,
	}
	lmnService := &certification.DefaultLMNService{Logger: logger}

	hb := handlers.NewHandlerBundle(
		handlers.NewCatalogHandler(catalogService, geocoder, logger),
		handlers.NewQuestionnaireHandler(flow, logger),
		handlers.NewCheckoutHandler(flow, pay, logger),
		handlers.NewConfirmationHandler(flow, logger),
		handlers.NewCertificationHandler(flow, lmnService, logger),
	)

	router := gin.New()
	router.Use(middleware.SessionMiddleware())
	routes.RegisterCatalogRoutes(router, hb)
	routes.RegisterQuestionnaireRoutes(router, hb)
	routes.RegisterCheckoutRoutes(router, hb)
	routes.RegisterConfirmationRoutes(router, hb)
	routes.RegisterCertificationRoutes(router, hb)
	return &testEnv{router: router, flow: flow}
}

func (e *testEnv) do(t *testing.T, method, path, sessionID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(middleware.SessionHeader, sessionID)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// seedBooking writes a completed booking record for the session.
func seedBooking(t *testing.T, env *testEnv, sessionID string) {
	t.Helper()
	rec := &models.BookingRecord{
		ServiceID:       "4",
		ServiceName:     "Therapeutic Massage",
		ServicePrice:    175,
		AppointmentDate: "2026-09-14",
		AppointmentTime: "10:00 AM",
		Questionnaire: models.QuestionnaireResponse{
			Age:                  "34",
			HSAProvider:          "HealthEquity",
			StateOfResidence:     "New York",
			DiagnosedConditions:  []string{"Back Pain"},
			ConditionsPreventing: []string{"Back Pain"},
			Attestation:          true,
		},
	}
	require.NoError(t, env.flow.Store.SetBooking(context.Background(), sessionID, rec))
}

func TestListServicesAndCategories(t *testing.T) {
	env := newTestEnv(t, &fakePayment{}, &fakeGeocoder{})

	w := env.do(t, http.MethodGet, "/api/services", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Len(t, body["services"], 6)

	w = env.do(t, http.MethodGet, "/api/services?category=Wellness", "", nil)
	body = decode(t, w)
	assert.Len(t, body["services"], 3)

	w = env.do(t, http.MethodGet, "/api/services/categories", "", nil)
	body = decode(t, w)
	categories, ok := body["categories"].([]any)
	require.True(t, ok)
	assert.Equal(t, "All", categories[0])
}

func TestGetServiceByIDRedirectsWhenUnknown(t *testing.T) {
	env := newTestEnv(t, &fakePayment{}, &fakeGeocoder{})

	w := env.do(t, http.MethodGet, "/api/services/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.NotEmpty(t, body["availableTimes"])

	w = env.do(t, http.MethodGet, "/api/services/999", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "/marketplace", decode(t, w)["redirect"])
}

func TestServiceMapFallsBackToListWithoutCredential(t *testing.T) {
	env := newTestEnv(t, &fakePayment{}, &fakeGeocoder{credential: false})

	w := env.do(t, http.MethodGet, "/api/services/map", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "list", body["mode"])
	assert.Len(t, body["services"], 6)
}

func TestServiceMapRendersMarkers(t *testing.T) {
	env := newTestEnv(t, &fakePayment{}, &fakeGeocoder{credential: true})

	w := env.do(t, http.MethodGet, "/api/services/map", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "map", body["mode"])
	assert.Len(t, body["markers"], 6)
	assert.NotNil(t, body["center"])
}

func TestServiceMapSkipsUnresolvableAddresses(t *testing.T) {
	env := newTestEnv(t, &fakePayment{}, &fakeGeocoder{
		credential: true,
		failFor:    "252 Java Street, Brooklyn, NY 11222",
	})

	w := env.do(t, http.MethodGet, "/api/services/map", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	markers, ok := body["markers"].([]any)
	require.True(t, ok)
	assert.Len(t, markers, 5)
}

func TestSessionHeaderIsMintedAndEchoed(t *testing.T) {
	env := newTestEnv(t, &fakePayment{}, &fakeGeocoder{})

	w := env.do(t, http.MethodGet, "/api/services", "", nil)
	assert.NotEmpty(t, w.Header().Get(middleware.SessionHeader))

	w = env.do(t, http.MethodGet, "/api/services", "my-session", nil)
	assert.Equal(t, "my-session", w.Header().Get(middleware.SessionHeader))
}

func TestQuestionnaireLifecycleOverHTTP(t *testing.T) {
	env := newTestEnv(t, &fakePayment{}, &fakeGeocoder{})
	const sid = "sess-http"

	w := env.do(t, http.MethodPost, "/api/booking/questionnaire", sid, gin.H{
		"serviceId":       "4",
		"appointmentDate": "2026-09-14",
		"appointmentTime": "10:00 AM",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(1), body["step"])
	assert.Equal(t, float64(8), body["totalSteps"])
	assert.Equal(t, false, body["canProceed"])

	w = env.do(t, http.MethodPut, "/api/booking/questionnaire/answer", sid, gin.H{"age": "34"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["canProceed"])

	w = env.do(t, http.MethodPost, "/api/booking/questionnaire/next", sid, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, float64(2), body["step"])
	assert.NotEmpty(t, body["hsaProviders"])

	// An answer for a step the wizard is not on is rejected.
	w = env.do(t, http.MethodPut, "/api/booking/questionnaire/answer", sid, gin.H{"attestation": true})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Back from step 2 returns to step 1 keeping the age.
	w = env.do(t, http.MethodPost, "/api/booking/questionnaire/back", sid, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, float64(1), body["step"])
	resp, ok := body["response"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "34", resp["age"])

	// Back from step 1 cancels the flow.
	w = env.do(t, http.MethodPost, "/api/booking/questionnaire/back", sid, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, true, body["cancelled"])
	assert.Equal(t, "/marketplace", body["redirect"])

	w = env.do(t, http.MethodGet, "/api/booking/questionnaire", sid, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "/marketplace", decode(t, w)["redirect"])
}

func TestQuestionnaireRequiresSessionRecord(t *testing.T) {
	env := newTestEnv(t, &fakePayment{}, &fakeGeocoder{})

	w := env.do(t, http.MethodGet, "/api/booking/questionnaire", "fresh", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "/marketplace", decode(t, w)["redirect"])

	w = env.do(t, http.MethodPost, "/api/booking/questionnaire/next", "fresh", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckoutGuardedOnBookingRecord(t *testing.T) {
	env := newTestEnv(t, &fakePayment{}, &fakeGeocoder{})

	w := env.do(t, http.MethodGet, "/api/checkout", "fresh", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "/marketplace", decode(t, w)["redirect"])

	seedBooking(t, env, "paid")
	w = env.do(t, http.MethodGet, "/api/checkout", "paid", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rec, ok := decode(t, w)["booking"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Therapeutic Massage", rec["serviceName"])
}

func TestCreatePaymentIntentOverHTTP(t *testing.T) {
	env := newTestEnv(t, &fakePayment{}, &fakeGeocoder{})
	seedBooking(t, env, "sess-pi")

	w := env.do(t, http.MethodPost, "/api/checkout/payment-intent", "sess-pi", gin.H{
		"amount":   17500,
		"currency": "usd",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pi_test_secret", decode(t, w)["clientSecret"])

	// An amount that disagrees with the booking total is rejected.
	w = env.do(t, http.MethodPost, "/api/checkout/payment-intent", "sess-pi", gin.H{
		"amount":   999,
		"currency": "usd",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/api/checkout/payment-intent", "sess-pi", gin.H{
		"amount":   0,
		"currency": "usd",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCardPaymentRecordsAndRedirects(t *testing.T) {
	env := newTestEnv(t, &fakePayment{}, &fakeGeocoder{})
	seedBooking(t, env, "sess-card")

	w := env.do(t, http.MethodPost, "/api/checkout/card", "sess-card", gin.H{
		"paymentIntentId": "pi_123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "/booking-confirmation", body["redirect"])
	rec, ok := body["booking"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "pi_123", rec["paymentIntentId"])
	assert.Equal(t, "card", rec["paymentMethod"])

	// The augmentation is one-time.
	w = env.do(t, http.MethodPost, "/api/checkout/card", "sess-card", gin.H{
		"paymentIntentId": "pi_456",
	})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestCardPaymentRejectsMismatchedIntentAmount(t *testing.T) {
	// A succeeded intent for one cent must not mark a $175 booking paid.
	env := newTestEnv(t, &fakePayment{intentAmount: 1}, &fakeGeocoder{})
	seedBooking(t, env, "sess-cheap")

	w := env.do(t, http.MethodPost, "/api/checkout/card", "sess-cheap", gin.H{
		"paymentIntentId": "pi_one_cent",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	rec, err := env.flow.GetBooking(context.Background(), "sess-cheap")
	require.NoError(t, err)
	assert.Empty(t, rec.PaymentIntentID)
}

func TestCardPaymentFailureSurfacesAsPaymentRequired(t *testing.T) {
	env := newTestEnv(t, &fakePayment{confirmErr: payment.ErrPaymentNotSuccessful}, &fakeGeocoder{})
	seedBooking(t, env, "sess-fail")

	w := env.do(t, http.MethodPost, "/api/checkout/card", "sess-fail", gin.H{
		"paymentIntentId": "pi_123",
	})
	require.Equal(t, http.StatusPaymentRequired, w.Code)

	// The booking record is left unaugmented for a retry.
	rec, err := env.flow.GetBooking(context.Background(), "sess-fail")
	require.NoError(t, err)
	assert.Empty(t, rec.PaymentIntentID)
}

func TestHSAPaymentOverHTTP(t *testing.T) {
	env := newTestEnv(t, &fakePayment{}, &fakeGeocoder{})
	seedBooking(t, env, "sess-hsa")

	w := env.do(t, http.MethodPost, "/api/checkout/hsa", "sess-hsa", gin.H{
		"hsaProvider": "HealthEquity",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	rec, ok := body["booking"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, payment.HSASimulatedIntentID, rec["paymentIntentId"])
	assert.Equal(t, "hsa", rec["paymentMethod"])
	assert.Equal(t, "HealthEquity", rec["hsaProvider"])
}

func TestConfirmationAndTeardown(t *testing.T) {
	env := newTestEnv(t, &fakePayment{}, &fakeGeocoder{})
	seedBooking(t, env, "sess-conf")

	w := env.do(t, http.MethodGet, "/api/confirmation", "sess-conf", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Regexp(t, `^SH[A-Z0-9]{9}$`, body["confirmationNumber"])

	w = env.do(t, http.MethodDelete, "/api/confirmation", "sess-conf", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/marketplace", decode(t, w)["redirect"])

	w = env.do(t, http.MethodGet, "/api/confirmation", "sess-conf", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCertificationEndpoints(t *testing.T) {
	env := newTestEnv(t, &fakePayment{}, &fakeGeocoder{})
	seedBooking(t, env, "sess-lmn")

	w := env.do(t, http.MethodGet, "/api/certification/providers", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["providers"], 3)

	w = env.do(t, http.MethodPost, "/api/certification/lmn", "sess-lmn", gin.H{
		"providerCode": "healthequity",
	})
	require.Equal(t, http.StatusOK, w.Code)
	lmn, ok := decode(t, w)["lmn"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Patient", lmn["patientName"])
	assert.Contains(t, lmn["clinicalRationale"], "Back Pain")

	// Without a booking the LMN endpoint redirects like checkout does.
	w = env.do(t, http.MethodPost, "/api/certification/lmn", "fresh", gin.H{
		"providerCode": "healthequity",
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodPost, "/api/certification/lmn/submit", "sess-lmn", gin.H{
		"providerCode": "optum",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode(t, w)["message"], "Optum")

	w = env.do(t, http.MethodGet, "/api/certification/lmn/download", "sess-lmn", nil)
	require.Equal(t, http.StatusOK, w.Code)
}
