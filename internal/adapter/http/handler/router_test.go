package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"merchant-reporting-bff/config"
	"merchant-reporting-bff/internal/adapter/http/handler"
	redisStore "merchant-reporting-bff/internal/adapter/storage/redis"
	"merchant-reporting-bff/internal/adapter/upstream"
	"merchant-reporting-bff/internal/core/domain"
	"merchant-reporting-bff/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodToken = "good-token"

// fakeReportingAPI mimics the upstream reporting API closely enough to
// exercise every path through the service.
type fakeReportingAPI struct {
	*httptest.Server
	hits     atomic.Int32
	lastAuth atomic.Value
	lastBody atomic.Value
}

func newFakeReportingAPI(t *testing.T) *fakeReportingAPI {
	t.Helper()
	api := &fakeReportingAPI{}
	mux := http.NewServeMux()

	mux.HandleFunc("/merchant/user/login", func(w http.ResponseWriter, r *http.Request) {
		api.hits.Add(1)
		api.lastAuth.Store(r.Header.Get("Authorization"))
		var creds domain.Credentials
		_ = json.NewDecoder(r.Body).Decode(&creds)
		switch {
		case creds.Email == "boom@example.com":
			http.Error(w, `{"status":"ERROR"}`, http.StatusInternalServerError)
		case creds.Email == "demo@bumin.com.tr" && creds.Password == "cjaiU8CV":
			_, _ = io.WriteString(w, `{"token":"`+goodToken+`","status":"APPROVED"}`)
		default:
			http.Error(w, `{"status":"DECLINED"}`, http.StatusUnauthorized)
		}
	})

	authorized := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			api.hits.Add(1)
			api.lastAuth.Store(r.Header.Get("Authorization"))
			raw, _ := io.ReadAll(r.Body)
			api.lastBody.Store(string(raw))
			r.Body = io.NopCloser(bytes.NewReader(raw))
			if r.Header.Get("Authorization") != "Bearer "+goodToken {
				http.Error(w, `{"status":"DECLINED","message":"Token Expired"}`, http.StatusUnauthorized)
				return
			}
			next(w, r)
		}
	}

	mux.HandleFunc("/merchant/user/show", authorized(func(w http.ResponseWriter, r *http.Request) {
		var req domain.MerchantUserRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.ID != 53 {
			http.Error(w, `{}`, http.StatusInternalServerError)
			return
		}
		_, _ = io.WriteString(w, `{"status":"APPROVED","merchantUser":{"id":53,"role":"admin","email":"demo@bumin.com.tr","merchantId":3,"secretKey":"xyz"}}`)
	}))

	mux.HandleFunc("/transactions/report", authorized(func(w http.ResponseWriter, r *http.Request) {
		var req domain.RefundsReportRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if _, err := time.Parse("2006-01-02", req.FromDate); err != nil {
			http.Error(w, `{}`, http.StatusInternalServerError)
			return
		}
		_, _ = io.WriteString(w, `{"status":"APPROVED","response":[{"count":283,"total":28300,"currency":"USD"},{"count":280,"total":1636515,"currency":"EUR"}]}`)
	}))

	mux.HandleFunc("/client", authorized(func(w http.ResponseWriter, r *http.Request) {
		var req domain.ClientInfoRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.TransactionID == "empty" {
			return
		}
		_, _ = io.WriteString(w, `{"customerInfo":{"id":1,"created_at":"2015-10-09 12:09:10","updated_at":"2015-10-09 12:09:10","deleted_at":null,"email":"michael@gmail.com","billingFirstName":"Michael"}}`)
	}))

	api.Server = httptest.NewServer(mux)
	t.Cleanup(api.Close)
	return api
}

func newTestRouter(t *testing.T, api *fakeReportingAPI, rateLimits config.RateLimitConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := zerolog.Nop()

	up := upstream.NewClient(upstream.NewHTTPClient(5*time.Second), "Bearer", log)

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return handler.SetupRouter(handler.RouterDeps{
		UserSvc:        service.NewUserService(up, api.URL+"/merchant/user/login", api.URL+"/merchant/user/show", log),
		ReportSvc:      service.NewReportService(up, api.URL+"/transactions/report", log),
		ClientSvc:      service.NewClientService(up, api.URL+"/client", log),
		TokenInspector: service.NewJWTTokenInspector(),
		RateLimitStore: redisStore.NewRateLimitStore(rdb),
		RateLimits:     rateLimits,
		HealthCheckers: nil,
		AuditSvc:       service.NewAuditService(nil, service.NewFingerprinter("k"), log),
		OpenAPISpec:    []byte("openapi: 3.0.3\n"),
		Logger:         log,
	})
}

func defaultLimits() config.RateLimitConfig {
	return config.RateLimitConfig{LoginLimit: 100, LoginWindow: time.Minute, APILimit: 100, APIWindow: time.Minute}
}

func post(r *gin.Engine, path, body, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Data      json.RawMessage `json:"data"`
	ErrorCode string          `json:"error_code"`
	Message   string          `json:"message"`
	RequestID string          `json:"request_id"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return env
}

func TestRouter_Login(t *testing.T) {
	api := newFakeReportingAPI(t)
	r := newTestRouter(t, api, defaultLimits())

	w := post(r, "/api/v1/merchant/user/login", `{"email":"demo@bumin.com.tr","password":"cjaiU8CV"}`, "")

	require.Equal(t, http.StatusOK, w.Code)
	var token domain.AuthToken
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &token))
	assert.Equal(t, goodToken, token.Token)
	assert.Empty(t, api.lastAuth.Load(), "login must not send Authorization")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_LoginUpstreamFailureSingleAttempt(t *testing.T) {
	api := newFakeReportingAPI(t)
	r := newTestRouter(t, api, defaultLimits())

	w := post(r, "/api/v1/merchant/user/login", `{"email":"boom@example.com","password":"x"}`, "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	env := decode(t, w)
	assert.Equal(t, "UPSTREAM_5XX", env.ErrorCode)
	assert.Equal(t, "500 Internal Server Error", env.Message)
	assert.Equal(t, int32(1), api.hits.Load())
}

func TestRouter_LoginWrongPassword(t *testing.T) {
	api := newFakeReportingAPI(t)
	r := newTestRouter(t, api, defaultLimits())

	w := post(r, "/api/v1/merchant/user/login", `{"email":"demo@bumin.com.tr","password":"nope"}`, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "401 Unauthorized", decode(t, w).Message)
}

func TestRouter_MissingTokenNeverReachesUpstream(t *testing.T) {
	api := newFakeReportingAPI(t)
	r := newTestRouter(t, api, defaultLimits())

	for _, path := range []string{"/api/v1/merchant/user/info", "/api/v1/reports/refunds", "/api/v1/clients/info"} {
		w := post(r, path, `{}`, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.Equal(t, "AUTH_001", decode(t, w).ErrorCode, path)
	}
	assert.Equal(t, int32(0), api.hits.Load())
}

func TestRouter_MerchantUserInfo(t *testing.T) {
	api := newFakeReportingAPI(t)
	r := newTestRouter(t, api, defaultLimits())

	w := post(r, "/api/v1/merchant/user/info", `{"id":53}`, "Bearer "+goodToken)
	require.Equal(t, http.StatusOK, w.Code)

	var info domain.MerchantUserInfoResponse
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &info))
	require.NotNil(t, info.MerchantUser)
	assert.Equal(t, 53, info.MerchantUser.ID)
	assert.NotContains(t, w.Body.String(), "secretKey")

	w = post(r, "/api/v1/merchant/user/info", `{"id":53}`, "Bearer expired")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "401 Unauthorized", decode(t, w).Message)

	w = post(r, "/api/v1/merchant/user/info", `{"id":-1}`, "Bearer "+goodToken)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRouter_MerchantUserInfoInvalidIDUsesUpstreamAnswer(t *testing.T) {
	api := newFakeReportingAPI(t)
	r := newTestRouter(t, api, defaultLimits())

	for _, body := range []string{`{"id":0}`, `{}`} {
		w := post(r, "/api/v1/merchant/user/info", body, "Bearer "+goodToken)
		assert.Equal(t, http.StatusInternalServerError, w.Code, body)
		env := decode(t, w)
		assert.Equal(t, "UPSTREAM_5XX", env.ErrorCode, body)
		assert.Equal(t, "500 Internal Server Error", env.Message, body)
		assert.JSONEq(t, `{"id":0}`, api.lastBody.Load().(string), body)
	}
	assert.Equal(t, int32(2), api.hits.Load())
}

func TestRouter_RefundsReport(t *testing.T) {
	api := newFakeReportingAPI(t)
	r := newTestRouter(t, api, defaultLimits())
	body := `{"fromDate":"2014-05-05","toDate":"2017-12-01","merchant":1,"acquirer":1}`

	w := post(r, "/api/v1/reports/refunds", body, "Bearer "+goodToken)
	require.Equal(t, http.StatusOK, w.Code)

	var report domain.RefundReportResponse
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &report))
	assert.Equal(t, "APPROVED", report.Status)
	assert.Len(t, report.Response, 2)

	// Repeating the call yields the same outcome.
	again := post(r, "/api/v1/reports/refunds", body, "Bearer "+goodToken)
	assert.Equal(t, http.StatusOK, again.Code)
	assert.JSONEq(t, string(decode(t, w).Data), string(decode(t, again).Data))
}

func TestRouter_RefundsReportErrors(t *testing.T) {
	api := newFakeReportingAPI(t)
	r := newTestRouter(t, api, defaultLimits())

	w := post(r, "/api/v1/reports/refunds", `{"fromDate":"2014123-05-05","toDate":"2017-12-01"}`, "Bearer "+goodToken)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "UPSTREAM_5XX", decode(t, w).ErrorCode)

	w = post(r, "/api/v1/reports/refunds", `{"fromDate":"2014-05-05","toDate":"2017-12-01"}`, "Bearer wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UPSTREAM_4XX", decode(t, w).ErrorCode)
}

func TestRouter_RefundsReportForwardsDatesUntrimmed(t *testing.T) {
	api := newFakeReportingAPI(t)
	r := newTestRouter(t, api, defaultLimits())

	w := post(r, "/api/v1/reports/refunds", `{"fromDate":" 2014-05-05 ","toDate":"2017-12-01"}`, "Bearer "+goodToken)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "500 Internal Server Error", decode(t, w).Message)
	sent := api.lastBody.Load().(string)
	assert.Contains(t, sent, `"fromDate":" 2014-05-05 "`)
	assert.Contains(t, sent, `"toDate":"2017-12-01"`)
	assert.Equal(t, int32(1), api.hits.Load())
}

func TestRouter_ClientInfo(t *testing.T) {
	api := newFakeReportingAPI(t)
	r := newTestRouter(t, api, defaultLimits())

	w := post(r, "/api/v1/clients/info", `{"transactionId":"1-1444392550-1"}`, "Bearer "+goodToken)
	require.Equal(t, http.StatusOK, w.Code)

	var resp domain.ClientInfoResponse
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &resp))
	require.NotNil(t, resp.CustomerInfo)
	assert.Equal(t, "michael@gmail.com", resp.CustomerInfo.Email)
	require.NotNil(t, resp.CustomerInfo.CreatedAt)
	assert.Equal(t, 2015, resp.CustomerInfo.CreatedAt.Year())

	w = post(r, "/api/v1/clients/info", `{"transactionId":"empty"}`, "Bearer "+goodToken)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRouter_LoginRateLimited(t *testing.T) {
	api := newFakeReportingAPI(t)
	limits := defaultLimits()
	limits.LoginLimit = 2
	r := newTestRouter(t, api, limits)

	body := `{"email":"demo@bumin.com.tr","password":"cjaiU8CV"}`
	assert.Equal(t, http.StatusOK, post(r, "/api/v1/merchant/user/login", body, "").Code)
	assert.Equal(t, http.StatusOK, post(r, "/api/v1/merchant/user/login", body, "").Code)

	w := post(r, "/api/v1/merchant/user/login", body, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "RATE_001", decode(t, w).ErrorCode)
	assert.Equal(t, int32(2), api.hits.Load())
}

func TestRouter_DocsAndHealth(t *testing.T) {
	api := newFakeReportingAPI(t)
	r := newTestRouter(t, api, defaultLimits())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/swagger", w.Header().Get("Location"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

// TestRouter_ConcurrentReports fires many report requests at once through a
// single router and upstream client: every call must reach the upstream
// exactly once and get its own answer.
func TestRouter_ConcurrentReports(t *testing.T) {
	api := newFakeReportingAPI(t)
	r := newTestRouter(t, api, defaultLimits())

	const workers = 50
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		rejected  atomic.Int32
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			auth := "Bearer " + goodToken
			if i%5 == 0 {
				auth = "Bearer wrong"
			}
			w := post(r, "/api/v1/reports/refunds", `{"fromDate":"2014-05-05","toDate":"2017-12-01"}`, auth)
			switch w.Code {
			case http.StatusOK:
				succeeded.Add(1)
			case http.StatusUnauthorized:
				rejected.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(40), succeeded.Load())
	assert.Equal(t, int32(10), rejected.Load())
	assert.Equal(t, int32(workers), api.hits.Load())
}
