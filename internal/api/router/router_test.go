package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gobeer/internal/api/beer"
	"gobeer/internal/api/router"
	"gobeer/internal/api/user"
	"gobeer/internal/events"
	"gobeer/internal/pkg/cache"
	"gobeer/internal/pkg/logger"
	"gobeer/internal/pkg/token"
	"gobeer/internal/repository/beerrepo"
	"gobeer/internal/repository/userrepo"
	"gobeer/internal/service/beerservice"
	"gobeer/internal/service/userservice"
)

// recordingPublisher guarda os eventos publicados para as asserções.
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) recorded() []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]events.Event(nil), p.events...)
}

type testServer struct {
	handler   http.Handler
	publisher *recordingPublisher
}

func newTestServer(authRequired bool) testServer {
	log := logger.NewNop()
	pub := &recordingPublisher{}
	tokens := token.NewService("segredo-de-teste", time.Hour)

	beerHandler := beer.NewHandler(beerservice.NewService(beerrepo.NewMemoryRepository(), pub, log), log)
	userHandler := user.NewHandler(userservice.NewService(userrepo.NewMemoryRepository(), tokens, log), log)

	h := router.NewRouter(beerHandler, userHandler, router.Options{
		AuthRequired: authRequired,
		TokenService: tokens,
		Logger:       log,
	})
	return testServer{handler: h, publisher: pub}
}

func (s testServer) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

const galaxyCat = `{"id":"00000000-0000-0000-0000-000000000001","version":7,"quantityOnHand":500,
	"beerName":"Galaxy Cat","beerStyle":"PALE_ALE","upc":337010000002,"price":"9.99"}`

func TestPing(t *testing.T) {
	s := newTestServer(false)

	rec := s.do(http.MethodGet, "/ping", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestBeerLifecycle(t *testing.T) {
	s := newTestServer(false)

	// POST cria e ignora id, version e quantityOnHand do cliente.
	rec := s.do(http.MethodPost, "/api/v1/beer/", galaxyCat)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	id := created["id"].(string)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000001", id)
	assert.Equal(t, float64(0), created["version"])
	assert.Equal(t, float64(0), created["quantityOnHand"])
	assert.Equal(t, "/api/v1/beer/"+id, rec.Header().Get("Location"))

	// GET com barra final e isCold.
	rec = s.do(http.MethodGet, "/api/v1/beer/"+id+"/?isCold=yes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Len(t, fetched, 9)
	assert.Equal(t, "Galaxy Cat", fetched["beerName"])
	assert.Equal(t, "9.99", fetched["price"])

	// PUT sem barra final responde 204 sem corpo.
	rec = s.do(http.MethodPut, "/api/v1/beer/"+id,
		`{"beerName":"Galaxy Cat Imperial","beerStyle":"IPA","upc":337010000002,"price":"11.00"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/v1/beer/"+id, "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, "Galaxy Cat Imperial", fetched["beerName"])
	assert.Equal(t, "IPA", fetched["beerStyle"])
	assert.Equal(t, float64(1), fetched["version"])

	// PATCH altera só o preço.
	rec = s.do(http.MethodPatch, "/api/v1/beer/"+id+"/", `{"price":"12.50"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/beer/"+id+"/", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, "12.5", fetched["price"])
	assert.Equal(t, "Galaxy Cat Imperial", fetched["beerName"])

	recorded := s.publisher.recorded()
	require.Len(t, recorded, 3)
	assert.Equal(t, events.TypeBeerCreated, recorded[0].EventType())
	assert.Equal(t, events.TypeBeerUpdated, recorded[2].EventType())
}

func TestBeerErrors(t *testing.T) {
	s := newTestServer(false)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/v1/beer/9e2e7a8c-4b7b-4a39-9d7b-6a0f9f1c2d11/", "").Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/v1/beer/nao-e-uuid/", "").Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPut, "/api/v1/beer/9e2e7a8c-4b7b-4a39-9d7b-6a0f9f1c2d11", galaxyCat).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/api/v1/beer/", `{"beerName":"x"}`).Code)
	assert.Equal(t, http.StatusMethodNotAllowed, s.do(http.MethodDelete, "/api/v1/beer/9e2e7a8c-4b7b-4a39-9d7b-6a0f9f1c2d11", "").Code)

	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/v1/beer", galaxyCat).Code)
	assert.Equal(t, http.StatusConflict, s.do(http.MethodPost, "/api/v1/beer/", galaxyCat).Code)
}

func TestListBeers(t *testing.T) {
	s := newTestServer(false)
	for i, name := range []string{"Mango Bobs", "Galaxy Cat", "Pinball Porter"} {
		body := `{"beerName":"` + name + `","beerStyle":"ALE","upc":` + strconv.Itoa(i+1) + `,"price":"5.00"}`
		require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/v1/beer/", body).Code)
	}

	rec := s.do(http.MethodGet, "/api/v1/beer/?page=0&size=2&sort=beerName,desc", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Content []struct {
			BeerName string `json:"beerName"`
		} `json:"content"`
		TotalElements int  `json:"totalElements"`
		TotalPages    int  `json:"totalPages"`
		First         bool `json:"first"`
		Last          bool `json:"last"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 3, page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
	assert.True(t, page.First)
	assert.False(t, page.Last)
	require.Len(t, page.Content, 2)
	assert.Equal(t, "Pinball Porter", page.Content[0].BeerName)
	assert.Equal(t, "Mango Bobs", page.Content[1].BeerName)
}

func TestListBeers_HugePageIsRejected(t *testing.T) {
	s := newTestServer(false)

	rec := s.do(http.MethodGet, "/api/v1/beer/?page=368934881474191033", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestCreateBeer_PriceScaleIsValidated(t *testing.T) {
	s := newTestServer(false)

	rec := s.do(http.MethodPost, "/api/v1/beer/", `{"beerName":"Galaxy Cat","beerStyle":"ALE","upc":42,"price":"9.999"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthRequiredForWrites(t *testing.T) {
	s := newTestServer(true)

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodPost, "/api/v1/beer/", galaxyCat).Code)

	rec := s.do(http.MethodPost, "/api/v1/register", `{"email":"brewer@example.com","password":"s3cr3t-hops"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, "/api/v1/login", `{"email":"brewer@example.com","password":"s3cr3t-hops"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var login user.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))

	rec = s.do(http.MethodPost, "/api/v1/beer/", galaxyCat, "Authorization", "Bearer "+login.Token)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Leituras continuam públicas.
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/v1/beer/", "").Code)
}

func TestRateLimit(t *testing.T) {
	log := logger.NewNop()
	beerHandler := beer.NewHandler(beerservice.NewService(beerrepo.NewMemoryRepository(), nil, log), log)
	h := router.NewRouter(beerHandler, nil, router.Options{
		RateLimitCache:       cache.NewMemoryClient(),
		RateLimitMaxRequests: 1,
		RateLimitPeriod:      time.Minute,
		Logger:               log,
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
