package fipe

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato-dev-nws/autoshop-api/pkg/logger"
)

// upstreamStub simula a API da tabela FIPE contando as requisições recebidas
type upstreamStub struct {
	status   int
	body     string
	requests []string
}

func (u *upstreamStub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u.requests = append(u.requests, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(u.status)
		w.Write([]byte(u.body))
	}
}

func newTestService(t *testing.T, upstream *upstreamStub) (*Service, *miniredis.Miniredis) {
	t.Helper()

	server := httptest.NewServer(upstream.handler())
	t.Cleanup(server.Close)
	t.Setenv("FIPE_BASE_URL", server.URL)

	mr := miniredis.RunT(t)
	cache := NewRedisCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	return NewService(NewClient(), cache, logger.Nop()), mr
}

func TestBrandsConsultaUpstreamEGravaCache(t *testing.T) {
	upstream := &upstreamStub{status: http.StatusOK, body: `[{"codigo":"25","nome":"Honda"}]`}
	svc, mr := newTestService(t, upstream)

	body, err := svc.Brands(context.Background(), "carros")

	require.NoError(t, err)
	assert.JSONEq(t, `[{"codigo":"25","nome":"Honda"}]`, string(body))
	assert.Equal(t, []string{"/carros/marcas"}, upstream.requests)

	cached, err := mr.Get("fipe:carros:marcas")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"codigo":"25","nome":"Honda"}]`, cached)
	mr.FastForward(23 * time.Hour)
	assert.True(t, mr.Exists("fipe:carros:marcas"))
	mr.FastForward(2 * time.Hour)
	assert.False(t, mr.Exists("fipe:carros:marcas"))
}

func TestBrandsAcertoDeCacheNaoConsultaUpstream(t *testing.T) {
	upstream := &upstreamStub{status: http.StatusOK, body: `[]`}
	svc, mr := newTestService(t, upstream)

	require.NoError(t, mr.Set("fipe:motos:marcas", `[{"codigo":"77","nome":"Yamaha"}]`))

	body, err := svc.Brands(context.Background(), "motos")

	require.NoError(t, err)
	assert.JSONEq(t, `[{"codigo":"77","nome":"Yamaha"}]`, string(body))
	assert.Empty(t, upstream.requests)
}

func TestModelsUsaChaveEPathPorMarca(t *testing.T) {
	upstream := &upstreamStub{status: http.StatusOK, body: `{"modelos":[]}`}
	svc, mr := newTestService(t, upstream)

	_, err := svc.Models(context.Background(), "carros", "25")

	require.NoError(t, err)
	assert.Equal(t, []string{"/carros/marcas/25/modelos"}, upstream.requests)
	assert.True(t, mr.Exists("fipe:carros:25:modelos"))
}

func TestYearsEValue(t *testing.T) {
	upstream := &upstreamStub{status: http.StatusOK, body: `{}`}
	svc, mr := newTestService(t, upstream)

	_, err := svc.Years(context.Background(), "carros", "25", "1234")
	require.NoError(t, err)

	_, err = svc.Value(context.Background(), "carros", "25", "1234", "2020-1")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/carros/marcas/25/modelos/1234/anos",
		"/carros/marcas/25/modelos/1234/anos/2020-1",
	}, upstream.requests)
	assert.True(t, mr.Exists("fipe:carros:25:1234:anos"))
	assert.True(t, mr.Exists("fipe:carros:25:1234:2020-1"))
}

func TestErroDoUpstreamNaoEntraNoCache(t *testing.T) {
	upstream := &upstreamStub{status: http.StatusNotFound, body: `{"error":"nao encontrado"}`}
	svc, mr := newTestService(t, upstream)

	_, err := svc.Brands(context.Background(), "caminhoes")

	var upstreamErr *UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusNotFound, upstreamErr.StatusCode)
	assert.JSONEq(t, `{"error":"nao encontrado"}`, string(upstreamErr.Body))
	assert.False(t, mr.Exists("fipe:caminhoes:marcas"))
}

func TestCacheIndisponivelDegradaParaUpstream(t *testing.T) {
	upstream := &upstreamStub{status: http.StatusOK, body: `[]`}
	svc, mr := newTestService(t, upstream)

	// Redis fora do ar não derruba a consulta
	mr.Close()

	body, err := svc.Brands(context.Background(), "carros")

	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(body))
	assert.Equal(t, []string{"/carros/marcas"}, upstream.requests)
}
