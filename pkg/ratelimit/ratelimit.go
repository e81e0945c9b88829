package ratelimit

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/renato-dev-nws/autoshop-api/internal/adapter/api/dto"
	"golang.org/x/time/rate"
)

// Limiter aplica um orçamento fixo de requisições por janela de tempo para
// cada cliente, identificado pelo IP de origem.
type Limiter struct {
	mu       sync.Mutex
	clients  map[string]*client
	limit    rate.Limit
	burst    int
	lastSeen time.Duration
}

type client struct {
	limiter *rate.Limiter
	seen    time.Time
}

// New cria um Limiter que permite "requests" requisições por "window"
func New(requests int, window time.Duration) *Limiter {
	l := &Limiter{
		clients:  make(map[string]*client),
		limit:    rate.Every(window / time.Duration(requests)),
		burst:    requests,
		lastSeen: 3 * window,
	}

	go l.cleanup(window)
	return l
}

// Allow verifica se o cliente ainda tem orçamento
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = c
	}
	c.seen = time.Now()

	return c.limiter.Allow()
}

// cleanup descarta periodicamente clientes sem atividade recente
func (l *Limiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		for key, c := range l.clients {
			if time.Since(c.seen) > l.lastSeen {
				delete(l.clients, key)
			}
		}
		l.mu.Unlock()
	}
}

// Middleware cria um middleware gin que responde 429 quando o orçamento do
// cliente se esgota
func Middleware(l *Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(
				http.StatusTooManyRequests,
				"Muitas requisições",
				"Aguarde antes de tentar novamente",
			))
			return
		}
		c.Next()
	}
}
