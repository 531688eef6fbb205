package backendclient

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	tokenIssuer = "sales-dashboard-api"
	// renova o token um pouco antes de expirar
	tokenRenewMargin = 30 * time.Second
)

// ServiceToken gera e reaproveita o JWT HS256 usado nas chamadas ao backend
type ServiceToken struct {
	secret    []byte
	subject   string
	ttl       time.Duration
	mutex     sync.Mutex
	current   string
	expiresAt time.Time
	now       func() time.Time
}

func NewServiceToken(secret, subject string, ttl time.Duration) *ServiceToken {
	return &ServiceToken{
		secret:  []byte(secret),
		subject: subject,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Token retorna o token atual ou assina um novo se estiver perto de expirar
func (t *ServiceToken) Token() (string, error) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	now := t.now()
	if t.current != "" && now.Add(tokenRenewMargin).Before(t.expiresAt) {
		return t.current, nil
	}

	if len(t.secret) == 0 {
		return "", errors.New("segredo do token de serviço não configurado")
	}

	expiresAt := now.Add(t.ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   t.subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", errors.Wrap(err, "erro ao assinar token de serviço")
	}

	t.current = signed
	t.expiresAt = expiresAt

	return signed, nil
}
