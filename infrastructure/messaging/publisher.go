// Package messaging publica eventos do serviço de estatísticas
package messaging

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

//go:generate mockgen -source=publisher.go -destination=mocks/publisher.go -package=mocks

type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
	Close() error
}

// NoopPublisher descarta os eventos. Usado quando o RabbitMQ está desabilitado.
type NoopPublisher struct{}

func (NoopPublisher) Publish(_ context.Context, routingKey string, _ any) error {
	logrus.WithField("routing_key", routingKey).Debug("Mensageria desabilitada, evento descartado")
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}

// NewPublisher conecta no RabbitMQ quando MESSAGING_ENABLED=true. Se a conexão
// falhar o serviço segue sem publicar eventos.
func NewPublisher(cfg config.Messaging) EventPublisher {
	if !cfg.Enabled {
		logrus.Info("Mensageria desabilitada por configuração")
		return NoopPublisher{}
	}

	publisher, err := NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.Exchange)
	if err != nil {
		logrus.WithError(err).Error("Erro ao conectar no RabbitMQ, eventos não serão publicados")
		return NoopPublisher{}
	}

	return publisher
}
