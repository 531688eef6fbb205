package messaging

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const dialAttempts = 3

// RabbitMQPublisher publica mensagens JSON em uma exchange do tipo topic
type RabbitMQPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	// um amqp.Channel não pode ser usado por várias goroutines ao mesmo tempo
	mutex sync.Mutex
}

func NewRabbitMQPublisher(url, exchange string) (*RabbitMQPublisher, error) {
	if exchange == "" {
		return nil, errors.New("nome da exchange não pode ser vazio")
	}

	var (
		conn *amqp.Connection
		err  error
	)

	for attempt := 0; attempt < dialAttempts; attempt++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			break
		}

		retryTime := time.Duration(attempt*attempt)*time.Second + time.Second
		logrus.WithError(err).Warnf("Falha ao conectar no RabbitMQ, nova tentativa em %v", retryTime)
		time.Sleep(retryTime)
	}

	if err != nil {
		return nil, fmt.Errorf("erro ao conectar no RabbitMQ após %d tentativas: %w", dialAttempts, err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("erro ao abrir canal: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("erro ao declarar exchange %s: %w", exchange, err)
	}

	logrus.WithField("exchange", exchange).Info("Conectado ao RabbitMQ")

	return &RabbitMQPublisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
	}, nil
}

func (p *RabbitMQPublisher) Publish(ctx context.Context, routingKey string, message any) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("erro ao serializar mensagem: %w", err)
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("erro ao publicar na exchange %s com routing key %s: %w", p.exchange, routingKey, err)
	}

	logrus.WithField("routing_key", routingKey).Debug("Evento publicado")
	return nil
}

func (p *RabbitMQPublisher) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			return err
		}
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
