package amqp_client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/init-pkg/wrapped-reports/domain/app"
	"github.com/init-pkg/wrapped-reports/internal/config"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

const exchangeKind = "fanout"

// Publisher emits every generated report to a fanout exchange.
// The connection is opened on first publish and reopened after it drops.
type Publisher struct {
	url      string
	exchange string
	log      *slog.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, *app.GeneratedReport) error { return nil }

var (
	_ app.ReportPublisher = &Publisher{}
	_ app.ReportPublisher = NopPublisher{}
)

func New(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) app.ReportPublisher {
	var c = cfg.Infrastructure.Amqp
	if c.Url == "" {
		return NopPublisher{}
	}

	var p = &Publisher{url: c.Url, exchange: c.Exchange, log: log}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return p.Close()
		},
	})
	return p
}

func (this *Publisher) Publish(ctx context.Context, report *app.GeneratedReport) error {
	msg, err := Encode(report)
	if err != nil {
		return err
	}

	this.mu.Lock()
	defer this.mu.Unlock()

	if err := this.connect(); err != nil {
		return err
	}

	if err := this.ch.PublishWithContext(ctx, this.exchange, "", false, false, msg); err != nil {
		this.reset()
		return fmt.Errorf("amqp publish: %w", err)
	}
	return nil
}

func (this *Publisher) Close() error {
	this.mu.Lock()
	defer this.mu.Unlock()

	this.reset()
	return nil
}

func (this *Publisher) connect() error {
	if this.conn != nil && !this.conn.IsClosed() && this.ch != nil {
		return nil
	}
	this.reset()

	conn, err := amqp.Dial(this.url)
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("amqp channel: %w", err)
	}
	if err := ch.ExchangeDeclare(this.exchange, exchangeKind, true, false, false, false, nil); err != nil {
		conn.Close()
		return fmt.Errorf("amqp exchange declare: %w", err)
	}

	this.log.Info("amqp publisher connected", "exchange", this.exchange)
	this.conn, this.ch = conn, ch
	return nil
}

func (this *Publisher) reset() {
	if this.ch != nil {
		this.ch.Close()
	}
	if this.conn != nil {
		this.conn.Close()
	}
	this.conn, this.ch = nil, nil
}

func Encode(report *app.GeneratedReport) (amqp.Publishing, error) {
	body, err := json.Marshal(report)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("encode report: %w", err)
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Type:         "report.generated",
		Body:         body,
	}, nil
}
