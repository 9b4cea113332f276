package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/harmonia-school/payments/internal/entity"
)

type Producer struct {
	l     *slog.Logger
	w     *kafka.Writer
	topic string
}

func NewProducer(brokers []string, topic string) *Producer {
	l := slog.Default().WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:     l,
		w:     w,
		topic: topic,
	}
}

// PaymentPaidEvent is consumed by the notification service, which mails
// the payer a receipt with a link to the invoice.
type PaymentPaidEvent struct {
	Type          string `json:"type"`
	PaymentID     string `json:"paymentId"`
	InvoiceID     string `json:"invoiceId"`
	InvoiceNumber string `json:"invoiceNumber"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	Email         string `json:"email"`
	Description   string `json:"description"`
}

func (p *Producer) SendPaymentPaid(ctx context.Context, payment entity.Payment, invoice entity.Invoice) {
	event := PaymentPaidEvent{
		Type:          "payment.paid",
		PaymentID:     payment.ID.String(),
		InvoiceID:     invoice.ID.String(),
		InvoiceNumber: invoice.Number,
		Amount:        entity.FormatAmount(payment.Amount),
		Currency:      payment.Currency,
		Email:         payment.Email,
		Description:   payment.Description,
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payment.ID.String()),
		Value: b,
		Topic: p.topic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
