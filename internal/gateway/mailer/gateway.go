package mailer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"dispatch/internal/entities"
)

const (
	messageTypeActivation = "activation"
	messageTypeUpcoming   = "upcoming_activation"
)

// EmailEvent уходит в топик нотификаций, фактическую отправку письма
// делает отдельный сервис рассылок.
type EmailEvent struct {
	DriverName     string `json:"driverName"`
	DriverEmail    string `json:"driverEmail"`
	City           string `json:"city,omitempty"`
	MessageType    string `json:"messageType"`
	PriorityScore  int    `json:"priorityScore,omitempty"`
	ActivationLink string `json:"activationLink,omitempty"`
}

// Gateway доставляет уведомления очереди активации: письмо через
// топик и дублирующий realtime-пуш в канал водителя.
type Gateway struct {
	producer       producer
	pusher         promotionPusher
	topic          string
	activationLink string
}

func New(producer producer, pusher promotionPusher, topic, activationLink string) *Gateway {
	return &Gateway{
		producer:       producer,
		pusher:         pusher,
		topic:          topic,
		activationLink: activationLink,
	}
}

func (g *Gateway) SendActivation(ctx context.Context, entry entities.WaitlistEntry) error {
	event := EmailEvent{
		DriverName:     entry.FirstName + " " + entry.LastName,
		DriverEmail:    entry.Email,
		MessageType:    messageTypeActivation,
		ActivationLink: g.activationLink,
	}

	if err := g.sendEvent(entry.ID, event); err != nil {
		return fmt.Errorf("gateway mailer, activation for %s: %w", entry.ID, err)
	}

	// пуш вторичен: письмо уже ушло, сбой канала не считаем ошибкой
	_ = g.pusher.PushPromotion(ctx, entry.ID, messageTypeActivation, "", entry.PriorityScore)

	return nil
}

func (g *Gateway) SendUpcomingActivation(ctx context.Context, entry entities.WaitlistEntry, regionName string) error {
	event := EmailEvent{
		DriverName:    entry.FirstName + " " + entry.LastName,
		DriverEmail:   entry.Email,
		City:          regionName,
		MessageType:   messageTypeUpcoming,
		PriorityScore: entry.PriorityScore,
	}

	if err := g.sendEvent(entry.ID, event); err != nil {
		return fmt.Errorf("gateway mailer, upcoming activation for %s: %w", entry.ID, err)
	}

	_ = g.pusher.PushPromotion(ctx, entry.ID, messageTypeUpcoming, regionName, entry.PriorityScore)

	return nil
}

func (g *Gateway) sendEvent(key string, event EmailEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal email event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(body),
	}

	_, _, err = g.producer.SendMessage(msg)

	result := "ok"
	if err != nil {
		result = "error"
	}
	MailerEventsTotal.WithLabelValues(event.MessageType, result).Inc()

	if err != nil {
		return fmt.Errorf("send notification event: %w", err)
	}
	return nil
}
