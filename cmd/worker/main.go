// Worker consumes notification events from Kafka and delivers them to the
// configured webhook. Set KAFKA_BROKERS, NOTIFICATIONS_KAFKA_TOPIC,
// KAFKA_GROUP_ID, and NOTIFY_WEBHOOK_URL.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"

	"challenge-hub/backend/internal/config"
	"challenge-hub/backend/internal/notification/webhook"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	brokers := cfg.KafkaBrokersList()
	if len(brokers) == 0 {
		log.Fatal("worker: KAFKA_BROKERS is required")
	}
	if cfg.NotifyWebhookURL == "" {
		log.Fatal("worker: NOTIFY_WEBHOOK_URL is required")
	}

	topic := cfg.NotificationsKafkaTopic
	if topic == "" {
		topic = "chub-notifications"
	}
	groupID := cfg.KafkaGroupID
	if groupID == "" {
		groupID = "chub-notification-worker"
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6, // 10MB
		MaxWait:        1 * time.Second,
		CommitInterval: time.Second,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("worker: shutting down...")
		cancel()
	}()

	log.Printf("worker: consuming from %s (group %s), delivering to %s", topic, groupID, cfg.NotifyWebhookURL)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("worker: stopped")
				return
			}
			log.Printf("worker: kafka read error: %v", err)
			continue
		}

		deliverCtx, deliverCancel := context.WithTimeout(ctx, 10*time.Second)
		if err := webhook.DeliverEventJSON(deliverCtx, cfg.NotifyWebhookURL, msg.Value); err != nil {
			log.Printf("worker: webhook delivery failed: %v", err)
		}
		deliverCancel()
	}
}
