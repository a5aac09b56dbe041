package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type Producer interface {
	SendMessage(ctx context.Context, key string, message interface{}) error
	Close() error
}

type kafkaProducer struct {
	writer *kafka.Writer
}

// NewProducer takes a comma-separated broker list, connects to the first
// broker and makes sure the topic exists. Without brokers, or when the broker
// is unreachable, a log-only producer is returned so the API keeps
// acknowledging requests.
func NewProducer(brokers, topic string) Producer {
	addrs := splitBrokers(brokers)
	if len(addrs) == 0 {
		logrus.Warn("Kafka brokers not configured, conversion requests will only be logged")
		return &mockProducer{topic: topic}
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(addrs...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := kafka.DialContext(ctx, "tcp", addrs[0])
	if err != nil {
		logrus.WithError(err).WithField("brokers", addrs).Warn("Kafka connection failed, using log-only producer")
		return &mockProducer{topic: topic}
	}
	defer conn.Close()

	err = conn.CreateTopics(kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	})
	if err != nil {
		logrus.WithError(err).Infof("Could not create topic %s (might already exist)", topic)
	}

	logrus.WithFields(logrus.Fields{"brokers": addrs, "topic": topic}).Info("Connected to Kafka")
	return &kafkaProducer{writer: writer}
}

func splitBrokers(brokers string) []string {
	var addrs []string
	for _, addr := range strings.Split(brokers, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			addrs = append(addrs, addr)
		}
	}
	return addrs
}

func (p *kafkaProducer) SendMessage(ctx context.Context, key string, message interface{}) error {
	messageBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: messageBytes,
		Time:  time.Now(),
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write message to %s: %w", p.writer.Topic, err)
	}

	logrus.WithFields(logrus.Fields{"topic": p.writer.Topic, "key": key}).Debug("Message sent")
	return nil
}

func (p *kafkaProducer) Close() error {
	return p.writer.Close()
}

type mockProducer struct {
	topic string
}

func (m *mockProducer) SendMessage(ctx context.Context, key string, message interface{}) error {
	logrus.WithFields(logrus.Fields{
		"topic":   m.topic,
		"key":     key,
		"message": message,
	}).Info("MOCK: conversion request not forwarded")
	return nil
}

func (m *mockProducer) Close() error {
	return nil
}
