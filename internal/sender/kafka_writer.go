package sender

import (
	"time"

	"github.com/segmentio/kafka-go"
)

// PartitionWriter — соединение с лидером одной партиции, его реализует *kafka.Conn.
//
//go:generate mockgen -source=kafka_writer.go -destination=mock/mock_kafka_writer.go -package=mock_sender
type PartitionWriter interface {
	WriteMessages(msgs ...kafka.Message) (int, error)
	SetWriteDeadline(t time.Time) error
	Close() error
}
