package sender

import (
	"ay-events-spreader/internal/event"
	"context"
	"errors"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// KafkaSender пишет события в партиции топика через отдельное
// соединение на каждую партицию.
type KafkaSender struct {
	writers []PartitionWriter
}

// NewKafkaSender создаёт KafkaSender поверх уже открытых соединений,
// writers[i] обслуживает партицию i.
func NewKafkaSender(writers []PartitionWriter) (*KafkaSender, error) {
	if len(writers) == 0 {
		return nil, ErrNoPartitions
	}

	return &KafkaSender{writers: writers}, nil
}

// DialKafkaSender открывает соединения с лидерами партиций [0, partitions).
// При ошибке уже открытые соединения закрываются.
func DialKafkaSender(ctx context.Context, addr, topic string, partitions int) (*KafkaSender, error) {
	if partitions <= 0 {
		return nil, ErrNoPartitions
	}

	writers := make([]PartitionWriter, 0, partitions)
	for partition := range partitions {
		conn, err := kafka.DialLeader(ctx, "tcp", addr, topic, partition)
		if err != nil {
			zap.L().Error(err.Error(), zap.Int("partition", partition))
			for _, w := range writers {
				_ = w.Close()
			}
			return nil, fmt.Errorf("dial partition %d: %w", partition, err)
		}
		writers = append(writers, conn)
	}

	return NewKafkaSender(writers)
}

func (s *KafkaSender) Partitions() int {
	return len(s.writers)
}

// WritePartition сериализует события и пишет их одной пачкой в партицию.
// Дедлайн контекста становится дедлайном записи.
func (s *KafkaSender) WritePartition(ctx context.Context, partition int, events []event.PageViewEvent) error {
	if partition < 0 || partition >= len(s.writers) {
		return fmt.Errorf("%w: %d", ErrPartitionMismatch, partition)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	messages := make([]kafka.Message, 0, len(events))
	for _, ev := range events {
		b, err := ev.Bytes()
		if err != nil {
			zap.L().Error(err.Error())
			return err
		}

		messages = append(messages, kafka.Message{
			Key:   []byte(ev.UserID),
			Value: b,
		})
	}

	w := s.writers[partition]

	// без дедлайна в ctx получаем нулевое время, то есть запись без ограничения
	deadline, _ := ctx.Deadline()
	if err := w.SetWriteDeadline(deadline); err != nil {
		zap.L().Error(err.Error())
		return err
	}

	if _, err := w.WriteMessages(messages...); err != nil {
		zap.L().Error(err.Error(), zap.Int("partition", partition))
		return err
	}

	return nil
}

// Close закрывает все соединения и объединяет ошибки.
func (s *KafkaSender) Close() error {
	var errs []error
	for _, w := range s.writers {
		if err := w.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
