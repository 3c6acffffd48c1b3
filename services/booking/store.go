package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"sagashealth/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RecordStore is the session-scoped storage channel between the flow's
// pages: one booking slot, one payment slot, and the in-progress wizard,
// each keyed by session id. Slots are overwritten, never appended.
type RecordStore interface {
	GetBooking(ctx context.Context, sessionID string) (*models.BookingRecord, error)
	SetBooking(ctx context.Context, sessionID string, rec *models.BookingRecord) error
	ClearBooking(ctx context.Context, sessionID string) error

	GetPayment(ctx context.Context, sessionID string) (*models.PaymentRecord, error)
	SetPayment(ctx context.Context, sessionID string, rec *models.PaymentRecord) error
	ClearPayment(ctx context.Context, sessionID string) error

	GetQuestionnaire(ctx context.Context, sessionID string) (*QuestionnaireSession, error)
	SetQuestionnaire(ctx context.Context, sessionID string, qs *QuestionnaireSession) error
	ClearQuestionnaire(ctx context.Context, sessionID string) error
}

func bookingKey(sessionID string) string       { return "booking:" + sessionID }
func paymentKey(sessionID string) string       { return "payment:" + sessionID }
func questionnaireKey(sessionID string) string { return "questionnaire:" + sessionID }

// RedisRecordStore implements RecordStore over Redis with a TTL per slot.
type RedisRecordStore struct {
	Client *redis.Client
	TTL    time.Duration
	Logger *zap.Logger
}

// NewRedisRecordStore returns a Redis-backed record store.
func NewRedisRecordStore(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisRecordStore {
	return &RedisRecordStore{Client: client, TTL: ttl, Logger: logger}
}

func (s *RedisRecordStore) get(ctx context.Context, key string, out any) error {
	data, err := s.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return ErrNoRecord
	}
	if err != nil {
		return fmt.Errorf("failed to read session record: %w", err)
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		// A malformed value is logged and treated as absence.
		s.Logger.Error("failed to parse session record", zap.String("key", key), zap.Error(err))
		return ErrNoRecord
	}
	return nil
}

func (s *RedisRecordStore) set(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal session record: %w", err)
	}
	if err := s.Client.Set(ctx, key, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store session record: %w", err)
	}
	return nil
}

func (s *RedisRecordStore) clear(ctx context.Context, key string) error {
	if err := s.Client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to clear session record: %w", err)
	}
	return nil
}

func (s *RedisRecordStore) GetBooking(ctx context.Context, sessionID string) (*models.BookingRecord, error) {
	var rec models.BookingRecord
	if err := s.get(ctx, bookingKey(sessionID), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *RedisRecordStore) SetBooking(ctx context.Context, sessionID string, rec *models.BookingRecord) error {
	return s.set(ctx, bookingKey(sessionID), rec)
}

func (s *RedisRecordStore) ClearBooking(ctx context.Context, sessionID string) error {
	return s.clear(ctx, bookingKey(sessionID))
}

func (s *RedisRecordStore) GetPayment(ctx context.Context, sessionID string) (*models.PaymentRecord, error) {
	var rec models.PaymentRecord
	if err := s.get(ctx, paymentKey(sessionID), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *RedisRecordStore) SetPayment(ctx context.Context, sessionID string, rec *models.PaymentRecord) error {
	return s.set(ctx, paymentKey(sessionID), rec)
}

func (s *RedisRecordStore) ClearPayment(ctx context.Context, sessionID string) error {
	return s.clear(ctx, paymentKey(sessionID))
}

func (s *RedisRecordStore) GetQuestionnaire(ctx context.Context, sessionID string) (*QuestionnaireSession, error) {
	var qs QuestionnaireSession
	if err := s.get(ctx, questionnaireKey(sessionID), &qs); err != nil {
		return nil, err
	}
	return &qs, nil
}

func (s *RedisRecordStore) SetQuestionnaire(ctx context.Context, sessionID string, qs *QuestionnaireSession) error {
	return s.set(ctx, questionnaireKey(sessionID), qs)
}

func (s *RedisRecordStore) ClearQuestionnaire(ctx context.Context, sessionID string) error {
	return s.clear(ctx, questionnaireKey(sessionID))
}

// MemoryRecordStore is an in-memory RecordStore used in tests. Values round
// trip through JSON the same way the Redis store's do.
type MemoryRecordStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryRecordStore returns an empty in-memory record store.
func NewMemoryRecordStore() *MemoryRecordStore {
	return &MemoryRecordStore{data: make(map[string][]byte)}
}

func (s *MemoryRecordStore) get(key string, out any) error {
	s.mu.Lock()
	data, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return ErrNoRecord
	}
	if err := json.Unmarshal(data, out); err != nil {
		return ErrNoRecord
	}
	return nil
}

func (s *MemoryRecordStore) set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal session record: %w", err)
	}
	s.mu.Lock()
	s.data[key] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryRecordStore) clear(key string) {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
}

func (s *MemoryRecordStore) GetBooking(_ context.Context, sessionID string) (*models.BookingRecord, error) {
	var rec models.BookingRecord
	if err := s.get(bookingKey(sessionID), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *MemoryRecordStore) SetBooking(_ context.Context, sessionID string, rec *models.BookingRecord) error {
	return s.set(bookingKey(sessionID), rec)
}

func (s *MemoryRecordStore) ClearBooking(_ context.Context, sessionID string) error {
	s.clear(bookingKey(sessionID))
	return nil
}

func (s *MemoryRecordStore) GetPayment(_ context.Context, sessionID string) (*models.PaymentRecord, error) {
	var rec models.PaymentRecord
	if err := s.get(paymentKey(sessionID), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *MemoryRecordStore) SetPayment(_ context.Context, sessionID string, rec *models.PaymentRecord) error {
	return s.set(paymentKey(sessionID), rec)
}

func (s *MemoryRecordStore) ClearPayment(_ context.Context, sessionID string) error {
	s.clear(paymentKey(sessionID))
	return nil
}

func (s *MemoryRecordStore) GetQuestionnaire(_ context.Context, sessionID string) (*QuestionnaireSession, error) {
	var qs QuestionnaireSession
	if err := s.get(questionnaireKey(sessionID), &qs); err != nil {
		return nil, err
	}
	return &qs, nil
}

func (s *MemoryRecordStore) SetQuestionnaire(_ context.Context, sessionID string, qs *QuestionnaireSession) error {
	return s.set(questionnaireKey(sessionID), qs)
}

func (s *MemoryRecordStore) ClearQuestionnaire(_ context.Context, sessionID string) error {
	s.clear(questionnaireKey(sessionID))
	return nil
}
