package kafka_test

import (
	"context"
	"testing"
	"time"

	"go-payroll/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func setupOutboxTest(t *testing.T) (kafka.OutboxRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return kafka.NewOutboxRepository(db), mock
}

func TestOutboxRepository_Create(t *testing.T) {
	repo, mock := setupOutboxTest(t)

	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs(
			"evt-1", "req-1", "salary", "10",
			"salary_generated", "payroll.salary.lifecycle.v1",
			[]byte(`{"salary_id":10}`), kafka.OutboxStatusPending,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), kafka.OutboxEvent{
		ID:            "evt-1",
		RequestID:     "req-1",
		AggregateType: "salary",
		AggregateID:   "10",
		EventType:     "salary_generated",
		Topic:         "payroll.salary.lifecycle.v1",
		Payload:       []byte(`{"salary_id":10}`),
		Status:        kafka.OutboxStatusPending,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_CreateWithTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)

	// Enlisted in an external transaction the insert commits or rolls
	// back together with the caller's writes.
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO outbox_events").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	assert.NoError(t, err)

	err = repo.WithTx(tx).Create(context.Background(), kafka.OutboxEvent{
		ID:     "evt-2",
		Status: kafka.OutboxStatusPending,
	})
	assert.NoError(t, err)
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending(t *testing.T) {
	repo, mock := setupOutboxTest(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "aggregate_type", "aggregate_id", "event_type",
		"topic", "payload", "status", "retry_count", "next_retry_at",
	}).AddRow(
		"evt-1", "salary", "10", "salary_generated",
		"payroll.salary.lifecycle.v1", []byte(`{}`), kafka.OutboxStatusPending, 0, now,
	)

	mock.ExpectQuery("SELECT (.+) FROM outbox_events").
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 50).
		WillReturnRows(rows)

	events, err := repo.ListPending(context.Background(), 50)

	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, "evt-1", events[0].ID)
	assert.Equal(t, "salary_generated", events[0].EventType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkSent(t *testing.T) {
	repo, mock := setupOutboxTest(t)

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs("evt-1", kafka.OutboxStatusSent).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkSent(context.Background(), "evt-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	repo, mock := setupOutboxTest(t)

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs("evt-1", kafka.OutboxStatusFailed, "broker unreachable").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkFailed(context.Background(), "evt-1", "broker unreachable"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
