package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SeedBatch records one fixture population step: the entity populated,
// how many rows were requested and how many were actually created.
// Bounded-retry shortfalls show up as created < requested.
type SeedBatch struct {
	ID         string
	Entity     string
	Requested  int
	Created    int
	StartedAt  time.Time
	FinishedAt time.Time
}

// RecordSeedBatch writes a seed batch audit row. It runs inside the
// same transaction as the batch it describes, so a rolled-back step
// leaves no audit trace.
func (t *Tx) RecordSeedBatch(ctx context.Context, b *SeedBatch) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.FinishedAt.IsZero() {
		b.FinishedAt = time.Now().UTC()
	}

	_, err := t.tx.ExecContext(ctx,
		`INSERT INTO seed_batches (id, entity, requested, created, started_at, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		b.ID, b.Entity, b.Requested, b.Created, b.StartedAt, b.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record seed batch: %w", mapConstraintErr(err))
	}
	return nil
}

// SeedBatches lists recorded population steps, oldest first.
func (s *Store) SeedBatches(ctx context.Context) ([]SeedBatch, error) {
	if s.db == nil {
		return nil, fmt.Errorf("%w: database not opened", ErrStorageUnavailable)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, entity, requested, created, started_at, finished_at FROM seed_batches ORDER BY started_at, entity`)
	if err != nil {
		return nil, fmt.Errorf("failed to list seed batches: %w", err)
	}
	defer rows.Close()

	var batches []SeedBatch
	for rows.Next() {
		var b SeedBatch
		if err := rows.Scan(&b.ID, &b.Entity, &b.Requested, &b.Created, &b.StartedAt, &b.FinishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan seed batch: %w", err)
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}
