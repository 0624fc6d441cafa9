package store

import (
	"context"
	"fmt"
)

// purgeOrder deletes dependents before the rows they reference:
// innermost junction tables first, then entities, reversing the
// population order.
var purgeOrder = []string{
	"seed_batches",
	"publications",
	"research_team_members",
	"committee_members",
	"course_instructors",
	"student_organizations",
	"course_enrollments",
	"research_projects",
	"students",
	"non_academic_staff",
	"lecturers",
	"courses",
	"committees",
	"programs",
	"departments",
}

// PurgeAll deletes every row from every schema table in reverse
// dependency order. Callers run it inside a single transaction so a
// failure leaves the store unchanged.
func (t *Tx) PurgeAll(ctx context.Context) error {
	for _, table := range purgeOrder {
		if _, err := t.tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, mapConstraintErr(err))
		}
	}
	return nil
}
