package fixture

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/registrar/internal/store"
)

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New(nil)
	require.NoError(t, st.Open(":memory:"))
	t.Cleanup(func() { st.Close() })
	require.NoError(t, st.Migrate())
	return st
}

// smallCounts keeps population fast while still touching every step.
func smallCounts() Counts {
	return Counts{
		Departments:      3,
		Programs:         2,
		Committees:       2,
		Lecturers:        5,
		Courses:          6,
		Students:         10,
		Enrollments:      20,
		Organizations:    4,
		CommitteeMembers: 3,
		TeamMembers:      4,
		Projects:         3,
		Publications:     5,
		Staff:            3,
	}
}

func TestPopulateAll(t *testing.T) {
	st := setupTestStore(t)
	gen := New(st, WithSeed(42))
	ctx := context.Background()

	report, err := gen.PopulateAll(ctx, smallCounts())
	require.NoError(t, err)
	require.Len(t, report.Steps, 14)

	// Every step's created count must match what actually landed in
	// its table.
	for _, step := range report.Steps {
		n, err := st.CountRows(ctx, step.Entity)
		require.NoError(t, err, step.Entity)
		assert.Equal(t, int64(step.Created), n, "table %s", step.Entity)
		assert.LessOrEqual(t, step.Created, step.Requested, "step %s overshot", step.Entity)
	}

	// One audit row per step.
	batches, err := st.SeedBatches(ctx)
	require.NoError(t, err)
	assert.Len(t, batches, 14)
}

func TestPopulateAllDeterministic(t *testing.T) {
	ctx := context.Background()

	run := func() *Report {
		st := setupTestStore(t)
		gen := New(st, WithSeed(7))
		report, err := gen.PopulateAll(ctx, smallCounts())
		require.NoError(t, err)
		return report
	}

	first := run()
	second := run()
	assert.Equal(t, first.Steps, second.Steps)
}

func TestPopulateAllIsRepeatable(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	_, err := New(st, WithSeed(1)).PopulateAll(ctx, smallCounts())
	require.NoError(t, err)

	// A second run against the same store must not collide with the
	// unique course codes or organization names already present.
	_, err = New(st, WithSeed(2)).PopulateAll(ctx, smallCounts())
	require.NoError(t, err)
}

func TestClearAll(t *testing.T) {
	st := setupTestStore(t)
	gen := New(st, WithSeed(9))
	ctx := context.Background()

	_, err := gen.PopulateAll(ctx, smallCounts())
	require.NoError(t, err)

	require.NoError(t, gen.ClearAll(ctx))

	for _, table := range store.Tables() {
		n, err := st.CountRows(ctx, table)
		require.NoError(t, err)
		assert.Zero(t, n, "table %s not emptied", table)
	}
}

func TestPopulateEnrollmentsBounded(t *testing.T) {
	st := setupTestStore(t)
	gen := New(st, WithSeed(3))
	ctx := context.Background()

	departments, err := gen.PopulateDepartments(ctx, 1)
	require.NoError(t, err)
	programs, err := gen.PopulatePrograms(ctx, 1)
	require.NoError(t, err)
	lecturers, err := gen.PopulateLecturers(ctx, departments, 1)
	require.NoError(t, err)
	courses, err := gen.PopulateCourses(ctx, departments, 2)
	require.NoError(t, err)
	students, err := gen.PopulateStudents(ctx, programs, lecturers, 1)
	require.NoError(t, err)

	// Only 1x2 distinct pairs exist; asking for 50 must stop short
	// instead of erroring or spinning.
	enrollments, err := gen.PopulateEnrollments(ctx, students, courses, 50)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(enrollments), 2)
}

func TestPopulateRequiresParents(t *testing.T) {
	st := setupTestStore(t)
	gen := New(st)
	ctx := context.Background()

	_, err := gen.PopulateLecturers(ctx, nil, 5)
	assert.Error(t, err)

	_, err = gen.PopulateStudents(ctx, nil, nil, 5)
	assert.Error(t, err)

	_, err = gen.PopulateEnrollments(ctx, nil, nil, 5)
	assert.Error(t, err)
}

func TestPopulateDepartmentsCapped(t *testing.T) {
	st := setupTestStore(t)
	gen := New(st, WithSeed(5))

	departments, err := gen.PopulateDepartments(context.Background(), 1000)
	require.NoError(t, err)
	assert.Len(t, departments, len(departmentNames))
}
