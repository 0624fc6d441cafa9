// Package fixture populates the academic records store with synthetic,
// invariant-satisfying data, and provides the bulk-clear path.
//
// Population runs in dependency order; each step is one transaction
// that threads the already-created parent rows into later steps instead
// of re-reading the store. Junction tables are filled with rejection
// sampling over composite keys, bounded so a small draw space ends in
// reported partial success rather than a spin.
package fixture

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/leapstack-labs/registrar/internal/store"
)

// Counts configures how many rows each population step requests.
type Counts struct {
	Departments      int
	Programs         int
	Committees       int
	Lecturers        int
	Courses          int
	Students         int
	Enrollments      int
	Organizations    int
	CommitteeMembers int
	TeamMembers      int
	Projects         int
	Publications     int
	Staff            int
}

// DefaultCounts mirrors the sizing the schema was designed around.
func DefaultCounts() Counts {
	return Counts{
		Departments:      10,
		Programs:         8,
		Committees:       5,
		Lecturers:        30,
		Courses:          40,
		Students:         100,
		Enrollments:      300,
		Organizations:    25,
		CommitteeMembers: 12,
		TeamMembers:      30,
		Projects:         20,
		Publications:     50,
		Staff:            20,
	}
}

// retryFactor bounds rejection sampling: a step gives up after
// retryFactor*requested draws and reports however many rows it managed.
const retryFactor = 3

// Generator produces fixture data against a store.
type Generator struct {
	store  *store.Store
	faker  *gofakeit.Faker
	logger *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. Default is a discard logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// WithSeed makes generation deterministic for a given seed.
func WithSeed(seed uint64) Option {
	return func(g *Generator) { g.faker = gofakeit.New(seed) }
}

// New creates a generator over st.
func New(st *store.Store, opts ...Option) *Generator {
	g := &Generator{
		store:  st,
		faker:  gofakeit.New(0),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// StepResult reports one population step. Created may fall short of
// Requested when a bounded retry budget ran out.
type StepResult struct {
	Entity    string
	Requested int
	Created   int
}

// Report collects the outcome of PopulateAll.
type Report struct {
	Steps []StepResult
}

func (r *Report) add(entity string, requested, created int) {
	r.Steps = append(r.Steps, StepResult{Entity: entity, Requested: requested, Created: created})
}

// PopulateAll runs every population step in dependency order with the
// given counts. The first failing step aborts the run; completed steps
// stay committed. The report lists requested vs. created per step.
func (g *Generator) PopulateAll(ctx context.Context, counts Counts) (*Report, error) {
	report := &Report{}

	departments, err := g.PopulateDepartments(ctx, counts.Departments)
	if err != nil {
		return report, err
	}
	report.add("departments", counts.Departments, len(departments))

	programs, err := g.PopulatePrograms(ctx, counts.Programs)
	if err != nil {
		return report, err
	}
	report.add("programs", counts.Programs, len(programs))

	committees, err := g.PopulateCommittees(ctx, counts.Committees)
	if err != nil {
		return report, err
	}
	report.add("committees", counts.Committees, len(committees))

	lecturers, err := g.PopulateLecturers(ctx, departments, counts.Lecturers)
	if err != nil {
		return report, err
	}
	report.add("lecturers", counts.Lecturers, len(lecturers))

	courses, err := g.PopulateCourses(ctx, departments, counts.Courses)
	if err != nil {
		return report, err
	}
	report.add("courses", counts.Courses, len(courses))

	students, err := g.PopulateStudents(ctx, programs, lecturers, counts.Students)
	if err != nil {
		return report, err
	}
	report.add("students", counts.Students, len(students))

	enrollments, err := g.PopulateEnrollments(ctx, students, courses, counts.Enrollments)
	if err != nil {
		return report, err
	}
	report.add("course_enrollments", counts.Enrollments, len(enrollments))

	instructors, err := g.PopulateInstructors(ctx, courses, lecturers)
	if err != nil {
		return report, err
	}
	report.add("course_instructors", len(instructors), len(instructors))

	organizations, err := g.PopulateOrganizations(ctx, students, counts.Organizations)
	if err != nil {
		return report, err
	}
	report.add("student_organizations", counts.Organizations, len(organizations))

	members, err := g.PopulateCommitteeMembers(ctx, committees, lecturers, counts.CommitteeMembers)
	if err != nil {
		return report, err
	}
	report.add("committee_members", counts.CommitteeMembers, len(members))

	projects, err := g.PopulateProjects(ctx, lecturers, counts.Projects)
	if err != nil {
		return report, err
	}
	report.add("research_projects", counts.Projects, len(projects))

	team, err := g.PopulateTeamMembers(ctx, projects, lecturers, counts.TeamMembers)
	if err != nil {
		return report, err
	}
	report.add("research_team_members", counts.TeamMembers, len(team))

	publications, err := g.PopulatePublications(ctx, lecturers, projects, counts.Publications)
	if err != nil {
		return report, err
	}
	report.add("publications", counts.Publications, len(publications))

	staff, err := g.PopulateStaff(ctx, departments, counts.Staff)
	if err != nil {
		return report, err
	}
	report.add("non_academic_staff", counts.Staff, len(staff))

	g.logger.Info("population completed", "steps", len(report.Steps))
	return report, nil
}

// ClearAll deletes every row in reverse dependency order within a
// single transaction. On failure the store is left unchanged. It must
// not run while queries are open against the same store.
func (g *Generator) ClearAll(ctx context.Context) error {
	err := g.store.InTx(ctx, func(tx *store.Tx) error {
		return tx.PurgeAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("clear all: %w", err)
	}
	g.logger.Info("store cleared")
	return nil
}

// batch wraps one population step in a transaction and records its
// seed-batch audit row inside the same transaction.
func (g *Generator) batch(ctx context.Context, entity string, requested int, fn func(tx *store.Tx) (int, error)) error {
	started := time.Now().UTC()

	err := g.store.InTx(ctx, func(tx *store.Tx) error {
		created, err := fn(tx)
		if err != nil {
			return err
		}
		return tx.RecordSeedBatch(ctx, &store.SeedBatch{
			Entity:    entity,
			Requested: requested,
			Created:   created,
			StartedAt: started,
		})
	})
	if err != nil {
		return fmt.Errorf("populate %s: %w", entity, err)
	}
	return nil
}
