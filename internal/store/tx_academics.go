package store

import (
	"context"
	"fmt"
	"time"

	"github.com/leapstack-labs/registrar/internal/schema"
)

// InsertDepartment inserts a department and returns its assigned id.
func (t *Tx) InsertDepartment(ctx context.Context, d *schema.Department) (int64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}

	res, err := t.tx.ExecContext(ctx,
		`INSERT INTO departments (name, faculty, research_areas, created_at) VALUES (?, ?, ?, ?)`,
		d.Name, d.Faculty, d.ResearchAreas, d.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert department: %w", mapConstraintErr(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read department id: %w", err)
	}
	d.ID = id
	return id, nil
}

// InsertProgram inserts a degree program and returns its assigned id.
func (t *Tx) InsertProgram(ctx context.Context, p *schema.Program) (int64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	res, err := t.tx.ExecContext(ctx,
		`INSERT INTO programs (name, degree_awarded, duration, course_requirements, enrollment_details, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.Name, p.DegreeAwarded, p.Duration, p.CourseRequirements, p.EnrollmentDetails, p.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert program: %w", mapConstraintErr(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read program id: %w", err)
	}
	p.ID = id
	return id, nil
}

// InsertCommittee inserts a committee and returns its assigned id.
func (t *Tx) InsertCommittee(ctx context.Context, c *schema.Committee) (int64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	res, err := t.tx.ExecContext(ctx,
		`INSERT INTO committees (name, description, created_on) VALUES (?, ?, ?)`,
		c.Name, c.Description, c.CreatedOn,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert committee: %w", mapConstraintErr(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read committee id: %w", err)
	}
	c.ID = id
	return id, nil
}

// InsertCommitteeMember inserts a committee membership and returns its
// assigned id.
func (t *Tx) InsertCommitteeMember(ctx context.Context, m *schema.CommitteeMember) (int64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}

	res, err := t.tx.ExecContext(ctx,
		`INSERT INTO committee_members (committee_id, lecturer_id, role, start_date, end_date)
		 VALUES (?, ?, ?, ?, ?)`,
		m.CommitteeID, m.LecturerID, m.Role, m.StartDate, m.EndDate,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert committee member: %w", mapConstraintErr(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read committee member id: %w", err)
	}
	m.ID = id
	return id, nil
}
