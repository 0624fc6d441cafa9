package store

import (
	"context"
	"fmt"
	"time"

	"github.com/leapstack-labs/registrar/internal/schema"
)

// InsertCourse inserts a course and returns its assigned id. Course
// codes are unique across all rows.
func (t *Tx) InsertCourse(ctx context.Context, c *schema.Course) (int64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	res, err := t.tx.ExecContext(ctx,
		`INSERT INTO courses (code, name, description, department_id, level, credits, prerequisites, schedule, material, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Code, c.Name, c.Description, c.DepartmentID, c.Level, c.Credits, c.Prerequisites, c.Schedule, c.Material, c.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert course: %w", mapConstraintErr(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read course id: %w", err)
	}
	c.ID = id
	return id, nil
}

// CourseCodes returns every course code currently stored, for
// preloading uniqueness sets before sampling.
func (t *Tx) CourseCodes(ctx context.Context) (map[string]bool, error) {
	rows, err := t.tx.QueryContext(ctx, `SELECT code FROM courses`)
	if err != nil {
		return nil, fmt.Errorf("failed to list course codes: %w", err)
	}
	defer rows.Close()

	codes := make(map[string]bool)
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("failed to scan course code: %w", err)
		}
		codes[code] = true
	}
	return codes, rows.Err()
}

// InsertEnrollment inserts a course enrollment. The (student, course)
// pair is the composite key; duplicates surface ErrUniquenessViolation.
func (t *Tx) InsertEnrollment(ctx context.Context, e *schema.CourseEnrollment) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if e.EnrolledOn.IsZero() {
		e.EnrolledOn = time.Now().UTC()
	}
	if e.Status == "" {
		e.Status = schema.StatusEnrolled
	}

	_, err := t.tx.ExecContext(ctx,
		`INSERT INTO course_enrollments (student_id, course_id, enrolled_on, semester, academic_year, status)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.StudentID, e.CourseID, e.EnrolledOn, e.Semester, e.AcademicYear, e.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to insert enrollment: %w", mapConstraintErr(err))
	}
	return nil
}

// InsertInstructor assigns a lecturer to a course. The (course,
// lecturer) pair is the composite key.
func (t *Tx) InsertInstructor(ctx context.Context, ci *schema.CourseInstructor) error {
	if err := ci.Validate(); err != nil {
		return err
	}

	_, err := t.tx.ExecContext(ctx,
		`INSERT INTO course_instructors (course_id, lecturer_id) VALUES (?, ?)`,
		ci.CourseID, ci.LecturerID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert instructor assignment: %w", mapConstraintErr(err))
	}
	return nil
}
