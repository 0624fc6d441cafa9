package store

import (
	"context"
	"fmt"
	"time"

	"github.com/leapstack-labs/registrar/internal/schema"
)

// InsertLecturer inserts a lecturer and returns its assigned id.
func (t *Tx) InsertLecturer(ctx context.Context, l *schema.Lecturer) (int64, error) {
	if err := l.Validate(); err != nil {
		return 0, err
	}

	res, err := t.tx.ExecContext(ctx,
		`INSERT INTO lecturers (name, department_id, qualifications, expertise, course_load, research_interests)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		l.Name, l.DepartmentID, l.Qualifications, l.Expertise, l.CourseLoad, l.ResearchInterests,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert lecturer: %w", mapConstraintErr(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read lecturer id: %w", err)
	}
	l.ID = id
	return id, nil
}

// InsertStudent inserts a student and returns its assigned id. The
// grade field is stored as-is; malformed tokens are a read-time
// concern.
func (t *Tx) InsertStudent(ctx context.Context, s *schema.Student) (int64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.GraduationStatus == "" {
		s.GraduationStatus = schema.StatusActive
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	res, err := t.tx.ExecContext(ctx,
		`INSERT INTO students (name, date_of_birth, contact, program_id, year_of_study, current_grades,
		                       disciplinary_records, graduation_status, advisor_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.Name, s.DateOfBirth, s.Contact, s.ProgramID, s.YearOfStudy, s.CurrentGrades,
		s.DisciplinaryRecords, s.GraduationStatus, s.AdvisorID, s.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert student: %w", mapConstraintErr(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read student id: %w", err)
	}
	s.ID = id
	return id, nil
}

// InsertStaff inserts a non-academic staff member and returns its
// assigned id.
func (t *Tx) InsertStaff(ctx context.Context, s *schema.NonAcademicStaff) (int64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	res, err := t.tx.ExecContext(ctx,
		`INSERT INTO non_academic_staff (name, job_title, department_id, employment_type, contact, salary, emergency_contact)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.Name, s.JobTitle, s.DepartmentID, s.EmploymentType, s.Contact, s.Salary, s.EmergencyContact,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert staff: %w", mapConstraintErr(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read staff id: %w", err)
	}
	s.ID = id
	return id, nil
}

// InsertOrganization inserts a student organization and returns its
// assigned id. Organization names are unique across all rows.
func (t *Tx) InsertOrganization(ctx context.Context, o *schema.StudentOrganization) (int64, error) {
	if err := o.Validate(); err != nil {
		return 0, err
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}

	res, err := t.tx.ExecContext(ctx,
		`INSERT INTO student_organizations (name, description, student_id, joined_on, role, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		o.Name, o.Description, o.StudentID, o.JoinedOn, o.Role, o.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert organization: %w", mapConstraintErr(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read organization id: %w", err)
	}
	o.ID = id
	return id, nil
}

// OrganizationNames returns every organization name currently stored,
// for preloading uniqueness sets before sampling.
func (t *Tx) OrganizationNames(ctx context.Context) (map[string]bool, error) {
	rows, err := t.tx.QueryContext(ctx, `SELECT name FROM student_organizations`)
	if err != nil {
		return nil, fmt.Errorf("failed to list organization names: %w", err)
	}
	defer rows.Close()

	names := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan organization name: %w", err)
		}
		names[name] = true
	}
	return names, rows.Err()
}
