package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/leapstack-labs/registrar/internal/grades"
)

// StudentsInCourseByLecturer finds students enrolled in a course taught
// by a matching lecturer. courseCode matches exactly, lecturerName as a
// case-insensitive substring; both filters AND together. With both
// filters empty the operation returns an empty result without touching
// the store — an unfiltered call would otherwise scan the full join.
func (c *Catalog) StudentsInCourseByLecturer(ctx context.Context, courseCode, lecturerName string) ([]CourseRosterRow, error) {
	if courseCode == "" && lecturerName == "" {
		return []CourseRosterRow{}, nil
	}

	query := `
		SELECT s.name, s.contact, co.code, co.name, l.name
		FROM students s
		JOIN course_enrollments e ON e.student_id = s.id
		JOIN courses co ON co.id = e.course_id
		JOIN course_instructors ci ON ci.course_id = co.id
		JOIN lecturers l ON l.id = ci.lecturer_id`

	var conds []string
	var args []any
	if courseCode != "" {
		conds = append(conds, "co.code = ?")
		args = append(args, courseCode)
	}
	if lecturerName != "" {
		conds = append(conds, "l.name LIKE ?")
		args = append(args, contains(lecturerName))
	}
	query += " WHERE " + strings.Join(conds, " AND ") + " ORDER BY s.name, co.code, l.name"

	out := []CourseRosterRow{}
	err := c.store.ReadTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("students in course by lecturer: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var r CourseRosterRow
			if err := rows.Scan(&r.StudentName, &r.Contact, &r.CourseCode, &r.CourseName, &r.LecturerName); err != nil {
				return fmt.Errorf("students in course by lecturer: scan: %w", err)
			}
			out = append(out, r)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// highPerformingThreshold is the grade average a final-year student
// must exceed to appear in HighPerformingFinalYears.
const highPerformingThreshold = 70.0

// finalYear is the year of study treated as the final year.
const finalYear = 4

// HighPerformingFinalYears lists final-year students whose computed
// grade average exceeds the threshold. Malformed grade tokens are
// excluded from the average; a student whose field yields no numeric
// tokens is skipped, never an error.
func (c *Catalog) HighPerformingFinalYears(ctx context.Context) ([]TopStudentRow, error) {
	out := []TopStudentRow{}
	err := c.store.ReadTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT s.name, p.name, s.current_grades, s.year_of_study, s.contact
			FROM students s
			JOIN programs p ON p.id = s.program_id
			WHERE s.year_of_study = ?
			ORDER BY s.name, s.id`, finalYear)
		if err != nil {
			return fmt.Errorf("high-performing final years: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var r TopStudentRow
			var gradeField string
			if err := rows.Scan(&r.Name, &r.Program, &gradeField, &r.Year, &r.Contact); err != nil {
				return fmt.Errorf("high-performing final years: scan: %w", err)
			}

			avg, ok := grades.Average(gradeField)
			if !ok || avg <= highPerformingThreshold {
				continue
			}
			r.Average = avg
			out = append(out, r)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// StudentsNotEnrolled lists students with no enrollment in the given
// semester.
func (c *Catalog) StudentsNotEnrolled(ctx context.Context, semester string) ([]UnenrolledStudentRow, error) {
	out := []UnenrolledStudentRow{}
	err := c.store.ReadTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT s.name, s.contact, s.year_of_study, p.name
			FROM students s
			JOIN programs p ON p.id = s.program_id
			WHERE NOT EXISTS (
				SELECT 1 FROM course_enrollments e
				WHERE e.student_id = s.id AND e.semester = ?
			)
			ORDER BY s.name, s.id`, semester)
		if err != nil {
			return fmt.Errorf("students not enrolled: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var r UnenrolledStudentRow
			if err := rows.Scan(&r.Name, &r.Contact, &r.Year, &r.Program); err != nil {
				return fmt.Errorf("students not enrolled: scan: %w", err)
			}
			out = append(out, r)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AdvisorContacts returns advisor contact details for students whose
// name contains the fragment.
func (c *Catalog) AdvisorContacts(ctx context.Context, studentName string) ([]AdvisorContactRow, error) {
	out := []AdvisorContactRow{}
	err := c.store.ReadTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT s.name, l.name, l.expertise, d.name
			FROM students s
			JOIN lecturers l ON l.id = s.advisor_id
			JOIN departments d ON d.id = l.department_id
			WHERE s.name LIKE ?
			ORDER BY s.name, s.id`, contains(studentName))
		if err != nil {
			return fmt.Errorf("advisor contacts: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var r AdvisorContactRow
			if err := rows.Scan(&r.StudentName, &r.AdvisorName, &r.Expertise, &r.Department); err != nil {
				return fmt.Errorf("advisor contacts: scan: %w", err)
			}
			out = append(out, r)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// StudentsByAdvisor lists students advised by lecturers whose name
// contains the fragment.
func (c *Catalog) StudentsByAdvisor(ctx context.Context, lecturerName string) ([]AdviseeRow, error) {
	out := []AdviseeRow{}
	err := c.store.ReadTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT s.name, s.year_of_study, p.name, s.contact
			FROM students s
			JOIN lecturers l ON l.id = s.advisor_id
			JOIN programs p ON p.id = s.program_id
			WHERE l.name LIKE ?
			ORDER BY s.name, s.id`, contains(lecturerName))
		if err != nil {
			return fmt.Errorf("students by advisor: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var r AdviseeRow
			if err := rows.Scan(&r.StudentName, &r.Year, &r.Program, &r.Contact); err != nil {
				return fmt.Errorf("students by advisor: scan: %w", err)
			}
			out = append(out, r)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
