package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

// LecturersByExpertise finds lecturers whose expertise or research
// interests contain the fragment.
func (c *Catalog) LecturersByExpertise(ctx context.Context, area string) ([]LecturerExpertiseRow, error) {
	out := []LecturerExpertiseRow{}
	err := c.store.ReadTx(ctx, func(tx *sql.Tx) error {
		pattern := contains(area)
		rows, err := tx.QueryContext(ctx, `
			SELECT l.name, l.expertise, l.research_interests, d.name
			FROM lecturers l
			JOIN departments d ON d.id = l.department_id
			WHERE l.expertise LIKE ? OR l.research_interests LIKE ?
			ORDER BY l.name, l.id`, pattern, pattern)
		if err != nil {
			return fmt.Errorf("lecturers by expertise: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var r LecturerExpertiseRow
			if err := rows.Scan(&r.Name, &r.Expertise, &r.ResearchInterests, &r.Department); err != nil {
				return fmt.Errorf("lecturers by expertise: scan: %w", err)
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

// CoursesByDepartment lists courses taught by lecturers of departments
// whose name contains the fragment. The department is the lecturer's,
// matching how teaching assignments are reported.
func (c *Catalog) CoursesByDepartment(ctx context.Context, departmentName string) ([]DepartmentCourseRow, error) {
	out := []DepartmentCourseRow{}
	err := c.store.ReadTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT co.code, co.name, co.credits, l.name, d.name
			FROM courses co
			JOIN course_instructors ci ON ci.course_id = co.id
			JOIN lecturers l ON l.id = ci.lecturer_id
			JOIN departments d ON d.id = l.department_id
			WHERE d.name LIKE ?
			ORDER BY co.code, l.name`, contains(departmentName))
		if err != nil {
			return fmt.Errorf("courses by department: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var r DepartmentCourseRow
			if err := rows.Scan(&r.CourseCode, &r.CourseName, &r.Credits, &r.LecturerName, &r.Department); err != nil {
				return fmt.Errorf("courses by department: scan: %w", err)
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

// TopResearchSupervisors ranks lecturers by the number of research
// projects they lead, descending, ties broken by lecturer id so the
// ordering stays stable. At most limit rows are returned.
func (c *Catalog) TopResearchSupervisors(ctx context.Context, limit int) ([]SupervisorRow, error) {
	if limit <= 0 {
		return []SupervisorRow{}, nil
	}

	out := []SupervisorRow{}
	err := c.store.ReadTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT l.name, d.name, COUNT(rp.id) AS project_count
			FROM lecturers l
			JOIN research_projects rp ON rp.principal_investigator_id = l.id
			JOIN departments d ON d.id = l.department_id
			GROUP BY l.id, l.name, d.name
			ORDER BY project_count DESC, l.id
			LIMIT ?`, limit)
		if err != nil {
			return fmt.Errorf("top research supervisors: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var r SupervisorRow
			if err := rows.Scan(&r.Name, &r.Department, &r.ProjectCount); err != nil {
				return fmt.Errorf("top research supervisors: scan: %w", err)
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

// PublicationsSince reports publications from the given year onward,
// newest first, then by lecturer name.
func (c *Catalog) PublicationsSince(ctx context.Context, year int) ([]PublicationRow, error) {
	out := []PublicationRow{}
	err := c.store.ReadTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT l.name, d.name, p.title, p.year, p.type
			FROM lecturers l
			JOIN publications p ON p.lecturer_id = l.id
			JOIN departments d ON d.id = l.department_id
			WHERE p.year >= ?
			ORDER BY p.year DESC, l.name, p.id`, year)
		if err != nil {
			return fmt.Errorf("publications since: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var r PublicationRow
			if err := rows.Scan(&r.LecturerName, &r.Department, &r.Title, &r.Year, &r.Type); err != nil {
				return fmt.Errorf("publications since: scan: %w", err)
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

// StaffByDepartment lists non-academic staff of departments whose name
// contains the fragment.
func (c *Catalog) StaffByDepartment(ctx context.Context, departmentName string) ([]StaffRow, error) {
	out := []StaffRow{}
	err := c.store.ReadTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT st.name, st.job_title, st.employment_type, st.contact, d.name
			FROM non_academic_staff st
			JOIN departments d ON d.id = st.department_id
			WHERE d.name LIKE ?
			ORDER BY st.name, st.id`, contains(departmentName))
		if err != nil {
			return fmt.Errorf("staff by department: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var r StaffRow
			if err := rows.Scan(&r.Name, &r.JobTitle, &r.EmploymentType, &r.Contact, &r.Department); err != nil {
				return fmt.Errorf("staff by department: scan: %w", err)
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
