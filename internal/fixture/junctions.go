package fixture

import (
	"context"
	"fmt"
	"time"

	"github.com/leapstack-labs/registrar/internal/schema"
	"github.com/leapstack-labs/registrar/internal/store"
)

type pair struct{ a, b int64 }

// PopulateEnrollments creates up to count enrollments over random
// (student, course) pairs. Duplicate pairs are rejected and redrawn;
// after retryFactor*count draws the step stops short and the shortfall
// is reported, not failed — a small draw space cannot always satisfy
// count unique pairs.
func (g *Generator) PopulateEnrollments(ctx context.Context, students []schema.Student, courses []schema.Course, count int) ([]schema.CourseEnrollment, error) {
	if len(students) == 0 || len(courses) == 0 {
		return nil, fmt.Errorf("populate enrollments: need students and courses to reference")
	}
	now := time.Now().UTC()

	var out []schema.CourseEnrollment
	err := g.batch(ctx, "course_enrollments", count, func(tx *store.Tx) (int, error) {
		used := make(map[pair]bool)
		attempts := 0
		maxAttempts := count * retryFactor

		for len(out) < count && attempts < maxAttempts {
			attempts++
			student := students[g.faker.Number(0, len(students)-1)]
			course := courses[g.faker.Number(0, len(courses)-1)]

			key := pair{student.ID, course.ID}
			if used[key] {
				continue
			}
			used[key] = true

			e := schema.CourseEnrollment{
				StudentID:    student.ID,
				CourseID:     course.ID,
				EnrolledOn:   g.faker.DateRange(now.AddDate(-1, 0, 0), now),
				Semester:     g.pick(semesters),
				AcademicYear: "2024-2025",
				Status:       schema.StatusEnrolled,
			}
			if err := tx.InsertEnrollment(ctx, &e); err != nil {
				return 0, err
			}
			out = append(out, e)
		}
		return len(out), nil
	})
	if err != nil {
		return nil, err
	}

	g.logger.Debug("populated enrollments", "requested", count, "created", len(out))
	return out, nil
}

// PopulateInstructors assigns one or two lecturers to every course,
// skipping duplicate (course, lecturer) pairs.
func (g *Generator) PopulateInstructors(ctx context.Context, courses []schema.Course, lecturers []schema.Lecturer) ([]schema.CourseInstructor, error) {
	if len(courses) == 0 || len(lecturers) == 0 {
		return nil, fmt.Errorf("populate instructors: need courses and lecturers to reference")
	}

	var out []schema.CourseInstructor
	err := g.batch(ctx, "course_instructors", len(courses), func(tx *store.Tx) (int, error) {
		used := make(map[pair]bool)
		for _, course := range courses {
			n := g.faker.Number(1, 2)
			for i := 0; i < n; i++ {
				lecturer := lecturers[g.faker.Number(0, len(lecturers)-1)]
				key := pair{course.ID, lecturer.ID}
				if used[key] {
					continue
				}
				used[key] = true

				ci := schema.CourseInstructor{CourseID: course.ID, LecturerID: lecturer.ID}
				if err := tx.InsertInstructor(ctx, &ci); err != nil {
					return 0, err
				}
				out = append(out, ci)
			}
		}
		return len(out), nil
	})
	if err != nil {
		return nil, err
	}

	g.logger.Debug("populated instructors", "created", len(out))
	return out, nil
}

// PopulateOrganizations creates up to count student organizations with
// globally unique names. Names already stored are preloaded into the
// used-set so repopulation cannot collide; the draw budget is bounded.
func (g *Generator) PopulateOrganizations(ctx context.Context, students []schema.Student, count int) ([]schema.StudentOrganization, error) {
	if len(students) == 0 {
		return nil, fmt.Errorf("populate organizations: no students to reference")
	}
	now := time.Now().UTC()

	var out []schema.StudentOrganization
	err := g.batch(ctx, "student_organizations", count, func(tx *store.Tx) (int, error) {
		used, err := tx.OrganizationNames(ctx)
		if err != nil {
			return 0, err
		}

		attempts := 0
		maxAttempts := count * retryFactor * 10
		for len(out) < count && attempts < maxAttempts {
			attempts++
			name := g.pick(organizationTopics) + " " + g.pick(organizationKinds)
			if used[name] {
				// Widen the draw space before giving up entirely.
				name = fmt.Sprintf("%s %d", name, g.faker.Number(2, 99))
				if used[name] {
					continue
				}
			}
			used[name] = true

			o := schema.StudentOrganization{
				Name:        name,
				Description: g.faker.Sentence(8),
				StudentID:   students[g.faker.Number(0, len(students)-1)].ID,
				JoinedOn:    g.faker.DateRange(now.AddDate(-2, 0, 0), now),
				Role:        g.pick(organizationRoles),
			}
			if _, err := tx.InsertOrganization(ctx, &o); err != nil {
				return 0, err
			}
			out = append(out, o)
		}
		return len(out), nil
	})
	if err != nil {
		return nil, err
	}

	g.logger.Debug("populated organizations", "requested", count, "created", len(out))
	return out, nil
}

// PopulateCommitteeMembers creates count committee memberships with a
// one-year term each.
func (g *Generator) PopulateCommitteeMembers(ctx context.Context, committees []schema.Committee, lecturers []schema.Lecturer, count int) ([]schema.CommitteeMember, error) {
	if len(committees) == 0 || len(lecturers) == 0 {
		return nil, fmt.Errorf("populate committee members: need committees and lecturers to reference")
	}
	now := time.Now().UTC()

	var out []schema.CommitteeMember
	err := g.batch(ctx, "committee_members", count, func(tx *store.Tx) (int, error) {
		for i := 0; i < count; i++ {
			start := g.faker.DateRange(now.AddDate(-2, 0, 0), now)
			m := schema.CommitteeMember{
				CommitteeID: committees[g.faker.Number(0, len(committees)-1)].ID,
				LecturerID:  lecturers[g.faker.Number(0, len(lecturers)-1)].ID,
				Role:        g.pick(committeeRoles),
				StartDate:   start,
				EndDate:     start.AddDate(1, 0, 0),
			}
			if _, err := tx.InsertCommitteeMember(ctx, &m); err != nil {
				return 0, err
			}
			out = append(out, m)
		}
		return len(out), nil
	})
	if err != nil {
		return nil, err
	}

	g.logger.Debug("populated committee members", "created", len(out))
	return out, nil
}

// PopulateTeamMembers creates up to count research team assignments
// over random (project, lecturer) pairs with the bounded rejection
// sampling used for enrollments.
func (g *Generator) PopulateTeamMembers(ctx context.Context, projects []schema.ResearchProject, lecturers []schema.Lecturer, count int) ([]schema.ResearchTeamMember, error) {
	if len(projects) == 0 || len(lecturers) == 0 {
		return nil, fmt.Errorf("populate team members: need projects and lecturers to reference")
	}

	var out []schema.ResearchTeamMember
	err := g.batch(ctx, "research_team_members", count, func(tx *store.Tx) (int, error) {
		used := make(map[pair]bool)
		attempts := 0
		maxAttempts := count * retryFactor

		for len(out) < count && attempts < maxAttempts {
			attempts++
			project := projects[g.faker.Number(0, len(projects)-1)]
			lecturer := lecturers[g.faker.Number(0, len(lecturers)-1)]

			key := pair{project.ID, lecturer.ID}
			if used[key] {
				continue
			}
			used[key] = true

			m := schema.ResearchTeamMember{ProjectID: project.ID, LecturerID: lecturer.ID}
			if err := tx.InsertTeamMember(ctx, &m); err != nil {
				return 0, err
			}
			out = append(out, m)
		}
		return len(out), nil
	})
	if err != nil {
		return nil, err
	}

	g.logger.Debug("populated team members", "requested", count, "created", len(out))
	return out, nil
}
