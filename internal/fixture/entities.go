package fixture

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/leapstack-labs/registrar/internal/schema"
	"github.com/leapstack-labs/registrar/internal/store"
)

func (g *Generator) pick(items []string) string {
	return g.faker.RandomString(items)
}

// PopulateDepartments creates up to count departments from the fixed
// catalog.
func (g *Generator) PopulateDepartments(ctx context.Context, count int) ([]schema.Department, error) {
	if count > len(departmentNames) {
		count = len(departmentNames)
	}

	var out []schema.Department
	err := g.batch(ctx, "departments", count, func(tx *store.Tx) (int, error) {
		for i := 0; i < count; i++ {
			d := schema.Department{
				Name:          departmentNames[i],
				Faculty:       g.pick(faculties),
				ResearchAreas: fmt.Sprintf("%s Research, Applied %s", departmentNames[i], departmentNames[i]),
			}
			if _, err := tx.InsertDepartment(ctx, &d); err != nil {
				return 0, err
			}
			out = append(out, d)
		}
		return len(out), nil
	})
	if err != nil {
		return nil, err
	}

	g.logger.Debug("populated departments", "created", len(out))
	return out, nil
}

// PopulatePrograms creates up to count degree programs.
func (g *Generator) PopulatePrograms(ctx context.Context, count int) ([]schema.Program, error) {
	if count > len(programCatalog) {
		count = len(programCatalog)
	}

	var out []schema.Program
	err := g.batch(ctx, "programs", count, func(tx *store.Tx) (int, error) {
		for i := 0; i < count; i++ {
			p := schema.Program{
				Name:               programCatalog[i].Name,
				DegreeAwarded:      programCatalog[i].Degree,
				Duration:           programCatalog[i].Duration,
				CourseRequirements: "Complete all required courses",
				EnrollmentDetails:  "Open enrollment",
			}
			if _, err := tx.InsertProgram(ctx, &p); err != nil {
				return 0, err
			}
			out = append(out, p)
		}
		return len(out), nil
	})
	if err != nil {
		return nil, err
	}

	g.logger.Debug("populated programs", "created", len(out))
	return out, nil
}

// PopulateCommittees creates up to count committees.
func (g *Generator) PopulateCommittees(ctx context.Context, count int) ([]schema.Committee, error) {
	if count > len(committeeNames) {
		count = len(committeeNames)
	}
	now := time.Now().UTC()

	var out []schema.Committee
	err := g.batch(ctx, "committees", count, func(tx *store.Tx) (int, error) {
		for i := 0; i < count; i++ {
			c := schema.Committee{
				Name:        committeeNames[i],
				Description: "Responsible for " + strings.ToLower(committeeNames[i]),
				CreatedOn:   g.faker.DateRange(now.AddDate(-5, 0, 0), now),
			}
			if _, err := tx.InsertCommittee(ctx, &c); err != nil {
				return 0, err
			}
			out = append(out, c)
		}
		return len(out), nil
	})
	if err != nil {
		return nil, err
	}

	g.logger.Debug("populated committees", "created", len(out))
	return out, nil
}

// PopulateLecturers creates count lecturers spread over the given
// departments.
func (g *Generator) PopulateLecturers(ctx context.Context, departments []schema.Department, count int) ([]schema.Lecturer, error) {
	if len(departments) == 0 {
		return nil, fmt.Errorf("populate lecturers: no departments to reference")
	}

	var out []schema.Lecturer
	err := g.batch(ctx, "lecturers", count, func(tx *store.Tx) (int, error) {
		for i := 0; i < count; i++ {
			first := g.pick(expertiseAreas)
			second := g.pick(expertiseAreas)
			l := schema.Lecturer{
				Name:              g.faker.Name(),
				DepartmentID:      departments[g.faker.Number(0, len(departments)-1)].ID,
				Qualifications:    g.pick(qualifications),
				Expertise:         first + ", " + second,
				CourseLoad:        "3-4 courses per semester",
				ResearchInterests: g.pick(expertiseAreas),
			}
			if _, err := tx.InsertLecturer(ctx, &l); err != nil {
				return 0, err
			}
			out = append(out, l)
		}
		return len(out), nil
	})
	if err != nil {
		return nil, err
	}

	g.logger.Debug("populated lecturers", "created", len(out))
	return out, nil
}

// PopulateCourses creates up to count courses with unique codes. Codes
// already present in the store are preloaded into the used-set, so
// repopulating without clearing yields a second disjoint code set.
// The draw budget is bounded; exhausting it returns fewer courses.
func (g *Generator) PopulateCourses(ctx context.Context, departments []schema.Department, count int) ([]schema.Course, error) {
	if len(departments) == 0 {
		return nil, fmt.Errorf("populate courses: no departments to reference")
	}

	var out []schema.Course
	err := g.batch(ctx, "courses", count, func(tx *store.Tx) (int, error) {
		used, err := tx.CourseCodes(ctx)
		if err != nil {
			return 0, err
		}

		attempts := 0
		maxAttempts := count * retryFactor * 10
		for len(out) < count && attempts < maxAttempts {
			attempts++
			code := g.pick(coursePrefixes) + strconv.Itoa(g.faker.Number(100, 499))
			if used[code] {
				continue
			}
			used[code] = true

			c := schema.Course{
				Code:          code,
				Name:          g.pick(courseNames),
				Description:   g.faker.Sentence(12),
				DepartmentID:  departments[g.faker.Number(0, len(departments)-1)].ID,
				Level:         g.pick([]string{"Undergraduate", "Graduate"}),
				Credits:       []int{3, 4, 6}[g.faker.Number(0, 2)],
				Prerequisites: "None",
				Schedule:      fmt.Sprintf("%s %d:00", g.pick([]string{"MWF", "TTh"}), g.faker.Number(9, 16)),
				Material:      "Textbook and online resources",
			}
			if _, err := tx.InsertCourse(ctx, &c); err != nil {
				return 0, err
			}
			out = append(out, c)
		}
		return len(out), nil
	})
	if err != nil {
		return nil, err
	}

	g.logger.Debug("populated courses", "requested", count, "created", len(out))
	return out, nil
}

// PopulateStudents creates count students referencing the given
// programs and advisors. Grade fields hold five comma-separated scores
// between 60 and 100.
func (g *Generator) PopulateStudents(ctx context.Context, programs []schema.Program, lecturers []schema.Lecturer, count int) ([]schema.Student, error) {
	if len(programs) == 0 || len(lecturers) == 0 {
		return nil, fmt.Errorf("populate students: need programs and lecturers to reference")
	}
	now := time.Now().UTC()

	var out []schema.Student
	err := g.batch(ctx, "students", count, func(tx *store.Tx) (int, error) {
		for i := 0; i < count; i++ {
			year := g.faker.Number(1, 4)

			scores := make([]string, 5)
			for j := range scores {
				scores[j] = strconv.Itoa(g.faker.Number(60, 100))
			}

			status := schema.StatusActive
			if year == 4 && g.faker.Number(0, 1) == 1 {
				status = schema.StatusGraduated
			}

			s := schema.Student{
				Name:                g.faker.Name(),
				DateOfBirth:         g.faker.DateRange(now.AddDate(-30, 0, 0), now.AddDate(-18, 0, 0)),
				Contact:             g.faker.Email(),
				ProgramID:           programs[g.faker.Number(0, len(programs)-1)].ID,
				YearOfStudy:         year,
				CurrentGrades:       strings.Join(scores, ", "),
				DisciplinaryRecords: "None",
				GraduationStatus:    status,
				AdvisorID:           lecturers[g.faker.Number(0, len(lecturers)-1)].ID,
			}
			if _, err := tx.InsertStudent(ctx, &s); err != nil {
				return 0, err
			}
			out = append(out, s)
		}
		return len(out), nil
	})
	if err != nil {
		return nil, err
	}

	g.logger.Debug("populated students", "created", len(out))
	return out, nil
}

// PopulateProjects creates count research projects led by the given
// lecturers.
func (g *Generator) PopulateProjects(ctx context.Context, lecturers []schema.Lecturer, count int) ([]schema.ResearchProject, error) {
	if len(lecturers) == 0 {
		return nil, fmt.Errorf("populate projects: no lecturers to reference")
	}

	var out []schema.ResearchProject
	err := g.batch(ctx, "research_projects", count, func(tx *store.Tx) (int, error) {
		for i := 0; i < count; i++ {
			p := schema.ResearchProject{
				Title:                   fmt.Sprintf("Research Project %d: %s", i+1, g.faker.Sentence(4)),
				PrincipalInvestigatorID: lecturers[g.faker.Number(0, len(lecturers)-1)].ID,
				FundingSources:          g.pick(fundingSources),
				Outcomes:                "Ongoing research",
			}
			if _, err := tx.InsertProject(ctx, &p); err != nil {
				return 0, err
			}
			out = append(out, p)
		}
		return len(out), nil
	})
	if err != nil {
		return nil, err
	}

	g.logger.Debug("populated research projects", "created", len(out))
	return out, nil
}

// PopulatePublications creates count publications. Roughly 30% are not
// tied to any project.
func (g *Generator) PopulatePublications(ctx context.Context, lecturers []schema.Lecturer, projects []schema.ResearchProject, count int) ([]schema.Publication, error) {
	if len(lecturers) == 0 {
		return nil, fmt.Errorf("populate publications: no lecturers to reference")
	}

	var out []schema.Publication
	err := g.batch(ctx, "publications", count, func(tx *store.Tx) (int, error) {
		for i := 0; i < count; i++ {
			p := schema.Publication{
				Title:      fmt.Sprintf("Publication %d: %s", i+1, g.faker.Sentence(5)),
				Year:       g.faker.Number(2020, 2025),
				Type:       g.pick(publicationTypes),
				LecturerID: lecturers[g.faker.Number(0, len(lecturers)-1)].ID,
			}
			if len(projects) > 0 && g.faker.Number(0, 9) >= 3 {
				p.ProjectID = projects[g.faker.Number(0, len(projects)-1)].ID
			}
			if _, err := tx.InsertPublication(ctx, &p); err != nil {
				return 0, err
			}
			out = append(out, p)
		}
		return len(out), nil
	})
	if err != nil {
		return nil, err
	}

	g.logger.Debug("populated publications", "created", len(out))
	return out, nil
}

// PopulateStaff creates count non-academic staff members.
func (g *Generator) PopulateStaff(ctx context.Context, departments []schema.Department, count int) ([]schema.NonAcademicStaff, error) {
	if len(departments) == 0 {
		return nil, fmt.Errorf("populate staff: no departments to reference")
	}

	var out []schema.NonAcademicStaff
	err := g.batch(ctx, "non_academic_staff", count, func(tx *store.Tx) (int, error) {
		for i := 0; i < count; i++ {
			s := schema.NonAcademicStaff{
				Name:             g.faker.Name(),
				JobTitle:         g.pick(jobTitles),
				DepartmentID:     departments[g.faker.Number(0, len(departments)-1)].ID,
				EmploymentType:   g.pick(employmentTypes),
				Contact:          g.faker.Email(),
				Salary:           float64(g.faker.Number(30000, 80000)),
				EmergencyContact: g.faker.Phone(),
			}
			if _, err := tx.InsertStaff(ctx, &s); err != nil {
				return 0, err
			}
			out = append(out, s)
		}
		return len(out), nil
	})
	if err != nil {
		return nil, err
	}

	g.logger.Debug("populated staff", "created", len(out))
	return out, nil
}
