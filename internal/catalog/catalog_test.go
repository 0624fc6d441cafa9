package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/registrar/internal/schema"
	"github.com/leapstack-labs/registrar/internal/store"
)

// setupCatalog builds a small handcrafted dataset:
//
//	departments: Computer Science, History
//	lecturers:   Alan Turing (CS), Marie Curie (CS), Herodotus Smith (History)
//	courses:     CS101 (Turing, Curie), CS201 (Turing), HI101 (Smith)
//	students:    Alice (y4, avg 85, Turing), Bob (y4, avg 62.5, Turing),
//	             Carol (y4, garbage grades, Curie), Dave (y2, Smith),
//	             Eve (y4, avg exactly 70, Curie)
//	enrollments: Alice+Bob in CS101, Dave in CS201; only Alice and Dave
//	             in Fall 2025
func setupCatalog(t *testing.T) *Catalog {
	t.Helper()

	st := store.New(nil)
	require.NoError(t, st.Open(":memory:"))
	t.Cleanup(func() { st.Close() })
	require.NoError(t, st.Migrate())

	ctx := context.Background()
	dob := time.Date(2002, 6, 1, 0, 0, 0, 0, time.UTC)

	err := st.InTx(ctx, func(tx *store.Tx) error {
		cs := schema.Department{Name: "Computer Science", Faculty: "Science"}
		if _, err := tx.InsertDepartment(ctx, &cs); err != nil {
			return err
		}
		hist := schema.Department{Name: "History", Faculty: "Arts"}
		if _, err := tx.InsertDepartment(ctx, &hist); err != nil {
			return err
		}

		bsc := schema.Program{Name: "BSc Computer Science", DegreeAwarded: "BSc"}
		if _, err := tx.InsertProgram(ctx, &bsc); err != nil {
			return err
		}
		ba := schema.Program{Name: "BA History", DegreeAwarded: "BA"}
		if _, err := tx.InsertProgram(ctx, &ba); err != nil {
			return err
		}

		turing := schema.Lecturer{
			Name: "Alan Turing", DepartmentID: cs.ID,
			Expertise: "Machine Learning, Algorithms", ResearchInterests: "Cryptography",
		}
		if _, err := tx.InsertLecturer(ctx, &turing); err != nil {
			return err
		}
		curie := schema.Lecturer{
			Name: "Marie Curie", DepartmentID: cs.ID,
			Expertise: "Physics", ResearchInterests: "Machine Learning",
		}
		if _, err := tx.InsertLecturer(ctx, &curie); err != nil {
			return err
		}
		smith := schema.Lecturer{
			Name: "Herodotus Smith", DepartmentID: hist.ID,
			Expertise: "Ancient History", ResearchInterests: "Archives",
		}
		if _, err := tx.InsertLecturer(ctx, &smith); err != nil {
			return err
		}

		cs101 := schema.Course{Code: "CS101", Name: "Intro to Programming", Credits: 3, DepartmentID: cs.ID}
		if _, err := tx.InsertCourse(ctx, &cs101); err != nil {
			return err
		}
		cs201 := schema.Course{Code: "CS201", Name: "Data Structures", Credits: 4, DepartmentID: cs.ID}
		if _, err := tx.InsertCourse(ctx, &cs201); err != nil {
			return err
		}
		hi101 := schema.Course{Code: "HI101", Name: "Ancient Civilizations", Credits: 3, DepartmentID: hist.ID}
		if _, err := tx.InsertCourse(ctx, &hi101); err != nil {
			return err
		}

		for _, ci := range []schema.CourseInstructor{
			{CourseID: cs101.ID, LecturerID: turing.ID},
			{CourseID: cs101.ID, LecturerID: curie.ID},
			{CourseID: cs201.ID, LecturerID: turing.ID},
			{CourseID: hi101.ID, LecturerID: smith.ID},
		} {
			if err := tx.InsertInstructor(ctx, &ci); err != nil {
				return err
			}
		}

		alice := schema.Student{
			Name: "Alice Chen", DateOfBirth: dob, Contact: "alice@example.edu",
			ProgramID: bsc.ID, YearOfStudy: 4, CurrentGrades: "80, 90, 85",
			AdvisorID: turing.ID,
		}
		if _, err := tx.InsertStudent(ctx, &alice); err != nil {
			return err
		}
		bob := schema.Student{
			Name: "Bob Ito", DateOfBirth: dob, Contact: "bob@example.edu",
			ProgramID: bsc.ID, YearOfStudy: 4, CurrentGrades: "60, 65",
			AdvisorID: turing.ID,
		}
		if _, err := tx.InsertStudent(ctx, &bob); err != nil {
			return err
		}
		carol := schema.Student{
			Name: "Carol Novak", DateOfBirth: dob, Contact: "carol@example.edu",
			ProgramID: ba.ID, YearOfStudy: 4, CurrentGrades: "incomplete, n/a",
			AdvisorID: curie.ID,
		}
		if _, err := tx.InsertStudent(ctx, &carol); err != nil {
			return err
		}
		dave := schema.Student{
			Name: "Dave Okafor", DateOfBirth: dob, Contact: "dave@example.edu",
			ProgramID: bsc.ID, YearOfStudy: 2, CurrentGrades: "95",
			AdvisorID: smith.ID,
		}
		if _, err := tx.InsertStudent(ctx, &dave); err != nil {
			return err
		}
		eve := schema.Student{
			Name: "Eve Laurent", DateOfBirth: dob, Contact: "eve@example.edu",
			ProgramID: ba.ID, YearOfStudy: 4, CurrentGrades: "70, 70",
			AdvisorID: curie.ID,
		}
		if _, err := tx.InsertStudent(ctx, &eve); err != nil {
			return err
		}

		for _, e := range []schema.CourseEnrollment{
			{StudentID: alice.ID, CourseID: cs101.ID, Semester: "Fall 2025"},
			{StudentID: bob.ID, CourseID: cs101.ID, Semester: "Spring 2025"},
			{StudentID: dave.ID, CourseID: cs201.ID, Semester: "Fall 2025"},
		} {
			e := e
			if err := tx.InsertEnrollment(ctx, &e); err != nil {
				return err
			}
		}

		for i, pi := range []int64{turing.ID, turing.ID, curie.ID, smith.ID} {
			p := schema.ResearchProject{
				Title:                   "Project " + string(rune('A'+i)),
				PrincipalInvestigatorID: pi,
			}
			if _, err := tx.InsertProject(ctx, &p); err != nil {
				return err
			}
		}

		for _, p := range []schema.Publication{
			{Title: "On Computable Numbers", Year: 2024, Type: "Journal", LecturerID: turing.ID},
			{Title: "Learning Machines", Year: 2025, Type: "Conference", LecturerID: turing.ID},
			{Title: "Radioactive Decay", Year: 2023, Type: "Journal", LecturerID: curie.ID},
		} {
			p := p
			if _, err := tx.InsertPublication(ctx, &p); err != nil {
				return err
			}
		}

		zoe := schema.NonAcademicStaff{Name: "Zoe Adler", JobTitle: "Lab Manager", DepartmentID: cs.ID, EmploymentType: "Full-time", Contact: "zoe@example.edu"}
		if _, err := tx.InsertStaff(ctx, &zoe); err != nil {
			return err
		}
		yan := schema.NonAcademicStaff{Name: "Yan Petrov", JobTitle: "Archivist", DepartmentID: hist.ID, EmploymentType: "Part-time", Contact: "yan@example.edu"}
		_, err := tx.InsertStaff(ctx, &yan)
		return err
	})
	require.NoError(t, err)

	return New(st, nil)
}

func TestStudentsInCourseByLecturer(t *testing.T) {
	c := setupCatalog(t)
	ctx := context.Background()

	t.Run("both filters empty", func(t *testing.T) {
		rows, err := c.StudentsInCourseByLecturer(ctx, "", "")
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("course and lecturer", func(t *testing.T) {
		rows, err := c.StudentsInCourseByLecturer(ctx, "CS101", "turing")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Alice Chen", rows[0].StudentName)
		assert.Equal(t, "Bob Ito", rows[1].StudentName)
		for _, r := range rows {
			assert.Equal(t, "CS101", r.CourseCode)
			assert.Equal(t, "Alan Turing", r.LecturerName)
		}
	})

	t.Run("course only fans out over instructors", func(t *testing.T) {
		rows, err := c.StudentsInCourseByLecturer(ctx, "CS101", "")
		require.NoError(t, err)
		// Two enrolled students times two instructors.
		require.Len(t, rows, 4)
		assert.Equal(t, "Alan Turing", rows[0].LecturerName)
		assert.Equal(t, "Marie Curie", rows[1].LecturerName)
	})

	t.Run("no match", func(t *testing.T) {
		rows, err := c.StudentsInCourseByLecturer(ctx, "XX999", "")
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestHighPerformingFinalYears(t *testing.T) {
	c := setupCatalog(t)

	rows, err := c.HighPerformingFinalYears(context.Background())
	require.NoError(t, err)

	// Alice: avg 85, included. Bob: avg 62.5, below threshold.
	// Carol: no parseable grades, skipped. Dave: not final year.
	// Eve: avg exactly 70, threshold is strict.
	require.Len(t, rows, 1)
	assert.Equal(t, "Alice Chen", rows[0].Name)
	assert.Equal(t, "BSc Computer Science", rows[0].Program)
	assert.InDelta(t, 85.0, rows[0].Average, 0.001)
	assert.Equal(t, 4, rows[0].Year)
}

func TestStudentsNotEnrolled(t *testing.T) {
	c := setupCatalog(t)

	rows, err := c.StudentsNotEnrolled(context.Background(), "Fall 2025")
	require.NoError(t, err)

	// Alice and Dave are enrolled in Fall 2025; Bob's enrollment is a
	// different semester so he counts as not enrolled.
	require.Len(t, rows, 3)
	assert.Equal(t, "Bob Ito", rows[0].Name)
	assert.Equal(t, "Carol Novak", rows[1].Name)
	assert.Equal(t, "Eve Laurent", rows[2].Name)
}

func TestAdvisorContacts(t *testing.T) {
	c := setupCatalog(t)

	rows, err := c.AdvisorContacts(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alice Chen", rows[0].StudentName)
	assert.Equal(t, "Alan Turing", rows[0].AdvisorName)
	assert.Equal(t, "Computer Science", rows[0].Department)
}

func TestLecturersByExpertise(t *testing.T) {
	c := setupCatalog(t)

	// Turing matches on expertise, Curie on research interests.
	rows, err := c.LecturersByExpertise(context.Background(), "Machine Learning")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Alan Turing", rows[0].Name)
	assert.Equal(t, "Marie Curie", rows[1].Name)
}

func TestCoursesByDepartment(t *testing.T) {
	c := setupCatalog(t)

	rows, err := c.CoursesByDepartment(context.Background(), "Computer Science")
	require.NoError(t, err)

	// CS101 has two instructors, CS201 one; HI101's instructor is in
	// History so it never appears.
	require.Len(t, rows, 3)
	assert.Equal(t, "CS101", rows[0].CourseCode)
	assert.Equal(t, "Alan Turing", rows[0].LecturerName)
	assert.Equal(t, "CS101", rows[1].CourseCode)
	assert.Equal(t, "Marie Curie", rows[1].LecturerName)
	assert.Equal(t, "CS201", rows[2].CourseCode)
}

func TestTopResearchSupervisors(t *testing.T) {
	c := setupCatalog(t)
	ctx := context.Background()

	t.Run("ranking and tiebreak", func(t *testing.T) {
		rows, err := c.TopResearchSupervisors(ctx, 10)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		// Turing leads two projects; Curie and Smith tie on one and
		// fall back to insertion order.
		assert.Equal(t, SupervisorRow{Name: "Alan Turing", Department: "Computer Science", ProjectCount: 2}, rows[0])
		assert.Equal(t, "Marie Curie", rows[1].Name)
		assert.Equal(t, "Herodotus Smith", rows[2].Name)
	})

	t.Run("limit truncates", func(t *testing.T) {
		rows, err := c.TopResearchSupervisors(ctx, 1)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Alan Turing", rows[0].Name)
	})

	t.Run("non-positive limit", func(t *testing.T) {
		rows, err := c.TopResearchSupervisors(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestPublicationsSince(t *testing.T) {
	c := setupCatalog(t)

	rows, err := c.PublicationsSince(context.Background(), 2024)
	require.NoError(t, err)

	// 2023 publication is excluded; newest first.
	require.Len(t, rows, 2)
	assert.Equal(t, "Learning Machines", rows[0].Title)
	assert.Equal(t, 2025, rows[0].Year)
	assert.Equal(t, "On Computable Numbers", rows[1].Title)
	assert.Equal(t, 2024, rows[1].Year)
}

func TestStudentsByAdvisor(t *testing.T) {
	c := setupCatalog(t)

	rows, err := c.StudentsByAdvisor(context.Background(), "Turing")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Alice Chen", rows[0].StudentName)
	assert.Equal(t, "Bob Ito", rows[1].StudentName)
}

func TestStaffByDepartment(t *testing.T) {
	c := setupCatalog(t)
	ctx := context.Background()

	rows, err := c.StaffByDepartment(ctx, "Computer")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Zoe Adler", rows[0].Name)
	assert.Equal(t, "Lab Manager", rows[0].JobTitle)

	rows, err = c.StaffByDepartment(ctx, "Chemistry")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestQueriesOnEmptyStore(t *testing.T) {
	st := store.New(nil)
	require.NoError(t, st.Open(":memory:"))
	t.Cleanup(func() { st.Close() })
	require.NoError(t, st.Migrate())

	c := New(st, nil)
	ctx := context.Background()

	rosters, err := c.StudentsInCourseByLecturer(ctx, "CS101", "")
	require.NoError(t, err)
	assert.Empty(t, rosters)

	top, err := c.HighPerformingFinalYears(ctx)
	require.NoError(t, err)
	assert.Empty(t, top)

	supervisors, err := c.TopResearchSupervisors(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, supervisors)
}
