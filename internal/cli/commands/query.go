package commands

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/registrar/internal/catalog"
)

// NewQueryCommand creates the query command and its ten subcommands,
// one per catalog operation.
func NewQueryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run a catalog query",
		Long: `Run one of the fixed analytical queries against the store. Text
filters match case-insensitively as substrings; course codes and years
match exactly. Every query is read-only.`,
	}

	cmd.PersistentFlags().String("output", "table", "output format (table, json)")

	cmd.AddCommand(
		newRosterCommand(),
		newTopStudentsCommand(),
		newUnenrolledCommand(),
		newAdvisorCommand(),
		newExpertiseCommand(),
		newCoursesCommand(),
		newSupervisorsCommand(),
		newPublicationsCommand(),
		newAdviseesCommand(),
		newStaffCommand(),
	)

	return cmd
}

// runQuery opens the store, runs fn against a catalog, and renders the
// result in the selected output format.
func runQuery[T any](cmd *cobra.Command, headers []string, toRow func(T) []string, fn func(*catalog.Catalog) ([]T, error)) error {
	st, logger, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	results, err := fn(catalog.New(st, logger))
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("output")
	return renderQuery(cmd.OutOrStdout(), format, headers, toRow, results)
}

func renderQuery[T any](w io.Writer, format string, headers []string, toRow func(T) []string, results []T) error {
	if format == "json" {
		return renderJSON(w, results)
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, toRow(r))
	}
	renderTable(w, headers, rows)
	return nil
}

func newRosterCommand() *cobra.Command {
	var courseCode, lecturerName string

	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Students enrolled in a course taught by a lecturer",
		Long: `Find students enrolled in a course taught by a matching lecturer.
At least one of --course and --lecturer must be given; with both empty
the result is empty rather than the full join.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd,
				[]string{"Student", "Contact", "Code", "Course", "Lecturer"},
				func(r catalog.CourseRosterRow) []string {
					return []string{r.StudentName, r.Contact, r.CourseCode, r.CourseName, r.LecturerName}
				},
				func(c *catalog.Catalog) ([]catalog.CourseRosterRow, error) {
					return c.StudentsInCourseByLecturer(cmd.Context(), courseCode, lecturerName)
				})
		},
	}

	cmd.Flags().StringVar(&courseCode, "course", "", "exact course code")
	cmd.Flags().StringVar(&lecturerName, "lecturer", "", "lecturer name fragment")
	return cmd
}

func newTopStudentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "top-students",
		Short: "Final-year students with a grade average above 70",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd,
				[]string{"Student", "Program", "Average", "Year", "Contact"},
				func(r catalog.TopStudentRow) []string {
					return []string{r.Name, r.Program, strconv.FormatFloat(r.Average, 'f', 2, 64), strconv.Itoa(r.Year), r.Contact}
				},
				func(c *catalog.Catalog) ([]catalog.TopStudentRow, error) {
					return c.HighPerformingFinalYears(cmd.Context())
				})
		},
	}
}

func newUnenrolledCommand() *cobra.Command {
	var semester string

	cmd := &cobra.Command{
		Use:   "unenrolled",
		Short: "Students with no enrollment in a semester",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd,
				[]string{"Student", "Contact", "Year", "Program"},
				func(r catalog.UnenrolledStudentRow) []string {
					return []string{r.Name, r.Contact, strconv.Itoa(r.Year), r.Program}
				},
				func(c *catalog.Catalog) ([]catalog.UnenrolledStudentRow, error) {
					return c.StudentsNotEnrolled(cmd.Context(), semester)
				})
		},
	}

	cmd.Flags().StringVar(&semester, "semester", "", "semester, e.g. \"Fall 2025\"")
	_ = cmd.MarkFlagRequired("semester")
	return cmd
}

func newAdvisorCommand() *cobra.Command {
	var studentName string

	cmd := &cobra.Command{
		Use:   "advisor",
		Short: "Advisor contact details for matching students",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd,
				[]string{"Student", "Advisor", "Expertise", "Department"},
				func(r catalog.AdvisorContactRow) []string {
					return []string{r.StudentName, r.AdvisorName, r.Expertise, r.Department}
				},
				func(c *catalog.Catalog) ([]catalog.AdvisorContactRow, error) {
					return c.AdvisorContacts(cmd.Context(), studentName)
				})
		},
	}

	cmd.Flags().StringVar(&studentName, "student", "", "student name fragment")
	_ = cmd.MarkFlagRequired("student")
	return cmd
}

func newExpertiseCommand() *cobra.Command {
	var area string

	cmd := &cobra.Command{
		Use:   "expertise",
		Short: "Lecturers matching an expertise area",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd,
				[]string{"Lecturer", "Expertise", "Interests", "Department"},
				func(r catalog.LecturerExpertiseRow) []string {
					return []string{r.Name, r.Expertise, r.ResearchInterests, r.Department}
				},
				func(c *catalog.Catalog) ([]catalog.LecturerExpertiseRow, error) {
					return c.LecturersByExpertise(cmd.Context(), area)
				})
		},
	}

	cmd.Flags().StringVar(&area, "area", "", "expertise fragment")
	_ = cmd.MarkFlagRequired("area")
	return cmd
}

func newCoursesCommand() *cobra.Command {
	var department string

	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Courses taught by lecturers of a department",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd,
				[]string{"Code", "Course", "Credits", "Lecturer", "Department"},
				func(r catalog.DepartmentCourseRow) []string {
					return []string{r.CourseCode, r.CourseName, strconv.Itoa(r.Credits), r.LecturerName, r.Department}
				},
				func(c *catalog.Catalog) ([]catalog.DepartmentCourseRow, error) {
					return c.CoursesByDepartment(cmd.Context(), department)
				})
		},
	}

	cmd.Flags().StringVar(&department, "department", "", "department name fragment")
	_ = cmd.MarkFlagRequired("department")
	return cmd
}

func newSupervisorsCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "supervisors",
		Short: "Lecturers leading the most research projects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd,
				[]string{"Lecturer", "Department", "Projects"},
				func(r catalog.SupervisorRow) []string {
					return []string{r.Name, r.Department, strconv.Itoa(r.ProjectCount)}
				},
				func(c *catalog.Catalog) ([]catalog.SupervisorRow, error) {
					return c.TopResearchSupervisors(cmd.Context(), limit)
				})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of rows")
	return cmd
}

func newPublicationsCommand() *cobra.Command {
	var since int

	cmd := &cobra.Command{
		Use:   "publications",
		Short: "Publications from a year onward",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd,
				[]string{"Lecturer", "Department", "Title", "Year", "Type"},
				func(r catalog.PublicationRow) []string {
					return []string{r.LecturerName, r.Department, r.Title, strconv.Itoa(r.Year), r.Type}
				},
				func(c *catalog.Catalog) ([]catalog.PublicationRow, error) {
					return c.PublicationsSince(cmd.Context(), since)
				})
		},
	}

	cmd.Flags().IntVar(&since, "since", 2024, "year threshold (inclusive)")
	return cmd
}

func newAdviseesCommand() *cobra.Command {
	var lecturerName string

	cmd := &cobra.Command{
		Use:   "advisees",
		Short: "Students advised by a matching lecturer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd,
				[]string{"Student", "Year", "Program", "Contact"},
				func(r catalog.AdviseeRow) []string {
					return []string{r.StudentName, strconv.Itoa(r.Year), r.Program, r.Contact}
				},
				func(c *catalog.Catalog) ([]catalog.AdviseeRow, error) {
					return c.StudentsByAdvisor(cmd.Context(), lecturerName)
				})
		},
	}

	cmd.Flags().StringVar(&lecturerName, "lecturer", "", "lecturer name fragment")
	_ = cmd.MarkFlagRequired("lecturer")
	return cmd
}

func newStaffCommand() *cobra.Command {
	var department string

	cmd := &cobra.Command{
		Use:   "staff",
		Short: "Non-academic staff of a department",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd,
				[]string{"Name", "Job Title", "Employment", "Contact", "Department"},
				func(r catalog.StaffRow) []string {
					return []string{r.Name, r.JobTitle, r.EmploymentType, r.Contact, r.Department}
				},
				func(c *catalog.Catalog) ([]catalog.StaffRow, error) {
					return c.StaffByDepartment(cmd.Context(), department)
				})
		},
	}

	cmd.Flags().StringVar(&department, "department", "", "department name fragment")
	_ = cmd.MarkFlagRequired("department")
	return cmd
}
