package catalog

// Result row shapes, one fixed projection per query.

// CourseRosterRow is a student sitting in a course taught by a lecturer.
type CourseRosterRow struct {
	StudentName  string
	Contact      string
	CourseCode   string
	CourseName   string
	LecturerName string
}

// TopStudentRow is a final-year student with a computed grade average
// above the threshold.
type TopStudentRow struct {
	Name    string
	Program string
	Average float64
	Year    int
	Contact string
}

// UnenrolledStudentRow is a student with no enrollment in a semester.
type UnenrolledStudentRow struct {
	Name    string
	Contact string
	Year    int
	Program string
}

// AdvisorContactRow pairs a student with their advisor's details.
type AdvisorContactRow struct {
	StudentName string
	AdvisorName string
	Expertise   string
	Department  string
}

// LecturerExpertiseRow is a lecturer matched on expertise or research
// interests.
type LecturerExpertiseRow struct {
	Name              string
	Expertise         string
	ResearchInterests string
	Department        string
}

// DepartmentCourseRow is a course taught by a lecturer of a department.
type DepartmentCourseRow struct {
	CourseCode   string
	CourseName   string
	Credits      int
	LecturerName string
	Department   string
}

// SupervisorRow is a lecturer ranked by led research projects.
type SupervisorRow struct {
	Name         string
	Department   string
	ProjectCount int
}

// PublicationRow is a publication at or after a year threshold.
type PublicationRow struct {
	LecturerName string
	Department   string
	Title        string
	Year         int
	Type         string
}

// AdviseeRow is a student advised by a matched lecturer.
type AdviseeRow struct {
	StudentName string
	Year        int
	Program     string
	Contact     string
}

// StaffRow is a non-academic staff member of a department.
type StaffRow struct {
	Name           string
	JobTitle       string
	EmploymentType string
	Contact        string
	Department     string
}
