// Package schema defines the entity types of the academic records store
// and the invariant predicates every write path must uphold.
//
// Identifiers are int64 keys assigned by the store at insert time
// (auto-incrementing, never reused within a store's lifetime). Junction
// entities carry composite keys of two foreign references.
package schema

import (
	"fmt"
	"time"
)

// Department groups courses, lecturers and non-academic staff.
type Department struct {
	ID            int64
	Name          string
	Faculty       string
	ResearchAreas string
	CreatedAt     time.Time
}

// Program is a degree program students enroll in.
type Program struct {
	ID                 int64
	Name               string
	DegreeAwarded      string
	Duration           string
	CourseRequirements string
	EnrollmentDetails  string
	CreatedAt          time.Time
}

// Committee is a standing faculty committee.
type Committee struct {
	ID          int64
	Name        string
	Description string
	CreatedOn   time.Time
}

// Course is a taught course. Code is unique across all courses.
type Course struct {
	ID            int64
	Code          string
	Name          string
	Description   string
	DepartmentID  int64
	Level         string
	Credits       int
	Prerequisites string
	Schedule      string
	Material      string
	CreatedAt     time.Time
}

// Lecturer is an academic staff member.
type Lecturer struct {
	ID                int64
	Name              string
	DepartmentID      int64
	Qualifications    string
	Expertise         string
	CourseLoad        string
	ResearchInterests string
}

// NonAcademicStaff is an administrative or support staff member.
type NonAcademicStaff struct {
	ID               int64
	Name             string
	JobTitle         string
	DepartmentID     int64
	EmploymentType   string
	Contact          string
	Salary           float64
	EmergencyContact string
}

// Student is an enrolled student. CurrentGrades is a comma-delimited
// string of numeric tokens; malformed tokens are a read-time concern
// handled by the grade aggregator, not rejected at write time.
type Student struct {
	ID                  int64
	Name                string
	DateOfBirth         time.Time
	Contact             string
	ProgramID           int64
	YearOfStudy         int
	CurrentGrades       string
	DisciplinaryRecords string
	GraduationStatus    string
	AdvisorID           int64
	CreatedAt           time.Time
}

// ResearchProject is a research project led by a principal investigator.
type ResearchProject struct {
	ID                      int64
	Title                   string
	PrincipalInvestigatorID int64
	FundingSources          string
	Outcomes                string
}

// CourseEnrollment links a student to a course. The (StudentID,
// CourseID) pair is unique across all enrollments.
type CourseEnrollment struct {
	StudentID    int64
	CourseID     int64
	EnrolledOn   time.Time
	Semester     string
	AcademicYear string
	Status       string
}

// StudentOrganization is a student-run organization. Name is unique
// across all organizations.
type StudentOrganization struct {
	ID          int64
	Name        string
	Description string
	StudentID   int64
	JoinedOn    time.Time
	Role        string
	CreatedAt   time.Time
}

// CourseInstructor assigns a lecturer to a course. The (CourseID,
// LecturerID) pair is unique.
type CourseInstructor struct {
	CourseID   int64
	LecturerID int64
}

// CommitteeMember records a lecturer's membership on a committee for a
// date range.
type CommitteeMember struct {
	ID          int64
	CommitteeID int64
	LecturerID  int64
	Role        string
	StartDate   time.Time
	EndDate     time.Time
}

// ResearchTeamMember assigns a lecturer to a research project. The
// (ProjectID, LecturerID) pair is unique.
type ResearchTeamMember struct {
	ProjectID  int64
	LecturerID int64
}

// Publication is a publication authored by a lecturer, optionally tied
// to a research project (ProjectID zero means unattached).
type Publication struct {
	ID         int64
	Title      string
	Year       int
	Type       string
	LecturerID int64
	ProjectID  int64
}

// GraduationStatus values used by the fixture generator and accepted by
// Validate. Direct inserts may use other values; the set is advisory.
const (
	StatusActive    = "Active"
	StatusGraduated = "Graduated"
)

// EnrollmentStatus default for new enrollments.
const StatusEnrolled = "Enrolled"

func requireName(entity, name string) error {
	if name == "" {
		return fmt.Errorf("%s: name is required", entity)
	}
	return nil
}

func requireRef(entity, field string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%s: %s must reference an existing row", entity, field)
	}
	return nil
}

// Validate reports a violated invariant, or nil.
func (d Department) Validate() error {
	if err := requireName("department", d.Name); err != nil {
		return err
	}
	if d.Faculty == "" {
		return fmt.Errorf("department: faculty is required")
	}
	return nil
}

func (p Program) Validate() error {
	if err := requireName("program", p.Name); err != nil {
		return err
	}
	if p.DegreeAwarded == "" {
		return fmt.Errorf("program: degree awarded is required")
	}
	return nil
}

func (c Committee) Validate() error {
	return requireName("committee", c.Name)
}

func (c Course) Validate() error {
	if c.Code == "" {
		return fmt.Errorf("course: code is required")
	}
	if err := requireName("course", c.Name); err != nil {
		return err
	}
	if c.Credits <= 0 {
		return fmt.Errorf("course: credits must be positive")
	}
	return requireRef("course", "department", c.DepartmentID)
}

func (l Lecturer) Validate() error {
	if err := requireName("lecturer", l.Name); err != nil {
		return err
	}
	return requireRef("lecturer", "department", l.DepartmentID)
}

func (s NonAcademicStaff) Validate() error {
	if err := requireName("staff", s.Name); err != nil {
		return err
	}
	return requireRef("staff", "department", s.DepartmentID)
}

func (s Student) Validate() error {
	if err := requireName("student", s.Name); err != nil {
		return err
	}
	if s.DateOfBirth.IsZero() {
		return fmt.Errorf("student: date of birth is required")
	}
	if s.YearOfStudy < 1 || s.YearOfStudy > 6 {
		return fmt.Errorf("student: year of study %d out of range", s.YearOfStudy)
	}
	if err := requireRef("student", "program", s.ProgramID); err != nil {
		return err
	}
	return requireRef("student", "advisor", s.AdvisorID)
}

func (p ResearchProject) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("research project: title is required")
	}
	return requireRef("research project", "principal investigator", p.PrincipalInvestigatorID)
}

func (e CourseEnrollment) Validate() error {
	if err := requireRef("enrollment", "student", e.StudentID); err != nil {
		return err
	}
	if err := requireRef("enrollment", "course", e.CourseID); err != nil {
		return err
	}
	if e.Semester == "" {
		return fmt.Errorf("enrollment: semester is required")
	}
	return nil
}

func (o StudentOrganization) Validate() error {
	if err := requireName("organization", o.Name); err != nil {
		return err
	}
	return requireRef("organization", "student", o.StudentID)
}

func (ci CourseInstructor) Validate() error {
	if err := requireRef("instructor assignment", "course", ci.CourseID); err != nil {
		return err
	}
	return requireRef("instructor assignment", "lecturer", ci.LecturerID)
}

func (m CommitteeMember) Validate() error {
	if err := requireRef("committee member", "committee", m.CommitteeID); err != nil {
		return err
	}
	return requireRef("committee member", "lecturer", m.LecturerID)
}

func (m ResearchTeamMember) Validate() error {
	if err := requireRef("team member", "project", m.ProjectID); err != nil {
		return err
	}
	return requireRef("team member", "lecturer", m.LecturerID)
}

func (p Publication) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("publication: title is required")
	}
	return requireRef("publication", "lecturer", p.LecturerID)
}
