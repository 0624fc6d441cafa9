package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validStudent() Student {
	return Student{
		Name:        "Ada Lovelace",
		DateOfBirth: time.Date(2004, 3, 14, 0, 0, 0, 0, time.UTC),
		ProgramID:   1,
		YearOfStudy: 2,
		AdvisorID:   1,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		entity  interface{ Validate() error }
		wantErr bool
	}{
		{"valid department", Department{Name: "Physics", Faculty: "Science"}, false},
		{"department missing faculty", Department{Name: "Physics"}, true},
		{"valid program", Program{Name: "BSc Physics", DegreeAwarded: "BSc"}, false},
		{"program missing degree", Program{Name: "BSc Physics"}, true},
		{"valid committee", Committee{Name: "Ethics"}, false},
		{"committee missing name", Committee{}, true},
		{"valid course", Course{Code: "CS101", Name: "Intro", Credits: 3, DepartmentID: 1}, false},
		{"course missing code", Course{Name: "Intro", Credits: 3, DepartmentID: 1}, true},
		{"course zero credits", Course{Code: "CS101", Name: "Intro", DepartmentID: 1}, true},
		{"course dangling department", Course{Code: "CS101", Name: "Intro", Credits: 3}, true},
		{"valid lecturer", Lecturer{Name: "Grace Hopper", DepartmentID: 1}, false},
		{"lecturer no department", Lecturer{Name: "Grace Hopper"}, true},
		{"valid student", validStudent(), false},
		{"student year out of range", func() Student { s := validStudent(); s.YearOfStudy = 9; return s }(), true},
		{"student no advisor", func() Student { s := validStudent(); s.AdvisorID = 0; return s }(), true},
		{"student zero dob", func() Student { s := validStudent(); s.DateOfBirth = time.Time{}; return s }(), true},
		{"valid enrollment", CourseEnrollment{StudentID: 1, CourseID: 2, Semester: "Fall 2025"}, false},
		{"enrollment missing semester", CourseEnrollment{StudentID: 1, CourseID: 2}, true},
		{"valid instructor", CourseInstructor{CourseID: 1, LecturerID: 2}, false},
		{"instructor missing lecturer", CourseInstructor{CourseID: 1}, true},
		{"valid project", ResearchProject{Title: "Qubits", PrincipalInvestigatorID: 1}, false},
		{"project missing PI", ResearchProject{Title: "Qubits"}, true},
		{"valid team member", ResearchTeamMember{ProjectID: 1, LecturerID: 1}, false},
		{"team member missing project", ResearchTeamMember{LecturerID: 1}, true},
		{"valid publication", Publication{Title: "Paper", LecturerID: 1}, false},
		{"publication missing lecturer", Publication{Title: "Paper"}, true},
		{"valid organization", StudentOrganization{Name: "Chess Club", StudentID: 1}, false},
		{"organization missing student", StudentOrganization{Name: "Chess Club"}, true},
		{"valid committee member", CommitteeMember{CommitteeID: 1, LecturerID: 1}, false},
		{"committee member missing committee", CommitteeMember{LecturerID: 1}, true},
		{"valid staff", NonAcademicStaff{Name: "Sam", DepartmentID: 1}, false},
		{"staff missing name", NonAcademicStaff{DepartmentID: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entity.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
