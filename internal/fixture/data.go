package fixture

// Fixed vocabularies for generated rows. Department, program, and
// committee names intentionally read like a real institution's catalog.

var departmentNames = []string{
	"Computer Science", "Mathematics", "Physics", "Chemistry",
	"Biology", "Engineering", "Business", "Psychology",
	"History", "Literature",
}

var faculties = []string{"Science", "Engineering", "Arts", "Business"}

var programCatalog = []struct {
	Name     string
	Degree   string
	Duration string
}{
	{"Bachelor of Computer Science", "BSc", "4 years"},
	{"Master of Computer Science", "MSc", "2 years"},
	{"Bachelor of Engineering", "BEng", "4 years"},
	{"Master of Business Administration", "MBA", "2 years"},
	{"Bachelor of Science", "BSc", "3 years"},
	{"Doctor of Philosophy", "PhD", "4-6 years"},
	{"Bachelor of Arts", "BA", "3 years"},
	{"Master of Science", "MSc", "1-2 years"},
}

var committeeNames = []string{
	"Academic Standards Committee",
	"Research Ethics Committee",
	"Curriculum Development Committee",
	"Student Affairs Committee",
	"Faculty Hiring Committee",
}

var qualifications = []string{
	"PhD in Computer Science", "PhD in Mathematics",
	"PhD in Physics", "PhD in Engineering",
}

var expertiseAreas = []string{
	"Machine Learning", "Data Science", "Artificial Intelligence",
	"Software Engineering", "Database Systems", "Networks",
	"Quantum Computing", "Applied Mathematics",
}

var coursePrefixes = []string{"CS", "MATH", "PHYS", "CHEM", "BIO", "ENG"}

var courseNames = []string{
	"Introduction to Programming", "Data Structures",
	"Algorithms", "Database Systems", "Operating Systems",
	"Computer Networks", "Machine Learning", "Web Development",
	"Software Engineering", "Calculus I", "Calculus II",
	"Linear Algebra", "Discrete Mathematics",
}

var semesters = []string{"Fall 2024", "Spring 2025", "Fall 2025"}

var fundingSources = []string{"NSF Grant", "University Fund", "Industry Partnership"}

var publicationTypes = []string{"Journal", "Conference", "Book Chapter"}

var jobTitles = []string{
	"Administrative Assistant", "IT Support", "Lab Technician",
	"Librarian", "Student Advisor", "HR Manager",
}

var employmentTypes = []string{"Full-time", "Part-time"}

var organizationTopics = []string{
	"Robotics", "Chess", "Debate", "Drama", "Astronomy",
	"Photography", "Hiking", "Coding", "Music", "Film",
	"Esports", "Volunteering",
}

var organizationKinds = []string{"Society", "Club", "Association", "Network", "Guild"}

var organizationRoles = []string{"President", "Treasurer", "Secretary", "Member"}

var committeeRoles = []string{"Chair", "Secretary", "Member"}
