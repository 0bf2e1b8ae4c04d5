package dto

type RegisterResponse struct {
	ID     uint   `json:"id"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	IsTeacher bool   `json:"isTeacher"`
}

// TestSummaryDTO is one entry of a dashboard test listing.
type TestSummaryDTO struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	CreatedBy uint   `json:"created_by"`
	MaxScore  int    `json:"max_score"`
	MaxTime   *int   `json:"max_time,omitempty"`
}

// DashboardResponse lists the tests visible to the principal: authored
// tests for teachers, every test for students.
type DashboardResponse struct {
	Email     string           `json:"email"`
	IsTeacher bool             `json:"isTeacher"`
	Tests     []TestSummaryDTO `json:"tests"`
}

type CreateTestResponse struct {
	Title     string `json:"title"`
	CreatedBy uint   `json:"createdBy"`
	Path      string `json:"path"`
}

type AnswerDTO struct {
	Answer  string `json:"answer"`
	IsRight bool   `json:"isRight"`
}

type QuestionDTO struct {
	Question string      `json:"question"`
	Answers  []AnswerDTO `json:"answers"`
	Img      string      `json:"img"`
}

type GetTestResponse struct {
	MaxTime   *int          `json:"maxTime"`
	Questions []QuestionDTO `json:"questions"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ReportResultDTO is one scored attempt inside the teacher report. The
// dotted keys are the wire format the client consumes.
type ReportResultDTO struct {
	ID        uint   `json:"id"`
	TestTitle string `json:"finished_test.title"`
	Score     int    `json:"score"`
	UserName  string `json:"user.name"`
}

// TeacherReportResponse groups results per authored test, one inner
// slice per test.
type TeacherReportResponse struct {
	Results [][]ReportResultDTO `json:"results"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
