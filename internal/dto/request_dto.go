package dto

type RegisterRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	IsTeacher bool   `json:"isTeacher"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateTestRequest carries the uploaded definition as base64-encoded
// raw bytes, the way the client transports the file.
type CreateTestRequest struct {
	Title   string `json:"title" binding:"required"`
	File    string `json:"file" binding:"required"`
	MaxTime *int   `json:"maxTime"`
}

type SubmitResultRequest struct {
	TestID uint `json:"testId" binding:"required"`
	Score  *int `json:"score" binding:"required"`
}
