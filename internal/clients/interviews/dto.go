package interviews

// APIInterview is the server's representation of an interview record.
type APIInterview struct {
	ID              int             `json:"id"`
	JobTitle        string          `json:"jobTitle"`
	Interviewer     *string         `json:"interviewer"`
	Company         APICompany      `json:"company"`
	ClientCompany   *string         `json:"clientCompany"`
	Stage           *APIStage       `json:"stage"`
	StageMethod     *APIStageMethod `json:"stageMethod"`
	ApplicationDate string          `json:"applicationDate"`
	Date            *string         `json:"date"`
	Deadline        *string         `json:"deadline"`
	Outcome         *string         `json:"outcome"`
	Notes           *string         `json:"notes"`
	Metadata        *APIMetadata    `json:"metadata"`
	Link            *string         `json:"link"`
}

type APICompany struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type APIStage struct {
	ID    int    `json:"id"`
	Stage string `json:"stage"`
}

type APIStageMethod struct {
	ID     int    `json:"id"`
	Method string `json:"method"`
}

type APIMetadata struct {
	JobListing *string `json:"jobListing"`
	Location   *string `json:"location"`
}

// CreateInterviewRequest creates a new interview on the server. Stage
// travels as its display label.
type CreateInterviewRequest struct {
	Stage          string  `json:"stage" validate:"required"`
	CompanyName    string  `json:"companyName" validate:"required"`
	ClientCompany  *string `json:"clientCompany,omitempty"`
	JobTitle       string  `json:"jobTitle" validate:"required"`
	JobPostingLink *string `json:"jobPostingLink,omitempty"`
	Date           *string `json:"date,omitempty"`
	Deadline       *string `json:"deadline,omitempty"`
	Interviewer    *string `json:"interviewer,omitempty"`
	LocationType   *string `json:"locationType,omitempty"`
	InterviewLink  *string `json:"interviewLink,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// UpdateInterviewRequest is a partial update; nil fields are left
// untouched server-side.
type UpdateInterviewRequest struct {
	Outcome     *string `json:"outcome,omitempty"`
	Stage       *string `json:"stage,omitempty"`
	Date        *string `json:"date,omitempty"`
	Deadline    *string `json:"deadline,omitempty"`
	Interviewer *string `json:"interviewer,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	Link        *string `json:"link,omitempty"`
}

type errorResponse struct {
	Message *string `json:"message"`
}
