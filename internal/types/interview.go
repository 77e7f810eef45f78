package types

// InterviewQuestion is a practice question with guidance on how to answer it.
type InterviewQuestion struct {
	Question        string `json:"question"`
	SuggestedAnswer string `json:"suggestedAnswer"`
}

// MockInterviewPack groups the practice questions generated for a role.
type MockInterviewPack struct {
	RoleID     string              `json:"roleId"`
	RoleName   string              `json:"roleName"`
	Technical  []InterviewQuestion `json:"technical"`
	Behavioral []InterviewQuestion `json:"behavioral"`
}
