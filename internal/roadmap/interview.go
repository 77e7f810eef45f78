package roadmap

import (
	"fmt"

	"github.com/jonathan/career-engine/internal/types"
)

const technicalQuestions = 4

var behavioralQuestions = []types.InterviewQuestion{
	{
		Question:        "Tell me about a time you faced a difficult bug and how you solved it.",
		SuggestedAnswer: "Use STAR format: situation, your actions, and the measurable outcome.",
	},
	{
		Question:        "How do you prioritize tasks when deadlines are tight?",
		SuggestedAnswer: "Explain how you break tasks, estimate impact, and communicate tradeoffs early.",
	},
	{
		Question:        "Describe a project where you worked with a team.",
		SuggestedAnswer: "Highlight collaboration, communication, and how your work helped the team deliver.",
	},
}

// MockInterview returns practice questions for role: one technical question for each
// of its first four required skills plus a fixed behavioral set.
func MockInterview(role types.RoleDefinition) types.MockInterviewPack {
	core := role.RequiredSkills[:min(technicalQuestions, len(role.RequiredSkills))]

	technical := make([]types.InterviewQuestion, 0, len(core))
	for _, skill := range core {
		technical = append(technical, types.InterviewQuestion{
			Question:        fmt.Sprintf("How have you used %s in a real project?", skill),
			SuggestedAnswer: fmt.Sprintf("Explain one project where you used %s, your exact contribution, and the result you achieved.", skill),
		})
	}

	behavioral := make([]types.InterviewQuestion, len(behavioralQuestions))
	copy(behavioral, behavioralQuestions)

	return types.MockInterviewPack{
		RoleID:     role.ID,
		RoleName:   role.Name,
		Technical:  technical,
		Behavioral: behavioral,
	}
}
