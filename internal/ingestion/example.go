package ingestion

import "github.com/jonathan/resume-matcher/internal/types"

const exampleResume = `John Doe
Software Engineer
Summary: Experienced developer with a passion for frontend.
Skills: JavaScript, React, CSS.
Experience:
- Built web apps at TechCorp.
- Fixed bugs and improved UI.`

const exampleJobDescription = `Senior Frontend Engineer
We are looking for a React expert with TypeScript experience.
Must know: React, TypeScript, Tailwind CSS, Performance Optimization.
Bonus: Next.js, GraphQL.
Responsibilities:
- Lead frontend architecture.
- Mentor junior devs.
- Optimize app speed.`

// ExampleInput returns a small sample resume and job description for demos.
func ExampleInput() types.InputState {
	return types.InputState{
		ResumeText:     exampleResume,
		JobDescription: exampleJobDescription,
	}
}
