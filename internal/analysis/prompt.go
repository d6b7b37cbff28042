package analysis

import "github.com/jonathan/resume-matcher/internal/prompts"

// BuildPrompt embeds the resume and job description verbatim in the analysis template.
func BuildPrompt(resumeText, jobDescription string) string {
	template := prompts.MustGet(prompts.AnalysisFile, "analyze-resume")
	return prompts.Format(template, map[string]string{
		"ResumeText":     resumeText,
		"JobDescription": jobDescription,
	})
}

// SystemInstruction returns the system-level guidance sent with every analysis.
func SystemInstruction() string {
	return prompts.MustGet(prompts.AnalysisFile, "system-instruction")
}
