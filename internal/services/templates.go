package services

import "github.com/hirelogic/hirelogic/internal/prompt"

// Prompt templates for the three generation flows. Placeholders are bound by
// the prompt executor; output shapes are validated against the declared
// specs before a result is returned to any caller.

var questionnaireTemplate = prompt.Template{
	ID: "generate-custom-questionnaire",
	Text: `You are an expert recruiter. Generate an interview questionnaire based on the following job description. The questionnaire should be in markdown format.

Job Description: {{jobDescription}}`,
	Inputs: []prompt.FieldSpec{
		{Name: "jobDescription", Kind: prompt.KindString},
	},
	Outputs: []prompt.FieldSpec{
		{Name: "questionnaire", Kind: prompt.KindString, Description: "the generated interview questionnaire in markdown format"},
	},
}

var interviewQuestionsTemplate = prompt.Template{
	ID: "generate-interview-questions",
	Text: `You are an expert recruiter. Generate a list of 5 to 7 insightful interview questions based on the candidate's resume and the job role they are applying for. The questions should be designed to assess their skills, experience, and suitability for the role.

Job Role: {{role}}

Resume:
{{resume}}`,
	Inputs: []prompt.FieldSpec{
		{Name: "resume", Kind: prompt.KindString},
		{Name: "role", Kind: prompt.KindString},
	},
	Outputs: []prompt.FieldSpec{
		{Name: "questions", Kind: prompt.KindStringList, Description: "an array of 5-7 interview questions"},
	},
}

var summarizeResponseTemplate = prompt.Template{
	ID:   "summarize-candidate-response",
	Text: `Summarize the following candidate response: {{candidateResponse}}`,
	Inputs: []prompt.FieldSpec{
		{Name: "candidateResponse", Kind: prompt.KindString},
	},
	Outputs: []prompt.FieldSpec{
		{Name: "summary", Kind: prompt.KindString, Description: "the summary of the candidate response"},
	},
}
