package services

import "fmt"

const keywordExpansionPrompt = `You are a job search assistant. Your task is to extract skills and experiences from the attached RESUME (if one is provided) and combine them with the user's explicit inputs below.
User Input: Job Role: %s, Qualification: %s, Location: %s, Custom Keywords: %s
Analyze the resume for relevant technical skills, past job titles, and industry focus. Generate a comprehensive, comma-separated list of related keywords and roles for the final search query.
Return ONLY the comma-separated keywords and roles, no explanation.`

const searchAnalysisPrompt = `Based on the refined search query: %q, use the Google Search tool to find the top 5 most relevant job postings.
For each posting found, extract the 'title', the 'link', and the original search 'snippet'.
Then, for each posting, perform a secondary analysis to extract these three key points into a JSON sub-object named 'analysis':
1.  Type: (e.g., Full-time, Remote)
2.  Requirement: (The single most essential skill)
3.  USP: (Unique Selling Point of the job or company)
Return the final, structured list of jobs as a strict JSON array.`

const searchSystemInstruction = "You are a specialized job search tool that strictly outputs a JSON array containing job objects. Each job object must include a nested 'analysis' object with Type, Requirement, and USP fields."

func buildKeywordPrompt(jobRole, qualification, location, customKeywords string) string {
	return fmt.Sprintf(keywordExpansionPrompt, jobRole, qualification, location, customKeywords)
}

func buildSearchPrompt(searchQuery string) string {
	return fmt.Sprintf(searchAnalysisPrompt, searchQuery)
}
