package agent

import "fmt"

const (
	responderSystemPrompt = `You are an HR data assistant. You are given the cleaned
employee table in CSV form and a question about it. Answer using only the data
provided; do not invent employees or values.
If the user asks for a list, report or table, YOU MUST return the final answer as a
Markdown Table.
Do not just list names in a sentence.
Format:
| Column 1 | Column 2 | ... |
|---|---|---|
| Val 1 | Val 2 | ... |

Ensure you include all relevant columns requested.`

	auditorSystemPrompt = `You are an independent auditor. You are given a question
about an HR employee dataset and the answer another assistant produced. Judge
whether the answer is plausible, internally consistent and responsive to the
question.
Reply with exactly one line:
- CORRECT
- FLAGGED: <one short reason>
No other output.`
)

func buildResponderPrompt(question, snapshot string) string {
	return fmt.Sprintf("Employee table (CSV):\n%s\n\nQuestion: %s", snapshot, question)
}

func buildAuditorPrompt(question, answer string) string {
	return fmt.Sprintf("Question: %s\n\nAnswer under audit:\n%s", question, answer)
}
