package qa

import "fmt"

const promptTemplate = `You are a helpful university-level teaching assistant. Answer the user's
question clearly and concisely. Cite key facts when appropriate and
mention assumptions if the question lacks detail.

Original question: %s
Normalized question: %s

Answer:`

// BuildPrompt renders the instruction template around a processed question.
func BuildPrompt(p ProcessedQuestion) string {
	return fmt.Sprintf(promptTemplate, p.Original, p.Text)
}
