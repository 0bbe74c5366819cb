package llm

import "strings"

const questionPromptTemplate = `You are a professional assistant specialized in generating English questions for learners. Your task is to create questions based on the provided information.

## Question Type:
{question_type_description}

## The question content may belong to the following topics:
{topic}

## Requirements:
- Generate questions that align with the description above.
- Format the output according to the instructions below.

## Output Format:
{format_instructions}

Please return only the result without any explanations.
`

// BuildQuestionPrompt renders the shared question-generation template with a
// task description, the topic and the JSON-shape instructions for the target
// schema.
func BuildQuestionPrompt(taskDescription, topic, formatInstructions string) string {
	r := strings.NewReplacer(
		"{question_type_description}", taskDescription,
		"{topic}", topic,
		"{format_instructions}", formatInstructions,
	)
	return r.Replace(questionPromptTemplate)
}
