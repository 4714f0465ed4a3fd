package services

import (
	"fmt"
	"strings"
)

const quizSystemPrompt = `You are an expert assessment creator. Your role is to:
1. Create fair, diagnostic questions that accurately gauge student knowledge
2. Ensure questions are well-structured and unambiguous
3. Cover fundamental concepts essential for understanding the topic
4. Vary difficulty from basic recall to advanced application
5. Always output valid, parseable JSON only - no markdown or extra text`

const tutorSystemPrompt = `You are a helpful tutor. Your role is to:
1. Explain complex concepts in simple, easy-to-understand terms
2. Use analogies and real-world examples when helpful
3. Break down difficult topics into smaller, manageable parts
4. Be encouraging and supportive
5. Adapt your explanation style to the student's level
Keep responses concise but comprehensive.`

func quizPrompt(topic string) string {
	return fmt.Sprintf(`Create a diagnostic assessment for the topic: %q.

Generate exactly 5 multiple-choice questions that will help identify the learner's current knowledge level and weaknesses.

Requirements:
- Questions should range from basic to advanced
- Each question must have exactly 4 options
- Include diverse difficulty levels to accurately assess understanding
- Cover different subtopics within %s

Return a JSON object with this EXACT structure:
{
  "questions": [
    {
      "question": "Question text here?",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correctAnswer": "The exact text of the correct option"
    }
  ]
}

IMPORTANT: Return ONLY valid JSON, no markdown or additional text.`, topic, topic)
}

type wrongAnswer struct {
	Question      string
	UserAnswer    string
	CorrectAnswer string
}

func analysisPrompt(topic string, score int, wrong []wrongAnswer) string {
	var b strings.Builder
	for i, wa := range wrong {
		fmt.Fprintf(&b, "%d. Q: %s\n   User answered: %s\n   Correct answer: %s\n\n",
			i+1, wa.Question, wa.UserAnswer, wa.CorrectAnswer)
	}

	return fmt.Sprintf(`Analyze these quiz results for the topic %q:

Score: %d%%
Wrong Answers:
%s
Provide:
1. A brief analysis of what concepts the learner struggles with
2. List 2-4 specific weakness areas/subtopics they need to focus on

Return JSON:
{
  "analysis": "Brief analysis paragraph",
  "weaknesses": ["weakness 1", "weakness 2", "weakness 3"]
}`, topic, score, b.String())
}

func syllabusPrompt(topic string, score int, weaknesses []string, wrongCount, total int) string {
	joined := strings.Join(weaknesses, ", ")
	if joined == "" {
		joined = "none identified"
	}

	return fmt.Sprintf(`Generate a personalized learning syllabus for %q.

Assessment Results:
- Score: %d%%
- Identified Weaknesses: %s
- Wrong answers: %d out of %d

CRITICAL REQUIREMENT:
Create exactly 6 learning modules. The first 2 modules MUST specifically target and address the identified weaknesses: %s.

Modules 3-6 should build upon this foundation and cover the broader topic comprehensively.

Return STRICT JSON with this structure:
{
  "modules": [
    {
      "title": "Module title",
      "description": "What this module covers (2-3 sentences)"
    }
  ]
}

Ensure modules 1 and 2 explicitly address: %s.`, topic, score, joined, wrongCount, total, joined, joined)
}

func contentPrompt(topic, title, description string, weaknesses []string, level string) string {
	return fmt.Sprintf(`Create comprehensive learning content for this module:

Course Topic: %s
Module Title: %s
Module Description: %s
Student's Weaknesses: %s
Student Level: %s

Generate detailed learning content that includes:
1. Introduction to the concept
2. Key concepts and definitions
3. Detailed explanations with examples
4. Practical applications
5. Common pitfalls to avoid
6. Summary of key takeaways

Format the content in clear sections with headers. Use markdown formatting.
Make it engaging and easy to understand for a %s learner.

Content should be 400-600 words.`, topic, title, description, strings.Join(weaknesses, ", "), level, level)
}

func tutorPrompt(topic, title, description string, weaknesses []string, question string) string {
	return fmt.Sprintf(`You are an AI tutor helping a student learn about %q.

Current Module: %s
Module Description: %s
Student's Known Weaknesses: %s

Student Question: %s

Provide a clear, educational response that:
1. Directly answers their question
2. Relates to the module content
3. Uses simple language and examples
4. Encourages deeper understanding

Keep your response concise (3-4 paragraphs maximum).`, topic, title, description, strings.Join(weaknesses, ", "), question)
}
