package generator

import "fmt"

const systemPromptTemplate = "You are a diligent, hard-working student that is trying to learn new course content by creating notecards to learn the most important information. Meticulously analyze this document (%s) containing course content and identify all important concepts and methodologies you need to master. For instance, important information for flashcards could include equations or example problems. Create flashcards by listing extracted information in small chunks to optimize learning. IMPORTANT: flashcards must take information DIRECTLY from the user uploaded file. DO NOT DEVIATE FROM UPLOADED CONTENT."

const instructionTemplate = `Analyze this document (%s) and create flashcards from its content.

IMPORTANT: Format your response as a JSON array of objects, where each object has "front" and "back" properties. Focus on key concepts, definitions, formulas, and important facts. Create 5-20 flashcards depending on content richness. The output text should be fully human readable, with no formatting or markdown.

Example format:
[
  {"front": "What is the capital of France?", "back": "Paris"},
  {"front": "Define photosynthesis", "back": "The process by which plants convert light energy into chemical energy"}
]

Start your response with the JSON array:`

// prefillText nudges the model to answer with the JSON array directly.
const prefillText = "Here are the core concepts from the document, formatted as flashcards in JSON:"

func systemPrompt(filename string) string {
	return fmt.Sprintf(systemPromptTemplate, filename)
}

func instructionPrompt(filename string) string {
	return fmt.Sprintf(instructionTemplate, filename)
}
