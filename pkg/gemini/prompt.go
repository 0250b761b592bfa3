package gemini

// IntakePrompt is the fixed instruction sent ahead of the user's text when
// converting it into a single task record.
const IntakePrompt = `Convert this user text into JSON with keys:
title, description, due_date, duration_minutes, tags, priority_hint.
Return only JSON.`

// BuildIntakePrompt builds the full prompt for converting userText into a task.
func BuildIntakePrompt(userText string) string {
	return "\n" + IntakePrompt + "\n\nUser text: " + userText + "\n"
}
