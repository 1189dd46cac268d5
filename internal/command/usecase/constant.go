package usecase

const (
	defaultTemperature     = 0.3
	defaultMaxOutputTokens = 300
)

// systemPrompt describes the intent schema to the model. Relative times are
// left as spoken; they are resolved locally against the configured timezone.
const systemPrompt = `You turn voice commands for a to-do app into JSON. Reply with one JSON object and nothing else.

Intents: create, read, update, delete, list, filter

Fields (omit any that were not mentioned):
{
  "intent": "create" | "read" | "update" | "delete" | "list" | "filter",
  "taskTitle": "title for a new task, or the new title on update",
  "taskIndex": 1-based position when the user says "first task", "4th task" and so on,
  "category": "category if mentioned",
  "priority": "low" | "medium" | "high",
  "scheduledTime": "the time phrase exactly as spoken (tomorrow, next friday, 3rd week) or YYYY-MM-DD",
  "searchQuery": "keywords identifying an existing task"
}

Examples:
"Make a task to buy milk" -> {"intent":"create","taskTitle":"Buy milk"}
"Show admin tasks" -> {"intent":"filter","category":"administrative"}
"Delete the 4th task" -> {"intent":"delete","taskIndex":4}
"Push the task about compliance to tomorrow" -> {"intent":"update","searchQuery":"compliance","scheduledTime":"tomorrow"}
"Rename the first task to call the bank" -> {"intent":"update","taskIndex":1,"taskTitle":"Call the bank"}
"What's high priority?" -> {"intent":"list","priority":"high"}

For "task of X" or "task about X", put X in searchQuery.`

// userPromptTemplate wraps the transcript. %s is the transcript.
const userPromptTemplate = `User command: %q

Return the parsed command as JSON:`

// Caller-facing messages.
const (
	msgTranscriptRequired  = "Transcript is required"
	msgTitleRequired       = "Task title is required for create command"
	msgManualTitleRequired = "Task title is required"
	msgDeleteRefRequired   = "Task identifier (index or search query) is required for delete command"
	msgUnknownIntent       = "Unknown intent: %s"

	msgCreated         = "Created task: %s"
	msgUpdated         = "Updated task: %s"
	msgDeletedAtIndex  = "Deleted task at index %d"
	msgIndexNotFound   = "Task at index %d not found"
	msgDeletedTask     = "Deleted task: %s"
	msgNoMatches       = "No tasks found matching %q"
	msgFoundAll        = "Found %d tasks"
	msgFoundCategory   = "Found %d tasks in category %q"
	msgFoundPriority   = "Found %d tasks with %s priority"
	msgFoundQuery      = "Found %d tasks matching %q"
	msgNotFound        = "Task not found. Available tasks: %s"
	msgNotFoundMatches = "Task not found matching %q. Available tasks: %s"

	msgTruncated  = "The model response was truncated. Please try a shorter command."
	msgBlocked    = "The model stopped due to %s. Please rephrase your request."
	msgUnexpected = "The model finished with reason: %s"
)
