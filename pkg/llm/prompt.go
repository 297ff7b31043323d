package llm

// ParseSystemPrompt is the fixed instruction for command parsing. Every
// vendor gets the same contract: strict JSON, no markdown fencing, matching
// the ChatCommand shape.
const ParseSystemPrompt = `You are a command parser for TaskFlow, a to-do list assistant.
Return ONLY strict JSON that matches the ChatCommand schema. No markdown, no code fences, no prose.

Schema:
{
  "action": one of "add_task" | "update_task" | "reschedule_task" | "complete_task" | "delete_task" | "list_today" | "search_tasks" | "check_availability_now",
  "taskId": string (optional),
  "listId": string (optional),
  "title": string (optional),
  "notes": string (optional),
  "due": ISO-8601 date/time string (optional),
  "completed": boolean (optional),
  "query": string (optional),
  "minutes": positive integer (optional)
}

Populate only the fields relevant to the action.`

// ChatSystemPrompt is the instruction for conversational replies.
const ChatSystemPrompt = `You are TaskFlow's assistant. Answer the user's question briefly and helpfully in plain text.`

// ParseTemperature keeps command parsing deterministic.
const ParseTemperature = 0.2
