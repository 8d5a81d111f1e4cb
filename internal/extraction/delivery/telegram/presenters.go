package telegram

import (
	"fmt"
	"strings"

	"voice-task-extractor/internal/extraction"
	"voice-task-extractor/internal/usage"
	"voice-task-extractor/pkg/datemath"
	"voice-task-extractor/pkg/taskextract"
)

const (
	startMessage = "Welcome! Send me the transcription of a voice note and I will turn it into a to-do list.\n\n" +
		"Example: \"I need to call the dentist tomorrow. Submit the report by 15/03/2025, it's urgent.\""
	helpMessage = "How it works:\n" +
		"- Every sentence that sounds like a task becomes a task.\n" +
		"- Dates such as tomorrow, next week, in 3 days, on Friday, 15/03/2025 or 1 May 2025 set the due date. Without one the task is due tomorrow.\n" +
		"- Words like urgent or ASAP raise the priority, maybe or eventually lower it.\n\n" +
		"Commands: /usage shows what is left of today's allowance."
	voiceHint = "I can't listen to voice notes yet. Please send the transcription as text."
)

func formatExtraction(out extraction.ExtractOutput) string {
	var b strings.Builder

	switch {
	case out.TaskLimitReached:
		b.WriteString("You have reached today's task limit, no new tasks were added.")
	case len(out.Tasks) == 0 && out.Duplicates > 0:
		b.WriteString("Every task in that message was already on your list.")
	case len(out.Tasks) == 0:
		b.WriteString("I couldn't find any tasks in that message. Try phrasing it like \"I need to ...\".")
	default:
		fmt.Fprintf(&b, "Added %d task(s):\n", len(out.Tasks))
		for i, t := range out.Tasks {
			fmt.Fprintf(&b, "%d. %s%s (due %s)\n", i+1, priorityMark(t.Priority), t.Text, t.Date.Format(datemath.DayKeyLayout))
		}
		if out.Truncated {
			b.WriteString("\nSome tasks were left out because today's task limit was reached.")
		}
	}

	if remaining := out.Usage.RemainingTranscriptions; remaining != usage.Unlimited {
		fmt.Fprintf(&b, "\nTranscriptions left today: %d", remaining)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatUsage(out extraction.UsageOutput) string {
	if out.Limits.Unlimited {
		return fmt.Sprintf("Premium account: no daily limits.\nToday: %d task(s), %d transcription(s).",
			out.Usage.Tasks, out.Usage.Transcriptions)
	}
	return fmt.Sprintf("Today (%s):\nTasks: %d used, %s left\nTranscriptions: %d used, %s left",
		out.Usage.Date,
		out.Usage.Tasks, remainingText(out.RemainingTasks),
		out.Usage.Transcriptions, remainingText(out.RemainingTranscriptions))
}

func remainingText(n int) string {
	if n == usage.Unlimited {
		return "unlimited"
	}
	return fmt.Sprint(n)
}

func priorityMark(p taskextract.Priority) string {
	switch p {
	case taskextract.PriorityHigh:
		return "[!] "
	case taskextract.PriorityLow:
		return "[low] "
	default:
		return ""
	}
}
