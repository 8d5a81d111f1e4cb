package taskextract

import (
	"regexp"
	"strings"
)

// taskKeywords mark a sentence as task-worthy when found anywhere in it.
var taskKeywords = []string{
	"meeting", "call", "appointment", "presentation", "review", "submit", "complete",
	"finish", "send", "email", "follow up", "prepare", "plan", "schedule", "book",
	"buy", "purchase", "order", "contact", "visit", "attend", "join", "deliver",
	"create", "write", "draft", "design", "develop", "test", "fix", "update",
}

var actionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bi\s+(need to|have to|must|will|should|plan to)\s+([^.!?]+)`),
	regexp.MustCompile(`(?i)\bi['’]m\s+(going to|planning to|scheduling)\s+([^.!?]+)`),
	regexp.MustCompile(`(?i)(meeting|call|appointment|presentation)\s+([^.!?]+)`),
	regexp.MustCompile(`(?i)(review|complete|finish|submit|send)\s+([^.!?]+)`),
}

type priorityCues struct {
	level    Priority
	keywords []string
}

// priorityTable is checked top to bottom; the first level with a hit wins.
var priorityTable = []priorityCues{
	{level: PriorityHigh, keywords: []string{"urgent", "asap", "immediately", "critical", "important", "deadline", "due"}},
	{level: PriorityMedium, keywords: []string{"soon", "priority", "should", "need to", "must"}},
	{level: PriorityLow, keywords: []string{"when possible", "eventually", "someday", "maybe", "consider"}},
}

func isTaskWorthy(sentence string) bool {
	lower := strings.ToLower(sentence)
	for _, keyword := range taskKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	for _, re := range actionPatterns {
		if re.MatchString(sentence) {
			return true
		}
	}
	return false
}

func determinePriority(sentence string) Priority {
	lower := strings.ToLower(sentence)
	for _, cues := range priorityTable {
		for _, keyword := range cues.keywords {
			if strings.Contains(lower, keyword) {
				return cues.level
			}
		}
	}
	return PriorityMedium
}
