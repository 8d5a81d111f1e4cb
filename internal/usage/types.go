package usage

// Usage is one user's consumption for one calendar day.
type Usage struct {
	Date           string `json:"date"` // 2006-01-02
	Tasks          int    `json:"tasks"`
	Transcriptions int    `json:"transcriptions"`
}

// Delta is an increment applied by Record.
type Delta struct {
	Tasks          int
	Transcriptions int
}

// Limits are daily allowances. Unlimited overrides the counts.
type Limits struct {
	TasksPerDay          int  `json:"tasks_per_day"`
	TranscriptionsPerDay int  `json:"transcriptions_per_day"`
	RetentionDays        int  `json:"retention_days"`
	Unlimited            bool `json:"unlimited"`
}

// RemainingTasks returns how many more tasks fit into today, or -1 when unlimited.
func (l Limits) RemainingTasks(u Usage) int {
	return remaining(l.Unlimited, l.TasksPerDay, u.Tasks)
}

// RemainingTranscriptions returns how many more transcriptions fit into today, or -1 when unlimited.
func (l Limits) RemainingTranscriptions(u Usage) int {
	return remaining(l.Unlimited, l.TranscriptionsPerDay, u.Transcriptions)
}

func remaining(unlimited bool, limit, used int) int {
	if unlimited || limit == 0 {
		return Unlimited
	}
	return max(0, limit-used)
}

// Unlimited is the remaining count reported when no limit applies.
const Unlimited = -1

// Config configures the in-memory tracker.
type Config struct {
	TasksPerDay          int // 0 disables the limit
	TranscriptionsPerDay int // 0 disables the limit
	RetentionDays        int
	PremiumUsers         []string
	MaxUsers             int // counters kept at most; oldest are evicted first
}
