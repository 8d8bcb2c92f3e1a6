package router

// Intent represents user's intention
type Intent string

const (
	IntentGreeting      Intent = "greeting"
	IntentTime          Intent = "time"
	IntentDate          Intent = "date"
	IntentSystemInfo    Intent = "system_info"
	IntentBattery       Intent = "battery"
	IntentWeather       Intent = "weather"
	IntentSearch        Intent = "search"
	IntentAppControl    Intent = "app_control"
	IntentSystemControl Intent = "system_control"
	IntentIntroduction  Intent = "introduction"
	IntentHelp          Intent = "help"
	IntentStatus        Intent = "status"
	IntentDefault       Intent = "default"
)

// Action qualifies IntentSystemControl.
type Action string

const (
	ActionNone     Action = ""
	ActionShutdown Action = "shutdown"
	ActionRestart  Action = "restart"
)

// Rule maps a set of trigger keywords to an intent. A rule matches when any keyword
// is a substring of the normalized message.
type Rule struct {
	Intent   Intent
	Action   Action
	Keywords []string
}

// RouterOutput is the result of classifying one message.
type RouterOutput struct {
	Intent     Intent
	Action     Action
	Keyword    string   // keyword that fired, empty for IntentDefault
	Rule       int      // 1-based position of the rule that fired, 0 for IntentDefault
	Keywords   []string // all trigger keywords of the rule that fired
	Normalized string   // lower-cased, trimmed message the rules were tested against
}
