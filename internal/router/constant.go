package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// DefaultRules is the priority-ordered rule table. Order is part of the contract:
// a message matching several rules gets the earliest one.
var DefaultRules = []Rule{
	{Intent: IntentGreeting, Keywords: []string{"hello", "hi", "hey", "greetings"}},
	{Intent: IntentTime, Keywords: []string{"time", "clock"}},
	{Intent: IntentDate, Keywords: []string{"date", "today", "day"}},
	{Intent: IntentSystemInfo, Keywords: []string{"system", "specs"}},
	{Intent: IntentBattery, Keywords: []string{"battery"}},
	{Intent: IntentWeather, Keywords: []string{"weather"}},
	{Intent: IntentSearch, Keywords: []string{"search", "google"}},
	{Intent: IntentAppControl, Keywords: []string{"open", "launch"}},
	{Intent: IntentSystemControl, Action: ActionShutdown, Keywords: []string{"shutdown"}},
	{Intent: IntentSystemControl, Action: ActionRestart, Keywords: []string{"restart", "reboot"}},
	{Intent: IntentIntroduction, Keywords: []string{"who are you", "what are you"}},
	{Intent: IntentHelp, Keywords: []string{"help", "what can you do"}},
	{Intent: IntentStatus, Keywords: []string{"status", "operational"}},
}
