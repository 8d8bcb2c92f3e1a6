package usecase

// Log prefixes
const (
	LogPrefixSubmitCommand = "internal.assistant.usecase.SubmitCommand"
	LogPrefixGenerate      = "internal.assistant.usecase.Generate"
)

// Clock formats
const (
	TimeFormat = "03:04 PM"
	DateFormat = "Monday, January 02, 2006"
)

// Battery status values
const (
	BatteryCharging    = "charging"
	BatteryDischarging = "discharging"
)

const StatusOperational = "operational"

// Mock weather, no provider is called.
const (
	MockTemperature = 72
	MockCondition   = "Clear"
	MockHumidity    = 45
)

// Greeting phrases. %[1]s is the assistant name.
var greetingTemplates = []string{
	"Good day, Sir. How may I assist you?",
	"At your service, Sir. What do you need?",
	"Hello, Sir. %[1]s is online and ready.",
	"Greetings, Sir. All systems operational.",
	"Welcome back, Sir. How can I help?",
}

// Default phrases. %[1]s is the command.
var defaultTemplates = []string{
	"I'm processing your request for '%[1]s', Sir. This feature is being analyzed.",
	"Understood, Sir. I'm working on '%[1]s' for you.",
	"I acknowledge your command: '%[1]s'. Processing available actions.",
	"Certainly, Sir. I'm analyzing the best way to handle '%[1]s'.",
}

const (
	MsgTime             = "The current time is %s, Sir."
	MsgDate             = "Today is %s, Sir."
	MsgSystemInfo       = "System specifications: System: %s %s, Architecture: %s, CPU Cores: %d, CPU Usage: %.1f%%, Memory: %.2fGB/%.2fGB used"
	MsgSystemInfoFailed = "Unable to retrieve system specifications right now, Sir."
	MsgBattery          = "Battery is at %d%% and currently %s, Sir."
	MsgBatteryNoSensor  = "Battery information is not available on this system, Sir."
	MsgBatteryFailed    = "Unable to retrieve battery status, Sir."
	MsgWeather          = "Weather service integration would require an API key, Sir. Currently showing mock data: Clear skies, 72°F."
	MsgSearch           = "I would search for '%s' for you, Sir. Web search integration is available."
	MsgAppControl       = "Opening %s, Sir. Note: Application control requires appropriate system permissions."
	MsgSystemControl    = "System %s command received, Sir. This action is simulated for safety."
	MsgIntroduction     = "I am %s, your %s. Version %s. I am here to assist you with various tasks, control applications, provide information, and manage your digital environment."
	MsgStatus           = "All systems operational, Sir. %s is running at optimal capacity."
	MsgHelp             = `I can assist you with:
- Time and date information
- System specifications and status
- Battery status
- Weather information
- Web searches
- Application control
- System operations

Simply speak or type your command, Sir.`
)
