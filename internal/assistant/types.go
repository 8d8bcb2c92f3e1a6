package assistant

import (
	"time"

	"jarvis-assistant/internal/router"
)

// --- Response Domain Model ---

// Response is what the assistant answers to one command.
// Data is nil, the formatted string for time and date, or one of the *Data payload types below.
type Response struct {
	Text   string
	Intent router.Intent
	Data   any
}

// --- Payloads ---

type SystemInfoData struct {
	System      string  `json:"system"`
	Release     string  `json:"release"`
	Machine     string  `json:"machine"`
	CPUCount    int     `json:"cpu_count"`
	CPUPercent  float64 `json:"cpu_percent"`
	MemoryTotal float64 `json:"memory_total"`
	MemoryUsed  float64 `json:"memory_used"`
}

type BatteryData struct {
	Percent int    `json:"percent"`
	Status  string `json:"status"`
}

type WeatherData struct {
	Temperature int    `json:"temperature"`
	Condition   string `json:"condition"`
	Humidity    int    `json:"humidity"`
}

type SearchData struct {
	Query string `json:"query"`
}

type AppControlData struct {
	App string `json:"app"`
}

type SystemControlData struct {
	Action string `json:"action"`
}

type StatusData struct {
	Version string `json:"version"`
	Active  bool   `json:"active"`
	Status  string `json:"status"`
}

type DefaultData struct {
	Command string `json:"command"`
}

// --- UseCase Inputs ---

type SubmitCommandInput struct {
	Command string
}

type ClassifyInput struct {
	Command string
}

// --- UseCase Outputs ---

type ClassifyOutput struct {
	Intent  router.Intent
	Action  router.Action
	Keyword string
	Rule    int
}

type StatusOutput struct {
	Name      string
	Version   string
	Active    bool
	Timestamp time.Time
}
