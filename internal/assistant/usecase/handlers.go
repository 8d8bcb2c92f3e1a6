package usecase

import (
	"context"
	"fmt"

	"jarvis-assistant/internal/assistant"
	"jarvis-assistant/internal/router"
	"jarvis-assistant/pkg/telemetry"
)

func (uc *implUseCase) greet() assistant.Response {
	return assistant.Response{
		Text:   uc.pick(uc.greetings),
		Intent: router.IntentGreeting,
	}
}

func (uc *implUseCase) currentTime() assistant.Response {
	now := uc.now().Format(TimeFormat)
	return assistant.Response{
		Text:   fmt.Sprintf(MsgTime, now),
		Intent: router.IntentTime,
		Data:   now,
	}
}

func (uc *implUseCase) currentDate() assistant.Response {
	today := uc.now().Format(DateFormat)
	return assistant.Response{
		Text:   fmt.Sprintf(MsgDate, today),
		Intent: router.IntentDate,
		Data:   today,
	}
}

func (uc *implUseCase) systemInfo(ctx context.Context) assistant.Response {
	snap, err := uc.telemetry.Host(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "%s: telemetry.Host: %v", LogPrefixGenerate, err)
		return assistant.Response{
			Text:   MsgSystemInfoFailed,
			Intent: router.IntentSystemInfo,
		}
	}

	return assistant.Response{
		Text: fmt.Sprintf(MsgSystemInfo,
			snap.System, snap.Release, snap.Machine, snap.CPUCount, snap.CPUPercent,
			snap.MemoryUsedGB, snap.MemoryTotalGB),
		Intent: router.IntentSystemInfo,
		Data: assistant.SystemInfoData{
			System:      snap.System,
			Release:     snap.Release,
			Machine:     snap.Machine,
			CPUCount:    snap.CPUCount,
			CPUPercent:  snap.CPUPercent,
			MemoryTotal: snap.MemoryTotalGB,
			MemoryUsed:  snap.MemoryUsedGB,
		},
	}
}

func (uc *implUseCase) batteryStatus(ctx context.Context) assistant.Response {
	reading := uc.telemetry.Battery(ctx)

	switch reading.Availability {
	case telemetry.BatteryAvailable:
		status := BatteryDischarging
		if reading.Charging {
			status = BatteryCharging
		}
		return assistant.Response{
			Text:   fmt.Sprintf(MsgBattery, reading.Percent, status),
			Intent: router.IntentBattery,
			Data:   assistant.BatteryData{Percent: reading.Percent, Status: status},
		}
	case telemetry.BatteryNoSensor:
		return assistant.Response{
			Text:   MsgBatteryNoSensor,
			Intent: router.IntentBattery,
		}
	default:
		uc.l.Warnf(ctx, "%s: telemetry.Battery: %v", LogPrefixGenerate, reading.Err)
		return assistant.Response{
			Text:   MsgBatteryFailed,
			Intent: router.IntentBattery,
		}
	}
}

func (uc *implUseCase) weather() assistant.Response {
	return assistant.Response{
		Text:   MsgWeather,
		Intent: router.IntentWeather,
		Data: assistant.WeatherData{
			Temperature: MockTemperature,
			Condition:   MockCondition,
			Humidity:    MockHumidity,
		},
	}
}

func (uc *implUseCase) webSearch(out router.RouterOutput) assistant.Response {
	query := stripKeywords(out.Normalized, out.Keywords)
	return assistant.Response{
		Text:   fmt.Sprintf(MsgSearch, query),
		Intent: router.IntentSearch,
		Data:   assistant.SearchData{Query: query},
	}
}

func (uc *implUseCase) openApplication(out router.RouterOutput) assistant.Response {
	app := stripKeywords(out.Normalized, out.Keywords)
	return assistant.Response{
		Text:   fmt.Sprintf(MsgAppControl, app),
		Intent: router.IntentAppControl,
		Data:   assistant.AppControlData{App: app},
	}
}

// systemControl only reports the action. The host is never shut down or restarted.
func (uc *implUseCase) systemControl(action router.Action) assistant.Response {
	return assistant.Response{
		Text:   fmt.Sprintf(MsgSystemControl, action),
		Intent: router.IntentSystemControl,
		Data:   assistant.SystemControlData{Action: string(action)},
	}
}

func (uc *implUseCase) introduce() assistant.Response {
	return assistant.Response{
		Text:   fmt.Sprintf(MsgIntroduction, uc.identity.Name, uc.identity.FullName, uc.identity.Version),
		Intent: router.IntentIntroduction,
	}
}

func (uc *implUseCase) help() assistant.Response {
	return assistant.Response{
		Text:   MsgHelp,
		Intent: router.IntentHelp,
	}
}

func (uc *implUseCase) statusCheck() assistant.Response {
	return assistant.Response{
		Text:   fmt.Sprintf(MsgStatus, uc.identity.Name),
		Intent: router.IntentStatus,
		Data: assistant.StatusData{
			Version: uc.identity.Version,
			Active:  uc.identity.Active,
			Status:  StatusOperational,
		},
	}
}

func (uc *implUseCase) defaultResponse(raw string) assistant.Response {
	return assistant.Response{
		Text:   fmt.Sprintf(uc.pick(defaultTemplates), raw),
		Intent: router.IntentDefault,
		Data:   assistant.DefaultData{Command: raw},
	}
}
