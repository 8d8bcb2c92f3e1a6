package usecase

import (
	"context"

	"jarvis-assistant/internal/assistant"
	"jarvis-assistant/internal/router"
)

// generate dispatches to the handler of the classified intent.
func (uc *implUseCase) generate(ctx context.Context, out router.RouterOutput, raw string) assistant.Response {
	switch out.Intent {
	case router.IntentGreeting:
		return uc.greet()
	case router.IntentTime:
		return uc.currentTime()
	case router.IntentDate:
		return uc.currentDate()
	case router.IntentSystemInfo:
		return uc.systemInfo(ctx)
	case router.IntentBattery:
		return uc.batteryStatus(ctx)
	case router.IntentWeather:
		return uc.weather()
	case router.IntentSearch:
		return uc.webSearch(out)
	case router.IntentAppControl:
		return uc.openApplication(out)
	case router.IntentSystemControl:
		return uc.systemControl(out.Action)
	case router.IntentIntroduction:
		return uc.introduce()
	case router.IntentHelp:
		return uc.help()
	case router.IntentStatus:
		return uc.statusCheck()
	default:
		return uc.defaultResponse(raw)
	}
}
