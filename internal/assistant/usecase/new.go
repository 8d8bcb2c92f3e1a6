package usecase

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"jarvis-assistant/internal/model"
	"jarvis-assistant/internal/router"
	"jarvis-assistant/pkg/log"
	"jarvis-assistant/pkg/telemetry"
)

// implUseCase is the private implementation of assistant.UseCase.
type implUseCase struct {
	l         log.Logger
	router    router.Router
	telemetry telemetry.Reader
	identity  model.Identity

	greetings []string
	now       func() time.Time
	intn      func(n int) int
}

// New creates a new assistant UseCase implementation.
func New(l log.Logger, r router.Router, tr telemetry.Reader, identity model.Identity) *implUseCase {
	greetings := make([]string, len(greetingTemplates))
	for i, tmpl := range greetingTemplates {
		if strings.Contains(tmpl, "%[1]s") {
			tmpl = fmt.Sprintf(tmpl, identity.Name)
		}
		greetings[i] = tmpl
	}

	return &implUseCase{
		l:         l,
		router:    r,
		telemetry: tr,
		identity:  identity,
		greetings: greetings,
		now:       time.Now,
		intn:      rand.Intn,
	}
}
