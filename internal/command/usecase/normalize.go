package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"voice-task-management/internal/command"
	"voice-task-management/internal/model"
	"voice-task-management/pkg/jsonscan"
)

// absoluteDate matches values the model already resolved, like 2026-10-20.
var absoluteDate = regexp.MustCompile(`^\d{4}`)

var errNoObject = errors.New("no JSON object found")

// normalize pulls the JSON object out of raw model text and resolves any
// relative scheduled time.
func (uc *implUseCase) normalize(raw string) (model.IntentRecord, error) {
	extracted, found := jsonscan.Extract(raw)
	if !found {
		return model.IntentRecord{}, command.NewMalformedError(raw, extracted, errNoObject)
	}

	var rec model.IntentRecord
	if err := json.Unmarshal([]byte(extracted), &rec); err != nil {
		return model.IntentRecord{}, command.NewMalformedError(raw, extracted, err)
	}

	if idx, ok := rec.Index(); ok && idx < 1 {
		return model.IntentRecord{}, command.NewMalformedError(raw, extracted, fmt.Errorf("taskIndex must be at least 1, got %d", idx))
	}

	return uc.resolveSchedule(rec), nil
}

// resolveSchedule turns a relative scheduledTime into a date. Values that
// already start with a year are kept.
func (uc *implUseCase) resolveSchedule(rec model.IntentRecord) model.IntentRecord {
	rec.ScheduledTime = strings.TrimSpace(rec.ScheduledTime)
	if rec.ScheduledTime != "" && !absoluteDate.MatchString(rec.ScheduledTime) {
		rec.ScheduledTime = uc.resolver.Resolve(rec.ScheduledTime, uc.now())
	}
	return rec
}
