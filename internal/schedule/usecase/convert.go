package usecase

import (
	"context"
	"strings"
	"time"

	"atomic-scheduler/internal/category"
	"atomic-scheduler/internal/model"
	"atomic-scheduler/internal/schedule"
	repo "atomic-scheduler/internal/task/repository"
	"atomic-scheduler/pkg/gcalendar"
	"atomic-scheduler/pkg/timeutil"
)

// labelAliases normalizes the free-text category labels the AI emits to
// the user-facing names the app uses. Unmapped labels pass through
// unchanged.
var labelAliases = map[string]string{
	"work":         "Work",
	"career":       "Work",
	"job":          "Work",
	"fitness":      "Health",
	"exercise":     "Health",
	"health":       "Health",
	"workout":      "Health",
	"study":        "Learning",
	"learning":     "Learning",
	"education":    "Learning",
	"programming":  "Learning",
	"reading":      "Learning",
	"social":       "Social",
	"family":       "Social",
	"friends":      "Social",
	"leisure":      "Personal",
	"rest":         "Personal",
	"relaxation":   "Personal",
	"personal":     "Personal",
	"misc":         "Personal",
	"productivity": "Work",
}

// normalizeLabel maps an AI category label to its canonical name.
// Empty labels resolve to the default category.
func normalizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return model.DefaultCategoryName
	}
	if canonical, ok := labelAliases[strings.ToLower(label)]; ok {
		return canonical
	}
	return label
}

// Convert materializes an AI schedule into persisted tasks. Slots are
// processed in the order given; per-slot failures are collected and do
// not abort the batch.
func (uc *implUseCase) Convert(ctx context.Context, sc model.Scope, input schedule.ConvertInput) (schedule.ConvertOutput, error) {
	if err := validateTargetDate(input.TargetDate); err != nil {
		return schedule.ConvertOutput{}, err
	}
	if len(input.Schedule.TimeSlots) == 0 {
		return schedule.ConvertOutput{}, schedule.ErrEmptySchedule
	}

	existing, _, err := uc.taskRepo.ListTasks(ctx, repo.ListTasksOptions{UserID: sc.UserID, Date: input.TargetDate})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Convert ListTasks: %v", err)
		return schedule.ConvertOutput{}, err
	}

	known, err := uc.loadCategoryNames(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Convert loadCategoryNames: %v", err)
		return schedule.ConvertOutput{}, err
	}

	var out schedule.ConvertOutput
	var placed []model.Task // tasks created earlier in this batch

	for _, slot := range input.Schedule.TimeSlots {
		r, slotErr := placementOf(slot)
		if slotErr != "" {
			out.Errors = append(out.Errors, schedule.SlotError{Activity: slot.Activity, Message: slotErr})
			continue
		}

		// Earlier slots of the same batch always win; pre-existing tasks
		// win only when the caller asked to preserve them.
		if schedule.HasConflict(r, placed, "") {
			out.Skipped = append(out.Skipped, schedule.SkippedSlot{Slot: slot, Reason: "overlaps an earlier slot in this schedule"})
			continue
		}
		if input.PreserveExistingTasks && schedule.HasConflict(r, existing, "") {
			out.Skipped = append(out.Skipped, schedule.SkippedSlot{Slot: slot, Reason: "overlaps an existing task"})
			continue
		}

		cat, createdCat := uc.resolveSlotCategory(ctx, sc, normalizeLabel(slot.Category), known, input.CreateMissingCategories)
		if createdCat {
			out.CreatedCategories = append(out.CreatedCategories, cat.Name)
		}

		created, createErr := uc.taskRepo.CreateTask(ctx, repo.CreateTaskOptions{
			UserID:     sc.UserID,
			Name:       strings.TrimSpace(slot.Activity),
			Time:       r.Format(),
			Start:      r.Start,
			Duration:   r.Duration(),
			CategoryID: cat.ID,
			Category:   cat.Name,
			Block:      string(timeutil.BlockOf(r.Start)),
			Date:       input.TargetDate,
		})
		if createErr != nil {
			uc.l.Errorf(ctx, "uc.Convert CreateTask %q: %v", slot.Activity, createErr)
			out.Errors = append(out.Errors, schedule.SlotError{Activity: slot.Activity, Message: createErr.Error()})
			out.Skipped = append(out.Skipped, schedule.SkippedSlot{Slot: slot, Reason: "creation failed"})
			continue
		}

		out.Created = append(out.Created, created)
		placed = append(placed, created)
		uc.tryExportCalendarEvent(ctx, created)
	}

	return out, nil
}

// placementOf validates one slot and computes its time range. A non-empty
// second return is the per-slot error message.
func placementOf(slot model.TimeSlot) (timeutil.TimeRange, string) {
	if strings.TrimSpace(slot.Activity) == "" {
		return timeutil.TimeRange{}, "activity is required"
	}
	if strings.TrimSpace(slot.Time) == "" {
		return timeutil.TimeRange{}, "time is required"
	}
	if slot.Duration <= 0 {
		return timeutil.TimeRange{}, "duration must be positive"
	}
	if slot.Duration > schedule.MaxSlotDuration {
		return timeutil.TimeRange{}, "duration exceeds the 8 hour bound"
	}
	start, ok := timeutil.ParseClock(slot.Time, timeutil.PeriodUnknown)
	if !ok {
		return timeutil.TimeRange{}, "unreadable time"
	}
	return timeutil.TimeRange{Start: start, End: start + slot.Duration}, ""
}

// resolveSlotCategory maps a normalized label to a category. Missing
// categories are created only when allowed; every failure degrades to
// the default category rather than aborting the slot.
func (uc *implUseCase) resolveSlotCategory(ctx context.Context, sc model.Scope, name string, known map[string]model.Category, create bool) (model.Category, bool) {
	if cat, ok := known[strings.ToLower(name)]; ok {
		return cat, false
	}

	if create {
		cat, created, err := uc.categoryUC.Resolve(ctx, sc, name)
		if err == nil {
			known[strings.ToLower(cat.Name)] = cat
			return cat, created
		}
		uc.l.Warnf(ctx, "uc.resolveSlotCategory Resolve %q: %v", name, err)
	}

	if cat, ok := known[strings.ToLower(model.DefaultCategoryName)]; ok {
		return cat, false
	}
	cat, created, err := uc.categoryUC.Resolve(ctx, sc, model.DefaultCategoryName)
	if err != nil {
		uc.l.Errorf(ctx, "uc.resolveSlotCategory default Resolve: %v", err)
		return model.Category{Name: model.DefaultCategoryName}, false
	}
	known[strings.ToLower(cat.Name)] = cat
	return cat, created
}

// loadCategoryNames preloads the user's categories keyed by lowercase name.
func (uc *implUseCase) loadCategoryNames(ctx context.Context, sc model.Scope) (map[string]model.Category, error) {
	out, err := uc.categoryUC.List(ctx, sc, category.ListCategoriesInput{Limit: 500})
	if err != nil {
		return nil, err
	}
	known := make(map[string]model.Category, len(out.Categories))
	for _, cat := range out.Categories {
		known[strings.ToLower(cat.Name)] = cat
	}
	return known, nil
}

// tryExportCalendarEvent pushes a created task to the configured calendar.
// Export is best-effort: failures are logged and never affect conversion.
func (uc *implUseCase) tryExportCalendarEvent(ctx context.Context, t model.Task) {
	if uc.calendar == nil {
		return
	}

	day, err := time.Parse("2006-01-02", t.Date)
	if err != nil {
		return
	}
	start := day.Add(time.Duration(t.Start) * time.Minute)
	end := start.Add(time.Duration(t.Duration) * time.Minute)

	if _, err := uc.calendar.CreateEvent(ctx, gcalendar.EventRequest{
		CalendarID:  uc.calCfg.CalendarID,
		Summary:     t.Name,
		Description: t.Category,
		StartTime:   start,
		EndTime:     end,
		Timezone:    uc.calCfg.Timezone,
	}); err != nil {
		uc.l.Warnf(ctx, "uc.tryExportCalendarEvent %q: %v", t.Name, err)
	}
}

// validateTargetDate enforces the YYYY-MM-DD wire format.
func validateTargetDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return schedule.ErrInvalidDate
	}
	return nil
}
