package usecase

import (
	"strings"

	"atomic-scheduler/internal/ai"
	"atomic-scheduler/internal/model"
)

// domainProfile is one entry of the fallback rule table. Profiles are
// matched by substring against the user's free text; matched profiles
// contribute their canned content to the synthesized response. This is
// intentionally non-adaptive: a lookup table, not a planner.
type domainProfile struct {
	name           string
	keywords       []string
	practices      []string
	allocation     string
	backing        string
	slots          []model.TimeSlot
	insight        string
	recommendation string
	suggestion     string
}

var domainProfiles = []domainProfile{
	{
		name:     "fitness",
		keywords: []string{"fitness", "exercise", "gym", "workout", "health", "run"},
		practices: []string{
			"Schedule workouts at the same time every day to build the habit loop",
			"Alternate strength and cardio days to allow muscle recovery",
		},
		allocation: "45-60 minutes daily",
		backing:    "Consistent exercise timing improves adherence (habit formation research, Lally et al. 2010)",
		slots: []model.TimeSlot{
			{Activity: "Morning workout", Time: "6:30 AM", Duration: 45, Category: "Health"},
		},
		insight:        "Morning workouts are the least likely to be displaced by later obligations",
		recommendation: "Block a fixed 45 minute workout slot before your workday starts",
		suggestion:     "Move exercise earlier in the day so evening conflicts cannot displace it",
	},
	{
		name:     "programming",
		keywords: []string{"programming", "coding", "code", "software", "developer", "learn"},
		practices: []string{
			"Practice in focused 90 minute blocks with a concrete small project",
			"Review and refactor yesterday's code before writing new code",
		},
		allocation: "90 minutes daily",
		backing:    "Deliberate practice in distraction-free blocks outperforms longer unfocused sessions (Ericsson, 1993)",
		slots: []model.TimeSlot{
			{Activity: "Programming practice", Time: "7:30 PM", Duration: 90, Category: "Learning"},
		},
		insight:        "Skill practice needs protected time; unscheduled learning reliably loses to urgent tasks",
		recommendation: "Reserve one evening deep-focus block for study, phone out of reach",
		suggestion:     "Consolidate scattered short study slots into one 90 minute block",
	},
	{
		name:     "student",
		keywords: []string{"student", "study", "exam", "school", "university", "course"},
		practices: []string{
			"Use spaced repetition for memorization-heavy subjects",
			"Start assignments the day they are issued, even if only for 15 minutes",
		},
		allocation: "2-3 hours daily",
		backing:    "Spaced repetition and retrieval practice have the largest measured effect sizes in learning research (Dunlosky et al. 2013)",
		slots: []model.TimeSlot{
			{Activity: "Study session", Time: "9:00 AM", Duration: 120, Category: "Learning"},
			{Activity: "Review notes", Time: "8:00 PM", Duration: 30, Category: "Learning"},
		},
		insight:        "Two separated study sessions beat one long session of the same total length",
		recommendation: "Put your hardest subject in the morning slot while attention is highest",
		suggestion:     "Split long study blocks into morning and evening sessions",
	},
	{
		name:     "fintech",
		keywords: []string{"fintech", "finance", "trading", "investment", "market"},
		practices: []string{
			"Review markets at a fixed time instead of polling all day",
			"Separate research time from execution time to avoid impulsive decisions",
		},
		allocation: "60 minutes daily",
		backing:    "Decision quality degrades with continuous monitoring; batched review reduces noise-driven trades (Barber & Odean, 2000)",
		slots: []model.TimeSlot{
			{Activity: "Market review", Time: "8:00 AM", Duration: 30, Category: "Work"},
			{Activity: "Research and analysis", Time: "5:00 PM", Duration: 30, Category: "Work"},
		},
		insight:        "A single fixed market-review window removes the urge to monitor continuously",
		recommendation: "Check markets once in the morning and once after close, never between",
		suggestion:     "Batch all market checking into two fixed windows",
	},
}

// generalProfile backstops users whose goals match no table entry. The
// fallback contract is to always return usable content.
var generalProfile = domainProfile{
	name:     "general",
	keywords: nil,
	practices: []string{
		"Plan tomorrow's three most important tasks before ending today",
		"Protect one distraction-free deep work block every day",
	},
	allocation: "varies",
	backing:    "Implementation intentions (deciding when and where in advance) roughly double follow-through rates (Gollwitzer, 1999)",
	slots: []model.TimeSlot{
		{Activity: "Plan the day", Time: "8:00 AM", Duration: 15, Category: "Personal"},
		{Activity: "Deep work block", Time: "9:00 AM", Duration: 90, Category: "Work"},
		{Activity: "Lunch break", Time: "12:30 PM", Duration: 45, Category: "Personal"},
		{Activity: "Afternoon focus block", Time: "2:00 PM", Duration: 90, Category: "Work"},
		{Activity: "Evening wind-down", Time: "9:00 PM", Duration: 30, Category: "Personal"},
	},
	insight:        "Most schedule failures come from never deciding when a task happens",
	recommendation: "Give every goal a concrete recurring time slot",
	suggestion:     "Assign each floating task a fixed start time",
}

// matchProfiles returns the table entries whose keywords appear in the
// text, falling back to the general profile when nothing matches.
func matchProfiles(text string) []domainProfile {
	lower := strings.ToLower(text)
	var matched []domainProfile
	for _, p := range domainProfiles {
		for _, kw := range p.keywords {
			if strings.Contains(lower, kw) {
				matched = append(matched, p)
				break
			}
		}
	}
	if len(matched) == 0 {
		matched = append(matched, generalProfile)
	}
	return matched
}

func fallbackOnboarding(input ai.OnboardingInput, reason ai.FallbackReason) ai.OnboardingOutput {
	profiles := matchProfiles(input.Goals + " " + input.Occupation)

	out := ai.OnboardingOutput{Fallback: true, FallbackReason: reason}
	for _, p := range profiles {
		out.Tasks = append(out.Tasks, p.slots...)
		out.Insights = append(out.Insights, p.insight)
		out.Recommendations = append(out.Recommendations, p.recommendation)
	}
	return out
}

func fallbackOptimize(input ai.OptimizeInput, reason ai.FallbackReason) ai.OptimizeOutput {
	profiles := matchProfiles(input.OptimizationGoal)

	out := ai.OptimizeOutput{Fallback: true, FallbackReason: reason}
	for _, p := range profiles {
		out.Suggestions = append(out.Suggestions, p.suggestion)
		out.Insights = append(out.Insights, p.insight)
	}
	if len(input.CurrentTasks) > 8 {
		out.Suggestions = append(out.Suggestions, "Your day has many separate tasks; merge related ones to reduce context switching")
	}
	return out
}

func fallbackResearch(input ai.ResearchInput, reason ai.FallbackReason) ai.ResearchOutput {
	profiles := matchProfiles(input.Goals)

	out := ai.ResearchOutput{
		TimeAllocations: make(map[string]string, len(profiles)),
		Fallback:        true,
		FallbackReason:  reason,
	}
	for _, p := range profiles {
		out.Practices = append(out.Practices, p.practices...)
		out.TimeAllocations[p.name] = p.allocation
		out.ScientificBacking = append(out.ScientificBacking, p.backing)
	}
	return out
}

func fallbackSchedule(prefs ai.UserPreferences, reason ai.FallbackReason) ai.GenerateScheduleOutput {
	profiles := matchProfiles(prefs.Goals + " " + prefs.Occupation)

	var slots []model.TimeSlot
	for _, c := range prefs.Commitments {
		c.IsCommitment = true
		slots = append(slots, c)
	}
	for _, p := range profiles {
		slots = append(slots, p.slots...)
	}
	// Anchor slots so a single-domain match still yields a full day.
	// The general profile already carries its own anchors.
	if len(profiles) != 1 || profiles[0].name != generalProfile.name {
		slots = append(slots,
			model.TimeSlot{Activity: "Plan the day", Time: "8:00 AM", Duration: 15, Category: "Personal"},
			model.TimeSlot{Activity: "Lunch break", Time: "12:30 PM", Duration: 45, Category: "Personal"},
		)
	}

	return ai.GenerateScheduleOutput{
		Schedule: model.Schedule{
			TimeSlots:             slots,
			Summary:               "A structured day built from general best practices for your goals",
			OptimizationReasoning: "Generated from the built-in planning rules; connect an AI provider for a personalized plan",
			Confidence:            0.5,
		},
		Fallback:       true,
		FallbackReason: reason,
	}
}
