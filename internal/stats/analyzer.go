package stats

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/fitdiary/backend/internal/telemetry/tracing"
	"github.com/fitdiary/backend/internal/workouts"

	"go.opentelemetry.io/otel/attribute"
)

const (
	// DefaultTrendWeeks is the volume trend window when the caller gives none.
	DefaultTrendWeeks = 8

	balanceWindowDays     = 7
	consistencyWindowDays = 30

	daysOverworkedMin = 4
	daysBalancedMin   = 2
)

//go:generate mockgen -source=$GOFILE -destination=stats_mocks_test.go -package=stats_test

type statsRepo interface {
	ListSets(ctx context.Context, params workouts.ListSetsParams) ([]workouts.ExerciseSet, error)
	DistinctWorkoutDates(ctx context.Context, userID int) ([]time.Time, error)
	BodyParts(ctx context.Context) ([]workouts.BodyPart, error)
}

// Analyzer derives metrics from the logged exercise sets. All reads are
// stateless, computed on demand, never cached.
type Analyzer struct {
	repo statsRepo
}

func NewAnalyzer(repo statsRepo) *Analyzer {
	return &Analyzer{
		repo: repo,
	}
}

// Streak returns the length of the current consecutive-day workout streak
// ending today or yesterday (relative to now).
func (a *Analyzer) Streak(ctx context.Context, userID int, now time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.streak")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	dates, err := a.repo.DistinctWorkoutDates(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("get workout dates: %w", err)
	}

	return CurrentStreak(dates, now), nil
}

// CurrentStreak walks backward from the most recent workout date and counts
// consecutive days. A most-recent date in the future anchors the streak
// there; otherwise the streak is alive only if the most recent workout was
// today or yesterday.
func CurrentStreak(dates []time.Time, now time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	seen := make(map[time.Time]struct{}, len(dates))
	var days []time.Time
	for _, d := range dates {
		day := toDay(d)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	today := toDay(now)
	var current time.Time
	switch {
	case days[0].After(today):
		current = days[0]
	case days[0].Equal(today) || days[0].Equal(today.AddDate(0, 0, -1)):
		current = today
	default:
		return 0
	}

	streak := 0
	for _, day := range days {
		if day.Equal(current) || day.Equal(current.AddDate(0, 0, -1)) {
			streak++
			current = day.AddDate(0, 0, -1)
		} else {
			break
		}
	}
	return streak
}

// WeeklyVolume sums weight*reps per body part for the calendar week of now,
// Monday through Sunday. Each stored row is one set.
func (a *Analyzer) WeeklyVolume(ctx context.Context, userID int, now time.Time) (_ map[string]float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.weeklyVolume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	from := startOfWeek(now)
	to := from.AddDate(0, 0, 6)
	sets, err := a.repo.ListSets(ctx, workouts.ListSetsParams{
		UserID: userID,
		From:   &from,
		To:     &to,
	})
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}

	volume := make(map[string]float64)
	for _, set := range sets {
		volume[set.BodyPart] += set.Weight * float64(set.Reps)
	}
	return volume, nil
}

// VolumeTrend sums total volume per ISO (year, week) over the last weeksBack
// weeks, ascending.
func (a *Analyzer) VolumeTrend(ctx context.Context, userID int, now time.Time, weeksBack int) (_ []VolumeTrendEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.volumeTrend")
	span.SetAttributes(attribute.Int("weeksBack", weeksBack))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if weeksBack <= 0 {
		weeksBack = DefaultTrendWeeks
	}

	from := toDay(now).AddDate(0, 0, -7*weeksBack)
	sets, err := a.repo.ListSets(ctx, workouts.ListSetsParams{
		UserID: userID,
		From:   &from,
	})
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}

	type yearWeek struct {
		year int
		week int
	}
	volumePerWeek := make(map[yearWeek]float64)
	for _, set := range sets {
		year, week := set.Date.ISOWeek()
		volumePerWeek[yearWeek{year, week}] += set.Weight * float64(set.Reps)
	}

	weeks := make([]yearWeek, 0, len(volumePerWeek))
	for yw := range volumePerWeek {
		weeks = append(weeks, yw)
	}
	sort.Slice(weeks, func(i, j int) bool {
		if weeks[i].year != weeks[j].year {
			return weeks[i].year < weeks[j].year
		}
		return weeks[i].week < weeks[j].week
	})

	trend := make([]VolumeTrendEntry, 0, len(weeks))
	for _, yw := range weeks {
		trend = append(trend, VolumeTrendEntry{
			Week:   fmt.Sprintf("%d-%02d", yw.year, yw.week),
			Volume: volumePerWeek[yw],
		})
	}
	return trend, nil
}

// Progression returns the per-date max weight series for one exercise, plus
// the personal record. A tie on max weight keeps the earliest date.
func (a *Analyzer) Progression(ctx context.Context, userID int, exerciseName string) (_ *Progression, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.progression")
	span.SetAttributes(attribute.String("exercise", exerciseName))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	sets, err := a.repo.ListSets(ctx, workouts.ListSetsParams{
		UserID:       userID,
		ExerciseName: &exerciseName,
	})
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}

	progression := &Progression{
		ExerciseName: exerciseName,
	}

	// sets come ordered by workout date ascending
	for _, set := range sets {
		day := toDay(set.Date)
		if n := len(progression.Entries); n > 0 && progression.Entries[n-1].Date.Equal(day) {
			entry := &progression.Entries[n-1]
			entry.TotalVolume += set.Weight * float64(set.Reps)
			if set.Weight > entry.MaxWeight {
				entry.MaxWeight = set.Weight
			}
			continue
		}
		progression.Entries = append(progression.Entries, ProgressionEntry{
			Date:        day,
			MaxWeight:   set.Weight,
			TotalVolume: set.Weight * float64(set.Reps),
		})
	}

	progression.TotalSessions = len(progression.Entries)
	for i := range progression.Entries {
		if progression.Entries[i].MaxWeight > progression.PRWeight {
			progression.PRWeight = progression.Entries[i].MaxWeight
			progression.PRDate = &progression.Entries[i].Date
		}
	}
	return progression, nil
}

// RecentPRs finds sessions in the trailing 7 days whose max weight beats
// every strictly earlier session of the same exercise.
func (a *Analyzer) RecentPRs(ctx context.Context, userID int, now time.Time) (_ []RecentPR, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.recentPRs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	sets, err := a.repo.ListSets(ctx, workouts.ListSetsParams{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}

	type session struct {
		date   time.Time
		weight float64
	}
	sessionsPerExercise := make(map[string][]session)
	for _, set := range sets {
		day := toDay(set.Date)
		sessions := sessionsPerExercise[set.ExerciseName]
		if n := len(sessions); n > 0 && sessions[n-1].date.Equal(day) {
			if set.Weight > sessions[n-1].weight {
				sessions[n-1].weight = set.Weight
			}
			continue
		}
		sessionsPerExercise[set.ExerciseName] = append(sessions, session{date: day, weight: set.Weight})
	}

	windowStart := toDay(now).AddDate(0, 0, -(balanceWindowDays - 1))
	var prs []RecentPR
	for exerciseName, sessions := range sessionsPerExercise {
		bestBefore := 0.0
		for i, s := range sessions {
			if !s.date.Before(windowStart) && (i == 0 || s.weight > bestBefore) {
				prs = append(prs, RecentPR{
					ExerciseName: exerciseName,
					Date:         s.date,
					Weight:       s.weight,
				})
			}
			if s.weight > bestBefore {
				bestBefore = s.weight
			}
		}
	}

	sort.Slice(prs, func(i, j int) bool {
		if !prs[i].Date.Equal(prs[j].Date) {
			return prs[i].Date.Before(prs[j].Date)
		}
		return prs[i].ExerciseName < prs[j].ExerciseName
	})
	return prs, nil
}

// Balance classifies every body part by distinct training days in the
// trailing 7 days and derives recommendations from the bucket occupancy.
func (a *Analyzer) Balance(ctx context.Context, userID int, now time.Time) (_ *BalanceReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.balance")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	bodyParts, err := a.repo.BodyParts(ctx)
	if err != nil {
		return nil, fmt.Errorf("get body parts: %w", err)
	}

	to := toDay(now)
	from := to.AddDate(0, 0, -(balanceWindowDays - 1))
	sets, err := a.repo.ListSets(ctx, workouts.ListSetsParams{
		UserID: userID,
		From:   &from,
		To:     &to,
	})
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}

	daysPerBodyPart := make(map[string]map[time.Time]struct{})
	for _, set := range sets {
		if daysPerBodyPart[set.BodyPart] == nil {
			daysPerBodyPart[set.BodyPart] = make(map[time.Time]struct{})
		}
		daysPerBodyPart[set.BodyPart][toDay(set.Date)] = struct{}{}
	}

	report := &BalanceReport{}
	for _, bodyPart := range bodyParts {
		entry := BodyPartDays{
			BodyPart:    bodyPart.Name,
			DaysTrained: len(daysPerBodyPart[bodyPart.Name]),
		}
		switch {
		case entry.DaysTrained >= daysOverworkedMin:
			report.Overworked = append(report.Overworked, entry)
		case entry.DaysTrained >= daysBalancedMin:
			report.Balanced = append(report.Balanced, entry)
		case entry.DaysTrained == 1:
			report.Underworked = append(report.Underworked, entry)
		default:
			report.Neglected = append(report.Neglected, entry)
		}
	}

	if len(report.Overworked) > 0 {
		report.Recommendations = append(report.Recommendations, Recommendation{
			Level:   "warning",
			Message: fmt.Sprintf("ease off a bit: %s trained on %d+ days this week", joinBodyParts(report.Overworked), daysOverworkedMin),
		})
	}
	if len(report.Neglected) > 0 {
		report.Recommendations = append(report.Recommendations, Recommendation{
			Level:   "alert",
			Message: fmt.Sprintf("no training logged this week for: %s", joinBodyParts(report.Neglected)),
		})
	}
	if len(report.Underworked) > 0 {
		report.Recommendations = append(report.Recommendations, Recommendation{
			Level:   "info",
			Message: fmt.Sprintf("%s could use another session this week", joinBodyParts(report.Underworked)),
		})
	}
	if len(report.Balanced) > 0 && len(report.Overworked) == 0 && len(report.Neglected) == 0 {
		report.Recommendations = append(report.Recommendations, Recommendation{
			Level:   "success",
			Message: "training is nicely balanced across body parts",
		})
	}

	return report, nil
}

// Consistency reports workout count and run of consecutive training days
// over the last 30 days.
func (a *Analyzer) Consistency(ctx context.Context, userID int, now time.Time) (_ *Consistency, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.consistency")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	dates, err := a.repo.DistinctWorkoutDates(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get workout dates: %w", err)
	}

	today := toDay(now)
	windowStart := today.AddDate(0, 0, -consistencyWindowDays)
	workoutDays := make(map[time.Time]struct{})
	for _, d := range dates {
		if day := toDay(d); !day.Before(windowStart) {
			workoutDays[day] = struct{}{}
		}
	}

	streak := 0
	for i := 0; i < consistencyWindowDays; i++ {
		if _, ok := workoutDays[today.AddDate(0, 0, -i)]; !ok {
			break
		}
		streak++
	}

	return &Consistency{
		WorkoutCount: len(workoutDays),
		Streak:       streak,
	}, nil
}

// BodyPartDistribution reports the percentage share of the last 30 days of
// volume per body part, 0 for inactive parts.
func (a *Analyzer) BodyPartDistribution(ctx context.Context, userID int, now time.Time) (_ *BodyPartDistribution, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.bodyPartDistribution")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	bodyParts, err := a.repo.BodyParts(ctx)
	if err != nil {
		return nil, fmt.Errorf("get body parts: %w", err)
	}

	to := toDay(now)
	from := to.AddDate(0, 0, -consistencyWindowDays)
	sets, err := a.repo.ListSets(ctx, workouts.ListSetsParams{
		UserID: userID,
		From:   &from,
		To:     &to,
	})
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}

	volume := make(map[string]float64)
	total := 0.0
	for _, set := range sets {
		setVolume := set.Weight * float64(set.Reps)
		volume[set.BodyPart] += setVolume
		total += setVolume
	}

	percentages := make(map[string]float64, len(bodyParts))
	for _, bodyPart := range bodyParts {
		if total == 0 {
			percentages[bodyPart.Name] = 0
			continue
		}
		percentages[bodyPart.Name] = math.Round(volume[bodyPart.Name]/total*100*100) / 100
	}

	return &BodyPartDistribution{
		Percentages: percentages,
		TotalVolume: total,
		From:        from,
		To:          to,
	}, nil
}

// Diversity counts distinct exercises performed in the last 30 days.
func (a *Analyzer) Diversity(ctx context.Context, userID int, now time.Time) (_ *WorkoutDiversity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.diversity")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	from := toDay(now).AddDate(0, 0, -consistencyWindowDays)
	sets, err := a.repo.ListSets(ctx, workouts.ListSetsParams{
		UserID: userID,
		From:   &from,
	})
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}

	unique := make(map[string]struct{})
	for _, set := range sets {
		unique[set.ExerciseName] = struct{}{}
	}

	return &WorkoutDiversity{UniqueExercises: len(unique)}, nil
}

// Dashboard summarizes one training date: totals, grouped sets per body
// part, and the workout count for the calendar week of that date.
func (a *Analyzer) Dashboard(ctx context.Context, userID int, date time.Time) (_ *DashboardSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.dashboard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	day := toDay(date)
	sets, err := a.repo.ListSets(ctx, workouts.ListSetsParams{
		UserID: userID,
		From:   &day,
		To:     &day,
	})
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}

	summary := &DashboardSummary{
		Date:      day.Format("2006-01-02"),
		Exercises: make(map[string][]ExerciseGroup),
	}
	for _, set := range sets {
		summary.TotalWeight += set.Weight
		summary.TotalReps += set.Reps

		groups := summary.Exercises[set.BodyPart]
		found := false
		for i := range groups {
			if groups[i].ExerciseName == set.ExerciseName &&
				groups[i].Weight == set.Weight &&
				groups[i].Reps == set.Reps {
				groups[i].Sets++
				found = true
				break
			}
		}
		if !found {
			groups = append(groups, ExerciseGroup{
				ExerciseName: set.ExerciseName,
				Weight:       set.Weight,
				Reps:         set.Reps,
				Sets:         1,
			})
		}
		summary.Exercises[set.BodyPart] = groups
	}

	dates, err := a.repo.DistinctWorkoutDates(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get workout dates: %w", err)
	}
	weekStart := startOfWeek(day)
	weekEnd := weekStart.AddDate(0, 0, 6)
	for _, d := range dates {
		if workoutDay := toDay(d); !workoutDay.Before(weekStart) && !workoutDay.After(weekEnd) {
			summary.WorkoutsThisWeek++
		}
	}

	return summary, nil
}

// toDay truncates a timestamp to its calendar date, in UTC.
func toDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// startOfWeek returns Monday 00:00 of the week containing t.
func startOfWeek(t time.Time) time.Time {
	day := toDay(t)
	offset := int(day.Weekday()) - 1
	if offset < 0 {
		offset = 6 // sunday
	}
	return day.AddDate(0, 0, -offset)
}

func joinBodyParts(entries []BodyPartDays) string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.BodyPart)
	}
	return strings.Join(names, ", ")
}
