package stats

import "math"

// AvgNapDurationHours averages the explicit durations of nap events, in
// hours. Only naps with an end time count, and attempts where the child
// did not fall asleep are excluded. Returns 0 when no nap qualifies.
func AvgNapDurationHours(events []Event) float64 {
	total := 0.0
	count := 0
	for _, e := range events {
		if e.Type != EventNap || e.EndTime == nil || e.DidNotSleep {
			continue
		}
		total += e.EndTime.Sub(e.StartTime).Hours()
		count++
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// AvgNapSleepDelay averages the sleep-onset delay of nap events as a
// humanized string. Naps without a defined non-negative delay, and failed
// attempts, are skipped. Returns DelaySentinel when no nap qualifies.
func AvgNapSleepDelay(events []Event) string {
	return avgOnsetDelay(events, func(e Event) bool { return e.Type == EventNap })
}

// avgBedtimeToSleepDelay averages the sleep-onset delay of night sleep
// events, with the same exclusions as naps.
func avgBedtimeToSleepDelay(events []Event) string {
	return avgOnsetDelay(events, Event.IsSleepStart)
}

func avgOnsetDelay(events []Event, match func(Event) bool) string {
	total := 0
	count := 0
	for _, e := range events {
		if !match(e) || e.DidNotSleep {
			continue
		}
		if e.SleepDelay == nil || *e.SleepDelay < 0 {
			continue
		}
		total += e.cappedDelay()
		count++
	}
	if count == 0 {
		return DelaySentinel
	}
	return formatDelayMinutes(int(math.Round(float64(total) / float64(count))))
}
