package pattern

// builtins returns the built-in pattern set keyed by id.
func builtins() map[string]Pattern {
	return map[string]Pattern{
		"pomodoro":         ptPomodoro(),
		"breathing-4-7-8":  ptBreathing478(),
		"box-breathing":    ptBoxBreathing(),
		"breathing-5-2-7":  ptBreathing527(),
		"free-time":        ptFreeTime(),
		"quick-meditation": ptQuickMeditation(),
	}
}

// ptPomodoro returns the classic 25/5 work-break cycle. The long-break
// fields are reserved: the phase machine never consults them.
func ptPomodoro() Pattern {
	return Pattern{
		ID:   "pomodoro",
		Name: "Pomodoro",
		Phases: []Phase{
			{Duration: 1500, Message: "Focus on your task", Kind: KindFocus},
			{Duration: 300, Message: "Take a short break", Kind: KindBreak},
		},
		Repeat:                true,
		LongBreak:             900,
		CyclesBeforeLongBreak: 4,
	}
}

// ptBreathing478 returns the 4-7-8 relaxation breath.
func ptBreathing478() Pattern {
	return Pattern{
		ID:   "breathing-4-7-8",
		Name: "4-7-8 Breathing",
		Phases: []Phase{
			{Duration: 4, Message: "Breathe in through your nose", Kind: KindInhale},
			{Duration: 7, Message: "Hold your breath", Kind: KindHold},
			{Duration: 8, Message: "Exhale slowly through your mouth", Kind: KindExhale},
		},
		Repeat:        true,
		Visualization: VisualizationBreathing,
	}
}

// ptBoxBreathing returns four equal sides of four seconds.
func ptBoxBreathing() Pattern {
	return Pattern{
		ID:   "box-breathing",
		Name: "Box Breathing",
		Phases: []Phase{
			{Duration: 4, Message: "Breathe in", Kind: KindInhale},
			{Duration: 4, Message: "Hold", Kind: KindHold},
			{Duration: 4, Message: "Breathe out", Kind: KindExhale},
			{Duration: 4, Message: "Hold", Kind: KindHold},
		},
		Repeat:        true,
		Visualization: VisualizationBreathing,
	}
}

// ptBreathing527 returns a gentler variant with a short hold.
func ptBreathing527() Pattern {
	return Pattern{
		ID:   "breathing-5-2-7",
		Name: "5-2-7 Breathing",
		Phases: []Phase{
			{Duration: 5, Message: "Breathe in deeply", Kind: KindInhale},
			{Duration: 2, Message: "Hold briefly", Kind: KindHold},
			{Duration: 7, Message: "Let it all out", Kind: KindExhale},
		},
		Repeat:        true,
		Visualization: VisualizationBreathing,
	}
}

// ptFreeTime returns a single ten-minute break that does not repeat.
func ptFreeTime() Pattern {
	return Pattern{
		ID:   "free-time",
		Name: "Free Time",
		Phases: []Phase{
			{Duration: 600, Message: "Do whatever you like", Kind: KindBreak},
		},
	}
}

// ptQuickMeditation returns a single five-minute focus sit.
func ptQuickMeditation() Pattern {
	return Pattern{
		ID:   "quick-meditation",
		Name: "Quick Meditation",
		Phases: []Phase{
			{Duration: 300, Message: "Clear your mind", Kind: KindFocus},
		},
	}
}
