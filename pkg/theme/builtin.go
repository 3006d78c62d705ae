package theme

func thRegisterBuiltins() {
	register(thDefaultTheme())
	register(thGruvboxTheme())
}

// thDefaultTheme is a Tokyo Night leaning palette.
func thDefaultTheme() Theme {
	return Theme{
		Name:       "default",
		Foreground: "#C0CAF5",
		Dim:        "#565F89",
		Accent:     "#7AA2F7",

		Border:      "#3B4261",
		BorderFocus: "#7AA2F7",
		Title:       "#BB9AF7",

		StatusIdle:      "#565F89",
		StatusRunning:   "#9ECE6A",
		StatusPaused:    "#E0AF68",
		StatusCompleted: "#BB9AF7",

		KindFocus:  "#F7768E",
		KindBreak:  "#9ECE6A",
		KindInhale: "#7DCFFF",
		KindHold:   "#E0AF68",
		KindExhale: "#BB9AF7",
		KindCustom: "#7AA2F7",

		HighlightFlash: "#FF9E64",
		BannerBG:       "#292E42",
		EditorActive:   "#7AA2F7",
		HelpKey:        "#7AA2F7",
		HelpDesc:       "#565F89",
		Error:          "#F7768E",
	}
}

func thGruvboxTheme() Theme {
	return Theme{
		Name:       "gruvbox",
		Foreground: "#EBDBB2",
		Dim:        "#928374",
		Accent:     "#FABD2F",

		Border:      "#504945",
		BorderFocus: "#FABD2F",
		Title:       "#D3869B",

		StatusIdle:      "#928374",
		StatusRunning:   "#B8BB26",
		StatusPaused:    "#FABD2F",
		StatusCompleted: "#D3869B",

		KindFocus:  "#FB4934",
		KindBreak:  "#B8BB26",
		KindInhale: "#83A598",
		KindHold:   "#FABD2F",
		KindExhale: "#D3869B",
		KindCustom: "#FE8019",

		HighlightFlash: "#FE8019",
		BannerBG:       "#3C3836",
		EditorActive:   "#FABD2F",
		HelpKey:        "#FABD2F",
		HelpDesc:       "#928374",
		Error:          "#FB4934",
	}
}
