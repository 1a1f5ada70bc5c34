package style

// Theme groups the colors a chart draws with: canvas background, series
// colors, text, grid lines, and the semantic status colors.
type Theme struct {
	Background Color
	Primary    Color
	Secondary  Color
	Text       Color
	Grid       Color
	Accent     Color
	Success    Color
	Warning    Color
	Error      Color
}

// LightTheme returns a clean theme for bright displays.
func LightTheme() Theme {
	return Theme{
		Background: White,
		Primary:    RGB(59, 130, 246),  // modern blue
		Secondary:  RGB(239, 68, 68),   // modern red
		Text:       RGB(17, 24, 39),    // dark gray
		Grid:       RGB(229, 231, 235), // light gray
		Accent:     RGB(147, 51, 234),  // purple
		Success:    RGB(34, 197, 94),   // green
		Warning:    RGB(245, 158, 11),  // amber
		Error:      RGB(239, 68, 68),   // red
	}
}

// DarkTheme returns an eye-friendly theme for dark displays.
func DarkTheme() Theme {
	return Theme{
		Background: RGB(17, 24, 39),    // dark blue-gray
		Primary:    RGB(96, 165, 250),  // bright blue
		Secondary:  RGB(251, 113, 133), // soft red
		Text:       RGB(248, 250, 252), // off-white
		Grid:       RGB(55, 65, 81),    // medium gray
		Accent:     RGB(168, 85, 247),  // bright purple
		Success:    RGB(52, 211, 153),  // emerald
		Warning:    RGB(251, 191, 36),  // yellow
		Error:      RGB(248, 113, 113), // soft red
	}
}

// VibrantTheme returns an energetic theme with saturated colors.
func VibrantTheme() Theme {
	return Theme{
		Background: RGB(255, 251, 235), // warm white
		Primary:    RGB(236, 72, 153),  // hot pink
		Secondary:  RGB(14, 165, 233),  // sky blue
		Text:       RGB(30, 41, 59),    // dark blue
		Grid:       RGB(254, 215, 170), // peach
		Accent:     RGB(168, 85, 247),  // electric purple
		Success:    RGB(16, 185, 129),  // teal green
		Warning:    RGB(245, 101, 101), // coral
		Error:      RGB(220, 38, 127),  // deep pink
	}
}

// PastelTheme returns a soft, calming theme.
func PastelTheme() Theme {
	return Theme{
		Background: RGB(253, 253, 253), // almost white
		Primary:    RGB(147, 197, 253), // soft blue
		Secondary:  RGB(252, 165, 165), // soft pink
		Text:       RGB(75, 85, 99),    // muted gray
		Grid:       RGB(243, 244, 246), // very light gray
		Accent:     RGB(196, 181, 253), // lavender
		Success:    RGB(167, 243, 208), // mint green
		Warning:    RGB(254, 215, 170), // peach
		Error:      RGB(254, 202, 202), // light coral
	}
}

// IsDark reports whether the background is dark enough that light text
// is needed on top of it.
func (t Theme) IsDark() bool {
	return t.Background.Luminance() < 0.5
}
