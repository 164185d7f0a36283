package common

import "github.com/charmbracelet/lipgloss"

const (
	Pink      = lipgloss.Color("#EC4899")
	PinkLight = lipgloss.Color("#F9A8D4")
	Grey      = lipgloss.Color("#6E738D")
	DimBorder = lipgloss.Color("#45475A")
	Text      = lipgloss.Color("#E5E7EB")
	Red       = lipgloss.Color("#ED8796")
	Green     = lipgloss.Color("#A6DA95")
)

var (
	// AppTitleStyle styles the application title.
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Pink).
			Padding(1, 1, 0, 1)

	// TabActiveStyle and TabInactiveStyle render the Home/Messages switcher.
	TabActiveStyle = lipgloss.NewStyle().
			Foreground(Pink).
			Bold(true).
			Underline(true).
			Padding(0, 1)
	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(Grey).
				Padding(0, 1)

	// LanguageBadgeStyle shows the current language next to the tabs.
	LanguageBadgeStyle = lipgloss.NewStyle().
				Foreground(PinkLight).
				Italic(true).
				MarginLeft(2)

	AuthorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PinkLight)

	TimestampStyle = lipgloss.NewStyle().
			Foreground(Grey)

	ContentStyle = lipgloss.NewStyle().
			Foreground(Text)

	// SelectedStyle highlights the card under the cursor.
	SelectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Pink).
			Padding(0, 1)

	// UnselectedStyle gives other cards a subtle border.
	UnselectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimBorder).
			Padding(0, 1)

	// GalleryStyle renders image placeholders.
	GalleryStyle = lipgloss.NewStyle().
			Foreground(PinkLight)

	EngagementStyle = lipgloss.NewStyle().
			Foreground(Grey)

	// LikedStyle marks posts the user has liked.
	LikedStyle = lipgloss.NewStyle().
			Foreground(Pink).
			Bold(true)

	// LocalBadgeStyle marks items that exist only on this client.
	LocalBadgeStyle = lipgloss.NewStyle().
			Foreground(Grey).
			Italic(true).
			MarginLeft(1)

	// CursorStyle marks the selected row in lists without borders.
	CursorStyle = lipgloss.NewStyle().
			Foreground(Pink).
			Bold(true)

	UnreadStyle = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)

	// OwnMessageStyle and OtherMessageStyle align chat bubbles.
	OwnMessageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Pink).
			Padding(0, 1)
	OtherMessageStyle = lipgloss.NewStyle().
				Foreground(Text).
				Background(DimBorder).
				Padding(0, 1)

	// StatusBarStyle styles the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(Grey).
			Padding(1, 0, 0, 1)

	HintStyle = lipgloss.NewStyle().
			Foreground(Grey).
			PaddingLeft(1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)
)
