package game

// MobileMaxWidth is the widest viewport that still gets the mobile profile.
const MobileMaxWidth = 600

// Profile holds the speed constants chosen once when a session is created.
type Profile struct {
	Name          string
	SpeedY        float64 // Initial vertical speed
	SpeedX        float64 // Initial horizontal speed
	ComputerSpeed float64 // Opponent paddle step per frame
}

var (
	DesktopProfile = Profile{Name: "desktop", SpeedY: -1, SpeedX: -1, ComputerSpeed: 3}
	MobileProfile  = Profile{Name: "mobile", SpeedY: -2, SpeedX: -2, ComputerSpeed: 4}
)

// ProfileForViewport picks the mobile profile for narrow viewports.
func ProfileForViewport(width int) Profile {
	if width <= MobileMaxWidth {
		return MobileProfile
	}
	return DesktopProfile
}
