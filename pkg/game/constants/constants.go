package constants

const (

	// SwipeThreshold is the horizontal distance from rest a card must pass to commit
	SwipeThreshold float64 = 150.0
	// RotationStrength is the degrees of rotation per unit of horizontal offset
	RotationStrength float64 = 0.05
	// ReturnSpeed is the rate at which a released card eases back to rest
	ReturnSpeed float64 = 10.0
	// HintWidth is the half-width of the band around rest where no option hint is shown
	HintWidth float64 = 50.0
	// SnapEpsilon is the distance under which a returning card snaps to rest
	SnapEpsilon float64 = 1e-2

	// ExitDuration is the duration of the exit animation of a committed card
	ExitDuration float64 = 0.3 // seconds
	// ExitDistance is how far from rest a committed card travels horizontally
	ExitDistance float64 = 2000.0

	// NextCardDelay is the pause between a commit and the next card in the client
	NextCardDelay float64 = 0.5 // seconds

	// MeterMin is the floor of every meter
	MeterMin int = 0
	// MeterMax is the ceiling of every meter
	MeterMax int = 100
	// MeterStart is the starting value of every meter
	MeterStart int = 50
)
