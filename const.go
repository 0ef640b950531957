package prophoto

const (
	defaultBitDepth = 8

	// Widest bit depth whose integer code values are exact in float64.
	maxBitDepth = 53
)

const (
	// RIMM maximum exposure level.
	defaultRIMMEClip = 2.0

	// rimmKnee is the exposure at which the RIMM curve leaves the linear
	// shadow segment for the BT.709 power segment.
	rimmKnee = 0.018
)

const (
	// ERIMM exposure limits.
	defaultERIMMEMin  = 0.001
	defaultERIMMEClip = 316.2
)
