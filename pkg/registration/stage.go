package registration

// Stage identifies a state of the registration sequence. Stages are
// ordered; a run only ever moves forward.
type Stage uint8

const (
	// StageNotStarted is the initial state before any request.
	StageNotStarted Stage = iota

	// StageEndDeviceCreated is reached when the EndDevice resource
	// exists on the server and its ID is known.
	StageEndDeviceCreated

	// StageDeviceInformationSet is reached when the device metadata has
	// been published.
	StageDeviceInformationSet

	// StageDERCreated is reached when the DER container exists and its
	// ID is known.
	StageDERCreated

	// StageDERCapabilitySet is reached when the nameplate ratings have
	// been published.
	StageDERCapabilitySet

	// StageConnectionPointSet is reached when the device is linked to
	// its metering point.
	StageConnectionPointSet

	// StageComplete marks a finished run. No further requests follow.
	StageComplete
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageNotStarted:
		return "NotStarted"
	case StageEndDeviceCreated:
		return "EndDeviceCreated"
	case StageDeviceInformationSet:
		return "DeviceInformationSet"
	case StageDERCreated:
		return "DERCreated"
	case StageDERCapabilitySet:
		return "DERCapabilitySet"
	case StageConnectionPointSet:
		return "ConnectionPointSet"
	case StageComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}
