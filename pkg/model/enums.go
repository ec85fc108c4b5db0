package model

// DeviceCategory is the deviceCategory bitmask identifying what kind of
// asset an EndDevice is. Categories can be combined.
type DeviceCategory uint32

// Device categories used by DER clients.
const (
	CategoryElectricVehicle       DeviceCategory = 1 << 16
	CategoryEVSupplyEquipment     DeviceCategory = 1 << 17
	CategoryVirtualOrMixedDER     DeviceCategory = 1 << 18
	CategoryReciprocatingEngine   DeviceCategory = 1 << 19
	CategoryPhotovoltaicSystem    DeviceCategory = 1 << 21
	CategoryCombinedPVAndStorage  DeviceCategory = 1 << 23
	CategoryOtherGenerationSystem DeviceCategory = 1 << 24
	CategoryOtherStorageSystem    DeviceCategory = 1 << 25
)

// FunctionsImplemented is the bitmap of function sets a device implements
// as a client.
type FunctionsImplemented uint32

// Function set bits.
const (
	FunctionSelfDevice FunctionsImplemented = 1 << iota
	FunctionEndDevice
	FunctionFunctionSetAssignments
	FunctionSubscriptionNotification
	FunctionResponse
	FunctionTime
	FunctionDeviceInformation
	FunctionPowerStatus
	FunctionNetworkStatus
	FunctionLogEvent
	FunctionConfiguration
	FunctionSoftwareDownload
	FunctionDRLC
	FunctionMetering
	FunctionPricing
	FunctionMessaging
	FunctionBilling
	FunctionPrepayment
	FunctionFlowReservation
	FunctionDERControl
)

// PowerSource is a device power-source code.
type PowerSource uint8

// Power sources.
const (
	PowerSourceNone PowerSource = iota
	PowerSourceMains
	PowerSourceBattery
	PowerSourceLocalGeneration
	PowerSourceEmergency
	PowerSourceUnknown
)

// IsValid reports whether the code is a defined power source.
func (p PowerSource) IsValid() bool {
	return p <= PowerSourceUnknown
}

// DERType is the DER object type code carried in DERCapability.
type DERType uint8

// DER types. All other values are reserved.
const (
	DERTypeUnknown              DERType = 0
	DERTypeVirtualOrMixed       DERType = 1
	DERTypeReciprocatingEngine  DERType = 2
	DERTypeFuelCell             DERType = 3
	DERTypePhotovoltaicSystem   DERType = 4
	DERTypeCombinedHeatPower    DERType = 5
	DERTypeOtherGeneration      DERType = 6
	DERTypeOtherStorage         DERType = 80
	DERTypeElectricVehicle      DERType = 81
	DERTypeEVSE                 DERType = 82
	DERTypeCombinedPVAndStorage DERType = 83
)

// IsValid reports whether the code is a defined DER type.
func (t DERType) IsValid() bool {
	switch t {
	case DERTypeUnknown, DERTypeVirtualOrMixed, DERTypeReciprocatingEngine,
		DERTypeFuelCell, DERTypePhotovoltaicSystem, DERTypeCombinedHeatPower,
		DERTypeOtherGeneration, DERTypeOtherStorage, DERTypeElectricVehicle,
		DERTypeEVSE, DERTypeCombinedPVAndStorage:
		return true
	default:
		return false
	}
}

// String returns the DER type name.
func (t DERType) String() string {
	switch t {
	case DERTypeUnknown:
		return "NA_UNKNOWN"
	case DERTypeVirtualOrMixed:
		return "VIRTUAL_OR_MIXED"
	case DERTypeReciprocatingEngine:
		return "RECIPROCATING_ENGINE"
	case DERTypeFuelCell:
		return "FUEL_CELL"
	case DERTypePhotovoltaicSystem:
		return "PV_SYSTEM"
	case DERTypeCombinedHeatPower:
		return "COMBINED_HEAT_POWER"
	case DERTypeOtherGeneration:
		return "OTHER_GENERATION"
	case DERTypeOtherStorage:
		return "OTHER_STORAGE"
	case DERTypeElectricVehicle:
		return "ELECTRIC_VEHICLE"
	case DERTypeEVSE:
		return "EVSE"
	case DERTypeCombinedPVAndStorage:
		return "COMBINED_PV_STORAGE"
	default:
		return "RESERVED"
	}
}

// DERControlMode is the modesSupported bitmask of control modes a DER
// supports.
type DERControlMode uint32

// Control mode bits.
const (
	ModeCharge DERControlMode = 1 << iota
	ModeDischarge
	ModeOpModConnect
	ModeOpModEnergize
	ModeOpModFixedPFAbsorbW
	ModeOpModFixedPFInjectW
	ModeOpModFixedVar
	ModeOpModFixedW
	ModeOpModFreqDroop
	ModeOpModFreqWatt
	ModeOpModHFRTMayTrip
	ModeOpModHFRTMustTrip
	ModeOpModHVRTMayTrip
	ModeOpModHVRTMomentaryCessation
	ModeOpModHVRTMustTrip
	ModeOpModLFRTMayTrip
	ModeOpModLFRTMustTrip
	ModeOpModLVRTMayTrip
	ModeOpModLVRTMomentaryCessation
	ModeOpModLVRTMustTrip
	ModeOpModMaxLimW
	ModeOpModTargetVar
	ModeOpModTargetW
	ModeOpModVoltVar
	ModeOpModVoltWatt
	ModeOpModWattPF
	ModeOpModWattVar
)
