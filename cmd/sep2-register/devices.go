package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sep2-protocol/sep2-go/pkg/model"
)

// deviceFile is the YAML document listing the devices to register.
type deviceFile struct {
	Devices []deviceEntry `yaml:"devices"`
}

// deviceEntry describes one device. Field names mirror the wire
// documents; bitmask and code fields take the numeric protocol values.
type deviceEntry struct {
	LFDI        string `yaml:"lfdi"`
	Category    uint32 `yaml:"category"`
	ChangedTime int64  `yaml:"changedTime"`
	PostRate    int    `yaml:"postRate"`
	Disabled    bool   `yaml:"disabled"`
	MeterID     string `yaml:"meterID"`

	Information struct {
		FunctionsImplemented uint32 `yaml:"functionsImplemented"`
		MfDate               int64  `yaml:"mfDate"`
		MfHwVer              string `yaml:"mfHwVer"`
		MfID                 uint32 `yaml:"mfID"`
		MfInfo               string `yaml:"mfInfo"`
		MfModel              string `yaml:"mfModel"`
		MfSerNum             string `yaml:"mfSerNum"`
		PrimaryPower         uint8  `yaml:"primaryPower"`
		SecondaryPower       uint8  `yaml:"secondaryPower"`
		SwActTime            int64  `yaml:"swActTime"`
		SwVer                string `yaml:"swVer"`
	} `yaml:"information"`

	Capability struct {
		ModesSupported uint32       `yaml:"modesSupported"`
		Type           uint8        `yaml:"type"`
		RtgMaxW        ratingEntry  `yaml:"rtgMaxW"`
		RtgMaxA        *ratingEntry `yaml:"rtgMaxA"`
		RtgMaxAh       *ratingEntry `yaml:"rtgMaxAh"`
		RtgMaxChargeW  *ratingEntry `yaml:"rtgMaxChargeRateW"`
		RtgMaxDischW   *ratingEntry `yaml:"rtgMaxDischargeRateW"`
	} `yaml:"capability"`
}

type ratingEntry struct {
	Multiplier int32 `yaml:"multiplier"`
	Value      int64 `yaml:"value"`
}

func (r *ratingEntry) toModel() *model.ValueWithMultiplier {
	if r == nil {
		return nil
	}
	return &model.ValueWithMultiplier{Multiplier: r.Multiplier, Value: r.Value}
}

// loadDevices reads and validates the device file. Every entry must
// build into a valid device before anything is registered.
func loadDevices(path string) ([]*model.Device, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read device file: %w", err)
	}

	var file deviceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse device file: %w", err)
	}
	if len(file.Devices) == 0 {
		return nil, fmt.Errorf("device file %s lists no devices", path)
	}

	devices := make([]*model.Device, 0, len(file.Devices))
	for i, entry := range file.Devices {
		dev, err := buildDevice(entry)
		if err != nil {
			return nil, fmt.Errorf("device %d (lfdi %s): %w", i, entry.LFDI, err)
		}
		devices = append(devices, dev)
	}
	return devices, nil
}

func buildDevice(entry deviceEntry) (*model.Device, error) {
	info := model.DeviceInformation{
		FunctionsImplemented: model.FunctionsImplemented(entry.Information.FunctionsImplemented),
		MfDate:               entry.Information.MfDate,
		MfHwVer:              entry.Information.MfHwVer,
		MfID:                 entry.Information.MfID,
		MfInfo:               entry.Information.MfInfo,
		MfModel:              entry.Information.MfModel,
		MfSerNum:             entry.Information.MfSerNum,
		PrimaryPower:         model.PowerSource(entry.Information.PrimaryPower),
		SecondaryPower:       model.PowerSource(entry.Information.SecondaryPower),
		SwActTime:            entry.Information.SwActTime,
		SwVer:                entry.Information.SwVer,
	}

	capability := model.DERCapability{
		ModesSupported:       model.DERControlMode(entry.Capability.ModesSupported),
		Type:                 model.DERType(entry.Capability.Type),
		RtgMaxW:              model.ValueWithMultiplier{Multiplier: entry.Capability.RtgMaxW.Multiplier, Value: entry.Capability.RtgMaxW.Value},
		RtgMaxA:              entry.Capability.RtgMaxA.toModel(),
		RtgMaxAh:             entry.Capability.RtgMaxAh.toModel(),
		RtgMaxChargeRateW:    entry.Capability.RtgMaxChargeW.toModel(),
		RtgMaxDischargeRateW: entry.Capability.RtgMaxDischW.toModel(),
	}

	return model.NewDevice(model.DeviceConfig{
		LFDI:            entry.LFDI,
		Category:        model.DeviceCategory(entry.Category),
		ChangedTime:     entry.ChangedTime,
		PostRate:        entry.PostRate,
		Disabled:        entry.Disabled,
		Information:     info,
		Capability:      capability,
		ConnectionPoint: model.ConnectionPoint{MeterID: entry.MeterID},
	})
}
