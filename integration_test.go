package sep2_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sep2-protocol/sep2-go/pkg/identity"
	"github.com/sep2-protocol/sep2-go/pkg/log"
	"github.com/sep2-protocol/sep2-go/pkg/model"
	"github.com/sep2-protocol/sep2-go/pkg/registration"
	"github.com/sep2-protocol/sep2-go/pkg/transport"
)

func e2eDevice(t *testing.T, lfdi, meterID string) *model.Device {
	t.Helper()
	dev, err := model.NewDevice(model.DeviceConfig{
		LFDI:        lfdi,
		Category:    model.CategoryCombinedPVAndStorage,
		ChangedTime: 1700000000,
		Information: model.DeviceInformation{
			FunctionsImplemented: model.FunctionDERControl,
			MfModel:              "HomeBattery-10",
			MfSerNum:             "HB10-0042",
			PrimaryPower:         model.PowerSourceLocalGeneration,
			SecondaryPower:       model.PowerSourceBattery,
		},
		Capability: model.DERCapability{
			ModesSupported:    model.ModeCharge | model.ModeDischarge | model.ModeOpModMaxLimW,
			RtgMaxW:           model.ValueWithMultiplier{Value: 10000},
			RtgMaxChargeRateW: &model.ValueWithMultiplier{Value: 5000},
			Type:              model.DERTypeCombinedPVAndStorage,
		},
		ConnectionPoint: model.ConnectionPoint{MeterID: meterID},
	})
	if err != nil {
		t.Fatalf("Failed to build device: %v", err)
	}
	return dev
}

// TestE2E_DryRunBatch runs a full batch against the recording transport
// and verifies the rendered session plus the CBOR protocol log.
func TestE2E_DryRunBatch(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "run.cbor")
	fileLogger, err := log.NewFileLogger(logPath)
	if err != nil {
		t.Fatalf("Failed to create protocol log: %v", err)
	}

	var rendered bytes.Buffer
	rec := transport.NewRecordingTransport(&rendered)

	registrar, err := registration.NewRegistrar(&registration.Config{
		Transport: rec,
		Logger:    fileLogger,
	})
	if err != nil {
		t.Fatalf("Failed to create registrar: %v", err)
	}

	devices := []*model.Device{
		e2eDevice(t, "0x21352135135", "4102335710"),
		e2eDevice(t, "0x3e4f45ab3", "4102335711"),
	}

	results, err := registrar.RegisterAll(context.Background(), devices)
	if err != nil {
		t.Fatalf("RegisterAll failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("completed %d registrations, want 2", len(results))
	}
	if results[0].EndDeviceID == results[1].EndDeviceID {
		t.Errorf("both devices got EndDevice ID %s", results[0].EndDeviceID)
	}

	// Two full runs: 5 requests each.
	if got := len(rec.Requests()); got != 10 {
		t.Errorf("sent %d requests, want 10", got)
	}

	out := rendered.String()
	for _, fragment := range []string{
		"POST /edev\n",
		"PUT /edev/1/di\n",
		"POST /edev/1/der\n",
		"PUT /edev/1/der/1/dercap\n",
		"PUT /edev/1/cp\n",
		"PUT /edev/2/di\n",
		"<DER></DER>",
		"<meterID>4102335710</meterID>",
	} {
		if !strings.Contains(out, fragment) {
			t.Errorf("rendered session missing %q", fragment)
		}
	}

	if err := fileLogger.Close(); err != nil {
		t.Fatalf("Failed to close protocol log: %v", err)
	}
	events, err := log.ReadEvents(logPath)
	if err != nil {
		t.Fatalf("Failed to read protocol log: %v", err)
	}

	runs := map[string]bool{}
	completes := 0
	for _, event := range events {
		runs[event.RunID] = true
		if event.Category == log.CategoryStage && event.Stage == "Complete" {
			completes++
		}
		if event.Category == log.CategoryError {
			t.Errorf("unexpected error event: %s", event.Error)
		}
	}
	if len(runs) != 2 {
		t.Errorf("protocol log names %d runs, want 2", len(runs))
	}
	if completes != 2 {
		t.Errorf("protocol log has %d Complete stages, want 2", completes)
	}
}

// TestE2E_HTTPRegistration runs the sequence against an in-memory
// utility server over the HTTP transport with token authentication.
func TestE2E_HTTPRegistration(t *testing.T) {
	var mu sync.Mutex
	var seenPaths []string
	nextEndDevice := 0
	nextDER := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		seenPaths = append(seenPaths, r.Method+" "+r.URL.Path)

		if r.Header.Get("X-Token") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.Body != nil {
			defer r.Body.Close()
		}

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/edev":
			nextEndDevice++
			w.Header().Set("Location", fmt.Sprintf("/edev/%d", nextEndDevice))
			w.WriteHeader(http.StatusCreated)
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/der"):
			nextDER++
			w.Header().Set("Location", fmt.Sprintf("%s/%d", r.URL.Path, nextDER))
			w.WriteHeader(http.StatusCreated)
		case r.Method == http.MethodPut:
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	lfdi, err := identity.ParseLFDI("0x21352135135")
	if err != nil {
		t.Fatalf("ParseLFDI failed: %v", err)
	}

	tr, err := transport.NewHTTPTransport(&transport.HTTPConfig{
		BaseURL: server.URL,
		Auth:    transport.XTokenAuth{LFDI: lfdi},
	})
	if err != nil {
		t.Fatalf("Failed to create transport: %v", err)
	}

	registrar, err := registration.NewRegistrar(&registration.Config{Transport: tr})
	if err != nil {
		t.Fatalf("Failed to create registrar: %v", err)
	}

	result, err := registrar.Register(context.Background(), e2eDevice(t, "0x21352135135", "4102335710"))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if result.EndDeviceID != "1" || result.DERID != "1" {
		t.Errorf("result IDs = (%s, %s), want (1, 1)", result.EndDeviceID, result.DERID)
	}

	want := []string{
		"POST /edev",
		"PUT /edev/1/di",
		"POST /edev/1/der",
		"PUT /edev/1/der/1/dercap",
		"PUT /edev/1/cp",
	}
	mu.Lock()
	defer mu.Unlock()
	if len(seenPaths) != len(want) {
		t.Fatalf("server saw %d requests (%v), want %d", len(seenPaths), seenPaths, len(want))
	}
	for i, w := range want {
		if seenPaths[i] != w {
			t.Errorf("request %d = %q, want %q", i, seenPaths[i], w)
		}
	}
}
