package registration

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sep2-protocol/sep2-go/pkg/log"
	"github.com/sep2-protocol/sep2-go/pkg/model"
	"github.com/sep2-protocol/sep2-go/pkg/transport"
	"github.com/sep2-protocol/sep2-go/pkg/wire"
)

// Config holds configuration for a Registrar.
type Config struct {
	// Transport submits the protocol requests. Required.
	Transport transport.Transport

	// Logger receives protocol events. Nil means no logging.
	Logger log.Logger
}

// Registrar runs registration sequences over one shared transport. It
// is safe for concurrent use; every Register call is an independent
// run with its own ID threading.
type Registrar struct {
	transport transport.Transport
	logger    log.Logger
}

// NewRegistrar creates a registrar over the given transport.
func NewRegistrar(cfg *Config) (*Registrar, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.Transport == nil {
		return nil, fmt.Errorf("transport is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NoopLogger{}
	}
	return &Registrar{
		transport: cfg.Transport,
		logger:    logger,
	}, nil
}

// Result carries the server-assigned identifiers of a completed run.
type Result struct {
	// RunID is the UUID identifying this run in the protocol log.
	RunID string

	// EndDeviceID is the server-assigned EndDevice resource ID.
	EndDeviceID string

	// DERID is the server-assigned DER resource ID.
	DERID string
}

// run carries the per-run identity attached to every log event.
type run struct {
	id   string
	lfdi string
}

// Register performs the full onboarding sequence for one device. The
// device is validated before the first request; an invalid device
// returns a *model.ValidationError and nothing is sent. Any failure
// after that halts the run in place and returns an *Error naming the
// stage that was not reached.
func (r *Registrar) Register(ctx context.Context, dev *model.Device) (*Result, error) {
	if err := dev.Validate(); err != nil {
		return nil, err
	}

	run := &run{
		id:   uuid.NewString(),
		lfdi: dev.EndDevice.LFDI.String(),
	}

	resp, err := r.step(ctx, run, StageEndDeviceCreated, http.MethodPost, "/edev", &dev.EndDevice, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	endDeviceID, err := r.locationID(run, StageEndDeviceCreated, http.MethodPost, "/edev", resp)
	if err != nil {
		return nil, err
	}
	r.stageEvent(run, StageEndDeviceCreated)

	diPath := fmt.Sprintf("/edev/%s/di", endDeviceID)
	if _, err := r.step(ctx, run, StageDeviceInformationSet, http.MethodPut, diPath, &dev.Information, http.StatusOK); err != nil {
		return nil, err
	}
	r.stageEvent(run, StageDeviceInformationSet)

	derPath := fmt.Sprintf("/edev/%s/der", endDeviceID)
	resp, err = r.step(ctx, run, StageDERCreated, http.MethodPost, derPath, &dev.DER, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	derID, err := r.locationID(run, StageDERCreated, http.MethodPost, derPath, resp)
	if err != nil {
		return nil, err
	}
	r.stageEvent(run, StageDERCreated)

	capPath := fmt.Sprintf("/edev/%s/der/%s/dercap", endDeviceID, derID)
	if _, err := r.step(ctx, run, StageDERCapabilitySet, http.MethodPut, capPath, &dev.DER.Capability, http.StatusOK); err != nil {
		return nil, err
	}
	r.stageEvent(run, StageDERCapabilitySet)

	cpPath := fmt.Sprintf("/edev/%s/cp", endDeviceID)
	if _, err := r.step(ctx, run, StageConnectionPointSet, http.MethodPut, cpPath, &dev.ConnectionPoint, http.StatusOK); err != nil {
		return nil, err
	}
	r.stageEvent(run, StageConnectionPointSet)
	r.stageEvent(run, StageComplete)

	return &Result{
		RunID:       run.id,
		EndDeviceID: endDeviceID,
		DERID:       derID,
	}, nil
}

// RegisterSelf registers the aggregator's own EndDevice, without device
// information, DER, or connection point sub-resources. It returns the
// server-assigned resource ID.
func (r *Registrar) RegisterSelf(ctx context.Context, edev *model.EndDevice) (string, error) {
	if err := edev.Validate(); err != nil {
		return "", err
	}

	run := &run{
		id:   uuid.NewString(),
		lfdi: edev.LFDI.String(),
	}

	resp, err := r.step(ctx, run, StageEndDeviceCreated, http.MethodPost, "/edev", edev, http.StatusCreated)
	if err != nil {
		return "", err
	}
	id, err := r.locationID(run, StageEndDeviceCreated, http.MethodPost, "/edev", resp)
	if err != nil {
		return "", err
	}
	r.stageEvent(run, StageEndDeviceCreated)
	r.stageEvent(run, StageComplete)
	return id, nil
}

// RegisterAll registers devices in order, stopping at the first
// failure. It returns the results of the runs that completed; when an
// error is returned, len(results) names how many devices finished.
func (r *Registrar) RegisterAll(ctx context.Context, devices []*model.Device) ([]*Result, error) {
	results := make([]*Result, 0, len(devices))
	for _, dev := range devices {
		result, err := r.Register(ctx, dev)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

// step marshals a resource, submits it, and verifies the status code.
// Failures come back wrapped in an *Error naming the target stage.
func (r *Registrar) step(ctx context.Context, run *run, stage Stage, method, path string, doc wire.Document, wantStatus int) (*transport.Response, error) {
	body, err := wire.Marshal(doc)
	if err != nil {
		return nil, &Error{Stage: stage, Err: err}
	}

	r.event(log.Event{
		RunID:     run.id,
		Direction: log.DirectionOut,
		Category:  log.CategoryRequest,
		Stage:     stage.String(),
		Method:    method,
		Path:      path,
		LFDI:      run.lfdi,
	})

	resp, err := r.transport.Send(ctx, transport.Request{Method: method, Path: path, Body: body})
	if err != nil {
		r.errorEvent(run, stage, err)
		return nil, &Error{Stage: stage, Err: err}
	}

	r.event(log.Event{
		RunID:     run.id,
		Direction: log.DirectionIn,
		Category:  log.CategoryResponse,
		Stage:     stage.String(),
		Method:    method,
		Path:      path,
		Status:    resp.StatusCode,
		LFDI:      run.lfdi,
	})

	if resp.StatusCode != wantStatus {
		perr := &ProtocolError{
			Method: method,
			Path:   path,
			Status: resp.StatusCode,
			Reason: fmt.Sprintf("want %d", wantStatus),
		}
		r.errorEvent(run, stage, perr)
		return nil, &Error{Stage: stage, Err: perr}
	}
	return resp, nil
}

// locationID extracts the server-assigned resource ID from a creation
// response.
func (r *Registrar) locationID(run *run, stage Stage, method, path string, resp *transport.Response) (string, error) {
	id, err := wire.TrailingResourceID(resp.Location())
	if err != nil {
		perr := &ProtocolError{
			Method: method,
			Path:   path,
			Status: resp.StatusCode,
			Reason: "unusable Location header",
			Err:    err,
		}
		r.errorEvent(run, stage, perr)
		return "", &Error{Stage: stage, Err: perr}
	}
	return id, nil
}

func (r *Registrar) stageEvent(run *run, stage Stage) {
	r.event(log.Event{
		RunID:     run.id,
		Direction: log.DirectionIn,
		Category:  log.CategoryStage,
		Stage:     stage.String(),
		LFDI:      run.lfdi,
	})
}

func (r *Registrar) errorEvent(run *run, stage Stage, err error) {
	r.event(log.Event{
		RunID:     run.id,
		Direction: log.DirectionIn,
		Category:  log.CategoryError,
		Stage:     stage.String(),
		LFDI:      run.lfdi,
		Error:     err.Error(),
	})
}

func (r *Registrar) event(e log.Event) {
	e.Timestamp = time.Now()
	r.logger.Log(e)
}
