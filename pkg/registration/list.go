package registration

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sep2-protocol/sep2-go/pkg/model"
	"github.com/sep2-protocol/sep2-go/pkg/transport"
	"github.com/sep2-protocol/sep2-go/pkg/wire"
)

// DefaultPageSize is the page length requested when a pager is created
// with a non-positive page size.
const DefaultPageSize = 10

// ListEndDevices fetches one page of the server's EndDevice collection,
// starting at offset start with at most limit entries.
func (r *Registrar) ListEndDevices(ctx context.Context, start, limit int) (*model.EndDeviceList, error) {
	path := fmt.Sprintf("/edev?s=%d&l=%d", start, limit)

	resp, err := r.transport.Send(ctx, transport.Request{Method: http.MethodGet, Path: path})
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &ProtocolError{
			Method: http.MethodGet,
			Path:   path,
			Status: resp.StatusCode,
			Reason: "want 200",
		}
	}

	var list model.EndDeviceList
	if err := wire.Unmarshal(resp.Body, &list); err != nil {
		return nil, &ProtocolError{
			Method: http.MethodGet,
			Path:   path,
			Status: resp.StatusCode,
			Reason: "undecodable EndDeviceList",
			Err:    err,
		}
	}
	return &list, nil
}

// EndDevicePager walks the server's EndDevice collection page by page.
// Not safe for concurrent use; create one pager per walk.
type EndDevicePager struct {
	registrar *Registrar
	pageSize  int
	start     int
	done      bool
}

// EndDevices returns a pager over the server's EndDevice collection.
func (r *Registrar) EndDevices(pageSize int) *EndDevicePager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &EndDevicePager{
		registrar: r,
		pageSize:  pageSize,
	}
}

// Next returns the next page of devices. An empty page with a nil error
// means the collection is exhausted.
func (p *EndDevicePager) Next(ctx context.Context) ([]model.EndDevice, error) {
	if p.done {
		return nil, nil
	}

	list, err := p.registrar.ListEndDevices(ctx, p.start, p.pageSize)
	if err != nil {
		return nil, err
	}

	p.start += len(list.EndDevices)
	if len(list.EndDevices) < p.pageSize || p.start >= list.All {
		p.done = true
	}
	return list.EndDevices, nil
}
