package registration

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sep2-protocol/sep2-go/pkg/transport"
)

func listResponse(body string) *transport.Response {
	h := http.Header{}
	h.Set("Content-Type", transport.ContentType)
	return &transport.Response{StatusCode: http.StatusOK, Header: h, Body: []byte(body)}
}

func TestListEndDevices(t *testing.T) {
	var gotPath string
	tr := transportFunc(func(ctx context.Context, req transport.Request) (*transport.Response, error) {
		gotPath = req.Path
		return listResponse(`<EndDeviceList all="1" results="1"><EndDevice><deviceCategory>2097152</deviceCategory><lFDI>21352135135</lFDI><sFDI>089140805933</sFDI><changedTime>1700000000</changedTime><postRate>0</postRate><enabled>true</enabled></EndDevice></EndDeviceList>`), nil
	})

	r := newTestRegistrar(t, tr)
	list, err := r.ListEndDevices(context.Background(), 0, 5)
	require.NoError(t, err)

	assert.Equal(t, "/edev?s=0&l=5", gotPath)
	assert.Equal(t, 1, list.All)
	require.Len(t, list.EndDevices, 1)
	assert.Equal(t, "21352135135", list.EndDevices[0].LFDI.String())
}

func TestListEndDevicesRejectsErrorStatus(t *testing.T) {
	tr := transportFunc(func(ctx context.Context, req transport.Request) (*transport.Response, error) {
		return &transport.Response{StatusCode: http.StatusForbidden, Header: http.Header{}}, nil
	})

	r := newTestRegistrar(t, tr)
	_, err := r.ListEndDevices(context.Background(), 0, 5)
	require.Error(t, err)

	var perr *ProtocolError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, http.StatusForbidden, perr.Status)
}

func TestEndDevicePager(t *testing.T) {
	pages := map[string]string{
		"/edev?s=0&l=2": `<EndDeviceList all="3" results="2"><EndDevice><lFDI>aaaaaaaaa</lFDI></EndDevice><EndDevice><lFDI>bbbbbbbbb</lFDI></EndDevice></EndDeviceList>`,
		"/edev?s=2&l=2": `<EndDeviceList all="3" results="1"><EndDevice><lFDI>ccccccccc</lFDI></EndDevice></EndDeviceList>`,
	}

	var paths []string
	tr := transportFunc(func(ctx context.Context, req transport.Request) (*transport.Response, error) {
		paths = append(paths, req.Path)
		body, ok := pages[req.Path]
		if !ok {
			t.Errorf("unexpected request path %q", req.Path)
			return &transport.Response{StatusCode: http.StatusNotFound, Header: http.Header{}}, nil
		}
		return listResponse(body), nil
	})

	r := newTestRegistrar(t, tr)
	pager := r.EndDevices(2)
	ctx := context.Background()

	first, err := pager.Next(ctx)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "aaaaaaaaa", first[0].LFDI.String())

	second, err := pager.Next(ctx)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "ccccccccc", second[0].LFDI.String())

	// Exhausted: no further requests go out.
	third, err := pager.Next(ctx)
	require.NoError(t, err)
	assert.Empty(t, third)
	assert.Equal(t, []string{"/edev?s=0&l=2", "/edev?s=2&l=2"}, paths)
}

func TestEndDevicePagerEmptyCollection(t *testing.T) {
	rec := transport.NewRecordingTransport(nil)
	r := newTestRegistrar(t, rec)

	pager := r.EndDevices(0)
	page, err := pager.Next(context.Background())
	require.NoError(t, err)
	assert.Empty(t, page)

	// The recording transport always answers with an empty list.
	reqs := rec.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/edev?s=0&l=10", reqs[0].Path)

	page, err = pager.Next(context.Background())
	require.NoError(t, err)
	assert.Empty(t, page)
	assert.Len(t, rec.Requests(), 1)
}
