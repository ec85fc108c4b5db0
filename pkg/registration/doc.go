// Package registration runs the device onboarding sequence against a
// 2030.5 utility server.
//
// Registration is a linear state machine. Each stage publishes one
// resource and the sequence only advances on the exact expected
// outcome:
//
//	NotStarted
//	  POST /edev                      → 201 + Location
//	EndDeviceCreated
//	  PUT  /edev/{id}/di              → 200
//	DeviceInformationSet
//	  POST /edev/{id}/der             → 201 + Location
//	DERCreated
//	  PUT  /edev/{id}/der/{der}/dercap → 200
//	DERCapabilitySet
//	  PUT  /edev/{id}/cp              → 200
//	ConnectionPointSet = Complete
//
// Server-assigned resource IDs are extracted from Location headers and
// threaded into the paths of later stages. Any other outcome halts the
// run in place; the returned Error names the stage that was not
// reached. There is no automatic retry.
package registration
