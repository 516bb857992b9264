// Package cloud turns failures raised by cloud-provider operations into the
// uniform errors.CloudError that orchestration code understands.
//
// Helpers offers three operations:
//
//   - CloudError logs a message (and an optional cause) and returns a CloudError.
//   - FailOnError collapses a batch of errors, ignoring nils, into one CloudError.
//   - CatchError runs a unit of work and hands back whatever it failed with,
//     optionally prefixed, instead of propagating it.
//
// Provider code usually embeds a *Helpers:
//
//	type VolumeManager struct {
//	    *cloud.Helpers
//	    client Client
//	}
//
//	func (m *VolumeManager) Detach(serverID, volumeID string) error {
//	    errs := make([]error, 0, 2)
//	    errs = append(errs, m.CatchError("detach "+volumeID, func() error {
//	        return m.client.Detach(serverID, volumeID)
//	    }))
//	    errs = append(errs, m.CatchError("", m.client.Refresh))
//	    return m.FailOnError(errs...)
//	}
//
// Code without a Helpers value calls the package-level functions, which use
// the process default (see Default and SetDefault).
package cloud
