// This file is part of PadTest.
//
// PadTest is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PadTest is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with PadTest.  If not, see <https://www.gnu.org/licenses/>.

package pad

// Device is an open connection to a physical controller
type Device interface {
	Controller

	// Name is the human readable name of the device
	Name() string

	// InstanceID is the identifier the platform reports in device-removed
	// events for this device
	InstanceID() int32

	// Rumble issues a haptic command to the device
	Rumble(lowFreq uint16, highFreq uint16, durationMs uint32) error

	// Close the connection to the device
	Close()
}

// Opener opens the device at the numbered index. the index is only meaningful
// at the moment the corresponding device-added event is serviced
type Opener interface {
	Open(index int) (Device, error)
}

// Binding maintains the rule that at most one device is open at any time.
// it is not safe for concurrent use, in keeping with the single-threaded
// polling model of the visualizer loop
type Binding struct {
	opener Opener
	device Device
}

// NewBinding is the preferred method of initialisation for the Binding type
func NewBinding(opener Opener) *Binding {
	return &Binding{opener: opener}
}

// Device currently bound. returns nil if no device is open
func (bnd *Binding) Device() Device {
	return bnd.device
}

// Connect services a device-added event. if a device is already open the
// event is ignored and nil is returned. otherwise the indexed device is
// opened and returned. an open failure leaves the binding empty
func (bnd *Binding) Connect(index int) (Device, error) {
	if bnd.device != nil {
		return nil, nil
	}

	d, err := bnd.opener.Open(index)
	if err != nil {
		return nil, err
	}

	bnd.device = d
	return d, nil
}

// Disconnect services a device-removed event. if the instance id does not
// match the open device (or no device is open) nothing happens. otherwise
// the device is closed and device index zero is reopened as a best-effort
// fallback. the fallback is not necessarily the same physical device
//
// the replacement device is returned, or nil if the binding is now empty or
// was never affected
func (bnd *Binding) Disconnect(instanceID int32) Device {
	if bnd.device == nil || bnd.device.InstanceID() != instanceID {
		return nil
	}

	bnd.device.Close()
	bnd.device = nil

	if d, err := bnd.opener.Open(0); err == nil {
		bnd.device = d
		return d
	}

	return nil
}

// Close the binding, releasing any open device
func (bnd *Binding) Close() {
	if bnd.device != nil {
		bnd.device.Close()
		bnd.device = nil
	}
}
