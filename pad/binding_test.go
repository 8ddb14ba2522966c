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

package pad_test

import (
	"testing"

	"github.com/jetsetilly/padtest/curated"
	"github.com/jetsetilly/padtest/pad"
	"github.com/jetsetilly/padtest/test"
)

// mockDevice implements the pad.Device interface
type mockDevice struct {
	mockController
	name     string
	instance int32
	closed   bool
}

func (d *mockDevice) Name() string {
	return d.name
}

func (d *mockDevice) InstanceID() int32 {
	return d.instance
}

func (d *mockDevice) Rumble(lowFreq uint16, highFreq uint16, durationMs uint32) error {
	return nil
}

func (d *mockDevice) Close() {
	d.closed = true
}

const openError = "open: no device at index %d"

// mockOpener implements the pad.Opener interface over a fixed set of devices
type mockOpener struct {
	devices map[int]*mockDevice
}

func (o *mockOpener) Open(index int) (pad.Device, error) {
	d, ok := o.devices[index]
	if !ok {
		return nil, curated.Errorf(openError, index)
	}
	return d, nil
}

func TestAtMostOneDevice(t *testing.T) {
	first := &mockDevice{name: "first", instance: 100}
	second := &mockDevice{name: "second", instance: 101}
	opener := &mockOpener{devices: map[int]*mockDevice{0: first, 1: second}}

	bnd := pad.NewBinding(opener)
	test.ExpectEquality(t, bnd.Device(), nil)

	// first device-added event binds the device
	d, err := bnd.Connect(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, pad.Device(first))
	test.ExpectEquality(t, bnd.Device(), pad.Device(first))

	// a second device-added event while a device is bound is ignored
	d, err = bnd.Connect(1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, nil)
	test.ExpectEquality(t, bnd.Device(), pad.Device(first))
}

func TestConnectFailure(t *testing.T) {
	opener := &mockOpener{devices: map[int]*mockDevice{}}

	bnd := pad.NewBinding(opener)
	d, err := bnd.Connect(0)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, openError))
	test.ExpectEquality(t, d, nil)
	test.ExpectEquality(t, bnd.Device(), nil)
}

func TestDisconnectNonOpenDevice(t *testing.T) {
	first := &mockDevice{name: "first", instance: 100}
	opener := &mockOpener{devices: map[int]*mockDevice{0: first}}

	bnd := pad.NewBinding(opener)
	_, err := bnd.Connect(0)
	test.DemandSuccess(t, err)

	// a device-removed event for an instance we haven't opened is a no-op
	d := bnd.Disconnect(999)
	test.ExpectEquality(t, d, nil)
	test.ExpectEquality(t, bnd.Device(), pad.Device(first))
	test.ExpectFailure(t, first.closed)
}

func TestDisconnectWithFallback(t *testing.T) {
	first := &mockDevice{name: "first", instance: 100}
	second := &mockDevice{name: "second", instance: 101}
	opener := &mockOpener{devices: map[int]*mockDevice{0: first, 1: second}}

	bnd := pad.NewBinding(opener)
	_, err := bnd.Connect(0)
	test.DemandSuccess(t, err)

	// removing the open device closes it and reopens device index zero.
	// index zero now refers to the remaining device
	opener.devices = map[int]*mockDevice{0: second}
	d := bnd.Disconnect(100)
	test.ExpectSuccess(t, first.closed)
	test.ExpectEquality(t, d, pad.Device(second))
	test.ExpectEquality(t, bnd.Device(), pad.Device(second))
}

func TestDisconnectWithoutFallback(t *testing.T) {
	first := &mockDevice{name: "first", instance: 100}
	opener := &mockOpener{devices: map[int]*mockDevice{0: first}}

	bnd := pad.NewBinding(opener)
	_, err := bnd.Connect(0)
	test.DemandSuccess(t, err)

	// the only device has been unplugged. the binding is left empty and
	// that's fine
	opener.devices = map[int]*mockDevice{}
	d := bnd.Disconnect(100)
	test.ExpectSuccess(t, first.closed)
	test.ExpectEquality(t, d, nil)
	test.ExpectEquality(t, bnd.Device(), nil)
}

func TestBindingClose(t *testing.T) {
	first := &mockDevice{name: "first", instance: 100}
	opener := &mockOpener{devices: map[int]*mockDevice{0: first}}

	bnd := pad.NewBinding(opener)
	_, err := bnd.Connect(0)
	test.DemandSuccess(t, err)

	bnd.Close()
	test.ExpectSuccess(t, first.closed)
	test.ExpectEquality(t, bnd.Device(), nil)

	// closing an empty binding is harmless
	bnd.Close()
}
