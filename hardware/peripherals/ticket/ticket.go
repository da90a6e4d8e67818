// This file is part of Arcadecore.
//
// Arcadecore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Arcadecore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Arcadecore.  If not, see <https://www.gnu.org/licenses/>.

// Package ticket emulates the ticket dispenser found in redemption games.
//
// Writing the motor-on pattern to the dispenser starts the motor. While the
// motor is running the status bit toggles every TimeMsec milliseconds and a
// ticket is counted each time the status reaches the dispensed value. Writing
// the motor-off pattern stops the motor immediately.
package ticket

import (
	"fmt"

	"github.com/jetsetilly/arcadecore/environment"
	"github.com/jetsetilly/arcadecore/hardware/scheduler"
	"github.com/jetsetilly/arcadecore/logger"
)

// the bit in the data byte that drives the motor and reports the status.
const activeBit = 0x80

// Config for the ticket dispenser.
type Config struct {
	// time between status toggles
	TimeMsec float64

	// the motor is turned on when the active bit is high. otherwise the motor
	// is turned on when the bit is low
	MotorActiveHigh bool

	// the status bit is high when a ticket has been dispensed
	StatusActiveHigh bool
}

// Dispenser is the state of a single ticket dispenser.
type Dispenser struct {
	env *environment.Environment
	cfg Config

	motorOn     uint8
	dispensed   uint8
	undispensed uint8

	status uint8
	power  bool
	timer  scheduler.Handle

	count int

	// called when the indicator lamp changes
	lamp func(on bool)
}

// NewDispenser is the preferred method of initialisation for the Dispenser
// type.
func NewDispenser(env *environment.Environment, cfg Config) *Dispenser {
	d := &Dispenser{
		env: env,
		cfg: cfg,
	}

	if cfg.MotorActiveHigh {
		d.motorOn = activeBit
	}
	if cfg.StatusActiveHigh {
		d.dispensed = activeBit
	}
	d.undispensed = d.dispensed ^ activeBit

	d.status = d.undispensed

	return d
}

func (d *Dispenser) String() string {
	return fmt.Sprintf("status=%#02x power=%v dispensed=%d", d.status, d.power, d.count)
}

// SetLamp sets the function to be called when the indicator lamp changes.
func (d *Dispenser) SetLamp(f func(on bool)) {
	d.lamp = f
}

func (d *Dispenser) setLamp(on bool) {
	if d.lamp != nil {
		d.lamp(on)
	}
}

// Reset the dispenser. The motor is stopped and the ticket count is
// preserved.
func (d *Dispenser) Reset() {
	if d.power {
		d.env.Scheduler.Cancel(d.timer)
	}
	d.power = false
	d.status = d.undispensed
	d.setLamp(false)
}

// Read returns the status byte. Suitable for use as a bus.ReadHandler.
func (d *Dispenser) Read(_ uint16) uint8 {
	return d.status
}

// Write controls the motor. Suitable for use as a bus.WriteHandler.
func (d *Dispenser) Write(_ uint16, data uint8) {
	if data&activeBit == d.motorOn {
		if !d.power {
			d.timer = d.env.Scheduler.Schedule(scheduler.Msec(d.cfg.TimeMsec), d.toggle, 0)
			d.power = true
			d.status = d.undispensed
		}
		return
	}

	if d.power {
		d.env.Scheduler.Cancel(d.timer)
		d.setLamp(false)
		d.power = false
	}
}

// Dispensed returns the number of tickets dispensed since the dispenser was
// created.
func (d *Dispenser) Dispensed() int {
	return d.count
}

func (d *Dispenser) toggle(_ int) {
	if d.power {
		d.status ^= activeBit
		d.timer = d.env.Scheduler.Schedule(scheduler.Msec(d.cfg.TimeMsec), d.toggle, 0)
	}

	if d.status == d.dispensed {
		d.setLamp(true)
		d.count++
		logger.Logf(d.env, "ticket", "dispensed ticket %d", d.count)
	} else {
		d.setLamp(false)
	}
}
