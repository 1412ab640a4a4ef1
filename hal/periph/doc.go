// Package periph implements the projector Bus and PowerLine on Linux hosts
// through periph.io.
//
// The engine sits on an I2C bus at address 0x77. Its supply is switched by a
// GPIO output, and it raises a second GPIO while a notification is waiting.
// An I2C read always returns a full buffer, even from an idle engine, so
// Receive only reads the bus while that line is high; the line is required.
package periph
