package periph

import (
	"errors"
	"strings"
	"testing"
	"time"

	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpiotest"
	"periph.io/x/periph/conn/i2c/i2ctest"
	"periph.io/x/periph/conn/physic"

	"github.com/scatwang/cxn010x/projector"
	"github.com/scatwang/cxn010x/protocol"
)

// newNotify returns a notify line over a test pin at the given level.
func newNotify(t *testing.T, level gpio.Level) (*NotifyLine, *gpiotest.Pin) {
	t.Helper()
	pin := &gpiotest.Pin{N: "NOTIFY", Num: 27, L: level, EdgesChan: make(chan gpio.Level, 1)}
	line, err := NewNotifyLine(pin)
	if err != nil {
		t.Fatalf("NewNotifyLine() error = %v", err)
	}
	return line, pin
}

func TestBusSendReceive(t *testing.T) {
	pb := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: protocol.DefaultAddress, W: []byte{0x01, 0x00}},
			{Addr: protocol.DefaultAddress, R: []byte{0x01, 0x01, 0x00}},
		},
		DontPanic: true,
	}

	line, _ := newNotify(t, gpio.High)
	bus, err := NewBus(pb, line, WithSpeed(400*physic.KiloHertz))
	if err != nil {
		t.Fatalf("NewBus() error = %v", err)
	}

	if err := bus.Send(protocol.DefaultAddress, []byte{0x01, 0x00}); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	buf := make([]byte, 3)
	n, err := bus.Receive(protocol.DefaultAddress, buf)
	if err != nil {
		t.Fatalf("Receive() error = %v", err)
	}
	if n != 3 || buf[0] != 0x01 || buf[1] != 0x01 || buf[2] != 0x00 {
		t.Errorf("Receive() = %d, % X", n, buf)
	}

	if err := pb.Close(); err != nil {
		t.Errorf("playback not drained: %v", err)
	}
}

func TestBusSendMismatch(t *testing.T) {
	pb := &i2ctest.Playback{
		Ops:       []i2ctest.IO{{Addr: protocol.DefaultAddress, W: []byte{0x02, 0x00}}},
		DontPanic: true,
	}
	line, _ := newNotify(t, gpio.Low)
	bus, err := NewBus(pb, line)
	if err != nil {
		t.Fatal(err)
	}

	if err := bus.Send(protocol.DefaultAddress, []byte{0x01, 0x00}); err == nil {
		t.Error("expected error for unexpected write")
	}
}

func TestNewBusRequiresArguments(t *testing.T) {
	line, _ := newNotify(t, gpio.Low)

	if _, err := NewBus(nil, line); err == nil {
		t.Error("expected error for nil bus")
	}
	if _, err := NewBus(&i2ctest.Playback{DontPanic: true}, nil); err == nil {
		t.Error("expected error for nil notify line")
	}
}

func TestIdleBusReadIsNotANotification(t *testing.T) {
	// An idle engine still answers a read, with zeros that look like a boot.
	pb := &i2ctest.Playback{
		Ops:       []i2ctest.IO{{Addr: protocol.DefaultAddress, R: make([]byte, protocol.MaxNotificationSize)}},
		DontPanic: true,
	}
	line, _ := newNotify(t, gpio.Low)
	bus, err := NewBus(pb, line)
	if err != nil {
		t.Fatal(err)
	}
	power, err := NewPower(&gpiotest.Pin{N: "POWER"}, false)
	if err != nil {
		t.Fatal(err)
	}

	p := projector.New(bus, power)
	kind, err := p.CheckNotification()

	if err != nil || kind != protocol.KindNone {
		t.Errorf("CheckNotification() = %s, %v, want none, nil", kind, err)
	}
	if p.State() != projector.StatePowerOff {
		t.Errorf("state = %s, want %s", p.State(), projector.StatePowerOff)
	}
	if pb.Count != 0 {
		t.Errorf("bus transactions = %d, want 0", pb.Count)
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		s       Settings
		wantErr string
	}{
		{"complete", Settings{PowerPin: "GPIO17", NotifyPin: "GPIO27"}, ""},
		{"no power pin", Settings{NotifyPin: "GPIO27"}, "power pin is required"},
		{"no notify pin", Settings{PowerPin: "GPIO17"}, "notify pin is required"},
		{"negative speed", Settings{PowerPin: "GPIO17", NotifyPin: "GPIO27", Speed: -1}, "negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestOpenRejectsMissingNotifyPin(t *testing.T) {
	dev, err := Open(Settings{BusName: "1", PowerPin: "GPIO17"})
	if err == nil {
		_ = dev.Close()
		t.Fatal("expected error without a notify pin")
	}
	if !strings.Contains(err.Error(), "notify pin is required") {
		t.Errorf("error = %v", err)
	}
}

func TestBusGatedByNotifyLine(t *testing.T) {
	line, pin := newNotify(t, gpio.Low)

	pb := &i2ctest.Playback{
		Ops:       []i2ctest.IO{{Addr: protocol.DefaultAddress, R: []byte{0xA0, 0x01, 0x00, 0x2A}}},
		DontPanic: true,
	}
	bus, err := NewBus(pb, line)
	if err != nil {
		t.Fatal(err)
	}

	buf := make([]byte, 4)
	if n, err := bus.Receive(protocol.DefaultAddress, buf); n != 0 || err != nil {
		t.Fatalf("Receive() with line low = %d, %v, want 0, nil", n, err)
	}

	if err := pin.Out(gpio.High); err != nil {
		t.Fatal(err)
	}
	if n, err := bus.Receive(protocol.DefaultAddress, buf); n != 4 || err != nil {
		t.Fatalf("Receive() with line high = %d, %v, want 4, nil", n, err)
	}

	if err := pb.Close(); err != nil {
		t.Errorf("playback not drained: %v", err)
	}
}

func TestNotifyLineWait(t *testing.T) {
	pin := &gpiotest.Pin{N: "NOTIFY", Num: 27, EdgesChan: make(chan gpio.Level, 1)}
	line, err := NewNotifyLine(pin)
	if err != nil {
		t.Fatal(err)
	}

	if line.Wait(time.Millisecond) {
		t.Error("Wait() = true with no edge")
	}

	pin.EdgesChan <- gpio.High
	if !line.Wait(time.Second) {
		t.Error("Wait() = false after an edge")
	}
	if !line.Pending() {
		t.Error("Pending() = false after a rising edge")
	}
}

func TestPower(t *testing.T) {
	tests := []struct {
		name      string
		activeLow bool
		on        bool
		want      gpio.Level
	}{
		{"active high on", false, true, gpio.High},
		{"active high off", false, false, gpio.Low},
		{"active low on", true, true, gpio.Low},
		{"active low off", true, false, gpio.High},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pin := &gpiotest.Pin{N: "POWER", Num: 17, L: !tt.want}
			power, err := NewPower(pin, tt.activeLow)
			if err != nil {
				t.Fatal(err)
			}

			if err := power.SetPower(tt.on); err != nil {
				t.Fatalf("SetPower() error = %v", err)
			}
			if pin.Read() != tt.want {
				t.Errorf("level = %s, want %s", pin.Read(), tt.want)
			}
		})
	}
}

func TestNilPins(t *testing.T) {
	if _, err := NewPower(nil, false); err == nil {
		t.Error("expected error for nil power pin")
	}
	if _, err := NewNotifyLine(nil); err == nil {
		t.Error("expected error for nil notify pin")
	}
}

func TestProjectorOverI2C(t *testing.T) {
	pb := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: protocol.DefaultAddress, W: []byte{0xA0, 0x00}},
			{Addr: protocol.DefaultAddress, R: []byte{0xA0, 0x01, 0x00, 0x2A}},
		},
		DontPanic: true,
	}
	line, pin := newNotify(t, gpio.Low)
	bus, err := NewBus(pb, line)
	if err != nil {
		t.Fatal(err)
	}
	power, err := NewPower(&gpiotest.Pin{N: "POWER"}, false)
	if err != nil {
		t.Fatal(err)
	}

	p := projector.New(bus, power, projector.WithNotificationSize(4))

	var got []int8
	if err := p.GetTemperature(func(c int8) { got = append(got, c) }); err != nil {
		t.Fatalf("GetTemperature() error = %v", err)
	}
	if err := pin.Out(gpio.High); err != nil {
		t.Fatal(err)
	}
	kind, err := p.CheckNotification()
	if err != nil {
		t.Fatalf("CheckNotification() error = %v", err)
	}
	if kind != protocol.KindTemperature {
		t.Errorf("kind = %s, want %s", kind, protocol.KindTemperature)
	}
	if len(got) != 1 || got[0] != 42 {
		t.Errorf("callback = %v, want [42]", got)
	}

	if err := pb.Close(); err != nil {
		t.Errorf("playback not drained: %v", err)
	}
}

func TestProjectorSendFailure(t *testing.T) {
	pb := &i2ctest.Playback{DontPanic: true}
	line, _ := newNotify(t, gpio.Low)
	bus, err := NewBus(pb, line)
	if err != nil {
		t.Fatal(err)
	}
	power, err := NewPower(&gpiotest.Pin{N: "POWER"}, false)
	if err != nil {
		t.Fatal(err)
	}

	p := projector.New(bus, power)
	err = p.StartInput()

	var terr *projector.TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("StartInput() error = %v, want *projector.TransportError", err)
	}
}
