package protocol

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestParseNotification(t *testing.T) {
	tests := []struct {
		name        string
		frame       []byte
		wantKind    Kind
		wantPayload []byte
		wantErr     error
	}{
		{name: "boot", frame: []byte{0x00, 0x00, 0x00}, wantKind: KindBoot},
		{name: "start input ack", frame: []byte{0x01, 0x01, 0x00}, wantKind: KindStartInput},
		{name: "temperature", frame: []byte{0xA0, 0x01, 0x00, 0x2A}, wantKind: KindTemperature, wantPayload: []byte{0x2A}},
		{name: "trouble info cleared", frame: []byte{0xCB, 0x01, 0x00}, wantKind: KindTroubleInfoCleared},
		{name: "unknown opcode", frame: []byte{0x77, 0x01, 0x00}, wantKind: KindUnknown},
		{name: "too short", frame: []byte{0x01, 0x01}, wantErr: ErrShortFrame},
		{name: "empty", frame: nil, wantErr: ErrShortFrame},
		{name: "too large", frame: make([]byte, MaxNotificationSize+1), wantErr: ErrFrameTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ParseNotification(tt.frame)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", n.Kind, tt.wantKind)
			}
			if n.Opcode != tt.frame[0] {
				t.Errorf("Opcode = 0x%02X, want 0x%02X", n.Opcode, tt.frame[0])
			}
			if !bytes.Equal(n.Payload, tt.wantPayload) {
				t.Errorf("Payload = % X, want % X", n.Payload, tt.wantPayload)
			}
		})
	}
}

func TestKindOfCoversEveryOpcode(t *testing.T) {
	known := map[byte]Kind{
		0x00: KindBoot,
		0x01: KindStartInput,
		0x02: KindStopInput,
		0x0B: KindShutdown,
		0x10: KindEmergencyStop,
		0x11: KindTemperatureAlert,
		0x12: KindCommandError,
		0x27: KindOpticalAlignment,
		0x40: KindPictureQuality,
		0xA0: KindTemperature,
		0xA1: KindOperatingTime,
		0xCA: KindTroubleInfo,
		0xCB: KindTroubleInfoCleared,
	}

	for op := 0; op < 256; op++ {
		want, ok := known[byte(op)]
		if !ok {
			want = KindUnknown
		}
		if got := KindOf(byte(op)); got != want {
			t.Errorf("KindOf(0x%02X) = %v, want %v", op, got, want)
		}
	}
}

func TestIsAck(t *testing.T) {
	tests := []struct {
		frame []byte
		want  bool
	}{
		{frame: []byte{0x02, 0x01, 0x00}, want: true},
		{frame: []byte{0x02, 0x01, 0x01}, want: false},
		{frame: []byte{0x02, 0x00, 0x00}, want: false},
	}

	for _, tt := range tests {
		n, err := ParseNotification(tt.frame)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := IsAck(n); got != tt.want {
			t.Errorf("IsAck(% X) = %v, want %v", tt.frame, got, tt.want)
		}
	}
}

func TestDecodeBoot(t *testing.T) {
	tests := []struct {
		name    string
		status  byte
		want    BootStatus
		wantErr bool
	}{
		{name: "clean boot", status: 0x00, want: BootStatus{OK: true}},
		{name: "first fault", status: 0x80, want: BootStatus{Code: 0x80}},
		{name: "last fault", status: 0x84, want: BootStatus{Code: 0x84}},
		{name: "unknown status", status: 0x85, wantErr: true},
		{name: "low unknown status", status: 0x01, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, _ := ParseNotification([]byte{0x00, 0x00, tt.status})
			got, err := DecodeBoot(n)
			if tt.wantErr {
				var serr *StatusError
				if !errors.As(err, &serr) {
					t.Fatalf("error = %v, want *StatusError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DecodeBoot = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecodeEmergencyStop(t *testing.T) {
	tests := []struct {
		status  byte
		want    FaultClass
		wantErr bool
	}{
		{status: 0x80, want: FaultClassLaserSafety},
		{status: 0x81, want: FaultClassFirmware},
		{status: 0x82, want: FaultClassLaserAnomaly},
		{status: 0x83, want: FaultClassUnderflow},
		{status: 0x84, wantErr: true},
	}

	for _, tt := range tests {
		n, _ := ParseNotification([]byte{0x10, 0x01, tt.status})
		got, err := DecodeEmergencyStop(n)
		if tt.wantErr {
			if err == nil {
				t.Errorf("status 0x%02X: expected error", tt.status)
			}
			continue
		}
		if err != nil {
			t.Errorf("status 0x%02X: unexpected error %v", tt.status, err)
		}
		if got != tt.want {
			t.Errorf("status 0x%02X: class = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestDecodeTemperatureAlert(t *testing.T) {
	n, _ := ParseNotification([]byte{0x11, 0x01, 0x80})
	throttled, err := DecodeTemperatureAlert(n)
	if err != nil || !throttled {
		t.Errorf("alert: throttled = %v, err = %v", throttled, err)
	}

	n, _ = ParseNotification([]byte{0x11, 0x01, 0x00})
	throttled, err = DecodeTemperatureAlert(n)
	if err != nil || throttled {
		t.Errorf("recovery: throttled = %v, err = %v", throttled, err)
	}

	n, _ = ParseNotification([]byte{0x11, 0x02, 0x80})
	if _, err := DecodeTemperatureAlert(n); err == nil {
		t.Error("bad length: expected error")
	}
}

func TestDecodePictureQuality(t *testing.T) {
	frame := []byte{0x40, 0x0A, 0x00, 0xFD, 0x0C, 0x01, 0xFF, 0x02, 0xFE, 0x55, 0x05}
	n, err := ParseNotification(frame)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := DecodePictureQuality(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := PictureQuality{
		Contrast:    -3,
		Brightness:  12,
		HueU:        1,
		HueV:        -1,
		SaturationU: 2,
		SaturationV: -2,
		Sharpness:   5,
	}
	if got != want {
		t.Errorf("DecodePictureQuality = %+v, want %+v", got, want)
	}

	t.Run("wrong length byte", func(t *testing.T) {
		bad := append([]byte{}, frame...)
		bad[1] = 0x09
		n, _ := ParseNotification(bad)
		if _, err := DecodePictureQuality(n); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("truncated payload", func(t *testing.T) {
		n, _ := ParseNotification(frame[:8])
		_, err := DecodePictureQuality(n)
		if !errors.Is(err, ErrShortPayload) {
			t.Errorf("error = %v, want ErrShortPayload", err)
		}
	})
}

func TestDecodeOpticalAlignment(t *testing.T) {
	frame := []byte{0x27, 0x0E, 0x00}
	for i := 0; i < OpticalAlignmentSize; i++ {
		frame = append(frame, byte(i+1))
	}

	n, _ := ParseNotification(frame)
	got, err := DecodeOpticalAlignment(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0] != 1 || got[OpticalAlignmentSize-1] != OpticalAlignmentSize {
		t.Errorf("record = % X", got[:])
	}

	n, _ = ParseNotification(frame[:10])
	if _, err := DecodeOpticalAlignment(n); !errors.Is(err, ErrShortPayload) {
		t.Errorf("error = %v, want ErrShortPayload", err)
	}

	n, _ = ParseNotification([]byte{0x27, 0x0E, 0x01})
	if _, err := DecodeOpticalAlignment(n); err == nil {
		t.Error("failure status: expected error")
	}
}

func TestDecodeTemperature(t *testing.T) {
	tests := []struct {
		name    string
		frame   []byte
		want    int8
		wantErr bool
	}{
		{name: "positive", frame: []byte{0xA0, 0x01, 0x00, 0x2A}, want: 42},
		{name: "negative", frame: []byte{0xA0, 0x01, 0x00, 0xF6}, want: -10},
		{name: "zero", frame: []byte{0xA0, 0x01, 0x00, 0x00}, want: 0},
		{name: "missing value", frame: []byte{0xA0, 0x01, 0x00}, wantErr: true},
		{name: "failure status", frame: []byte{0xA0, 0x01, 0x01, 0x2A}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, _ := ParseNotification(tt.frame)
			got, err := DecodeTemperature(n)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DecodeTemperature = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDecodeOperatingTime(t *testing.T) {
	n, _ := ParseNotification([]byte{0xA1, 0x04, 0x00, 0x78, 0x56, 0x34, 0x12})
	got, err := DecodeOperatingTime(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0x12345678 {
		t.Errorf("DecodeOperatingTime = 0x%08X, want 0x12345678", got)
	}

	n, _ = ParseNotification([]byte{0xA1, 0x04, 0x00, 0x78, 0x56})
	if _, err := DecodeOperatingTime(n); !errors.Is(err, ErrShortPayload) {
		t.Errorf("error = %v, want ErrShortPayload", err)
	}
}

func TestKindString(t *testing.T) {
	if got := KindTemperatureAlert.String(); got != "temperature alert" {
		t.Errorf("String() = %q", got)
	}
	if got := Kind(99).String(); !strings.Contains(got, "99") {
		t.Errorf("String() = %q, want kind number", got)
	}
}
