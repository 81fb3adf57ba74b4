package wire

import (
	"errors"
	"reflect"
	"testing"
)

func TestMessageRoundTrip(t *testing.T) {
	opts := BuildOptions{
		Target:      Target{0xd0, 0x73, 0xd5, 0x02, 0x97, 0xde},
		AckRequired: true,
		ResRequired: true,
		Sequence:    200,
		Source:      0xcafe,
	}
	for _, msg := range roundTripMessages {
		buf, err := EncodeMessage(opts, msg)
		if err != nil {
			t.Fatalf("%T: EncodeMessage: %v", msg, err)
		}
		raw, got, err := DecodeMessage(buf)
		if err != nil {
			t.Fatalf("%T: DecodeMessage: %v", msg, err)
		}
		if !reflect.DeepEqual(got, msg) {
			t.Errorf("%T: message mismatch:\n got  %+v\n want %+v", msg, got, msg)
		}
		if raw.Frame.Size != uint16(len(buf)) {
			t.Errorf("%T: frame size = %d, want %d", msg, raw.Frame.Size, len(buf))
		}
		if raw.FrameAddress.Target != opts.Target ||
			raw.FrameAddress.Sequence != opts.Sequence ||
			!raw.FrameAddress.AckRequired || !raw.FrameAddress.ResRequired {
			t.Errorf("%T: frame address mismatch: %+v", msg, raw.FrameAddress)
		}
		if raw.Frame.Source != opts.Source {
			t.Errorf("%T: source = %#x, want %#x", msg, raw.Frame.Source, opts.Source)
		}
	}
}

func TestBroadcastRoundTrip(t *testing.T) {
	buf, err := EncodeMessage(OptionsFor(AllDevices), GetService{})
	if err != nil {
		t.Fatalf("EncodeMessage: %v", err)
	}
	raw, msg, err := DecodeMessage(buf)
	if err != nil {
		t.Fatalf("DecodeMessage: %v", err)
	}
	if _, ok := msg.(GetService); !ok {
		t.Fatalf("decoded %T, want GetService", msg)
	}
	if raw.FrameAddress.Target != AllDevices {
		t.Errorf("target = %v, want the broadcast target", raw.FrameAddress.Target)
	}
	if !raw.Frame.Tagged {
		t.Error("broadcast frame not tagged")
	}
}

func TestOptionsFor(t *testing.T) {
	if opts := OptionsFor(AllDevices); !opts.Tagged {
		t.Error("broadcast options not tagged")
	}
	if opts := OptionsFor(Target{1, 2, 3, 4, 5, 6}); opts.Tagged {
		t.Error("unicast options tagged")
	}
}

func TestDecodeRawMessageTruncated(t *testing.T) {
	buf, err := EncodeMessage(OptionsFor(AllDevices), SetPower{Level: 65535})
	if err != nil {
		t.Fatalf("EncodeMessage: %v", err)
	}
	for cut := 0; cut < len(buf); cut++ {
		if _, err := DecodeRawMessage(buf[:cut]); !errors.Is(err, ErrTruncated) {
			t.Errorf("cut at %d: err = %v, want ErrTruncated", cut, err)
		}
	}
}

func TestDecodeRawMessageTrailingBytes(t *testing.T) {
	buf, err := EncodeMessage(OptionsFor(AllDevices), GetService{})
	if err != nil {
		t.Fatalf("EncodeMessage: %v", err)
	}
	_, err = DecodeRawMessage(append(buf, 0x00))
	if !errors.Is(err, ErrTrailingBytes) {
		t.Fatalf("err = %v, want ErrTrailingBytes", err)
	}
}

func TestDecodeRawMessageDeclaredTooSmall(t *testing.T) {
	buf, err := EncodeMessage(OptionsFor(AllDevices), GetService{})
	if err != nil {
		t.Fatalf("EncodeMessage: %v", err)
	}
	buf[0], buf[1] = 0x10, 0x00 // size field below the header size
	_, err = DecodeRawMessage(buf)
	if !errors.Is(err, ErrTrailingBytes) {
		t.Fatalf("err = %v, want ErrTrailingBytes", err)
	}
}

func TestDecodeMessageInvalidProtocol(t *testing.T) {
	buf, err := EncodeMessage(OptionsFor(AllDevices), GetService{})
	if err != nil {
		t.Fatalf("EncodeMessage: %v", err)
	}
	buf[3] &^= 0x04 // clear bit 10 of the protocol field
	if _, _, err := DecodeMessage(buf); !errors.Is(err, ErrInvalidProtocol) {
		t.Fatalf("err = %v, want ErrInvalidProtocol", err)
	}
}

func TestDecodeMessageUnknownTypeKeepsNothing(t *testing.T) {
	buf, err := EncodeMessage(OptionsFor(AllDevices), GetService{})
	if err != nil {
		t.Fatalf("EncodeMessage: %v", err)
	}
	buf[32], buf[33] = 0xff, 0x00 // type 255 is not in the supported set
	raw, msg, err := DecodeMessage(buf)
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("err = %v, want ErrUnknownType", err)
	}
	if raw != nil || msg != nil {
		t.Error("partial result returned alongside error")
	}
}

func TestDecodeRawMessagePayloadCopied(t *testing.T) {
	buf, err := EncodeMessage(OptionsFor(AllDevices), SetPower{Level: 65535})
	if err != nil {
		t.Fatalf("EncodeMessage: %v", err)
	}
	raw, err := DecodeRawMessage(buf)
	if err != nil {
		t.Fatalf("DecodeRawMessage: %v", err)
	}
	buf[36], buf[37] = 0, 0
	if raw.Payload[0] != 0xff || raw.Payload[1] != 0xff {
		t.Error("payload aliases the input buffer")
	}
}

func TestRawMessageEncodeRecomputesSize(t *testing.T) {
	raw, err := BuildRawMessage(OptionsFor(AllDevices), GetService{})
	if err != nil {
		t.Fatalf("BuildRawMessage: %v", err)
	}
	raw.Frame.Size = 9999
	buf, err := raw.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(buf) != HeaderSize {
		t.Fatalf("packet is %d bytes, want %d", len(buf), HeaderSize)
	}
	if buf[0] != HeaderSize || buf[1] != 0 {
		t.Errorf("size field = %d, want %d", uint16(buf[0])|uint16(buf[1])<<8, HeaderSize)
	}
}

func TestRawMessageEncodePayloadTooLarge(t *testing.T) {
	raw := &RawMessage{
		Frame:          Frame{Protocol: ProtocolNumber, Addressable: true},
		ProtocolHeader: ProtocolHeader{Type: TypeEchoRequest},
		Payload:        make([]byte, MaxPayloadSize+1),
	}
	if _, err := raw.Encode(); !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("err = %v, want ErrPayloadTooLarge", err)
	}
}
