package codec_test

import (
	"io"
	"testing"

	"github.com/cocosip/go-png-codec/codec"
	_ "github.com/cocosip/go-png-codec/png"
)

func TestDefaultRegistry(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		wantFound bool
		wantName  string
		wantType  string
	}{
		{
			name:      "Get png by name",
			key:       "png",
			wantFound: true,
			wantName:  "png",
			wantType:  "image/png",
		},
		{
			name:      "Get png by media type",
			key:       "image/png",
			wantFound: true,
			wantName:  "png",
			wantType:  "image/png",
		},
		{
			name:      "Get non-existent codec",
			key:       "non-existent",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := codec.Get(tt.key)

			if tt.wantFound {
				if err != nil {
					t.Errorf("Get(%q) unexpected error: %v", tt.key, err)
					return
				}
				if c == nil {
					t.Errorf("Get(%q) returned nil codec", tt.key)
					return
				}
				if c.Name() != tt.wantName {
					t.Errorf("Get(%q).Name() = %q, want %q", tt.key, c.Name(), tt.wantName)
				}
				if c.MediaType() != tt.wantType {
					t.Errorf("Get(%q).MediaType() = %q, want %q", tt.key, c.MediaType(), tt.wantType)
				}
			} else {
				if err == nil {
					t.Errorf("Get(%q) expected error, got nil", tt.key)
				}
				if err != codec.ErrCodecNotFound {
					t.Errorf("Get(%q) error = %v, want %v", tt.key, err, codec.ErrCodecNotFound)
				}
			}
		})
	}
}

func TestListIncludesRegisteredCodecs(t *testing.T) {
	codecs := codec.List()
	if len(codecs) == 0 {
		t.Fatal("List() returned no codecs")
	}
	found := false
	for _, c := range codecs {
		if c.Name() == "png" {
			found = true
		}
	}
	if !found {
		t.Error("List() does not include the png codec")
	}
}

// fakeCodec is a minimal codec for registry tests.
type fakeCodec struct {
	name      string
	mediaType string
	magic     string
}

func (c *fakeCodec) Decode(r io.Reader, params codec.DecodeParams) (*codec.DecodeResult, error) {
	return &codec.DecodeResult{}, nil
}

func (c *fakeCodec) Sniff(prefix []byte) bool {
	return len(prefix) >= len(c.magic) && string(prefix[:len(c.magic)]) == c.magic
}

func (c *fakeCodec) Name() string      { return c.name }
func (c *fakeCodec) MediaType() string { return c.mediaType }

func TestCustomRegistry(t *testing.T) {
	r := &codec.Registry{}
	bmp := &fakeCodec{name: "bmp", mediaType: "image/bmp", magic: "BM"}
	r.Register(bmp)

	c, err := r.Get("image/bmp")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if c != codec.Codec(bmp) {
		t.Error("Get returned a different codec")
	}

	c, err = r.Detect([]byte("BM\x00\x00"))
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if c.Name() != "bmp" {
		t.Errorf("Detect().Name() = %q, want bmp", c.Name())
	}

	if _, err := r.Detect([]byte("GIF89a")); err != codec.ErrCodecNotFound {
		t.Errorf("Detect error = %v, want %v", err, codec.ErrCodecNotFound)
	}
}
