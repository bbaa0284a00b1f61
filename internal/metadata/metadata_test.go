package metadata

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		size int
		want []string
	}{
		{"empty", "", 64, nil},
		{"exact fit", "abcd", 4, []string{"abcd"}},
		{"one over", "abcde", 4, []string{"abcd", "e"}},
		{"multiple", "aaaabbbbcc", 4, []string{"aaaa", "bbbb", "cc"}},
		{"bad size", "abc", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.text, tt.size)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q, %d) = %q, want %q", tt.text, tt.size, got, tt.want)
			}
		})
	}
}

func TestSplit_JoinRestoresInput(t *testing.T) {
	inputs := []string{
		"short",
		strings.Repeat("x", 64),
		strings.Repeat("data:image/svg+xml,%3Csvg", 40),
	}
	for _, in := range inputs {
		if joined := strings.Join(Split(in, 64), ""); joined != in {
			t.Errorf("join(Split(%.20q...)) != input", in)
		}
	}
}

func TestBase64_RoundTrip(t *testing.T) {
	inputs := []string{
		"hello",
		"",
		"émoji test 😀🎉 and\nnewlines",
		"plain ascii with \"quotes\"",
	}
	for _, in := range inputs {
		encoded := EncodeBase64(in)
		for i := 0; i < len(encoded); i++ {
			if encoded[i] > 0x7e {
				t.Fatalf("EncodeBase64(%q) produced non-ASCII output", in)
			}
		}
		got, err := DecodeBase64(encoded)
		if err != nil {
			t.Fatalf("DecodeBase64: %v", err)
		}
		if got != in {
			t.Errorf("round trip got %q, want %q", got, in)
		}
	}
}

func TestDecodeBase64_Malformed(t *testing.T) {
	if _, err := DecodeBase64("not!!base64"); err == nil {
		t.Error("expected error on malformed base64")
	}
}

func TestSafeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"ascii passthrough", "hello world", 256, "hello world"},
		{"strips non-ascii and swaps quotes", "Héllo \"world\" 😀", 256, "Hllo 'world' "},
		{"trims", "  padded  ", 256, "padded"},
		{"truncates runes", "abcdefgh", 4, "abcd"},
		{"empty", "", 256, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeText(tt.in, tt.max); got != tt.want {
				t.Errorf("SafeText(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestQuickBurnID_RoundTrip(t *testing.T) {
	units := []string{
		"deadbeef",
		"abc123DEF456",
		strings.Repeat("a1b2c3d4", 10),
	}
	for _, u := range units {
		id, err := EncodeQuickBurnID(u)
		if err != nil {
			t.Fatalf("EncodeQuickBurnID(%q): %v", u, err)
		}
		if strings.ContainsAny(id, "+/=") {
			t.Errorf("id %q is not unpadded base64url", id)
		}
		if got := DecodeQuickBurnID(id); got != strings.ToLower(u) {
			t.Errorf("decode(encode(%q)) = %q, want %q", u, got, strings.ToLower(u))
		}
	}
}

func TestEncodeQuickBurnID_InvalidHex(t *testing.T) {
	for _, bad := range []string{"xyz", "abc"} {
		if _, err := EncodeQuickBurnID(bad); err == nil {
			t.Errorf("EncodeQuickBurnID(%q) should fail", bad)
		}
	}
}

func TestDecodeQuickBurnID_Malformed(t *testing.T) {
	for _, bad := range []string{"", "has space", "has+plus", "pad=="} {
		if got := DecodeQuickBurnID(bad); got != "" {
			t.Errorf("DecodeQuickBurnID(%q) = %q, want empty", bad, got)
		}
	}
}

func TestDecodeQuickBurnID_ChunkedInput(t *testing.T) {
	unit := strings.Repeat("ab12cd34", 13)
	id, err := EncodeQuickBurnID(unit)
	if err != nil {
		t.Fatal(err)
	}
	chunks := Split(id, 64)
	if len(chunks) < 2 {
		t.Fatalf("test needs a chunked id, got %d chunk(s)", len(chunks))
	}
	if got := DecodeQuickBurnID(chunks...); got != unit {
		t.Errorf("chunked decode = %q, want %q", got, unit)
	}
}

func TestParseQuickBurnInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want QuickBurnInput
	}{
		{"raw hex", "deadbeef00", QuickBurnInput{Unit: "deadbeef00"}},
		{"fingerprint", "asset1qxyzabc0", QuickBurnInput{FingerprintLike: true}},
		{"url with unit", "https://pool.pm/deadbeef00", QuickBurnInput{Unit: "deadbeef00"}},
		{"url with fingerprint", "https://pool.pm/asset1qxyzabc0", QuickBurnInput{FingerprintLike: true}},
		{"empty", "  ", QuickBurnInput{}},
		{"garbage", "not a unit!", QuickBurnInput{}},
		{"url with trailing slash", "https://pool.pm/x/", QuickBurnInput{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseQuickBurnInput(tt.in); got != tt.want {
				t.Errorf("ParseQuickBurnInput(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeTree(t *testing.T) {
	in := map[string]any{
		"int":    3,
		"whole":  float64(7),
		"frac":   0.045,
		"text":   "keep",
		"gone":   nil,
		"nested": map[string]any{"p": 0.5, "drop": nil},
		"list":   []any{1.5, nil, "s"},
	}
	out := SanitizeTree(in).(map[string]any)

	if out["frac"] != "0.045" {
		t.Errorf("frac = %v, want \"0.045\"", out["frac"])
	}
	if out["whole"] != int64(7) {
		t.Errorf("whole = %v (%T), want int64(7)", out["whole"], out["whole"])
	}
	if _, present := out["gone"]; present {
		t.Error("nil value survived sanitize")
	}
	nested := out["nested"].(map[string]any)
	if nested["p"] != "0.5" {
		t.Errorf("nested p = %v", nested["p"])
	}
	if _, present := nested["drop"]; present {
		t.Error("nested nil survived sanitize")
	}
	list := out["list"].([]any)
	if len(list) != 2 || list[0] != "1.5" || list[1] != "s" {
		t.Errorf("list = %v", list)
	}
}
