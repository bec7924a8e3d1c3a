package dtsi

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/OpenTraceLab/OpenTracePinmux/pkg/pinmux"
)

func baseAttrs(pin, function, pull, tristate, einput, drv string) []pinmux.Attribute {
	return []pinmux.Attribute{
		{Name: "nvidia,pins", Value: `"` + pin + `"`},
		{Name: "nvidia,function", Value: `"` + function + `"`},
		{Name: "nvidia,pull", Value: "<" + pull + ">"},
		{Name: "nvidia,tristate", Value: "<" + tristate + ">"},
		{Name: "nvidia,enable-input", Value: "<" + einput + ">"},
		{Name: "nvidia,drv-type", Value: "<" + drv + ">"},
	}
}

func TestReadFile(t *testing.T) {
	d, err := ReadFile("testdata/before.dtsi")
	if err != nil {
		t.Fatalf("Failed to read: %v", err)
	}

	i2c := baseAttrs("GP03_I2C2_DAT", "i2c2", pinmux.PullUpT, pinmux.PinEnable, pinmux.PinEnable, pinmux.Driver1X)
	i2c = append(i2c, pinmux.Attribute{Name: "nvidia,open-drain", Value: "<TEGRA_PIN_ENABLE>"})

	want := &pinmux.Description{
		Node: "pinmux@2430000",
		Pins: []pinmux.PinRecord{
			{
				Name:       "GP115_SPI1_CLK",
				Section:    pinmux.Common,
				Comment:    "Pin J57 - SPI1_CLK",
				Attributes: baseAttrs("GP115_SPI1_CLK", "spi1", pinmux.PullNone, pinmux.PinDisable, pinmux.PinEnable, pinmux.Driver1X),
			},
			{
				Name:       "GP03_I2C2_DAT",
				Section:    pinmux.Common,
				Comment:    "Pin K2 - I2C2_SDA",
				Attributes: i2c,
			},
			{
				Name:       "GP02",
				Section:    pinmux.UnusedLowPower,
				Comment:    "Pin K10",
				Attributes: baseAttrs("GP02", "unused", pinmux.PullDn, pinmux.PinDisable, pinmux.PinDisable, pinmux.Driver1X),
			},
			{
				Name:       "GP04",
				Section:    pinmux.UnusedLowPower,
				Attributes: baseAttrs("GP04", "unused", pinmux.PullNone, pinmux.PinEnable, pinmux.PinDisable, pinmux.DefaultDrive2X),
			},
		},
	}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Errorf("Description mismatch (-want +got):\n%s", diff)
	}
}

// wrap places the pin blocks of a common section into a minimal file.
func wrap(common string) string {
	return "/ {\n\tpinmux@2430000 {\n\t\tpinmux_default: common {\n" + common + "\t\t};\n\t};\n};\n"
}

func TestDecodeComments(t *testing.T) {
	input := wrap(
		"\t\t\t/* detached */\n" +
			"\n" +
			"\t\t\tPIN_A {\n\t\t\t\tnvidia,pins = \"PIN_A\";\n\t\t\t};\n" +
			"\t\t\t/*\n\t\t\t * Pin B7\n\t\t\t */\n" +
			"\t\t\tPIN_B {\n\t\t\t\tnvidia,pins = \"PIN_B\";\n\t\t\t};\n" +
			"\t\t\t/* Pin C1 - SIG */\n" +
			"\t\t\tPIN_C {\n\t\t\t\tnvidia,pins = \"PIN_C\";\n\t\t\t};\n")

	d, err := Read("c.dtsi", strings.NewReader(input))
	if err != nil {
		t.Fatalf("Failed to read: %v", err)
	}
	got := make(map[string]string)
	for _, p := range d.Pins {
		got[p.Name] = p.Comment
	}
	if got["PIN_A"] != "" {
		t.Errorf("PIN_A picked up a detached comment: %q", got["PIN_A"])
	}
	if !strings.Contains(got["PIN_B"], "Pin B7") {
		t.Errorf("PIN_B comment = %q", got["PIN_B"])
	}
	if got["PIN_C"] != "Pin C1 - SIG" {
		t.Errorf("PIN_C comment = %q", got["PIN_C"])
	}
}

func TestDecodeErrors(t *testing.T) {
	pin := func(name, props string) string {
		return "\t\t\t" + name + " {\n" + props + "\t\t\t};\n"
	}
	prop := "\t\t\t\tnvidia,pins = \"X\";\n"

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no common section",
			input: "/ {\n\tpinmux@2430000 {\n\t\tdrive_default: drive {\n\t\t};\n\t};\n};\n",
			want:  "no common { ... } section found",
		},
		{
			name:  "property in section",
			input: wrap("\t\t\tstray = <1>;\n"),
			want:  "unexpected property stray in common section",
		},
		{
			name:  "nested node",
			input: wrap(pin("PIN_A", "\t\t\t\tinner {\n\t\t\t\t};\n")),
			want:  "nested node inner inside pin PIN_A",
		},
		{
			name:  "repeated property",
			input: wrap(pin("PIN_A", prop+prop)),
			want:  "property nvidia,pins repeated in pin PIN_A",
		},
		{
			name: "second common section",
			input: "/ {\n\tpinmux@2430000 {\n" +
				"\t\tcommon {\n\t\t};\n" +
				"\t\tcommon {\n\t\t};\n" +
				"\t};\n};\n",
			want: "second common section (first at line 3)",
		},
		{
			name: "unused under another controller",
			input: "/ {\n" +
				"\tpinmux@2430000 {\n\t\tcommon {\n\t\t};\n\t};\n" +
				"\tpinmux@c300000 {\n\t\tunused_lowpower {\n\t\t};\n\t};\n" +
				"};\n",
			want: "unused_lowpower is not under controller pinmux@2430000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read("bad.dtsi", strings.NewReader(tt.input))
			var se *pinmux.SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("Expected *pinmux.SyntaxError, got %T: %v", err, err)
			}
			if se.Msg != tt.want {
				t.Errorf("Msg = %q, want %q", se.Msg, tt.want)
			}
		})
	}
}

func TestDecodeDuplicatePin(t *testing.T) {
	block := "\t\t\tPIN_A {\n\t\t\t\tnvidia,pins = \"PIN_A\";\n\t\t\t};\n"
	input := "/ {\n\tpinmux@2430000 {\n" +
		"\t\tcommon {\n" + block + "\t\t};\n" +
		"\t\tunused_lowpower {\n" + block + "\t\t};\n" +
		"\t};\n};\n"

	_, err := Read("dup.dtsi", strings.NewReader(input))
	var dup *pinmux.DuplicateKeyError
	if !errors.As(err, &dup) {
		t.Fatalf("Expected *pinmux.DuplicateKeyError, got %T: %v", err, err)
	}
	if dup.Pin != "PIN_A" || dup.Source != "dup.dtsi" || dup.Unit != "line" {
		t.Errorf("Unexpected error fields: %+v", dup)
	}
	if dup.First != 4 || dup.Second != 9 {
		t.Errorf("Lines = %d and %d, want 4 and 9", dup.First, dup.Second)
	}
}
