package pinmux

import (
	"errors"
	"testing"
)

func TestNormalizeLabels(t *testing.T) {
	dir, err := NormalizeDirection("  Not   Assigned ")
	if err != nil || dir != DirUnassigned {
		t.Errorf("direction: got (%v, %v)", dir, err)
	}
	dir, err = NormalizeDirection("   ")
	if err != nil || dir != DirDefault {
		t.Errorf("blank direction: got (%v, %v)", dir, err)
	}
	dir, err = NormalizeDirection("INPUT")
	if err != nil || dir != DirInput {
		t.Errorf("direction: got (%v, %v)", dir, err)
	}
	pull, err := NormalizePull("Int PD")
	if err != nil || pull != PullIntDown {
		t.Errorf("pull: got (%v, %v)", pull, err)
	}
	pull, err = NormalizePull("")
	if err != nil || pull != PullZ {
		t.Errorf("blank pull: got (%v, %v)", pull, err)
	}
	sw, err := NormalizeEnableInput("yes")
	if err != nil || sw != SwitchOn {
		t.Errorf("enable input: got (%v, %v)", sw, err)
	}
	sw, err = NormalizeOutputEnable("Disable")
	if err != nil || sw != SwitchOff {
		t.Errorf("output enable: got (%v, %v)", sw, err)
	}
}

func TestNormalizeRejects(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		fn    func() error
	}{
		{"direction", FieldDirection, func() error { _, err := NormalizeDirection("sideways"); return err }},
		{"pull", FieldPull, func() error { _, err := NormalizePull("Int PX"); return err }},
		{"enable input", FieldEnableInput, func() error { _, err := NormalizeEnableInput("maybe"); return err }},
		{"output enable", FieldOutputEnable, func() error { _, err := NormalizeOutputEnable("on"); return err }},
		{"function", FieldFunction, func() error { _, err := NormalizeFunction(`spi "1"`); return err }},
		{"mpio", FieldMPIO, func() error { _, err := NormalizeMPIO("GP 115"); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			var cve *CellValueError
			if !errors.As(err, &cve) {
				t.Fatalf("Expected *CellValueError, got %v", err)
			}
			if cve.Field != tt.field {
				t.Errorf("Expected field %s, got %s", tt.field, cve.Field)
			}
		})
	}
}

func TestPlaceholder(t *testing.T) {
	for _, s := range []string{"", "  ", "-", "N/A", "nc", "TBD"} {
		if !IsPlaceholder(s) {
			t.Errorf("%q should be a placeholder", s)
		}
	}
	if IsPlaceholder("GP01") {
		t.Error("GP01 is not a placeholder")
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name   string
		dir    Direction
		pull   Pull
		einput Switch
		oe     Switch
		want   ConfigBits
	}{
		{"input pulled up", DirInput, PullIntUp, SwitchDefault, SwitchDefault, Tristate | EInput | PullUp},
		{"output", DirOutput, PullZ, SwitchDefault, SwitchOn, 0},
		{"output with input", DirOutput, PullZ, SwitchOn, SwitchDefault, EInput},
		{"output disabled", DirOutput, PullIntDown, SwitchOff, SwitchOff, Tristate | PullDown},
		{"drive 0", DirOutput, PullDrive0, SwitchDefault, SwitchDefault, Drv1X},
		{"drive 1", DirOutput, PullDrive1, SwitchDefault, SwitchDefault, Drv1X | Def1X},
		{"unassigned", DirUnassigned, PullZ, SwitchOn, SwitchDefault, 0},
		{"blank direction", DirDefault, PullIntUp, SwitchOn, SwitchDefault, PullUp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.dir, tt.pull, tt.einput, tt.oe); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}
