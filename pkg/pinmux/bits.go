package pinmux

// ConfigBits is the BallConfig bit set the pinmux template encodes per pin.
type ConfigBits uint32

// BallConfig bits.
const (
	RcvSel    ConfigBits = 1 << iota // 1
	Lock                             // 2
	OpenDrain                        // 4
	EInput                           // 8
	Tristate                         // 16
	PullDown                         // 32
	PullUp                           // 64
	I2C                              // 128
	DDC                              // 256
	Drv1X                            // 512
	Def1X                            // 1024
	HasEQOS                          // 2048
	EQOS                             // 4096
)

// Token values of the Tegra pinctrl bindings.
const (
	PinEnable  = "TEGRA_PIN_ENABLE"
	PinDisable = "TEGRA_PIN_DISABLE"

	PullNone = "TEGRA_PIN_PULL_NONE"
	PullDn   = "TEGRA_PIN_PULL_DOWN"
	PullUpT  = "TEGRA_PIN_PULL_UP"

	Driver1X       = "TEGRA_PIN_1X_DRIVER"
	Driver2X       = "TEGRA_PIN_2X_DRIVER"
	DefaultDrive1X = "TEGRA_PIN_DEFAULT_DRIVE_1X"
	DefaultDrive2X = "TEGRA_PIN_DEFAULT_DRIVE_2X"
)

// Property names emitted for each pin.
const (
	PropPins        = "nvidia,pins"
	PropFunction    = "nvidia,function"
	PropPull        = "nvidia,pull"
	PropTristate    = "nvidia,tristate"
	PropEnableInput = "nvidia,enable-input"
	PropDrvType     = "nvidia,drv-type"
	PropLock        = "nvidia,lock"
	PropOpenDrain   = "nvidia,open-drain"
	PropEIOOD       = "nvidia,e-io-od"
	PropELpbk       = "nvidia,e-lpbk"
)

// Has reports whether all bits of m are set.
func (b ConfigBits) Has(m ConfigBits) bool {
	return b&m == m
}

func enable(set bool) string {
	if set {
		return PinEnable
	}
	return PinDisable
}

// Pull decodes the pull bits. Both bits set has no token and reports false.
func (b ConfigBits) Pull() (string, bool) {
	switch (b & (PullUp | PullDown)) / PullDown {
	case 0:
		return PullNone, true
	case 1:
		return PullDn, true
	case 2:
		return PullUpT, true
	}
	return "", false
}

// TristateToken decodes the tristate bit.
func (b ConfigBits) TristateToken() string {
	return enable(b.Has(Tristate))
}

// EnableInputToken decodes the input enable bit.
func (b ConfigBits) EnableInputToken() string {
	return enable(b.Has(EInput))
}

// DriveType decodes the two drive bits.
func (b ConfigBits) DriveType() string {
	switch (b & (Drv1X | Def1X)) / Drv1X {
	case 1:
		return Driver2X
	case 2:
		return DefaultDrive1X
	case 3:
		return DefaultDrive2X
	}
	return Driver1X
}

// cells wraps a token as a single-cell property value.
func cells(token string) string {
	return "<" + token + ">"
}

// quoted wraps s as a string property value.
func quoted(s string) string {
	return `"` + s + `"`
}

// Attributes renders the properties of a pin with the given function.
// The six base properties are always present; lock, open-drain, e-io-od and
// e-lpbk follow only when their bits are set.
func (b ConfigBits) Attributes(pin, function string) ([]Attribute, error) {
	pull, ok := b.Pull()
	if !ok {
		return nil, &CellValueError{Pin: pin, Field: FieldPull, Value: "pull-up and pull-down"}
	}
	attrs := []Attribute{
		{PropPins, quoted(pin)},
		{PropFunction, quoted(function)},
		{PropPull, cells(pull)},
		{PropTristate, cells(b.TristateToken())},
		{PropEnableInput, cells(b.EnableInputToken())},
		{PropDrvType, cells(b.DriveType())},
	}
	if b.Has(Lock) {
		attrs = append(attrs, Attribute{PropLock, cells(PinEnable)})
	}
	if b.Has(OpenDrain) {
		attrs = append(attrs, Attribute{PropOpenDrain, cells(PinEnable)})
	}
	if b.Has(DDC) {
		attrs = append(attrs, Attribute{PropEIOOD, cells(enable(b.Has(RcvSel)))})
	}
	if b.Has(HasEQOS) {
		attrs = append(attrs, Attribute{PropELpbk, cells(enable(b.Has(EQOS)))})
	}
	return attrs, nil
}
