// Package pinmux holds the data model shared by the extractor and the delta
// tool: per-pin configuration records, the ordered Description that groups
// them, the BallConfig bit set used by the pinmux template, and the typed
// normalization of raw spreadsheet cells.
//
// # Overview
//
// A PinRecord is the unit of configuration. Its attributes are device-tree
// properties whose values are kept as normalized token text, exactly as they
// appear in the generated dtsi:
//
//	GP115_SPI1_CLK {
//		nvidia,pins = "GP115_SPI1_CLK";
//		nvidia,function = "spi1";
//		nvidia,pull = <TEGRA_PIN_PULL_NONE>;
//		nvidia,tristate = <TEGRA_PIN_DISABLE>;
//		nvidia,enable-input = <TEGRA_PIN_ENABLE>;
//		nvidia,drv-type = <TEGRA_PIN_1X_DRIVER>;
//	};
//
// Records are compared token by token. No semantic equivalence between
// numeric and symbolic forms is assumed.
//
// # Sections
//
// Each record belongs to one pin-controller state. Pins with an assigned
// function live in the "common" node, everything else is parked in
// "unused_lowpower". A Description is in canonical order when all Common
// records precede all UnusedLowPower records.
//
// # Errors
//
// Every failure is one of four typed errors: SourceFormatError,
// CellValueError, SyntaxError and DuplicateKeyError. Callers match them with
// errors.As. None of them is recoverable within a run.
package pinmux
