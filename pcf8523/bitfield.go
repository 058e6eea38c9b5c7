package pcf8523

// bitField describes a contiguous run of bits inside a single register byte.
// shift+width must not exceed 8; no field on this chip spans two registers.
type bitField struct {
	reg    uint8
	shift  uint8
	width  uint8
	signed bool
}

// min and max return the representable range of the field.
func (f bitField) min() int {
	if f.signed {
		return -(1 << (f.width - 1))
	}
	return 0
}

func (f bitField) max() int {
	if f.signed {
		return 1<<(f.width-1) - 1
	}
	return 1<<f.width - 1
}

// readField extracts a bit field from its register. Signed fields are
// sign-extended from bit width-1.
func (d *Device) readField(f bitField) (int, error) {
	b, err := d.readByte(f.reg)
	if err != nil {
		return 0, err
	}
	v := int(b>>f.shift) & (1<<f.width - 1)
	if f.signed && v&(1<<(f.width-1)) != 0 {
		v -= 1 << f.width
	}
	return v, nil
}

// writeField replaces a bit field, leaving the other bits of the register
// untouched. The read and the write are two bus transactions; concurrent
// writers of the same register must serialize externally.
func (d *Device) writeField(f bitField, v int) error {
	if v < f.min() || v > f.max() {
		return ErrFieldRange
	}
	b, err := d.readByte(f.reg)
	if err != nil {
		return err
	}
	mask := uint8(1<<f.width-1) << f.shift
	b = b&^mask | uint8(v)<<f.shift&mask
	return d.writeByte(f.reg, b)
}

// readFlag reports whether any bit of mask is set in the register.
func (d *Device) readFlag(reg, mask uint8) (bool, error) {
	b, err := d.readByte(reg)
	if err != nil {
		return false, err
	}
	return b&mask != 0, nil
}

// writeFlag sets or clears exactly the masked bits. Read-modify-write, same
// caveat as writeField.
func (d *Device) writeFlag(reg, mask uint8, on bool) error {
	b, err := d.readByte(reg)
	if err != nil {
		return err
	}
	if on {
		b |= mask
	} else {
		b &^= mask
	}
	return d.writeByte(reg, b)
}
