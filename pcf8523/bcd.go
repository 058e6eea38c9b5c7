package pcf8523

// The chip stores every calendar field as packed binary-coded decimal: tens
// digit in the high nibble, units digit in the low nibble. Conversions assume
// valid decimal nibbles, mirroring what a raw register read hands back.

// decToBcd converts int to BCD
func decToBcd(dec int) uint8 {
	return uint8(dec + 6*(dec/10))
}

// bcdToDec converts BCD to int
func bcdToDec(bcd uint8) int {
	return int(bcd - 6*(bcd>>4))
}
