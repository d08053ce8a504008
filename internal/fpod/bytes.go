package fpod

// bigEndian assembles an unsigned integer from size bytes at offset, most
// significant byte first. A field that would read past the end of the
// buffer yields 0 rather than an error; truncated headers degrade to zero
// values.
func bigEndian(buf []byte, offset, size int) uint64 {
	if offset < 0 || size < 0 || offset+size > len(buf) {
		return 0
	}
	var v uint64
	for _, b := range buf[offset : offset+size] {
		v = v<<8 | uint64(b)
	}
	return v
}

// textField copies length bytes at offset verbatim. The fixed-width header
// text fields keep their trailing padding; byte-exact copies are part of
// the format contract, so no trimming happens here.
func textField(buf []byte, offset, length int) string {
	if offset < 0 || length < 0 || offset+length > len(buf) {
		return ""
	}
	return string(buf[offset : offset+length])
}
