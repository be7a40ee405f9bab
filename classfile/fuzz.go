package classfile

// Fuzz is a go-fuzz entry point: it must never panic on arbitrary input,
// only report malformed input through Parse's error return.
func Fuzz(data []byte) int {
	f, err := NewBytes(data, &Options{})
	if err != nil {
		return 0
	}
	err = f.Parse()
	if err != nil {
		return 0
	}
	return 1
}
