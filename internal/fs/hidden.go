package fs

// IsHidden checks if a file name denotes a hidden entry.
func IsHidden(name string) bool {
	return len(name) > 0 && name[0] == '.'
}
