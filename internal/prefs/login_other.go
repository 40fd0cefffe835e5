//go:build !linux && !darwin

package prefs

func loginItemLocation() (string, func(string) []byte, error) {
	return "", nil, ErrLoginUnsupported
}
