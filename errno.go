//go:build linux

package linuxfd

import "strconv"

// Errno is a raw kernel error code: a positive value no greater than
// 4095, or zero meaning success. It carries no other state. Giving codes
// symbolic names or richer classification is an external concern; see
// the osio package for translation into the x/sys vocabulary.
type Errno int32

// Error formats the bare numeric code.
func (e Errno) Error() string {
	return "errno " + strconv.Itoa(int(e))
}
