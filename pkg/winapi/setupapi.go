// +build windows

package winapi

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modsetupapi = windows.NewLazySystemDLL("setupapi.dll")

	procSetupDiGetClassDescriptionExW = modsetupapi.NewProc("SetupDiGetClassDescriptionExW")
)

// LINE_LEN from setupapi.h, the documented maximum class description length
const classDescriptionLen = 256

// GetClassDescription returns the description of the setup class identified
// by guid on the local machine.
//
// https://docs.microsoft.com/en-us/windows/win32/api/setupapi/nf-setupapi-setupdigetclassdescriptionexw
func GetClassDescription(guid *windows.GUID) (string, error) {
	buf := make([]uint16, classDescriptionLen)
	for {
		var reqSize uint32
		r0, _, e := syscall.Syscall6(
			procSetupDiGetClassDescriptionExW.Addr(),
			6,
			uintptr(unsafe.Pointer(guid)),
			uintptr(unsafe.Pointer(&buf[0])),
			uintptr(len(buf)),
			uintptr(unsafe.Pointer(&reqSize)),
			0, // MachineName
			0) // Reserved
		if r0 != 0 {
			return windows.UTF16ToString(buf), nil
		}

		if e == windows.ERROR_INSUFFICIENT_BUFFER && int(reqSize) > len(buf) {
			buf = make([]uint16, reqSize)
			continue
		}
		if e != 0 {
			return "", error(e)
		}
		return "", syscall.EINVAL
	}
}
