//go:build darwin && cgo

package idle

/*
#cgo CFLAGS: -Wno-deprecated-declarations
#cgo LDFLAGS: -framework IOKit -framework CoreFoundation

#include <stdint.h>
#include <stdlib.h>
#include <mach/mach.h>
#include <CoreFoundation/CoreFoundation.h>
#include <IOKit/IOKitLib.h>

enum {
	hidValueAbsent = 0,
	hidValueData   = 1,
	hidValueNumber = 2,
	hidValueOther  = 3,
};

static void releasePort(mach_port_t port) {
	mach_port_deallocate(mach_task_self(), port);
}

// readHIDIdleTime looks up HIDIdleTime in props. The returned value is not
// owned by the caller; only the lookup key is created and released here.
static int readHIDIdleTime(CFDictionaryRef props, uint8_t *data, long *dataLen, int64_t *number) {
	CFStringRef key = CFStringCreateWithCString(kCFAllocatorDefault, "HIDIdleTime", kCFStringEncodingUTF8);
	if (key == NULL) {
		return hidValueAbsent;
	}

	const void *value = NULL;
	Boolean present = CFDictionaryGetValueIfPresent(props, key, &value);
	CFRelease(key);
	if (!present || value == NULL) {
		return hidValueAbsent;
	}

	CFTypeID type = CFGetTypeID(value);
	if (type == CFDataGetTypeID()) {
		CFIndex n = CFDataGetLength((CFDataRef)value);
		if (n > 8) {
			n = 8;
		}
		CFDataGetBytes((CFDataRef)value, CFRangeMake(0, n), data);
		*dataLen = (long)n;
		return hidValueData;
	}
	if (type == CFNumberGetTypeID()) {
		CFNumberGetValue((CFNumberRef)value, kCFNumberSInt64Type, number);
		return hidValueNumber;
	}
	return hidValueOther;
}
*/
import "C"

import (
	"fmt"
	"time"
	"unsafe"
)

// IOKit reads HIDIdleTime from the IOHIDSystem registry entry.
type IOKit struct{}

func (IOKit) Name() string { return "iokit" }

func (IOKit) IdleTime() (time.Duration, error) {
	var port C.mach_port_t
	if kr := C.IOMasterPort(C.MACH_PORT_NULL, &port); kr != C.KERN_SUCCESS {
		return 0, unavailable("iokit", "unable to open service port", kernError(kr))
	}
	defer C.releasePort(port)

	serviceName := C.CString("IOHIDSystem")
	defer C.free(unsafe.Pointer(serviceName))

	// IOServiceGetMatchingServices consumes the matching dictionary.
	var iter C.io_iterator_t
	if kr := C.IOServiceGetMatchingServices(port, C.IOServiceMatching(serviceName), &iter); kr != C.KERN_SUCCESS {
		return 0, nativeFailure("iokit", "unable to look up HID service", kernError(kr))
	}
	defer C.IOObjectRelease(C.io_object_t(iter))

	entry := C.IOIteratorNext(iter)
	if entry == 0 {
		// No IOHIDSystem instance: reported as zero idle time.
		return 0, nil
	}
	defer C.IOObjectRelease(entry)

	var props C.CFMutableDictionaryRef
	if kr := C.IORegistryEntryCreateCFProperties(entry, &props, C.kCFAllocatorDefault, 0); kr != C.KERN_SUCCESS {
		return 0, nativeFailure("iokit", "unable to read HID service properties", kernError(kr))
	}
	defer C.CFRelease(C.CFTypeRef(props))

	var (
		data    [8]byte
		dataLen C.long
		number  C.int64_t
	)
	kind := C.readHIDIdleTime(C.CFDictionaryRef(props), (*C.uint8_t)(unsafe.Pointer(&data[0])), &dataLen, &number)

	return decodeHIDIdleTime(hidValueKind(kind), data[:int(dataLen)], int64(number))
}

func kernError(kr C.kern_return_t) error {
	return fmt.Errorf("kern_return_t %#x", int(kr))
}
