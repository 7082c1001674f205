//go:build !linux && !darwin && !windows

package desktop

import (
	"runtime"

	"github.com/jsamuelsen/quotewall/internal/ports"
)

func native(options) ports.Platform {
	return Unsupported{OS: runtime.GOOS}
}
