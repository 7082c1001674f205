package desktop

import "github.com/jsamuelsen/quotewall/internal/ports"

func native(o options) ports.Platform {
	return newLinux(o)
}
