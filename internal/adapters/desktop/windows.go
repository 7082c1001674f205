//go:build windows

package desktop

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"unsafe"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
	"golang.org/x/sys/windows"

	"github.com/jsamuelsen/quotewall/internal/domain"
)

const (
	spiSetDeskWallpaper  = 0x0014
	spifUpdateIniFile    = 0x01
	spifSendWinIniChange = 0x02
	swMinimize           = 6

	// sFalse is returned by CoInitializeEx when COM is already initialised
	// on the thread.
	sFalse = 0x00000001
)

var (
	user32                    = windows.NewLazySystemDLL("user32.dll")
	procSystemParametersInfoW = user32.NewProc("SystemParametersInfoW")
	procEnumWindows           = user32.NewProc("EnumWindows")
	procIsWindowVisible       = user32.NewProc("IsWindowVisible")
	procShowWindow            = user32.NewProc("ShowWindow")
)

// Callbacks are a finite resource on Windows; create the one we need once.
var minimizeCallback = sync.OnceValue(func() uintptr {
	return windows.NewCallback(func(hwnd, _ uintptr) uintptr {
		if visible, _, _ := procIsWindowVisible.Call(hwnd); visible != 0 {
			_, _, _ = procShowWindow.Call(hwnd, swMinimize)
		}

		return 1
	})
})

// Windows sets wallpapers through user32 and registers startup shortcuts
// through the WScript.Shell COM object.
type Windows struct {
	logger *slog.Logger
}

func newWindows(o options) *Windows {
	return &Windows{logger: o.logger}
}

// Name implements ports.Platform.
func (w *Windows) Name() string { return "windows" }

// SetWallpaper implements ports.Platform. The change is persisted to the
// user profile and broadcast to running applications.
func (w *Windows) SetWallpaper(_ context.Context, path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return fmt.Errorf("encoding wallpaper path: %w", err)
	}

	r1, _, callErr := procSystemParametersInfoW.Call(
		spiSetDeskWallpaper,
		0,
		uintptr(unsafe.Pointer(p)),
		spifUpdateIniFile|spifSendWinIniChange,
	)
	if r1 == 0 {
		return fmt.Errorf("SystemParametersInfoW: %w", callErr)
	}

	return nil
}

// MinimizeWindows implements ports.Platform by minimising every visible
// top-level window.
func (w *Windows) MinimizeWindows(context.Context) error {
	r1, _, callErr := procEnumWindows.Call(minimizeCallback(), 0)
	if r1 == 0 {
		return fmt.Errorf("EnumWindows: %w", callErr)
	}

	return nil
}

// InstallStartup implements ports.Platform with a .lnk shortcut in the
// user's Startup folder.
func (w *Windows) InstallStartup(_ context.Context, entry domain.StartupEntry) (bool, error) {
	dir, err := windows.KnownFolderPath(windows.FOLDERID_Startup, 0)
	if err != nil {
		return false, fmt.Errorf("locating startup folder: %w", err)
	}

	link := filepath.Join(dir, entry.Name+".lnk")

	if exists, err := fileExists(link); err != nil || exists {
		return false, err
	}

	if err := createShortcut(link, entry); err != nil {
		return false, err
	}

	w.logger.Info("startup shortcut created", slog.String("path", link))

	return true, nil
}

func createShortcut(link string, entry domain.StartupEntry) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		var oleErr *ole.OleError
		if !errors.As(err, &oleErr) || oleErr.Code() != sFalse {
			return fmt.Errorf("initialising COM: %w", err)
		}
	}
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("WScript.Shell")
	if err != nil {
		return fmt.Errorf("creating WScript.Shell: %w", err)
	}
	defer unknown.Release()

	shell, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return fmt.Errorf("querying WScript.Shell: %w", err)
	}
	defer shell.Release()

	result, err := oleutil.CallMethod(shell, "CreateShortcut", link)
	if err != nil {
		return fmt.Errorf("creating shortcut: %w", err)
	}

	shortcut := result.ToIDispatch()
	defer shortcut.Release()

	props := map[string]string{
		"TargetPath":       entry.Executable,
		"Arguments":        windowsArgs(entry.Args),
		"WorkingDirectory": entry.WorkingDir,
	}

	for name, value := range props {
		if _, err := oleutil.PutProperty(shortcut, name, value); err != nil {
			return fmt.Errorf("setting shortcut %s: %w", name, err)
		}
	}

	if _, err := oleutil.CallMethod(shortcut, "Save"); err != nil {
		return fmt.Errorf("saving shortcut: %w", err)
	}

	return nil
}

func windowsArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = windows.EscapeArg(a)
	}

	return strings.Join(quoted, " ")
}
