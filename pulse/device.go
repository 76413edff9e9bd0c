package pulse

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/oliverbestmann/webgpu/wgpu"
)

var forceFallbackAdapter = os.Getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1"

func init() {
	// glfw and the surface must be driven from the main thread
	runtime.LockOSThread()

	if level, ok := parseLogLevel(os.Getenv("WGPU_LOG_LEVEL")); ok {
		wgpu.SetLogLevel(level)
	}
}

// parseLogLevel maps the value of WGPU_LOG_LEVEL to a wgpu log level.
// Unknown or empty values keep the library default.
func parseLogLevel(value string) (wgpu.LogLevel, bool) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "OFF":
		return wgpu.LogLevelOff, true
	case "ERROR":
		return wgpu.LogLevelError, true
	case "WARN", "WARNING":
		return wgpu.LogLevelWarn, true
	case "INFO":
		return wgpu.LogLevelInfo, true
	case "DEBUG":
		return wgpu.LogLevelDebug, true
	case "TRACE":
		return wgpu.LogLevelTrace, true
	default:
		return 0, false
	}
}

// Context bundles the device and queue used for all drawing with the
// window surface and the adapter they were requested from.
type Context struct {
	*wgpu.Device
	*wgpu.Queue
	Surface *wgpu.Surface
	Adapter *wgpu.Adapter
}

func New(sd *wgpu.SurfaceDescriptor) (st *Context, err error) {
	defer func() {
		if err != nil && st != nil {
			st.Release()
			st = nil
		}
	}()

	st = &Context{}

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	st.Surface = instance.CreateSurface(sd)

	// the adapter must be able to present to the window surface
	st.Adapter, err = instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    st.Surface,
	})
	if err != nil {
		return st, fmt.Errorf("request adapter: %w", err)
	}

	st.Device, err = st.Adapter.RequestDevice(nil)
	if err != nil {
		return st, fmt.Errorf("request device: %w", err)
	}

	st.Queue = st.Device.GetQueue()

	slog.Info("WebGPU device ready", slog.Bool("fallbackAdapter", forceFallbackAdapter))

	return st, nil
}

func (d *Context) Release() {
	if d.Queue != nil {
		d.Queue.Release()
		d.Queue = nil
	}

	if d.Device != nil {
		d.Device.Release()
		d.Device = nil
	}

	if d.Adapter != nil {
		d.Adapter.Release()
		d.Adapter = nil
	}

	if d.Surface != nil {
		d.Surface.Release()
		d.Surface = nil
	}
}
