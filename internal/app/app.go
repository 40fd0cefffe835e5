package app

// Options configures the top-level controller.
type Options struct {
	// ConfigPath points to the optional daemon config file.
	ConfigPath string
}

// App exposes the daemon-backed operations shared by the CLI and the TUI.
// It holds no candidate state of its own; every call goes to the daemon.
type App struct {
	cfgPath string
}

// New constructs the shared controller facade.
func New(opts Options) *App {
	return &App{
		cfgPath: opts.ConfigPath,
	}
}

// ConfigPath returns the configured config file path (if any).
func (a *App) ConfigPath() string {
	return a.cfgPath
}
