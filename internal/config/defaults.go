package config

const (
	defaultAssetsDir       = "assets"
	defaultWorkDir         = "~/.cache/keysmith/work"
	defaultLogDir          = "~/.local/share/keysmith/logs"
	defaultCachePath       = "~/.cache/keysmith/labels.db"
	defaultInkscapeBinary  = "inkscape"
	defaultInkscapeTimeout = 120
	defaultInkscapeActions = "select-by-element:text;object-to-path;"
	defaultFontFamily      = "Open Sans"
	defaultFontSize        = 30
	defaultFill            = "white"
	defaultStroke          = "white"
	defaultLogFormat       = "auto"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			AssetsDir: defaultAssetsDir,
			WorkDir:   defaultWorkDir,
			LogDir:    defaultLogDir,
		},
		Inkscape: Inkscape{
			Binary:         defaultInkscapeBinary,
			TimeoutSeconds: defaultInkscapeTimeout,
			Actions:        defaultInkscapeActions,
		},
		Render: Render{
			FontFamily: defaultFontFamily,
			FontSize:   defaultFontSize,
			Fill:       defaultFill,
			Stroke:     defaultStroke,
		},
		Cache: Cache{
			Enabled: true,
			Path:    defaultCachePath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
