package config

// Threshold defaults mirror the published duty-hour rules: 11 driving hours
// in the USA, 13 in Canada.
const (
	defaultReportDir                 = "~/.local/share/drivewise/reports"
	defaultLogDir                    = "~/.local/share/drivewise/logs"
	defaultWorkbookName              = "violations_report.xlsx"
	defaultLogFormat                 = "console"
	defaultLogLevel                  = "info"
	defaultOdometerCriticalDelta     = 50.0
	defaultStationaryMinimumMinutes  = 10
	defaultUSADrivingLimitMinutes    = 660
	defaultCanadaDrivingLimitMinutes = 780
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ReportDir: defaultReportDir,
			LogDir:    defaultLogDir,
		},
		Analysis: Analysis{
			OdometerCriticalDelta:     defaultOdometerCriticalDelta,
			StationaryMinimumMinutes:  defaultStationaryMinimumMinutes,
			USADrivingLimitMinutes:    defaultUSADrivingLimitMinutes,
			CanadaDrivingLimitMinutes: defaultCanadaDrivingLimitMinutes,
		},
		Pipeline: Pipeline{
			ParseWorkers: 0,
		},
		Export: Export{
			WorkbookName: defaultWorkbookName,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
