package commands

const (
	ConfigPathFlag         = "config"
	ConfigPathShortFlag    = "c"
	ConfigPathDefaultValue = ""
	ConfigPathUsage        = "Location of config file"

	TTYFlag      = "tty"
	TTYShortFlag = "t"
	TTYUsage     = "Activate TTY mode"

	NoTTYFlag         = "no-tty"
	NoTTYShortFlag    = "T"
	NoTTYDefaultValue = false
	NoTTYUsage        = "Deactivate TTY mode"

	DebugModeFlag         = "debug"
	DebugModeShortFlag    = "d"
	DebugModeDefaultValue = false
	DebugModeUsage        = "Enable debug mode"

	CPUProfileFlag         = "cpu-profile"
	CPUProfileShortFlag    = ""
	CPUProfileDefaultValue = ""
	CPUProfileUsage        = "Path to GoLang CPU profile file"

	MemoryProfileFlag         = "memory-profile"
	MemoryProfileShortFlag    = ""
	MemoryProfileDefaultValue = ""
	MemoryProfileUsage        = "Path to GoLang memory profile file"

	RowsFlag         = "rows"
	RowsShortFlag    = "n"
	RowsDefaultValue = uint64(0)
	RowsUsage        = "Total number of rows to generate across all files"

	RowsPerFileFlag         = "rows-per-file"
	RowsPerFileShortFlag    = ""
	RowsPerFileDefaultValue = uint64(0)
	RowsPerFileUsage        = "Number of rows to generate per file"

	FilesFlag         = "files"
	FilesShortFlag    = "F"
	FilesDefaultValue = 0
	FilesUsage        = "Number of output files to split rows across"

	StationsFlag         = "stations"
	StationsShortFlag    = "s"
	StationsDefaultValue = 0
	StationsUsage        = "Number of distinct stations in the pool"

	FormatFlag         = "format"
	FormatShortFlag    = "f"
	FormatDefaultValue = ""
	FormatUsage        = "Output format (csv, parquet, devnull, http, stdout)"

	OutputPathFlag         = "output"
	OutputPathShortFlag    = "o"
	OutputPathDefaultValue = ""
	OutputPathUsage        = "Output path for measurement files"

	SeedFlag         = "seed"
	SeedShortFlag    = ""
	SeedDefaultValue = uint64(0)
	SeedUsage        = "Random seed for reproducible builds"

	SpreadFlag         = "spread"
	SpreadShortFlag    = ""
	SpreadDefaultValue = float64(0)
	SpreadUsage        = "Standard deviation of temperatures around station means"

	WorkersFlag         = "workers"
	WorkersShortFlag    = "w"
	WorkersDefaultValue = 0
	WorkersUsage        = "Number of concurrent partition writers"

	RequestFileFlag         = "request"
	RequestFileShortFlag    = "r"
	RequestFileDefaultValue = ""
	RequestFileUsage        = "Location of build request file"

	ForceBuildFlag         = "force"
	ForceBuildDefaultValue = false
	ForceBuildUsage        = "Overwrite existing output files without asking"

	HTTPListenAddressFlag         = "listen-address"
	HTTPListenAddressShortFlag    = "a"
	HTTPListenAddressDefaultValue = ""
	HTTPListenAddressUsage        = "HTTP listen address"

	HTTPReadTimeoutFlag         = "read-timeout"
	HTTPReadTimeoutShortFlag    = "r"
	HTTPReadTimeoutDefaultValue = 0
	HTTPReadTimeoutUsage        = "HTTP read timeout"

	HTTPWriteTimeoutFlag         = "write-timeout"
	HTTPWriteTimeoutShortFlag    = "w"
	HTTPWriteTimeoutDefaultValue = 0
	HTTPWriteTimeoutUsage        = "HTTP write timeout"

	HTTPIdleTimeoutFlag         = "idle-timeout"
	HTTPIdleTimeoutShortFlag    = "i"
	HTTPIdleTimeoutDefaultValue = 0
	HTTPIdleTimeoutUsage        = "HTTP idle timeout"
)
