package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingJSON    = "json"
	EncodingConsole = "console"

	OutputStdout = "stdout"
	OutputStderr = "stderr"
	OutputFile   = "file"

	defaultMaxSizeMB = 50
)
