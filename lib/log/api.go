package log

// DebugLogger defines an interface for a logger that also supports leveled
// debug messages. Higher levels are more verbose.
type DebugLogger interface {
	Debug(level uint8, v ...interface{})
	Debugf(level uint8, format string, v ...interface{})
	Debugln(level uint8, v ...interface{})
	Logger
}

// Logger defines an interface for a type that can be used for logging. The
// *log.Logger type from the standard library satisfies this interface.
type Logger interface {
	Fatal(v ...interface{})
	Fatalf(format string, v ...interface{})
	Fatalln(v ...interface{})
	Panic(v ...interface{})
	Panicf(format string, v ...interface{})
	Panicln(v ...interface{})
	Print(v ...interface{})
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}
