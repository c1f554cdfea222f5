package log

import (
	"io/ioutil"
	"log"
	"os"
)

const (
	tracePrefix   = "[trace] "
	infoPrefix    = "[info] "
	warningPrefix = "[warning] "
	errorPrefix   = "[error] "
)

var (
	Trace   *log.Logger
	Info    *log.Logger
	Warning *log.Logger
	Error   *log.Logger
)

func init() {
	InitLog(false)
}

// InitLog sets up the package loggers. Trace output is discarded unless
// verbose is true or ASSIST_TRACE is set in the environment.
func InitLog(verbose bool) {
	traceOut := ioutil.Discard
	if verbose || os.Getenv("ASSIST_TRACE") != "" {
		traceOut = os.Stderr
	}

	Trace = log.New(traceOut, tracePrefix, log.Ldate|log.Ltime|log.Lshortfile)
	Info = log.New(os.Stdout, infoPrefix, 0)
	Warning = log.New(os.Stdout, warningPrefix, 0)
	Error = log.New(os.Stderr, errorPrefix, 0)
}
