package core

import (
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// LogInf logs informational events.
	LogInf = log.New(os.Stderr, "inf:", log.LstdFlags)
	// LogWrn logs warning events.
	LogWrn = log.New(os.Stderr, "wrn:", log.LstdFlags)
	// LogErr logs error events.
	LogErr = log.New(os.Stderr, "err:", log.LstdFlags)
)

// LogFileParams configures log file rotation.
type LogFileParams struct {
	// Path to the log file, rotated files are placed next to it.
	Path string

	// MaxSizeMB is a size of the log file after which it's rotated.
	MaxSizeMB int

	// MaxBackups is a number of rotated files to keep.
	MaxBackups int
}

// SetLogFile setups a rotated log file for all loggers.
//
// References:
//   - https://github.com/natefinch/lumberjack
func SetLogFile(params LogFileParams) error {
	if params.Path == "" {
		return nil
	}

	file, err := os.OpenFile(params.Path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	writer := &lumberjack.Logger{
		Filename:   params.Path,
		MaxSize:    params.MaxSizeMB,
		MaxBackups: params.MaxBackups,
	}

	for _, logger := range []*log.Logger{LogInf, LogWrn, LogErr} {
		logger.SetOutput(writer)
		logger.SetFlags(log.LUTC | log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	}

	return nil
}
