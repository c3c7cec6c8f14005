// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"io"
	"path/filepath"

	"github.com/ava-labs/avalanchego/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logMaxSize  = 8 // megabytes
	logMaxFiles = 4
	logMaxAge   = 7 // days
)

type logConfig struct {
	level logging.Level
	// Directory rotated JSON logs are written to. Empty disables file
	// logging.
	dir string
	// Writer console logs are written to. It is never closed.
	console io.Writer
}

// newLogger returns a logger that writes coloured logs to the console and,
// if a directory is configured, JSON logs to a rotated file named after
// [name].
func newLogger(name string, config logConfig) logging.Logger {
	cores := []logging.WrappedCore{
		logging.NewWrappedCore(config.level, nopWriteCloser{config.console}, logging.Colors.ConsoleEncoder()),
	}
	if config.dir != "" {
		rw := &lumberjack.Logger{
			Filename:   filepath.Join(config.dir, name+".log"),
			MaxSize:    logMaxSize,
			MaxAge:     logMaxAge,
			MaxBackups: logMaxFiles,
			Compress:   true,
		}
		cores = append(cores, logging.NewWrappedCore(config.level, rw, logging.JSON.FileEncoder()))
	}
	return logging.NewLogger(logging.JSON.WrapPrefix(name), cores...)
}

// nopWriteCloser wraps a writer the logger does not own.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
