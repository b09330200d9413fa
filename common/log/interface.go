// The MIT License
//
// Copyright (c) 2020 Temporal Technologies Inc.  All rights reserved.
//
// Copyright (c) 2020 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package log

import (
	"github.com/sully90/elasticutils/common/log/tag"
)

type (
	// Logger is the logging interface.
	// Usage example:
	//  logger.Info("hello world",
	//          tag.ESIndex("movies"),
	//          tag.ESDocID("test-doc-id"),
	//	 )
	//  Note: msg should be static, do not use fmt.Sprintf() for msg. Anything dynamic should be tagged.
	Logger interface {
		Debug(msg string, tags ...tag.Tag)
		Info(msg string, tags ...tag.Tag)
		Warn(msg string, tags ...tag.Tag)
		Error(msg string, tags ...tag.Tag)
		Fatal(msg string, tags ...tag.Tag)
	}

	// WithLogger returns a new instance of logger with prepended tags.
	// If WithLogger is not implemented on logger, an internal (not very
	// efficient) prepender is used instead.
	WithLogger interface {
		With(tags ...tag.Tag) Logger
	}

	// SkipLogger adds extra stack trace frames to skip
	// (useful to log caller func file/line).
	SkipLogger interface {
		Skip(extraSkip int) Logger
	}
)

// With returns Logger instance that prepend every log entry with tags. If logger implements
// WithLogger it is more efficient than the prepender.
func With(logger Logger, tags ...tag.Tag) Logger {
	if wl, ok := logger.(WithLogger); ok {
		return wl.With(tags...)
	}
	return newPrependLogger(logger, tags...)
}

// Skip returns Logger instance that skip extra stack trace frames when logging caller info.
func Skip(logger Logger, extraSkip int) Logger {
	if sl, ok := logger.(SkipLogger); ok {
		return sl.Skip(extraSkip)
	}
	return logger
}
