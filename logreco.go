// This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
// Copyright 2024 WJQSERVER. All rights reserved.
// All rights reserved by WJQSERVER, related rights can be exercised by the infinite-iroha organization.
package pathmaker

import (
	"log"
	"os"
	"time"

	"github.com/fenthope/reco"
)

// DefaultLogRecoConfig 默认LogReco配置
// 库本身默认不记录日志, 该配置供命令行等上层使用
var DefaultLogRecoConfig = reco.Config{
	Level:         reco.LevelInfo,
	Mode:          reco.ModeText,
	TimeFormat:    time.RFC3339,
	Output:        os.Stderr,
	Async:         false,
	DefaultFields: nil,
}

func NewLogger(logcfg reco.Config) *reco.Logger {
	logger, err := reco.New(logcfg)
	if err != nil {
		log.Printf("New Logreco Error: %s", err)
		return nil
	}
	return logger
}

func CloseLogger(logger *reco.Logger) {
	if logger == nil {
		return
	}
	err := logger.Close()
	if err != nil {
		log.Printf("Close Logreco Error: %s", err)
		return
	}
}

// logFallbacks 以 debug 级别记录配置回退
func logFallbacks(logger *reco.Logger, basePath string, fb []Fallback) {
	if logger == nil {
		return
	}
	for _, f := range fb {
		logger.Debugf("pathmaker: builder %q: invalid %s %q, using %q", basePath, f.Field, f.Given, f.Used)
	}
}
