package services

import (
	"github.com/GregMSThompson/pfm-advisor/internal/errs"
)

// guard runs fn and turns a panic into a PipelineError so one bad batch
// never takes the process down.
func guard(stage string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errs.NewPipelineError(stage, r)
		}
	}()
	return fn()
}
