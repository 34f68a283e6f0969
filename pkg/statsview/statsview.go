// Package statsview serves runtime statistics of the emulator process, such
// as goroutines, heap and GC pauses, as live charts over HTTP.
package statsview

import (
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/retroenv/retrogolib/log"
)

// Address is the address the stats server listens on.
const Address = "localhost:12600"

const url = "/debug/statsview"

// Launch a new goroutine running the statsview.
func Launch(logger *log.Logger) {
	viewer.SetConfiguration(viewer.WithAddr(Address))
	mgr := statsview.New()
	go func() {
		if err := mgr.Start(); err != nil {
			logger.Warn("Stats server stopped", log.Err(err))
		}
	}()

	logger.Info("Stats server available", log.String("url", "http://"+Address+url))
}
