// Package statsview serves runtime statistics (heap, goroutines, GC
// pauses) of the emulator process as live charts.
package statsview

import (
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/thelolagemann/gbcore/pkg/log"
)

const (
	// Address is where the charts are served unless told otherwise.
	Address = "localhost:12600"
	url     = "/debug/statsview"
)

// Launch starts the statsview server on addr in a new goroutine. The
// returned function stops it.
func Launch(addr string, l log.Logger) (stop func()) {
	if addr == "" {
		addr = Address
	}
	viewer.SetConfiguration(viewer.WithAddr(addr))
	mgr := statsview.New()
	go mgr.Start()

	l.Infof("stats server available at http://%s%s", addr, url)
	return mgr.Stop
}
