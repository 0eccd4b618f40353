package requiremark

import "github.com/mpyw/ctxmark"

func Run() { // want `marked function "Run" does not enter a ctxmark scope`
}

func Entered() {
	defer ctxmark.Here("Entered").Release()
}

type Worker struct{}

func (w *Worker) Start() { // want `marked function "Worker.Start" does not enter a ctxmark scope`
}

func (w *Worker) Stop() {}

func helper() {}

//ctxmark:mark named // want `marked function "named" does not enter a ctxmark scope`
func Both() {}
