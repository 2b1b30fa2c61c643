package main

import (
	"runtime"

	"mini-tri/internal/app"
	"mini-tri/internal/launch"
)

func init() {
	runtime.LockOSThread()
}

// Same as cmd/triangle, presenting once per vertical blank.
func main() {
	launch.Main(app.StaticVSync)
}
