package main

import (
	"runtime"

	"mini-tri/internal/app"
	"mini-tri/internal/launch"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	launch.Main(app.Static)
}
