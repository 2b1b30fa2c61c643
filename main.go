// Command mini-tri draws a triangle whose color shifts a little every frame.
package main

import (
	"runtime"

	"mini-tri/internal/app"
	"mini-tri/internal/launch"
)

func init() { runtime.LockOSThread() }

func main() {
	launch.Main(app.Animated)
}
