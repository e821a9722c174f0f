package controllers

import "github.com/rios0rios0/gitbridge/internal/application"

//nolint:gochecknoglobals // test export
var IsYes = isYes

// NewGUIControllerWithRunner replaces the terminal UI with run and writes
// debug logs to logPath.
func NewGUIControllerWithRunner(handler application.Handler, run UIRunner, logPath string) *GUIController {
	return &GUIController{handler: handler, run: run, logPath: logPath}
}
