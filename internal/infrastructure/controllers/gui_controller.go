package controllers

import (
	"context"
	"io"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitbridge/internal/application"
	"github.com/rios0rios0/gitbridge/internal/domain/entities"
	"github.com/rios0rios0/gitbridge/internal/infrastructure/tui"
)

const guiLogFileName = "gitbridge-gui.log"

// UIRunner starts an interactive front-end on top of a handler.
type UIRunner func(ctx context.Context, handler application.Handler) error

// GUIController handles the "gui" subcommand.
type GUIController struct {
	handler application.Handler
	run     UIRunner
	logPath string
}

// NewGUIController creates a new GUIController backed by the terminal UI.
func NewGUIController(handler application.Handler) *GUIController {
	return &GUIController{
		handler: handler,
		run:     tui.Run,
		logPath: filepath.Join(os.TempDir(), guiLogFileName),
	}
}

func (it *GUIController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "gui",
		Short: "Open the interactive interface",
		Long: `Open a full-screen interface with one tab per operation.

Every tab sends the same requests as the matching subcommand, so results and
error messages are identical. Deleting and moving ask for confirmation first.

Logs are discarded while the interface is open. With --verbose or DEBUG=true
they are appended to ` + guiLogFileName + ` in the temporary directory.`,
		Aliases: []string{"ui"},
		Args:    cobra.NoArgs,
	}
}

func (it *GUIController) AddFlags(_ *cobra.Command) {}

func (it *GUIController) Execute(_ *cobra.Command, _ []string) error {
	restore := redirectLogs(it.logPath)
	defer restore()

	return it.run(context.Background(), it.handler)
}

// redirectLogs keeps log lines off the terminal while the interface owns it
// and returns the function restoring the previous output. At debug level the
// lines go to logPath instead of being dropped.
func redirectLogs(logPath string) func() {
	std := logger.StandardLogger()
	previous := std.Out

	var file *os.File
	var out io.Writer = io.Discard
	if std.IsLevelEnabled(logger.DebugLevel) {
		opened, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err == nil {
			file = opened
			out = opened
		}
	}
	logger.SetOutput(out)

	return func() {
		logger.SetOutput(previous)
		if file != nil {
			_ = file.Close()
		}
	}
}
