package common

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

var clipboardWriter = clipboard.WriteAll

// CopyToClipboard writes text to the system clipboard with a macOS pbcopy fallback.
func CopyToClipboard(text string) error {
	if runtime.GOOS == "darwin" {
		cmd := exec.Command("pbcopy")
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}
	return clipboardWriter(text)
}
