package logging

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal 判断 f 是否为交互终端（含 Cygwin/MSYS pty）。
func IsTerminal(f *os.File) bool {
	return isTerminal(f)
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
