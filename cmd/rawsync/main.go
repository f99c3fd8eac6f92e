package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// version 在构建时通过 -ldflags 注入。
var version = "0.1.0"

func main() {
	os.Exit(runCmd(os.Args[1:], os.Stdout, os.Stderr))
}

// runCmd 执行 CLI 并返回退出码：0 成功（含宽松模式下的跳过），1 任何致命错误。
func runCmd(args []string, stdout, stderr io.Writer) int {
	// cobra 在 args==nil 时会回退到 os.Args[1:]。
	if args == nil {
		args = []string{}
	}
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	fmt.Fprintf(stderr, "rawsync: %v\n", err)
	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(stderr, `使用 "rawsync --help" 查看用法。`)
	}
	return 1
}
