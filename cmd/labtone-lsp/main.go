package main

import (
	"fmt"
	"os"

	"github.com/jsvensson/labtone/internal/lsp"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var version = "dev"

func main() {
	// stdout carries the protocol; logs go to stderr unless a file is named.
	var logPath *string
	if p := os.Getenv("LABTONE_LSP_LOG"); p != "" {
		logPath = &p
	}
	commonlog.Configure(1, logPath)

	s := lsp.NewServer(version)
	if err := s.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
