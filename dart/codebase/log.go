package codebase

import "github.com/tliron/commonlog"

func logger() commonlog.Logger {
	return commonlog.GetLogger("dartdata.codebase")
}

func lspLogger() commonlog.Logger {
	return commonlog.GetLogger("dartdata.lsp")
}
