package dart

import "github.com/tliron/commonlog"

func logger() commonlog.Logger {
	return commonlog.GetLogger("dartdata.dart")
}
