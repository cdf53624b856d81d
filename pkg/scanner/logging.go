package scanner

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("scanner", "Scanner for YAML-like documents")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
