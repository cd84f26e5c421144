package pipeline

import "strings"

// ProxyPrefix is the public path under which proxied client libraries are
// served.
const ProxyPrefix = "/etc.clientlibs"

// proxiedRoots are the storage roots whose libraries may be proxied.
// Both have the same length so the rewrite is a fixed-width substitution.
var proxiedRoots = []string{"/libs/", "/apps/"}

// ProxyPath rewrites a library path stored under /libs/ or /apps/ to the
// public proxy prefix:
//
//	/apps/site/clientlibs/base.js -> /etc.clientlibs/site/clientlibs/base.js
//
// Returns the path unchanged and false for any other path.
func ProxyPath(path string) (string, bool) {
	for _, root := range proxiedRoots {
		if rest, ok := strings.CutPrefix(path, root); ok {
			return ProxyPrefix + "/" + rest, true
		}
	}
	return path, false
}
