package logger

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// PackageNameResolver names a logger after the package of the caller that
// requested it, relative to the base package of the module.
type PackageNameResolver struct {
	BasePackage string
	Depth       int
}

func (r *PackageNameResolver) PackageName() string {
	pc, _, _, _ := runtime.Caller(r.depth())
	// For example: github.com/midgard-chain/midgard/ledger.NewLedger
	pcName := runtime.FuncForPC(pc).Name()
	split1 := strings.SplitN(pcName, r.BasePackage, 2)
	var packageAfterBase string
	if len(split1) < 2 {
		// If it was not inside base package
		packageAfterBase = split1[0]
	} else {
		split2 := strings.SplitN(split1[1], ".", 2)
		packageAfterBase = split2[0]
	}
	return strings.Trim(packageAfterBase, "/")
}

func (r *PackageNameResolver) depth() int {
	// 2 because it's used from inside logging code. We want the caller of that.
	if r.Depth == 0 {
		return 2
	}
	return r.Depth
}

// Returns caller with last two directories. Meant for console output during
// development, not performance optimized.
func consoleFormatCallerLastTwoDirs(i interface{}) string {
	var c string
	if cc, ok := i.(string); ok {
		c = cc
	}
	if len(c) > 0 {
		split := strings.Split(c, string(os.PathSeparator))
		l := len(split)
		if l > 2 {
			c = fmt.Sprintf("%s/%s/%s", split[l-3], split[l-2], split[l-1])
		} else if l > 1 {
			c = fmt.Sprintf("%s/%s", split[l-2], split[l-1])
		}
	}
	return c
}
