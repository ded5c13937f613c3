package profile

import (
	"fmt"
	"os"
	"regexp"
	"runtime"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/fargo-build/fargo/internal/msg"
)

// evalEnv is exposed to {{ ... }} expressions in profile values.
type evalEnv struct {
	TargetOS   string            `expr:"target_os"`
	TargetArch string            `expr:"target_arch"`
	NumCPU     int               `expr:"num_cpu"`
	Environ    map[string]string `expr:"environ"`
}

func newEvalEnv() evalEnv {
	environ := make(map[string]string)
	for _, e := range os.Environ() {
		if i := strings.Index(e, "="); i >= 0 {
			environ[e[:i]] = e[i+1:]
		}
	}
	return evalEnv{
		TargetOS:   runtime.GOOS,
		TargetArch: runtime.GOARCH,
		NumCPU:     runtime.NumCPU(),
		Environ:    environ,
	}
}

var exprRegex = regexp.MustCompile(`\{\{(.+?)\}\}`)

// evalValue expands {{ ... }} expressions in a directive value. A failing
// expression degrades to its literal text with a warning, matching the
// skip-don't-abort policy for malformed profile lines.
func evalValue(s string) string {
	matches := exprRegex.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	env := newEvalEnv()

	var builder strings.Builder
	lastIndex := 0
	for _, idx := range matches {
		builder.WriteString(s[lastIndex:idx[0]])

		expression := strings.TrimSpace(s[idx[2]:idx[3]])
		program, err := expr.Compile(expression, expr.Env(env))
		if err != nil {
			msg.Warn("profile expression %q: %v", expression, err)
			builder.WriteString(s[idx[0]:idx[1]])
			lastIndex = idx[1]
			continue
		}
		result, err := expr.Run(program, env)
		if err != nil {
			msg.Warn("profile expression %q: %v", expression, err)
			builder.WriteString(s[idx[0]:idx[1]])
			lastIndex = idx[1]
			continue
		}

		builder.WriteString(fmt.Sprintf("%v", result))
		lastIndex = idx[1]
	}
	builder.WriteString(s[lastIndex:])

	return builder.String()
}
