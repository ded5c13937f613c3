package builder

import "github.com/fargo-build/fargo/internal/project"

// Staleness input sets, one per action. The set is explicit per action
// rather than a single global rule:
//
//	build, run, asan, tsan   src + test + CMakeLists.txt
//	test                     src + test + CMakeLists.txt
//	bench                    src + bench + CMakeLists.txt
//
// clean, targets and profile actions never consult staleness.
var (
	runInputs   = inputPatterns(project.SrcDir, project.TestDir)
	testInputs  = inputPatterns(project.SrcDir, project.TestDir)
	benchInputs = inputPatterns(project.SrcDir, project.BenchDir)
)

var cppExtensions = []string{"cpp", "cxx", "cc", "h", "hpp", "hxx"}

// inputPatterns expands source roots into recursive glob patterns over the
// C++ extension set, always including the project descriptor itself.
func inputPatterns(dirs ...string) []string {
	var patterns []string
	for _, dir := range dirs {
		for _, ext := range cppExtensions {
			patterns = append(patterns, dir+"/**/*."+ext)
		}
	}
	return append(patterns, project.DescriptorFile)
}

// SourcePatterns matches every C++ file the formatter and analyzers care
// about: the source, test and bench trees.
func SourcePatterns() []string {
	var patterns []string
	for _, dir := range []string{project.SrcDir, project.TestDir, project.BenchDir} {
		for _, ext := range cppExtensions {
			patterns = append(patterns, dir+"/**/*."+ext)
		}
	}
	return patterns
}
