package tools

const clangFormatConfig = `---
BasedOnStyle: Google
IndentWidth: 4
TabWidth: 4
UseTab: Never
ColumnLimit: 100
BreakBeforeBraces: Attach
AllowShortIfStatementsOnASingleLine: true
AllowShortLoopsOnASingleLine: true
AllowShortFunctionsOnASingleLine: All
AllowShortBlocksOnASingleLine: true
KeepEmptyLinesAtTheStartOfBlocks: false
MaxEmptyLinesToKeep: 1
PointerAlignment: Left
ReferenceAlignment: Left
SpaceBeforeParens: ControlStatements
Standard: c++20
SortIncludes: true
IncludeBlocks: Regroup
`

// Placeholders, in order: project name (twice), EXTRACT_ALL, CALL_GRAPH
// and CALLER_GRAPH (both from the same profile toggle).
const doxyfileTemplate = `# Doxyfile for %s
PROJECT_NAME           = "%s"
PROJECT_BRIEF          = "A C++ project built with fargo"
OUTPUT_DIRECTORY       = docs
INPUT                  = src README.md
RECURSIVE              = YES
EXTRACT_ALL            = %s
EXTRACT_PRIVATE        = YES
EXTRACT_STATIC         = YES
GENERATE_HTML          = YES
GENERATE_LATEX         = NO
HTML_OUTPUT            = html
SOURCE_BROWSER         = YES
INLINE_SOURCES         = YES
REFERENCED_BY_RELATION = YES
REFERENCES_RELATION    = YES
CALL_GRAPH             = %s
CALLER_GRAPH           = %s
HAVE_DOT               = YES
DOT_GRAPH_MAX_NODES    = 50
QUIET                  = YES
WARNINGS               = YES
FILE_PATTERNS          = *.cpp *.h *.hpp *.cxx *.cc
EXCLUDE_PATTERNS       = */build/* */.*
USE_MDFILE_AS_MAINPAGE = README.md
MARKDOWN_SUPPORT       = YES
AUTOLINK_SUPPORT       = YES
`

// %s is the project name.
const readmeTemplate = `# %s

A C++ project built with fargo.

## Building

` + "```bash" + `
fargo build    # Debug build
fargo release  # Release build
` + "```" + `

## Running

` + "```bash" + `
fargo run      # Run the application
fargo test     # Run tests
fargo bench    # Run benchmarks
` + "```" + `

## Analysis

` + "```bash" + `
fargo check    # Static analysis
fargo asan     # AddressSanitizer
fargo tsan     # ThreadSanitizer
` + "```" + `
`
