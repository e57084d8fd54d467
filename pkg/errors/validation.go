package errors

import (
	"path/filepath"
	"slices"
	"strings"
	"unicode"
)

// MaxExpressionLength bounds tree expressions accepted from the command line.
const MaxExpressionLength = 64 * 1024

// MaxDrawHeight bounds the height of trees the CLI draws as text diagrams.
// Diagram size grows fourfold with every level, so a short chain of nodes
// would otherwise produce gigabytes of output.
const MaxDrawHeight = 10

// ValidateDrawHeight rejects trees too deep to draw. height counts edges, as
// returned by the tree's Height method.
func ValidateDrawHeight(height int) error {
	if height > MaxDrawHeight {
		return New(ErrCodeInvalidExpression, "tree too deep to draw: height %d (max %d)", height, MaxDrawHeight)
	}
	return nil
}

// ValidateExpression validates a tree expression before it is parsed.
//
// The checks are lexical only:
//   - No empty expressions
//   - Maximum length of [MaxExpressionLength] bytes
//   - No control characters other than tab, newline and carriage return
//
// Structural errors (unbalanced braces, missing labels) are reported by the parser.
func ValidateExpression(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return New(ErrCodeInvalidExpression, "tree expression cannot be empty")
	}

	if len(expr) > MaxExpressionLength {
		return New(ErrCodeInvalidExpression, "tree expression too long (max %d bytes)", MaxExpressionLength)
	}

	for i, r := range expr {
		if r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidExpression, "tree expression contains a control character at offset %d", i)
		}
	}

	return nil
}

// ValidateOutputPath validates a file path the CLI is about to write.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Path must name a file, not a directory (no trailing separator)
//   - When allowed extensions are given, the extension must be one of them
func ValidateOutputPath(path string, allowedExts ...string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output path must name a file: %q", path)
	}

	if len(allowedExts) == 0 {
		return nil
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if !slices.Contains(allowedExts, ext) {
		return New(ErrCodeInvalidPath, "output path %q must end in one of: .%s", path, strings.Join(allowedExts, ", ."))
	}
	return nil
}
