// Package format rewrites palette files in canonical HCL style.
package format

import (
	"fmt"
	"os"
	"regexp"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
)

var multipleBlankLines = regexp.MustCompile(`\n{3,}`)
var blankLineAfterOpenBrace = regexp.MustCompile(`\{\n\s*\n`)
var blankLineBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)

// Format takes HCL source content and returns it formatted according to
// HCL canonical style rules, with runs of blank lines collapsed and blank
// lines at the edges of blocks removed.
//
// The formatter works even on partial/invalid HCL, making it suitable
// for use while the user is still typing.
func Format(content string) (string, error) {
	formatted := hclwrite.Format([]byte(content))
	collapsed := multipleBlankLines.ReplaceAllString(string(formatted), "\n\n")
	collapsed = blankLineAfterOpenBrace.ReplaceAllString(collapsed, "{\n")
	collapsed = blankLineBeforeCloseBrace.ReplaceAllString(collapsed, "\n${1}")
	return collapsed, nil
}

// Check reports syntax errors in content.
func Check(content, filename string) error {
	_, diags := hclsyntax.ParseConfig([]byte(content), filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return fmt.Errorf("parsing HCL: %s", diags.Error())
	}
	return nil
}

// File formats the file at path. Files with syntax errors are left alone.
// It reports whether the content changed; with write set the new content
// is written back in place.
func File(path string, write bool) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	content := string(data)
	if err := Check(content, path); err != nil {
		return false, err
	}

	formatted, err := Format(content)
	if err != nil {
		return false, fmt.Errorf("formatting %s: %w", path, err)
	}
	if formatted == content {
		return false, nil
	}

	if write {
		info, err := os.Stat(path)
		if err != nil {
			return true, fmt.Errorf("stat %s: %w", path, err)
		}
		if err := os.WriteFile(path, []byte(formatted), info.Mode().Perm()); err != nil {
			return true, fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return true, nil
}
