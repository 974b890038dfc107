// Package assemble stitches the compiled dashboard bundle and scan data
// into one self-contained HTML report.
package assemble

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ashview/ashview/internal/logging"
	"github.com/ashview/ashview/internal/model"
	"github.com/ashview/ashview/internal/progress"
)

// reportTemplate is the fixed shell of the generated document. Three
// regions are substituted: the tagged data block, an optional inline
// stylesheet, and the inline application bundle. The artifact works when
// opened straight from the filesystem; nothing is fetched.
const reportTemplate = `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>ASH Security Scan Report</title>
{{STYLES}}
  </head>
  <body>
    <div id="root"></div>
    <script id="{{DATA_ID}}" type="application/json">
{{DATA}}
    </script>
    <script type="module">
{{SCRIPT}}
    </script>
  </body>
</html>
`

// Assets are the compiled bundle files resolved from the build-output
// directory. StylePath may be empty when the build inlined CSS into the
// JavaScript bundle.
type Assets struct {
	ScriptPath string
	StylePath  string
}

// Options control a single Assemble invocation.
type Options struct {
	// DistDir is the directory holding the compiled assets.
	DistDir string
	// NoProgress disables the byte progress bar while reading scan data.
	NoProgress bool
}

// FindAssets locates exactly one *.js bundle and at most one *.css file
// in dir. A missing or ambiguous JavaScript bundle is fatal; a missing
// stylesheet is not.
func FindAssets(dir string) (Assets, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Assets{}, fmt.Errorf("reading asset directory %s: %w", dir, err)
	}

	var scripts, styles []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".js":
			scripts = append(scripts, filepath.Join(dir, e.Name()))
		case ".css":
			styles = append(styles, filepath.Join(dir, e.Name()))
		}
	}

	if len(scripts) == 0 {
		return Assets{}, fmt.Errorf("no JavaScript bundle (*.js) found in %s", dir)
	}
	if len(scripts) > 1 {
		return Assets{}, fmt.Errorf("multiple JavaScript bundles (*.js) found in %s: %s", dir, strings.Join(baseNames(scripts), ", "))
	}
	if len(styles) > 1 {
		return Assets{}, fmt.Errorf("multiple stylesheets (*.css) found in %s: %s", dir, strings.Join(baseNames(styles), ", "))
	}

	a := Assets{ScriptPath: scripts[0]}
	if len(styles) == 1 {
		a.StylePath = styles[0]
	}
	return a, nil
}

// Assemble reads the scan data and compiled assets, substitutes them into
// the report template and writes the result to outputPath, overwriting any
// existing file. The document is composed fully in memory first, so no
// partial output is ever left behind on a failure path. Single pass, no
// retries.
func Assemble(dataPath, outputPath string, opts Options) error {
	assets, err := FindAssets(opts.DistDir)
	if err != nil {
		return err
	}
	logging.L().Debugf("assembling report: data=%s script=%s style=%s", dataPath, assets.ScriptPath, assets.StylePath)

	// Scan data is passed through verbatim; validating the JSON is the
	// report consumer's job, not the assembler's.
	data, err := readDataFile(dataPath, opts.NoProgress)
	if err != nil {
		return fmt.Errorf("reading scan data %s: %w", dataPath, err)
	}

	script, err := os.ReadFile(assets.ScriptPath)
	if err != nil {
		return fmt.Errorf("reading bundle %s: %w", assets.ScriptPath, err)
	}

	styleBlock := ""
	if assets.StylePath != "" {
		style, err := os.ReadFile(assets.StylePath)
		if err != nil {
			return fmt.Errorf("reading stylesheet %s: %w", assets.StylePath, err)
		}
		styleBlock = "    <style>\n" + string(style) + "\n    </style>"
	}

	doc := reportTemplate
	doc = strings.Replace(doc, "{{DATA_ID}}", model.DataScriptID, 1)
	if styleBlock == "" {
		// Drop the placeholder line entirely when there is no stylesheet.
		doc = strings.Replace(doc, "{{STYLES}}\n", "", 1)
	} else {
		doc = strings.Replace(doc, "{{STYLES}}", styleBlock, 1)
	}
	doc = strings.Replace(doc, "{{DATA}}", strings.TrimSpace(string(data)), 1)
	doc = strings.Replace(doc, "{{SCRIPT}}", string(script), 1)

	if err := os.WriteFile(outputPath, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", outputPath, err)
	}
	logging.L().Debugf("wrote %s (%d bytes)", outputPath, len(doc))
	return nil
}

// readDataFile reads the scan data with a byte progress bar unless
// disabled. The handle is closed on every path.
func readDataFile(path string, noProgress bool) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	r := progress.NewReader(f, info.Size(), "Reading scan data", noProgress)
	return io.ReadAll(r)
}

func baseNames(paths []string) []string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	return names
}
