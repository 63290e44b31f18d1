package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"candy"
	"candy/internal/diag"
	"candy/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.candy|dir>",
	Short: "Check a Candy source file (or directory of .candy files)",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Bool("agent", false, "emit the JSON diagnostic report on stdout")
	checkCmd.Flags().String("color", "auto", "colorize human output: auto|on|off")
	checkCmd.Flags().Int("max-diagnostics", 0, "cap rendered/serialized diagnostics (0 = unlimited)")
	checkCmd.Flags().Int("jobs", runtime.GOMAXPROCS(0), "parallel workers for directory mode")
	checkCmd.Flags().String("config", "", "path to a candy.toml config file")
}

// fileResult pairs one file's path with the report its pipeline run
// produced, so directory mode can re-sort before rendering: multi-file
// output must itself be deterministic regardless of goroutine
// completion order.
type fileResult struct {
	path string
	rep  *diag.Report
}

func runCheck(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	fileCfg, err := loadFileConfig(configPath)
	if err != nil {
		return err
	}

	agent := flagOrConfigBool(cmd, "agent", fileCfg.Agent)
	colorMode := flagOrConfigString(cmd, "color", fileCfg.Color)
	maxDiagnostics := flagOrConfigInt(cmd, "max-diagnostics", fileCfg.MaxDiagnostics)
	jobs := flagOrConfigInt(cmd, "jobs", fileCfg.Jobs)
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	target := args[0]
	info, err := os.Stat(target)
	if err != nil {
		return runIOFailure(target, agent, colorMode)
	}

	var files []string
	if info.IsDir() {
		files, err = candyFilesUnder(target)
		if err != nil {
			return &usageError{msg: err.Error()}
		}
	} else {
		files = []string{target}
	}

	results := make([]fileResult, len(files))
	g := new(errgroup.Group)
	g.SetLimit(jobs)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			src, err := os.ReadFile(path)
			if err != nil {
				rep := diag.NewReport()
				rep.Error(diag.IOReadFailed, source.Unknown(path), "failed to read "+path+": "+err.Error())
				results[i] = fileResult{path: path, rep: rep}
				return nil
			}
			results[i] = fileResult{path: path, rep: candy.Check(path, src)}
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(results, func(a, b int) bool { return results[a].path < results[b].path })

	anyError := false
	for _, r := range results {
		if r.rep.HasErrors() {
			anyError = true
		}
	}

	colorOn := resolveColor(colorMode)
	if agent {
		renderAgent(results, maxDiagnostics)
	} else {
		for _, r := range results {
			renderHuman(os.Stderr, applyMaxDiagnostics(r.rep, maxDiagnostics), colorOn)
		}
	}

	if anyError {
		exitCode = 1
	} else {
		exitCode = 0
	}
	return nil
}

// renderAgent emits exactly one JSON document on stdout: a single
// report's diagnostics for one file, or a file->report map for a
// directory batch.
func renderAgent(results []fileResult, max int) {
	if len(results) == 1 {
		capped := applyMaxDiagnostics(results[0].rep, max)
		_ = json.NewEncoder(os.Stdout).Encode(capped)
		return
	}
	out := make(map[string]*diag.Report, len(results))
	for _, r := range results {
		out[r.path] = applyMaxDiagnostics(r.rep, max)
	}
	_ = json.NewEncoder(os.Stdout).Encode(out)
}

// runIOFailure surfaces a file-read failure as a one-diagnostic
// io-read-failed report rather than a bare process error.
func runIOFailure(path string, agent bool, colorMode string) error {
	rep := diag.NewReport()
	rep.Error(diag.IOReadFailed, source.Unknown(path), "failed to read "+path)
	if agent {
		_ = json.NewEncoder(os.Stdout).Encode(rep)
	} else {
		renderHuman(os.Stderr, rep, resolveColor(colorMode))
	}
	exitCode = 1
	return nil
}

func candyFilesUnder(dir string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".candy") {
			out = append(out, path)
		}
		return nil
	})
	return out, err
}

func resolveColor(mode string) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return term.IsTerminal(int(os.Stderr.Fd()))
	}
}

func flagOrConfigBool(cmd *cobra.Command, name string, cfgVal bool) bool {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetBool(name)
		return v
	}
	return cfgVal
}

func flagOrConfigString(cmd *cobra.Command, name string, cfgVal string) string {
	if cmd.Flags().Changed(name) || cfgVal == "" {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	return cfgVal
}

func flagOrConfigInt(cmd *cobra.Command, name string, cfgVal int) int {
	if cmd.Flags().Changed(name) || cfgVal == 0 {
		v, _ := cmd.Flags().GetInt(name)
		return v
	}
	return cfgVal
}
