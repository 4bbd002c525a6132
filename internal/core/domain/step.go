package domain

import (
	"maps"
	"slices"
	"strings"
)

// StepKind enumerates the kinds of steps the executor knows how to run.
type StepKind uint8

const (
	// StepKindShell runs an external process.
	StepKindShell StepKind = iota + 1
	// StepKindMakeCleanDir deletes a directory if present and recreates it empty.
	StepKindMakeCleanDir
)

// String returns a human readable name for the step kind.
func (k StepKind) String() string {
	switch k {
	case StepKindShell:
		return "shell"
	case StepKindMakeCleanDir:
		return "make_clean_dir"
	default:
		return "unknown"
	}
}

// MakeCleanDirShortName is the short name of directory reset steps.
const MakeCleanDirShortName = "make_clean_dir"

// Step is one externally executable unit of work.
// Steps are plain values: actions produce them, executors run them.
type Step struct {
	Kind      StepKind
	ShortName string
	// Path is the absolute directory a StepKindMakeCleanDir step resets.
	Path string
	// Command is the argv of a StepKindShell step.
	Command []string
	// Environment holds extra environment variables of a StepKindShell step.
	Environment map[string]string
	// WorkingDir is the directory a StepKindShell step runs in.
	WorkingDir string
}

// NewMakeCleanDirStep returns a step that resets dir to an empty directory.
func NewMakeCleanDirStep(dir string) Step {
	return Step{
		Kind:      StepKindMakeCleanDir,
		ShortName: MakeCleanDirShortName,
		Path:      dir,
	}
}

// NewShellStep returns a step running command in workingDir.
// The command and environment are copied.
func NewShellStep(shortName, workingDir string, command []string, env map[string]string) Step {
	var envCopy map[string]string
	if len(env) > 0 {
		envCopy = maps.Clone(env)
	}
	return Step{
		Kind:        StepKindShell,
		ShortName:   shortName,
		Command:     slices.Clone(command),
		Environment: envCopy,
		WorkingDir:  workingDir,
	}
}

// Description returns a single line describing what the step does.
func (s Step) Description() string {
	switch s.Kind {
	case StepKindMakeCleanDir:
		return "rm -rf " + shellQuote(s.Path) + " && mkdir -p " + shellQuote(s.Path)
	case StepKindShell:
		var b strings.Builder
		for _, k := range slices.Sorted(maps.Keys(s.Environment)) {
			b.WriteString(k)
			b.WriteByte('=')
			b.WriteString(shellQuote(s.Environment[k]))
			b.WriteByte(' ')
		}
		quoted := make([]string, len(s.Command))
		for i, arg := range s.Command {
			quoted[i] = shellQuote(arg)
		}
		b.WriteString(strings.Join(quoted, " "))
		return b.String()
	default:
		return s.ShortName
	}
}

func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	safe := true
	for _, r := range s {
		if !isShellSafe(r) {
			safe = false
			break
		}
	}
	if safe {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func isShellSafe(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune("-_./:=,+@%", r)
}
