package calc

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/shirou/gopsutil/v4/process"
)

// ShellType is the shell an exported result is written for.
type ShellType int

const (
	ShellTypeAuto ShellType = iota
	ShellTypeSh
	ShellTypePowershell
	ShellTypeCmd
)

var variableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Export describes how a result is written as a variable assignment.
type Export struct {
	Name    string
	Shell   ShellType
	Persist bool
}

// splitPreserveNewlines splits s keeping each "\r\n", "\r" and "\n" as its own element:
// "a\r\nb\nc\r" -> ["a", "\r\n", "b", "\n", "c", "\r"]
func splitPreserveNewlines(s string) []string {
	if s == "" {
		return []string{""}
	}
	var parts []string
	var buf strings.Builder
	for i := 0; i < len(s); {
		ch := s[i]
		if ch == '\r' || ch == '\n' {
			if buf.Len() > 0 {
				parts = append(parts, buf.String())
				buf.Reset()
			}
			if ch == '\r' && i+1 < len(s) && s[i+1] == '\n' {
				parts = append(parts, "\r\n")
				i += 2
			} else {
				parts = append(parts, string(ch))
				i++
			}
		} else {
			buf.WriteByte(ch)
			i++
		}
	}
	if buf.Len() > 0 {
		parts = append(parts, buf.String())
	}
	return parts
}

// quoteSh wraps s in single quotes; embedded quotes become '\''.
func quoteSh(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func quotePowershell(s string) string {
	if s == "" {
		return "''"
	}
	var out []string
	for _, p := range splitPreserveNewlines(s) {
		switch p {
		case "\n":
			out = append(out, "\"`n\"")
		case "\r":
			out = append(out, "\"`r\"")
		case "\r\n":
			out = append(out, "\"`r`n\"")
		default:
			out = append(out, "'"+strings.ReplaceAll(p, "'", "''")+"'")
		}
	}
	return strings.Join(out, " + ")
}

func quoteCmd(s string) string {
	var out []string
	for _, p := range splitPreserveNewlines(s) {
		switch p {
		case "\n":
			out = append(out, `\n`)
		case "\r":
			out = append(out, `\r`)
		case "\r\n":
			out = append(out, `\r\n`)
		default:
			out = append(out, strings.ReplaceAll(p, `"`, `\"`))
		}
	}
	return strings.Join(out, "")
}

// Assignment renders the statement that stores val in the variable e.Name.
// With Persist the variable outlives the current session.
func (e Export) Assignment(val string) (string, error) {
	if e.Name == "" {
		return "", errors.New("export needs a variable name")
	}
	if !variableName.MatchString(e.Name) {
		return "", errors.Newf("invalid variable name %q, expected letters, digits and '_' not starting with a digit", e.Name)
	}
	shell, err := decideShellType(e.Shell)
	if err != nil {
		return "", err
	}
	switch shell {
	case ShellTypeSh:
		if e.Persist {
			return fmt.Sprintf("export %s=%s", e.Name, quoteSh(val)), nil
		}
		return fmt.Sprintf("%s=%s", e.Name, quoteSh(val)), nil
	case ShellTypePowershell:
		if e.Persist {
			return fmt.Sprintf("[System.Environment]::SetEnvironmentVariable(%s,%s,'User')", quotePowershell(e.Name), quotePowershell(val)), nil
		}
		return fmt.Sprintf("$Env:%s = %s", e.Name, quotePowershell(val)), nil
	case ShellTypeCmd:
		if e.Persist {
			return fmt.Sprintf("setx %s \"%s\"", e.Name, quoteCmd(val)), nil
		}
		return fmt.Sprintf("set \"%s=%s\"", e.Name, quoteCmd(val)), nil
	}
	return "", errors.Newf("unsupported shell type: %v", shell)
}

func decideShellType(shellType ShellType) (ShellType, error) {
	switch shellType {
	case ShellTypeSh, ShellTypePowershell, ShellTypeCmd:
		return shellType, nil
	}
	name, err := detectUserShell()
	if err != nil {
		return ShellTypeAuto, errors.Wrap(err, "cannot detect user shell, pass --shell")
	}
	return shellTypeOf(name), nil
}

func shellTypeOf(name string) ShellType {
	name = strings.TrimSuffix(strings.ToLower(name), ".exe")
	switch name {
	case "powershell", "pwsh":
		return ShellTypePowershell
	case "cmd":
		return ShellTypeCmd
	}
	return ShellTypeSh
}

var knownShells = []string{
	"bash", "zsh", "fish", "ksh", "sh", "dash", "tcsh", "csh",
	"powershell", "pwsh", "cmd",
}

// detectUserShell walks up the parent process chain looking for a known
// shell. SHELL and COMSPEC only name the default shell, so they are the
// fallback.
func detectUserShell() (string, error) {
	p, err := process.NewProcess(int32(os.Getppid()))
	if err != nil {
		return "", errors.Wrap(err, "cannot get parent process")
	}
	seen := map[int32]struct{}{}
	for p != nil {
		if _, ok := seen[p.Pid]; ok {
			break
		}
		seen[p.Pid] = struct{}{}

		name, _ := p.Name()
		if name == "" {
			if exe, _ := p.Exe(); exe != "" {
				name = filepath.Base(exe)
			}
		}
		base := strings.TrimSuffix(strings.ToLower(name), ".exe")
		for _, k := range knownShells {
			if base == k {
				return name, nil
			}
		}

		parent, perr := p.Parent()
		if perr != nil || parent == nil {
			break
		}
		p = parent
	}

	if sh := os.Getenv("SHELL"); sh != "" {
		return filepath.Base(sh), nil
	}
	if com := os.Getenv("COMSPEC"); com != "" {
		return filepath.Base(com), nil
	}
	return "", errors.New("user shell not detected")
}
