package dcc

import (
	"bufio"
	"go/build/constraint"
	"os"
	"slices"
	"strings"
	"testing"
)

func buildConstraint(t *testing.T, file string) constraint.Expr {
	t.Helper()
	f, err := os.Open(file)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); constraint.IsGoBuild(line) {
			expr, err := constraint.Parse(line)
			if err != nil {
				t.Fatal(err)
			}
			return expr
		}
	}
	t.Fatalf("%s: no build constraint", file)
	return nil
}

func TestBuildConstraints(t *testing.T) {
	transports := []string{"write_nop.go", "write_arm.go", "write_tinygo.go", "write_host.go"}
	tests := map[string]struct {
		tags      string
		transport string
		printk    bool
	}{
		"host":             {"linux amd64", "write_host.go", false},
		"hostNop":          {"linux amd64 dccnop", "write_nop.go", false},
		"tamago":           {"tamago arm", "write_arm.go", false},
		"tamagoLinkprintk": {"tamago arm linkprintk", "write_arm.go", true},
		"tamagoNop":        {"tamago arm linkprintk dccnop", "write_nop.go", false},
		"tinygo":           {"tinygo arm", "write_tinygo.go", false},
		"tinygoNop":        {"tinygo arm dccnop", "write_nop.go", false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			tags := strings.Fields(tc.tags)
			ok := func(tag string) bool { return slices.Contains(tags, tag) }

			var selected []string
			for _, file := range transports {
				if buildConstraint(t, file).Eval(ok) {
					selected = append(selected, file)
				}
			}
			if !slices.Equal(selected, []string{tc.transport}) {
				t.Errorf("expected transport %v, got %v", tc.transport, selected)
			}
			if printk := buildConstraint(t, "printk_tamago.go").Eval(ok); printk != tc.printk {
				t.Errorf("expected printk %v, got %v", tc.printk, printk)
			}
		})
	}
}
