package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func GenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gen",
		Short: "Generate Go code from the templ views",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen()
		},
	}
}

func runGen() error {
	if skipTempl() {
		fmt.Println("[templ] skipped")
		return nil
	}

	start := time.Now()
	cmd := exec.Command("go", "tool", "templ", "generate", "-path", "internal/ui")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("templ: %w", err)
	}

	fmt.Printf("[templ] done (%s)\n", time.Since(start).Round(time.Millisecond))
	return nil
}

// skipTempl reports whether every .templ file is older than its _templ.go.
func skipTempl() bool {
	templFiles, err := findTemplFiles("internal/ui")
	if err != nil {
		return false
	}

	for _, templFile := range templFiles {
		outFile := strings.TrimSuffix(templFile, ".templ") + "_templ.go"
		if !isUpToDate(outFile, []string{templFile}) {
			return false
		}
	}
	return true
}

func findTemplFiles(root string) ([]string, error) {
	var templFiles []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".templ") {
			templFiles = append(templFiles, path)
		}
		return nil
	})
	return templFiles, err
}

func isUpToDate(output string, inputs []string) bool {
	outInfo, err := os.Stat(output)
	if err != nil {
		return false
	}
	outMod := outInfo.ModTime()

	for _, input := range inputs {
		inInfo, err := os.Stat(input)
		if err != nil {
			continue
		}
		if inInfo.ModTime().After(outMod) {
			return false
		}
	}
	return true
}
