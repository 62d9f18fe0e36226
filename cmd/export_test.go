package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
)

func TestExportCmd(t *testing.T) {
	useTempLedger(t)

	if got := run(t, &addCmd{}, "-n", "A", "-w", "2", "-k", "0", "-v", "10"); got != subcommands.ExitSuccess {
		t.Fatalf("add exited with %v", got)
	}
	if got := run(t, &addCmd{}, "-n", "B", "-w", "3", "-k", "1", "-v", "20"); got != subcommands.ExitSuccess {
		t.Fatalf("add exited with %v", got)
	}

	testCases := []struct {
		report string
		want   string
	}{
		{
			report: "all",
			want: "nome,qtd_ganha,qtd_ficar,qtd_credito,valor_credito\n" +
				"A,2,0,2,10\n" +
				"B,3,1,2,20\n",
		},
		{
			report: "bring",
			want: "nome,qtd_ganha,qtd_ficar\n" +
				"B,3,1\n",
		},
		{
			report: "credit",
			want: "nome,qtd_ganha,qtd_ficar,qtd_credito,valor_credito,total_credito\n" +
				"A,2,0,2,10,20\n" +
				"B,3,1,2,20,40\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.report, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "export.csv")
			if got := run(t, &exportCmd{}, "-r", tc.report, "-o", out); got != subcommands.ExitSuccess {
				t.Fatalf("export -r %s exited with %v", tc.report, got)
			}
			content, err := os.ReadFile(out)
			if err != nil {
				t.Fatalf("failed to read export: %v", err)
			}
			if string(content) != tc.want {
				t.Errorf("export -r %s =\n%q\nwant\n%q", tc.report, content, tc.want)
			}
		})
	}
}

func TestExportCmd_UnknownReport(t *testing.T) {
	useTempLedger(t)
	if got := run(t, &exportCmd{}, "-r", "everything"); got != subcommands.ExitUsageError {
		t.Errorf("export -r everything exited with %v, want usage error", got)
	}
}
