package pyrejs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	res := Convert(Options{Pattern: `^(?P<date>\d{4}-\d{2}-\d{2})`, Flags: "i"})

	assert.Equal(t, `^(?<date>\d{4}-\d{2}-\d{2})`, res.Pattern)
	assert.Equal(t, "i", res.Flags)
	assert.Empty(t, res.Warnings)
	assert.Empty(t, res.Steps)
	assert.Equal(t, `/^(?<date>\d{4}-\d{2}-\d{2})/i`, res.Literal())
}

func TestConvertWarnings(t *testing.T) {
	res := Convert(Options{Pattern: "(?>atomic)"})

	assert.Equal(t, "(?:atomic)", res.Pattern)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "atomicity lost")
}

func TestConvertVerboseSteps(t *testing.T) {
	res := Convert(Options{Pattern: `\Ax`, Verbose: true})

	require.NotEmpty(t, res.Steps)
	assert.Equal(t, Step{Rule: "start-anchor", Output: "^"}, res.Steps[0])
	assert.Equal(t, "^x", res.Steps[len(res.Steps)-1].Output)
}

func TestConvertVerboseFlagStripsComments(t *testing.T) {
	res := Convert(Options{Pattern: "\\d+  # digits\n", Flags: "xm"})

	assert.Equal(t, `\d+`, res.Pattern)
	assert.Equal(t, "m", res.Flags, "verbose flag must not map to a JavaScript letter")
}

func TestConvertEmptyPattern(t *testing.T) {
	res := Convert(Options{})

	assert.Equal(t, "", res.Pattern)
	assert.Equal(t, "//", res.Literal())
	assert.Empty(t, res.Warnings)
}

func TestGenerateOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    GenerateOptions
		wantErr string
	}{
		{
			name:    "missing name",
			opts:    GenerateOptions{Package: "p", OutputFile: "f.go"},
			wantErr: "name cannot be empty",
		},
		{
			name:    "missing package",
			opts:    GenerateOptions{Name: "N", OutputFile: "f.go"},
			wantErr: "package cannot be empty",
		},
		{
			name:    "missing output file",
			opts:    GenerateOptions{Name: "N", Package: "p"},
			wantErr: "output file cannot be empty",
		},
		{
			name: "valid",
			opts: GenerateOptions{Name: "N", Package: "p", OutputFile: "f.go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "date.go")

	err := Generate(GenerateOptions{
		Pattern:    `^(?P<date>\d{4}-\d{2}-\d{2})$`,
		Flags:      "m",
		Name:       "Date",
		Package:    "patterns",
		OutputFile: outputFile,
	})
	require.NoError(t, err)

	src, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(src), "DatePattern"))
	assert.True(t, strings.Contains(string(src), `(?<date>`))
}

func TestGenerateInvalidOptions(t *testing.T) {
	err := Generate(GenerateOptions{Pattern: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid options")
}
