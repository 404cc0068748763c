package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bleu/config"
	"bleu/internal/domain"
)

func writeLines(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644))
	return path
}

func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cfg := filepath.Join(t.TempDir(), "absent.yaml")
	code := run(append([]string{"--config", cfg}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_InvalidLanguage(t *testing.T) {
	dir := t.TempDir()
	hyp := writeLines(t, dir, "hyp.txt", "a b c")
	ref := writeLines(t, dir, "ref.txt", "a b c")

	code, stdout, stderr := execute(t, hyp, ref, "-l", "fr")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "invalid language: fr")
}

func TestRun_SentenceBLEU(t *testing.T) {
	dir := t.TempDir()
	hyp := writeLines(t, dir, "hyp.txt", "the cat sat on the mat")
	ref := writeLines(t, dir, "ref.txt", "the cat is on the mat")

	code, stdout, stderr := execute(t, hyp, ref)

	assert.Equal(t, 0, code)
	assert.Equal(t, "0.000\n", stdout)
	assert.Contains(t, stderr, "SENTENCE BLEU")
}

func TestRun_CorpusBLEU(t *testing.T) {
	dir := t.TempDir()
	lines := []string{
		"The cat sat on the mat.",
		"It is raining in the city today.",
		"She reads four books every month.",
		"We will meet at the station at noon.",
		"Nobody knows where the old key went.",
	}
	hyp := writeLines(t, dir, "hyp.txt", lines...)
	ref := writeLines(t, dir, "ref.txt", lines...)

	code, stdout, stderr := execute(t, hyp, ref)

	assert.Equal(t, 0, code)
	assert.Equal(t, "100.000\n", stdout)
	assert.Contains(t, stderr, "CORPUS BLEU")
}

func TestRun_JSON(t *testing.T) {
	dir := t.TempDir()
	hyp := writeLines(t, dir, "hyp.txt", "今天天气很好")
	ref := writeLines(t, dir, "ref.txt", "今天天气很好")

	code, stdout, _ := execute(t, hyp, ref, "-l", "zh", "--json")
	require.Equal(t, 0, code)

	var res domain.Result
	require.NoError(t, json.Unmarshal([]byte(stdout), &res))
	assert.Equal(t, domain.Sentence, res.Granularity)
	assert.Equal(t, 100.0, res.BLEU)
	assert.Equal(t, 6, res.HypLength)
}

func TestRun_JSONScoreMatchesText(t *testing.T) {
	dir := t.TempDir()
	hyp := writeLines(t, dir, "hyp.txt", "the cat sat on the mat")
	ref := writeLines(t, dir, "ref.txt", "the cat is on the mat")

	code, stdout, stderr := execute(t, hyp, ref, "--json")
	require.Equal(t, 0, code, stderr)

	var res struct {
		Score string  `json:"score"`
		BLEU  float64 `json:"bleu"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &res))
	assert.Equal(t, "0.000", res.Score)
	assert.Greater(t, res.BLEU, 0.0)

	code, stdout, _ = execute(t, hyp, ref, "--json", "--digits", "1")
	require.Equal(t, 0, code)
	require.NoError(t, json.Unmarshal([]byte(stdout), &res))
	assert.Equal(t, "0.0", res.Score)
}

func TestRun_Digits(t *testing.T) {
	dir := t.TempDir()
	hyp := writeLines(t, dir, "hyp.txt", "a b c d")
	ref := writeLines(t, dir, "ref.txt", "a b c d")

	code, stdout, _ := execute(t, hyp, ref, "--digits", "1")
	assert.Equal(t, 0, code)
	assert.Equal(t, "100.0\n", stdout)
}

func TestRun_ReferenceGlob(t *testing.T) {
	dir := t.TempDir()
	hyp := writeLines(t, dir, "hyp.txt", "a b c d", "e f g h")
	writeLines(t, dir, "ref.1", "a b c d", "e f g x")
	writeLines(t, dir, "ref.2", "a b c x", "e f g h")

	code, stdout, stderr := execute(t, hyp, filepath.Join(dir, "ref.*"))
	assert.Equal(t, 0, code, stderr)
	assert.Equal(t, "100.000\n", stdout)
}

func TestRun_LengthMismatch(t *testing.T) {
	dir := t.TempDir()
	hyp := writeLines(t, dir, "hyp.txt", "a b c", "d e f")
	ref := writeLines(t, dir, "ref.txt", "a b c")

	code, stdout, stderr := execute(t, hyp, ref)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "line counts differ")
}

func TestRun_MissingArgs(t *testing.T) {
	code, _, stderr := execute(t, "only-one.txt")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Error:")
}

func TestRun_Segment(t *testing.T) {
	path := writeLines(t, t.TempDir(), "in.txt", "I can't go.", "Hello, world!")

	code, stdout, stderr := execute(t, "segment", path)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "I ca n't go .\nHello , world !\n", stdout)
}

func TestRun_SegmentInvalidMode(t *testing.T) {
	path := writeLines(t, t.TempDir(), "in.txt", "a")

	code, _, stderr := execute(t, "segment", path, "--mode", "src")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid mode: src")
}

func TestRun_ConfigLanguage(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "bleu.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("segment:\n  language: zh\n"), 0644))
	path := writeLines(t, dir, "in.txt", "你好")

	var stdout, stderr bytes.Buffer
	code := run([]string{"--config", cfg, "segment", path}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "你 好\n", stdout.String())
}

func TestRun_Init(t *testing.T) {
	dir := t.TempDir()

	code, stdout, stderr := execute(t, "init", dir, "-l", "zh", "--log-level", "info")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "bleu.yaml")

	cfg, err := config.Load(filepath.Join(dir, "bleu.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "zh", cfg.Segment.Language)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 3, cfg.Score.Digits)

	code, _, stderr = execute(t, "init", dir)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "already exists")

	code, _, stderr = execute(t, "init", dir, "--force")
	assert.Equal(t, 0, code, stderr)
}

func TestRun_Progress(t *testing.T) {
	dir := t.TempDir()
	hyp := writeLines(t, dir, "hyp.txt", "a b c d", "e f g h")
	ref := writeLines(t, dir, "ref.txt", "a b c d", "e f g h")

	code, stdout, stderr := execute(t, hyp, ref, "--progress")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "100.000\n", stdout)
	assert.Contains(t, stderr, "Segmenting")
}
