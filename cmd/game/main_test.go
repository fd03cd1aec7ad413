package main

import (
	"bytes"
	"context"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/platformquest/internal/application/input"
	"github.com/younwookim/platformquest/internal/application/replay"
	"github.com/younwookim/platformquest/internal/application/state"
	"github.com/younwookim/platformquest/internal/infrastructure/storage"
)

func TestLoadConfig_Embedded(t *testing.T) {
	flagConfigDir = ""
	cfg, stages, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.Display.TPS)
	assert.Len(t, stages, 3)
	assert.True(t, stages[state.StageBoss].Final)
}

func TestLoadConfig_Dir(t *testing.T) {
	flagConfigDir = "configs"
	defer func() { flagConfigDir = "" }()

	_, stages, err := loadConfig()
	require.NoError(t, err)
	assert.Contains(t, stages, state.Stage2)
}

func TestLoadConfig_MissingDir(t *testing.T) {
	flagConfigDir = filepath.Join(t.TempDir(), "nope")
	defer func() { flagConfigDir = "" }()

	_, _, err := loadConfig()
	assert.Error(t, err)
}

func TestRunReplay_Summary(t *testing.T) {
	cfg, stages, err := loadConfig()
	require.NoError(t, err)

	rec := replay.NewRecorder(3, "Stage1")
	for i := 0; i < 10; i++ {
		rec.RecordFrame(input.Idle)
	}

	var out bytes.Buffer
	require.NoError(t, runReplay(&out, cfg, stages, rec.Data()))

	assert.Contains(t, out.String(), "Stage:   Stage1")
	assert.Contains(t, out.String(), "Seed:    3")
	assert.Contains(t, out.String(), "Frames:  10/10")
	assert.Contains(t, out.String(), "Outcome: incomplete")
	assert.Contains(t, out.String(), "Player:  (64.0, 64.0)")
}

func TestPrintRecords(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer store.Close()
	ctx := context.Background()

	var out bytes.Buffer
	require.NoError(t, printRecords(ctx, &out, store, 10))
	assert.Contains(t, out.String(), "No attempts recorded yet.")

	for _, r := range []storage.Run{
		{Stage: "Stage1", Outcome: storage.OutcomeCleared, Ticks: 1800, Kills: 2},
		{Stage: "Stage2", Outcome: storage.OutcomeDied, Ticks: 300},
	} {
		_, err := store.SaveRun(ctx, r)
		require.NoError(t, err)
	}

	out.Reset()
	require.NoError(t, printRecords(ctx, &out, store, 10))
	assert.Contains(t, out.String(), "died")
	assert.Contains(t, out.String(), "Fastest Stage1 clear: 1800 ticks")
	assert.NotContains(t, out.String(), "Fastest Stage2")
}

func TestRecordPath(t *testing.T) {
	dir := t.TempDir()
	stamped := regexp.MustCompile(`^replay_\d{8}_\d{6}`)

	tests := []struct {
		name    string
		in      string
		wantDir string
		wantExt string
	}{
		{"extension only", ".mpk", ".", ".mpk"},
		{"json extension", ".json", ".", ".json"},
		{"existing directory", dir, dir, ".json"},
		{"trailing separator", "recordings" + string(filepath.Separator), "recordings", ".json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := recordPath(tt.in)

			assert.Equal(t, tt.wantDir, filepath.Dir(got))
			assert.Regexp(t, stamped, filepath.Base(got))
			assert.Equal(t, tt.wantExt, filepath.Ext(got))
		})
	}

	assert.Equal(t, "", recordPath(""))
	assert.Equal(t, "boss.mpk", recordPath("boss.mpk"))
}
