package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/showdown/internal/config"
	"github.com/lox/showdown/internal/table"
	"github.com/lox/showdown/poker"
)

func testApp(t *testing.T) (*app, *bytes.Buffer) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Seed = 42
	cfg.Odds.Iterations = 2000
	cfg.Odds.Workers = 2

	var out bytes.Buffer
	return &app{
		cfg:    cfg,
		logger: log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}),
		clock:  quartz.NewMock(t),
		out:    &out,
	}, &out
}

func TestParseHands(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    []string
		expected int
		hasError bool
	}{
		{"single hand", []string{"AcKh"}, 1, false},
		{"multiple hands", []string{"AcKh", "KdQs"}, 2, false},
		{"hand with spaces", []string{"Ac Kh"}, 1, false},
		{"too many cards", []string{"AcKhQd"}, 0, true},
		{"too few cards", []string{"Ac"}, 0, true},
		{"invalid card", []string{"AcXy"}, 0, true},
		{"no hands", nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			hands, err := parseHands(tt.input)
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, hands, tt.expected)
		})
	}
}

func TestValidateNoDuplicates(t *testing.T) {
	t.Parallel()
	hands := [][]poker.Card{poker.MustParseCards("AcKh"), poker.MustParseCards("QdJs")}

	assert.NoError(t, validateNoDuplicates(hands, poker.MustParseCards("2c3c4c")))
	assert.ErrorContains(t, validateNoDuplicates(hands, poker.MustParseCards("Kh3c4c")), "hand 1")
	assert.ErrorContains(t, validateNoDuplicates(hands, poker.MustParseCards("2c2c")), "board")
}

func TestEvalCmd(t *testing.T) {
	t.Parallel()
	a, out := testApp(t)

	cmd := &EvalCmd{Cards: []string{"8c", "9c", "7s", "2c", "3h", "Tc", "4c"}, All: true}
	require.NoError(t, cmd.Run(a))

	assert.Contains(t, out.String(), "Flush Ten Nine Eight Four Two")
	assert.Contains(t, out.String(), "High Card Ten Nine Eight Seven Four")
	assert.NotContains(t, out.String(), "Straight")
}

func TestEvalCmdErrors(t *testing.T) {
	t.Parallel()
	a, _ := testApp(t)

	err := (&EvalCmd{Cards: []string{"AsKs"}}).Run(a)
	require.ErrorIs(t, err, poker.ErrTooFewCards)

	err = (&EvalCmd{Cards: []string{"AsKsZz"}}).Run(a)
	require.ErrorIs(t, err, poker.ErrInvalidCard)
}

func TestCompareCmd(t *testing.T) {
	t.Parallel()
	a, out := testApp(t)

	cmd := &CompareCmd{Hands: []string{"Tc4c", "6dTd"}, Board: "8c9c7s2c3h", Pot: 100}
	require.NoError(t, cmd.Run(a))

	assert.Contains(t, out.String(), "wins")
	assert.Contains(t, out.String(), "Straight, Ten high")
	assert.Contains(t, out.String(), "Tc 4c each take 100")
}

func TestCompareCmdSplit(t *testing.T) {
	t.Parallel()
	a, out := testApp(t)

	cmd := &CompareCmd{Hands: []string{"2c3d", "4h5h", "6c7d"}, Board: "AsKsQsJsTs", Pot: 100}
	require.NoError(t, cmd.Run(a))

	assert.Contains(t, out.String(), "split")
	assert.Contains(t, out.String(), "each take 33 (1 odd chips)")
}

func TestCompareCmdDuplicate(t *testing.T) {
	t.Parallel()
	a, _ := testApp(t)

	err := (&CompareCmd{Hands: []string{"AsKd", "AsQd"}, Board: "2c3c4c5d9h"}).Run(a)
	require.ErrorContains(t, err, "duplicate card")
}

func TestCompareCmdBoardTooLong(t *testing.T) {
	t.Parallel()
	a, out := testApp(t)

	err := (&CompareCmd{Hands: []string{"AsKd", "QhQd"}, Board: "2c3c4c5d9hTh"}).Run(a)
	require.ErrorContains(t, err, "board has 6 cards, at most 5 allowed")
	assert.Empty(t, out.String())
}

func TestDealCmd(t *testing.T) {
	t.Parallel()
	a, out := testApp(t)
	path := filepath.Join(t.TempDir(), "hands.json")

	cmd := &DealCmd{Players: []string{"ann", "ben", "cat"}, Hands: 2, History: path}
	require.NoError(t, cmd.Run(a))

	assert.Contains(t, out.String(), "Hand #1")
	assert.Contains(t, out.String(), "Hand #2")
	assert.Contains(t, out.String(), "ann (D)")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var records []table.HandRecord
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 2)
	assert.Equal(t, int64(42), records[0].Seed)
	assert.Equal(t, "ben", records[1].Button)
}

func TestDealCmdIsReproducible(t *testing.T) {
	t.Parallel()
	a1, out1 := testApp(t)
	a2, out2 := testApp(t)
	a2.clock = a1.clock

	require.NoError(t, (&DealCmd{Hands: 3}).Run(a1))
	require.NoError(t, (&DealCmd{Hands: 3}).Run(a2))
	assert.Equal(t, out1.String(), out2.String())
}

func TestDealCmdRejectsSinglePlayer(t *testing.T) {
	t.Parallel()
	a, _ := testApp(t)

	err := (&DealCmd{Players: []string{"solo"}}).Run(a)
	require.ErrorIs(t, err, table.ErrPlayerCount)
}

func TestOddsCmd(t *testing.T) {
	t.Parallel()
	a, out := testApp(t)

	cmd := &OddsCmd{Hands: []string{"AsAh", "KdKc"}, Board: "2c7d9h", Possibilities: true, Iterations: 500}
	require.NoError(t, cmd.Run(a))

	assert.Contains(t, out.String(), "equity")
	assert.Contains(t, out.String(), "As Ah")
	assert.Contains(t, out.String(), "Pair")
	assert.Contains(t, out.String(), "500 iterations")
}

func TestOddsCmdErrors(t *testing.T) {
	t.Parallel()
	a, _ := testApp(t)

	err := (&OddsCmd{Hands: []string{"AsAh", "AsKc"}}).Run(a)
	require.Error(t, err)

	err = (&OddsCmd{Hands: []string{"AsAh"}, Board: "2c7d9hTcJcQc"}).Run(a)
	require.Error(t, err)
}

func TestNewAppAppliesOverrides(t *testing.T) {
	cli := &CLI{Config: filepath.Join(t.TempDir(), "missing.hcl"), LogLevel: "debug", Seed: 9}
	var logs bytes.Buffer

	a, err := newApp(cli, io.Discard, &logs)
	require.NoError(t, err)
	assert.Equal(t, "debug", a.cfg.LogLevel)
	assert.Equal(t, int64(9), a.cfg.Seed)
	assert.Equal(t, log.DebugLevel, a.logger.GetLevel())

	seed, err := a.seed()
	require.NoError(t, err)
	assert.Equal(t, int64(9), seed)

	cli.LogLevel = "shouty"
	_, err = newApp(cli, io.Discard, &logs)
	require.ErrorContains(t, err, "invalid configuration")
}
